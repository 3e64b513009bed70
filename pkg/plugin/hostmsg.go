package plugin

// #include <stdlib.h>
// #include <string.h>
// #include "../../include/flp/fp_plugclass.h"
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// Typed plugin-to-host messages. Each sender wraps one FHD dispatcher id;
// strings are copied to the C heap for the duration of the call and host
// string results are copied out immediately (they don't live long).

// dispatchString sends a message whose Value is a C string.
func (h *Host) dispatchString(id flp.IntPtr, s string) flp.IntPtr {
	cs := C.CString(s)
	defer C.free(unsafe.Pointer(cs))
	return h.Dispatch(id, 0, flp.IntPtr(uintptr(unsafe.Pointer(cs))))
}

// ParamMenu reports that popup menu item entry of parameter index was
// picked.
func (h *Host) ParamMenu(index, entry int) {
	h.Dispatch(flp.FHDParamMenu, index, entry)
}

// ParamMenuEntry asks for popup menu entry number entry of parameter
// index; ok is false when there are no more entries.
func (h *Host) ParamMenuEntry(index, entry int) (name string, flags int, ok bool) {
	res := h.Dispatch(flp.FHDGetParamMenuEntry, index, entry)
	if res == 0 {
		return "", 0, false
	}
	e := (*C.TParamMenuEntry)(unsafe.Pointer(uintptr(res)))
	return C.GoString(e.Name), int(e.Flags), true
}

// EditorResized notifies the host that the editor window was resized.
func (h *Host) EditorResized() {
	h.Dispatch(flp.FHDEditorResized, 0, 0)
}

// NamesChanged tells the host that names of the given section (an FPN
// constant) have changed.
func (h *Host) NamesChanged(section int) {
	h.Dispatch(flp.FHDNamesChanged, 0, section)
}

// ActivateMIDI makes the host enable its MIDI output.
func (h *Host) ActivateMIDI() {
	h.Dispatch(flp.FHDActivateMIDI, 0, 0)
}

// WantMIDIInput switches MIDI input notification (see Plugin.MIDIIn).
func (h *Host) WantMIDIInput(on bool) {
	h.Dispatch(flp.FHDWantMIDIInput, 0, flp.RawFromBool(on))
}

// WantMIDITick switches MIDITick events for MIDI out plugins.
func (h *Host) WantMIDITick(on bool) {
	h.Dispatch(flp.FHDWantMIDITick, 0, flp.RawFromBool(on))
}

// KillAutomation asks the host to kill automation linked to parameters
// first..last inclusive.
func (h *Host) KillAutomation(first, last int) {
	h.Dispatch(flp.FHDKillAutomation, first, last)
}

// SetNumPresets tells the host how many internal presets the plugin has.
func (h *Host) SetNumPresets(n int) {
	h.Dispatch(flp.FHDSetNumPresets, 0, n)
}

// SetNewName sets a new short name for the parent.
func (h *Host) SetNewName(name string) {
	h.dispatchString(flp.FHDSetNewName, name)
}

// SetNewColor sets a new color for the parent.
func (h *Host) SetNewColor(color int) {
	h.Dispatch(flp.FHDSetNewColor, 0, color)
}

// IdleMode says when the plugin wants Idle calls.
type IdleMode int

const (
	IdleNever       IdleMode = 0
	IdleWhenVisible IdleMode = 1
	IdleAlways      IdleMode = 2
)

// WantIdle switches the periodic Idle message (enabled by default).
func (h *Host) WantIdle(mode IdleMode) {
	h.Dispatch(flp.FHDWantIdle, 0, int(mode))
}

// LocateDataFile asks the host to search for name in its search paths.
// The empty string means not found.
func (h *Host) LocateDataFile(name string) string {
	return h.stringResult(h.dispatchString(flp.FHDLocateDataFile, name))
}

// PackDataFile asks the host to pack an absolute filename into a local
// one.
func (h *Host) PackDataFile(name string) string {
	return h.stringResult(h.dispatchString(flp.FHDPackDataFile, name))
}

// ProgPath is where the host engine (and so its data path) lives.
func (h *Host) ProgPath() string {
	return h.stringResult(h.Dispatch(flp.FHDGetProgPath, 0, 0))
}

// ProjDataPath is where project data should be stored.
func (h *Host) ProjDataPath() string {
	return h.stringResult(h.Dispatch(flp.FHDGetProjDataPath, 0, 0))
}

// stringResult copies a host PChar result right away, as required.
func (h *Host) stringResult(res flp.IntPtr) string {
	if res == 0 || res == -1 {
		return ""
	}
	return C.GoString((*C.char)(unsafe.Pointer(uintptr(res))))
}

// TicksToTime translates a tick count into host Bar:Step:Tick time.
func (h *Host) TicksToTime(ticks int) flp.SongTime {
	// out-block on the C heap, the host fills it during the call
	block := (*[3]C.int32_t)(C.calloc(3, C.sizeof_int32_t))
	defer C.free(unsafe.Pointer(block))
	h.Dispatch(flp.FHDTicksToTime, flp.IntPtr(uintptr(unsafe.Pointer(block))), ticks)
	return flp.SongTime{Bar: int32(block[0]), Step: int32(block[1]), Tick: int32(block[2])}
}

// TimeFormat selects the unit of GetMixingTime/GetPlaybackTime results.
type TimeFormat int

const (
	TimeBeats       TimeFormat = 0
	TimeAbsoluteMS  TimeFormat = 1
	TimeRunningMS   TimeFormat = 2
	TimeSoundcardMS TimeFormat = 3
)

// MixingTime returns the mixer time in the given format, with an optional
// offset in samples.
func (h *Host) MixingTime(format TimeFormat, offsetSamples float64) (t, t2 float64) {
	return h.timeQuery(flp.FHDGetMixingTime, format, offsetSamples)
}

// PlaybackTime returns the playback time, same semantics as MixingTime.
func (h *Host) PlaybackTime(format TimeFormat, offsetSamples float64) (t, t2 float64) {
	return h.timeQuery(flp.FHDGetPlaybackTime, format, offsetSamples)
}

// SelectionTime returns the current selection as t..t2; ok is false when
// nothing is selected (the full song length is returned then).
func (h *Host) SelectionTime(format TimeFormat) (t, t2 float64, ok bool) {
	block := (*C.TFPTime)(C.calloc(1, C.sizeof_TFPTime))
	defer C.free(unsafe.Pointer(block))
	res := h.Dispatch(flp.FHDGetSelTime, int(format), flp.IntPtr(uintptr(unsafe.Pointer(block))))
	return float64(block.t), float64(block.t2), res != 0
}

func (h *Host) timeQuery(id flp.IntPtr, format TimeFormat, offset float64) (float64, float64) {
	block := (*C.TFPTime)(C.calloc(1, C.sizeof_TFPTime))
	defer C.free(unsafe.Pointer(block))
	block.t = C.double(offset)
	block.t2 = C.double(offset)
	h.Dispatch(id, int(format), flp.IntPtr(uintptr(unsafe.Pointer(block))))
	return float64(block.t), float64(block.t2)
}

// TimeMul is the current tempo multiplicator (fast-forward, not part of
// the song).
func (h *Host) TimeMul() int {
	return h.Dispatch(flp.FHDGetTimeMul, 0, 0)
}

// AddToPianoRoll adds notes to the current pattern's piano roll. channel
// and pattern may be -1 for the plugin's channel and current pattern.
// The destination block is sized from the final note count before any
// note is copied in.
func (h *Host) AddToPianoRoll(notes []flp.Note, channel, pattern int, flags flp.NotesParamsFlags) {
	if len(notes) == 0 {
		return
	}

	size := C.sizeof_TNotesParams + C.size_t(len(notes)-1)*C.sizeof_TNoteParams
	block := (*C.TNotesParams)(C.calloc(1, size))
	defer C.free(unsafe.Pointer(block))
	block.Target = 1 // piano roll
	block.Flags = C.int32_t(flags)
	block.PatNum = C.int32_t(pattern)
	block.ChanNum = C.int32_t(channel)
	block.Count = C.int32_t(len(notes))

	dst := unsafe.Slice((*C.TNoteParams)(unsafe.Pointer(&block.NoteParams[0])), len(notes))
	for i, n := range notes {
		dst[i] = C.TNoteParams{
			Position: C.int32_t(n.Position),
			Length:   C.int32_t(n.Length),
			Pan:      C.int32_t(n.Pan),
			Vol:      C.int32_t(n.Velocity),
			Note:     C.int16_t(n.Number),
			Color:    C.int16_t(n.Color),
		}
	}

	h.Dispatch(flp.FHDAddNotesToPR, 0, flp.IntPtr(uintptr(unsafe.Pointer(block))))
}

// MsgBoxFlags mirror the host's message box style flags.
type MsgBoxFlags int

const (
	MsgBoxOkCancel    MsgBoxFlags = 0x1
	MsgBoxYesNo       MsgBoxFlags = 0x4
	MsgBoxIconError   MsgBoxFlags = 0x10
	MsgBoxIconQuery   MsgBoxFlags = 0x20
	MsgBoxIconWarning MsgBoxFlags = 0x30
	MsgBoxIconInfo    MsgBoxFlags = 0x40
)

// MsgBox shows a host message box and returns the dialog result (IDOK,
// IDCANCEL style).
func (h *Host) MsgBox(title, text string, flags MsgBoxFlags) int {
	cs := C.CString(title + "|" + text)
	defer C.free(unsafe.Pointer(cs))
	return h.Dispatch(flp.FHDMsgBox, flp.IntPtr(uintptr(unsafe.Pointer(cs))), int(flags))
}

// NoteOn previews a note on. color 0 is the default.
func (h *Host) NoteOn(note, color uint8, velocity int) {
	h.Dispatch(flp.FHDNoteOn, int(note)|int(color)<<16, velocity)
}

// NoteOff previews a note off.
func (h *Host) NoteOff(note uint8) {
	h.Dispatch(flp.FHDNoteOff, int(note), 0)
}

// OnHintDirect shows a hint immediately, e.g. progress during a long
// operation.
func (h *Host) OnHintDirect(text string) {
	h.dispatchString(flp.FHDOnHintDirect, text)
}

// DebugLogMsg adds a message to the host debug log.
func (h *Host) DebugLogMsg(text string) {
	h.dispatchString(flp.FHDDebugLogMsg, text)
}

// KillIntCtrl asks the host to kill anything linked to internal
// controllers first..last inclusive.
func (h *Host) KillIntCtrl(first, last int) {
	h.Dispatch(flp.FHDKillIntCtrl, first, last)
}

// SetNumParams overrides the declared parameter count, for plugins with
// a per-instance parameter set.
func (h *Host) SetNumParams(n int) {
	h.Dispatch(flp.FHDSetNumParams, 0, n)
}

// SetLatency declares the plugin latency in samples.
func (h *Host) SetLatency(samples int) {
	h.Dispatch(flp.FHDSetLatency, 0, samples)
}

// SetThreadSafe declares that the plugin does its own thread sync.
func (h *Host) SetThreadSafe(on bool) {
	h.Dispatch(flp.FHDSetThreadSafe, 0, flp.RawFromBool(on))
}

// SmartDisable asks the host to enter or exit smart disabling, mainly
// for generators getting MIDI input.
func (h *Host) SmartDisable(on bool) {
	h.Dispatch(flp.FHDSmartDisable, 0, flp.RawFromBool(on))
}

// SetUID sets a unique identifying string used to save and restore
// custom plugin data.
func (h *Host) SetUID(uid string) {
	h.dispatchString(flp.FHDSetUID, uid)
}

// Captionize forces the plugin window captionized or not.
func (h *Host) Captionize(on bool) {
	h.Dispatch(flp.FHDCaptionize, 0, flp.RawFromBool(on))
}

// SetDirty marks the project dirty, for tweaks the host can't see.
func (h *Host) SetDirty() {
	h.Dispatch(flp.FHDSetDirty, 0, 0)
}

// AddToRecent adds a file to the host's recent files.
func (h *Host) AddToRecent(path string) {
	h.dispatchString(flp.FHDAddToRecent, path)
}

// NumIn is how many inputs are routed to this effect (see InBuffer).
func (h *Host) NumIn() int { return h.Dispatch(flp.FHDGetNumInOut, 0, 0) }

// NumOut is how many outputs this effect is routed to (see OutBuffer).
func (h *Host) NumOut() int { return h.Dispatch(flp.FHDGetNumInOut, 1, 0) }

// InName returns the user and visible names of input index (first = 1);
// ok is false when index is out of range.
func (h *Host) InName(index int) (name, visName string, ok bool) {
	return h.ioName(flp.FHDGetInName, index)
}

// OutName is InName for outputs.
func (h *Host) OutName(index int) (name, visName string, ok bool) {
	return h.ioName(flp.FHDGetOutName, index)
}

func (h *Host) ioName(id flp.IntPtr, index int) (string, string, bool) {
	block := (*C.TNameColor)(C.calloc(1, C.sizeof_TNameColor))
	defer C.free(unsafe.Pointer(block))
	if h.Dispatch(id, index, flp.IntPtr(uintptr(unsafe.Pointer(block)))) == 0 {
		return "", "", false
	}
	return C.GoString(&block.Name[0]), C.GoString(&block.VisName[0]), true
}

// SendSysEx sends a SysEx string through port immediately. Do not abuse.
func (h *Host) SendSysEx(port int, data []byte) {
	if len(data) == 0 {
		return
	}
	// length-prefixed array, the first integer is the byte count
	block := (*C.int32_t)(C.malloc(C.sizeof_int32_t + C.size_t(len(data))))
	defer C.free(unsafe.Pointer(block))
	*block = C.int32_t(len(data))
	C.memcpy(unsafe.Pointer(uintptr(unsafe.Pointer(block))+C.sizeof_int32_t), unsafe.Pointer(&data[0]), C.size_t(len(data)))
	h.Dispatch(flp.FHDSendSysEx, port, flp.IntPtr(uintptr(unsafe.Pointer(block))))
}

// EditSample opens the file in Edison; reuse lets an existing Edison be
// reused.
func (h *Host) EditSample(path string, reuse bool) {
	cs := C.CString(path)
	defer C.free(unsafe.Pointer(cs))
	h.Dispatch(flp.FHDEditSample, flp.RawFromBool(reuse), flp.IntPtr(uintptr(unsafe.Pointer(cs))))
}

// LoadAudioClip sends an audio file to the playlist as an audio clip.
func (h *Host) LoadAudioClip(path string) {
	h.dispatchString(flp.FHDLoadAudioClip, path)
}

// LoadInChannel sends a file to the selected channels.
func (h *Host) LoadInChannel(path string) {
	h.dispatchString(flp.FHDLoadInChannel, path)
}

// ShowInBrowser locates the file in the host browser and jumps to it.
func (h *Host) ShowInBrowser(path string) {
	h.dispatchString(flp.FHDShowInBrowser, path)
}

// MainFormHandle is the handle of the host main window, 0 if none.
func (h *Host) MainFormHandle() uintptr {
	return uintptr(h.Dispatch(flp.FHDGetMainFormHandle, 0, 0))
}
