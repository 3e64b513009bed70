package flp

import "unsafe"

// HostMessage is a typed view of one host dispatcher call. Exactly one
// concrete type exists per FPD id; ids this package doesn't know decode to
// Unknown so newer hosts keep working.
type HostMessage interface {
	hostMessage()
}

// ShowEditor asks the plugin to show or hide its editor. Window is the
// parent window handle, 0 when hiding.
type ShowEditor struct {
	Window unsafe.Pointer
}

// ProcessMode tells the plugin the current processing mode.
type ProcessMode struct {
	Flags ProcessModeFlags
}

// Flush signals a break in continuity; buffers should be cleared.
type Flush struct{}

// SetBlockSize carries the maximum render length in samples.
type SetBlockSize struct {
	Frames int
}

// SetSampleRate carries the new sample rate.
type SetSampleRate struct {
	Rate int
}

// WindowMinMax asks for editor size constraints. Rect points at a native
// RECT the plugin may fill; SnapPtr at a native POINT.
type WindowMinMax struct {
	Rect    unsafe.Pointer
	SnapPtr unsafe.Pointer
}

// KillVoice asks a hybrid generator to kill its weakest voice. Answer 1
// when a voice was killed.
type KillVoice struct{}

// UseVoiceLevels asks whether the plugin supports a per-voice level kind.
type UseVoiceLevels struct {
	Kind int
}

// SetPreset selects an internal preset.
type SetPreset struct {
	Index int
}

// ChanSampleChanged announces a new channel sample or shape. Samples is a
// non-owning view over the host wavetable, valid for this call only.
type ChanSampleChanged struct {
	Samples []float32
}

// SetEnabled toggles the soft bypass state.
type SetEnabled struct {
	Enabled bool
}

// SetPlaying reports the host transport state.
type SetPlaying struct {
	Playing bool
}

// SongPosChanged signals a relocation of the playing position.
type SongPosChanged struct{}

// SetTimeSig carries the new time signature.
type SetTimeSig struct {
	Sig TimeSignature
}

// CollectFile asks for the filename of file #Index so the host can bundle
// it into a zipped project. Answer with a string result; empty when out of
// range.
type CollectFile struct {
	Index int
}

// SetInternalParam is a host-internal notification, normally ignored.
type SetInternalParam struct {
	Index int
	Value IntPtr
}

// SetNumSends carries the send track count.
type SetNumSends struct {
	Sends int
}

// LoadFile asks the plugin to load a file dropped onto it.
type LoadFile struct {
	Path string
}

// SetFitTime carries the fit-to-time length in beats.
type SetFitTime struct {
	Beats float32
}

// SetSamplesPerTick carries the (fractional) number of samples per tick.
type SetSamplesPerTick struct {
	Samples float32
}

// SetIdleTime carries the idle callback period in milliseconds.
type SetIdleTime struct {
	Millis int
}

// SetFocus reports whether the editor gained or lost focus.
type SetFocus struct {
	Focused bool
}

// Transport forwards a live transport control message. Answer 1 when
// handled.
type Transport struct {
	Kind  int
	Value ValuePtr
}

// MIDIIn previews a live MIDI input message.
type MIDIIn struct {
	Message MidiMessage
}

// RoutingChanged signals that mixer routing changed.
type RoutingChanged struct{}

// GetParamInfo asks for the flags of one parameter.
type GetParamInfo struct {
	Index int
}

// ProjLoaded reports project load state: true after loading finished,
// false when loading starts.
type ProjLoaded struct {
	Loaded bool
}

// WrapperLoadState is private host state restore; Data is valid for this
// call only.
type WrapperLoadState struct {
	Data []byte
}

// ShowSettings reports the settings window visibility.
type ShowSettings struct {
	Shown bool
}

// SetIOLatency carries the host audio input and output latencies.
type SetIOLatency struct {
	Input  int
	Output int
}

// PreferredNumIO asks how many inputs (Index 0) or outputs (Index 1) the
// plugin prefers. Answer 0 for default, -1 for none.
type PreferredNumIO struct {
	Outputs bool
}

// Unknown carries a dispatcher call this package has no decoding for.
type Unknown struct {
	Msg Message
}

func (ShowEditor) hostMessage()        {}
func (ProcessMode) hostMessage()       {}
func (Flush) hostMessage()             {}
func (SetBlockSize) hostMessage()      {}
func (SetSampleRate) hostMessage()     {}
func (WindowMinMax) hostMessage()      {}
func (KillVoice) hostMessage()         {}
func (UseVoiceLevels) hostMessage()    {}
func (SetPreset) hostMessage()         {}
func (ChanSampleChanged) hostMessage() {}
func (SetEnabled) hostMessage()        {}
func (SetPlaying) hostMessage()        {}
func (SongPosChanged) hostMessage()    {}
func (SetTimeSig) hostMessage()        {}
func (CollectFile) hostMessage()       {}
func (SetInternalParam) hostMessage()  {}
func (SetNumSends) hostMessage()       {}
func (LoadFile) hostMessage()          {}
func (SetFitTime) hostMessage()        {}
func (SetSamplesPerTick) hostMessage() {}
func (SetIdleTime) hostMessage()       {}
func (SetFocus) hostMessage()          {}
func (Transport) hostMessage()         {}
func (MIDIIn) hostMessage()            {}
func (RoutingChanged) hostMessage()    {}
func (GetParamInfo) hostMessage()      {}
func (ProjLoaded) hostMessage()        {}
func (WrapperLoadState) hostMessage()  {}
func (ShowSettings) hostMessage()      {}
func (SetIOLatency) hostMessage()      {}
func (PreferredNumIO) hostMessage()    {}
func (Unknown) hostMessage()           {}

// DecodeHostMessage turns a raw dispatcher call into its typed form. The
// decoded view may alias host memory (samples, state data); it must not be
// retained past the call.
func DecodeHostMessage(m Message) HostMessage {
	switch m.ID {
	case FPDShowEditor:
		if m.Value == 1 {
			return ShowEditor{} // hide
		}
		return ShowEditor{Window: unsafe.Pointer(uintptr(m.Value))}
	case FPDProcessMode:
		return ProcessMode{Flags: ProcessModeFlags(m.Value)}
	case FPDFlush:
		return Flush{}
	case FPDSetBlockSize:
		return SetBlockSize{Frames: m.Value}
	case FPDSetSampleRate:
		return SetSampleRate{Rate: m.Value}
	case FPDWindowMinMax:
		return WindowMinMax{
			Rect:    unsafe.Pointer(uintptr(m.Index)),
			SnapPtr: unsafe.Pointer(uintptr(m.Value)),
		}
	case FPDKillAVoice:
		return KillVoice{}
	case FPDUseVoiceLevels:
		return UseVoiceLevels{Kind: m.Index}
	case FPDSetPreset:
		return SetPreset{Index: m.Index}
	case FPDChanSampleChanged:
		var samples []float32
		if m.Value != 0 {
			samples = unsafe.Slice((*float32)(unsafe.Pointer(uintptr(m.Value))), WavetableSize)
		}
		return ChanSampleChanged{Samples: samples}
	case FPDSetEnabled:
		return SetEnabled{Enabled: m.Value != 0}
	case FPDSetPlaying:
		return SetPlaying{Playing: m.Value != 0}
	case FPDSongPosChanged:
		return SongPosChanged{}
	case FPDSetTimeSig:
		return SetTimeSig{Sig: timeSigFromPtr(m.Value)}
	case FPDCollectFile:
		return CollectFile{Index: m.Index}
	case FPDSetInternalParam:
		return SetInternalParam{Index: m.Index, Value: m.Value}
	case FPDSetNumSends:
		return SetNumSends{Sends: m.Value}
	case FPDLoadFile:
		return LoadFile{Path: goStringFromPtr(m.Value)}
	case FPDSetFitTime:
		return SetFitTime{Beats: Float32FromRaw(m.Value)}
	case FPDSetSamplesPerTick:
		return SetSamplesPerTick{Samples: Float32FromRaw(m.Value)}
	case FPDSetIdleTime:
		return SetIdleTime{Millis: m.Value}
	case FPDSetFocus:
		return SetFocus{Focused: m.Value != 0}
	case FPDTransport:
		return Transport{Kind: m.Index, Value: ValuePtr(m.Value)}
	case FPDMIDIIn:
		return MIDIIn{Message: MidiMessageFromRaw(m.Value)}
	case FPDRoutingChanged:
		return RoutingChanged{}
	case FPDGetParamInfo:
		return GetParamInfo{Index: m.Index}
	case FPDProjLoaded:
		return ProjLoaded{Loaded: m.Value != 0}
	case FPDWrapperLoadState:
		var data []byte
		if m.Index != 0 && m.Value > 0 {
			data = unsafe.Slice((*byte)(unsafe.Pointer(uintptr(m.Index))), m.Value)
		}
		return WrapperLoadState{Data: data}
	case FPDShowSettings:
		return ShowSettings{Shown: m.Value != 0}
	case FPDSetIOLatency:
		return SetIOLatency{Input: m.Index, Output: m.Value}
	case FPDPreferredNumIO:
		return PreferredNumIO{Outputs: m.Index != 0}
	default:
		return Unknown{Msg: m}
	}
}

// timeSigFromPtr unpacks a PTimeSigInfo value (three consecutive ints).
func timeSigFromPtr(raw IntPtr) TimeSignature {
	if raw == 0 {
		return TimeSignature{}
	}
	v := unsafe.Slice((*uint32)(unsafe.Pointer(uintptr(raw))), 3)
	return TimeSignature{StepsPerBar: v[0], StepsPerBeat: v[1], PPQ: v[2]}
}

// goStringFromPtr copies a host-owned NUL-terminated string.
func goStringFromPtr(raw IntPtr) string {
	if raw == 0 {
		return ""
	}
	p := unsafe.Pointer(uintptr(raw))
	n := 0
	for *(*byte)(unsafe.Add(p, n)) != 0 {
		n++
	}
	return string(unsafe.Slice((*byte)(p), n))
}
