package plugin

// #cgo CFLAGS: -I../../include
// #include <stdlib.h>
// #include <string.h>
// #include "../../include/flp/fp_plugclass.h"
//
// // Straight vtable translations, one per host service. No retries, no
// // caching; render-path calls must stay allocation-free.
//
// static inline intptr_t flp_host_dispatcher(TFruityPlugHost* h, TPluginTag tag, intptr_t id, intptr_t index, intptr_t value) {
//     return h->lpVtbl->Dispatcher(h, tag, id, index, value);
// }
// static inline void flp_host_on_param_changed(TFruityPlugHost* h, TPluginTag tag, int32_t index, int32_t value) {
//     h->lpVtbl->OnParamChanged(h, tag, index, value);
// }
// static inline void flp_host_on_hint(TFruityPlugHost* h, TPluginTag tag, char* text) {
//     h->lpVtbl->OnHint(h, tag, text);
// }
// static inline void flp_host_on_controller_changed(TFruityPlugHost* h, TPluginTag tag, intptr_t index, intptr_t value) {
//     h->lpVtbl->OnControllerChanged(h, tag, index, value);
// }
// static inline void flp_host_compute_lr_vol(TFruityPlugHost* h, float pan, float vol, float* l, float* r) {
//     h->lpVtbl->ComputeLRVol(h, l, r, pan, vol);
// }
// static inline void flp_host_midi_out(TFruityPlugHost* h, TPluginTag tag, uint8_t status, uint8_t data1, uint8_t data2, uint8_t port, int32_t delayed) {
//     TMIDIOutMsg* msg = (TMIDIOutMsg*)malloc(sizeof(TMIDIOutMsg));
//     msg->Status = status;
//     msg->Data1 = data1;
//     msg->Data2 = data2;
//     msg->Port = port;
//     if (delayed) {
//         h->lpVtbl->MIDIOut_Delayed(h, tag, (intptr_t)msg);
//     } else {
//         h->lpVtbl->MIDIOut(h, tag, (intptr_t)msg);
//     }
// }
// static inline void flp_host_plug_msg_delayed(TFruityPlugHost* h, TPluginTag tag, intptr_t msg) {
//     h->lpVtbl->PlugMsg_Delayed(h, tag, msg);
// }
// static inline void flp_host_plug_msg_kill(TFruityPlugHost* h, TPluginTag tag, intptr_t msg) {
//     h->lpVtbl->PlugMsg_Kill(h, tag, msg);
// }
// static inline void flp_host_lock_mix(TFruityPlugHost* h)   { h->lpVtbl->LockMix(h); }
// static inline void flp_host_unlock_mix(TFruityPlugHost* h) { h->lpVtbl->UnlockMix(h); }
// static inline void flp_host_lock_plugin(TFruityPlugHost* h, TPluginTag tag)   { h->lpVtbl->LockPlugin(h, tag); }
// static inline void flp_host_unlock_plugin(TFruityPlugHost* h, TPluginTag tag) { h->lpVtbl->UnlockPlugin(h, tag); }
// static inline void flp_host_suspend_output(TFruityPlugHost* h) { h->lpVtbl->SuspendOutput(h); }
// static inline void flp_host_resume_output(TFruityPlugHost* h)  { h->lpVtbl->ResumeOutput(h); }
// static inline void* flp_host_get_send_buffer(TFruityPlugHost* h, intptr_t num) {
//     return h->lpVtbl->GetSendBuffer(h, num);
// }
// static inline void* flp_host_get_mix_buffer(TFruityPlugHost* h, int32_t num) {
//     return h->lpVtbl->GetMixBuffer(h, num);
// }
// static inline void* flp_host_get_ins_buffer(TFruityPlugHost* h, TPluginTag tag, int32_t ofs) {
//     return h->lpVtbl->GetInsBuffer(h, tag, ofs);
// }
// static inline TIOBuffer flp_host_get_in_buffer(TFruityPlugHost* h, TPluginTag tag, intptr_t index) {
//     TIOBuffer buf = {0, 0};
//     h->lpVtbl->GetInBuffer(h, tag, index, &buf);
//     return buf;
// }
// static inline TIOBuffer flp_host_get_out_buffer(TFruityPlugHost* h, TPluginTag tag, intptr_t index) {
//     TIOBuffer buf = {0, 0};
//     h->lpVtbl->GetOutBuffer(h, tag, index, &buf);
//     return buf;
// }
// static inline uint8_t flp_host_load_sample(TFruityPlugHost* h, TSampleHandle* handle, char* filename, int32_t flags) {
//     return h->lpVtbl->LoadSample(h, handle, filename, NULL, flags);
// }
// static inline void* flp_host_get_sample_data(TFruityPlugHost* h, TSampleHandle handle, int32_t* length) {
//     return h->lpVtbl->GetSampleData(h, handle, length);
// }
// static inline void flp_host_close_sample(TFruityPlugHost* h, TSampleHandle handle) {
//     h->lpVtbl->CloseSample(h, handle);
// }
// static inline void flp_host_get_sample_info(TFruityPlugHost* h, TSampleHandle handle, TSampleInfo* info) {
//     h->lpVtbl->GetSampleInfo(h, handle, info);
// }
// static inline void flp_host_get_sample_region(TFruityPlugHost* h, TSampleHandle handle, int32_t num, TSampleRegion* region) {
//     h->lpVtbl->GetSampleRegion(h, handle, num, region);
// }
// static inline int32_t flp_host_song_mixing_time(TFruityPlugHost* h)   { return h->lpVtbl->GetSongMixingTime(h); }
// static inline double flp_host_song_mixing_time_a(TFruityPlugHost* h)  { return h->lpVtbl->GetSongMixingTime_A(h); }
// static inline double flp_host_song_playing_time(TFruityPlugHost* h)   { return h->lpVtbl->GetSongPlayingTime(h); }
// static inline uint8_t flp_host_prompt_edit(TFruityPlugHost* h, int32_t x, int32_t y, char* caption, char* text, int32_t* color) {
//     return h->lpVtbl->PromptEdit(h, x, y, caption, text, color);
// }
// static inline void flp_host_voice_release(TFruityPlugHost* h, intptr_t tag) { h->lpVtbl->Voice_Release(h, tag); }
// static inline void flp_host_voice_kill(TFruityPlugHost* h, intptr_t tag)    { h->lpVtbl->Voice_Kill(h, tag, 1); }
// static inline int32_t flp_host_voice_event(TFruityPlugHost* h, intptr_t tag, intptr_t id, intptr_t value, intptr_t flags) {
//     return h->lpVtbl->Voice_ProcessEvent(h, tag, id, value, flags);
// }
// static inline intptr_t flp_host_trig_out_voice(TFruityPlugHost* h, TVoiceParams* params, intptr_t index, intptr_t tag) {
//     return h->lpVtbl->TriggerOutputVoice(h, params, index, tag);
// }
// static inline void flp_host_release_out_voice(TFruityPlugHost* h, intptr_t handle) { h->lpVtbl->OutputVoice_Release(h, handle); }
// static inline void flp_host_kill_out_voice(TFruityPlugHost* h, intptr_t handle)    { h->lpVtbl->OutputVoice_Kill(h, handle); }
// static inline int32_t flp_host_out_voice_event(TFruityPlugHost* h, intptr_t handle, intptr_t id, intptr_t value, intptr_t flags) {
//     return h->lpVtbl->OutputVoice_ProcessEvent(h, handle, id, value, flags);
// }
// static inline float* flp_host_wave_table(TFruityPlugHost* h, int32_t n)  { return h->WaveTables[n]; }
// static inline float* flp_host_temp_buffer(TFruityPlugHost* h, int32_t n) { return (float*)h->TempBuffers[n]; }
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// Host is the plugin's view of the host, bound to one instance tag. All
// methods are straight vtable translations.
type Host struct {
	ptr *C.TFruityPlugHost
	tag C.TPluginTag

	voicer    *Voicer
	outVoicer *OutVoicer
}

func newHost(ptr unsafe.Pointer, tag flp.IntPtr) *Host {
	h := &Host{ptr: (*C.TFruityPlugHost)(ptr), tag: C.TPluginTag(tag)}
	h.voicer = &Voicer{host: h}
	h.outVoicer = &OutVoicer{host: h, live: make(map[int]*OutVoice)}
	return h
}

// Version is the host version, 1.2.3 stored as 01002003.
func (h *Host) Version() int { return int(h.ptr.HostVersion) }

// AppHandle is the host application window handle, for slaving windows.
func (h *Host) AppHandle() uintptr { return uintptr(h.ptr.AppHandle) }

// Dispatch sends one raw message to the host. Prefer the typed senders.
func (h *Host) Dispatch(id, index, value flp.IntPtr) flp.IntPtr {
	return flp.IntPtr(C.flp_host_dispatcher(h.ptr, h.tag, C.intptr_t(id), C.intptr_t(index), C.intptr_t(value)))
}

// OnParamChanged tells the host to store an automated parameter change.
func (h *Host) OnParamChanged(index, value int) {
	C.flp_host_on_param_changed(h.ptr, h.tag, C.int32_t(index), C.int32_t(value))
}

// OnHint shows text in the host hint bar.
func (h *Host) OnHint(text string) {
	cs := C.CString(text)
	defer C.free(unsafe.Pointer(cs))
	C.flp_host_on_hint(h.ptr, h.tag, cs)
}

// OnControllerChanged reports an internal controller change; to be called
// from Tick by controller plugins.
func (h *Host) OnControllerChanged(index, value int) {
	C.flp_host_on_controller_changed(h.ptr, h.tag, C.intptr_t(index), C.intptr_t(value))
}

// ComputeLRVol turns pan and volume into left/right levels.
func (h *Host) ComputeLRVol(pan, vol float32) (left, right float32) {
	var l, r C.float
	C.flp_host_compute_lr_vol(h.ptr, C.float(pan), C.float(vol), &l, &r)
	return float32(l), float32(r)
}

// MIDIOut sends a MIDI out message immediately. The message block is
// allocated here and owned by the host.
func (h *Host) MIDIOut(msg flp.MidiMessage) {
	C.flp_host_midi_out(h.ptr, h.tag, C.uint8_t(msg.Status), C.uint8_t(msg.Data1), C.uint8_t(msg.Data2), midiPort(msg), 0)
}

// MIDIOutDelayed sends a MIDI out message once the MIDI tick reaches the
// current mixer tick.
func (h *Host) MIDIOutDelayed(msg flp.MidiMessage) {
	C.flp_host_midi_out(h.ptr, h.tag, C.uint8_t(msg.Status), C.uint8_t(msg.Data1), C.uint8_t(msg.Data2), midiPort(msg), 1)
}

func midiPort(msg flp.MidiMessage) C.uint8_t {
	if msg.Port < 0 {
		return 0
	}
	return C.uint8_t(msg.Port)
}

// LoopOut asks for msg to be dispatched back to LoopIn when the current
// mixing tick plays. Requires FlagMsgOut.
func (h *Host) LoopOut(msg flp.IntPtr) {
	C.flp_host_plug_msg_delayed(h.ptr, h.tag, C.intptr_t(msg))
}

// LoopKill cancels a buffered LoopOut message.
func (h *Host) LoopKill(msg flp.IntPtr) {
	C.flp_host_plug_msg_kill(h.ptr, h.tag, C.intptr_t(msg))
}

// LockMix prevents new voice creation and rendering.
func (h *Host) LockMix() { C.flp_host_lock_mix(h.ptr) }

// UnlockMix undoes LockMix.
func (h *Host) UnlockMix() { C.flp_host_unlock_mix(h.ptr) }

// LockPlugin is an alternative to LockMix that won't freeze audio. GUI
// thread only, and slow.
func (h *Host) LockPlugin() { C.flp_host_lock_plugin(h.ptr, h.tag) }

// UnlockPlugin undoes LockPlugin.
func (h *Host) UnlockPlugin() { C.flp_host_unlock_plugin(h.ptr, h.tag) }

// SuspendOutput stops the sound before a lengthy operation.
func (h *Host) SuspendOutput() { C.flp_host_suspend_output(h.ptr) }

// ResumeOutput undoes SuspendOutput.
func (h *Host) ResumeOutput() { C.flp_host_resume_output(h.ptr) }

// frames wraps a host buffer pointer. Views are only valid during the
// current render call.
func hostFrames(p unsafe.Pointer, n int) [][2]float32 {
	if p == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*[2]float32)(p), n)
}

// SendBuffer returns send track num's buffer for the current render
// block of n frames (see SetNumSends).
func (h *Host) SendBuffer(num, n int) [][2]float32 {
	return hostFrames(C.flp_host_get_send_buffer(h.ptr, C.intptr_t(num)), n)
}

// MixBuffer returns the mixer track buffer at offset num from the track
// the generator renders into; 0 is the current rendering buffer.
// Generators only, render path only.
func (h *Host) MixBuffer(num, n int) [][2]float32 {
	return hostFrames(C.flp_host_get_mix_buffer(h.ptr, C.int32_t(num)), n)
}

// InsBuffer returns the add-only insert buffer at offset ofs (+1 next,
// -1 previous, 0 forbidden). Only valid during RenderGen; protect writes
// with LockMix.
func (h *Host) InsBuffer(ofs, n int) [][2]float32 {
	return hostFrames(C.flp_host_get_ins_buffer(h.ptr, h.tag, C.int32_t(ofs)), n)
}

// InBuffer returns the read-only input buffer index (first = 1) and
// whether it holds data. Render path only.
func (h *Host) InBuffer(index, n int) (buf [][2]float32, filled bool) {
	io := C.flp_host_get_in_buffer(h.ptr, h.tag, C.intptr_t(index))
	return hostFrames(io.Buffer, n), io.Flags&flp.IOFilled != 0
}

// OutBuffer returns the add-only output buffer index (first = 1). Render
// path only; protect writes with LockMix.
func (h *Host) OutBuffer(index, n int) [][2]float32 {
	io := C.flp_host_get_out_buffer(h.ptr, h.tag, C.intptr_t(index))
	return hostFrames(io.Buffer, n)
}

// WaveTable returns one of the host's shared wavetables (0..9; sine,
// triangle, square, saw, analog saw, noise are defined).
func (h *Host) WaveTable(n int) []float32 {
	if n < 0 || n > 9 {
		return nil
	}
	p := C.flp_host_wave_table(h.ptr, C.int32_t(n))
	if p == nil {
		return nil
	}
	return unsafe.Slice((*float32)(unsafe.Pointer(p)), flp.WavetableSize)
}

// TempBuffer returns one of the host's scratch stereo buffers (0..3),
// guaranteed at least the size of the block being rendered. Render path
// only.
func (h *Host) TempBuffer(num, n int) [][2]float32 {
	if num < 0 || num > 3 {
		return nil
	}
	return hostFrames(unsafe.Pointer(C.flp_host_temp_buffer(h.ptr, C.int32_t(num))), n)
}

// SongMixingTime is the current mixing time in whole ticks.
func (h *Host) SongMixingTime() int {
	return int(C.flp_host_song_mixing_time(h.ptr))
}

// SongMixingTimeExact is the current mixing time in ticks, with decimals.
func (h *Host) SongMixingTimeExact() float64 {
	return float64(C.flp_host_song_mixing_time_a(h.ptr))
}

// SongPlayingTime is the current playing time in ticks, with decimals.
func (h *Host) SongPlayingTime() float64 {
	return float64(C.flp_host_song_playing_time(h.ptr))
}

// Voices is the host-side handler for the plugin's own voices.
func (h *Host) Voices() *Voicer { return h.voicer }

// OutVoices is the host-side handler for output voices (voice effects).
func (h *Host) OutVoices() *OutVoicer { return h.outVoicer }
