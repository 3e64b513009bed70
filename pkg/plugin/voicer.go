package plugin

// #include <stdlib.h>
// #include "../../include/flp/fp_plugclass.h"
//
// static inline intptr_t flp_voicer_trig_out(TFruityPlugHost* h, TVoiceParams* params, intptr_t index, intptr_t tag) {
//     return h->lpVtbl->TriggerOutputVoice(h, params, index, tag);
// }
// static inline void flp_voicer_release_out(TFruityPlugHost* h, intptr_t handle) { h->lpVtbl->OutputVoice_Release(h, handle); }
// static inline void flp_voicer_kill_out(TFruityPlugHost* h, intptr_t handle)    { h->lpVtbl->OutputVoice_Kill(h, handle); }
// static inline int32_t flp_voicer_out_event(TFruityPlugHost* h, intptr_t handle, intptr_t id, intptr_t value, intptr_t flags) {
//     return h->lpVtbl->OutputVoice_ProcessEvent(h, handle, id, value, flags);
// }
// static inline void flp_voicer_release(TFruityPlugHost* h, intptr_t tag) { h->lpVtbl->Voice_Release(h, tag); }
// static inline void flp_voicer_kill(TFruityPlugHost* h, intptr_t tag)    { h->lpVtbl->Voice_Kill(h, tag, 1); }
// static inline int32_t flp_voicer_event(TFruityPlugHost* h, intptr_t tag, intptr_t id, intptr_t value, intptr_t flags) {
//     return h->lpVtbl->Voice_ProcessEvent(h, tag, id, value, flags);
// }
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// Voicer lets the plugin drive the host side of its own voices. tag is
// the host tag received in VoiceHandler.Trigger.
type Voicer struct {
	host *Host
}

// Release tells the host the voice should go silent (note off). The host
// will call back VoiceHandler.Release.
func (v *Voicer) Release(tag int) {
	C.flp_voicer_release(v.host.ptr, C.intptr_t(tag))
}

// Kill tells the host the voice can be freed. The host will call back
// VoiceHandler.Kill.
func (v *Voicer) Kill(tag int) {
	C.flp_voicer_kill(v.host.ptr, C.intptr_t(tag))
}

// OnEvent reports a voice event to the host and returns the host's
// answer.
func (v *Voicer) OnEvent(tag int, id, value, flags flp.IntPtr) flp.ValuePtr {
	return flp.ValuePtr(C.flp_voicer_event(v.host.ptr, C.intptr_t(tag), C.intptr_t(id), C.intptr_t(value), C.intptr_t(flags)))
}

// OutVoicer drives output voices (voice effects inside Patcher). The
// params block given to the host at trigger is owned here and released
// at kill.
type OutVoicer struct {
	host *Host
	live map[int]*OutVoice
}

// OutVoice is one live output voice.
type OutVoice struct {
	tag    int        // plugin-chosen tag
	handle flp.IntPtr // host handle
	params *C.TVoiceParams
}

// Tag returns the plugin-chosen tag.
func (v *OutVoice) Tag() int { return v.tag }

// Params reads back the levels the voice was triggered with.
func (v *OutVoice) Params() VoiceParams {
	return voiceParamsFromC(v.params)
}

// Trigger starts an output voice with the given levels. It returns nil
// when the output has no destination; the params block is freed
// immediately in that case.
func (o *OutVoicer) Trigger(params VoiceParams, index, tag int) *OutVoice {
	block := (*C.TVoiceParams)(C.malloc(C.sizeof_TVoiceParams))
	block.InitLevels = levelParamsToC(params.InitLevels)
	block.FinalLevels = levelParamsToC(params.FinalLevels)

	handle := flp.IntPtr(C.flp_voicer_trig_out(o.host.ptr, block, C.intptr_t(index), C.intptr_t(tag)))
	if handle == flp.VoiceHandleNull {
		C.free(unsafe.Pointer(block))
		return nil
	}

	voice := &OutVoice{tag: tag, handle: handle, params: block}
	o.live[tag] = voice
	return voice
}

// Release puts the voice in its release stage.
func (o *OutVoicer) Release(tag int) {
	if v, ok := o.live[tag]; ok {
		C.flp_voicer_release_out(o.host.ptr, C.intptr_t(v.handle))
	}
}

// Kill ends the voice and frees its params block, exactly once.
func (o *OutVoicer) Kill(tag int) {
	v, ok := o.live[tag]
	if !ok {
		return
	}
	delete(o.live, tag)
	C.flp_voicer_kill_out(o.host.ptr, C.intptr_t(v.handle))
	C.free(unsafe.Pointer(v.params))
	v.params = nil
}

// OnEvent reports an event on the voice and returns the host's answer;
// the second result is false for an unknown tag.
func (o *OutVoicer) OnEvent(tag int, id, value, flags flp.IntPtr) (flp.ValuePtr, bool) {
	v, ok := o.live[tag]
	if !ok {
		return 0, false
	}
	res := C.flp_voicer_out_event(o.host.ptr, C.intptr_t(v.handle), C.intptr_t(id), C.intptr_t(value), C.intptr_t(flags))
	return flp.ValuePtr(res), true
}

func levelParamsToC(l LevelParams) C.TLevelParams {
	return C.TLevelParams{
		Pan:   C.float(l.Pan),
		Vol:   C.float(l.Vol),
		Pitch: C.float(l.Pitch),
		FCut:  C.float(l.FCut),
		FRes:  C.float(l.FRes),
	}
}
