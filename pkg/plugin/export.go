package plugin

// #cgo CFLAGS: -I../../include
// #include <stdlib.h>
// #include <string.h>
// #include "../../bridge/bridge.h"
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
	"github.com/justyntemme/flpgo/pkg/framework/debug"
)

// cStringCache implements stringCarrier over the C heap. The wrapper keeps
// exactly one transferred string alive per instance; the next string
// result replaces it.
type cStringCache struct {
	cur *C.char
}

func (c *cStringCache) carry(s string) flp.IntPtr {
	if c.cur != nil {
		C.free(unsafe.Pointer(c.cur))
	}
	c.cur = C.CString(s)
	return flp.IntPtr(uintptr(unsafe.Pointer(c.cur)))
}

func (c *cStringCache) release() {
	if c.cur != nil {
		C.free(unsafe.Pointer(c.cur))
		c.cur = nil
	}
}

// buildInfo copies the descriptor into a host-readable C block. The block
// and its strings are owned by the wrapper until destroy.
func buildInfo(in *instance) *C.TFruityPlugInfo {
	info := in.plug.Info()

	block := (*C.TFruityPlugInfo)(C.calloc(1, C.sizeof_TFruityPlugInfo))
	block.SDKVersion = C.int32_t(flp.CurrentSDKVersion)
	block.LongName = C.CString(info.LongName)
	block.ShortName = C.CString(info.ShortName)
	block.Flags = C.int32_t(info.Flags)
	block.NumParams = C.int32_t(info.NumParams)
	block.DefPoly = C.int32_t(info.DefPoly)
	block.NumOutCtrls = C.int32_t(info.NumOutCtrls)
	block.NumOutVoices = C.int32_t(info.NumOutVoices)
	return block
}

// freeInfo releases the descriptor strings first, then the block itself.
func freeInfo(block *C.TFruityPlugInfo) {
	if block == nil {
		return
	}
	C.free(unsafe.Pointer(block.LongName))
	C.free(unsafe.Pointer(block.ShortName))
	C.free(unsafe.Pointer(block))
}

//export goCreatePlugInstance
func goCreatePlugInstance(host unsafe.Pointer, tag C.intptr_t, infoOut **C.TFruityPlugInfo) C.uintptr_t {
	defer recoverPanic("CreatePlugInstance")

	if globalFactory == nil || host == nil {
		return 0
	}

	h := newHost(host, flp.IntPtr(tag))
	plug, err := globalFactory(h, int(tag))
	if err != nil || plug == nil {
		debug.Error("plugin construction failed: %v", err)
		return 0
	}

	strings := &cStringCache{}
	in := newInstance(plug, h, flp.IntPtr(tag), strings)

	block := buildInfo(in)
	in.cleanup = func() {
		freeInfo(block)
		strings.release()
	}
	*infoOut = block

	return C.uintptr_t(registerInstance(in))
}

//export goPlugDestroy
func goPlugDestroy(id C.uintptr_t) {
	defer recoverPanic("DestroyObject")

	in := getInstance(uintptr(id))
	if in == nil {
		return
	}
	in.destroy()
	unregisterInstance(uintptr(id))
}

//export goPlugDispatcher
func goPlugDispatcher(id C.uintptr_t, msgID, index, value C.intptr_t) C.intptr_t {
	defer recoverPanic("Dispatcher")

	in := getInstance(uintptr(id))
	if in == nil {
		return 0
	}
	return C.intptr_t(in.dispatcher(flp.Message{
		ID:    flp.IntPtr(msgID),
		Index: flp.IntPtr(index),
		Value: flp.IntPtr(value),
	}))
}

//export goPlugIdle
func goPlugIdle(id C.uintptr_t) {
	defer recoverPanic("Idle")

	if in := getInstance(uintptr(id)); in != nil {
		in.idle()
	}
}

// hostIStream is the cgo-backed flp.RawStream over the host's COM stream.
type hostIStream struct {
	ptr unsafe.Pointer
}

func (s hostIStream) RawRead(p []byte) (int, int32) {
	var moved C.uint32_t
	hr := C.flp_istream_read(s.ptr, unsafe.Pointer(&p[0]), C.uint32_t(len(p)), &moved)
	return int(moved), int32(hr)
}

func (s hostIStream) RawWrite(p []byte) (int, int32) {
	var moved C.uint32_t
	hr := C.flp_istream_write(s.ptr, unsafe.Pointer(&p[0]), C.uint32_t(len(p)), &moved)
	return int(moved), int32(hr)
}

//export goPlugSaveRestoreState
func goPlugSaveRestoreState(id C.uintptr_t, stream unsafe.Pointer, save C.int32_t) {
	defer recoverPanic("SaveRestoreState")

	in := getInstance(uintptr(id))
	if in == nil || stream == nil {
		return
	}
	in.saveRestoreState(flp.NewHostStream(hostIStream{ptr: stream}), save != 0)
}

//export goPlugGetName
func goPlugGetName(id C.uintptr_t, section, index, value C.int32_t, name *C.char) {
	defer recoverPanic("GetName")

	in := getInstance(uintptr(id))
	if in == nil || name == nil {
		return
	}
	buf := unsafe.Slice((*byte)(unsafe.Pointer(name)), flp.MaxNameLen)
	in.getName(int(section), int(index), int(value), buf)
}

//export goPlugProcessEvent
func goPlugProcessEvent(id C.uintptr_t, eventID, eventValue, flags C.int32_t) C.int32_t {
	defer recoverPanic("ProcessEvent")

	in := getInstance(uintptr(id))
	if in == nil {
		return 0
	}
	return C.int32_t(in.processEvent(int(eventID), int(eventValue), int(flags)))
}

//export goPlugProcessParam
func goPlugProcessParam(id C.uintptr_t, index, value, recFlags C.int32_t) C.int32_t {
	defer recoverPanic("ProcessParam")

	in := getInstance(uintptr(id))
	if in == nil {
		return 0
	}
	return C.int32_t(in.processParam(int(index), int(value), int(recFlags)))
}

// frames views an interleaved stereo float buffer as Go frames. Host
// memory, valid for the current call only.
func frames(buf *C.float, n C.int32_t) [][2]float32 {
	if buf == nil || n <= 0 {
		return nil
	}
	return unsafe.Slice((*[2]float32)(unsafe.Pointer(buf)), int(n))
}

//export goPlugEffRender
func goPlugEffRender(id C.uintptr_t, src, dst *C.float, length C.int32_t) {
	defer recoverPanic("Eff_Render")

	in := getInstance(uintptr(id))
	if in == nil {
		return
	}
	in.effRender(frames(src, length), frames(dst, length))
}

//export goPlugGenRender
func goPlugGenRender(id C.uintptr_t, dst *C.float, length *C.int32_t) {
	defer recoverPanic("Gen_Render")

	in := getInstance(uintptr(id))
	if in == nil || length == nil {
		return
	}
	n := in.genRender(frames(dst, *length))
	*length = C.int32_t(n)
}

//export goPlugTriggerVoice
func goPlugTriggerVoice(id C.uintptr_t, params *C.TVoiceParams, tag C.intptr_t) C.intptr_t {
	defer recoverPanic("TriggerVoice")

	in := getInstance(uintptr(id))
	if in == nil || params == nil {
		return C.intptr_t(flp.VoiceHandleNull)
	}
	return C.intptr_t(in.triggerVoice(voiceParamsFromC(params), int(tag)))
}

// voiceParamsFromC copies both level sets field by field; the C block is
// host-owned and only valid during the trigger call.
func voiceParamsFromC(p *C.TVoiceParams) VoiceParams {
	return VoiceParams{
		InitLevels:  levelParamsFromC(&p.InitLevels),
		FinalLevels: levelParamsFromC(&p.FinalLevels),
	}
}

func levelParamsFromC(l *C.TLevelParams) LevelParams {
	return LevelParams{
		Pan:   float32(l.Pan),
		Vol:   float32(l.Vol),
		Pitch: float32(l.Pitch),
		FCut:  float32(l.FCut),
		FRes:  float32(l.FRes),
	}
}

//export goPlugVoiceRelease
func goPlugVoiceRelease(id C.uintptr_t, handle C.intptr_t) {
	defer recoverPanic("Voice_Release")

	if in := getInstance(uintptr(id)); in != nil {
		in.voiceRelease(flp.IntPtr(handle))
	}
}

//export goPlugVoiceKill
func goPlugVoiceKill(id C.uintptr_t, handle C.intptr_t) {
	defer recoverPanic("Voice_Kill")

	if in := getInstance(uintptr(id)); in != nil {
		in.voiceKill(flp.IntPtr(handle))
	}
}

//export goPlugVoiceEvent
func goPlugVoiceEvent(id C.uintptr_t, handle C.intptr_t, eventID, eventValue, flags C.int32_t) C.int32_t {
	defer recoverPanic("Voice_ProcessEvent")

	in := getInstance(uintptr(id))
	if in == nil {
		return 0
	}
	return C.int32_t(in.voiceProcessEvent(flp.IntPtr(handle), int(eventID), int(eventValue), int(flags)))
}

//export goPlugVoiceRender
func goPlugVoiceRender(id C.uintptr_t, handle C.intptr_t, dst *C.float, length *C.int32_t) C.int32_t {
	defer recoverPanic("Voice_Render")

	in := getInstance(uintptr(id))
	if in == nil || length == nil {
		return C.int32_t(flp.HResultEPointer)
	}
	n, hr := in.voiceRender(flp.IntPtr(handle), frames(dst, *length))
	if hr != 0 {
		return C.int32_t(hr)
	}
	*length = C.int32_t(n)
	return 0
}

//export goPlugNewTick
func goPlugNewTick(id C.uintptr_t) {
	defer recoverPanic("NewTick")

	if in := getInstance(uintptr(id)); in != nil {
		in.newTick()
	}
}

//export goPlugMIDITick
func goPlugMIDITick(id C.uintptr_t) {
	defer recoverPanic("MIDITick")

	if in := getInstance(uintptr(id)); in != nil {
		in.midiTick()
	}
}

//export goPlugMIDIIn
func goPlugMIDIIn(id C.uintptr_t, msg *C.int32_t) {
	defer recoverPanic("MIDIIn")

	in := getInstance(uintptr(id))
	if in == nil || msg == nil {
		return
	}
	*msg = C.int32_t(in.midiIn(flp.IntPtr(*msg)))
}

//export goPlugMsgIn
func goPlugMsgIn(id C.uintptr_t, msg C.intptr_t) {
	defer recoverPanic("MsgIn")

	if in := getInstance(uintptr(id)); in != nil {
		in.msgIn(flp.IntPtr(msg))
	}
}

//export goPlugOutVoiceEvent
func goPlugOutVoiceEvent(id C.uintptr_t, handle C.intptr_t, eventID, eventValue, flags C.int32_t) C.int32_t {
	defer recoverPanic("OutputVoice_ProcessEvent")

	in := getInstance(uintptr(id))
	if in == nil {
		return 0
	}
	return C.int32_t(in.outVoiceProcessEvent(flp.IntPtr(handle), int(eventID), int(eventValue), int(flags)))
}

//export goPlugOutVoiceKill
func goPlugOutVoiceKill(id C.uintptr_t, handle C.intptr_t) {
	defer recoverPanic("OutputVoice_Kill")

	if in := getInstance(uintptr(id)); in != nil {
		in.outVoiceKill(flp.IntPtr(handle))
	}
}
