package plugin

import (
	"io"

	"github.com/justyntemme/flpgo/pkg/flp"
	"github.com/justyntemme/flpgo/pkg/framework/debug"
)

// instance holds everything the wrapper keeps per plugin instance. All
// boundary logic lives here, in plain Go; the cgo layer only translates
// argument types and looks the instance up by id.
type instance struct {
	plug    Plugin
	host    *Host
	tag     flp.IntPtr
	strings stringCarrier
	voices  *voiceTable

	editor    flp.ValuePtr // last window handle seen in ShowEditor
	cleanup   func()       // frees boundary-owned memory (info block, cached strings)
	destroyed bool
}

func newInstance(plug Plugin, host *Host, tag flp.IntPtr, strings stringCarrier) *instance {
	return &instance{
		plug:    plug,
		host:    host,
		tag:     tag,
		strings: strings,
		voices:  newVoiceTable(),
	}
}

// dispatcher handles one host dispatcher call. The window handle of
// ShowEditor is captured before forwarding; everything else goes to the
// plugin untouched and its result is returned verbatim.
func (in *instance) dispatcher(msg flp.Message) flp.IntPtr {
	if msg.ID == flp.FPDShowEditor {
		if msg.Value == 1 {
			in.editor = 0
		} else {
			in.editor = flp.ValuePtr(msg.Value)
		}
	}

	res := in.plug.OnMessage(flp.DecodeHostMessage(msg))
	if res == nil {
		return 0
	}
	return res.raw(in.strings)
}

func (in *instance) idle() { in.plug.Idle() }

// saveRestoreState routes the host stream to the plugin's state methods.
// The host guarantees exclusion with rendering, so no locking here.
func (in *instance) saveRestoreState(stream *flp.HostStream, save bool) {
	var err error
	if save {
		err = in.plug.SaveState(stream)
	} else {
		err = in.plug.LoadState(stream)
	}
	if err != nil {
		debug.Error("state %s failed: %v", stateVerb(save), err)
	}
}

func stateVerb(save bool) string {
	if save {
		return "save"
	}
	return "load"
}

// getName answers a text request into the host's fixed buffer. buf is the
// host's 256-byte name area; longer answers are cut to 255 bytes plus
// terminator.
func (in *instance) getName(section, index, value int, buf []byte) {
	var name string
	if req := flp.DecodeNameRequest(section, index, value); req != nil {
		name = in.plug.NameOf(req)
	}
	if len(name) > len(buf)-1 {
		name = name[:len(buf)-1]
	}
	n := copy(buf, name)
	buf[n] = 0
}

func (in *instance) processEvent(id, value, flags int) flp.IntPtr {
	in.plug.ProcessEvent(flp.DecodeEvent(id, value, flags))
	return 0
}

func (in *instance) processParam(index, value, recFlags int) flp.IntPtr {
	res := in.plug.ProcessParam(index, flp.ValuePtr(value), flp.ProcessParamFlags(recFlags))
	if res == nil {
		return 0
	}
	return res.raw(in.strings)
}

// effRender processes one effect block. src and dst may be the same
// buffer; dst always has the full requested length.
func (in *instance) effRender(src, dst [][2]float32) {
	in.plug.Render(src, dst)
}

// genRender produces one generator block and returns the frame count the
// plugin actually wrote, clamped to the buffer. The caller writes the
// count back to the host; frames past it are left untouched.
func (in *instance) genRender(dst [][2]float32) int {
	n := in.plug.RenderGen(dst)
	if n < 0 {
		return 0
	}
	if n > len(dst) {
		return len(dst)
	}
	return n
}

// triggerVoice copies the level params and forwards the trigger. The
// minted handle is remembered until the matching kill.
func (in *instance) triggerVoice(params VoiceParams, tag int) flp.IntPtr {
	v := in.plug.Voices()
	if v == nil {
		return flp.VoiceHandleNull
	}
	h := v.Trigger(params, tag)
	if h.IsZero() {
		return flp.VoiceHandleNull
	}
	in.voices.insert(h)
	return h.Raw()
}

func (in *instance) voiceRelease(raw flp.IntPtr) {
	v := in.plug.Voices()
	if v == nil {
		return
	}
	if h, ok := in.voices.lookup(raw); ok {
		v.Release(h)
	}
}

// voiceKill forgets the handle exactly once; a second kill for the same
// raw handle is a no-op.
func (in *instance) voiceKill(raw flp.IntPtr) {
	v := in.plug.Voices()
	if v == nil {
		return
	}
	if h, ok := in.voices.forget(raw); ok {
		v.Kill(h)
	}
}

func (in *instance) voiceProcessEvent(raw flp.IntPtr, id, value, flags int) flp.IntPtr {
	v := in.plug.Voices()
	if v == nil {
		return 0
	}
	h, ok := in.voices.lookup(raw)
	if !ok {
		return 0
	}
	res := v.OnEvent(h, flp.DecodeVoiceEvent(id, value, flags))
	if res == nil {
		return 0
	}
	return res.raw(in.strings)
}

// voiceRender streams one voice block for the host sampler. The written
// frame count goes back to the host; a render error maps to E_POINTER,
// which is all the ABI can carry.
func (in *instance) voiceRender(raw flp.IntPtr, dst [][2]float32) (int, int32) {
	v := in.plug.Voices()
	if v == nil {
		return 0, flp.HResultEPointer
	}
	h, ok := in.voices.lookup(raw)
	if !ok {
		return 0, flp.HResultEPointer
	}
	n, err := v.Render(h, dst)
	if err != nil {
		return 0, flp.HResultEPointer
	}
	if n < 0 {
		n = 0
	}
	if n > len(dst) {
		n = len(dst)
	}
	return n, 0
}

func (in *instance) newTick()  { in.plug.Tick() }
func (in *instance) midiTick() { in.plug.MIDITick() }

// midiIn previews one MIDI input message and returns the (possibly
// rewritten) packed form, or MIDIMsgNull when the plugin killed it.
func (in *instance) midiIn(raw flp.IntPtr) flp.IntPtr {
	m := MIDIInput{Msg: flp.MidiMessageFromRaw(raw)}
	in.plug.MIDIIn(&m)
	if m.killed {
		return flp.MIDIMsgNull
	}
	return m.Msg.Raw()
}

func (in *instance) msgIn(msg flp.IntPtr) { in.plug.LoopIn(flp.ValuePtr(msg)) }

func (in *instance) outVoiceProcessEvent(raw flp.IntPtr, id, value, flags int) flp.IntPtr {
	ov := in.plug.OutVoices()
	if ov == nil {
		return 0
	}
	res := ov.OnEvent(IndexVoice(raw), flp.DecodeVoiceEvent(id, value, flags))
	if res == nil {
		return 0
	}
	return res.raw(in.strings)
}

func (in *instance) outVoiceKill(raw flp.IntPtr) {
	if ov := in.plug.OutVoices(); ov != nil {
		ov.Kill(IndexVoice(raw))
	}
}

// destroy releases everything the instance owns exactly once: first the
// boundary memory (descriptor strings, then the info block), then the
// plugin state. A second destroy is a no-op.
func (in *instance) destroy() {
	if in.destroyed {
		debug.Debug("destroy called twice, ignored")
		return
	}
	in.destroyed = true
	if in.cleanup != nil {
		in.cleanup()
	}
	if c, ok := in.plug.(io.Closer); ok {
		if err := c.Close(); err != nil {
			debug.Error("plugin close failed: %v", err)
		}
	}
}
