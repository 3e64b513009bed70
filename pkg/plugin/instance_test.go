package plugin

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/justyntemme/flpgo/pkg/flp"
	fwplugin "github.com/justyntemme/flpgo/pkg/framework/plugin"
)

// fakeCarrier stands in for the C string cache.
type fakeCarrier struct {
	last string
}

func (c *fakeCarrier) carry(s string) flp.IntPtr {
	c.last = s
	return 42
}

type stubPlugin struct {
	Base

	onMessage func(flp.HostMessage) Result
	nameOf    func(flp.NameRequest) string
	renderGen func([][2]float32) int
	midiIn    func(*MIDIInput)
	voices    VoiceHandler

	closed int
}

func (s *stubPlugin) Info() fwplugin.Info { return fwplugin.Info{} }

func (s *stubPlugin) OnMessage(msg flp.HostMessage) Result {
	if s.onMessage != nil {
		return s.onMessage(msg)
	}
	return NoResult{}
}

func (s *stubPlugin) NameOf(req flp.NameRequest) string {
	if s.nameOf != nil {
		return s.nameOf(req)
	}
	return ""
}

func (s *stubPlugin) RenderGen(dst [][2]float32) int {
	if s.renderGen != nil {
		return s.renderGen(dst)
	}
	return len(dst)
}

func (s *stubPlugin) MIDIIn(m *MIDIInput) {
	if s.midiIn != nil {
		s.midiIn(m)
	}
}

func (s *stubPlugin) Voices() VoiceHandler { return s.voices }

func (s *stubPlugin) Close() error {
	s.closed++
	return nil
}

type stubVoices struct {
	next     int
	released []VoiceHandle
	killed   []VoiceHandle
	renderN  int
	renderE  error
}

func (v *stubVoices) Trigger(params VoiceParams, tag int) VoiceHandle {
	v.next++
	return IndexVoice(100 + v.next)
}

func (v *stubVoices) Release(h VoiceHandle) { v.released = append(v.released, h) }
func (v *stubVoices) Kill(h VoiceHandle)    { v.killed = append(v.killed, h) }

func (v *stubVoices) OnEvent(h VoiceHandle, ev flp.VoiceEvent) Result {
	return IntResult(7)
}

func (v *stubVoices) Render(h VoiceHandle, dst [][2]float32) (int, error) {
	return v.renderN, v.renderE
}

func newTestInstance(p Plugin) (*instance, *fakeCarrier) {
	c := &fakeCarrier{}
	return newInstance(p, nil, 0, c), c
}

func TestDispatcherCapturesEditorHandle(t *testing.T) {
	var got flp.HostMessage
	in, _ := newTestInstance(&stubPlugin{onMessage: func(m flp.HostMessage) Result {
		got = m
		return NoResult{}
	}})

	in.dispatcher(flp.Message{ID: flp.FPDShowEditor, Value: 123})
	assert.Equal(t, flp.ValuePtr(123), in.editor)
	show, ok := got.(flp.ShowEditor)
	require.True(t, ok)
	assert.NotNil(t, show.Window)

	// Value 1 means hide.
	in.dispatcher(flp.Message{ID: flp.FPDShowEditor, Value: 1})
	assert.Equal(t, flp.ValuePtr(0), in.editor)
}

func TestDispatcherResultPassThrough(t *testing.T) {
	res := Result(IntResult(-5))
	in, carrier := newTestInstance(&stubPlugin{onMessage: func(flp.HostMessage) Result {
		return res
	}})

	assert.Equal(t, flp.IntPtr(-5), in.dispatcher(flp.Message{ID: flp.FPDSetEnabled}))

	res = StrResult("hello")
	assert.Equal(t, flp.IntPtr(42), in.dispatcher(flp.Message{ID: flp.FPDSetEnabled}))
	assert.Equal(t, "hello", carrier.last)

	res = nil
	assert.Equal(t, flp.IntPtr(0), in.dispatcher(flp.Message{ID: flp.FPDSetEnabled}))
}

func TestGetNameTruncatesToBuffer(t *testing.T) {
	long := strings.Repeat("x", 300)
	in, _ := newTestInstance(&stubPlugin{nameOf: func(req flp.NameRequest) string {
		if _, ok := req.(flp.NameOfParam); ok {
			return long
		}
		return ""
	}})

	buf := make([]byte, 256)
	in.getName(flp.FPNParam, 0, 0, buf)
	assert.Equal(t, long[:255], string(buf[:255]))
	assert.Equal(t, byte(0), buf[255])

	// Unknown sections answer empty.
	in.getName(-1, 0, 0, buf)
	assert.Equal(t, byte(0), buf[0])
}

func TestGenRenderClampsFrameCount(t *testing.T) {
	n := 0
	in, _ := newTestInstance(&stubPlugin{renderGen: func(dst [][2]float32) int {
		return n
	}})

	dst := make([][2]float32, 16)
	n = 8
	assert.Equal(t, 8, in.genRender(dst))
	n = 100
	assert.Equal(t, 16, in.genRender(dst))
	n = -3
	assert.Equal(t, 0, in.genRender(dst))
}

func TestVoiceKillForgetsHandleOnce(t *testing.T) {
	voices := &stubVoices{}
	in, _ := newTestInstance(&stubPlugin{voices: voices})

	raw := in.triggerVoice(VoiceParams{}, 9)
	assert.Equal(t, flp.IntPtr(101), raw)

	in.voiceRelease(raw)
	require.Len(t, voices.released, 1)

	in.voiceKill(raw)
	in.voiceKill(raw)
	require.Len(t, voices.killed, 1)

	// Dead handles no longer reach the handler.
	in.voiceRelease(raw)
	assert.Len(t, voices.released, 1)
	assert.Equal(t, flp.IntPtr(0), in.voiceProcessEvent(raw, flp.FPVRetrigger, 0, 0))
}

func TestVoiceRenderErrors(t *testing.T) {
	voices := &stubVoices{renderN: 4}
	in, _ := newTestInstance(&stubPlugin{voices: voices})

	dst := make([][2]float32, 8)
	raw := in.triggerVoice(VoiceParams{}, 0)

	n, hr := in.voiceRender(raw, dst)
	assert.Equal(t, 4, n)
	assert.Equal(t, int32(0), hr)

	// Unknown handle.
	n, hr = in.voiceRender(raw+1, dst)
	assert.Equal(t, 0, n)
	assert.Equal(t, flp.HResultEPointer, hr)

	// Counts past the buffer are clamped.
	voices.renderN = 50
	n, _ = in.voiceRender(raw, dst)
	assert.Equal(t, 8, n)
}

func TestTriggerVoiceWithoutHandler(t *testing.T) {
	in, _ := newTestInstance(&stubPlugin{})
	assert.Equal(t, flp.IntPtr(flp.VoiceHandleNull), in.triggerVoice(VoiceParams{}, 0))
}

func TestMIDIInRewriteAndKill(t *testing.T) {
	kill := false
	in, _ := newTestInstance(&stubPlugin{midiIn: func(m *MIDIInput) {
		if kill {
			m.Kill()
			return
		}
		m.Msg.Data2 = 64
	}})

	msg := flp.MidiMessage{Status: 0x90, Data1: 60, Data2: 100}
	out := in.midiIn(msg.Raw())
	assert.Equal(t, uint8(64), flp.MidiMessageFromRaw(out).Data2)

	kill = true
	assert.Equal(t, flp.IntPtr(flp.MIDIMsgNull), in.midiIn(msg.Raw()))
}

func TestDestroyRunsOnce(t *testing.T) {
	p := &stubPlugin{}
	in, _ := newTestInstance(p)

	cleanups := 0
	in.cleanup = func() { cleanups++ }

	in.destroy()
	in.destroy()
	assert.Equal(t, 1, cleanups)
	assert.Equal(t, 1, p.closed)
}
