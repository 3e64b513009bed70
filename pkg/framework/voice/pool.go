// Package voice manages the voices of a generator. The pool mints the
// handles handed back to the host; handles are monotonic and never
// reused within a pool, so a stale release or kill can't hit a newer
// voice.
package voice

import "github.com/justyntemme/flpgo/pkg/dsp"

// Params are the levels a voice is triggered with.
type Params struct {
	Pan   float32 // -1..1
	Vol   float32 // 0..1
	Pitch float32 // cents, semitone = Pitch/100
	FCut  float32
	FRes  float32
}

// Renderer produces the audio of one voice.
type Renderer interface {
	// Trigger starts the sound with the given levels.
	Trigger(p Params)
	// Release starts the release stage (note off).
	Release()
	// Render adds up to len(dst) frames into dst and returns the frame
	// count, less than len(dst) when the sound ends inside the block.
	Render(dst [][2]float32) int
	// Active reports whether the voice still produces sound.
	Active() bool
}

// Voice is one live voice.
type Voice struct {
	ID  int // pool handle, unique for the life of the pool
	Tag int // host tag, used for host callbacks
	R   Renderer

	released bool
}

// Released reports whether the voice is in its release stage.
func (v *Voice) Released() bool { return v.released }

// Pool tracks live voices and mints their handles.
type Pool struct {
	next    int
	max     int
	live    map[int]*Voice
	order   []int // trigger order, for stealing
	factory func() Renderer
	scratch [][2]float32
}

// NewPool creates a pool capped at max voices. factory builds the
// renderer for each new voice.
func NewPool(max int, factory func() Renderer) *Pool {
	if max < 1 {
		max = 1
	}
	return &Pool{
		next:    1,
		max:     max,
		live:    make(map[int]*Voice),
		factory: factory,
	}
}

// Trigger starts a voice and returns it with a fresh handle. When the
// pool is full the oldest voice is stolen first.
func (p *Pool) Trigger(params Params, tag int) *Voice {
	if len(p.live) >= p.max {
		p.steal()
	}

	v := &Voice{ID: p.next, Tag: tag, R: p.factory()}
	p.next++
	v.R.Trigger(params)
	p.live[v.ID] = v
	p.order = append(p.order, v.ID)
	return v
}

// Get looks up a live voice, nil for unknown or ended handles.
func (p *Pool) Get(id int) *Voice {
	return p.live[id]
}

// Release puts the voice in its release stage. Unknown handles are
// ignored.
func (p *Pool) Release(id int) {
	if v, ok := p.live[id]; ok && !v.released {
		v.released = true
		v.R.Release()
	}
}

// Kill removes the voice immediately. Unknown handles are ignored.
func (p *Pool) Kill(id int) {
	if _, ok := p.live[id]; !ok {
		return
	}
	delete(p.live, id)
	for i, ord := range p.order {
		if ord == id {
			p.order = append(p.order[:i], p.order[i+1:]...)
			break
		}
	}
}

// KillWeakest kills the most expendable voice and reports whether one
// was killed. Released voices go first, then the oldest.
func (p *Pool) KillWeakest() bool {
	for _, id := range p.order {
		if p.live[id].released {
			p.Kill(id)
			return true
		}
	}
	if len(p.order) > 0 {
		p.Kill(p.order[0])
		return true
	}
	return false
}

// steal removes the oldest voice to make room.
func (p *Pool) steal() {
	if len(p.order) > 0 {
		p.Kill(p.order[0])
	}
}

// Len is the number of live voices.
func (p *Pool) Len() int {
	return len(p.live)
}

// Each visits the live voices in trigger order.
func (p *Pool) Each(fn func(*Voice)) {
	for _, id := range p.order {
		fn(p.live[id])
	}
}

// Mix renders all live voices added together into dst and returns the
// longest frame count written. Voices that end inside the block are
// removed.
func (p *Pool) Mix(dst [][2]float32) int {
	dsp.Clear(dst)
	if len(p.scratch) < len(dst) {
		p.scratch = make([][2]float32, len(dst))
	}

	var done []int
	longest := 0
	for _, id := range p.order {
		v := p.live[id]
		scratch := p.scratch[:len(dst)]
		dsp.Clear(scratch)
		n := v.R.Render(scratch)
		dsp.Add(dst, scratch[:n])
		if n > longest {
			longest = n
		}
		if !v.R.Active() {
			done = append(done, id)
		}
	}
	for _, id := range done {
		p.Kill(id)
	}
	return longest
}
