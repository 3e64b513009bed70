package midi

import (
	"sort"
	"sync"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// Scheduled is one outgoing message waiting for its tick.
type Scheduled struct {
	Tick int
	Msg  flp.MidiMessage
}

// Queue schedules outgoing MIDI messages by host tick. MIDI out plugins
// fill it from the GUI or MIDI threads and drain it on MIDITick.
type Queue struct {
	mu     sync.Mutex
	events []Scheduled
	sorted bool
}

// NewQueue creates an empty queue.
func NewQueue() *Queue {
	return &Queue{
		events: make([]Scheduled, 0, 128),
		sorted: true,
	}
}

// Add schedules a message for the given tick.
func (q *Queue) Add(tick int, msg flp.MidiMessage) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, Scheduled{Tick: tick, Msg: msg})
	q.sorted = false
}

// PopDue removes and returns all messages scheduled up to and including
// tick, in tick order.
func (q *Queue) PopDue(tick int) []flp.MidiMessage {
	q.mu.Lock()
	defer q.mu.Unlock()

	q.sortLocked()
	n := sort.Search(len(q.events), func(i int) bool {
		return q.events[i].Tick > tick
	})
	if n == 0 {
		return nil
	}

	due := make([]flp.MidiMessage, n)
	for i := 0; i < n; i++ {
		due[i] = q.events[i].Msg
	}
	copy(q.events, q.events[n:])
	q.events = q.events[:len(q.events)-n]
	return due
}

// Clear drops everything, e.g. when playback relocates.
func (q *Queue) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = q.events[:0]
	q.sorted = true
}

// Shift moves every pending message by the given tick delta.
func (q *Queue) Shift(delta int) {
	q.mu.Lock()
	defer q.mu.Unlock()
	for i := range q.events {
		q.events[i].Tick += delta
	}
}

// Len is the number of pending messages.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

func (q *Queue) sortLocked() {
	if q.sorted {
		return
	}
	sort.SliceStable(q.events, func(i, j int) bool {
		return q.events[i].Tick < q.events[j].Tick
	})
	q.sorted = true
}
