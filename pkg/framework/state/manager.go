// Package state serializes plugin state for the host's project and
// preset files. The format is versioned and saving the state right after
// loading it reproduces the same bytes.
package state

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/justyntemme/flpgo/pkg/framework/param"
)

var magic = [4]byte{'F', 'L', 'P', 'G'}

// Manager handles plugin state saving and loading.
type Manager struct {
	version  uint32
	registry *param.Registry
	saveFn   CustomSaveFunc
	loadFn   CustomLoadFunc
}

// CustomSaveFunc saves plugin state beyond parameters.
type CustomSaveFunc func(w io.Writer) error

// CustomLoadFunc loads the state written by the matching CustomSaveFunc.
type CustomLoadFunc func(r io.Reader) error

// NewManager creates a state manager over a parameter registry.
func NewManager(registry *param.Registry) *Manager {
	return &Manager{
		version:  1,
		registry: registry,
	}
}

// SetCustomState sets hooks for saving and loading extra state.
func (m *Manager) SetCustomState(save CustomSaveFunc, load CustomLoadFunc) {
	m.saveFn = save
	m.loadFn = load
}

// Save writes the plugin state to w.
func (m *Manager) Save(w io.Writer) error {
	if _, err := w.Write(magic[:]); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, m.version); err != nil {
		return err
	}

	count := uint32(m.registry.Count())
	if err := binary.Write(w, binary.LittleEndian, count); err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		var value float64
		if p := m.registry.Get(i); p != nil {
			value = p.GetValue()
		}
		if err := binary.Write(w, binary.LittleEndian, value); err != nil {
			return err
		}
	}

	if m.saveFn != nil {
		if err := binary.Write(w, binary.LittleEndian, uint32(1)); err != nil {
			return err
		}
		return m.saveFn(w)
	}
	return binary.Write(w, binary.LittleEndian, uint32(0))
}

// Load reads the plugin state from r.
func (m *Manager) Load(r io.Reader) error {
	var header [4]byte
	if _, err := io.ReadFull(r, header[:]); err != nil {
		return err
	}
	if header != magic {
		return fmt.Errorf("state: bad header %q", header)
	}

	var version uint32
	if err := binary.Read(r, binary.LittleEndian, &version); err != nil {
		return err
	}
	if version > m.version {
		return fmt.Errorf("state: version %d is newer than supported %d", version, m.version)
	}

	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return err
	}
	for i := 0; i < int(count); i++ {
		var value float64
		if err := binary.Read(r, binary.LittleEndian, &value); err != nil {
			return err
		}
		// Extra values are skipped for forward compatibility.
		if p := m.registry.Get(i); p != nil {
			p.SetValue(value)
		}
	}

	var hasCustom uint32
	if err := binary.Read(r, binary.LittleEndian, &hasCustom); err != nil {
		return err
	}
	if hasCustom != 0 {
		if m.loadFn == nil {
			return fmt.Errorf("state: stream has custom data but no loader is set")
		}
		return m.loadFn(r)
	}
	return nil
}
