package flp

import (
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// memStream fakes the host side of a state stream with a byte slice.
type memStream struct {
	data []byte
	pos  int
	hr   int32 // forced result code when < 0
}

func (m *memStream) RawRead(p []byte) (int, int32) {
	if m.hr < 0 {
		return 0, m.hr
	}
	n := copy(p, m.data[m.pos:])
	m.pos += n
	return n, 0
}

func (m *memStream) RawWrite(p []byte) (int, int32) {
	if m.hr < 0 {
		return 0, m.hr
	}
	m.data = append(m.data, p...)
	return len(p), 0
}

func TestHostStreamRoundTrip(t *testing.T) {
	mem := &memStream{}
	s := NewHostStream(mem)

	n, err := s.Write([]byte("plugin state"))
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	buf := make([]byte, 32)
	n, err = s.Read(buf)
	require.NoError(t, err)
	assert.Equal(t, "plugin state", string(buf[:n]))

	_, err = s.Read(buf)
	assert.Equal(t, io.EOF, err)
}

func TestHostStreamRejectsBadBuffers(t *testing.T) {
	s := NewHostStream(&memStream{})

	_, err := s.Read(nil)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
	_, err = s.Write(nil)
	assert.ErrorIs(t, err, ErrInvalidBuffer)
}

func TestHostStreamRejectsNilStream(t *testing.T) {
	s := NewHostStream(nil)
	_, err := s.Read(make([]byte, 4))
	assert.ErrorIs(t, err, ErrInvalidStream)
	_, err = s.Write([]byte{1})
	assert.ErrorIs(t, err, ErrInvalidStream)
}

func TestHostStreamPreservesHostCode(t *testing.T) {
	s := NewHostStream(&memStream{hr: HResultEPointer})

	_, err := s.Read(make([]byte, 4))
	var se *StreamError
	require.ErrorAs(t, err, &se)
	assert.Equal(t, HResultEPointer, se.Code)

	_, err = s.Write([]byte{1})
	require.ErrorAs(t, err, &se)
	assert.Equal(t, HResultEPointer, se.Code)
}
