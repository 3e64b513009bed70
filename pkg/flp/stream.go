package flp

import "io"

// RawStream is the minimal surface of the host's state stream: one read and
// one write, each reporting the bytes moved and the host's native result
// code (an HRESULT, >= 0 on success).
type RawStream interface {
	RawRead(p []byte) (n int, hresult int32)
	RawWrite(p []byte) (n int, hresult int32)
}

// HostStream adapts a host state stream to io.Reader and io.Writer. It
// forwards calls 1:1 with no internal buffering; failed host calls surface
// as *StreamError carrying the host code unchanged.
type HostStream struct {
	raw RawStream
}

// NewHostStream wraps raw. A nil raw yields a stream whose operations fail
// with ErrInvalidStream.
func NewHostStream(raw RawStream) *HostStream {
	return &HostStream{raw: raw}
}

// Read fills p from the host stream. A nil or empty buffer is rejected
// before the host is touched. A successful zero-byte transfer on a
// non-empty buffer reports io.EOF.
func (s *HostStream) Read(p []byte) (int, error) {
	if s == nil || s.raw == nil {
		return 0, ErrInvalidStream
	}
	if len(p) == 0 {
		return 0, ErrInvalidBuffer
	}
	n, hr := s.raw.RawRead(p)
	if hr < 0 {
		return n, &StreamError{Code: hr}
	}
	if n == 0 {
		return 0, io.EOF
	}
	return n, nil
}

// Write sends p to the host stream. A nil or empty buffer is rejected
// before the host is touched. A short transfer without a host error is
// reported as ErrShortTransfer per the io.Writer contract.
func (s *HostStream) Write(p []byte) (int, error) {
	if s == nil || s.raw == nil {
		return 0, ErrInvalidStream
	}
	if len(p) == 0 {
		return 0, ErrInvalidBuffer
	}
	n, hr := s.raw.RawWrite(p)
	if hr < 0 {
		return n, &StreamError{Code: hr}
	}
	if n < len(p) {
		return n, ErrShortTransfer
	}
	return n, nil
}

var (
	_ io.Reader = (*HostStream)(nil)
	_ io.Writer = (*HostStream)(nil)
)
