package plugin

// #include <stdlib.h>
// #include <string.h>
// #include "../../include/flp/fp_plugclass.h"
//
// static inline uint8_t flp_sample_load(TFruityPlugHost* h, TSampleHandle* handle, char* filename, int32_t flags) {
//     return h->lpVtbl->LoadSample(h, handle, filename, NULL, flags);
// }
// static inline void* flp_sample_data(TFruityPlugHost* h, TSampleHandle handle, int32_t* length) {
//     return h->lpVtbl->GetSampleData(h, handle, length);
// }
// static inline void flp_sample_close(TFruityPlugHost* h, TSampleHandle handle) {
//     h->lpVtbl->CloseSample(h, handle);
// }
// static inline void flp_sample_info(TFruityPlugHost* h, TSampleHandle handle, TSampleInfo* info) {
//     h->lpVtbl->GetSampleInfo(h, handle, info);
// }
// static inline void flp_sample_region(TFruityPlugHost* h, TSampleHandle handle, int32_t num, TSampleRegion* region) {
//     h->lpVtbl->GetSampleRegion(h, handle, num, region);
// }
import "C"

import (
	"errors"
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// ErrSampleLoad is returned when the host could not load a sample.
var ErrSampleLoad = errors.New("plugin: host could not load sample")

// Sample is one sample held by the host sample manager.
type Sample struct {
	host   *Host
	handle C.TSampleHandle

	// Path is the filename the host actually located.
	Path string
}

// SampleInfo describes a loaded sample.
type SampleInfo struct {
	Length      int // in samples
	SolidLength int // without ending silence
	LoopStart   int // -1 when no loop points
	LoopEnd     int
	RateConv    float64 // host rate * RateConv = sample rate
	NumRegions  int
	NumBeats    float32
	Tempo       float32
	NumChans    int // 1 mono, 2 stereo
	Format      int // 0 = 16-bit int, 1 = 32-bit float
}

// SampleRegion is one region of a sample.
type SampleRegion struct {
	Start  int
	End    int
	Name   string
	Info   string
	Time   float32 // beat position, -1 if not supported
	KeyNum int     // linked MIDI note, -1 if not supported
}

// LoadSample asks the host to load a sample file, creating one if
// necessary. The returned Path holds the file the host located (it can
// differ from path when SampleShowDialog is set).
func (h *Host) LoadSample(path string, flags flp.SampleLoadFlags) (*Sample, error) {
	// the host writes the located filename back, room for 256 chars
	buf := (*C.char)(C.calloc(flp.MaxNameLen, 1))
	defer C.free(unsafe.Pointer(buf))
	cpath := C.CString(truncateName(path))
	C.strcpy(buf, cpath)
	C.free(unsafe.Pointer(cpath))

	var handle C.TSampleHandle
	if C.flp_sample_load(h.ptr, &handle, buf, C.int32_t(flags)) == 0 {
		return nil, ErrSampleLoad
	}
	return &Sample{host: h, handle: handle, Path: C.GoString(buf)}, nil
}

// Data returns the raw sample data and its length in samples. The memory
// is host-owned; it stays valid until Close.
func (s *Sample) Data() (unsafe.Pointer, int) {
	var length C.int32_t
	p := C.flp_sample_data(s.host.ptr, s.handle, &length)
	return p, int(length)
}

// Info fills in the sample details.
func (s *Sample) Info() SampleInfo {
	var ci C.TSampleInfo
	ci.Size = C.sizeof_TSampleInfo
	ci.NumChans = -1
	ci.Format = -1
	C.flp_sample_info(s.host.ptr, s.handle, &ci)
	return SampleInfo{
		Length:      int(ci.Length),
		SolidLength: int(ci.SolidLength),
		LoopStart:   int(ci.LoopStart),
		LoopEnd:     int(ci.LoopEnd),
		RateConv:    float64(ci.SmpRateConv),
		NumRegions:  int(ci.NumRegions),
		NumBeats:    float32(ci.NumBeats),
		Tempo:       float32(ci.Tempo),
		NumChans:    int(ci.NumChans),
		Format:      int(ci.Format),
	}
}

// Region returns region num of the sample (see SampleInfo.NumRegions).
func (s *Sample) Region(num int) SampleRegion {
	var cr C.TSampleRegion
	C.flp_sample_region(s.host.ptr, s.handle, C.int32_t(num), &cr)
	return SampleRegion{
		Start:  int(cr.SampleStart),
		End:    int(cr.SampleEnd),
		Name:   C.GoString(&cr.Name[0]),
		Info:   C.GoString(&cr.Info[0]),
		Time:   float32(cr.Time),
		KeyNum: int(cr.KeyNum),
	}
}

// Close releases the sample in the host.
func (s *Sample) Close() {
	C.flp_sample_close(s.host.ptr, s.handle)
}
