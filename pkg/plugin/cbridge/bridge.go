// Package cbridge compiles the C side of the plugin wrapper: the vtable,
// the exported entry point and the stream thunks. Plugin implementations
// import it for its side effect only:
//
//	import _ "github.com/justyntemme/flpgo/pkg/plugin/cbridge"
package cbridge

// #cgo CFLAGS: -I../../../include
// #include "../../../bridge/bridge.c"
import "C"
