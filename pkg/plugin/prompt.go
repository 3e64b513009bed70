package plugin

// #include <stdlib.h>
// #include <string.h>
// #include "../../include/flp/fp_plugclass.h"
//
// static inline uint8_t flp_prompt_edit(TFruityPlugHost* h, int32_t x, int32_t y, char* caption, char* text, int32_t* color) {
//     return h->lpVtbl->PromptEdit(h, x, y, caption, text, color);
// }
import "C"

import (
	"unsafe"

	"github.com/justyntemme/flpgo/pkg/flp"
)

// PromptResult is what the user entered in a PromptEdit popup.
type PromptResult struct {
	Text  string
	Color int // -1 when color selection was off
}

// PromptEdit asks the host to prompt the user for a piece of text. Set x
// and y to -1 for a screen-centered popup and color to -1 to hide the
// color selector. ok is false when the user cancelled; ignore the result
// then. GUI thread only.
func (h *Host) PromptEdit(x, y int, caption, initial string, color int) (res PromptResult, ok bool) {
	ccaption := C.CString(caption)
	defer C.free(unsafe.Pointer(ccaption))

	// the host edits the text in place, room for 256 chars
	buf := (*C.char)(C.calloc(flp.MaxNameLen, 1))
	defer C.free(unsafe.Pointer(buf))
	if initial != "" {
		cinitial := C.CString(truncateName(initial))
		C.strcpy(buf, cinitial)
		C.free(unsafe.Pointer(cinitial))
	}

	c := C.int32_t(color)
	if C.flp_prompt_edit(h.ptr, C.int32_t(x), C.int32_t(y), ccaption, buf, &c) == 0 {
		return PromptResult{}, false
	}
	return PromptResult{Text: C.GoString(buf), Color: int(c)}, true
}

func truncateName(s string) string {
	if len(s) > flp.MaxNameLen-1 {
		return s[:flp.MaxNameLen-1]
	}
	return s
}
