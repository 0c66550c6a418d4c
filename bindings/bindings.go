// Command bindings builds the Hildie shared library for foreign callers
// (ctypes, JNA, dlopen):
//
//	go build -buildmode=c-shared -o libhildie_go.so ./bindings
//
// Strings returned by the exports are C-allocated; the caller owns them and
// releases them through FreeString.
package main

/*
#include <stdint.h>
#include <stdlib.h>
*/
import "C"

import (
	"unsafe"

	"github.com/clintonsteiner/hildie-go/internal/buildinfo"
	"github.com/clintonsteiner/hildie-go/internal/capi"
)

//export Greet
func Greet(name *C.char) *C.char {
	return C.CString(capi.Greet(C.GoString(name)))
}

//export Add
func Add(a, b C.int64_t) C.int64_t {
	return C.int64_t(capi.Add(int64(a), int64(b)))
}

// GreetAll takes a JSON array of names and returns a JSON array of greetings
// of the same length and order. Returns NULL when the input document does not
// decode; that is the only failure mode.
//
//export GreetAll
func GreetAll(namesJSON *C.char) *C.char {
	out, err := capi.GreetAll([]byte(C.GoString(namesJSON)))
	if err != nil {
		return nil
	}
	return C.CString(string(out))
}

//export HildieVersion
func HildieVersion() *C.char {
	return C.CString(buildinfo.Summary())
}

//export FreeString
func FreeString(s *C.char) {
	C.free(unsafe.Pointer(s))
}

// main is required for -buildmode=c-shared; it never runs.
func main() {}
