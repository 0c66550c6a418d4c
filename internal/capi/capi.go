// Package capi is the Go side of the C binding shim. It owns the boundary
// type conversions so the cgo layer in bindings/ stays a thin set of exports
// and the marshalling rules can be tested without cgo.
//
// Sequences cross the boundary as JSON arrays of strings, both ways; the C
// ABI has no portable string-slice type. A document that does not decode is a
// marshalling failure, never a domain one — the library functions themselves
// cannot fail.
package capi

import (
	"encoding/json"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
)

// MarshalError reports a failure converting a value across the C boundary.
type MarshalError struct {
	Cause error
}

func (e *MarshalError) Error() string { return "boundary marshalling: " + e.Cause.Error() }

func (e *MarshalError) Unwrap() error { return e.Cause }

// Greet formats a greeting for name.
func Greet(name string) string {
	return hildie.Greet(name)
}

// Add sums two integers. The boundary pins 64-bit operands so the exported
// contract is stable across platforms.
func Add(a, b int64) int64 {
	return int64(hildie.Add(int(a), int(b)))
}

// GreetAll decodes a JSON array of names, greets each in order, and encodes
// the greetings back as a JSON array. Length and order are preserved; an
// empty input array yields "[]".
func GreetAll(doc []byte) ([]byte, error) {
	var names []string
	if err := json.Unmarshal(doc, &names); err != nil {
		return nil, &MarshalError{Cause: err}
	}
	out, err := json.Marshal(hildie.GreetAll(names))
	if err != nil {
		return nil, &MarshalError{Cause: err}
	}
	return out, nil
}
