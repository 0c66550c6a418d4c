// Package hildie is the core library: a greeting formatter and an integer
// adder, shared by the CLI front ends and the C binding shim. All functions
// are pure and never fail.
package hildie

import "fmt"

// Greet returns a greeting message. The name is substituted verbatim; empty
// strings and whitespace are accepted and echoed back unchanged.
func Greet(name string) string {
	return fmt.Sprintf("Hello from Hildie Rust Library, %s!", name)
}

// Add returns the sum of two integers. Overflow wraps (two's complement).
func Add(a, b int) int {
	return a + b
}

// GreetAll greets each name in order. The result has the same length and
// order as the input; an empty input yields an empty slice.
func GreetAll(names []string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		out = append(out, Greet(n))
	}
	return out
}
