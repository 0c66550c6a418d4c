package demo

import (
	"strings"
	"testing"

	"github.com/clintonsteiner/hildie-go/internal/testutil"
)

func TestDemoCoversLibrarySurface(t *testing.T) {
	got := testutil.CaptureStdout(t, func() error {
		return Cmd.RunE(Cmd, nil)
	})
	for _, want := range []string{
		"Greet",
		"Add",
		"GreetAll",
		"Hello from Hildie Rust Library, Alice!",
		"add(2, 3) -> 5",
		"Hello from Hildie Rust Library, Diana!",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("output missing %q:\n%s", want, got)
		}
	}
}
