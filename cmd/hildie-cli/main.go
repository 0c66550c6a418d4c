// Command hildie-cli is the minimal front end: it greets the single
// positional argument and nothing else.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
)

func run(argv []string, stdout, stderr io.Writer) int {
	if len(argv) < 2 {
		fmt.Fprintf(stderr, "Usage: %s <name>\n", argv[0])
		return 1
	}
	fmt.Fprintln(stdout, hildie.Greet(argv[1]))
	return 0
}

func main() {
	os.Exit(run(os.Args, os.Stdout, os.Stderr))
}
