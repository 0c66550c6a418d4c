package demo

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
	"github.com/spf13/cobra"
)

// Cmd represents the `hildie demo` command. It walks through the whole
// library surface with fixed inputs, so the output is stable.
var Cmd = &cobra.Command{
	Use:           "demo",
	Short:         "Showcase the library functions with sample inputs",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		var w io.Writer = os.Stdout

		section(w, "Greet")
		for _, name := range []string{"Alice", "Bob", "Charlie"} {
			fmt.Fprintf(w, "greet(%q) -> %s\n", name, hildie.Greet(name))
		}

		section(w, "Add")
		for _, c := range [][2]int{{2, 3}, {10, 20}, {-5, 10}, {0, 42}} {
			fmt.Fprintf(w, "add(%d, %d) -> %d\n", c[0], c[1], hildie.Add(c[0], c[1]))
		}

		section(w, "GreetAll")
		names := []string{"Alice", "Bob", "Charlie", "Diana"}
		for _, g := range hildie.GreetAll(names) {
			fmt.Fprintln(w, g)
		}
		return nil
	},
}

func section(w io.Writer, title string) {
	fmt.Fprintln(w, strings.Repeat("=", 60))
	fmt.Fprintln(w, title)
	fmt.Fprintln(w, strings.Repeat("=", 60))
}
