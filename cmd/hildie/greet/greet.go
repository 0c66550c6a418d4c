package greet

import (
	"fmt"
	"os"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
	"github.com/spf13/cobra"
)

// Cmd represents the `hildie greet` command.
var Cmd = &cobra.Command{
	Use:           "greet <name>",
	Short:         "Print a greeting for a name",
	Args:          cobra.ExactArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		_, err := fmt.Fprintln(os.Stdout, hildie.Greet(args[0]))
		return err
	},
}
