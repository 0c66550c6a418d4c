package add

import (
	"fmt"
	"os"
	"strconv"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
	"github.com/spf13/cobra"
)

// Cmd represents the `hildie add` command.
var Cmd = &cobra.Command{
	Use:           "add <a> <b>",
	Short:         "Print the sum of two integers",
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid integer %q", args[0])
		}
		b, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("invalid integer %q", args[1])
		}
		_, err = fmt.Fprintln(os.Stdout, hildie.Add(a, b))
		return err
	},
}
