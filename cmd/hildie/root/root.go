package root

import (
	"github.com/clintonsteiner/hildie-go/cmd/hildie/add"
	"github.com/clintonsteiner/hildie-go/cmd/hildie/demo"
	"github.com/clintonsteiner/hildie-go/cmd/hildie/greet"
	"github.com/clintonsteiner/hildie-go/cmd/hildie/greetall"
	"github.com/clintonsteiner/hildie-go/cmd/hildie/version"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for hildie.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hildie",
		Short: "CLI for the Hildie library: greeting formatter and integer adder",
		RunE: func(cmd *cobra.Command, args []string) error {
			// Show help when no subcommand is provided.
			return cmd.Help()
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Subcommands
	cmd.AddCommand(version.VersionCmd)
	cmd.AddCommand(greet.Cmd)
	cmd.AddCommand(add.Cmd)
	cmd.AddCommand(greetall.Cmd)
	cmd.AddCommand(demo.Cmd)

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	return cmd.Execute()
}
