package greetall

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/clintonsteiner/hildie-go/pkg/hildie"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	namesPath string
)

type greetingLine struct {
	Name     string `json:"name"`
	Greeting string `json:"greeting"`
}

// Cmd represents the `hildie greet-all` command.
var Cmd = &cobra.Command{
	Use:           "greet-all",
	Short:         "Greet every name listed in a YAML file",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if namesPath == "" {
			return fmt.Errorf("missing required flag: --names")
		}
		names, err := loadNames(namesPath)
		if err != nil {
			return err
		}
		// One JSON line per greeting, in input order.
		enc := json.NewEncoder(os.Stdout)
		for i, g := range hildie.GreetAll(names) {
			if err := enc.Encode(greetingLine{Name: names[i], Greeting: g}); err != nil {
				return err
			}
		}
		return nil
	},
}

// loadNames reads a YAML sequence of scalar names.
func loadNames(path string) ([]string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read names file: %w", err)
	}
	var names []string
	if err := yaml.Unmarshal(b, &names); err != nil {
		return nil, fmt.Errorf("parse names file %s: %w", path, err)
	}
	return names, nil
}

func init() {
	Cmd.Flags().StringVarP(&namesPath, "names", "n", "", "Path to a YAML file holding a sequence of names")
}
