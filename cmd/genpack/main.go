// Command genpack is the host analyzer's command-line front end: it loads
// one or more Go packages, runs the Orchestrator over every type carrying
// the genpack:serialize directive, and either writes the resulting
// Pack/Unpack sources to disk or prints the diagnostics a dry run
// produced.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:   "genpack",
		Short: "Generate deterministic Pack/Unpack methods for serializable types",
	}
	root.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to genpack.yaml (default: search upward from the current directory)")

	root.AddCommand(newGenerateCmd(&configPath))
	root.AddCommand(newDiagnosticsCmd(&configPath))
	return root
}

// resolveConfig loads the config at configPath, or searches upward from
// the current directory when configPath is empty.
func resolveConfig(configPath string) (*Config, error) {
	if configPath == "" {
		dir, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		found, err := FindConfig(dir)
		if err != nil {
			return nil, err
		}
		if found == "" {
			return nil, fmt.Errorf("no genpack.yaml found in %s or any parent directory", dir)
		}
		configPath = found
	}
	return LoadConfig(configPath)
}
