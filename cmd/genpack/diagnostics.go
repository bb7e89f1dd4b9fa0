package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/genengine"
	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

func newDiagnosticsCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "diagnostics",
		Short: "Run generation without writing files and report any diagnostics",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configPath)
			if err != nil {
				return err
			}
			return runDiagnostics(cfg)
		},
	}
}

func runDiagnostics(cfg *Config) error {
	registry := strategy.NewRegistry()
	orch := &genengine.Orchestrator{Registry: registry}

	var allDiags []diagnostic.Diagnostic
	unitCount := 0
	for _, pattern := range cfg.Packages {
		pkg, err := symbols.Load(pattern)
		if err != nil {
			return fmt.Errorf("loading %s: %w", pattern, err)
		}
		result := orch.Compile(pkg)
		allDiags = append(allDiags, result.Diagnostics...)
		unitCount += len(result.Units)
	}

	if len(allDiags) == 0 {
		fmt.Printf("%d unit(s) would be generated, no diagnostics\n", unitCount)
		return nil
	}

	fmt.Fprintln(os.Stderr, diagnostic.Join(allDiags))
	return fmt.Errorf("%d diagnostic(s) reported", len(allDiags))
}
