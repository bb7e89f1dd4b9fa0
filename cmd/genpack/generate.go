package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/genpack/genpack/internal/diagnostic"
	"github.com/genpack/genpack/internal/genengine"
	"github.com/genpack/genpack/internal/strategy"
	"github.com/genpack/genpack/internal/symbols"
)

func newGenerateCmd(configPath *string) *cobra.Command {
	var failOnDiagnostic bool

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write generated Pack/Unpack sources for every configured package",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(*configPath)
			if err != nil {
				return err
			}
			return runGenerate(cfg, failOnDiagnostic)
		},
	}
	cmd.Flags().BoolVar(&failOnDiagnostic, "fail-on-diagnostic", true, "exit non-zero if any package produced a diagnostic")
	return cmd
}

func runGenerate(cfg *Config, failOnDiagnostic bool) error {
	registry := strategy.NewRegistry()
	orch := &genengine.Orchestrator{Registry: registry}

	var allDiags []diagnostic.Diagnostic
	for _, pattern := range cfg.Packages {
		pkg, err := symbols.Load(pattern)
		if err != nil {
			return fmt.Errorf("loading %s: %w", pattern, err)
		}

		result := orch.Compile(pkg)
		allDiags = append(allDiags, result.Diagnostics...)

		dir := pkg.Pkg.PkgPath
		if len(pkg.Pkg.GoFiles) > 0 {
			dir = filepath.Dir(pkg.Pkg.GoFiles[0])
		}
		for _, unit := range result.Units {
			path := filepath.Join(dir, unit.Path)
			if err := os.WriteFile(path, []byte(unit.Source), 0o644); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Println(path)
		}
	}

	if len(allDiags) > 0 {
		fmt.Fprintln(os.Stderr, diagnostic.Join(allDiags))
		if failOnDiagnostic {
			return fmt.Errorf("%d diagnostic(s) reported", len(allDiags))
		}
	}
	return nil
}
