// Package cli implements the fgraph command-line interface.
//
// Commands load a factor-graph document (TOML or YAML, see package model) or
// generate one from a builder topology, then report on it:
//   - analyze: counts, structure (acyclic / connected / tree) and components
//   - energy: energies of the document states or of --state assignments
//   - dot: Graphviz DOT text, or SVG with --svg
//   - params: the graph's named parameter registry
//   - generate: build a topology with package builder and summarize it
//
// All commands support --verbose (-v) for debug-level logging. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/factorgraph"
	"github.com/katalvlaran/lvfactor/model"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion sets the version information displayed by --version.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the CLI with os.Args and returns the first command error.
func Execute(ctx context.Context) error {
	return NewRootCommand(os.Stderr).ExecuteContext(ctx)
}

// NewRootCommand builds the command tree. Log output goes to logw.
func NewRootCommand(logw io.Writer) *cobra.Command {
	var verbose bool

	root := &cobra.Command{
		Use:          "fgraph",
		Short:        "fgraph analyzes factor graphs",
		Long:         `fgraph loads factor-graph documents, classifies their topology, evaluates energies and exports them for visualization.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := log.InfoLevel
			if verbose {
				level = log.DebugLevel
			}
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			cmd.SetContext(withLogger(ctx, newLogger(logw, level)))
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("fgraph {{.Version}}\ncommit: %s\nbuilt: %s\n", commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newAnalyzeCmd())
	root.AddCommand(newEnergyCmd())
	root.AddCommand(newDotCmd())
	root.AddCommand(newParamsCmd())
	root.AddCommand(newGenerateCmd())

	return root
}

// loadGraph loads and builds the document at path.
func loadGraph(ctx context.Context, path string) (*model.Document, *factorgraph.FactorGraph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	doc, err := model.Load(path)
	if err != nil {
		return nil, nil, err
	}
	logger.Debug("Loaded document", "path", path, "name", doc.Name,
		"variables", len(doc.Cardinalities), "factors", len(doc.Factors))

	g, err := doc.Build()
	if err != nil {
		return nil, nil, err
	}
	prog.done("Built graph")

	return doc, g, nil
}
