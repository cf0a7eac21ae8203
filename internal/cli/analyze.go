package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

func newAnalyzeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "analyze <model>",
		Short: "Report counts, structure and components of a factor graph",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			title := doc.Name
			if title == "" {
				title = args[0]
			}
			return writeAnalysis(cmd.OutOrStdout(), title, g)
		},
	}
}

// writeAnalysis prints the summary of a connected graph and its components.
func writeAnalysis(w io.Writer, title string, g *factorgraph.FactorGraph) error {
	s := g.Summary()
	if !s.Analyzed {
		if err := g.ConnectComponents(); err != nil {
			return err
		}
		s = g.Summary()
	}

	printTitle(w, title)
	printKV(w, "variables", s.Variables)
	printKV(w, "factors", s.Factors)
	printKV(w, "sources", s.DataSources)
	printKV(w, "edges", s.Edges)
	printKV(w, "states", s.States)
	printKV(w, "components", s.Components)
	printKV(w, "acyclic", s.Acyclic)
	printKV(w, "connected", s.Connected)
	printKV(w, "tree", s.Tree)

	comps, err := g.Components()
	if err != nil {
		return err
	}
	for i, c := range comps {
		printKV(w, fmt.Sprintf("component %d", i), fmt.Sprint(c))
	}

	return nil
}
