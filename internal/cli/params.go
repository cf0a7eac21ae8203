package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/dsu"
)

func newParamsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "params <model>",
		Short: "List the graph's named parameters",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			for _, p := range g.Parameters() {
				value := p.Value
				if d, ok := value.(*dsu.DisjointSet); ok {
					value = fmt.Sprintf("%d nodes in %d sets", d.Size(), d.Count())
				}
				fmt.Fprintf(w, "%-14s %-32s %v\n", p.Name, styleKey.Render(p.Description), value)
			}
			return nil
		},
	}
}
