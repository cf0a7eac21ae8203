package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvfactor/factorgraph"
)

var errNoStates = errors.New("no states: pass --state or add states to the document")

func newEnergyCmd() *cobra.Command {
	var states []string

	cmd := &cobra.Command{
		Use:   "energy <model>",
		Short: "Evaluate the energy of one or more assignments",
		Long: `Evaluate the total energy of assignments. Each --state is a comma-separated
list with one state per variable, e.g. --state 0,1,0. Without --state the
document's own states are evaluated.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, g, err := loadGraph(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			var obs []*factorgraph.Observation
			for _, s := range states {
				st, err := parseState(s)
				if err != nil {
					return err
				}
				obs = append(obs, factorgraph.NewObservation(st, nil))
			}
			if len(obs) == 0 {
				obs = doc.Observations()
			}
			if len(obs) == 0 {
				return errNoStates
			}

			w := cmd.OutOrStdout()
			for _, o := range obs {
				e, err := g.EvaluateObservation(o)
				if err != nil {
					return err
				}
				fmt.Fprintf(w, "%v\t%s\n", o.Decode(), styleNumber.Render(strconv.FormatFloat(e, 'g', -1, 64)))
			}
			return nil
		},
	}

	cmd.Flags().StringArrayVarP(&states, "state", "s", nil, "assignment to evaluate, e.g. 0,1,0 (repeatable)")
	return cmd
}

// parseState parses "0,1,2" into []int{0, 1, 2}.
func parseState(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("state %q: %w", s, err)
		}
		out[i] = v
	}
	return out, nil
}
