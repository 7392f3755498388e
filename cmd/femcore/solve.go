package main

import (
	"fmt"

	"github.com/RaysceneNS/femcore/loop"
	"github.com/RaysceneNS/femcore/mesher"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/progress"
	"github.com/RaysceneNS/femcore/solver"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newSolveCommand() *cobra.Command {
	var (
		thickness, young, poisson float64
		spacing                   float64
	)

	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Mesh and solve the built-in bracket load case",
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, err := buildBracketModel(spacing)
			if err != nil {
				return err
			}

			s := solver.New(thickness, young, poisson)
			reporter := progress.Func(func(p progress.TaskProgress) {
				if verbose {
					log.Debug().Str("phase", p.Text).Int("percent", p.Percent).Msg("solve progress")
				}
			})
			s.Solve(mdl, reporter)
			mdl.PlotAverageVonMises()

			fmt.Fprintf(cmd.OutOrStdout(), "converged=%v minVonMises=%.4f maxVonMises=%.4f\n",
				s.Converged, mdl.MinValue, mdl.MaxValue)
			return nil
		},
	}

	cmd.Flags().Float64Var(&thickness, "thickness", 10, "plate thickness")
	cmd.Flags().Float64Var(&young, "young", 30000, "Young's modulus")
	cmd.Flags().Float64Var(&poisson, "poisson", 0.25, "Poisson's ratio")
	cmd.Flags().Float64Var(&spacing, "spacing", 1, "maximum sample spacing")
	return cmd
}

// buildBracketModel assembles the bracket scenario: an outer rectangle
// with three circular lug holes, fixed at its two base corners and
// downward-loaded along a strip at its top edge.
func buildBracketModel(spacing float64) (*model.Model, error) {
	outerBuilder := loop.NewBuilder()
	outerBuilder.AddRectangle(25, 5, 25, 5)
	outer := outerBuilder.Build(true, spacing)

	m := mesher.New().AddLoop(outer)
	for _, c := range [][3]float64{{26, 5, 4}, {9, 5, 4}, {41, 5, 4}} {
		holeBuilder := loop.NewBuilder()
		holeBuilder.AddCircle(c[0], c[1], c[2])
		m.AddLoop(holeBuilder.Build(false, spacing))
	}

	mdl, err := m.Triangulate(nil)
	if err != nil {
		return nil, err
	}

	for i := range mdl.Nodes {
		n := &mdl.Nodes[i]
		x, y := n.Position.X, n.Position.Y

		if approxEqual(y, 0) && x < 5 {
			n.FixAll()
		}
		if approxEqual(y, 0) && x > 45 {
			n.FixAll()
		}
		if approxEqual(y, 10) && x > 20 && x < 26 {
			n.ApplyLoad(0, (x-20)*-250)
		}
		if approxEqual(y, 10) && x >= 26 && x < 31 {
			n.ApplyLoad(0, (31-x)*-250)
		}
	}

	return mdl, nil
}

func approxEqual(a, b float64) bool {
	const tol = 1e-2
	d := a - b
	if d < 0 {
		d = -d
	}
	return d < tol
}
