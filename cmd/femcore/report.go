package main

import (
	"fmt"

	"github.com/RaysceneNS/femcore/formatting"
	"github.com/RaysceneNS/femcore/geom"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/solver"
	"github.com/RaysceneNS/femcore/spatial"
	"github.com/spf13/cobra"
)

func newReportCommand() *cobra.Command {
	var (
		thickness, young, poisson float64
		spacing                   float64
		near                      string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Solve the built-in bracket load case and report the node nearest a coordinate",
		RunE: func(cmd *cobra.Command, args []string) error {
			mdl, err := buildBracketModel(spacing)
			if err != nil {
				return err
			}

			s := solver.New(thickness, young, poisson)
			s.Solve(mdl, nil)
			mdl.PlotAverageVonMises()
			mdl.ComputeEdges()

			if near == "" {
				fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d elements=%d boundaryEdges=%d\n",
					len(mdl.Nodes), len(mdl.Elements), len(mdl.Edges))
				return nil
			}

			x, y, err := parseXY(near)
			if err != nil {
				return err
			}
			id, dist, ok := nearestNode(mdl, x, y)
			if !ok {
				return fmt.Errorf("report: model has no nodes")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "nearest to (%g, %g): node %d at distance %.6g — %s\n",
				x, y, id, dist, formatting.NodeString(mdl.Nodes[id]))
			return nil
		},
	}

	cmd.Flags().Float64Var(&thickness, "thickness", 10, "plate thickness")
	cmd.Flags().Float64Var(&young, "young", 30000, "Young's modulus")
	cmd.Flags().Float64Var(&poisson, "poisson", 0.25, "Poisson's ratio")
	cmd.Flags().Float64Var(&spacing, "spacing", 1, "maximum sample spacing")
	cmd.Flags().StringVar(&near, "near", "", "coordinate x,y to map onto the nearest meshed node")
	return cmd
}

// nearestNode indexes every node of a solved model into a spatial.HashGrid
// and returns the node nearest (x,y) — the same proximity lookup a caller
// would use to map a user-specified load or constraint region onto the
// nodes a mesh actually produced.
func nearestNode(mdl *model.Model, x, y float64) (id int, dist float64, ok bool) {
	grid := spatial.NewHashGrid(1)
	for i, n := range mdl.Nodes {
		grid.Add(i, n.Position)
	}
	return grid.Nearest(geom.Point2{X: x, Y: y})
}

func parseXY(s string) (x, y float64, err error) {
	v, err := parseFloatList(s)
	if err != nil {
		return 0, 0, err
	}
	if len(v) != 2 {
		return 0, 0, fmt.Errorf("coordinate %q: want x,y", s)
	}
	return v[0], v[1], nil
}
