package main

import (
	"fmt"

	"github.com/RaysceneNS/femcore/mesher"
	"github.com/RaysceneNS/femcore/model"
	"github.com/RaysceneNS/femcore/progress"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

func newMeshCommand() *cobra.Command {
	var (
		rect        string
		holes       []string
		spacing     float64
		iterative   bool
		diagnostics bool
	)

	cmd := &cobra.Command{
		Use:   "mesh",
		Short: "Triangulate an outer rectangle with optional circular holes",
		RunE: func(cmd *cobra.Command, args []string) error {
			outer, err := buildRectangleLoop(rect, spacing)
			if err != nil {
				return err
			}
			m := mesher.New().AddLoop(outer)
			for _, h := range holes {
				holeLoop, err := buildCircleHoleLoop(h, spacing)
				if err != nil {
					return err
				}
				m.AddLoop(holeLoop)
			}

			reporter := progress.Func(func(p progress.TaskProgress) {
				if verbose {
					log.Debug().Str("phase", p.Text).Int("percent", p.Percent).Msg("mesh progress")
				}
			})

			var mdl *model.Model
			if iterative {
				mdl, err = m.TriangulateIteratively(reporter)
			} else {
				mdl, err = m.Triangulate(reporter)
			}
			if err != nil {
				return err
			}

			if diagnostics {
				d := mesher.Diagnose(mdl)
				fmt.Fprintf(cmd.OutOrStdout(), "vertices=%d triangles=%d degenerate=%d boundaryEdges=%d\n",
					d.NumVertices, d.NumTriangles, d.NumDegenerateTriangles, d.NumBoundaryEdges)
				return nil
			}

			fmt.Fprintf(cmd.OutOrStdout(), "nodes=%d elements=%d\n", len(mdl.Nodes), len(mdl.Elements))
			return nil
		},
	}

	cmd.Flags().StringVar(&rect, "rect", "0,0,10,10", "outer rectangle as cx,cy,w,h (half-extents)")
	cmd.Flags().StringArrayVar(&holes, "hole", nil, "circular hole as cx,cy,r (repeatable)")
	cmd.Flags().Float64Var(&spacing, "spacing", 1, "maximum sample spacing")
	cmd.Flags().BoolVar(&iterative, "iterative", false, "refine triangle quality iteratively")
	cmd.Flags().BoolVar(&diagnostics, "diagnostics", false, "report vertex/triangle/degenerate/boundary-edge counts instead")
	return cmd
}
