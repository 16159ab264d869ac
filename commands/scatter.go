package commands

import (
	"fmt"

	"github.com/meghashyamc/vector2d/geometry"
	"github.com/spf13/cobra"
)

func (a *app) scatterCommand() *cobra.Command {
	var count int

	cmd := &cobra.Command{
		Use:   "scatter",
		Short: "Draw random points inside the configured area and report their bounding box",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a.applySeed(cmd)

			area := geometry.NewRectangle(a.cfg.GetScatterArea())
			a.log.Info("scattering points", "count", count, "area", area.String())

			out := cmd.OutOrStdout()
			bounds := geometry.EmptyRectangle()
			for i := 0; i < count; i++ {
				p := geometry.NewPoint(0, 0)
				if _, err := p.Randomize(area.TopLeft(), area.BottomRight()).Round(a.precision); err != nil {
					return fmt.Errorf("failed to round point %d: %w", i, err)
				}
				bounds = bounds.Merge(geometry.NewRectangle(p.X, p.Y, p.X, p.Y))
				fmt.Fprintf(out, "point %d: %s\n", i, p)
			}

			if bounds.IsEmpty() {
				fmt.Fprintln(out, "bounds: empty")
				return nil
			}
			center := bounds.Center()
			if _, err := center.Round(a.precision); err != nil {
				return fmt.Errorf("failed to round center: %w", err)
			}
			fmt.Fprintf(out, "bounds: %s\n", bounds)
			fmt.Fprintf(out, "center: %s\n", center)
			a.log.Info("scatter done", "bounds", bounds.String())
			return nil
		},
	}
	cmd.Flags().IntVar(&count, "count", a.cfg.GetScatterCount(), "number of points to draw")

	return cmd
}
