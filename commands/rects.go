package commands

import (
	"fmt"

	"github.com/meghashyamc/vector2d/geometry"
	"github.com/spf13/cobra"
)

func (a *app) rectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "rects [--] xmin1 ymin1 xmax1 ymax1 xmin2 ymin2 xmax2 ymax2",
		Short: "Compare two rectangles",
		Args:  cobra.ExactArgs(8),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := parseFloats(args)
			if err != nil {
				return err
			}

			first := geometry.NewRectangle(v[0], v[1], v[2], v[3])
			second := geometry.NewRectangle(v[4], v[5], v[6], v[7])
			merged := first.Merge(second)
			a.log.Info("compared rectangles", "first", first.String(), "second", second.String(), "merged", merged.String())

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "overlap: %t\n", first.Overlaps(second))
			fmt.Fprintf(out, "disjoint: %t\n", first.Intercept(second))
			fmt.Fprintf(out, "merged: %s\n", merged)
			fmt.Fprintf(out, "first sorts before second: %t\n", first.Less(second))
			return nil
		},
	}
}
