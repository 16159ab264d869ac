package commands

import (
	"fmt"
	"strconv"

	"github.com/meghashyamc/vector2d/geometry"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
)

func (a *app) measureCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "measure [--] x1 y1 x2 y2",
		Short: "Measure the line between two points",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			coords, err := parseFloats(args)
			if err != nil {
				return err
			}
			calc, err := geometry.MetricByName(a.metric)
			if err != nil {
				return err
			}

			line := geometry.NewLine(geometry.NewPoint(coords[0], coords[1]), geometry.NewPoint(coords[2], coords[3]))
			length := line.Length(calc)
			a.log.Info("measured line", "from", line.Point1().String(), "to", line.Point2().String(), "metric", a.metric, "length", length)

			direction := line.Point2()
			direction.Subtract(line.Point1())
			angles := geometry.NewVector(direction.HorizontalAngleDeg(), direction.VerticalAngleDeg())
			if _, err := angles.Round(a.precision); err != nil {
				return fmt.Errorf("failed to round angles: %w", err)
			}

			reverse := line.Reverse()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "length: %s\n", strconv.FormatFloat(length, 'f', -1, 64))
			fmt.Fprintf(out, "reverse: %s -> %s\n", reverse.Point1(), reverse.Point2())
			fmt.Fprintf(out, "angles (deg): horizontal %s vertical %s\n",
				strconv.FormatFloat(angles.X, 'f', -1, 64), strconv.FormatFloat(angles.Y, 'f', -1, 64))
			return nil
		},
	}
}

func parseFloats(args []string) ([]float64, error) {
	values := make([]float64, len(args))
	for i, arg := range args {
		v, err := cast.ToFloat64E(arg)
		if err != nil {
			return nil, fmt.Errorf("invalid coordinate %q: %w", arg, err)
		}
		values[i] = v
	}
	return values, nil
}
