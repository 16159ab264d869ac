package commands

import (
	"github.com/meghashyamc/vector2d/config"
	"github.com/meghashyamc/vector2d/geometry"
	"github.com/meghashyamc/vector2d/logger"
	"github.com/spf13/cobra"
)

type app struct {
	cfg *config.Config
	log logger.Logger

	precision int
	metric    string
	seed      int64
}

// NewRootCommand builds the vector2d command tree. Flag defaults come from cfg.
func NewRootCommand(cfg *config.Config, log logger.Logger) *cobra.Command {
	a := &app{cfg: cfg, log: log}

	root := &cobra.Command{
		Use:           "vector2d",
		Short:         "Exercise the 2D vector, line and rectangle primitives",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().IntVar(&a.precision, "precision", cfg.GetRoundPrecision(), "decimal digits results are rounded to (0-10)")
	root.PersistentFlags().StringVar(&a.metric, "metric", cfg.GetDistanceMetric(), "distance metric: euclidean or manhattan")
	root.PersistentFlags().Int64Var(&a.seed, "seed", 0, "random seed; overrides random.seed from the config")

	root.AddCommand(a.scatterCommand(), a.measureCommand(), a.rectsCommand())
	return root
}

// applySeed reseeds the geometry random source from the flag or the config.
func (a *app) applySeed(cmd *cobra.Command) {
	if cmd.Flags().Changed("seed") {
		geometry.Seed(a.seed)
		a.log.Debug("seeded random source from flag", "seed", a.seed)
		return
	}
	if seed, ok := a.cfg.GetRandomSeed(); ok {
		geometry.Seed(seed)
		a.log.Debug("seeded random source from config", "seed", seed)
	}
}
