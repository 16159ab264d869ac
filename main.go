package main

import (
	"fmt"
	"os"

	"github.com/meghashyamc/vector2d/commands"
	"github.com/meghashyamc/vector2d/config"
	"github.com/meghashyamc/vector2d/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	log := logger.New(cfg.GetLogLevel())

	if err := commands.NewRootCommand(cfg, log).Execute(); err != nil {
		log.Error("error running command", "err", err)
		os.Exit(1)
	}
}
