// Command cardcheck validates a card number with the Luhn checksum and
// identifies its brand.
//
// Without arguments it prompts for one number on stdin. Numbers given as
// arguments are checked in turn.
//
//	cardcheck [-lang pt] [-table brands.yaml] [-log-level debug] [number ...]
//	cardcheck -dump-table > brands.yaml
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"github.com/dmitrymomot/cardcheck/internal/cli"
	"github.com/dmitrymomot/cardcheck/pkg/logger"
)

func main() {
	cfg, err := cli.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	log := logger.New(
		logger.WithEnvironment(cfg.Env, "cardcheck"),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithOutput(os.Stderr),
	)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Run(ctx, cfg, os.Stdin, os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "cardcheck failed", logger.Error(err))
		stop()
		os.Exit(1)
	}
}
