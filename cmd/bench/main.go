package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/cricklet/minimaxgo/internal/bench"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if Contains(args, "profile") {
		p := profile.Start(profile.ProfilePath(RootDir() + "/data/CmdBenchMain"))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, arg := range bench.AllConfigArgs {
			fmt.Println(arg)
		}
		return 0
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := bench.ConfigFromArgs(args...)
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("config")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	progress := CreateProgressBar(len(config.Fens), fmt.Sprintf("depth %v", config.Depth),
		os.Stdout, os.Stdout.Fd(), IsTerminal(os.Stdout.Fd()))

	report, err := bench.Run(ctx, config, progress, &SilentLogger)
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("bench")
		return 1
	}

	fmt.Println(report)
	return 0
}
