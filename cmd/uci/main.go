package main

import (
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/chzyer/readline"
	"github.com/cricklet/minimaxgo/internal/engine"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/uci"
	"github.com/pkg/profile"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) (code int) {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, "recover()", r)
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			code = 1
		}
	}()

	if Contains(args, "profile") {
		profilePath := RootDir() + "/data/CmdUciMain"
		p := profile.Start(profile.ProfilePath(profilePath))
		defer p.Stop()
	}
	args = FilterSlice(args, func(arg string) bool {
		return arg != "profile"
	})

	if len(args) > 0 && args[0] == "options" {
		for _, option := range engine.AllOptions {
			fmt.Println(option)
		}
		return 0
	}

	options, err := engine.OptionsFromArgs(args...)
	if !IsNil(err) {
		fmt.Fprintln(os.Stderr, err.Message())
		return 1
	}

	level := zerolog.InfoLevel
	if options.Debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(level).With().Timestamp().Logger()
	logger := NewZeroLogger(log)
	logger.Level = zerolog.DebugLevel

	var reader uci.LineReader = uci.NewScannerReader(os.Stdin)
	var out io.Writer = os.Stdout
	if IsTerminal(os.Stdin.Fd()) {
		rl, err := readline.NewEx(&readline.Config{
			Prompt:          "> ",
			InterruptPrompt: "^C",
			EOFPrompt:       "quit",
		})
		if err != nil {
			log.Warn().Err(err).Msg("readline unavailable, reading plain stdin")
		} else {
			defer rl.Close()
			reader = uci.NewReadlineReader(rl)
			out = rl.Stdout()
		}
	}

	output := NewLineWriter(out)
	e := engine.NewEngine(output, engine.WithOptions(options), engine.WithLogger(logger))
	runner := uci.NewUciRunner(e, output, logger)

	err = runner.Run(reader)
	e.Close()
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("uci loop failed")
		return 1
	}
	return 0
}
