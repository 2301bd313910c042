package main

import (
	"fmt"
	"os"
	"runtime/debug"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/server"
	"github.com/rs/zerolog"
)

func main() {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintln(os.Stderr, fmt.Sprint(r))
			fmt.Fprintln(os.Stderr, string(debug.Stack()))
			os.Exit(1)
		}
	}()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	args := os.Args[1:]
	if len(args) > 0 && args[0] == "options" {
		for _, arg := range server.AllConfigArgs {
			fmt.Println(arg)
		}
		return
	}

	config, err := server.ConfigFromArgs(args...)
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("config")
		os.Exit(1)
	}

	s, err := server.NewServer(config, log)
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("server")
		os.Exit(1)
	}

	err = s.ListenAndServe()
	if !IsNil(err) {
		log.Error().Str("error", err.Message()).Msg("serve")
		os.Exit(1)
	}
}
