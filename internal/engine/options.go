package engine

import (
	"strconv"
	"strings"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/search"
)

type Options struct {
	DefaultDepth int
	Debug        bool
}

var DefaultOptions = Options{
	DefaultDepth: search.DefaultDepth,
}

var AllOptions = []string{
	"depth=N",
	"debug",
}

func ParseDepth(value string) (int, Error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, Errorf("depth '%v' is not a number", value)
	}
	if n < search.MinDepth || n > search.MaxDepth {
		return 0, Errorf("depth %v is outside of [%v, %v]", n, search.MinDepth, search.MaxDepth)
	}
	return n, NilError
}

func OptionsFromArgs(args ...string) (Options, Error) {
	options := DefaultOptions

	for _, arg := range args {
		if strings.HasPrefix(arg, "depth=") {
			depth, err := ParseDepth(strings.TrimPrefix(arg, "depth="))
			if !IsNil(err) {
				return options, err
			}
			options.DefaultDepth = depth
		} else if arg == "debug" {
			options.Debug = true
		} else {
			return options, Errorf("unknown option: %s", arg)
		}
	}

	return options, NilError
}
