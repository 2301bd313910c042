package server

import (
	"strconv"
	"strings"

	. "github.com/cricklet/minimaxgo/internal/helpers"
)

type Config struct {
	Port      int   `validate:"min=1,max=65535"`
	ReadLimit int64 `validate:"min=64,max=1048576"`
}

var DefaultConfig = Config{
	Port:      8002,
	ReadLimit: 4096,
}

var AllConfigArgs = []string{
	"<port>",
	"readLimit=N",
}

func ConfigFromArgs(args ...string) (Config, Error) {
	config := DefaultConfig

	for _, arg := range args {
		if strings.HasPrefix(arg, "readLimit=") {
			n, err := strconv.ParseInt(strings.TrimPrefix(arg, "readLimit="), 10, 64)
			if err != nil {
				return config, Wrap(err)
			}
			config.ReadLimit = n
		} else if port, err := strconv.Atoi(arg); err == nil {
			config.Port = port
		} else {
			return config, Errorf("unknown arg: %s", arg)
		}
	}

	return config, Validate(config)
}
