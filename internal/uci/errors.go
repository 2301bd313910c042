package uci

import (
	"errors"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
)

var ErrInvalidCommand = errors.New("invalid command")

func invalidCommand(format string, args ...any) Error {
	return Errorf("%w: "+format, append([]any{ErrInvalidCommand}, args...)...)
}

// IsRecoverable reports whether the loop can report err and keep reading.
func IsRecoverable(err error) bool {
	return errors.Is(err, ErrInvalidCommand) || errors.Is(err, rules.ErrRules)
}

func Diagnostic(err Error) string {
	return "info string " + err.Message()
}
