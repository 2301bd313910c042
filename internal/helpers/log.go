package helpers

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

type Logger interface {
	Println(v ...any)
	Printf(format string, v ...any)
	Print(v ...any)
}

type _silentLogger struct {
}

func (l *_silentLogger) Println(v ...any) {
}
func (l *_silentLogger) Printf(format string, v ...any) {
}
func (l *_silentLogger) Print(v ...any) {
}

var SilentLogger = _silentLogger{}

type _funcLogger struct {
	write func(string)
}

func FuncLogger(write func(string)) Logger {
	return &_funcLogger{write: write}
}

func (l *_funcLogger) Println(v ...any) {
	l.write(fmt.Sprintln(v...))
}
func (l *_funcLogger) Printf(format string, v ...any) {
	l.write(fmt.Sprintf(format, v...))
}
func (l *_funcLogger) Print(v ...any) {
	l.write(fmt.Sprint(v...))
}

// ZeroLogger forwards Logger calls to a zerolog logger at a fixed level.
type ZeroLogger struct {
	Log   zerolog.Logger
	Level zerolog.Level
}

var _ Logger = (*ZeroLogger)(nil)

func NewZeroLogger(log zerolog.Logger) *ZeroLogger {
	return &ZeroLogger{Log: log, Level: zerolog.InfoLevel}
}

func (l *ZeroLogger) Println(v ...any) {
	l.Log.WithLevel(l.Level).Msg(strings.TrimSuffix(fmt.Sprintln(v...), "\n"))
}
func (l *ZeroLogger) Printf(format string, v ...any) {
	l.Log.WithLevel(l.Level).Msgf(format, v...)
}
func (l *ZeroLogger) Print(v ...any) {
	l.Log.WithLevel(l.Level).Msg(fmt.Sprint(v...))
}
