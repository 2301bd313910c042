package uci

import (
	"strconv"
	"strings"
	"time"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/search"
)

type Command interface {
	Name() string
}

type UciCommand struct{}
type IsReadyCommand struct{}
type UciNewGameCommand struct{}
type StopCommand struct{}
type QuitCommand struct{}

type UnknownCommand struct {
	Line string
}

type DebugCommand struct {
	On bool
}

type SetOptionCommand struct {
	Option string
	Value  Optional[string]
}

type PositionCommand struct {
	StartPos bool
	Fen      string
	Moves    []string
}

type GoCommand struct {
	SearchMoves []string
	Limits      search.Limits
}

func (UciCommand) Name() string        { return "uci" }
func (IsReadyCommand) Name() string    { return "isready" }
func (UciNewGameCommand) Name() string { return "ucinewgame" }
func (StopCommand) Name() string       { return "stop" }
func (QuitCommand) Name() string       { return "quit" }
func (UnknownCommand) Name() string    { return "unknown" }
func (DebugCommand) Name() string      { return "debug" }
func (SetOptionCommand) Name() string  { return "setoption" }
func (PositionCommand) Name() string   { return "position" }
func (GoCommand) Name() string         { return "go" }

// ParseCommand turns one input line into a command. It only checks the shape
// of the line; move legality depends on the engine and is checked later.
func ParseCommand(line string) (Command, Error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return UnknownCommand{Line: line}, NilError
	}

	args := fields[1:]
	switch fields[0] {
	case "uci":
		return UciCommand{}, NilError
	case "isready":
		return IsReadyCommand{}, NilError
	case "ucinewgame":
		return UciNewGameCommand{}, NilError
	case "stop":
		return StopCommand{}, NilError
	case "quit":
		return QuitCommand{}, NilError
	case "debug":
		return parseDebug(args)
	case "setoption":
		return parseSetOption(args)
	case "position":
		return parsePosition(args)
	case "go":
		return parseGo(args)
	}
	return UnknownCommand{Line: line}, NilError
}

func parseDebug(args []string) (Command, Error) {
	if len(args) == 1 && args[0] == "on" {
		return DebugCommand{On: true}, NilError
	} else if len(args) == 1 && args[0] == "off" {
		return DebugCommand{On: false}, NilError
	}
	return nil, invalidCommand("debug expects on or off")
}

func parseSetOption(args []string) (Command, Error) {
	if len(args) == 0 || args[0] != "name" {
		return nil, invalidCommand("setoption expects name")
	}

	nameEnd := len(args)
	for i, arg := range args {
		if arg == "value" {
			nameEnd = i
			break
		}
	}

	option := strings.Join(args[1:nameEnd], " ")
	if option == "" {
		return nil, invalidCommand("setoption is missing an option name")
	}

	result := SetOptionCommand{Option: option}
	if nameEnd < len(args) {
		result.Value = Some(strings.Join(args[nameEnd+1:], " "))
	}
	return result, NilError
}

func IsMoveToken(token string) bool {
	return len(token) >= 4 && len(token) <= 5
}

func parseMoveTokens(context string, tokens []string) ([]string, Error) {
	for _, token := range tokens {
		if !IsMoveToken(token) {
			return nil, invalidCommand("%v: move '%v' must be 4 or 5 characters", context, token)
		}
	}
	return append([]string{}, tokens...), NilError
}

func parsePosition(args []string) (Command, Error) {
	if len(args) == 0 {
		return nil, invalidCommand("position expects startpos or fen")
	}

	result := PositionCommand{}
	rest := []string{}
	switch args[0] {
	case "startpos":
		result.StartPos = true
		rest = args[1:]
	case "fen":
		if len(args) < 7 {
			return nil, invalidCommand("position fen expects 6 fields")
		}
		result.Fen = strings.Join(args[1:7], " ")
		rest = args[7:]
	default:
		return nil, invalidCommand("position expects startpos or fen, not '%v'", args[0])
	}

	if len(rest) > 0 && rest[0] == "moves" {
		moves, err := parseMoveTokens("position moves", rest[1:])
		if !IsNil(err) {
			return nil, err
		}
		result.Moves = moves
	}

	return result, NilError
}

var goKeywords = []string{
	"searchmoves",
	"ponder",
	"wtime",
	"btime",
	"winc",
	"binc",
	"movestogo",
	"depth",
	"nodes",
	"mate",
	"movetime",
	"infinite",
}

func parseGo(args []string) (Command, Error) {
	result := GoCommand{}

	number := func(i int) (int, Error) {
		if i+1 >= len(args) {
			return 0, invalidCommand("go %v expects a number", args[i])
		}
		n, err := strconv.ParseUint(args[i+1], 10, 31)
		if err != nil {
			return 0, invalidCommand("go %v expects a number, not '%v'", args[i], args[i+1])
		}
		return int(n), NilError
	}

	millis := func(i int) (Optional[time.Duration], Error) {
		n, err := number(i)
		if !IsNil(err) {
			return Empty[time.Duration](), err
		}
		return Some(time.Duration(n) * time.Millisecond), NilError
	}

	for i := 0; i < len(args); i++ {
		var err Error
		switch args[i] {
		case "searchmoves":
			end := i + 1
			for end < len(args) && !Contains(goKeywords, args[end]) {
				end++
			}
			moves, err := parseMoveTokens("go searchmoves", args[i+1:end])
			if !IsNil(err) {
				return nil, err
			}
			result.SearchMoves = append(result.SearchMoves, moves...)
			i = end - 1
			continue
		case "ponder":
			result.Limits.Ponder = true
			continue
		case "infinite":
			result.Limits.MoveTime = search.InfiniteMoveTime()
			continue
		case "wtime":
			result.Limits.WhiteTime, err = millis(i)
		case "btime":
			result.Limits.BlackTime, err = millis(i)
		case "winc":
			result.Limits.WhiteIncrement, err = millis(i)
		case "binc":
			result.Limits.BlackIncrement, err = millis(i)
		case "movestogo", "depth", "nodes", "mate":
			var n int
			n, err = number(i)
			switch args[i] {
			case "movestogo":
				result.Limits.MovesToGo = Some(n)
			case "depth":
				result.Limits.Depth = Some(n)
			case "nodes":
				result.Limits.Nodes = Some(n)
			case "mate":
				result.Limits.Mate = Some(n)
			}
		case "movetime":
			var n int
			n, err = number(i)
			result.Limits.MoveTime = search.FixedMoveTime(n)
		default:
			continue
		}
		if !IsNil(err) {
			return nil, err
		}
		i++
	}

	return result, NilError
}
