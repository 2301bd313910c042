package uci

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/cricklet/minimaxgo/internal/engine"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/cricklet/minimaxgo/internal/search"
	"github.com/davecgh/go-spew/spew"
	"github.com/notnil/chess"
)

const (
	EngineName   = "chessgo minimax"
	EngineAuthor = "Kenrick Rilee"
)

var requestDumper = spew.ConfigState{
	Indent:                  "  ",
	MaxDepth:                3,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
	SortKeys:                true,
}

type LineReader interface {
	// ReadLine returns io.EOF once the input is exhausted.
	ReadLine() (string, error)
}

type UciRunner struct {
	Logger Logger

	engine *engine.Engine
	output *LineWriter
	done   bool
}

func NewUciRunner(e *engine.Engine, output *LineWriter, logger Logger) *UciRunner {
	return &UciRunner{
		Logger: logger,
		engine: e,
		output: output,
	}
}

func (u *UciRunner) Engine() *engine.Engine {
	return u.engine
}

func (u *UciRunner) Done() bool {
	return u.done
}

// HandleInput runs a single line and returns the lines it answers with. The
// bestmove for a go is written later by the engine's worker.
func (u *UciRunner) HandleInput(input string) ([]string, Error) {
	command, err := ParseCommand(input)
	if !IsNil(err) {
		return nil, err
	}

	switch c := command.(type) {
	case UciCommand:
		return []string{
			"id name " + EngineName,
			"id author " + EngineAuthor,
			fmt.Sprintf("option name Depth type spin default %v min %v max %v",
				u.engine.Options().DefaultDepth, search.MinDepth, search.MaxDepth),
			"uciok",
		}, NilError
	case IsReadyCommand:
		return []string{"readyok"}, NilError
	case UciNewGameCommand:
		u.engine.Reset()
	case StopCommand:
		u.engine.Stop()
	case QuitCommand:
		u.done = true
	case DebugCommand:
		u.engine.SetDebug(c.On)
	case SetOptionCommand:
		return nil, u.handleSetOption(c)
	case PositionCommand:
		return nil, u.handlePosition(c)
	case GoCommand:
		return nil, u.handleGo(c)
	case UnknownCommand:
		if strings.TrimSpace(c.Line) != "" {
			u.Logger.Printf("ignoring '%v'\n", c.Line)
		}
	}
	return nil, NilError
}

func (u *UciRunner) handleSetOption(c SetOptionCommand) Error {
	if !strings.EqualFold(c.Option, "Depth") {
		return invalidCommand("unknown option '%v'", c.Option)
	}
	if c.Value.IsEmpty() {
		return invalidCommand("setoption Depth expects a value")
	}
	depth, err := engine.ParseDepth(c.Value.Value())
	if !IsNil(err) {
		return invalidCommand("setoption Depth: %v", err.Message())
	}
	u.engine.SetDefaultDepth(depth)
	return NilError
}

func (u *UciRunner) handlePosition(c PositionCommand) Error {
	var pos *chess.Position
	if c.StartPos {
		pos = rules.DefaultPosition()
	} else {
		var err Error
		pos, err = rules.ParseFen(c.Fen)
		if !IsNil(err) {
			return err
		}
	}

	history := []*chess.Move{}
	for _, token := range c.Moves {
		move, err := rules.ParseMove(pos, token)
		if !IsNil(err) {
			return err
		}
		pos = rules.ApplyMove(pos, move)
		history = append(history, move)
	}

	u.engine.SetPosition(pos, history)
	return NilError
}

func (u *UciRunner) handleGo(c GoCommand) Error {
	if !u.engine.HasPosition() {
		return invalidCommand("no position set")
	}

	pos := u.engine.Position().Value()
	searchMoves := []*chess.Move{}
	for _, token := range c.SearchMoves {
		move, err := rules.ParseMove(pos, token)
		if !IsNil(err) {
			return err
		}
		searchMoves = append(searchMoves, move)
	}

	request, err := u.engine.Go(searchMoves, c.Limits)
	if !IsNil(err) {
		return err
	}

	if u.engine.Debug() {
		u.Logger.Printf("submitted search %v\n%v", request.ID, requestDumper.Sdump(request.Limits))
	}
	return NilError
}

// Run reads commands until quit or the end of input. Malformed commands are
// answered with an info string, I/O failures end the loop.
func (u *UciRunner) Run(reader LineReader) Error {
	for !u.done {
		input, readErr := reader.ReadLine()
		if errors.Is(readErr, io.EOF) {
			return NilError
		} else if readErr != nil {
			return Wrap(readErr)
		}

		lines, err := u.HandleInput(input)
		if !IsNil(err) {
			if !IsRecoverable(err) {
				return err
			}
			u.Logger.Printf("'%v' failed: %v\n", input, err.Message())
			lines = append(lines, Diagnostic(err))
		}

		err = u.output.WriteLines(lines...)
		if !IsNil(err) {
			return err
		}
		err = u.output.Err()
		if !IsNil(err) {
			return err
		}
	}
	return NilError
}
