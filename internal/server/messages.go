package server

import (
	"fmt"

	"github.com/cricklet/minimaxgo/internal/engine"
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/notnil/chess"
)

type MessageFromWeb struct {
	Input *string `json:"input"`
}

func (m MessageFromWeb) String() string {
	if m.Input != nil {
		return fmt.Sprint("MessageFromWeb Input: ", *m.Input)
	}
	return "MessageFromWeb unknown"
}

type EngineState struct {
	Fen    string   `json:"fen"`
	Moves  []string `json:"moves"`
	Player string   `json:"player"`
	Busy   bool     `json:"busy"`
}

type UpdateToWeb struct {
	Line  *string      `json:"line,omitempty"`
	State *EngineState `json:"state,omitempty"`
}

func LineUpdate(line string) UpdateToWeb {
	return UpdateToWeb{Line: &line}
}

func StateUpdate(e *engine.Engine) UpdateToWeb {
	state := EngineState{
		Moves: []string{},
		Busy:  e.IsBusy(),
	}
	if pos := e.Position(); pos.HasValue() {
		state.Fen = rules.Fen(pos.Value())
		state.Moves = MapSlice(e.History(), rules.MoveString)
		if rules.SideToMove(pos.Value()) == chess.White {
			state.Player = "white"
		} else {
			state.Player = "black"
		}
	}
	return UpdateToWeb{State: &state}
}
