package search

import (
	"fmt"
	"time"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/google/uuid"
	"github.com/notnil/chess"
)

type MoveTimeKind int

const (
	MoveTimeUnspecified MoveTimeKind = iota
	MoveTimeFixed
	MoveTimeInfinite
)

type MoveTime struct {
	Kind   MoveTimeKind
	Millis int
}

func FixedMoveTime(millis int) MoveTime {
	return MoveTime{Kind: MoveTimeFixed, Millis: millis}
}

func InfiniteMoveTime() MoveTime {
	return MoveTime{Kind: MoveTimeInfinite}
}

func (m MoveTime) Duration() Optional[time.Duration] {
	if m.Kind == MoveTimeFixed {
		return Some(time.Duration(m.Millis) * time.Millisecond)
	}
	return Empty[time.Duration]()
}

func (m MoveTime) String() string {
	switch m.Kind {
	case MoveTimeFixed:
		return fmt.Sprintf("movetime %v", m.Millis)
	case MoveTimeInfinite:
		return "infinite"
	}
	return "unspecified"
}

// Limits mirrors the arguments of a go command. Only Depth, Nodes and
// MoveTime affect the search, the rest are carried along.
type Limits struct {
	Ponder bool

	WhiteTime      Optional[time.Duration]
	BlackTime      Optional[time.Duration]
	WhiteIncrement Optional[time.Duration]
	BlackIncrement Optional[time.Duration]

	MovesToGo Optional[int]
	Depth     Optional[int]
	Nodes     Optional[int]
	Mate      Optional[int]

	MoveTime MoveTime
}

// Request is an immutable search job. Position belongs to the request and is
// never shared with the engine that built it.
type Request struct {
	ID          uuid.UUID
	Sequence    int64
	Position    *chess.Position
	SearchMoves []*chess.Move
	Limits      Limits
}

func NewRequest(sequence int64, position *chess.Position, searchMoves []*chess.Move, limits Limits) Request {
	return Request{
		ID:          uuid.New(),
		Sequence:    sequence,
		Position:    position,
		SearchMoves: append([]*chess.Move{}, searchMoves...),
		Limits:      limits,
	}
}

type Result struct {
	Move    Optional[*chess.Move]
	Score   int
	Nodes   int
	Depth   int
	Elapsed time.Duration
	Aborted bool
}

const NullMove = "0000"

func (r Result) BestMove() string {
	if r.Move.IsEmpty() {
		return NullMove
	}
	return r.Move.Value().String()
}

func (r Result) Info() string {
	return fmt.Sprintf("info depth %v nodes %v time %v score %v",
		r.Depth, r.Nodes, r.Elapsed.Milliseconds(), ScoreString(r.Score))
}

// ScoreString renders a score the way UCI info lines expect it, switching to
// moves-to-mate for mate scores.
func ScoreString(score int) string {
	if IsMateScore(score) {
		plies := MateScore - score
		if score < 0 {
			plies = MateScore + score
		}
		moves := (plies + 1) / 2
		if score < 0 {
			moves = -moves
		}
		return fmt.Sprintf("mate %v", moves)
	}
	return fmt.Sprintf("cp %v", score)
}
