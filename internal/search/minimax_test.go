package search

import (
	"context"
	"testing"
	"time"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestFromFen(t *testing.T, fen string, limits Limits) Request {
	pos, err := rules.ParseFen(fen)
	require.True(t, IsNil(err), err)
	return NewRequest(1, pos, nil, limits)
}

func TestSearchReturnsLegalMove(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"rnbqkbnr/ppp2ppp/8/3pp3/4P3/3P1N2/PPP2PPP/RNBQKB1R b KQkq - 5 3",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
	}
	for _, fen := range fens {
		request := requestFromFen(t, fen, Limits{Depth: Some(2)})
		result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

		require.True(t, result.Move.HasValue(), fen)
		legal := MapSlice(rules.LegalMoves(request.Position), rules.MoveString)
		assert.Contains(t, legal, result.BestMove(), fen)
		assert.False(t, result.Aborted)
		assert.Equal(t, 2, result.Depth)
	}
}

func TestTieBreakPrefersLastMove(t *testing.T) {
	request := requestFromFen(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Limits{Depth: Some(1)})

	searcher := NewSearcher(&SilentLogger)
	searcher.Evaluate = func(pos *chess.Position, player chess.Color) int {
		return 7
	}
	result := searcher.Search(context.Background(), request, DefaultDepth)

	moves := rules.LegalMoves(request.Position)
	assert.Equal(t, rules.MoveString(moves[len(moves)-1]), result.BestMove())
	assert.Equal(t, 7, result.Score)
}

func TestTieBreakAmongBestMoves(t *testing.T) {
	request := requestFromFen(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Limits{Depth: Some(1)})
	moves := MapSlice(rules.LegalMoves(request.Position), rules.MoveString)
	favorites := []string{moves[3], moves[11]}

	// two moves tie for the best score, the rest score lower
	searcher := NewSearcher(&SilentLogger)
	searcher.Evaluate = func(pos *chess.Position, player chess.Color) int {
		for _, m := range favorites {
			move, err := rules.ParseMove(request.Position, m)
			require.True(t, IsNil(err))
			if rules.Fen(rules.ApplyMove(request.Position, move)) == rules.Fen(pos) {
				return 50
			}
		}
		return 0
	}
	result := searcher.Search(context.Background(), request, DefaultDepth)
	assert.Equal(t, moves[11], result.BestMove())
	assert.Equal(t, 50, result.Score)
}

func TestCheckmatedRootHasNoMove(t *testing.T) {
	request := requestFromFen(t, "kQK5/8/8/8/8/8/8/8 b - - 0 1", Limits{})
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.True(t, result.Move.IsEmpty())
	assert.Equal(t, NullMove, result.BestMove())
}

func TestFindsMateInOne(t *testing.T) {
	request := requestFromFen(t, "k7/8/1K6/8/8/8/8/7Q w - - 0 1", Limits{Depth: Some(2)})
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.Contains(t, []string{"h1h8", "h1b7"}, result.BestMove())
	assert.Equal(t, MateScore-1, result.Score)
	assert.Equal(t, "mate 1", ScoreString(result.Score))
}

func TestAvoidsStalemateWhenWinning(t *testing.T) {
	// Qc7 stalemates while Qc8 mates
	request := requestFromFen(t, "k7/8/1K6/8/8/8/8/2Q5 w - - 0 1", Limits{Depth: Some(2)})
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.NotEqual(t, "c1c7", result.BestMove())
	assert.Equal(t, MateScore-1, result.Score)
}

func TestSearchMovesRestrictCandidates(t *testing.T) {
	pos := rules.DefaultPosition()
	a3, err := rules.ParseMove(pos, "a2a3")
	require.True(t, IsNil(err))
	h3, err := rules.ParseMove(pos, "h2h3")
	require.True(t, IsNil(err))

	request := NewRequest(1, pos, []*chess.Move{a3, h3}, Limits{Depth: Some(2)})
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.Contains(t, []string{"a2a3", "h2h3"}, result.BestMove())
}

func TestNodeLimitAborts(t *testing.T) {
	request := requestFromFen(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		Limits{Depth: Some(4), Nodes: Some(1)})
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.True(t, result.Aborted)
	assert.Equal(t, rules.MoveString(rules.LegalMoves(request.Position)[0]), result.BestMove())
}

func TestShouldStopAborts(t *testing.T) {
	request := requestFromFen(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Limits{Depth: Some(4)})

	searcher := NewSearcher(&SilentLogger)
	searcher.ShouldStop = func() bool { return true }
	result := searcher.Search(context.Background(), request, DefaultDepth)

	assert.True(t, result.Aborted)
	assert.True(t, result.Move.HasValue())
	assert.LessOrEqual(t, result.Nodes, pollInterval+1)
}

func TestMoveTimeAborts(t *testing.T) {
	request := requestFromFen(t, "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		Limits{Depth: Some(6), MoveTime: FixedMoveTime(20)})

	start := time.Now()
	result := NewSearcher(&SilentLogger).Search(context.Background(), request, DefaultDepth)

	assert.True(t, result.Aborted)
	assert.True(t, result.Move.HasValue())
	assert.Less(t, time.Since(start), 5*time.Second)
}

func TestSearchDepth(t *testing.T) {
	assert.Equal(t, 3, SearchDepth(Limits{}, DefaultDepth))
	assert.Equal(t, 5, SearchDepth(Limits{Depth: Some(5)}, DefaultDepth))
	assert.Equal(t, 1, SearchDepth(Limits{Depth: Some(0)}, DefaultDepth))
}
