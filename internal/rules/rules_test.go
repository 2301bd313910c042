package rules

import (
	"errors"
	"testing"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/notnil/chess"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFenRoundTrip(t *testing.T) {
	fens := []string{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2",
	}
	for _, fen := range fens {
		pos, err := ParseFen(fen)
		require.True(t, IsNil(err), err)
		assert.Equal(t, fen, Fen(pos))
	}
}

func TestDefaultPosition(t *testing.T) {
	assert.Equal(t, "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1", Fen(DefaultPosition()))
	assert.Equal(t, 20, len(LegalMoves(DefaultPosition())))
	assert.Equal(t, chess.White, SideToMove(DefaultPosition()))
}

func TestParseFenFailure(t *testing.T) {
	_, err := ParseFen("not a fen at all ok")
	assert.False(t, IsNil(err))
	assert.True(t, errors.Is(err, ErrRules))
}

func TestApplyMoves(t *testing.T) {
	pos := DefaultPosition()
	for _, token := range []string{"e2e4", "e7e5"} {
		move, err := ParseMove(pos, token)
		require.True(t, IsNil(err), err)
		pos = ApplyMove(pos, move)
	}

	expected, err := ParseFen("rnbqkbnr/pppp1ppp/8/4p3/4P3/8/PPPP1PPP/RNBQKBNR w KQkq e6 0 2")
	require.True(t, IsNil(err))
	assert.Equal(t, Fen(expected), Fen(pos))
}

func TestParseMove(t *testing.T) {
	pos, err := ParseFen("8/P6k/8/8/8/8/8/K7 w - - 0 1")
	require.True(t, IsNil(err))

	move, err := ParseMove(pos, "a7a8q")
	assert.True(t, IsNil(err))
	assert.Equal(t, chess.Queen, move.Promo())
	assert.Equal(t, "a7a8q", MoveString(move))

	move, err = ParseMove(pos, "a7a8n")
	assert.True(t, IsNil(err))
	assert.Equal(t, chess.Knight, move.Promo())

	// an unknown promotion letter means no promotion, which is illegal here
	_, err = ParseMove(pos, "a7a8x")
	assert.True(t, errors.Is(err, ErrRules))

	_, err = ParseMove(DefaultPosition(), "z2e4")
	assert.True(t, errors.Is(err, ErrRules))

	_, err = ParseMove(DefaultPosition(), "e2e5")
	assert.True(t, errors.Is(err, ErrRules))

	move, err = ParseMove(DefaultPosition(), "g1f3x")
	assert.True(t, IsNil(err))
	assert.Equal(t, "g1f3", MoveString(move))
}

func TestPieceSet(t *testing.T) {
	pos := DefaultPosition()
	assert.Equal(t, []chess.Square{chess.B1, chess.G1}, PieceSet(pos, chess.White, chess.Knight))
	assert.Equal(t, []chess.Square{chess.E8}, PieceSet(pos, chess.Black, chess.King))
	assert.Equal(t, 8, len(PieceSet(pos, chess.Black, chess.Pawn)))
}

func TestCastlingRights(t *testing.T) {
	assert.Equal(t, BothSides, CastlingRights(DefaultPosition(), chess.White))
	assert.Equal(t, BothSides, CastlingRights(DefaultPosition(), chess.Black))

	pos, err := ParseFen("r3k2r/8/8/8/8/8/8/R3K2R w Kq - 0 1")
	require.True(t, IsNil(err))
	assert.Equal(t, KingSideOnly, CastlingRights(pos, chess.White))
	assert.Equal(t, QueenSideOnly, CastlingRights(pos, chess.Black))

	pos, err = ParseFen("r3k2r/8/8/8/8/8/8/R3K2R w - - 0 1")
	require.True(t, IsNil(err))
	assert.Equal(t, NoCastling, CastlingRights(pos, chess.White))
}

func TestSnapshotIsIndependent(t *testing.T) {
	pos := DefaultPosition()
	snapshot, err := Snapshot(pos)
	require.True(t, IsNil(err))
	assert.NotSame(t, pos, snapshot)
	assert.Equal(t, Fen(pos), Fen(snapshot))
}

func TestTerminalPositions(t *testing.T) {
	mated, err := ParseFen("kQK5/8/8/8/8/8/8/8 b - - 0 1")
	require.True(t, IsNil(err))
	assert.Equal(t, 0, len(LegalMoves(mated)))
	assert.True(t, IsCheckmate(mated))

	stalemate, err := ParseFen("k7/2Q5/1K6/8/8/8/8/8 b - - 0 1")
	require.True(t, IsNil(err))
	assert.Equal(t, 0, len(LegalMoves(stalemate)))
	assert.True(t, IsStalemate(stalemate))
	assert.False(t, IsCheckmate(stalemate))
}
