package rules

import (
	"errors"

	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/notnil/chess"
)

// ErrRules marks failures reported by the rules library: unparsable FEN,
// unparsable squares and illegal moves.
var ErrRules = errors.New("rules error")

var AllPieceTypes = []chess.PieceType{
	chess.King,
	chess.Queen,
	chess.Rook,
	chess.Bishop,
	chess.Knight,
	chess.Pawn,
}

type Castling int

const (
	NoCastling Castling = iota
	KingSideOnly
	QueenSideOnly
	BothSides
)

func DefaultPosition() *chess.Position {
	return chess.NewGame().Position()
}

func ParseFen(fen string) (*chess.Position, Error) {
	option, err := chess.FEN(fen)
	if err != nil {
		return nil, Errorf("%w: fen '%v': %v", ErrRules, fen, err)
	}
	return chess.NewGame(option).Position(), NilError
}

func Fen(pos *chess.Position) string {
	return pos.String()
}

// Snapshot returns an independent copy of pos. notnil positions cache their
// legal moves lazily, so a position handed to another goroutine must not be
// shared with the caller.
func Snapshot(pos *chess.Position) (*chess.Position, Error) {
	return ParseFen(Fen(pos))
}

func LegalMoves(pos *chess.Position) []*chess.Move {
	return pos.ValidMoves()
}

func ApplyMove(pos *chess.Position, move *chess.Move) *chess.Position {
	return pos.Update(move)
}

func SideToMove(pos *chess.Position) chess.Color {
	return pos.Turn()
}

func PieceSet(pos *chess.Position, side chess.Color, pieceType chess.PieceType) []chess.Square {
	board := pos.Board()
	squares := []chess.Square{}
	for sq := chess.A1; sq <= chess.H8; sq++ {
		piece := board.Piece(sq)
		if piece.Color() == side && piece.Type() == pieceType {
			squares = append(squares, sq)
		}
	}
	return squares
}

func CastlingRights(pos *chess.Position, side chess.Color) Castling {
	rights := pos.CastleRights()
	kingSide := rights.CanCastle(side, chess.KingSide)
	queenSide := rights.CanCastle(side, chess.QueenSide)
	if kingSide && queenSide {
		return BothSides
	} else if kingSide {
		return KingSideOnly
	} else if queenSide {
		return QueenSideOnly
	}
	return NoCastling
}

func ParseSquare(s string) (chess.Square, Error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return chess.NoSquare, Errorf("%w: invalid square '%v'", ErrRules, s)
	}
	return chess.NewSquare(chess.File(s[0]-'a'), chess.Rank(s[1]-'1')), NilError
}

func ParsePromotion(c byte) chess.PieceType {
	switch c {
	case 'q':
		return chess.Queen
	case 'n':
		return chess.Knight
	case 'r':
		return chess.Rook
	case 'b':
		return chess.Bishop
	}
	return chess.NoPieceType
}

// ParseMove finds the legal move of pos written as token in long algebraic
// notation. A fifth character outside of qnrb is read as no promotion.
func ParseMove(pos *chess.Position, token string) (*chess.Move, Error) {
	if len(token) < 4 || len(token) > 5 {
		return nil, Errorf("%w: invalid move '%v'", ErrRules, token)
	}

	from, err := ParseSquare(token[0:2])
	if !IsNil(err) {
		return nil, err
	}
	to, err := ParseSquare(token[2:4])
	if !IsNil(err) {
		return nil, err
	}

	promo := chess.NoPieceType
	if len(token) == 5 {
		promo = ParsePromotion(token[4])
	}

	move := FindInSlice(LegalMoves(pos), func(m *chess.Move) bool {
		return m.S1() == from && m.S2() == to && m.Promo() == promo
	})
	if move.IsEmpty() {
		return nil, Errorf("%w: illegal move '%v' in '%v'", ErrRules, token, Fen(pos))
	}
	return move.Value(), NilError
}

func MoveString(move *chess.Move) string {
	return move.String()
}

func IsCheckmate(pos *chess.Position) bool {
	return pos.Status() == chess.Checkmate
}

func IsStalemate(pos *chess.Position) bool {
	return pos.Status() == chess.Stalemate
}
