package evaluation

import (
	. "github.com/cricklet/minimaxgo/internal/helpers"
	"github.com/cricklet/minimaxgo/internal/rules"
	"github.com/notnil/chess"
)

var PieceValues = map[chess.PieceType]int{
	chess.Pawn:   100,
	chess.Knight: 320,
	chess.Bishop: 330,
	chess.Rook:   500,
	chess.Queen:  900,
	chess.King:   20000,
}

var CastlingValues = map[rules.Castling]int{
	rules.NoCastling:    0,
	rules.KingSideOnly:  100,
	rules.QueenSideOnly: 100,
	rules.BothSides:     200,
}

// Tables are written from white's point of view with rank 8 on top.

var PawnTable = tablesPerPlayer([8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{50, 50, 50, 50, 50, 50, 50, 50},
	{10, 10, 20, 30, 30, 20, 10, 10},
	{5, 5, 10, 25, 25, 10, 5, 5},
	{0, 0, 0, 20, 20, 0, 0, 0},
	{5, -5, -10, 0, 0, -10, -5, 5},
	{5, 10, 10, -20, -20, 10, 10, 5},
	{0, 0, 0, 0, 0, 0, 0, 0},
})

var KnightTable = tablesPerPlayer([8][8]int{
	{-50, -40, -30, -30, -30, -30, -40, -50},
	{-40, -20, 0, 0, 0, 0, -20, -40},
	{-30, 0, 10, 15, 15, 10, 0, -30},
	{-30, 5, 15, 20, 20, 15, 5, -30},
	{-30, 0, 15, 20, 20, 15, 0, -30},
	{-30, 5, 10, 15, 15, 10, 5, -30},
	{-40, -20, 0, 5, 5, 0, -20, -40},
	{-50, -40, -30, -30, -30, -30, -40, -50},
})

var BishopTable = tablesPerPlayer([8][8]int{
	{-20, -10, -10, -10, -10, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 10, 10, 5, 0, -10},
	{-10, 5, 5, 10, 10, 5, 5, -10},
	{-10, 0, 10, 10, 10, 10, 0, -10},
	{-10, 10, 10, 10, 10, 10, 10, -10},
	{-10, 5, 0, 0, 0, 0, 5, -10},
	{-20, -10, -10, -10, -10, -10, -10, -20},
})

var RookTable = tablesPerPlayer([8][8]int{
	{0, 0, 0, 0, 0, 0, 0, 0},
	{5, 10, 10, 10, 10, 10, 10, 5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{-5, 0, 0, 0, 0, 0, 0, -5},
	{0, 0, 0, 5, 5, 0, 0, 0},
})

var QueenTable = tablesPerPlayer([8][8]int{
	{-20, -10, -10, -5, -5, -10, -10, -20},
	{-10, 0, 0, 0, 0, 0, 0, -10},
	{-10, 0, 5, 5, 5, 5, 0, -10},
	{-5, 0, 5, 5, 5, 5, 0, -5},
	{0, 0, 5, 5, 5, 5, 0, -5},
	{-10, 5, 5, 5, 5, 5, 0, -10},
	{-10, 0, 5, 0, 0, 0, 0, -10},
	{-20, -10, -10, -5, -5, -10, -10, -20},
})

var KingTable = tablesPerPlayer([8][8]int{
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-30, -40, -40, -50, -50, -40, -40, -30},
	{-20, -30, -30, -40, -40, -30, -30, -20},
	{-10, -20, -20, -20, -20, -20, -20, -10},
	{20, 20, 0, 0, 0, 0, 20, 20},
	{20, 30, 10, 0, 0, 10, 30, 20},
})

var AllTables = map[chess.PieceType][2][64]int{
	chess.Pawn:   PawnTable,
	chess.Knight: KnightTable,
	chess.Bishop: BishopTable,
	chess.Rook:   RookTable,
	chess.Queen:  QueenTable,
	chess.King:   KingTable,
}

func tableFromArray(array [8][8]int) [64]int {
	result := [64]int{}
	for i := 0; i < 8; i++ {
		for j := 0; j < 8; j++ {
			result[(7-i)*8+j] = array[i][j]
		}
	}
	return result
}

func tablesPerPlayer(whiteOrientedArray [8][8]int) [2][64]int {
	return [2][64]int{
		tableFromArray(whiteOrientedArray),
		tableFromArray(FlipArray(whiteOrientedArray)),
	}
}

func playerIndex(c chess.Color) int {
	if c == chess.Black {
		return 1
	}
	return 0
}

func EvaluatePieces(pos *chess.Position, player chess.Color) int {
	result := 0
	for _, pieceType := range rules.AllPieceTypes {
		table := AllTables[pieceType][playerIndex(player)]
		for _, sq := range rules.PieceSet(pos, player, pieceType) {
			result += PieceValues[pieceType] + table[sq]
		}
	}
	return result
}

func EvaluateCastling(pos *chess.Position, player chess.Color) int {
	return CastlingValues[rules.CastlingRights(pos, player)]
}

// Evaluate scores pos in centipawns from player's point of view.
func Evaluate(pos *chess.Position, player chess.Color) int {
	enemy := player.Other()
	return EvaluatePieces(pos, player) - EvaluatePieces(pos, enemy) +
		EvaluateCastling(pos, player) - EvaluateCastling(pos, enemy)
}
