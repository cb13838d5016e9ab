package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// attackPattern describes how a piece type attacks.
type attackPattern struct {
	piece chess.PieceType
	dirs  [][2]int
	reach int
}

// IsInCheck returns true if the given colour's king is attacked.
//
// Attacks are found from the king's side: if the king moved like a bishop
// and could capture an enemy bishop, that bishop attacks the king, and
// likewise for every other type. Pawns use the king's own forward
// direction, which is where an enemy pawn must stand to attack it.
func IsInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.KingSquare(colour)
	if !ok {
		return false // No king found
	}
	return isSquareAttacked(board, king, colour)
}

// isSquareAttacked returns true if the piece of colour `defender` standing
// on sq is attacked. sq must be occupied by a piece of that colour.
func isSquareAttacked(board *chess.Board, sq chess.Coord, defender chess.Colour) bool {
	pawnAttacks := whitePawnAttacks
	if defender == chess.Black {
		pawnAttacks = blackPawnAttacks
	}
	patterns := [...]attackPattern{
		{chess.Pawn, pawnAttacks, stepReach},
		{chess.Knight, knightDirs, stepReach},
		{chess.King, royalDirs, stepReach},
		{chess.Bishop, diagonalDirs, slideReach},
		{chess.Rook, straightDirs, slideReach},
		{chess.Queen, royalDirs, slideReach},
	}

	for _, pattern := range patterns {
		for _, move := range rayMoves(board, sq, pattern.dirs, pattern.reach) {
			if move.Captured.Type == pattern.piece {
				return true
			}
		}
	}
	return false
}
