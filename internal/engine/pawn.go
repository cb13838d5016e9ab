package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// pawnMoves generates pseudo-legal pawn moves.
func pawnMoves(s *GameState, from chess.Coord) []chess.Move {
	board := &s.Board
	pawn := board.At(from)
	dir := pawn.Colour.Forward()
	var moves []chess.Move

	// Forward moves
	one := from.Add(0, dir)
	if one.InBounds() && board.At(one).IsEmpty() {
		moves = append(moves, chess.NewMove(pawn, from, one))

		// Double push from starting rank
		two := from.Add(0, 2*dir)
		if from.Y == pawn.Colour.PawnRank() && board.At(two).IsEmpty() {
			move := chess.NewMove(pawn, from, two)
			epSquare := one
			move.EnPassant = &epSquare
			moves = append(moves, move)
		}
	}

	// Captures
	for _, dx := range [...]int{-1, 1} {
		to := from.Add(dx, dir)
		if !to.InBounds() {
			continue
		}

		target := board.At(to)
		if target.IsEnemyOf(pawn.Colour) {
			move := chess.NewMove(pawn, from, to)
			move.Captured = target
			moves = append(moves, move)
			continue
		}

		// En passant: the captured pawn stands beside us, not on `to`.
		if s.EnPassant != nil && *s.EnPassant == to {
			victim := board.At(from.Add(dx, 0))
			if victim.Type == chess.Pawn && victim.IsEnemyOf(pawn.Colour) {
				move := chess.NewMove(pawn, from, to)
				move.Captured = victim
				moves = append(moves, move)
			}
		}
	}

	promotionRank := pawn.Colour.PromotionRank()
	for i := range moves {
		moves[i].Promoting = moves[i].To.Y == promotionRank
	}
	return moves
}
