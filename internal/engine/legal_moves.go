package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalMoves returns the legal moves of the piece on `from`. It returns nil
// if the cell is empty, holds a piece of the side not to move, or the game
// is already over.
//
// Promoting moves are returned once per destination with PromoteTo unset;
// the caller picks the promotion type before applying.
func LegalMoves(s *GameState, from chess.Coord) []chess.Move {
	piece := s.Board.At(from)
	if piece.IsEmpty() || piece.Colour != s.Turn || s.IsOver() {
		return nil
	}
	return legalMovesFrom(s, from)
}

// legalMovesFrom filters the pseudo-legal moves of the piece on `from`,
// dropping any that leave its own king in check.
func legalMovesFrom(s *GameState, from chess.Coord) []chess.Move {
	colour := s.Board.At(from).Colour
	candidates := PseudoMoves(s, from)

	moves := candidates[:0]
	for _, move := range candidates {
		next := nextBoard(&s.Board, move)
		if !IsInCheck(&next, colour) {
			moves = append(moves, move)
		}
	}
	return moves
}

// HasAnyLegalMove returns true if the given colour has at least one legal
// move. It stops at the first piece that can move.
func HasAnyLegalMove(s *GameState, colour chess.Colour) bool {
	for i := 0; i < chess.NumCells; i++ {
		from := chess.CoordFromIndex(i)
		piece := s.Board.At(from)
		if piece.IsEmpty() || piece.Colour != colour {
			continue
		}
		if len(legalMovesFrom(s, from)) > 0 {
			return true
		}
	}
	return false
}

// AllLegalMoves returns the legal moves of every piece of the side to move,
// in board order.
func AllLegalMoves(s *GameState) []chess.Move {
	var moves []chess.Move
	for i := 0; i < chess.NumCells; i++ {
		moves = append(moves, LegalMoves(s, chess.CoordFromIndex(i))...)
	}
	return moves
}

// ExpandPromotions replaces each promoting move with one move per
// promotion type. Other moves are kept as they are.
func ExpandPromotions(moves []chess.Move) []chess.Move {
	expanded := make([]chess.Move, 0, len(moves))
	for _, move := range moves {
		if !move.Promoting {
			expanded = append(expanded, move)
			continue
		}
		for _, pieceType := range chess.PromotionTypes {
			expanded = append(expanded, move.WithPromotion(pieceType))
		}
	}
	return expanded
}
