package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// ApplyMove applies a move to the state and returns the resulting state.
// The input state is not modified.
//
// The move must come from LegalMoves on the same state; ApplyMove does not
// check legality. Use TryApplyMove for moves from untrusted sources.
func ApplyMove(s *GameState, move chess.Move) *GameState {
	mover := s.Turn
	opp := mover.Opposite()

	next := &GameState{
		Board:          nextBoard(&s.Board, move),
		Turn:           opp,
		White:          updateCastlingRights(s.White, chess.White, move),
		Black:          updateCastlingRights(s.Black, chess.Black, move),
		HalfmoveClock:  nextHalfmoveClock(s.HalfmoveClock, move),
		FullmoveNumber: s.FullmoveNumber,
	}
	if mover == chess.Black {
		next.FullmoveNumber++
	}
	if move.EnPassant != nil {
		ep := *move.EnPassant
		next.EnPassant = &ep
	}

	hash := next.Hash()
	next.Positions = s.Positions.With(hash)

	classify(next, mover, hash)
	return next
}

// nextBoard returns the board after move, leaving board untouched.
func nextBoard(board *chess.Board, move chess.Move) chess.Board {
	next := *board

	// The captured piece is found by identity: for en passant it is not on To.
	if move.IsCapture() {
		if sq, ok := next.Find(move.Captured); ok {
			next.Set(sq, chess.Empty)
		}
	}

	if move.From != move.To {
		next.Set(move.To, next.At(move.From))
		next.Set(move.From, chess.Empty)
	}

	switch {
	case move.IsCastle():
		relocateCastlingRook(&next, move)
	case move.Promoting:
		next.Set(move.To, move.Piece.Promote(move.PromotionType()))
	}
	return next
}

// nextHalfmoveClock resets on pawn moves and captures.
func nextHalfmoveClock(clock int, move chess.Move) int {
	if move.Piece.Type == chess.Pawn || move.IsCapture() {
		return 0
	}
	return clock + 1
}

// classify sets the check flag and the outcome for the side now to move.
func classify(s *GameState, mover chess.Colour, hash uint64) {
	s.Check = IsInCheck(&s.Board, s.Turn)

	switch {
	case !HasAnyLegalMove(s, s.Turn):
		if s.Check {
			s.Winner, s.Reason = winnerFor(mover), Checkmate
		} else {
			s.Winner, s.Reason = Draw, Stalemate
		}
	case s.Positions.Count(hash) >= RepetitionLimit:
		s.Winner, s.Reason = Draw, Repetition
	}
}
