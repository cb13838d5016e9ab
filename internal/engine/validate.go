package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ValidateMove checks that move can be applied to s. Only the fields a
// caller chooses are compared against the legal move list: From, To and,
// for promotions, PromoteTo. The returned error is a *errors.MoveError.
func ValidateMove(s *GameState, move chess.Move) error {
	_, err := matchLegalMove(s, move)
	return err
}

// TryApplyMove validates move and applies it. The applied move is the
// matching entry of the legal move list, so a caller only needs to fill in
// Piece, From, To and PromoteTo.
func TryApplyMove(s *GameState, move chess.Move) (*GameState, error) {
	legal, err := matchLegalMove(s, move)
	if err != nil {
		return nil, err
	}
	return ApplyMove(s, legal), nil
}

// matchLegalMove finds the legal move corresponding to move.
func matchLegalMove(s *GameState, move chess.Move) (chess.Move, error) {
	fail := func(err error) (chess.Move, error) {
		return chess.Move{}, &errors.MoveError{
			Err:   err,
			Ply:   s.ply(),
			From:  move.From.String(),
			To:    move.To.String(),
			Piece: move.Piece.String(),
		}
	}

	if s.IsOver() {
		return fail(errors.ErrGameOver)
	}
	if !move.From.InBounds() || !move.To.InBounds() {
		return fail(errors.ErrIllegalMove)
	}

	onBoard := s.Board.At(move.From)
	if onBoard.IsEmpty() || onBoard != move.Piece {
		return fail(errors.ErrPieceMismatch)
	}
	if onBoard.Colour != s.Turn {
		return fail(errors.ErrWrongTurn)
	}

	for _, legal := range LegalMoves(s, move.From) {
		if legal.To != move.To {
			continue
		}
		if legal.Promoting {
			if move.PromoteTo != chess.NoPiece && !chess.IsPromotionType(move.PromoteTo) {
				return fail(errors.ErrInvalidPromotion)
			}
			legal.PromoteTo = move.PromoteTo
		} else if move.PromoteTo != chess.NoPiece {
			return fail(errors.ErrInvalidPromotion)
		}
		return legal, nil
	}
	return fail(errors.ErrIllegalMove)
}

// ply returns the number of the half-move about to be played.
func (s *GameState) ply() int {
	ply := 2*(s.FullmoveNumber-1) + 1
	if s.Turn == chess.Black {
		ply++
	}
	return ply
}
