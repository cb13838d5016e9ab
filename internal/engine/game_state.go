// Package engine provides chess move generation, validation and state transitions.
package engine

import (
	"time"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// DefaultTimeControl is the clock each player starts with.
const DefaultTimeControl = 10 * time.Minute

// RepetitionLimit is the number of occurrences of a position that draws the game.
const RepetitionLimit = 3

// Winner records who won a finished game.
type Winner int

const (
	NoWinner Winner = iota
	WhiteWins
	BlackWins
	Draw
)

// String returns the string representation of a winner.
func (w Winner) String() string {
	switch w {
	case WhiteWins:
		return "White"
	case BlackWins:
		return "Black"
	case Draw:
		return "Draw"
	default:
		return "None"
	}
}

// winnerFor returns the Winner value for a colour.
func winnerFor(colour chess.Colour) Winner {
	if colour == chess.White {
		return WhiteWins
	}
	return BlackWins
}

// Reason explains why a game ended.
type Reason string

const (
	NoReason   Reason = ""
	Checkmate  Reason = "Checkmate"
	Stalemate  Reason = "Stalemate"
	Repetition Reason = "Repetition"
)

// PlayerState holds per-player state carried between moves.
type PlayerState struct {
	// Castling rights. They can be revoked but never restored.
	CanCastleLeft  bool
	CanCastleRight bool

	// TimeRemaining is carried for the caller; the engine never enforces it.
	TimeRemaining time.Duration
}

// GameState is an immutable snapshot of a game. ApplyMove returns a new
// GameState rather than modifying its input, so a *GameState may be shared
// freely between goroutines.
type GameState struct {
	// The board after the last move.
	Board chess.Board

	// Who has the next move.
	Turn chess.Colour

	// Whether the side to move is in check.
	Check bool

	// Outcome, set once the game is over.
	Winner Winner
	Reason Reason

	// EnPassant is the cell an en passant capture may land on. It is only
	// valid for the move immediately after a double pawn push.
	EnPassant *chess.Coord

	White PlayerState
	Black PlayerState

	// Positions counts occurrences of each position hash.
	Positions hashing.PositionCounts

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock int

	// The current move number, incremented after each Black move.
	FullmoveNumber int
}

// InitialState returns the standard starting position with White to move.
func InitialState() *GameState {
	player := PlayerState{
		CanCastleLeft:  true,
		CanCastleRight: true,
		TimeRemaining:  DefaultTimeControl,
	}
	s := &GameState{
		Board:          chess.InitialBoard(),
		Turn:           chess.White,
		White:          player,
		Black:          player,
		FullmoveNumber: 1,
	}
	s.Positions = hashing.NewPositionCounts(s.Hash())
	return s
}

// Player returns the state of the given colour's player.
func (s *GameState) Player(colour chess.Colour) PlayerState {
	if colour == chess.White {
		return s.White
	}
	return s.Black
}

// IsOver reports whether the game has been decided.
func (s *GameState) IsOver() bool {
	return s.Winner != NoWinner
}

// Hash returns the repetition hash of the position.
func (s *GameState) Hash() uint64 {
	return hashing.PositionHash(hashing.PositionKey{
		Board:     &s.Board,
		ToMove:    s.Turn,
		EnPassant: s.EnPassant,
		Castling: [4]bool{
			s.White.CanCastleLeft, s.White.CanCastleRight,
			s.Black.CanCastleLeft, s.Black.CanCastleRight,
		},
	})
}

// RepetitionCount returns how many times the current position has occurred.
func (s *GameState) RepetitionCount() int {
	return s.Positions.Count(s.Hash())
}

// IsCheckmate returns true if the side to move has been checkmated.
func (s *GameState) IsCheckmate() bool {
	return s.Reason == Checkmate
}

// IsStalemate returns true if the side to move has been stalemated.
func (s *GameState) IsStalemate() bool {
	return s.Reason == Stalemate
}
