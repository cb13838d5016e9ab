// Package testutil provides shared test utilities for the chessrules-go project.
// These utilities reduce code duplication across test files and provide
// consistent test setup helpers.
package testutil

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// Sq converts a square name such as "e2" to a board coordinate. It panics on
// a malformed name, so use it only with literals.
func Sq(name string) chess.Coord {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		panic("testutil: bad square " + name)
	}
	return chess.Coord{X: int(name[0] - 'a'), Y: chess.BoardSize - int(name[1]-'0')}
}

// MustState loads a FEN position. It calls t.Fatal if the FEN is rejected.
func MustState(t testing.TB, fen string) *engine.GameState {
	t.Helper()
	s, err := engine.NewStateFromFEN(fen)
	if err != nil {
		t.Fatalf("NewStateFromFEN(%q) failed: %v", fen, err)
	}
	return s
}

// FindMove returns the legal move from one square to another, or false if
// there is none.
func FindMove(s *engine.GameState, from, to string) (chess.Move, bool) {
	target := Sq(to)
	for _, move := range engine.LegalMoves(s, Sq(from)) {
		if move.To == target {
			return move, true
		}
	}
	return chess.Move{}, false
}

// Play applies a sequence of moves given as "e2e4" pairs, with an optional
// promotion letter ("a7a8n"). It calls t.Fatal on the first move that is not
// legal and returns every intermediate state, starting with s.
func Play(t testing.TB, s *engine.GameState, moves ...string) []*engine.GameState {
	t.Helper()
	states := []*engine.GameState{s}
	for i, m := range moves {
		if len(m) != 4 && len(m) != 5 {
			t.Fatalf("move %d: malformed move %q", i+1, m)
		}
		move, ok := FindMove(s, m[0:2], m[2:4])
		if !ok {
			t.Fatalf("move %d: %s is not legal in %s", i+1, m, s.FEN())
		}
		if len(m) == 5 {
			move = move.WithPromotion(engine.ConvertFENCharToPiece(m[4]))
		}
		s = engine.ApplyMove(s, move)
		states = append(states, s)
	}
	return states
}

// Last returns the final state of a Play sequence.
func Last(states []*engine.GameState) *engine.GameState {
	return states[len(states)-1]
}
