package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are distinct and
// can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	sentinels := []error{
		ErrInvalidFEN,
		ErrIllegalMove,
		ErrWrongTurn,
		ErrPieceMismatch,
		ErrInvalidPromotion,
		ErrGameOver,
		ErrInvalidConfig,
	}

	for i, err := range sentinels {
		t.Run(err.Error(), func(t *testing.T) {
			for j, other := range sentinels {
				if got := errors.Is(err, other); got != (i == j) {
					t.Errorf("errors.Is(%v, %v) = %v, want %v", err, other, got, i == j)
				}
			}
		})
	}
}

// TestSentinelErrors_Wrapping verifies wrapped sentinel errors can still be detected
func TestSentinelErrors_Wrapping(t *testing.T) {
	wrapped := fmt.Errorf("failed to load position: %w", ErrInvalidFEN)

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Errorf("errors.Is(wrapped, ErrInvalidFEN) = false, want true")
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
		want     string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:   ErrIllegalMove,
				Ply:   12,
				From:  "4,6",
				To:    "4,3",
				Piece: "White Pawn 4",
			},
			contains: []string{"ply 12", "4,6->4,3", "White Pawn 4", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrGameOver},
			contains: []string{"game is over"},
			want:     "game is over",
		},
		{
			name: "no underlying error",
			err:  &MoveError{},
			want: "move error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
			if tt.want != "" && msg != tt.want {
				t.Errorf("MoveError.Error() = %q, want %q", msg, tt.want)
			}
		})
	}
}

// TestMoveError_As verifies that errors.Is and errors.As work through MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{
		Err:  ErrWrongTurn,
		Ply:  3,
		From: "1,0",
		To:   "2,2",
	}

	wrapped := fmt.Errorf("applying move failed: %w", moveErr)

	if !errors.Is(wrapped, ErrWrongTurn) {
		t.Error("errors.Is(wrapped, ErrWrongTurn) = false, want true")
	}

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Ply != 3 {
		t.Errorf("extracted.Ply = %d, want 3", extracted.Ply)
	}
	if extracted.To != "2,2" {
		t.Errorf("extracted.To = %q, want %q", extracted.To, "2,2")
	}
}

// TestParseError_Error verifies ParseError formatting
func TestParseError_Error(t *testing.T) {
	tests := []struct {
		name string
		err  *ParseError
		want string
	}{
		{
			name: "field and column",
			err: &ParseError{
				Err:      ErrInvalidFEN,
				Field:    "placement",
				Column:   15,
				Expected: "piece letter",
				Got:      "'x'",
			},
			want: "placement:15: expected piece letter, got 'x': invalid FEN string",
		},
		{
			name: "got only",
			err:  &ParseError{Err: ErrInvalidFEN, Field: "side", Got: "\"z\""},
			want: "side: unexpected \"z\": invalid FEN string",
		},
		{
			name: "bare error",
			err:  &ParseError{Err: ErrInvalidFEN},
			want: "invalid FEN string",
		},
		{
			name: "empty",
			err:  &ParseError{},
			want: "parse error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.err.Error(); got != tt.want {
				t.Errorf("ParseError.Error() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestParseError_Unwrap verifies ParseError implements Unwrap
func TestParseError_Unwrap(t *testing.T) {
	parseErr := &ParseError{
		Err:   ErrInvalidFEN,
		Field: "castling",
	}

	if !errors.Is(parseErr, ErrInvalidFEN) {
		t.Error("errors.Is(parseErr, ErrInvalidFEN) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "context") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrIllegalMove, "ply %d of line %d", 15, 3)

	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "ply 15") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
	if Wrapf(nil, "ply %d", 1) != nil {
		t.Error("Wrapf(nil) should return nil")
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
