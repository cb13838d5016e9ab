package engine_test

import (
	stderrors "errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestNewStateFromFEN_Initial(t *testing.T) {
	s, err := engine.NewStateFromFEN(engine.InitialFEN)
	testutil.AssertNoError(t, err)

	if diff := cmp.Diff(engine.InitialState(), s); diff != "" {
		t.Errorf("initial FEN state mismatch (-want +got):\n%s", diff)
	}
}

func TestNewStateFromFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantTurn  chess.Colour
		wantEP    *chess.Coord
		wantWhite engine.PlayerState
		wantBlack engine.PlayerState
		wantHalf  int
		wantFull  int
		wantCheck bool
	}{
		{
			name:      "black to move with en passant",
			fen:       "rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
			wantTurn:  chess.Black,
			wantEP:    &chess.Coord{X: 4, Y: 5},
			wantWhite: engine.PlayerState{CanCastleLeft: true, CanCastleRight: true, TimeRemaining: engine.DefaultTimeControl},
			wantBlack: engine.PlayerState{CanCastleLeft: true, CanCastleRight: true, TimeRemaining: engine.DefaultTimeControl},
			wantFull:  1,
		},
		{
			name:      "partial castling rights and clocks",
			fen:       "r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
			wantTurn:  chess.White,
			wantWhite: engine.PlayerState{CanCastleRight: true, TimeRemaining: engine.DefaultTimeControl},
			wantBlack: engine.PlayerState{CanCastleLeft: true, TimeRemaining: engine.DefaultTimeControl},
			wantHalf:  12,
			wantFull:  40,
		},
		{
			name:      "placement only",
			fen:       "4k3/8/8/8/8/8/8/4K3",
			wantTurn:  chess.White,
			wantWhite: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantBlack: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantFull:  1,
		},
		{
			name:      "quiet position with black to move",
			fen:       "4k3/8/8/8/8/8/8/4KR2 b - - 0 1",
			wantTurn:  chess.Black,
			wantWhite: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantBlack: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantFull:  1,
		},
		{
			name:      "rook gives check",
			fen:       "4k3/8/8/8/8/8/8/4R1K1 b - - 0 1",
			wantTurn:  chess.Black,
			wantWhite: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantBlack: engine.PlayerState{TimeRemaining: engine.DefaultTimeControl},
			wantFull:  1,
			wantCheck: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testutil.MustState(t, tt.fen)

			testutil.AssertEqual(t, s.Turn, tt.wantTurn, "turn")
			testutil.AssertEqual(t, s.EnPassant, tt.wantEP, "en passant")
			testutil.AssertEqual(t, s.White, tt.wantWhite, "white")
			testutil.AssertEqual(t, s.Black, tt.wantBlack, "black")
			testutil.AssertEqual(t, s.HalfmoveClock, tt.wantHalf, "halfmove clock")
			testutil.AssertEqual(t, s.FullmoveNumber, tt.wantFull, "fullmove number")
			testutil.AssertEqual(t, s.Check, tt.wantCheck, "check")
			testutil.AssertEqual(t, s.RepetitionCount(), 1)
		})
	}
}

func TestNewStateFromFEN_Identities(t *testing.T) {
	// Three white queens: two of them must be promoted pawns using the
	// slots left free by the six remaining pawns.
	s := testutil.MustState(t, "4k3/8/8/8/8/8/PPPPPP2/QQQ1K3 w - - 0 1")

	testutil.AssertEqual(t, s.Board.At(sq("a1")), chess.W(chess.Queen, 0))
	testutil.AssertEqual(t, s.Board.At(sq("b1")), chess.W(chess.Queen, chess.PromotedFlag|6))
	testutil.AssertEqual(t, s.Board.At(sq("c1")), chess.W(chess.Queen, chess.PromotedFlag|7))
	testutil.AssertEqual(t, s.Board.At(sq("f2")), chess.W(chess.Pawn, 5))

	seen := make(map[chess.Piece]bool)
	for _, p := range s.Board {
		if p.IsEmpty() {
			continue
		}
		testutil.AssertFalse(t, seen[p.BaseIdentity()], "identity %v assigned twice", p)
		seen[p.BaseIdentity()] = true
	}
}

func TestNewStateFromFEN_Terminal(t *testing.T) {
	// Black is already mated.
	s := testutil.MustState(t, "R5k1/5ppp/8/8/8/8/8/6K1 b - - 0 1")

	testutil.AssertEqual(t, s.Winner, engine.WhiteWins)
	testutil.AssertEqual(t, s.Reason, engine.Checkmate)
}

func TestNewStateFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantField string
	}{
		{"empty", "", "placement"},
		{"bad piece letter", "4k3/8/8/8/8/8/8/4X3 w - - 0 1", "placement"},
		{"too few ranks", "4k3/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"short rank", "4k3/8/8/8/8/8/8/4K2/ w - - 0 1", "placement"},
		{"wide rank", "4k3/8/8/8/8/8/8/4K4 w - - 0 1", "placement"},
		{"no white king", "4k3/8/8/8/8/8/8/8 w - - 0 1", "placement"},
		{"two black kings", "k3k3/8/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"pawn on back rank", "4k2P/8/8/8/8/8/8/4K3 w - - 0 1", "placement"},
		{"nine pawns", "4k3/8/8/8/8/P7/PPPPPPPP/4K3 w - - 0 1", "placement"},
		{"too many pieces", "4k3/8/8/8/QQQQQQQ1/QQ6/PPPPPPPP/4K3 w - - 0 1", "placement"},
		{"bad side", "4k3/8/8/8/8/8/8/4K3 x - - 0 1", "side"},
		{"bad castling", "4k3/8/8/8/8/8/8/4K3 w KX - 0 1", "castling"},
		{"bad en passant square", "4k3/8/8/8/8/8/8/4K3 w - z9 0 1", "en passant"},
		{"en passant on wrong rank", "4k3/8/8/8/8/8/8/4K3 w - e3 0 1", "en passant"},
		{"bad halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - x 1", "halfmove clock"},
		{"negative halfmove clock", "4k3/8/8/8/8/8/8/4K3 w - - -1 1", "halfmove clock"},
		{"zero fullmove number", "4k3/8/8/8/8/8/8/4K3 w - - 0 0", "fullmove number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := engine.NewStateFromFEN(tt.fen)

			testutil.AssertNil(t, s)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN)
			var parseErr *errors.ParseError
			if !stderrors.As(err, &parseErr) {
				t.Fatalf("error %v is not a *ParseError", err)
			}
			testutil.AssertEqual(t, parseErr.Field, tt.wantField)
		})
	}
}

func TestFEN_RoundTrip(t *testing.T) {
	fens := []string{
		engine.InitialFEN,
		"rnbqkbnr/pppppppp/8/8/4P3/8/PPPP1PPP/RNBQKBNR b KQkq e3 0 1",
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1",
		"r3k2r/8/8/8/8/8/8/R3K2R w Kq - 12 40",
	}

	for _, fen := range fens {
		t.Run(fen, func(t *testing.T) {
			testutil.AssertEqual(t, testutil.MustState(t, fen).FEN(), fen)
		})
	}
}

func TestFEN_AfterMoves(t *testing.T) {
	s := testutil.Last(testutil.Play(t, engine.InitialState(), "e2e4", "c7c5", "g1f3"))

	testutil.AssertEqual(t, s.FEN(), "rnbqkbnr/pp1ppppp/8/2p5/4P3/5N2/PPPP1PPP/RNBQKB1R b KQkq - 1 2")
}

func TestMustStateFromFEN_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustStateFromFEN should panic on an invalid FEN")
		}
	}()
	engine.MustStateFromFEN("not a fen")
}
