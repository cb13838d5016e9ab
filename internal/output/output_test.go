package output

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/perft"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func divideReport(t *testing.T, fen string, depth int) *Report {
	t.Helper()
	s := testutil.MustState(t, fen)
	result, err := perft.Divide(s, depth)
	testutil.AssertNoError(t, err)
	return &Report{FEN: s.FEN(), Depth: depth, Entries: result.Entries, Total: result.Total}
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name   string
		report *Report
		want   string
	}{
		{
			name:   "total only",
			report: &Report{Depth: 3, Total: 8902},
			want:   "total: 8902\n",
		},
		{
			name: "divided",
			report: &Report{
				Depth: 1,
				Entries: []perft.Entry{
					{Move: chess.NewMove(chess.W(chess.Knight, 0), testutil.Sq("b1"), testutil.Sq("a3")), Nodes: 1},
					{Move: chess.NewMove(chess.W(chess.Knight, 0), testutil.Sq("b1"), testutil.Sq("c3")), Nodes: 1},
				},
				Total: 2,
			},
			want: "1,7-0,5: 1\n1,7-2,5: 1\ntotal: 2\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			testutil.AssertNoError(t, WriteText(&buf, tt.report))
			testutil.AssertEqual(t, buf.String(), tt.want)
		})
	}
}

func TestReportToJSON(t *testing.T) {
	// White can promote with capture, castle left, or move the king.
	r := divideReport(t, "1r2k3/P7/8/8/8/8/8/R3K3 w Q - 0 1", 1)
	jr := ReportToJSON(r)

	testutil.AssertEqual(t, jr.Total, r.Total)
	testutil.AssertEqual(t, len(jr.Moves), len(r.Entries))

	var promoCapture, castle *JSONMove
	for i := range jr.Moves {
		m := &jr.Moves[i]
		if m.Captured != "" && m.Promotion == "Knight" {
			promoCapture = m
		}
		if m.Castle != "" {
			castle = m
		}
	}
	if promoCapture == nil {
		t.Fatal("no capturing knight promotion in report")
	}
	testutil.AssertEqual(t, *promoCapture, JSONMove{
		Move:      "0,1-1,0=N",
		From:      "0,1",
		To:        "1,0",
		Piece:     "White Pawn",
		Captured:  "Black Rook",
		Promotion: "Knight",
		Nodes:     1,
	})
	if castle == nil {
		t.Fatal("no castling move in report")
	}
	testutil.AssertEqual(t, castle.Castle, "left")
}

func TestWriteJSON(t *testing.T) {
	r := divideReport(t, engine.InitialFEN, 2)

	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, r))

	var decoded JSONReport
	if err := json.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid JSON: %v\n%s", err, buf.String())
	}
	testutil.AssertEqual(t, decoded.FEN, engine.InitialFEN)
	testutil.AssertEqual(t, decoded.Depth, 2)
	testutil.AssertEqual(t, decoded.Total, uint64(400))
	testutil.AssertEqual(t, len(decoded.Moves), 20)
}

func TestWriteJSON_TotalOnly(t *testing.T) {
	var buf bytes.Buffer
	testutil.AssertNoError(t, WriteJSON(&buf, &Report{FEN: engine.InitialFEN, Depth: 1, Total: 20}))
	testutil.AssertNotContains(t, buf.String(), `"moves"`)
}
