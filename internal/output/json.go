package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/perft"
)

// JSONReport represents a perft report in JSON format.
type JSONReport struct {
	FEN   string     `json:"fen"`
	Depth int        `json:"depth"`
	Moves []JSONMove `json:"moves,omitempty"`
	Total uint64     `json:"total"`
}

// JSONMove represents one divided root move in JSON format.
type JSONMove struct {
	Move      string `json:"move"`
	From      string `json:"from"`
	To        string `json:"to"`
	Piece     string `json:"piece"`
	Captured  string `json:"captured,omitempty"`
	Promotion string `json:"promotion,omitempty"`
	Castle    string `json:"castle,omitempty"` // "left" or "right"
	Nodes     uint64 `json:"nodes"`
}

// WriteJSON writes the report as indented JSON.
func WriteJSON(w io.Writer, r *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(ReportToJSON(r))
}

// ReportToJSON converts a report to its JSON form.
func ReportToJSON(r *Report) *JSONReport {
	jr := &JSONReport{
		FEN:   r.FEN,
		Depth: r.Depth,
		Total: r.Total,
	}
	for _, e := range r.Entries {
		jr.Moves = append(jr.Moves, convertEntry(e))
	}
	return jr
}

// convertEntry converts a single divide entry.
func convertEntry(e perft.Entry) JSONMove {
	m := e.Move
	jm := JSONMove{
		Move:  perft.FormatMove(m),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(m.Piece),
		Nodes: e.Nodes,
	}
	if m.IsCapture() {
		jm.Captured = pieceTypeName(m.Captured)
	}
	if m.Promoting {
		jm.Promotion = m.PromotionType().String()
	}
	switch {
	case m.CastleLeft:
		jm.Castle = "left"
	case m.CastleRight:
		jm.Castle = "right"
	}
	return jm
}

// pieceTypeName returns "White Knight" style names without the identity index.
func pieceTypeName(p chess.Piece) string {
	if p.IsEmpty() {
		return ""
	}
	return p.Colour.String() + " " + p.Type.String()
}
