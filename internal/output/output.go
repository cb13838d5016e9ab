// Package output writes perft reports as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/perft"
)

// Report is the outcome of one perft run.
type Report struct {
	FEN     string
	Depth   int
	Entries []perft.Entry // Empty unless the run divided at the root
	Total   uint64
}

// WriteText writes one "<move>: N" line per entry followed by "total: N".
func WriteText(w io.Writer, r *Report) error {
	for _, e := range r.Entries {
		if _, err := fmt.Fprintf(w, "%s: %d\n", perft.FormatMove(e.Move), e.Nodes); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(w, "total: %d\n", r.Total)
	return err
}
