package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PieceView describes where one of the 32 original pieces currently is.
// A promoted pawn keeps its original Identity while Piece shows what it
// has become, so a renderer can follow it across the promotion.
type PieceView struct {
	Identity chess.Piece // The piece as it stood in the initial position
	Piece    chess.Piece // The piece as it stands now
	Coord    chess.Coord // Current cell; zero value if captured
	Captured bool
}

// PieceViews returns one view per original piece, Black's first, in
// initial board order.
func PieceViews(board *chess.Board) []PieceView {
	located := make(map[chess.Piece]int, 32)
	for i, p := range board {
		if !p.IsEmpty() {
			located[p.BaseIdentity()] = i
		}
	}

	originals := chess.OriginalPieces()
	views := make([]PieceView, 0, len(originals))
	for _, identity := range originals {
		view := PieceView{Identity: identity, Piece: identity}
		if i, ok := located[identity]; ok {
			view.Coord = chess.CoordFromIndex(i)
			view.Piece = board[i]
		} else {
			view.Captured = true
		}
		views = append(views, view)
	}
	return views
}
