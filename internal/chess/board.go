package chess

import "fmt"

// Coord is a cell on the board. (0,0) is the top-left cell, which is
// Black's queenside corner; White's pieces start on rows 6 and 7.
type Coord struct {
	X int
	Y int
}

// CoordFromIndex converts a flat board index back to a coordinate.
func CoordFromIndex(i int) Coord {
	return Coord{X: i % BoardSize, Y: i / BoardSize}
}

// Index returns the flat board index x + y*8.
func (c Coord) Index() int {
	return c.X + c.Y*BoardSize
}

// InBounds reports whether c lies on the board.
func (c Coord) InBounds() bool {
	return c.X >= 0 && c.X < BoardSize && c.Y >= 0 && c.Y < BoardSize
}

// Add returns c shifted by (dx, dy).
func (c Coord) Add(dx, dy int) Coord {
	return Coord{X: c.X + dx, Y: c.Y + dy}
}

// String returns the coordinate as "x,y".
func (c Coord) String() string {
	return fmt.Sprintf("%d,%d", c.X, c.Y)
}

// Board is the 64-cell grid, indexed by Coord.Index. It is a value type:
// assigning a Board copies every cell.
type Board [NumCells]Piece

// At returns the piece on c. Off-board coordinates read as Empty.
func (b *Board) At(c Coord) Piece {
	if !c.InBounds() {
		return Empty
	}
	return b[c.Index()]
}

// Set places a piece on c.
func (b *Board) Set(c Coord, p Piece) {
	if c.InBounds() {
		b[c.Index()] = p
	}
}

// Find returns the cell holding exactly p.
func (b *Board) Find(p Piece) (Coord, bool) {
	for i, q := range b {
		if q == p {
			return CoordFromIndex(i), true
		}
	}
	return Coord{}, false
}

// KingSquare returns where the king of colour stands.
func (b *Board) KingSquare(colour Colour) (Coord, bool) {
	for i, q := range b {
		if q.Type == King && q.Colour == colour {
			return CoordFromIndex(i), true
		}
	}
	return Coord{}, false
}

// Codes returns the packed form of every cell.
func (b *Board) Codes() [NumCells]PieceCode {
	var codes [NumCells]PieceCode
	for i, p := range b {
		codes[i] = p.Code()
	}
	return codes
}

// backRank lists the back-rank pieces from the a-file to the h-file,
// each with its identity index.
var backRank = [BoardSize]struct {
	Type  PieceType
	Index uint8
}{
	{Rook, 0}, {Knight, 0}, {Bishop, 0}, {Queen, 0},
	{King, 0}, {Bishop, 1}, {Knight, 1}, {Rook, 1},
}

// InitialBoard returns the standard starting position.
func InitialBoard() Board {
	var b Board
	for x := 0; x < BoardSize; x++ {
		for _, colour := range []Colour{White, Black} {
			home := backRank[x]
			b.Set(Coord{X: x, Y: colour.HomeRank()}, NewPiece(colour, home.Type, home.Index))
			b.Set(Coord{X: x, Y: colour.PawnRank()}, NewPiece(colour, Pawn, uint8(x)))
		}
	}
	return b
}

// OriginalPieces returns the 32 pieces of the starting position, Black's
// first, each side in board order.
func OriginalPieces() []Piece {
	b := InitialBoard()
	pieces := make([]Piece, 0, 32)
	for _, p := range b {
		if !p.IsEmpty() {
			pieces = append(pieces, p)
		}
	}
	return pieces
}
