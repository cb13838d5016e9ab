// Package chess provides core chess types and operations.
package chess

import "strconv"

// Colour represents the colour of a piece or player.
type Colour uint8

const (
	White Colour = iota
	Black
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Forward returns the y step of a pawn of this colour.
// White advances toward row 0, Black toward row 7.
func (c Colour) Forward() int {
	if c == White {
		return -1
	}
	return 1
}

// HomeRank returns the row holding this colour's king and rooks at the start.
func (c Colour) HomeRank() int {
	if c == White {
		return BoardSize - 1
	}
	return 0
}

// PawnRank returns the row this colour's pawns start on.
func (c Colour) PawnRank() int {
	return c.HomeRank() + c.Forward()
}

// PromotionRank returns the row on which this colour's pawns promote.
func (c Colour) PromotionRank() int {
	return c.Opposite().HomeRank()
}

// PieceType represents a chess piece type.
type PieceType uint8

// The numeric values match the 3-bit type field of a PieceCode.
const (
	NoPiece PieceType = iota
	Pawn
	Rook
	Knight
	Bishop
	Queen
	King
)

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Rook", "Knight", "Bishop", "Queen", "King"}
	if int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// IsPromotionType reports whether t is a legal promotion target.
func IsPromotionType(t PieceType) bool {
	for _, p := range PromotionTypes {
		if p == t {
			return true
		}
	}
	return false
}

// Constants for board dimensions and piece identity.
const (
	BoardSize = 8
	NumCells  = BoardSize * BoardSize

	// PromotedFlag is set in the identity index of a promoted pawn.
	// Index-PromotedFlag recovers the original pawn slot.
	PromotedFlag = 8
)

// Piece is a piece on the board: colour, type and an identity index that
// disambiguates pieces of the same colour and type. The zero value is an
// empty cell.
type Piece struct {
	Colour Colour
	Type   PieceType
	Index  uint8
}

// Empty is the piece value of an unoccupied cell.
var Empty = Piece{}

// NewPiece creates a piece.
func NewPiece(colour Colour, pieceType PieceType, index uint8) Piece {
	return Piece{Colour: colour, Type: pieceType, Index: index & 0x0f}
}

// W creates a white piece.
func W(pieceType PieceType, index uint8) Piece {
	return NewPiece(White, pieceType, index)
}

// B creates a black piece.
func B(pieceType PieceType, index uint8) Piece {
	return NewPiece(Black, pieceType, index)
}

// IsEmpty reports whether p is the empty cell.
func (p Piece) IsEmpty() bool {
	return p.Type == NoPiece
}

// IsPromoted reports whether p started the game as a pawn.
func (p Piece) IsPromoted() bool {
	return !p.IsEmpty() && p.Type != Pawn && p.Index&PromotedFlag != 0
}

// IsEnemyOf reports whether p is occupied by the side opposite to colour.
func (p Piece) IsEnemyOf(colour Colour) bool {
	return !p.IsEmpty() && p.Colour != colour
}

// WithoutIndex clears the identity index, leaving colour and type.
func (p Piece) WithoutIndex() Piece {
	if p.IsEmpty() {
		return Empty
	}
	return Piece{Colour: p.Colour, Type: p.Type}
}

// BaseIdentity returns the piece p was at the start of the game:
// a promoted piece maps back to its original pawn.
func (p Piece) BaseIdentity() Piece {
	if !p.IsPromoted() {
		return p
	}
	return Piece{Colour: p.Colour, Type: Pawn, Index: p.Index - PromotedFlag}
}

// Promote returns the piece a pawn becomes when promoted to pieceType.
func (p Piece) Promote(pieceType PieceType) Piece {
	return NewPiece(p.Colour, pieceType, PromotedFlag|p.Index)
}

// String returns a short description such as "White Rook 1".
func (p Piece) String() string {
	if p.IsEmpty() {
		return "Empty"
	}
	return p.Colour.String() + " " + p.Type.String() + " " + strconv.Itoa(int(p.Index))
}

// Code packs p into its 8-bit form.
func (p Piece) Code() PieceCode {
	if p.IsEmpty() {
		return 0
	}
	return Compose(p.Colour, p.Type, p.Index)
}

// PieceCode is the packed form of a Piece: cttt iiii, with c the colour
// bit, t the type and i the identity index. Zero is the empty cell.
type PieceCode uint8

const (
	colourBit   = 0x80
	colourShift = 7
	typeMask    = 0x70
	typeShift   = 4
	indexMask   = 0x0f
)

// Compose packs colour, type and identity index into a PieceCode.
func Compose(colour Colour, pieceType PieceType, index uint8) PieceCode {
	return PieceCode(uint8(colour)<<colourShift | uint8(pieceType)<<typeShift&typeMask | index&indexMask)
}

// Colour returns the colour of the piece; ok is false for the empty cell.
func (c PieceCode) Colour() (colour Colour, ok bool) {
	if c == 0 {
		return White, false
	}
	return Colour(c & colourBit >> colourShift), true
}

// Type returns the piece type, NoPiece for the empty cell.
func (c PieceCode) Type() PieceType {
	return PieceType(c & typeMask >> typeShift)
}

// Index returns the identity index.
func (c PieceCode) Index() uint8 {
	return uint8(c & indexMask)
}

// WithoutIndex masks out the identity bits.
func (c PieceCode) WithoutIndex() PieceCode {
	return c &^ indexMask
}

// BaseIdentity strips the promoted marker, recovering the original pawn.
func (c PieceCode) BaseIdentity() PieceCode {
	return c.Piece().BaseIdentity().Code()
}

// Piece unpacks the code.
func (c PieceCode) Piece() Piece {
	if c == 0 {
		return Empty
	}
	colour, _ := c.Colour()
	return Piece{Colour: colour, Type: c.Type(), Index: c.Index()}
}
