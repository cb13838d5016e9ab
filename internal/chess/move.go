package chess

// Move represents a single chess move with all the data needed to apply it.
type Move struct {
	// Source and destination cells.
	From Coord
	To   Coord

	// The piece being moved, as it stood before the move.
	Piece Piece

	// The piece captured (Empty if no capture). For an en passant
	// capture it does not stand on To.
	Captured Piece

	// Castling flags. The rook relocation is implied.
	CastleLeft  bool
	CastleRight bool

	// Set on a double pawn push: the cell an en passant capture
	// would land on.
	EnPassant *Coord

	// Promoting is true when a pawn reaches the far rank.
	Promoting bool

	// The piece type promoted to (NoPiece means Queen).
	PromoteTo PieceType
}

// NewMove creates a plain move of piece from one cell to another.
func NewMove(piece Piece, from, to Coord) Move {
	return Move{From: from, To: to, Piece: piece}
}

// IsCapture returns true if this move is a capture.
func (m Move) IsCapture() bool {
	return !m.Captured.IsEmpty()
}

// IsCastle returns true if this move is a castling move.
func (m Move) IsCastle() bool {
	return m.CastleLeft || m.CastleRight
}

// WithPromotion returns a copy of m promoting to pieceType.
func (m Move) WithPromotion(pieceType PieceType) Move {
	m.PromoteTo = pieceType
	return m
}

// PromotionType returns the piece type a promoting move produces.
func (m Move) PromotionType() PieceType {
	if m.PromoteTo == NoPiece {
		return Queen
	}
	return m.PromoteTo
}
