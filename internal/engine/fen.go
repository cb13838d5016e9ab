package engine

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/hashing"
)

// InitialFEN is the FEN string for the standard starting position.
const InitialFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// FEN piece characters (always English, upper case for White).
var fenPieceChars = map[chess.PieceType]byte{
	chess.Pawn:   'P',
	chess.Knight: 'N',
	chess.Bishop: 'B',
	chess.Rook:   'R',
	chess.Queen:  'Q',
	chess.King:   'K',
}

// standardCounts is how many pieces of each type a side starts with.
// Pieces beyond these counts are taken to be promoted pawns.
var standardCounts = map[chess.PieceType]int{
	chess.Pawn:   8,
	chess.Rook:   2,
	chess.Knight: 2,
	chess.Bishop: 2,
	chess.Queen:  1,
	chess.King:   1,
}

// ConvertFENCharToPiece converts a FEN character to a piece type.
func ConvertFENCharToPiece(c byte) chess.PieceType {
	switch c {
	case 'K', 'k':
		return chess.King
	case 'Q', 'q':
		return chess.Queen
	case 'R', 'r':
		return chess.Rook
	case 'N', 'n':
		return chess.Knight
	case 'B', 'b':
		return chess.Bishop
	case 'P', 'p':
		return chess.Pawn
	default:
		return chess.NoPiece
	}
}

// PieceToFENChar returns the FEN letter for a piece.
func PieceToFENChar(piece chess.Piece) byte {
	letter, ok := fenPieceChars[piece.Type]
	if !ok {
		return '?'
	}
	if piece.Colour == chess.Black {
		letter = byte(unicode.ToLower(rune(letter)))
	}
	return letter
}

// fenError builds a ParseError wrapping ErrInvalidFEN.
func fenError(field, got, expected string) error {
	return &errors.ParseError{
		Err:      errors.ErrInvalidFEN,
		Field:    field,
		Expected: expected,
		Got:      got,
	}
}

// NewStateFromFEN creates a game state from a FEN string. Missing trailing
// fields default to White to move, no castling, no en passant and clocks
// of 0 and 1. The position is classified as ApplyMove would classify it,
// so a FEN of a mated position yields a finished game.
func NewStateFromFEN(fen string) (*GameState, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, fenError("placement", "empty string", "")
	}

	s := &GameState{
		Turn:           chess.White,
		White:          PlayerState{TimeRemaining: DefaultTimeControl},
		Black:          PlayerState{TimeRemaining: DefaultTimeControl},
		FullmoveNumber: 1,
	}

	if err := parsePiecePositions(&s.Board, parts[0]); err != nil {
		return nil, err
	}
	if err := parseSideToMove(s, parts); err != nil {
		return nil, err
	}
	if err := parseCastlingRights(s, parts); err != nil {
		return nil, err
	}
	if err := parseEnPassant(s, parts); err != nil {
		return nil, err
	}
	if err := parseClocks(s, parts); err != nil {
		return nil, err
	}

	hash := s.Hash()
	s.Positions = hashing.NewPositionCounts(hash)
	classify(s, s.Turn.Opposite(), hash)
	return s, nil
}

// placedPiece is a piece read from the placement field, before it has an
// identity index.
type placedPiece struct {
	at        chess.Coord
	colour    chess.Colour
	pieceType chess.PieceType
}

// parsePiecePositions parses the piece placement field of a FEN string.
func parsePiecePositions(board *chess.Board, positions string) error {
	var placed []placedPiece
	x, y := 0, 0

	for i, c := range positions {
		switch {
		case c == '/':
			if x != chess.BoardSize {
				return fenError("placement", fmt.Sprintf("rank of width %d", x), "8 files")
			}
			y++
			x = 0
		case c >= '1' && c <= '8':
			x += int(c - '0')
		default:
			pieceType := ConvertFENCharToPiece(byte(c))
			if pieceType == chess.NoPiece {
				return &errors.ParseError{
					Err:      errors.ErrInvalidFEN,
					Field:    "placement",
					Column:   i + 1,
					Expected: "piece letter",
					Got:      strconv.QuoteRune(c),
				}
			}
			if x >= chess.BoardSize || y >= chess.BoardSize {
				return fenError("placement", "piece off the board", "")
			}

			colour := chess.White
			if unicode.IsLower(c) {
				colour = chess.Black
			}
			if pieceType == chess.Pawn && (y == 0 || y == chess.BoardSize-1) {
				return fenError("placement", "pawn on back rank", "")
			}
			placed = append(placed, placedPiece{at: chess.Coord{X: x, Y: y}, colour: colour, pieceType: pieceType})
			x++
		}
		if x > chess.BoardSize {
			return fenError("placement", "rank wider than 8 files", "")
		}
	}
	if y != chess.BoardSize-1 || x != chess.BoardSize {
		return fenError("placement", fmt.Sprintf("%d ranks", y+1), "8 ranks")
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if err := placeColour(board, placed, colour); err != nil {
			return err
		}
	}
	return nil
}

// placeColour assigns identity indices to one side's pieces, in scan
// order, and puts them on the board. Pawns are placed first so that
// pieces beyond the standard counts can take a free pawn slot as
// promoted pieces.
func placeColour(board *chess.Board, placed []placedPiece, colour chess.Colour) error {
	var pawnSlots [chess.PromotedFlag]bool
	counts := make(map[chess.PieceType]int)

	for _, p := range placed {
		if p.colour != colour || p.pieceType != chess.Pawn {
			continue
		}
		if counts[chess.Pawn] == standardCounts[chess.Pawn] {
			return fenError("placement", "more than 8 "+colour.String()+" pawns", "")
		}
		pawnSlots[counts[chess.Pawn]] = true
		board.Set(p.at, chess.NewPiece(colour, chess.Pawn, uint8(counts[chess.Pawn])))
		counts[chess.Pawn]++
	}

	nextFreeSlot := 0
	for _, p := range placed {
		if p.colour != colour || p.pieceType == chess.Pawn {
			continue
		}

		n := counts[p.pieceType]
		counts[p.pieceType]++
		if n < standardCounts[p.pieceType] {
			board.Set(p.at, chess.NewPiece(colour, p.pieceType, uint8(n)))
			continue
		}
		if p.pieceType == chess.King {
			return fenError("placement", "more than one "+colour.String()+" king", "")
		}

		for nextFreeSlot < len(pawnSlots) && pawnSlots[nextFreeSlot] {
			nextFreeSlot++
		}
		if nextFreeSlot == len(pawnSlots) {
			return fenError("placement", "too many "+colour.String()+" pieces", "")
		}
		pawnSlots[nextFreeSlot] = true
		board.Set(p.at, chess.NewPiece(colour, chess.Pawn, uint8(nextFreeSlot)).Promote(p.pieceType))
	}

	if counts[chess.King] != 1 {
		return fenError("placement", "no "+colour.String()+" king", "one king per side")
	}
	return nil
}

// parseSideToMove parses the side to move field.
func parseSideToMove(s *GameState, parts []string) error {
	if len(parts) < 2 {
		return nil
	}
	switch parts[1] {
	case "w":
		s.Turn = chess.White
	case "b":
		s.Turn = chess.Black
	default:
		return fenError("side", strconv.Quote(parts[1]), "w or b")
	}
	return nil
}

// parseCastlingRights parses the castling availability field.
func parseCastlingRights(s *GameState, parts []string) error {
	if len(parts) < 3 || parts[2] == "-" {
		return nil
	}

	for _, c := range parts[2] {
		switch c {
		case 'K':
			s.White.CanCastleRight = true
		case 'Q':
			s.White.CanCastleLeft = true
		case 'k':
			s.Black.CanCastleRight = true
		case 'q':
			s.Black.CanCastleLeft = true
		default:
			return fenError("castling", strconv.QuoteRune(c), "one of KQkq")
		}
	}
	return nil
}

// parseEnPassant parses the en passant target square field.
func parseEnPassant(s *GameState, parts []string) error {
	if len(parts) < 4 || parts[3] == "-" {
		return nil
	}

	sq, ok := parseSquare(parts[3])
	if !ok {
		return fenError("en passant", strconv.Quote(parts[3]), "square")
	}
	// The target lies behind a pawn that has just double-stepped.
	wantY := s.Turn.Opposite().PawnRank() + s.Turn.Opposite().Forward()
	if sq.Y != wantY {
		return fenError("en passant", strconv.Quote(parts[3]), "square on rank 3 or 6")
	}
	s.EnPassant = &sq
	return nil
}

// parseClocks parses the halfmove clock and fullmove number fields.
func parseClocks(s *GameState, parts []string) error {
	if len(parts) >= 5 {
		n, err := strconv.Atoi(parts[4])
		if err != nil || n < 0 {
			return fenError("halfmove clock", strconv.Quote(parts[4]), "non-negative integer")
		}
		s.HalfmoveClock = n
	}
	if len(parts) >= 6 {
		n, err := strconv.Atoi(parts[5])
		if err != nil || n < 1 {
			return fenError("fullmove number", strconv.Quote(parts[5]), "positive integer")
		}
		s.FullmoveNumber = n
	}
	return nil
}

// parseSquare converts a square name such as "e3" to a coordinate.
func parseSquare(name string) (chess.Coord, bool) {
	if len(name) != 2 || name[0] < 'a' || name[0] > 'h' || name[1] < '1' || name[1] > '8' {
		return chess.Coord{}, false
	}
	return chess.Coord{X: int(name[0] - 'a'), Y: chess.BoardSize - int(name[1]-'0')}, true
}

// squareName converts a coordinate to a square name such as "e3".
func squareName(c chess.Coord) string {
	return string([]byte{byte('a' + c.X), byte('0' + chess.BoardSize - c.Y)})
}

// FEN converts the state to a FEN string.
func (s *GameState) FEN() string {
	var sb strings.Builder

	writePiecePositions(&sb, &s.Board)
	sb.WriteByte(' ')
	writeSideToMove(&sb, s.Turn)
	sb.WriteByte(' ')
	writeCastlingRights(&sb, s)
	sb.WriteByte(' ')
	writeEnPassant(&sb, s.EnPassant)
	sb.WriteByte(' ')
	fmt.Fprintf(&sb, "%d %d", s.HalfmoveClock, s.FullmoveNumber)

	return sb.String()
}

// writePiecePositions writes the piece placement to the builder.
func writePiecePositions(sb *strings.Builder, board *chess.Board) {
	for y := 0; y < chess.BoardSize; y++ {
		emptyCount := 0
		for x := 0; x < chess.BoardSize; x++ {
			piece := board.At(chess.Coord{X: x, Y: y})
			if piece.IsEmpty() {
				emptyCount++
				continue
			}
			if emptyCount > 0 {
				sb.WriteByte(byte('0' + emptyCount))
				emptyCount = 0
			}
			sb.WriteByte(PieceToFENChar(piece))
		}
		if emptyCount > 0 {
			sb.WriteByte(byte('0' + emptyCount))
		}
		if y < chess.BoardSize-1 {
			sb.WriteByte('/')
		}
	}
}

// writeSideToMove writes the side to move to the builder.
func writeSideToMove(sb *strings.Builder, turn chess.Colour) {
	if turn == chess.White {
		sb.WriteByte('w')
	} else {
		sb.WriteByte('b')
	}
}

// writeCastlingRights writes the castling availability to the builder.
func writeCastlingRights(sb *strings.Builder, s *GameState) {
	hasCastling := false
	for _, right := range []struct {
		held   bool
		letter byte
	}{
		{s.White.CanCastleRight, 'K'},
		{s.White.CanCastleLeft, 'Q'},
		{s.Black.CanCastleRight, 'k'},
		{s.Black.CanCastleLeft, 'q'},
	} {
		if right.held {
			sb.WriteByte(right.letter)
			hasCastling = true
		}
	}
	if !hasCastling {
		sb.WriteByte('-')
	}
}

// writeEnPassant writes the en passant target square to the builder.
func writeEnPassant(sb *strings.Builder, ep *chess.Coord) {
	if ep != nil {
		sb.WriteString(squareName(*ep))
	} else {
		sb.WriteByte('-')
	}
}

// MustStateFromFEN is like NewStateFromFEN but panics on error. It is
// intended for fixed positions known to be valid.
func MustStateFromFEN(fen string) *GameState {
	s, err := NewStateFromFEN(fen)
	if err != nil {
		panic(errors.Wrapf(err, "loading %q", fen))
	}
	return s
}
