package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Direction tables, as (dx, dy) steps.
var (
	straightDirs = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}}
	diagonalDirs = [][2]int{{1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	royalDirs    = [][2]int{{0, 1}, {0, -1}, {1, 0}, {-1, 0}, {1, 1}, {1, -1}, {-1, 1}, {-1, -1}}
	knightDirs   = [][2]int{{-1, 2}, {1, 2}, {2, 1}, {2, -1}, {-1, -2}, {1, -2}, {-2, 1}, {-2, -1}}

	// Cells an enemy pawn must stand on to attack a piece of each colour.
	whitePawnAttacks = [][2]int{{-1, -1}, {1, -1}}
	blackPawnAttacks = [][2]int{{-1, 1}, {1, 1}}
)

// Reach limits for ray walking.
const (
	slideReach = chess.BoardSize - 1
	stepReach  = 1
)

// rayMoves walks each direction from `from` for up to reach steps, as the
// piece standing on `from`. A ray stops before a piece of the same colour
// and stops after a piece of the other colour, which is recorded as a
// capture.
func rayMoves(board *chess.Board, from chess.Coord, dirs [][2]int, reach int) []chess.Move {
	mover := board.At(from)
	var moves []chess.Move

	for _, dir := range dirs {
		to := from
		for i := 0; i < reach; i++ {
			to = to.Add(dir[0], dir[1])
			if !to.InBounds() {
				break
			}
			target := board.At(to)
			if !target.IsEmpty() && target.Colour == mover.Colour {
				break
			}

			move := chess.NewMove(mover, from, to)
			move.Captured = target
			moves = append(moves, move)

			if !target.IsEmpty() {
				break // Blocked
			}
		}
	}
	return moves
}

// pieceMoves generates pseudo-legal moves for a non-pawn piece, without castling.
func pieceMoves(board *chess.Board, from chess.Coord, pieceType chess.PieceType) []chess.Move {
	switch pieceType {
	case chess.Rook:
		return rayMoves(board, from, straightDirs, slideReach)
	case chess.Bishop:
		return rayMoves(board, from, diagonalDirs, slideReach)
	case chess.Queen:
		return rayMoves(board, from, royalDirs, slideReach)
	case chess.Knight:
		return rayMoves(board, from, knightDirs, stepReach)
	case chess.King:
		return rayMoves(board, from, royalDirs, stepReach)
	}
	return nil
}

// PseudoMoves returns the moves of the piece on `from` that obey its
// movement pattern, without checking whether they leave its own king in
// check.
func PseudoMoves(s *GameState, from chess.Coord) []chess.Move {
	piece := s.Board.At(from)

	switch piece.Type {
	case chess.NoPiece:
		return nil
	case chess.Pawn:
		return pawnMoves(s, from)
	case chess.King:
		moves := pieceMoves(&s.Board, from, chess.King)
		return append(moves, castlingMoves(s, from)...)
	default:
		return pieceMoves(&s.Board, from, piece.Type)
	}
}
