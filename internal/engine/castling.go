package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// Castling geometry. Left is toward the a-file (x=0), right toward the h-file.
const (
	kingStartX      = 4
	leftRookX       = 0
	rightRookX      = chess.BoardSize - 1
	leftKingToX     = 2
	rightKingToX    = 6
	leftRookToX     = 3
	rightRookToX    = 5
	castleKingSteps = 2
)

// castlingMoves generates the castling moves available to the king on `from`.
func castlingMoves(s *GameState, from chess.Coord) []chess.Move {
	board := &s.Board
	king := board.At(from)
	colour := king.Colour
	home := colour.HomeRank()

	if from != (chess.Coord{X: kingStartX, Y: home}) {
		return nil
	}
	player := s.Player(colour)
	if !player.CanCastleLeft && !player.CanCastleRight {
		return nil
	}
	// Castling out of check is not allowed.
	if IsInCheck(board, colour) {
		return nil
	}

	var moves []chess.Move
	if player.CanCastleLeft && canCastle(board, from, true) {
		move := chess.NewMove(king, from, chess.Coord{X: leftKingToX, Y: home})
		move.CastleLeft = true
		moves = append(moves, move)
	}
	if player.CanCastleRight && canCastle(board, from, false) {
		move := chess.NewMove(king, from, chess.Coord{X: rightKingToX, Y: home})
		move.CastleRight = true
		moves = append(moves, move)
	}
	return moves
}

// canCastle checks the rook is in place, the cells between king and rook
// are empty, and the king does not pass through or land on an attacked cell.
func canCastle(board *chess.Board, kingSq chess.Coord, left bool) bool {
	king := board.At(kingSq)
	dir, rookX := 1, rightRookX
	if left {
		dir, rookX = -1, leftRookX
	}

	rook := board.At(chess.Coord{X: rookX, Y: kingSq.Y})
	if rook.Type != chess.Rook || rook.Colour != king.Colour {
		return false
	}

	// Are the cells between king and rook empty
	for x := kingSq.X + dir; x != rookX; x += dir {
		if !board.At(chess.Coord{X: x, Y: kingSq.Y}).IsEmpty() {
			return false
		}
	}

	// Am I passing through a check
	for step := 1; step <= castleKingSteps; step++ {
		probe := *board
		probe.Set(kingSq, chess.Empty)
		probe.Set(kingSq.Add(dir*step, 0), king)
		if IsInCheck(&probe, king.Colour) {
			return false
		}
	}
	return true
}

// relocateCastlingRook moves the rook that accompanies a castling king.
func relocateCastlingRook(board *chess.Board, move chess.Move) {
	y := move.From.Y
	fromX, toX := rightRookX, rightRookToX
	if move.CastleLeft {
		fromX, toX = leftRookX, leftRookToX
	}
	from := chess.Coord{X: fromX, Y: y}
	board.Set(chess.Coord{X: toX, Y: y}, board.At(from))
	board.Set(from, chess.Empty)
}

// updateCastlingRights removes the rights a move takes away from colour's
// player. Rights are keyed by the rook's starting corner, so any move
// leaving or landing on that corner revokes them, whichever piece made it.
func updateCastlingRights(player PlayerState, colour chess.Colour, move chess.Move) PlayerState {
	if move.Piece.Type == chess.King && move.Piece.Colour == colour {
		player.CanCastleLeft = false
		player.CanCastleRight = false
		return player
	}

	home := colour.HomeRank()
	leftCorner := chess.Coord{X: leftRookX, Y: home}
	rightCorner := chess.Coord{X: rightRookX, Y: home}
	for _, sq := range [...]chess.Coord{move.From, move.To} {
		if sq == leftCorner {
			player.CanCastleLeft = false
		}
		if sq == rightCorner {
			player.CanCastleRight = false
		}
	}
	return player
}
