package engine

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Half-move clock thresholds for the move-count draw rules.
const (
	FiftyMoveLimit       = 100
	SeventyFiveMoveLimit = 150
)

// DrawRuleResult contains the results of draw rule detection. None of these
// rules end a game by themselves; the engine only ends games on checkmate,
// stalemate and threefold repetition.
type DrawRuleResult struct {
	// FiftyMoveClaimable is true once 50 moves (100 half-moves) have been
	// made without a pawn move or capture.
	FiftyMoveClaimable bool

	// Has75MoveRule is true once 75 moves (150 half-moves) have been made
	// without a pawn move or capture.
	Has75MoveRule bool

	// Has5FoldRepetition is true if any position occurred 5 or more times.
	Has5FoldRepetition bool

	// HasInsufficientMaterial is true if neither side has mating material.
	HasInsufficientMaterial bool

	// HasMaterialOdds is true if the position does not carry the standard
	// starting material.
	HasMaterialOdds bool
}

// AnalyzeDrawRules reports which advisory draw conditions hold for s.
func AnalyzeDrawRules(s *GameState) DrawRuleResult {
	return DrawRuleResult{
		FiftyMoveClaimable:      FiftyMoveRuleClaimable(s),
		Has75MoveRule:           s.HalfmoveClock >= SeventyFiveMoveLimit,
		Has5FoldRepetition:      s.Positions.Max() >= 5,
		HasInsufficientMaterial: HasInsufficientMaterial(&s.Board),
		HasMaterialOdds:         !isStandardMaterial(&s.Board),
	}
}

// FiftyMoveRuleClaimable returns true if a draw could be claimed under the
// fifty-move rule.
func FiftyMoveRuleClaimable(s *GameState) bool {
	return s.HalfmoveClock >= FiftyMoveLimit
}

// HasInsufficientMaterial returns true if the position has insufficient
// mating material for either side.
// Insufficient material includes:
// - K vs K
// - K+B vs K
// - K+N vs K
// - K+B vs K+B (same color bishops)
func HasInsufficientMaterial(board *chess.Board) bool {
	var whitePieces, blackPieces []chess.PieceType
	var whiteBishopOnLight, blackBishopOnLight bool

	for i, piece := range board {
		if piece.IsEmpty() || piece.Type == chess.King {
			continue
		}

		// Any pawn, rook, or queen means sufficient material
		if piece.Type == chess.Pawn || piece.Type == chess.Rook || piece.Type == chess.Queen {
			return false
		}

		light := isLightSquare(chess.CoordFromIndex(i))
		if piece.Colour == chess.White {
			whitePieces = append(whitePieces, piece.Type)
			if piece.Type == chess.Bishop {
				whiteBishopOnLight = light
			}
		} else {
			blackPieces = append(blackPieces, piece.Type)
			if piece.Type == chess.Bishop {
				blackBishopOnLight = light
			}
		}
	}

	// K vs K
	if len(whitePieces) == 0 && len(blackPieces) == 0 {
		return true
	}

	// K+B vs K or K+N vs K
	if len(whitePieces) == 0 && len(blackPieces) == 1 {
		return blackPieces[0] == chess.Bishop || blackPieces[0] == chess.Knight
	}
	if len(blackPieces) == 0 && len(whitePieces) == 1 {
		return whitePieces[0] == chess.Bishop || whitePieces[0] == chess.Knight
	}

	// K+B vs K+B on the same colour
	if len(whitePieces) == 1 && len(blackPieces) == 1 &&
		whitePieces[0] == chess.Bishop && blackPieces[0] == chess.Bishop {
		return whiteBishopOnLight == blackBishopOnLight
	}

	return false
}

// isLightSquare returns true if the given square is a light square. a8,
// the top-left cell, is light.
func isLightSquare(c chess.Coord) bool {
	return (c.X+c.Y)%2 == 0
}

// isStandardMaterial checks if the board has standard starting material.
func isStandardMaterial(board *chess.Board) bool {
	actual := make(map[chess.Colour]map[chess.PieceType]int, 2)
	actual[chess.White] = make(map[chess.PieceType]int)
	actual[chess.Black] = make(map[chess.PieceType]int)

	for _, piece := range board {
		if !piece.IsEmpty() {
			actual[piece.Colour][piece.Type]++
		}
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for pieceType, expected := range standardCounts {
			if actual[colour][pieceType] != expected {
				return false
			}
		}
	}
	return true
}
