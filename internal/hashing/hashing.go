// Package hashing provides position hashing for repetition detection.
package hashing

import (
	"github.com/cespare/xxhash/v2"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// PositionKey holds everything that makes two positions the same for
// repetition purposes.
type PositionKey struct {
	// Board is hashed with identity indices stripped, so which rook or
	// pawn stands on a square does not matter.
	Board *chess.Board

	// ToMove is the side to move.
	ToMove chess.Colour

	// EnPassant is the en passant target square, nil if none.
	EnPassant *chess.Coord

	// Castling rights: white left, white right, black left, black right.
	Castling [4]bool
}

// keySize is 64 piece codes, side to move, en passant and castling bits.
const keySize = chess.NumCells + 3

// PositionHash digests a position key.
func PositionHash(key PositionKey) uint64 {
	var buf [keySize]byte
	for i, p := range key.Board {
		buf[i] = byte(p.Code().WithoutIndex())
	}
	buf[chess.NumCells] = byte(key.ToMove)

	// En passant square is stored as index+1 so that 0 means none.
	if key.EnPassant != nil {
		buf[chess.NumCells+1] = byte(key.EnPassant.Index() + 1)
	}

	var castling byte
	for i, held := range key.Castling {
		if held {
			castling |= 1 << i
		}
	}
	buf[chess.NumCells+2] = castling

	return xxhash.Sum64(buf[:])
}

// PositionCounts maps a position hash to the number of times it has
// occurred. A PositionCounts is treated as an immutable value: With returns
// an updated copy and never modifies its receiver, so states that share a
// table cannot corrupt each other's history.
type PositionCounts map[uint64]int

// NewPositionCounts creates a table holding hash once.
func NewPositionCounts(hash uint64) PositionCounts {
	return PositionCounts{hash: 1}
}

// Count returns how many times hash has occurred.
func (pc PositionCounts) Count(hash uint64) int {
	return pc[hash]
}

// With returns a copy of the table with hash counted once more.
func (pc PositionCounts) With(hash uint64) PositionCounts {
	next := make(PositionCounts, len(pc)+1)
	for h, n := range pc {
		next[h] = n
	}
	next[hash]++
	return next
}

// Max returns the highest occurrence count in the table.
func (pc PositionCounts) Max() int {
	highest := 0
	for _, n := range pc {
		if n > highest {
			highest = n
		}
	}
	return highest
}
