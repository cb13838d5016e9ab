// Package perft counts the leaf nodes of the legal move tree, the standard
// way to check a move generator against published figures.
package perft

import (
	"context"
	"runtime"
	"sort"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Count returns the number of move paths of exactly depth plies from s.
// Each promotion choice is a separate path. Depth 0 counts s itself.
func Count(s *engine.GameState, depth int) uint64 {
	if depth <= 0 {
		return 1
	}

	moves := engine.ExpandPromotions(engine.AllLegalMoves(s))
	if depth == 1 {
		return uint64(len(moves))
	}

	var nodes uint64
	for _, move := range moves {
		nodes += Count(engine.ApplyMove(s, move), depth-1)
	}
	return nodes
}

// Entry is the node count below one root move.
type Entry struct {
	Move  chess.Move
	Nodes uint64
}

// Result is the outcome of a divide run.
type Result struct {
	Entries []Entry // In root move generation order
	Total   uint64
	Workers int
}

// Divide counts the subtree below each root move in parallel. By default
// it uses one worker per CPU; pass worker.WithWorkers to change that.
func Divide(s *engine.GameState, depth int, opts ...worker.PoolOption) (*Result, error) {
	return DivideContext(context.Background(), s, depth, opts...)
}

// DivideContext is Divide with cancellation. ctx is checked as each root
// move's count arrives; once it is done the remaining root moves are
// skipped and the context's error is returned.
func DivideContext(ctx context.Context, s *engine.GameState, depth int, opts ...worker.PoolOption) (*Result, error) {
	if depth < 1 {
		return nil, errors.Wrapf(errors.ErrInvalidConfig, "divide depth %d", depth)
	}

	moves := engine.ExpandPromotions(engine.AllLegalMoves(s))
	if len(moves) == 0 {
		return &Result{}, nil
	}

	// Every worker reads the same root state; ApplyMove never modifies it.
	process := func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: Count(engine.ApplyMove(s, item.Move), depth-1),
		}
	}

	poolOpts := append([]worker.PoolOption{
		worker.WithWorkers(runtime.NumCPU()),
		worker.WithBufferSize(len(moves)),
	}, opts...)
	pool := worker.NewPool(process, poolOpts...)
	pool.Start()

	for i, move := range moves {
		pool.Submit(worker.WorkItem{Move: move, Index: i})
	}
	go pool.Close()

	done := ctx.Done()
	results := make([]worker.ProcessResult, 0, len(moves))
	for r := range pool.Results() {
		if !pool.IsStopped() {
			select {
			case <-done:
				pool.Stop()
			default:
			}
		}
		results = append(results, r)
	}
	if pool.IsStopped() {
		return nil, errors.Wrapf(ctx.Err(), "divide stopped after %d of %d root moves", len(results), len(moves))
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})

	out := &Result{Entries: make([]Entry, len(results)), Workers: pool.NumWorkers()}
	for i, r := range results {
		out.Entries[i] = Entry{Move: r.Move, Nodes: r.Nodes}
		out.Total += r.Nodes
	}
	return out, nil
}

// FormatMove writes a move as "<from>-<to>", with "=<piece>" appended for
// promotions. Squares are x,y board coordinates.
func FormatMove(m chess.Move) string {
	s := m.From.String() + "-" + m.To.String()
	if m.Promoting {
		s += "=" + string(engine.PieceToFENChar(chess.W(m.PromotionType(), 0)))
	}
	return s
}
