// Package movegen memoizes move generation. A long game visits the
// same board repeatedly across search strategies and principal
// variation walks, so caching move.Generate's result by board avoids
// regenerating the same capture-chain tree over and over. The memo is
// bounded the same way the transposition tables are: it rides
// internal/engine/ttable's FIFO-on-insertion behaviour rather than
// growing without bound (§4.4).
package movegen

import (
	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/engine/ttable"
	"github.com/akalverboer/mad100go/internal/move"
)

// Memo caches move.Generate results keyed by board.
type Memo struct {
	tp *ttable.Table[board.Board, []move.Move]
}

// New builds a memo capped at size entries.
func New(size int) *Memo {
	return &Memo{tp: ttable.New[board.Board, []move.Move](size)}
}

// Moves returns the legal moves for b, generating and caching them on
// a miss.
func (m *Memo) Moves(b board.Board) []move.Move {
	if moves, ok := m.tp.Lookup(b); ok {
		return moves
	}
	moves := move.Generate(b)
	m.tp.Store(b, moves)
	return moves
}
