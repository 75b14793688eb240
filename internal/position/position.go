// Package position implements the immutable Position record and the
// three operations defined on it: Rotate, EvalPos (full recompute)
// and EvalMove/DoMove (incremental update), per §4.2.
package position

import (
	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/engine/movegen"
	"github.com/akalverboer/mad100go/internal/eval"
	"github.com/akalverboer/mad100go/internal/move"
)

// moveMemo caches move.Generate by board across every Position value,
// since Moves is a pure function of Board alone. 1,000,000 entries
// mirrors the search strategies' default transposition-table size
// (internal/engine.DefaultTableSize); it is duplicated here rather
// than imported to avoid position importing its own caller package.
var moveMemo = movegen.New(1_000_000)

// Position is an immutable snapshot: a board plus the score from the
// perspective of the side to move. The invariant Score == EvalPos(Board)
// holds at every point a Position escapes this package.
type Position struct {
	Board board.Board
	Score int
}

// New builds the starting Position for a given own-side board layout.
// Score is computed once, from scratch.
func New(b board.Board) Position {
	return Position{Board: b, Score: EvalPos(b)}
}

// Moves returns the legal moves available to the side to move,
// generated once per distinct board and cached thereafter.
func (p Position) Moves() []move.Move { return moveMemo.Moves(p.Board) }

// Key returns the board array, which is what the transposition tables
// and the move-generation memo use to identify a position (§3: "the
// key is the concatenated board encoding"). Two positions with equal
// boards are equivalent regardless of their Score field, since Score
// is always a pure function of Board.
func (p Position) Key() board.Board { return p.Board }

// Rotate returns the position as seen by the opponent: the board is
// reversed and case-flipped, and the score is negated, normalising
// "own = uppercase, moves toward low indices" for whoever is now to
// move (§4.2).
func (p Position) Rotate() Position {
	return Position{Board: p.Board.Rotate(), Score: -p.Score}
}

// EvalPos computes the position's score from scratch: the own side's
// total PST+material sum minus the same sum computed for the rotated
// (opponent) board. Search never calls this after the initial
// Position is built; every further score comes from EvalMove deltas.
func EvalPos(b board.Board) int {
	return sideScore(b) - sideScore(b.Rotate())
}

func sideScore(b board.Board) int {
	total := 0
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := b[sq]
		if p.IsOwn() {
			total += eval.Score(p, sq)
		}
	}
	return total
}

// EvalMove returns the score delta m induces, from the mover's
// perspective, without applying the move (§4.2):
//
//  1. PST+material delta of the moving piece from origin to
//     destination, promoting to king if the destination lies on the
//     promotion line and the mover was not already a king.
//  2. For every captured square, the PST+material value of the
//     captured piece, mirrored (51-square) because it is being
//     priced from the opponent's perspective of losing it.
func (p Position) EvalMove(m move.Move) int {
	from, to := m.From(), m.To()
	mover := p.Board[from]
	destPiece := mover
	if mover == board.OwnMan && board.IsPromotionSquare(to) {
		destPiece = board.OwnKing
	}
	delta := eval.Score(destPiece, to) - eval.Score(mover, from)
	for _, sq := range m.Takes {
		taken := p.Board[sq]
		delta += eval.Score(taken.Upper(), board.Mirror(sq))
	}
	return delta
}

// DoMove applies m and returns the resulting Position with the next
// player to move. A nil Move is the "null move": pass the turn
// without changing the board, used by the null-move heuristic (§4.2).
func (p Position) DoMove(m *move.Move) Position {
	if m == nil {
		return p.Rotate()
	}
	delta := p.EvalMove(*m)
	b := p.Board
	from, to := m.From(), m.To()
	mover := b[from]
	if mover == board.OwnMan && board.IsPromotionSquare(to) {
		mover = board.OwnKing
	}
	b[from] = board.Empty
	b[to] = mover
	for _, sq := range m.Takes {
		b[sq] = board.Empty
	}
	next := Position{Board: b, Score: p.Score + delta}
	return next.Rotate()
}
