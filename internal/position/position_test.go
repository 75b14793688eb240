package position

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/move"
)

func startBoard() board.Board {
	b := board.Empty52()
	for sq := 1; sq <= 20; sq++ {
		b[sq] = board.OppMan
	}
	for sq := 31; sq <= board.NumSquares; sq++ {
		b[sq] = board.OwnMan
	}
	return b
}

func TestStartPositionIsBalanced(t *testing.T) {
	pos := New(startBoard())
	assert.Equal(t, 0, pos.Score)
}

func TestRotateTwiceIsIdentity(t *testing.T) {
	pos := New(startBoard())
	got := pos.Rotate().Rotate()
	assert.Equal(t, pos, got)
}

func TestRotateNegatesScore(t *testing.T) {
	b := startBoard()
	b[6] = board.Empty // break symmetry
	pos := New(b)
	assert.Equal(t, -pos.Score, pos.Rotate().Score)
}

func TestDoMoveScoreMatchesFullRecompute(t *testing.T) {
	pos := New(startBoard())
	m := pos.Moves()[0]
	next := pos.DoMove(&m)
	assert.Equal(t, EvalPos(next.Board), next.Score)
}

func TestNullMoveTwiceRoundTrips(t *testing.T) {
	pos := New(startBoard())
	got := pos.DoMove(nil).DoMove(nil)
	assert.Equal(t, pos, got)
}

func TestPromotionOnDoMove(t *testing.T) {
	b := board.Empty52()
	b[6] = board.OwnMan
	pos := New(b)
	m := move.Move{Steps: []int{6, 1}}
	next := pos.DoMove(&m)
	// next is rotated: square 1 as seen by own becomes 51-1=50 for the
	// opponent's perspective after rotation.
	assert.Equal(t, board.OppKing, next.Board[board.Mirror(1)])
}

func TestCaptureClearsTakenSquareAfterDoMove(t *testing.T) {
	b := board.Empty52()
	b[37] = board.OwnMan
	b[32] = board.OppMan
	pos := New(b)
	m := move.Move{Steps: []int{37, 28}, Takes: []int{32}}
	next := pos.DoMove(&m)
	assert.Equal(t, board.Empty, next.Board[board.Mirror(32)])
	assert.Equal(t, board.Empty, next.Board[board.Mirror(37)])
}
