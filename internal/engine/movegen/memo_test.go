package movegen

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akalverboer/mad100go/internal/board"
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

func TestMovesCachesGeneratorResult(t *testing.T) {
	m := New(10)
	b := startBoard()
	first := m.Moves(b)
	second := m.Moves(b)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, m.tp.Len())
}

func TestMovesEvictsOldestBoardOnceFull(t *testing.T) {
	m := New(1)
	first := startBoard()
	second := first
	second[20], second[21] = second[21], second[20]

	m.Moves(first)
	m.Moves(second)
	assert.Equal(t, 1, m.tp.Len())
}
