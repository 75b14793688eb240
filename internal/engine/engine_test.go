package engine

import (
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/position"
)

func startPosition() position.Position {
	b := board.Empty52()
	for sq := 1; sq <= 20; sq++ {
		b[sq] = board.OppMan
	}
	for sq := 31; sq <= board.NumSquares; sq++ {
		b[sq] = board.OwnMan
	}
	return position.New(b)
}

func containsMove(moves []move.Move, m move.Move) bool {
	for _, cand := range moves {
		if cand.Equal(m) {
			return true
		}
	}
	return false
}

func TestMTDSearcherReturnsALegalMove(t *testing.T) {
	pos := startPosition()
	s := NewMTDSearcher(1000, zerolog.Nop())
	m := s.Search(pos, 200)
	assert.NotEmpty(t, m.Steps)
	assert.True(t, containsMove(pos.Moves(), m))
}

func TestAlphaBetaSearcherReturnsALegalMove(t *testing.T) {
	pos := startPosition()
	s := NewAlphaBetaSearcher(1000, DefaultAspirationWindow, zerolog.Nop())
	m := s.Search(pos, 200)
	assert.NotEmpty(t, m.Steps)
	assert.True(t, containsMove(pos.Moves(), m))
}

func TestForcedSearcherFindsMandatoryCapture(t *testing.T) {
	b := board.Empty52()
	b[37] = board.OwnMan
	b[32] = board.OppMan
	pos := position.New(b)
	s := NewForcedSearcher(1000, zerolog.Nop())
	m := s.Search(pos, 200)
	assert.True(t, m.IsCapture())
}

func TestForcedSearcherReturnsZeroMoveWhenNoCombinationExists(t *testing.T) {
	pos := startPosition()
	s := NewForcedSearcher(1000, zerolog.Nop())
	m := s.Search(pos, 200)
	assert.Empty(t, m.Steps)
}

func TestForcedSearcherOpponentReplyMustBeACaptureNotMerelyForcing(t *testing.T) {
	// Own man at 37 must capture 32 (37x28). The opponent man at 19 has
	// a quiet reply (19-23) that would itself force a capture back, but
	// that is irrelevant on the opponent's own ply: only an immediate
	// capture keeps a combination alive there. With no opponent capture
	// available after 37x28, the combination is just the single
	// exchange, not a deeper forced line.
	b := board.Empty52()
	b[37] = board.OwnMan
	b[32] = board.OppMan
	b[19] = board.OppMan
	pos := position.New(b)
	s := NewForcedSearcher(1000, zerolog.Nop())
	m := s.Search(pos, 200)
	assert.True(t, m.IsCapture())
	assert.Equal(t, 37, m.From())
}

func TestGenPVTerminatesAndStartsWithSearchedMove(t *testing.T) {
	pos := startPosition()
	s := NewMTDSearcher(1000, zerolog.Nop())
	best := s.Search(pos, 200)
	pv := GenPV(s, pos)
	if assert.NotEmpty(t, pv) {
		assert.True(t, pv[0].Equal(best))
	}
}
