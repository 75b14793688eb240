package fen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalverboer/mad100go/internal/board"
)

func TestParseWhiteToMove(t *testing.T) {
	pos, err := Parse("W:W31,32,K6:B1,2,3")
	require.NoError(t, err)
	assert.Equal(t, board.OwnMan, pos.Board[31])
	assert.Equal(t, board.OwnKing, pos.Board[6])
	assert.Equal(t, board.OppMan, pos.Board[1])
}

func TestParseBlackToMoveRotatesToOwnPerspective(t *testing.T) {
	pos, err := Parse("B:W31,32:B1,2")
	require.NoError(t, err)
	// Black is now "own", so its squares (mirrored) hold OwnMan.
	assert.Equal(t, board.OwnMan, pos.Board[board.Mirror(1)])
	assert.Equal(t, board.OppMan, pos.Board[board.Mirror(31)])
}

func TestParseRejectsMissingSideToMove(t *testing.T) {
	_, err := Parse("X:W1")
	assert.Error(t, err)
}

func TestRenderRoundTrip(t *testing.T) {
	pos, err := Parse("W:W31,K6:B1,2")
	require.NoError(t, err)
	rendered := Render(pos, "W")
	reparsed, err := Parse(rendered)
	require.NoError(t, err)
	assert.Equal(t, pos.Board, reparsed.Board)
}
