package book

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akalverboer/mad100go/internal/board"
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

func TestAddLineStripsMoveNumbersAndCountsFrequency(t *testing.T) {
	b := New(zerolog.Nop())
	start := startPosition()
	require.NoError(t, b.AddLine("1.32-28 18-23", start))
	require.NoError(t, b.AddLine("1.32-28 17-22", start))

	m, ok := b.Pick(start, start.Moves(), PickHighestFrequency)
	assert.True(t, ok)
	assert.Equal(t, 32, m.From())
	assert.Equal(t, 28, m.To())
}

func TestLoadSkipsMalformedLinesButKeepsGoing(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "openings.txt")
	content := "1.32-28 18-23\nnonsense-garbage-line\n1.31-27 19-24\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	b := New(zerolog.Nop())
	start := startPosition()
	require.NoError(t, b.Load(path, start))

	_, ok := b.Pick(start, start.Moves(), PickHighestFrequency)
	assert.True(t, ok)
}

func TestLoadReportsMissingFile(t *testing.T) {
	b := New(zerolog.Nop())
	err := b.Load(filepath.Join(t.TempDir(), "missing.txt"), startPosition())
	assert.Error(t, err)
}

func TestPickReturnsFalseWhenNothingMatches(t *testing.T) {
	b := New(zerolog.Nop())
	start := startPosition()
	_, ok := b.Pick(start, start.Moves(), PickRandom)
	assert.False(t, ok)
}
