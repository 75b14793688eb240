package notation

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akalverboer/mad100go/internal/move"
)

func TestStringPlainMove(t *testing.T) {
	m := move.Move{Steps: []int{32, 28}}
	assert.Equal(t, "32-28", String(m, false))
}

func TestStringCaptureMove(t *testing.T) {
	m := move.Move{Steps: []int{37, 28, 19}, Takes: []int{32, 23}}
	assert.Equal(t, "37x28x19", String(m, false))
}

func TestStringMirrorsForOpponentPerspective(t *testing.T) {
	m := move.Move{Steps: []int{32, 28}}
	assert.Equal(t, "19-23", String(m, true))
}

func TestParsePlainMove(t *testing.T) {
	moves := []move.Move{
		{Steps: []int{32, 28}},
		{Steps: []int{31, 27}},
	}
	got, ok := Parse("32-28", moves)
	assert.True(t, ok)
	assert.True(t, got.Equal(moves[0]))
}

func TestParseCaptureMustMatchFullStepSet(t *testing.T) {
	moves := []move.Move{
		{Steps: []int{37, 28, 19}, Takes: []int{32, 23}},
		{Steps: []int{37, 28, 39}, Takes: []int{32, 33}},
	}
	got, ok := Parse("37x28x39", moves)
	assert.True(t, ok)
	assert.True(t, got.Equal(moves[1]))
}

func TestParseCaptureMatchesRegardlessOfLegOrder(t *testing.T) {
	moves := []move.Move{
		{Steps: []int{19, 28, 37}, Takes: []int{23, 32}},
	}
	got, ok := Parse("37x28x19", moves)
	assert.True(t, ok)
	assert.True(t, got.Equal(moves[0]))
}

func TestParseRejectsUnknownMove(t *testing.T) {
	moves := []move.Move{{Steps: []int{32, 28}}}
	_, ok := Parse("1-2", moves)
	assert.False(t, ok)
}
