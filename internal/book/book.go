// Package book implements the frequency-weighted opening book: a map
// from the board reached after a move to how often that move was
// played in the source game collection, loaded from a line-oriented
// text format (§4.10 and the original's book_readFile/book_addLine).
package book

import (
	"bufio"
	"errors"
	"math/rand"
	"os"
	"regexp"
	"strings"

	"github.com/rs/zerolog"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/notation"
	"github.com/akalverboer/mad100go/internal/position"
)

// Strategy selects which of several book candidates Pick returns:
// PickRandom chooses uniformly among all of them, PickHighestFrequency
// the one played most often (the first such one on a tie). Both
// strategies the original code supported stay reachable; PickRandom
// is the default, matching its hard-coded choice.
type Strategy int

const (
	PickRandom Strategy = iota
	PickHighestFrequency
)

// Book counts, for every position reached after a move, how many
// times that continuation appeared in the loaded game collection.
type Book struct {
	freq map[board.Board]int
	Log  zerolog.Logger
}

// New returns an empty book.
func New(log zerolog.Logger) *Book {
	return &Book{freq: map[board.Board]int{}, Log: log}
}

var moveNumberPrefix = regexp.MustCompile(`^\s*\d+\.\s*`)

// Load reads a text file of space-separated move lines (one game per
// line, "N." move-number markers stripped) and folds every line into
// the book via AddLine. At an unrecognised move the line is logged and
// its remaining moves skipped (moves before it stay in the book); the
// rest of the file still loads (the original's recovery behaviour).
func (b *Book) Load(path string, start position.Position) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := b.AddLine(line, start); err != nil {
			b.Log.Warn().Int("line", lineNo).Err(err).Msg("skipping malformed book line")
		}
	}
	return scanner.Err()
}

// AddLine folds one game line, given in alternating move notation
// separated by whitespace, into the book.
func (b *Book) AddLine(line string, start position.Position) error {
	line = moveNumberPrefix.ReplaceAllString(line, "")
	fields := strings.Fields(line)
	pos := start
	ply := 0
	for _, tok := range fields {
		tok = moveNumberPrefix.ReplaceAllString(tok, "")
		if tok == "" {
			continue
		}
		// Tokens are always given in fixed absolute board numbering,
		// but the position's own frame flips after every ply: the odd
		// (Black) tokens need mirroring before they mean anything
		// against the current, already-rotated legal move list.
		if ply%2 == 1 {
			tok = notation.Mirror(tok)
		}
		m, ok := notation.Parse(tok, pos.Moves())
		if !ok {
			return errors.New("illegal or unrecognised move: " + tok)
		}
		next := pos.DoMove(&m)
		b.AddEntry(next)
		pos = next
		ply++
	}
	return nil
}

// AddEntry increments the frequency recorded for reaching b.
func (b *Book) AddEntry(after position.Position) {
	b.freq[after.Key()]++
}

// Pick returns a book move for pos chosen among legalMoves, or false
// if no candidate in legalMoves leads to a position the book has seen.
func (b *Book) Pick(pos position.Position, legalMoves []move.Move, strategy Strategy) (move.Move, bool) {
	type candidate struct {
		m    move.Move
		freq int
	}
	var candidates []candidate
	for _, m := range legalMoves {
		n := pos.DoMove(&m)
		if f, ok := b.freq[n.Key()]; ok {
			candidates = append(candidates, candidate{m: m, freq: f})
		}
	}
	if len(candidates) == 0 {
		return move.Move{}, false
	}

	switch strategy {
	case PickHighestFrequency:
		best := candidates[0]
		for _, c := range candidates[1:] {
			if c.freq > best.freq {
				best = c
			}
		}
		return best.m, true
	default:
		return candidates[rand.Intn(len(candidates))].m, true
	}
}
