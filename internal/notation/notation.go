// Package notation converts between the engine's internal Move
// representation and the human-readable square-list notation used
// throughout the CLI, the opening book and FEN-adjacent tooling: a
// plain move is "A-B", a capture is "AxBxC..." (§6).
package notation

import (
	"strconv"
	"strings"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/move"
)

// String renders m's Steps in the "from-to" or "fromxlandingxlanding..."
// form; the jumped squares are not written.
// Squares are mirrored (board.Mirror) first when the position being
// rendered is not from the own-side perspective, so a move looks the
// same on screen regardless of which side the engine currently
// considers "own".
func String(m move.Move, mirror bool) string {
	sep := "-"
	if m.IsCapture() {
		sep = "x"
	}
	parts := make([]string, len(m.Steps))
	for i, sq := range m.Steps {
		if mirror {
			sq = board.Mirror(sq)
		}
		parts[i] = strconv.Itoa(sq)
	}
	return strings.Join(parts, sep)
}

// Parse resolves a notation token against the legal moves available
// in moves. A two-square token, plain or capture, matches by its
// origin and destination squares alone; a longer capture token must
// match the full visited-square set, since a shared origin/destination
// pair can sometimes be reached by visiting the same landings in more
// than one order.
func Parse(tok string, moves []move.Move) (move.Move, bool) {
	tok = strings.TrimSpace(tok)
	sep := "-"
	if strings.ContainsAny(tok, "xX") {
		sep = "x"
	}
	fields := strings.FieldsFunc(tok, func(r rune) bool { return r == 'x' || r == 'X' || r == '-' })
	if len(fields) < 2 {
		return move.Move{}, false
	}
	squares := make([]int, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return move.Move{}, false
		}
		squares[i] = n
	}

	for _, cand := range moves {
		if len(fields) == 2 {
			if cand.From() == squares[0] && cand.To() == squares[len(squares)-1] {
				return cand, true
			}
			continue
		}
		if sep == "x" && sameSteps(cand.Steps, squares) {
			return cand, true
		}
	}
	return move.Move{}, false
}

// Mirror rewrites every square in tok through board.Mirror, keeping
// the token's separators. Opening-book lines give every move in fixed
// absolute board numbering, but the engine's Position reverses its
// own numbering after each ply (§3); callers walking such a line
// through DoMove must mirror every other token before parsing it
// against the current (already-rotated) legal move list.
func Mirror(tok string) string {
	sep := "-"
	if strings.ContainsAny(tok, "xX") {
		sep = "x"
	}
	fields := strings.FieldsFunc(tok, func(r rune) bool { return r == 'x' || r == 'X' || r == '-' })
	parts := make([]string, len(fields))
	for i, f := range fields {
		n, err := strconv.Atoi(f)
		if err != nil {
			return tok
		}
		parts[i] = strconv.Itoa(board.Mirror(n))
	}
	return strings.Join(parts, sep)
}

// sameSteps compares two square lists as multisets, not sequences: a
// capture's Steps records only each leg's endpoint, and the same
// origin/destination pair can sometimes be reached by visiting
// intermediate landings in more than one order while capturing the
// same pieces, so token matching must not be sensitive to order.
func sameSteps(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	seen := make(map[int]int, len(a))
	for _, v := range a {
		seen[v]++
	}
	for _, v := range b {
		seen[v]--
	}
	for _, count := range seen {
		if count != 0 {
			return false
		}
	}
	return true
}
