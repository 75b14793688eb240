// Package move defines the Move contract shared by the generator,
// the evaluator, search and the notation adapter (§3).
package move

// Move is a single ply: Steps lists the visited squares in order
// (length >= 2, first = origin, last = destination; a king's path
// records only the leg endpoints, not every intermediate glide
// square). Takes lists the captured squares in capture order; it is
// empty for a non-capture move.
type Move struct {
	Steps []int
	Takes []int
}

// From returns the origin square.
func (m Move) From() int { return m.Steps[0] }

// To returns the destination square.
func (m Move) To() int { return m.Steps[len(m.Steps)-1] }

// IsCapture reports whether this move takes at least one piece.
func (m Move) IsCapture() bool { return len(m.Takes) > 0 }

// Equal compares two moves by their step and take sequences.
func (m Move) Equal(o Move) bool {
	if len(m.Steps) != len(o.Steps) || len(m.Takes) != len(o.Takes) {
		return false
	}
	for i := range m.Steps {
		if m.Steps[i] != o.Steps[i] {
			return false
		}
	}
	for i := range m.Takes {
		if m.Takes[i] != o.Takes[i] {
			return false
		}
	}
	return true
}

// Clone returns a deep copy so callers can mutate Steps/Takes of the
// copy without aliasing the original move's backing arrays.
func (m Move) Clone() Move {
	steps := make([]int, len(m.Steps))
	copy(steps, m.Steps)
	var takes []int
	if len(m.Takes) > 0 {
		takes = make([]int, len(m.Takes))
		copy(takes, m.Takes)
	}
	return Move{Steps: steps, Takes: takes}
}
