package move

import "github.com/akalverboer/mad100go/internal/board"

// Generate returns the legal moves for the own side in b: every
// capture chain of maximal length if any capture exists (§4.4's
// majority rule), otherwise every plain diagonal step.
func Generate(b board.Board) []Move {
	captures := allCaptures(b)
	if len(captures) == 0 {
		return quietMoves(b)
	}
	max := 0
	for _, m := range captures {
		if n := len(m.Takes); n > max {
			max = n
		}
	}
	out := captures[:0]
	for _, m := range captures {
		if len(m.Takes) == max {
			out = append(out, m)
		}
	}
	return out
}

func allCaptures(b board.Board) []Move {
	var out []Move
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := b[sq]
		if !p.IsOwn() {
			continue
		}
		out = append(out, chain(b, sq, p.IsKing(), map[int]bool{}, nil, []int{sq})...)
	}
	return out
}

// captureLeg is one available one-take hop from the current square:
// landing is where the piece would come to rest, over is the square
// of the piece it jumps.
type captureLeg struct{ landing, over int }

// chain recursively extends a capture starting at cur. taken/order
// together record which squares have already been jumped this chain:
// a square in taken is transparent to a king's ray (it can glide past
// the still-standing captured piece) but can never be landed on or
// jumped a second time, matching §4.4's "captured pieces stay on the
// board until the turn ends, but do not block the path".
func chain(b board.Board, cur int, isKing bool, taken map[int]bool, order []int, path []int) []Move {
	legs := captureLegs(b, cur, isKing, taken)
	if len(legs) == 0 {
		if len(order) == 0 {
			return nil
		}
		steps := make([]int, len(path))
		copy(steps, path)
		takes := make([]int, len(order))
		copy(takes, order)
		return []Move{{Steps: steps, Takes: takes}}
	}

	var out []Move
	for _, leg := range legs {
		nb := b
		nb[cur] = board.Empty
		nb[leg.landing] = b[cur]

		nextTaken := make(map[int]bool, len(taken)+1)
		for k := range taken {
			nextTaken[k] = true
		}
		nextTaken[leg.over] = true
		nextOrder := append(append([]int{}, order...), leg.over)
		nextPath := append(append([]int{}, path...), leg.landing)

		out = append(out, chain(nb, leg.landing, isKing, nextTaken, nextOrder, nextPath)...)
	}
	return out
}

func captureLegs(b board.Board, cur int, isKing bool, taken map[int]bool) []captureLeg {
	if !isKing {
		return manCaptureLegs(b, cur, taken)
	}
	return kingCaptureLegs(b, cur, taken)
}

func manCaptureLegs(b board.Board, cur int, taken map[int]bool) []captureLeg {
	var legs []captureLeg
	for _, d := range board.Directions {
		mid := board.Neighbor(cur, d)
		if mid == 0 || taken[mid] {
			continue
		}
		if !b[mid].IsOpp() {
			continue
		}
		landing := board.Neighbor(mid, d)
		if landing == 0 || b[landing] != board.Empty {
			continue
		}
		legs = append(legs, captureLeg{landing: landing, over: mid})
	}
	return legs
}

func kingCaptureLegs(b board.Board, cur int, taken map[int]bool) []captureLeg {
	var legs []captureLeg
	for _, d := range board.Directions {
		enemy := 0
		board.Ray(cur, d, func(next int) bool {
			if taken[next] {
				return false
			}
			p := b[next]
			if enemy == 0 {
				switch {
				case p == board.Empty:
					return false
				case p.IsOpp():
					enemy = next
					return false
				default:
					return true
				}
			}
			if p == board.Empty {
				legs = append(legs, captureLeg{landing: next, over: enemy})
				return false
			}
			return true
		})
	}
	return legs
}

func quietMoves(b board.Board) []Move {
	var out []Move
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := b[sq]
		switch {
		case p == board.OwnMan:
			for _, d := range []board.Direction{board.NE, board.NW} {
				n := board.Neighbor(sq, d)
				if n != 0 && b[n] == board.Empty {
					out = append(out, Move{Steps: []int{sq, n}})
				}
			}
		case p == board.OwnKing:
			for _, d := range board.Directions {
				board.Ray(sq, d, func(next int) bool {
					if b[next] != board.Empty {
						return true
					}
					out = append(out, Move{Steps: []int{sq, next}})
					return false
				})
			}
		}
	}
	return out
}
