// Package eval holds the piece-square tables and material values used
// to score a position (§4.3). The incremental move-delta formula built
// on them (§4.2's eval_move), which the search strategies lean on
// instead of a full re-evaluation at every node, is
// internal/position's EvalMove.
package eval

import "github.com/akalverboer/mad100go/internal/board"

// Material value in centi-points, per §6: a man is worth 1000, a king
// 3000.
const (
	ManValue  = 1000
	KingValue = 3000
)

// pst holds one 52-entry table per own-side piece letter so it can be
// indexed directly by square number (0 and 51 are always zero,
// letting PST[p][51-sq] be used unconditionally for the mirrored
// capture bonus in §4.2 without a bounds check).
var pst = map[board.Piece][52]int{}

func init() {
	var man, king [52]int
	for sq := 1; sq <= board.NumSquares; sq++ {
		row := (sq - 1) / 5
		// Advancement bonus: largest on the promotion line (row 0),
		// smallest on the own back rank (row 9).
		man[sq] = (9 - row) * 5
		king[sq] = 50
	}
	pst[board.OwnMan] = man
	pst[board.OwnKing] = king
}

// PST returns the piece-square bonus for a man or king sitting on sq.
// An opponent letter is scored as its own-side counterpart (via
// Upper); Empty and OffBoard score zero.
func PST(p board.Piece, sq int) int {
	t, ok := pst[p.Upper()]
	if !ok {
		return 0
	}
	return t[sq]
}

// Material returns the material value for an own-side piece letter.
func Material(p board.Piece) int {
	switch p.Upper() {
	case board.OwnMan:
		return ManValue
	case board.OwnKing:
		return KingValue
	default:
		return 0
	}
}

// Score returns PST(p, sq) + Material(p), the per-square contribution
// used both when summing a full position and when pricing a single
// move leg.
func Score(p board.Piece, sq int) int {
	return PST(p, sq) + Material(p)
}
