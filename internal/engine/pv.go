package engine

import (
	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/position"
)

// GenPV walks the principal variation out of an MTD-bi searcher's
// table by repeatedly looking up the best move recorded for the
// current position and applying it (§4.9). A seen-keys guard stops
// the walk if the table ever leads back to a position already
// visited, since a stale or cyclic entry would otherwise loop forever.
func GenPV(s *MTDSearcher, pos position.Position) []move.Move {
	var pv []move.Move
	seen := map[board.Board]bool{}
	cur := pos
	for {
		key := cur.Key()
		if seen[key] {
			return pv
		}
		seen[key] = true
		e, ok := s.tp.Lookup(key)
		if !ok || len(e.move.Steps) == 0 {
			return pv
		}
		m := e.move
		pv = append(pv, m)
		cur = cur.DoMove(&m)
	}
}
