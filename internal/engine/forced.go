package engine

import (
	"github.com/rs/zerolog"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/engine/ttable"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/position"
)

type forcedEntry struct {
	depth int
	score int
	move  move.Move
}

// forcedKey distinguishes root-side nodes from opponent-reply nodes
// that happen to share the same board: the two plies apply different
// rules to a quiet move, so a table entry computed under one cannot
// answer a lookup under the other.
type forcedKey struct {
	board    board.Board
	rootSide bool
}

// ForcedSearcher solves forced combinations: on the side whose
// combination is being proven (root side), it descends into a capture
// or a quiet move that leaves the opponent no reply but a capture; on
// the opponent's own ply it only ever descends into a capture, since
// the strategy's whole premise is that every reply the opponent makes
// is itself forced (§4.7). Positions with no forced continuation are
// leaves regardless of remaining depth, which is what lets this
// strategy prove tactical shots far deeper than a plain fixed-depth
// search would reach.
type ForcedSearcher struct {
	tp    *ttable.Table[forcedKey, forcedEntry]
	Nodes int
	Log   zerolog.Logger
}

// NewForcedSearcher builds a forced-variation searcher with a table
// capped at tableSize entries.
func NewForcedSearcher(tableSize int, log zerolog.Logger) *ForcedSearcher {
	return &ForcedSearcher{tp: ttable.New[forcedKey, forcedEntry](tableSize), Log: log}
}

// forcedMoves returns the subset of pos.Moves() that keep the
// combination alive. Captures need no filtering since the generator
// already restricts them to the majority-capture set. A quiet move
// only qualifies on the root side, and only if it leaves the opponent
// in a position where every reply is itself a capture; on the
// opponent's own ply a quiet move always ends the combination.
func (s *ForcedSearcher) forcedMoves(pos position.Position, rootSide bool) []move.Move {
	moves := pos.Moves()
	if len(moves) == 0 {
		return nil
	}
	if moves[0].IsCapture() {
		return moves
	}
	if !rootSide {
		return nil
	}
	var out []move.Move
	for _, m := range moves {
		reply := pos.DoMove(&m).Moves()
		if len(reply) > 0 && reply[0].IsCapture() {
			out = append(out, m)
		}
	}
	return out
}

func (s *ForcedSearcher) search(pos position.Position, depth int, rootSide bool) (int, move.Move) {
	s.Nodes++
	key := forcedKey{board: pos.Key(), rootSide: rootSide}
	if e, ok := s.tp.Lookup(key); ok && e.depth >= depth {
		return e.score, e.move
	}
	if depth <= 0 && !hasCapture(pos) {
		return pos.Score, move.Move{}
	}
	forced := s.forcedMoves(pos, rootSide)
	if len(forced) == 0 {
		return pos.Score, move.Move{}
	}

	best, bestMove := -3*MateValue, move.Move{}
	for _, m := range forced {
		score, _ := s.search(pos.DoMove(&m), depth-1, !rootSide)
		score = -score
		if score > best {
			best, bestMove = score, m
		}
	}
	s.tp.Store(key, forcedEntry{depth: depth, score: best, move: bestMove})
	return best, bestMove
}

// Search runs iterative deepening, depth 1 through 98, breaking as
// soon as a mate score is proven, maxNodes is spent, or a shallower
// depth already found no forced continuation at all (deepening
// further cannot manufacture one), and returns the best first move of
// the combination, or the zero Move if pos has none.
func (s *ForcedSearcher) Search(pos position.Position, maxNodes int) move.Move {
	s.Nodes = 0
	var score int
	var m move.Move
	for depth := 1; depth < 99; depth++ {
		score, m = s.search(pos, depth, true)
		s.Log.Debug().Int("depth", depth).Int("score", score).Int("nodes", s.Nodes).Msg("forced-variation search")
		if len(m.Steps) == 0 || abs(score) >= MateValue || s.Nodes >= maxNodes {
			break
		}
	}
	return m
}
