package engine

import (
	"sort"

	"github.com/rs/zerolog"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/engine/ttable"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/position"
)

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

// hasCapture reports whether the side to move in pos has at least one
// capture available. The majority-capture rule means pos.Moves()
// already returns nothing but captures whenever one exists, so the
// first move is a capture iff any move is.
func hasCapture(pos position.Position) bool {
	moves := pos.Moves()
	return len(moves) > 0 && moves[0].IsCapture()
}

type mtdEntry struct {
	depth int
	score int
	gamma int
	move  move.Move
}

// MTDSearcher is the MTD-bi strategy: bisection over a sequence of
// null-window alpha-beta searches, with null-move pruning and
// quiescence at the leaves (§4.6). It keeps its own table and node
// counter so several searchers can run independently, e.g. one per
// unit test. All searchers still share internal/position's
// move-generation memo, which is not safe for concurrent use.
type MTDSearcher struct {
	tp     *ttable.Table[board.Board, mtdEntry]
	Nodes  int
	Log    zerolog.Logger
	TableN int
}

// NewMTDSearcher builds a searcher with a table capped at tableSize
// entries.
func NewMTDSearcher(tableSize int, log zerolog.Logger) *MTDSearcher {
	return &MTDSearcher{tp: ttable.New[board.Board, mtdEntry](tableSize), Log: log, TableN: tableSize}
}

// bound is the MTD-bi node function: a null-window test of whether
// pos's value is >= gamma, searched to depth plies. Once depth drops
// to zero or below, a side with no capture available is a leaf (its
// static score stands); a side that must capture keeps extending
// through the chain, since the majority rule means every move left in
// pos.Moves() is itself a capture. Null-move pruning only fires at
// depth >= 4 and only when the side to move has no capture pending —
// a forced capture can never be soundly replaced by "pass the turn".
func (s *MTDSearcher) bound(pos position.Position, gamma, depth int) int {
	s.Nodes++
	key := pos.Key()
	e, ok := s.tp.Lookup(key)
	if ok && e.depth >= depth && ((e.score < e.gamma && e.score < gamma) ||
		(e.score >= e.gamma && e.score >= gamma)) {
		return e.score
	}
	if abs(pos.Score) >= MateValue {
		return pos.Score
	}
	if depth <= 0 && !hasCapture(pos) {
		return pos.Score
	}

	nullScore := pos.Score
	if depth >= 4 && !hasCapture(pos) {
		R := 2
		if depth > 8 {
			R = 3
		}
		nullScore = -s.bound(pos.DoMove(nil), 1-gamma, depth-1-R)
	}
	if nullScore >= gamma {
		return nullScore
	}

	bestScore, bestMove := -3*MateValue, move.Move{}
	for _, m := range orderByValue(pos, pos.Moves()) {
		score := -s.bound(pos.DoMove(&m), 1-gamma, depth-1)
		if score > bestScore {
			bestScore, bestMove = score, m
		}
		if score >= gamma {
			break
		}
	}
	if depth <= 0 && bestScore < nullScore {
		return nullScore
	}
	if depth > 0 && bestScore <= -MateValue && nullScore > -MateValue {
		bestScore = 0
	}

	if !ok || (depth >= e.depth && bestScore >= gamma) {
		s.tp.Store(key, mtdEntry{depth: depth, score: bestScore, gamma: gamma, move: bestMove})
	}
	return bestScore
}

// Search runs iterative deepening with MTD-bi bisection at each depth
// until a mate score is proven or maxNodes is exhausted, then returns
// the best move found for the root position.
func (s *MTDSearcher) Search(pos position.Position, maxNodes int) move.Move {
	s.Nodes = 0
	var score int
	for depth := 1; depth < 99; depth++ {
		lower, upper := -3*MateValue, 3*MateValue
		for lower < upper-EvalRoughness {
			gamma := (lower + upper + 1) / 2
			score = s.bound(pos, gamma, depth)
			if score >= gamma {
				lower = score
			} else {
				upper = score
			}
		}
		s.Log.Debug().Int("depth", depth).Int("score", score).Int("nodes", s.Nodes).Msg("mtdbi iteration")
		if abs(score) >= MateValue || s.Nodes >= maxNodes {
			break
		}
	}
	e, _ := s.tp.Lookup(pos.Key())
	return e.move
}

// orderByValue sorts moves by descending immediate eval delta, the
// move-ordering heuristic both alpha-beta strategies rely on to
// maximise early cutoffs (§4.6).
func orderByValue(pos position.Position, moves []move.Move) []move.Move {
	type scored struct {
		m move.Move
		v int
	}
	ranked := make([]scored, len(moves))
	for i, m := range moves {
		ranked[i] = scored{m: m, v: pos.EvalMove(m)}
	}
	sort.Slice(ranked, func(i, j int) bool { return ranked[i].v > ranked[j].v })
	out := make([]move.Move, len(ranked))
	for i, r := range ranked {
		out[i] = r.m
	}
	return out
}
