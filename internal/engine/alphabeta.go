package engine

import (
	"github.com/rs/zerolog"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/engine/ttable"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/position"
)

type abEntry struct {
	depth int
	score int
	move  move.Move
}

// AlphaBetaSearcher is the classic negamax alpha-beta strategy, driven
// by an aspiration window around the previous iteration's score
// instead of a full [-inf,+inf] search at every depth (§4.8). It keeps
// its own table, separate from the other two strategies, since their
// entries are keyed by a different score convention (plain minimax
// score here vs. the gamma-relative MTD-bi bound).
type AlphaBetaSearcher struct {
	tp               *ttable.Table[board.Board, abEntry]
	Nodes            int
	Log              zerolog.Logger
	AspirationWindow int
}

// NewAlphaBetaSearcher builds a searcher with a table capped at
// tableSize entries and the given aspiration-window half-width.
func NewAlphaBetaSearcher(tableSize, aspirationWindow int, log zerolog.Logger) *AlphaBetaSearcher {
	return &AlphaBetaSearcher{
		tp:               ttable.New[board.Board, abEntry](tableSize),
		Log:              log,
		AspirationWindow: aspirationWindow,
	}
}

func (s *AlphaBetaSearcher) search(pos position.Position, alpha, beta, depth int) (int, move.Move) {
	s.Nodes++
	key := pos.Key()
	if e, ok := s.tp.Lookup(key); ok && e.depth >= depth {
		return e.score, e.move
	}
	if abs(pos.Score) >= MateValue {
		return pos.Score, move.Move{}
	}
	if depth <= 0 && !hasCapture(pos) {
		return pos.Score, move.Move{}
	}

	if depth >= 4 && !hasCapture(pos) {
		R := 2
		if depth > 8 {
			R = 3
		}
		nullScore, _ := s.search(pos.DoMove(nil), -beta, -beta+1, depth-1-R)
		if -nullScore >= beta {
			return -nullScore, move.Move{}
		}
	}

	best, bestMove := -3*MateValue, move.Move{}
	for _, m := range orderByValue(pos, pos.Moves()) {
		score, _ := s.search(pos.DoMove(&m), -beta, -alpha, depth-1)
		score = -score
		if score > best {
			best, bestMove = score, m
		}
		if best > alpha {
			alpha = best
		}
		if alpha >= beta {
			break
		}
	}
	s.tp.Store(key, abEntry{depth: depth, score: best, move: bestMove})
	return best, bestMove
}

// Search runs iterative deepening, depth 1 through 98, breaking as
// soon as a mate score is proven or maxNodes is spent, the same node
// budget shape as the other two strategies' drivers. At each depth it
// first tries a narrow window around the previous score; a fail-high
// or fail-low reopens the full [-inf,+inf] window for that depth
// before moving on, so most depths only need the cheap narrow search.
func (s *AlphaBetaSearcher) Search(pos position.Position, maxNodes int) move.Move {
	s.Nodes = 0
	score := 0
	var best move.Move
	for depth := 1; depth < 99; depth++ {
		alpha, beta := score-s.AspirationWindow, score+s.AspirationWindow
		var m move.Move
		score, m = s.search(pos, alpha, beta, depth)
		if score <= alpha || score >= beta {
			score, m = s.search(pos, -3*MateValue, 3*MateValue, depth)
		}
		best = m
		s.Log.Debug().Int("depth", depth).Int("score", score).Int("nodes", s.Nodes).Msg("alpha-beta iteration")
		if abs(score) >= MateValue || s.Nodes >= maxNodes {
			break
		}
	}
	return best
}
