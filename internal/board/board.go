// Package board implements the 50-dark-square geometry and the padded
// board array used by International Draughts: only the 50 playable
// squares are numbered (1..50), the array itself has two extra
// sentinel slots (0 and 51) so ray walks never need a bounds check.
package board

// Piece is the occupant of a square. "Own" always means the side to
// move: the board is rotated after every move so own pieces are
// always uppercase and always advance from high square numbers toward
// low ones.
type Piece byte

const (
	Empty    Piece = '.'
	OwnMan   Piece = 'P'
	OwnKing  Piece = 'K'
	OppMan   Piece = 'p'
	OppKing  Piece = 'k'
	OffBoard Piece = ' '
)

// IsOwn reports whether p belongs to the side to move.
func (p Piece) IsOwn() bool { return p == OwnMan || p == OwnKing }

// IsOpp reports whether p belongs to the opponent.
func (p Piece) IsOpp() bool { return p == OppMan || p == OppKing }

// IsKing reports whether p is a king of either side.
func (p Piece) IsKing() bool { return p == OwnKing || p == OppKing }

// Upper returns the uppercase (own-side) spelling of p, used when
// scoring a piece from "its own" perspective regardless of which side
// currently holds it (§4.2, eval_move capture contribution).
func (p Piece) Upper() Piece {
	switch p {
	case OppMan:
		return OwnMan
	case OppKing:
		return OwnKing
	default:
		return p
	}
}

// flip swaps a piece to the opponent's case; Empty, OffBoard are
// unaffected.
func (p Piece) flip() Piece {
	switch p {
	case OwnMan:
		return OppMan
	case OwnKing:
		return OppKing
	case OppMan:
		return OwnMan
	case OppKing:
		return OwnKing
	default:
		return p
	}
}

// Board is the padded array: index 0 and 51 are permanent off-board
// sentinels, 1..50 are the playable dark squares. Being a fixed-size
// array it is comparable and usable directly as a map key, the same
// trick the teacher's chess.Board([120]Piece) relies on.
type Board [52]Piece

// NumSquares is the count of playable squares.
const NumSquares = 50

// Empty52 is a fully empty, correctly sentineled board.
func Empty52() Board {
	var b Board
	b[0] = OffBoard
	b[51] = OffBoard
	for i := 1; i <= NumSquares; i++ {
		b[i] = Empty
	}
	return b
}

// Rotate returns the board as seen by the opponent: squares are
// reversed end-to-end and every piece's case is flipped so that
// "own" always refers to whoever is now to move.
func (b Board) Rotate() Board {
	var r Board
	for i := 0; i < len(b); i++ {
		r[i] = b[len(b)-1-i].flip()
	}
	return r
}

// String renders the board as 10 rows of 5 characters, row 1 first,
// for debugging and logging.
func (b Board) String() string {
	out := make([]byte, 0, NumSquares+10)
	for sq := 1; sq <= NumSquares; sq++ {
		out = append(out, byte(b[sq]))
		if sq%5 == 0 {
			out = append(out, '\n')
		}
	}
	return string(out)
}
