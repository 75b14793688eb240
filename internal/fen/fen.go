// Package fen parses and renders the Forsyth-Edwards-style board
// notation commonly used to exchange draughts positions with other
// tools. It sits outside the engine's core (§1 scopes position
// exchange formats out of the move/search pipeline) but a complete
// program still needs it to load a position from a file or the CLI.
package fen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/position"
)

// Parse reads a FEN-style string "W:Wa:Ba,b,c" (W/B to move, then one
// field per side listing its occupied squares, a king written with a
// K prefix) and returns the resulting Position, always from White's
// perspective on the wire and rotated to the own/opponent convention
// the engine uses internally when Black is to move.
func Parse(s string) (position.Position, error) {
	s = strings.TrimSpace(s)
	fields := strings.Split(s, ":")
	if len(fields) < 2 {
		return position.Position{}, fmt.Errorf("fen: expected at least 2 colon-separated fields, got %q", s)
	}
	toMove := fields[0]
	if toMove != "W" && toMove != "B" {
		return position.Position{}, fmt.Errorf("fen: side to move must be W or B, got %q", toMove)
	}

	b := board.Empty52()
	for _, field := range fields[1:] {
		if field == "" {
			continue
		}
		side := field[0]
		var manPiece, kingPiece board.Piece
		switch side {
		case 'W':
			manPiece, kingPiece = board.OwnMan, board.OwnKing
		case 'B':
			manPiece, kingPiece = board.OppMan, board.OppKing
		default:
			return position.Position{}, fmt.Errorf("fen: unknown side marker %q", string(side))
		}
		for _, tok := range strings.Split(field[1:], ",") {
			tok = strings.TrimSpace(tok)
			if tok == "" {
				continue
			}
			piece := manPiece
			if strings.HasPrefix(tok, "K") {
				piece = kingPiece
				tok = tok[1:]
			}
			sq, err := strconv.Atoi(tok)
			if err != nil || sq < 1 || sq > board.NumSquares {
				return position.Position{}, fmt.Errorf("fen: invalid square %q", tok)
			}
			b[sq] = piece
		}
	}

	pos := position.New(b)
	if toMove == "B" {
		pos = pos.Rotate()
	}
	return pos, nil
}

// Render writes pos back out in the same notation Parse accepts.
// ownToMove names which side ("W" or "B") pos's own pieces currently
// belong to, since the engine's board has already normalised "own" to
// uppercase and Render needs to know which absolute colour that is.
func Render(pos position.Position, ownToMove string) string {
	oppToMove := "B"
	if ownToMove == "B" {
		oppToMove = "W"
	}

	var own, opp []string
	for sq := 1; sq <= board.NumSquares; sq++ {
		p := pos.Board[sq]
		// Parse reads squares in White's numbering, so a board whose own
		// side is Black is mirrored back before writing.
		label := sq
		if ownToMove == "B" {
			label = board.Mirror(sq)
		}
		switch {
		case p == board.OwnMan:
			own = append(own, strconv.Itoa(label))
		case p == board.OwnKing:
			own = append(own, "K"+strconv.Itoa(label))
		case p == board.OppMan:
			opp = append(opp, strconv.Itoa(label))
		case p == board.OppKing:
			opp = append(opp, "K"+strconv.Itoa(label))
		}
	}

	return fmt.Sprintf("%s:%s%s:%s%s",
		ownToMove, ownToMove, strings.Join(own, ","),
		oppToMove, strings.Join(opp, ","))
}
