// Command mad100 is a terminal opponent: it renders the board, reads
// a move in square-list notation, and replies using one of the three
// search strategies, the same "print board, read move, search, apply"
// loop the teacher's cli() follows for chess.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/rs/zerolog"

	"github.com/akalverboer/mad100go/internal/board"
	"github.com/akalverboer/mad100go/internal/book"
	"github.com/akalverboer/mad100go/internal/config"
	"github.com/akalverboer/mad100go/internal/engine"
	"github.com/akalverboer/mad100go/internal/fen"
	"github.com/akalverboer/mad100go/internal/move"
	"github.com/akalverboer/mad100go/internal/notation"
	"github.com/akalverboer/mad100go/internal/position"
)

// startPosition builds the standard International Draughts setup:
// the side to move always owns the higher-numbered squares (31-50),
// the opponent the lower ones (1-20), squares 21-30 empty.
func startPosition() position.Position {
	b := board.Empty52()
	for sq := 1; sq <= 20; sq++ {
		b[sq] = board.OppMan
	}
	for sq := 31; sq <= board.NumSquares; sq++ {
		b[sq] = board.OwnMan
	}
	return position.New(b)
}

func renderBoard(b board.Board) string {
	own := color.New(color.FgGreen, color.Bold).SprintFunc()
	opp := color.New(color.FgRed, color.Bold).SprintFunc()
	var sb strings.Builder
	for sq := 1; sq <= board.NumSquares; sq++ {
		switch b[sq] {
		case board.OwnMan:
			sb.WriteString(own(fmt.Sprintf("%3d", sq)))
		case board.OwnKing:
			sb.WriteString(own(fmt.Sprintf("%3s", "K"+fmt.Sprint(sq))))
		case board.OppMan:
			sb.WriteString(opp(fmt.Sprintf("%3d", sq)))
		case board.OppKing:
			sb.WriteString(opp(fmt.Sprintf("%3s", "K"+fmt.Sprint(sq))))
		default:
			sb.WriteString("  .")
		}
		if sq%5 == 0 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func searchReply(cfg config.Config, strategy config.Strategy, mtd *engine.MTDSearcher, fv *engine.ForcedSearcher, ab *engine.AlphaBetaSearcher, pos position.Position) move.Move {
	switch strategy {
	case config.ForcedVariation:
		if m := fv.Search(pos, cfg.MaxNodes); len(m.Steps) > 0 {
			return m
		}
		return mtd.Search(pos, cfg.MaxNodes)
	case config.AlphaBeta:
		return ab.Search(pos, cfg.MaxNodes)
	default:
		return mtd.Search(pos, cfg.MaxNodes)
	}
}

func main() {
	cfgPath := flag.String("config", "", "path to a TOML config file")
	strategyFlag := flag.String("strategy", "", "search strategy: mtdbi, forced or alphabeta")
	fenFlag := flag.String("fen", "", "initial position, e.g. W:W31,32,K6:B1,2,3")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	strategy := cfg.DefaultStrategy
	if *strategyFlag != "" {
		strategy = config.Strategy(*strategyFlag)
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	pos := startPosition()
	if *fenFlag != "" {
		p, err := fen.Parse(*fenFlag)
		if err != nil {
			fmt.Fprintln(os.Stderr, "fen:", err)
			os.Exit(1)
		}
		pos = p
	}

	var ob *book.Book
	if cfg.BookPath != "" {
		ob = book.New(log)
		if err := ob.Load(cfg.BookPath, startPosition()); err != nil {
			log.Warn().Err(err).Msg("opening book not loaded")
			ob = nil
		}
	}

	mtd := engine.NewMTDSearcher(cfg.TableSize, log)
	fv := engine.NewForcedSearcher(cfg.TableSize, log)
	ab := engine.NewAlphaBetaSearcher(cfg.TableSize, cfg.AspirationWindow, log)

	reader := bufio.NewReader(os.Stdin)
	for {
		fmt.Print(renderBoard(pos.Board))
		legal := pos.Moves()
		if len(legal) == 0 {
			fmt.Println("No moves left, you lost.")
			return
		}

		var m move.Move
		for {
			fmt.Print("Enter move: ")
			line, _ := reader.ReadString('\n')
			line = strings.TrimSpace(line)
			if line == "quit" {
				return
			}
			if cand, ok := notation.Parse(line, legal); ok {
				m = cand
				break
			}
			fmt.Println("not a legal move")
		}
		pos = pos.DoMove(&m)

		var reply move.Move
		if ob != nil {
			if m, ok := ob.Pick(pos, pos.Moves(), book.PickRandom); ok {
				reply = m
			}
		}
		if len(reply.Steps) == 0 {
			reply = searchReply(cfg, strategy, mtd, fv, ab, pos)
		}
		if len(reply.Steps) == 0 {
			fmt.Println("Engine has no moves, you win.")
			return
		}

		fmt.Println("Engine plays", notation.String(reply, true))
		pos = pos.DoMove(&reply)
		// pos.Score is now from the human's perspective after the
		// engine's reply and the subsequent rotation: a large positive
		// value means the human crushed the engine's position away,
		// a large negative one means the human is the one mated.
		if pos.Score <= -engine.MateValue {
			fmt.Println("You lost")
			return
		}
		if pos.Score >= engine.MateValue {
			fmt.Println("You won")
			return
		}
	}
}
