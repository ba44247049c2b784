package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"passo/game"

	"github.com/muesli/termenv"
	"golang.org/x/exp/slices"
)

// Human reads moves as "x1 y1 x2 y2" lines. The line "undo" takes back the
// last round, the opponent's reply and the human's own move before it.
type Human struct {
	in       *bufio.Scanner
	out      io.Writer
	renderer *Renderer
	undo     func() error
}

// NewHuman reads from in and prompts on out. undo takes back a single move;
// it may be nil when undo is not offered.
func NewHuman(in io.Reader, out io.Writer, undo func() error, options ...termenv.OutputOption) *Human {
	return &Human{
		in:       bufio.NewScanner(in),
		out:      out,
		renderer: NewRenderer(out, options...),
		undo:     undo,
	}
}

// ChooseMove prompts until it reads a legal move. It returns the zero Move,
// which is never legal, once the input is exhausted.
func (h *Human) ChooseMove(state *game.BoardState) game.Move {
	for {
		h.renderer.Draw(state)
		fmt.Fprintf(h.out, "%v to move (x1 y1 x2 y2): ", state.Turn())
		if !h.in.Scan() {
			fmt.Fprintln(h.out)
			return game.Move{}
		}

		line := strings.TrimSpace(h.in.Text())
		if line == "undo" {
			if err := h.undoRound(state); err != nil {
				fmt.Fprintf(h.out, "cannot undo: %v\n", err)
			}
			continue
		}

		move, err := ParseMove(line)
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if !slices.Contains(state.LegalMoves(), move) {
			fmt.Fprintf(h.out, "%v is not a legal move for %v\n", move, state.Turn())
			continue
		}
		return move
	}
}

func (h *Human) undoRound(state *game.BoardState) error {
	if h.undo == nil {
		return fmt.Errorf("undo is not available")
	}
	if state.MoveNumber() < 2 {
		return fmt.Errorf("no full round to take back")
	}
	for i := 0; i < 2; i++ {
		if err := h.undo(); err != nil {
			return err
		}
	}
	return nil
}

// ParseMove reads a move written as four integers "x1 y1 x2 y2".
func ParseMove(line string) (game.Move, error) {
	fields := strings.Fields(line)
	if len(fields) != 4 {
		return game.Move{}, fmt.Errorf("want four coordinates x1 y1 x2 y2, got %q", line)
	}
	var coords [4]int
	for i, field := range fields {
		v, err := strconv.Atoi(field)
		if err != nil {
			return game.Move{}, fmt.Errorf("coordinate %q is not a number", field)
		}
		coords[i] = v
	}
	return game.Move{
		From: game.Position{X: coords[0], Y: coords[1]},
		To:   game.Position{X: coords[2], Y: coords[3]},
	}, nil
}
