package player

import (
	"fmt"
	"io"

	"passo/game"

	"github.com/muesli/termenv"
)

// Renderer draws boards to a terminal, colouring each side's pieces.
type Renderer struct {
	out *termenv.Output
}

func NewRenderer(w io.Writer, options ...termenv.OutputOption) *Renderer {
	return &Renderer{out: termenv.NewOutput(w, options...)}
}

// Draw prints the board with x along the top and y down the side, marking the
// current goal row of each side.
func (r *Renderer) Draw(state *game.BoardState) {
	goalA, goalB := state.WinLine()

	fmt.Fprint(r.out, "  ")
	for x := 0; x < game.Size; x++ {
		fmt.Fprintf(r.out, " %d", x)
	}
	fmt.Fprintln(r.out)

	for y := 0; y < game.Size; y++ {
		fmt.Fprintf(r.out, "%d ", y)
		for x := 0; x < game.Size; x++ {
			fmt.Fprintf(r.out, " %s", r.cell(state, game.Position{X: x, Y: y}))
		}
		switch {
		case y == goalA && y == goalB:
			fmt.Fprint(r.out, "  goal A B")
		case y == goalA:
			fmt.Fprint(r.out, "  goal A")
		case y == goalB:
			fmt.Fprint(r.out, "  goal B")
		}
		fmt.Fprintln(r.out)
	}
}

func (r *Renderer) cell(state *game.BoardState, p game.Position) string {
	switch {
	case state.At(p) == game.PlayerA:
		return r.out.String("A").Foreground(r.out.Color("1")).Bold().String()
	case state.At(p) == game.PlayerB:
		return r.out.String("B").Foreground(r.out.Color("4")).Bold().String()
	case state.Active(p):
		return "."
	}
	return r.out.String("#").Faint().String()
}
