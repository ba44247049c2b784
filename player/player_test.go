package player

import (
	"strings"
	"testing"

	"passo/experiments/metrics"
	"passo/game"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/require"
)

func mv(x1, y1, x2, y2 int) game.Move {
	return game.Move{From: game.Position{X: x1, Y: y1}, To: game.Position{X: x2, Y: y2}}
}

// fixed always plays the same move.
type fixed game.Move

func (f fixed) ChooseMove(*game.BoardState) game.Move {
	return game.Move(f)
}

func TestRandom(t *testing.T) {
	s := game.NewGame()

	for i := 0; i < 20; i++ {
		require.True(t, s.IsLegal(NewRandom(uint64(i)).ChooseMove(s)), "Random should play legal moves")
	}
	require.Equal(t, NewRandom(42).ChooseMove(s), NewRandom(42).ChooseMove(s), "The same seed should play the same move")
}

func TestRandomWithoutMoves(t *testing.T) {
	s := game.MustParse(`
		B#...
		##...
		.....
		..A..
		.....`, game.PlayerB)

	require.Equal(t, game.Move{}, NewRandom(1).ChooseMove(s))
}

func TestOpening(t *testing.T) {
	inner := fixed(mv(1, 4, 1, 3))
	opening := NewOpening(inner, 2, 7)
	s := game.NewGame()

	first := opening.ChooseMove(s)
	require.Equal(t, NewRandom(7).ChooseMove(s), first, "The first plies should be random")

	_, err := s.Apply(first)
	require.NoError(t, err)
	_, err = s.Apply(s.LegalMoves()[0])
	require.NoError(t, err)

	require.Equal(t, mv(1, 4, 1, 3), opening.ChooseMove(s), "Later plies should defer to the inner player")
}

func TestParseMove(t *testing.T) {
	move, err := ParseMove("  2 4   2 3 ")
	require.NoError(t, err)
	require.Equal(t, mv(2, 4, 2, 3), move)

	for _, line := range []string{"", "1 2 3", "1 2 3 4 5", "a 1 2 3", "1 2 3 4.0"} {
		_, err := ParseMove(line)
		require.Error(t, err, "%q should be rejected", line)
	}
}

func newHuman(input string, undo func() error) (*Human, *strings.Builder) {
	out := &strings.Builder{}
	return NewHuman(strings.NewReader(input), out, undo, termenv.WithProfile(termenv.Ascii)), out
}

func TestHumanChooseMove(t *testing.T) {
	t.Run("legal move", func(t *testing.T) {
		human, _ := newHuman("2 4 2 3\n", nil)
		require.Equal(t, mv(2, 4, 2, 3), human.ChooseMove(game.NewGame()))
	})

	t.Run("prompts again after bad input", func(t *testing.T) {
		human, out := newHuman("hello\n2 4 2 1\n2 4 1 3\n", nil)

		move := human.ChooseMove(game.NewGame())

		require.Equal(t, mv(2, 4, 1, 3), move)
		require.Contains(t, out.String(), "want four coordinates")
		require.Contains(t, out.String(), "is not a legal move")
		require.Equal(t, 3, strings.Count(out.String(), "PlayerA to move"), "Each attempt should prompt")
	})

	t.Run("closed input", func(t *testing.T) {
		human, _ := newHuman("", nil)
		require.Equal(t, game.Move{}, human.ChooseMove(game.NewGame()))
	})
}

func TestHumanUndo(t *testing.T) {
	t.Run("takes back a full round", func(t *testing.T) {
		s := game.NewGame()
		var played []game.Move
		for _, m := range []game.Move{mv(2, 4, 2, 3), mv(2, 0, 2, 1)} {
			_, err := s.Apply(m)
			require.NoError(t, err)
			played = append(played, m)
		}
		undo := func() error {
			last := played[len(played)-1]
			played = played[:len(played)-1]
			return s.Reverse(last, false)
		}
		human, _ := newHuman("undo\n1 4 1 3\n", undo)

		move := human.ChooseMove(s)

		require.Equal(t, mv(1, 4, 1, 3), move)
		require.Equal(t, 0, s.MoveNumber(), "Both moves of the round should be undone")
		require.Equal(t, game.NewGame().String(), s.String())
	})

	t.Run("needs a full round", func(t *testing.T) {
		s := game.NewGame()
		calls := 0
		human, out := newHuman("undo\n2 4 2 3\n", func() error { calls++; return nil })

		human.ChooseMove(s)

		require.Zero(t, calls)
		require.Contains(t, out.String(), "cannot undo")
	})

	t.Run("not offered", func(t *testing.T) {
		human, out := newHuman("undo\n2 4 2 3\n", nil)
		human.ChooseMove(game.NewGame())
		require.Contains(t, out.String(), "undo is not available")
	})
}

func TestRendererDraw(t *testing.T) {
	out := &strings.Builder{}
	renderer := NewRenderer(out, termenv.WithProfile(termenv.Ascii))

	renderer.Draw(game.NewGame())

	want := "   0 1 2 3 4\n" +
		"0  B B B B B  goal A\n" +
		"1  . . . . .\n" +
		"2  . . . . .\n" +
		"3  . . . . .\n" +
		"4  A A A A A  goal B\n"
	require.Equal(t, want, out.String())
}

func TestRendererDrawInactive(t *testing.T) {
	out := &strings.Builder{}
	renderer := NewRenderer(out, termenv.WithProfile(termenv.Ascii))
	s := game.MustParse(`
		#####
		..B..
		.....
		..A..
		.....`, game.PlayerA)

	renderer.Draw(s)

	lines := strings.Split(out.String(), "\n")
	require.Equal(t, "0  # # # # #", lines[1])
	require.Equal(t, "1  . . B . .  goal A", lines[2], "The goal should move past the retired row")
}

type counting struct {
	fixed
	searches int
}

func (c *counting) FindMove(state *game.BoardState) (game.Move, metrics.SearchMetric) {
	c.searches++
	return c.ChooseMove(state), metrics.SearchMetric{Nodes: 7}
}

func TestOpeningPassesSearchMetrics(t *testing.T) {
	inner := &counting{fixed: fixed(mv(1, 4, 1, 3))}
	opening := NewOpening(inner, 1, 7)
	s := game.NewGame()

	_, metric := opening.FindMove(s)
	require.Zero(t, metric.Nodes, "A random ply has no search statistics")
	require.Zero(t, inner.searches)

	_, err := s.Apply(s.LegalMoves()[0])
	require.NoError(t, err)

	move, metric := opening.FindMove(s)
	require.Equal(t, mv(1, 4, 1, 3), move)
	require.Equal(t, 7, metric.Nodes)
	require.Equal(t, 1, inner.searches)
}
