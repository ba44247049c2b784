package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGame(t *testing.T) {
	s := NewGame()

	for x := 0; x < Size; x++ {
		require.Equal(t, PlayerB, s.At(Position{X: x, Y: 0}), "PlayerB should start on row 0")
		require.Equal(t, PlayerA, s.At(Position{X: x, Y: Size - 1}), "PlayerA should start on the last row")
		for y := 1; y < Size-1; y++ {
			require.Equal(t, None, s.At(Position{X: x, Y: y}), "Middle rows should start empty")
		}
		for y := 0; y < Size; y++ {
			require.True(t, s.Active(Position{X: x, Y: y}), "Every cell should start active")
		}
	}
	require.Equal(t, Size, s.Pieces(PlayerA))
	require.Equal(t, Size, s.Pieces(PlayerB))
	require.Equal(t, 0, s.Pieces(None), "None never owns pieces")
	require.Equal(t, PlayerA, s.Turn(), "PlayerA should move first")
	require.Equal(t, 0, s.MoveNumber())
	require.Equal(t, None, s.Winner())
	require.Empty(t, s.LastCollapse(), "No collapse has happened yet")
}

func TestParse(t *testing.T) {
	t.Run("round trips through String", func(t *testing.T) {
		layout := "B.#.B\n.....\n##A..\n.....\nA...A\n"
		s, err := Parse(layout, PlayerB)

		require.NoError(t, err)
		require.Equal(t, layout, s.String())
		require.Equal(t, 3, s.Pieces(PlayerA))
		require.Equal(t, 2, s.Pieces(PlayerB))
		require.Equal(t, PlayerB, s.Turn())
		require.False(t, s.Active(Position{X: 2, Y: 0}), "'#' should be inactive")
		require.True(t, s.Active(Position{X: 2, Y: 2}), "Pieces stand on active cells")
	})

	t.Run("starting layout matches NewGame", func(t *testing.T) {
		s := MustParse(`
			BBBBB
			.....
			.....
			.....
			AAAAA`, PlayerA)

		require.Equal(t, snapshot(NewGame()), snapshot(s))
		require.Equal(t, NewGame().Hash(), s.Hash())
	})

	t.Run("rejects malformed layouts", func(t *testing.T) {
		_, err := Parse(".....\n.....", PlayerA)
		require.Error(t, err, "Too few rows should fail")

		_, err = Parse("....\n.....\n.....\n.....\n.....", PlayerA)
		require.Error(t, err, "A short row should fail")

		_, err = Parse("..x..\n.....\n.....\n.....\n.....", PlayerA)
		require.Error(t, err, "Unknown cells should fail")

		_, err = Parse(NewGame().String(), None)
		require.Error(t, err, "None cannot be the side to move")
	})

	t.Run("MustParse panics on malformed layouts", func(t *testing.T) {
		require.Panics(t, func() { MustParse("", PlayerA) })
	})
}

func TestCopy(t *testing.T) {
	s := NewGame()
	_, err := s.Apply(Move{From: Position{X: 2, Y: 4}, To: Position{X: 2, Y: 3}})
	require.NoError(t, err)

	c := s.Copy()
	require.Equal(t, snapshot(s), snapshot(c), "Copy should start identical")

	_, err = c.Apply(Move{From: Position{X: 2, Y: 0}, To: Position{X: 2, Y: 1}})
	require.NoError(t, err)
	require.NotEqual(t, snapshot(s), snapshot(c), "Moves on the copy should not affect the original")
	require.Equal(t, 1, s.MoveNumber())

	require.NoError(t, c.Reverse(Move{From: Position{X: 2, Y: 0}, To: Position{X: 2, Y: 1}}, false))
	require.NoError(t, c.Reverse(Move{From: Position{X: 2, Y: 4}, To: Position{X: 2, Y: 3}}, false),
		"The copy should carry the undo history")
	require.Equal(t, snapshot(NewGame()), snapshot(c))
}

func TestHash(t *testing.T) {
	t.Run("equal positions hash equally", func(t *testing.T) {
		require.Equal(t, NewGame().Hash(), NewGame().Hash())
	})

	t.Run("side to move changes the hash", func(t *testing.T) {
		a := MustParse(NewGame().String(), PlayerA)
		b := MustParse(NewGame().String(), PlayerB)
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("inactive empty cells differ from active ones", func(t *testing.T) {
		a := MustParse("BBBBB\n.....\n.....\n.....\nAAAAA", PlayerA)
		b := MustParse("BBBBB\n..#..\n.....\n.....\nAAAAA", PlayerA)
		require.NotEqual(t, a.Hash(), b.Hash())
	})

	t.Run("winner changes the hash", func(t *testing.T) {
		a := NewGame()
		b := NewGame()
		b.Concede()
		require.NotEqual(t, a.Hash(), b.Hash())
	})
}

func TestConcede(t *testing.T) {
	s := NewGame()
	s.Concede()
	require.Equal(t, PlayerB, s.Winner(), "The side to move should lose")

	s = MustParse(NewGame().String(), PlayerB)
	s.Concede()
	require.Equal(t, PlayerA, s.Winner())
}

func TestSide(t *testing.T) {
	require.Equal(t, PlayerB, PlayerA.Opponent())
	require.Equal(t, PlayerA, PlayerB.Opponent())
	require.Equal(t, None, None.Opponent())
	require.Equal(t, "PlayerA", PlayerA.String())
	require.Equal(t, "None", None.String())
}
