package main

import (
	"testing"

	"passo/game"

	"github.com/stretchr/testify/require"
)

func TestParseSide(t *testing.T) {
	side, err := parseSide("a")
	require.NoError(t, err)
	require.Equal(t, game.PlayerA, side)

	side, err = parseSide("B")
	require.NoError(t, err)
	require.Equal(t, game.PlayerB, side)

	_, err = parseSide("C")
	require.Error(t, err)
}
