package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRender(t *testing.T) {
	t.Run("default markers", func(t *testing.T) {
		b := newTestBoard(t, 3, 3, []Position{{0, 2}}, []Position{{2, 0}})
		require.NoError(t, b.Move(Left, 0, 0, 0))

		require.Equal(t, "L X X\n+ + +\nR + +\n", b.String())
	})

	t.Run("custom markers", func(t *testing.T) {
		b := newTestBoard(t, 1, 3, []Position{{0, 0}}, []Position{{0, 2}})
		require.NoError(t, b.Move(Right, 0, 0, 1))

		got := b.Render(Markers{Open: ".", Destroyed: "#", Left: "a", Right: "b"})

		require.Equal(t, "a b #\n", got)
	})
}

func TestOutcome(t *testing.T) {
	t.Run("good replies", func(t *testing.T) {
		require.True(t, LeftWins.GoodFor(Left))
		require.False(t, LeftWins.GoodFor(Right))
		require.True(t, RightWins.GoodFor(Right))
		require.False(t, RightWins.GoodFor(Left))
		require.True(t, Previous.GoodFor(Left), "The mover into a P-position wins")
		require.True(t, Previous.GoodFor(Right), "The mover into a P-position wins")
		require.False(t, Next.GoodFor(Left))
		require.False(t, Next.GoodFor(Right))
		require.False(t, Unknown.GoodFor(Left))
	})

	t.Run("winners by first mover", func(t *testing.T) {
		tests := []struct {
			outcome Outcome
			first   Side
			want    Side
		}{
			{LeftWins, Right, Left},
			{RightWins, Left, Right},
			{Previous, Left, Right},
			{Previous, Right, Left},
			{Next, Left, Left},
			{Next, Right, Right},
		}
		for _, tt := range tests {
			got, ok := tt.outcome.Winner(tt.first)
			require.True(t, ok)
			require.Equal(t, tt.want, got, "%s with %s first", tt.outcome, tt.first)
		}

		_, ok := Unknown.Winner(Left)
		require.False(t, ok)
	})

	t.Run("symbols", func(t *testing.T) {
		require.Equal(t, "L", LeftWins.String())
		require.Equal(t, "R", RightWins.String())
		require.Equal(t, "P", Previous.String())
		require.Equal(t, "N", Next.String())
		require.Equal(t, "?", Unknown.String())
	})
}
