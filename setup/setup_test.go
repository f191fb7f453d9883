package setup

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"tron/game"

	"github.com/stretchr/testify/require"
)

func TestPrompt(t *testing.T) {
	t.Run("reads a full position", func(t *testing.T) {
		in := strings.NewReader("3 3\n1\n1 3\n1\n3 1\n")
		var out bytes.Buffer

		b, err := Prompt(in, &out)

		require.NoError(t, err)
		require.Equal(t, "+ + L\n+ + +\nR + +\n", b.String())
		require.Contains(t, out.String(), "Enter in the board size (m n): ")
		require.Contains(t, out.String(), "How many Left bikes do you want? ")
		require.Contains(t, out.String(), "How many Right bikes do you want? ")
	})

	t.Run("accepts a side without tokens", func(t *testing.T) {
		in := strings.NewReader("1 1\n1\n1 1\n0\n")

		b, err := Prompt(in, &bytes.Buffer{})

		require.NoError(t, err)
		require.Empty(t, b.Tokens(game.Right))
	})

	t.Run("rejects malformed lines", func(t *testing.T) {
		tests := map[string]string{
			"size with one number": "3\n",
			"size not a number":    "3 x\n",
			"negative count":       "2 2\n-1\n",
			"short location":       "2 2\n1\n1\n",
			"truncated input":      "2 2\n1\n",
		}
		for name, input := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := Prompt(strings.NewReader(input), &bytes.Buffer{})

				require.ErrorIs(t, err, ErrMalformedInput)
			})
		}
	})

	t.Run("passes through board validation", func(t *testing.T) {
		in := strings.NewReader("2 2\n1\n3 1\n0\n")

		_, err := Prompt(in, &bytes.Buffer{})

		require.ErrorIs(t, err, game.ErrOutOfBounds)
	})
}

func TestLoadFile(t *testing.T) {
	t.Run("reads a yaml position", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "position.yml")
		data := "rows: 2\ncols: 3\nleft: [[1, 1], [2, 1]]\nright: [[1, 3]]\n"
		require.NoError(t, os.WriteFile(path, []byte(data), 0644))

		b, err := LoadFile(path)

		require.NoError(t, err)
		require.Equal(t, "L + R\nL + +\n", b.String())
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "missing.yml"))

		require.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("invalid yaml", func(t *testing.T) {
		_, err := Parse([]byte("rows: [\n"))

		require.ErrorIs(t, err, ErrMalformedInput)
	})

	t.Run("overlapping tokens", func(t *testing.T) {
		_, err := Parse([]byte("rows: 2\ncols: 2\nleft: [[1, 1]]\nright: [[1, 1]]\n"))

		require.ErrorIs(t, err, game.ErrOverlap)
	})
}
