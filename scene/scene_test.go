package scene

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/hitbox/collision"
)

func TestLoadArena(t *testing.T) {
	s, err := Load(filepath.Join("testdata", "arena.yaml"))
	require.NoError(t, err)
	require.Equal(t, "arena", s.Name)
	require.Len(t, s.Boxes, 9)
	require.Len(t, s.Probes, 3)

	results := s.Run(collision.NewRegistry())
	require.Len(t, results, 3)

	byName := map[string]collision.Collision{}
	for _, r := range results {
		byName[r.Name] = r.Collision
	}

	require.False(t, byName["spawn"].Any())

	hazard := byName["hazard"]
	require.True(t, hazard.Rect(collision.Red))
	require.True(t, hazard.Has(collision.ShRed))

	corner := byName["corner"]
	require.True(t, corner.Rect(collision.Green))
	require.True(t, corner.Rect(collision.Black))
	require.True(t, corner.Has(collision.ShBlack))
}

func TestParseTags(t *testing.T) {
	s, err := Parse([]byte(`
boxes:
  - pos: [1, 2]
    size: [3, 4]
    rect: [light_purple]
    text: [a, b]
    char: ["@"]
probes:
  - pos: [0, 0]
    size: [1, 1]
`))
	require.NoError(t, err)

	b := s.Boxes[0]
	require.Equal(t, 1.0, b.Pos.X)
	require.Equal(t, 4.0, b.Size.Y)
	require.True(t, b.Collision.Rect(collision.LightPurple))
	require.True(t, b.Collision.Text("a"))
	require.True(t, b.Collision.Text("b"))
	require.True(t, b.Collision.Char("@"))
	require.Equal(t, "probe-0", s.Probes[0].Name)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"bad pos", "boxes:\n  - {pos: [1], size: [1, 1]}\n"},
		{"bad size", "boxes:\n  - {pos: [1, 1], size: [1, 1, 1]}\n"},
		{"bad probe", "probes:\n  - {pos: [1, 1]}\n"},
		{"not yaml", "boxes: [unterminated"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			require.Error(t, err)
		})
	}

	_, err := Parse([]byte("name: empty\n"))
	require.ErrorIs(t, err, ErrEmptyScene)

	_, err = Load(filepath.Join("testdata", "bad_color.yaml"))
	require.ErrorIs(t, err, collision.ErrUnknownColor)

	_, err = Load(filepath.Join("testdata", "missing.yaml"))
	require.Error(t, err)
}

func TestRunResetsRegistry(t *testing.T) {
	s, err := Parse([]byte("boxes:\n  - {pos: [0, 0], size: [2, 2], char: [x]}\nprobes:\n  - {name: p, pos: [1, 1], size: [1, 1]}\n"))
	require.NoError(t, err)

	reg := collision.NewRegistry()
	reg.Stage(collision.NewHitBox(0, 0, 5, 5, collision.RectTag(collision.Red)))
	reg.ConcatTmpHitBoxes()

	results := s.Run(reg)
	require.False(t, results[0].Collision.Rect(collision.Red), "stale boxes survived Run")
	require.True(t, results[0].Collision.Char("x"))
}
