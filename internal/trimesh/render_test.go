package trimesh

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStencil_Render(t *testing.T) {
	t.Parallel()

	s, err := NewStencil([]float64{1.0, 0.5})
	require.NoError(t, err)

	text := s.Render()
	lines := strings.Split(text, "\n")

	// n rows below the centre plus n-1 mirrored above, blank lines
	// between: 4n-3 lines in total.
	require.Len(t, lines, 4*s.N()-3)

	assert.Contains(t, text, " 1.000")
	assert.Contains(t, text, " 0.500")
	assert.Contains(t, text, unusedMark)

	// Centre line carries the full-width row with the centre weight.
	centre := lines[2*(s.N()-1)]
	assert.Contains(t, centre, "1.000")

	// Odd rows are indented half a cell relative to even rows.
	assert.True(t, strings.HasPrefix(lines[0], "    "), "mirrored odd row indented")
	assert.False(t, strings.HasPrefix(centre, "    "))

	// Top and bottom halves mirror each other.
	assert.Equal(t, lines[0], lines[len(lines)-1])
}

func TestStencil_RenderNormalised(t *testing.T) {
	t.Parallel()

	s, err := NewNormalisedStencil([]float64{0.0, 1.0}, 1.0)
	require.NoError(t, err)

	text := s.Render()
	assert.Contains(t, text, " 0.167", "ring weight 1/6 to three decimals")
	assert.Contains(t, text, " 0.000")
}
