package parsing_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/grid"
	"github.com/katalvlaran/puzzlekit/parsing"
	"github.com/katalvlaran/puzzlekit/ranges"
)

//----------------------------------------------------------------------------//
// Lines
//----------------------------------------------------------------------------//

func TestLines(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"Basic", "abcd123--\nwxyz", []string{"abcd123--", "wxyz"}},
		{"TrailingNewline", "abc\ndef\n", []string{"abc", "def"}},
		{"EmptyLineKept", "a\n\nb", []string{"a", "", "b"}},
		{"LeadingEmptyLine", "\nabc", []string{"", "abc"}},
		{"Single", "abc", []string{"abc"}},
		{"Empty", "", []string{""}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsing.Lines(tc.in)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCharacterLines(t *testing.T) {
	got, err := parsing.CharacterLines("AB\nCD")
	require.NoError(t, err)
	assert.Equal(t, [][]rune{{'A', 'B'}, {'C', 'D'}}, got)
}

//----------------------------------------------------------------------------//
// Numbers
//----------------------------------------------------------------------------//

func TestNumberPair(t *testing.T) {
	v, err := parsing.NumberPair(",").Parse("1,2")
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 2}, v)

	v, err = parsing.NumberPair(" ").Parse("1 2")
	require.NoError(t, err)
	assert.Equal(t, [2]int{1, 2}, v)

	sum := parsing.Map(parsing.NumberPair(" "), func(p [2]int) int { return p[0] + p[1] })
	s, err := sum.Parse("1 2")
	require.NoError(t, err)
	assert.Equal(t, 3, s)

	lines := parsing.ManyUntilEnd(parsing.NumberPair(","), "\n")
	pairs, err := lines.Parse("1,2\n3,4")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, pairs)
}

func TestNumberPairs(t *testing.T) {
	got, err := parsing.NumberPairs(",").Parse("1,2\n3,4\n")
	require.NoError(t, err)
	assert.Equal(t, [][2]int{{1, 2}, {3, 4}}, got)

	_, err = parsing.NumberPairs(",").Parse("1,2\n3;4")
	assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))
}

func TestNumberLine(t *testing.T) {
	got, err := parsing.NumberLine(",").Parse("1,2,3,4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	got, err = parsing.NumberLine(" ").Parse("1 -2 3 4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, -2, 3, 4}, got)

	doubled := parsing.Map(parsing.NumberLine(" "), func(xs []int) []int {
		out := make([]int, len(xs))
		for i, x := range xs {
			out[i] = x * 2
		}
		return out
	})
	got, err = doubled.Parse("1 2 3 4")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4, 6, 8}, got)
}

func TestNumberLines(t *testing.T) {
	got, err := parsing.NumberLines(",").Parse("1,2,3\n4,5,6")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5, 6}}, got)

	_, err = parsing.NumberLines(",").Parse("1,2\n3,x\n")
	require.Error(t, err)
	var pe *parsing.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 5, pe.Offset)
}

func TestSingleDigits(t *testing.T) {
	line, err := parsing.SingleDigitLine().Parse("9081")
	require.NoError(t, err)
	assert.Equal(t, []int{9, 0, 8, 1}, line)

	lines, err := parsing.SingleDigitLines().Parse("12\n345\n")
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1, 2}, {3, 4, 5}}, lines)
}

func TestRanges(t *testing.T) {
	r, err := parsing.Range("-").Parse("3-5")
	require.NoError(t, err)
	assert.Equal(t, ranges.New(3, 5), r)

	rs, err := parsing.Ranges("-").Parse("3-5\n10-14\n16-20\n12-18\n")
	require.NoError(t, err)
	assert.Equal(t, []ranges.Range[int]{ranges.New(3, 5), ranges.New(10, 20)}, ranges.Merged(rs))

	_, err = parsing.Range("-").Parse("5-3")
	assert.True(t, errors.Is(err, ranges.ErrInverted))
}

//----------------------------------------------------------------------------//
// Grids
//----------------------------------------------------------------------------//

func TestSingleDigitGrid(t *testing.T) {
	g, err := parsing.SingleDigitGrid().Parse("123\n456")
	require.NoError(t, err)
	assert.Equal(t, 3, g.Width())
	assert.Equal(t, 2, g.Height())
	row0, _ := g.Row(0)
	row1, _ := g.Row(1)
	assert.Equal(t, []int{1, 2, 3}, row0)
	assert.Equal(t, []int{4, 5, 6}, row1)
}

func TestSingleDigitGrid_Errors(t *testing.T) {
	_, err := parsing.SingleDigitGrid().Parse("123\n45")
	assert.True(t, errors.Is(err, grid.ErrNonRectangular))
	assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))

	_, err = parsing.SingleDigitGrid().Parse("")
	assert.True(t, errors.Is(err, grid.ErrEmptyGrid))

	_, err = parsing.SingleDigitGrid().Parse("12a\n")
	require.Error(t, err)
	var pe *parsing.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Offset)
}

func TestCharacterGrid(t *testing.T) {
	g, err := parsing.CharacterGrid().Parse("#.\n.#\n")
	require.NoError(t, err)
	assert.Equal(t, "#.\n.#", g.String())
	c, ok := g.FirstCell('#')
	require.True(t, ok)
	assert.Equal(t, grid.NewCell(0, 0), c)
}
