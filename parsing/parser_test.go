package parsing_test

import (
	"errors"
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/puzzlekit/parsing"
)

func TestLiteral(t *testing.T) {
	v, rest, err := parsing.Literal("ab")("abc")
	require.NoError(t, err)
	assert.Equal(t, "ab", v)
	assert.Equal(t, "c", rest)

	_, _, err = parsing.Literal("x")("abc")
	assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))
}

func TestPrefix(t *testing.T) {
	v, rest, err := parsing.Prefix(unicode.IsLetter)("héllo world")
	require.NoError(t, err)
	assert.Equal(t, "héllo", v)
	assert.Equal(t, " world", rest)

	v, rest, err = parsing.Prefix(unicode.IsDigit)("abc")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "abc", rest)
}

func TestDigits(t *testing.T) {
	cases := []struct {
		name   string
		n      int
		in     string
		want   int
		rest   string
		failed bool
	}{
		{"OneOrMore", 0, "123abc", 123, "abc", false},
		{"ExactlyOne", 1, "123", 1, "23", false},
		{"ExactlyTwo", 2, "123", 12, "3", false},
		{"TooFew", 3, "12a", 0, "", true},
		{"None", 0, "abc", 0, "", true},
		{"NoSign", 0, "-1", 0, "", true},
		{"Overflow", 0, "99999999999999999999999", 0, "", true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			v, rest, err := parsing.Digits(tc.n)(tc.in)
			if tc.failed {
				assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, v)
			assert.Equal(t, tc.rest, rest)
		})
	}
}

func TestInt(t *testing.T) {
	for in, want := range map[string]int{"42": 42, "-7": -7, "+3": 3, "0": 0} {
		v, err := parsing.Int().Parse(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v, in)
	}
	for _, in := range []string{"", "-", "+x", "x1"} {
		_, err := parsing.Int().Parse(in)
		assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput), in)
	}
}

func TestEnd(t *testing.T) {
	_, _, err := parsing.End()("")
	assert.NoError(t, err)
	_, _, err = parsing.End()("x")
	assert.Error(t, err)
}

//----------------------------------------------------------------------------//
// Combinators
//----------------------------------------------------------------------------//

func TestPair(t *testing.T) {
	p := parsing.Pair(parsing.Int(), " -> ", parsing.Prefix(unicode.IsLetter))
	v, err := p.Parse("12 -> abc")
	require.NoError(t, err)
	assert.Equal(t, parsing.Tuple[int, string]{First: 12, Second: "abc"}, v)

	_, err = p.Parse("12 => abc")
	require.Error(t, err)
	var pe *parsing.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Offset)
}

func TestMany(t *testing.T) {
	p := parsing.Many(parsing.Int(), ",")
	v, rest, err := p("1,2,3;4")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, v)
	assert.Equal(t, ";4", rest)

	// a dangling separator is left for the caller
	v, rest, err = p("1,2,")
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, v)
	assert.Equal(t, ",", rest)

	v, rest, err = p("x")
	require.NoError(t, err)
	assert.Empty(t, v)
	assert.Equal(t, "x", rest)
}

func TestManyUntilEnd_ErrorPointsAtBadElement(t *testing.T) {
	p := parsing.ManyUntilEnd(parsing.NumberPair(","), "\n")
	_, err := p.Parse("1,2\n3,x")
	require.Error(t, err)
	var pe *parsing.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 6, pe.Offset)
	assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))
}

func TestParse_TrailingInput(t *testing.T) {
	_, err := parsing.Int().Parse("12abc")
	require.Error(t, err)
	assert.True(t, errors.Is(err, parsing.ErrTrailingInput))
	var pe *parsing.Error
	require.True(t, errors.As(err, &pe))
	assert.Equal(t, 2, pe.Offset)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestTryMap(t *testing.T) {
	errOdd := errors.New("odd")
	even := parsing.TryMap(parsing.Int(), func(v int) (int, error) {
		if v%2 != 0 {
			return 0, errOdd
		}
		return v / 2, nil
	})
	v, err := even.Parse("8")
	require.NoError(t, err)
	assert.Equal(t, 4, v)

	_, err = even.Parse("7")
	assert.True(t, errors.Is(err, errOdd))
	assert.True(t, errors.Is(err, parsing.ErrUnexpectedInput))
}

func TestMust(t *testing.T) {
	assert.Equal(t, []string{"a", "b"}, parsing.Must(parsing.Lines("a\nb")))
	assert.Panics(t, func() { parsing.Must(parsing.Int().Parse("x")) })
}
