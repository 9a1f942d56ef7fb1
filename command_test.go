package svgpath

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestKind(t *testing.T) {
	tests := []struct {
		c        byte
		valid    bool
		arity    int
		relative bool
		moveTo   bool
	}{
		{'M', true, 2, false, true},
		{'m', true, 2, true, true},
		{'Z', true, 0, false, false},
		{'z', true, 0, true, false},
		{'H', true, 1, false, false},
		{'v', true, 1, true, false},
		{'L', true, 2, false, false},
		{'t', true, 2, true, false},
		{'Q', true, 4, false, false},
		{'s', true, 4, true, false},
		{'C', true, 6, false, false},
		{'a', true, 7, true, false},
		{'e', false, 0, false, false},
		{'B', false, 0, false, false},
		{',', false, 0, false, false},
		{0, false, 0, false, false},
	}
	for _, test := range tests {
		k, ok := KindOf(test.c)
		require.Equal(t, test.valid, ok, "KindOf(%q)", test.c)
		require.Equal(t, test.valid, k.Valid(), "%q valid", test.c)
		require.Equal(t, test.arity, k.Arity(), "%q arity", test.c)
		require.Equal(t, test.relative, k.IsRelative(), "%q relative", test.c)
		require.Equal(t, test.moveTo, k.IsMoveTo(), "%q moveto", test.c)
	}
}

func TestKindString(t *testing.T) {
	require.Equal(t, "M", MoveTo.String())
	require.Equal(t, "a", ArcToRel.String())
	require.Equal(t, "z", ClosePathRel.String())
}

func TestCommandGroups(t *testing.T) {
	tests := []struct {
		d    string
		want []int
	}{
		{"M0 0", []int{1}},
		{"M0 0Z", []int{1, 1}},
		{"M0 0H1 2 3", []int{1, 1, 1, 1}},
	}
	for _, test := range tests {
		var got []int
		for _, c := range ParsePathData(test.d) {
			got = append(got, c.Groups())
		}
		require.Equal(t, test.want, got, test.d)
	}

	// merged commands hold several groups
	compact := ParsePathData("M0 0H1 2 3C1 2 3 4 5 6 1 2 3 4 5 6").Compact()
	var got []int
	for _, c := range compact {
		got = append(got, c.Groups())
	}
	require.Equal(t, []int{1, 3, 2}, got)
}
