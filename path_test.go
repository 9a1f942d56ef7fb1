package svgpath

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
)

type PathTest struct {
	Description string
	D           string
	Want        PathData
}

var parseTests = []PathTest{
	{
		"empty",
		"",
		nil,
	},
	{
		"whitespace only",
		" \t\r\n",
		nil,
	},
	{
		"single moveto",
		"M10,20",
		PathData{{MoveTo, []float64{10, 20}}},
	},
	{
		"relative moveto",
		"m1 2",
		PathData{{MoveToRel, []float64{1, 2}}},
	},
	{
		"implicit lineto after moveto",
		"M0,0,1,1,2,2",
		PathData{
			{MoveTo, []float64{0, 0}},
			{LineTo, []float64{1, 1}},
			{LineTo, []float64{2, 2}},
		},
	},
	{
		"implicit relative lineto after relative moveto",
		"m0 0 1 1",
		PathData{
			{MoveToRel, []float64{0, 0}},
			{LineToRel, []float64{1, 1}},
		},
	},
	{
		"explicit lineto",
		"M 0 0 L 1 1 L 2 2",
		PathData{
			{MoveTo, []float64{0, 0}},
			{LineTo, []float64{1, 1}},
			{LineTo, []float64{2, 2}},
		},
	},
	{
		"close path",
		"M0,0 Z",
		PathData{
			{MoveTo, []float64{0, 0}},
			{ClosePath, nil},
		},
	},
	{
		"repeated argument groups are split",
		"M0 0H1 2 3",
		PathData{
			{MoveTo, []float64{0, 0}},
			{HLineTo, []float64{1}},
			{HLineTo, []float64{2}},
			{HLineTo, []float64{3}},
		},
	},
	{
		"numbers without separators",
		"M.5.5-1-1e2",
		PathData{
			{MoveTo, []float64{0.5, 0.5}},
			{LineTo, []float64{-1, -100}},
		},
	},
	{
		"all commands",
		"M1 1L2 2H3V4C1 2 3 4 5 6S1 2 3 4Q1 2 3 4T5 6A1 2 3 0 1 4 5z",
		PathData{
			{MoveTo, []float64{1, 1}},
			{LineTo, []float64{2, 2}},
			{HLineTo, []float64{3}},
			{VLineTo, []float64{4}},
			{CubicTo, []float64{1, 2, 3, 4, 5, 6}},
			{SmoothCubicTo, []float64{1, 2, 3, 4}},
			{QuadTo, []float64{1, 2, 3, 4}},
			{SmoothQuadTo, []float64{5, 6}},
			{ArcTo, []float64{1, 2, 3, 0, 1, 4, 5}},
			{ClosePathRel, nil},
		},
	},
	{
		"arc flags without separators",
		"M0 0a5 5 0 1110 10",
		PathData{
			{MoveTo, []float64{0, 0}},
			{ArcToRel, []float64{5, 5, 0, 1, 1, 10, 10}},
		},
	},
	{
		"arc radius starting with a point",
		"M0 0A.5.5 0 0 0 1 1",
		PathData{
			{MoveTo, []float64{0, 0}},
			{ArcTo, []float64{0.5, 0.5, 0, 0, 0, 1, 1}},
		},
	},
	{
		"arc with negative rotation and end point",
		"M0 0A1 1-30 0 1-5-5",
		PathData{
			{MoveTo, []float64{0, 0}},
			{ArcTo, []float64{1, 1, -30, 0, 1, -5, -5}},
		},
	},
	{
		"invalid arc flag",
		"M0,0A5,5,0,2,1,10,10",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"signed arc radius",
		"M0,0A-5,5,0,0,1,10,10",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"signed second arc radius",
		"M0,0A5,+5,0,0,1,10,10",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"no leading moveto",
		"L10,10",
		nil,
	},
	{
		"lineto directly after moveto letter",
		"ML1 1",
		nil,
	},
	{
		"close path directly after moveto letter",
		"MZ",
		nil,
	},
	{
		"curve directly after relative moveto letter",
		"mC1 2 3 4 5 6",
		nil,
	},
	{
		"repeated moveto letter",
		"M m1 2",
		PathData{{MoveToRel, []float64{1, 2}}},
	},
	{
		"moveto letter with pending argument",
		"M1 M2 3",
		nil,
	},
	{
		"leading number",
		"10 M0 0",
		nil,
	},
	{
		"leading comma",
		",M0 0",
		nil,
	},
	{
		"incomplete trailing command",
		"M0 0L1",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"command letter while arguments are pending",
		"M0 0C1 2 3L4 5",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"double comma",
		"M0 0,,1 1",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"comma before command",
		"M0 0,L1 1",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"comma directly after command letter",
		"M0 0L,1 1",
		PathData{{MoveTo, []float64{0, 0}}},
	},
	{
		"comma between command groups",
		"M0 0,1 1",
		PathData{
			{MoveTo, []float64{0, 0}},
			{LineTo, []float64{1, 1}},
		},
	},
	{
		"arguments after close path",
		"M0 0Z1 1",
		PathData{
			{MoveTo, []float64{0, 0}},
			{ClosePath, nil},
		},
	},
	{
		"garbage character",
		"M0 0L1 1#L2 2",
		PathData{
			{MoveTo, []float64{0, 0}},
			{LineTo, []float64{1, 1}},
		},
	},
	{
		"exponent without digits",
		"M1e 2",
		nil,
	},
	{
		"lone sign",
		"M0 0L- 1",
		PathData{{MoveTo, []float64{0, 0}}},
	},
}

func TestParsePathData(t *testing.T) {
	for _, test := range parseTests {
		got := ParsePathData(test.D)
		require.Equal(t, test.Want, got, test.Description)
	}
}

func TestParsePathDataArity(t *testing.T) {
	for _, test := range parseTests {
		for _, c := range ParsePathData(test.D) {
			n := c.Kind.Arity()
			if n == 0 {
				require.Empty(t, c.Args, test.Description)
				continue
			}
			require.Zero(t, len(c.Args)%n, "%s: %c has %d arguments", test.Description, c.Kind, len(c.Args))
		}
	}
}

func TestParsePathDataLeadingMoveTo(t *testing.T) {
	for _, test := range parseTests {
		pd := ParsePathData(test.D)
		if len(pd) > 0 {
			require.True(t, pd[0].Kind.IsMoveTo(), test.Description)
		}
	}
}

func TestParsePathDataImplicitLineTo(t *testing.T) {
	require.Equal(t, ParsePathData("M 0 0 L 1 1 L 2 2"), ParsePathData("M0,0,1,1,2,2"))
}

func TestParsePathDataArgsNotShared(t *testing.T) {
	pd := ParsePathData("M0 0 1 1 2 2")
	require.Len(t, pd, 3)
	pd[1].Args[0] = 42
	require.Equal(t, []float64{2, 2}, pd[2].Args)
}

// randomPathData returns n strings made of command letters, number material
// and separators, each starting with a moveto letter.
func randomPathData(seed int64, n int) []string {
	const alphabet = "MmZzHhVvLlTtQqSsCcAa0123456789.-+eE,  \t"
	rnd := rand.New(rand.NewSource(seed))
	out := make([]string, 0, n)
	for i := 0; i < n; i++ {
		b := []byte{"Mm"[rnd.Intn(2)]}
		for j := rnd.Intn(24); j > 0; j-- {
			b = append(b, alphabet[rnd.Intn(len(alphabet))])
		}
		out = append(out, string(b))
	}
	return out
}

func TestParsePathDataLeadingMoveToGenerated(t *testing.T) {
	for _, s := range randomPathData(1, 20000) {
		pd := ParsePathData(s)
		if len(pd) > 0 {
			require.True(t, pd[0].Kind.IsMoveTo(), "first command of %q is %c", s, pd[0].Kind)
		}
		for _, c := range pd {
			if n := c.Kind.Arity(); n > 0 {
				require.Zero(t, len(c.Args)%n, "%q: %c has %d arguments", s, c.Kind, len(c.Args))
			}
		}
	}
}
