package svgpath

import "strings"

// Compact returns the shortest equivalent command sequence: a leading
// relative moveto becomes absolute, consecutive commands of the same kind
// are merged, and a lineto directly after a moveto is folded into it.
// Moveto commands are never merged with each other. pd is not modified.
func (pd PathData) Compact() PathData {
	out := make(PathData, 0, len(pd))
	for i, c := range pd {
		if i == 0 {
			if c.Kind == MoveToRel {
				c.Kind = MoveTo
			}
			out = append(out, Command{Kind: c.Kind, Args: cloneArgs(c.Args)})
			continue
		}
		last := &out[len(out)-1]
		if i == 1 && last.Kind.IsMoveTo() && (c.Kind == LineTo || c.Kind == LineToRel) {
			// a lone first moveto may take either coordinate mode
			last.Kind = c.Kind.moveTo()
		}
		if mergeable(last.Kind, c.Kind) {
			last.Args = append(last.Args, c.Args...)
			continue
		}
		out = append(out, Command{Kind: c.Kind, Args: cloneArgs(c.Args)})
	}
	return out
}

func mergeable(last, next Kind) bool {
	if last == next {
		return !last.IsMoveTo()
	}
	return last.IsMoveTo() && next == last.lineTo()
}

func cloneArgs(args []float64) []float64 {
	if args == nil {
		return nil
	}
	return append([]float64(nil), args...)
}

// String returns the shortest path data string equivalent to pd.
func (pd PathData) String() string {
	var b strings.Builder
	for _, c := range pd.Compact() {
		b.WriteByte(byte(c.Kind))
		writeArgs(&b, c.Args)
	}
	return b.String()
}

// writeArgs writes the formatted arguments, leaving out every separator the
// grammar does not need: before a minus sign, and before a leading point
// when the previous number already has one.
func writeArgs(b *strings.Builder, args []float64) {
	var prev string
	for i, v := range args {
		s := FormatNumber(v)
		switch {
		case i == 0, s[0] == '-':
		case s[0] == '.' && strings.Contains(prev, "."):
		default:
			b.WriteByte(' ')
		}
		b.WriteString(s)
		prev = s
	}
}
