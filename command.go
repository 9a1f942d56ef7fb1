package svgpath

// Kind is a path data command letter. Upper case letters take absolute
// coordinates, lower case letters relative ones.
type Kind byte

// These are the command letters of the path data grammar.
const (
	ClosePath        Kind = 'Z'
	ClosePathRel     Kind = 'z'
	HLineTo          Kind = 'H'
	HLineToRel       Kind = 'h'
	VLineTo          Kind = 'V'
	VLineToRel       Kind = 'v'
	MoveTo           Kind = 'M'
	MoveToRel        Kind = 'm'
	LineTo           Kind = 'L'
	LineToRel        Kind = 'l'
	SmoothQuadTo     Kind = 'T'
	SmoothQuadToRel  Kind = 't'
	QuadTo           Kind = 'Q'
	QuadToRel        Kind = 'q'
	SmoothCubicTo    Kind = 'S'
	SmoothCubicToRel Kind = 's'
	CubicTo          Kind = 'C'
	CubicToRel       Kind = 'c'
	ArcTo            Kind = 'A'
	ArcToRel         Kind = 'a'
)

// arity holds the number of arguments of one invocation, or -1 for bytes
// which are not command letters.
var arity = func() [256]int8 {
	var t [256]int8
	for i := range t {
		t[i] = -1
	}
	for _, e := range []struct {
		k Kind
		n int8
	}{
		{ClosePath, 0}, {HLineTo, 1}, {VLineTo, 1}, {MoveTo, 2}, {LineTo, 2},
		{SmoothQuadTo, 2}, {QuadTo, 4}, {SmoothCubicTo, 4}, {CubicTo, 6}, {ArcTo, 7},
	} {
		t[e.k] = e.n
		t[e.k|0x20] = e.n
	}
	return t
}()

// KindOf reports whether c is a command letter.
func KindOf(c byte) (Kind, bool) {
	k := Kind(c)
	return k, k.Valid()
}

// Valid reports whether k is one of the command letters.
func (k Kind) Valid() bool {
	return arity[k] >= 0
}

// Arity returns the number of arguments a single invocation of k takes.
// It returns 0 for invalid kinds.
func (k Kind) Arity() int {
	if !k.Valid() {
		return 0
	}
	return int(arity[k])
}

// IsRelative reports whether k takes relative coordinates.
func (k Kind) IsRelative() bool {
	return k.Valid() && 'a' <= k && k <= 'z'
}

// IsMoveTo reports whether k is M or m.
func (k Kind) IsMoveTo() bool {
	return k == MoveTo || k == MoveToRel
}

// lineTo returns the lineto letter with the same coordinate mode as the
// moveto k.
func (k Kind) lineTo() Kind {
	if k == MoveToRel {
		return LineToRel
	}
	return LineTo
}

// moveTo returns the moveto letter with the same coordinate mode as the
// lineto k.
func (k Kind) moveTo() Kind {
	if k == LineToRel {
		return MoveToRel
	}
	return MoveTo
}

func (k Kind) String() string {
	return string(rune(k))
}

// Command is one drawing instruction together with all argument groups that
// were written for it before the next command letter.
type Command struct {
	Kind Kind
	Args []float64
}

// Groups returns the number of argument groups held by c. Commands without
// arguments count as one group.
func (c Command) Groups() int {
	n := c.Kind.Arity()
	if n == 0 {
		return 1
	}
	return len(c.Args) / n
}

// PathData is an ordered sequence of commands.
type PathData []Command
