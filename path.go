// Package svgpath parses SVG path data and writes it back in its shortest
// equivalent form.
package svgpath

// argReader reads one argument at s[i], returning its value and the number of
// bytes consumed, or n == 0 when s[i] does not start a valid argument.
type argReader func(s string, i int) (float64, int)

// arcArgs reads the seven arguments of an arc, by position: rx and ry must
// not start with a sign, the two flags are a single 0 or 1 digit.
var arcArgs = [7]argReader{
	readUnsigned,
	readUnsigned,
	readNumber,
	readFlag,
	readFlag,
	readNumber,
	readNumber,
}

func readUnsigned(s string, i int) (float64, int) {
	if s[i] == '+' || s[i] == '-' {
		return 0, 0
	}
	return readNumber(s, i)
}

func readFlag(s string, i int) (float64, int) {
	switch s[i] {
	case '0':
		return 0, 1
	case '1':
		return 1, 1
	}
	return 0, 0
}

func isWsp(c byte) bool {
	return c == ' ' || c == '\t' || c == '\r' || c == '\n'
}

type pathDataParser struct {
	data    PathData
	command Kind // zero until the first command letter
	args    []float64
	arity   int

	canHaveComma bool
	hadComma     bool
}

// ParsePathData parses the path data in s. Parsing stops at the first
// malformed token and the commands read so far are returned; an incomplete
// trailing command is dropped. Data not starting with a moveto yields an
// empty result.
func ParsePathData(s string) PathData {
	var p pathDataParser
	p.parse(s)
	return p.data
}

func (p *pathDataParser) parse(s string) {
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case isWsp(c):
			i++
		case c == ',' && p.canHaveComma:
			if p.hadComma {
				return
			}
			p.hadComma = true
			i++
		default:
			if k, ok := KindOf(c); ok {
				if !p.setCommand(k) {
					return
				}
				i++
				continue
			}
			n := p.readArg(s, i)
			if n == 0 {
				return
			}
			i += n
		}
	}
}

// setCommand switches to the command k. It returns false if a command letter
// is not allowed at this point.
func (p *pathDataParser) setCommand(k Kind) bool {
	if p.hadComma {
		return false
	}
	if len(p.data) == 0 {
		// until the first moveto group is flushed only a moveto may follow
		if !k.IsMoveTo() || len(p.args) != 0 {
			return false
		}
	} else if len(p.args) != 0 {
		return false
	}
	p.command = k
	p.args = nil
	p.arity = k.Arity()
	p.canHaveComma = false
	if p.arity == 0 {
		p.data = append(p.data, Command{Kind: k})
	}
	return true
}

// readArg reads the next argument of the current command at s[i] and
// returns the number of bytes consumed, 0 on failure.
func (p *pathDataParser) readArg(s string, i int) int {
	if p.command == 0 || p.arity == 0 {
		return 0
	}
	read := readNumber
	if p.command == ArcTo || p.command == ArcToRel {
		read = arcArgs[len(p.args)]
	}
	v, n := read(s, i)
	if n == 0 {
		return 0
	}
	p.args = append(p.args, v)
	p.canHaveComma = true
	p.hadComma = false
	if len(p.args) == p.arity {
		p.data = append(p.data, Command{Kind: p.command, Args: p.args})
		if p.command.IsMoveTo() {
			p.command = p.command.lineTo()
		}
		p.args = nil
	}
	return n
}
