package svgpath

import "strconv"

// numberState is the position of the number scanner inside a numeric literal.
type numberState int

// States of the number scanner, in the order a literal passes through them.
const (
	stateNone numberState = iota
	stateSign
	stateWhole
	stateDecimalPoint
	stateDecimal
	stateE
	stateExponentSign
	stateExponent

	stateStop // not a state, marks a missing transition
)

// charClass groups the characters that can extend a numeric literal.
type charClass int

const (
	classSign charClass = iota
	classDigit
	classPoint
	classExp
	classOther
)

func classify(c byte) charClass {
	switch {
	case c == '+' || c == '-':
		return classSign
	case '0' <= c && c <= '9':
		return classDigit
	case c == '.':
		return classPoint
	case c == 'e' || c == 'E':
		return classExp
	}
	return classOther
}

// numberTransitions is indexed by [state][class].
var numberTransitions = [...][5]numberState{
	//                  sign               digit          point              exp     other
	stateNone:         {stateSign, stateWhole, stateDecimalPoint, stateStop, stateStop},
	stateSign:         {stateStop, stateWhole, stateDecimalPoint, stateStop, stateStop},
	stateWhole:        {stateStop, stateWhole, stateDecimalPoint, stateE, stateStop},
	stateDecimalPoint: {stateStop, stateDecimal, stateStop, stateE, stateStop},
	stateDecimal:      {stateStop, stateDecimal, stateStop, stateE, stateStop},
	stateE:            {stateExponentSign, stateExponent, stateStop, stateStop, stateStop},
	stateExponentSign: {stateStop, stateExponent, stateStop, stateStop, stateStop},
	stateExponent:     {stateStop, stateExponent, stateStop, stateStop, stateStop},
}

// scanNumber returns the length of the longest prefix of s that the number
// grammar accepts, sign? digit* ('.' digit*)? ([eE] sign? digit+)?, without
// checking that the prefix denotes a value.
func scanNumber(s string) int {
	state := stateNone
	i := 0
	for ; i < len(s); i++ {
		next := numberTransitions[state][classify(s[i])]
		if next == stateStop {
			break
		}
		state = next
	}
	return i
}

// readNumber reads the numeric literal starting at s[start]. It returns the
// value and the number of bytes consumed, or n == 0 if there is no valid
// number at start.
func readNumber(s string, start int) (float64, int) {
	n := scanNumber(s[start:])
	if n == 0 {
		return 0, 0
	}
	f, err := strconv.ParseFloat(s[start:start+n], 64)
	if err != nil {
		// a bare sign or point, an exponent without digits, or out of range
		return 0, 0
	}
	return f, n
}
