package random

// pool resolves the concrete character pool for the spec's string type.
// Call only after validation; every validated spec resolves to a non-empty
// pool.
func (s StringSpec) pool() []rune {
	switch s.Type {
	case Alphabetic:
		return concatRanges('A', 'Z', 'a', 'z')
	case Alphanumeric:
		return concatRanges('A', 'Z', 'a', 'z', '0', '9')
	case ASCII:
		return runeRange(0, 127)
	case Printable:
		return runeRange(32, 126)
	case Graph:
		return runeRange(33, 126)
	case Numeric:
		return runeRange('0', '9')
	case Chars:
		return s.Chars
	case CharRange:
		return runeRange(s.BeginChar, s.EndChar)
	case CharRanges:
		var pool []rune
		for i := range s.BeginChars {
			pool = append(pool, runeRange(s.BeginChars[i], s.EndChars[i])...)
		}
		return pool
	default:
		return nil
	}
}

// runeRange returns every rune from begin to end inclusive.
func runeRange(begin, end rune) []rune {
	pool := make([]rune, 0, end-begin+1)
	for r := begin; r <= end; r++ {
		pool = append(pool, r)
	}
	return pool
}

// concatRanges unions consecutive begin/end pairs into one pool.
func concatRanges(pairs ...rune) []rune {
	var pool []rune
	for i := 0; i < len(pairs); i += 2 {
		pool = append(pool, runeRange(pairs[i], pairs[i+1])...)
	}
	return pool
}
