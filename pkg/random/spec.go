package random

import "errors"

// StringType selects the character pool strategy for generated strings.
type StringType int

const (
	// Alphabetic draws from ASCII letters, upper and lower case.
	Alphabetic StringType = iota

	// Alphanumeric draws from ASCII letters and digits.
	Alphanumeric

	// ASCII draws from the full 7-bit range, code points 0-127.
	ASCII

	// Printable draws from ASCII printable characters, code points 32-126.
	Printable

	// Graph draws from ASCII graph characters, code points 33-126
	// (printable excluding space).
	Graph

	// Numeric draws from the digits '0'-'9'.
	Numeric

	// Chars draws from an explicit pool given in StringSpec.Chars.
	// Duplicates are legal and increase sampling weight.
	Chars

	// CharRange draws from the inclusive range
	// [StringSpec.BeginChar, StringSpec.EndChar].
	CharRange

	// CharRanges draws from the union of the inclusive ranges defined
	// pairwise by StringSpec.BeginChars and StringSpec.EndChars.
	CharRanges
)

// String returns the lowercase name of the string type.
func (t StringType) String() string {
	switch t {
	case Alphabetic:
		return "alphabetic"
	case Alphanumeric:
		return "alphanumeric"
	case ASCII:
		return "ascii"
	case Printable:
		return "printable"
	case Graph:
		return "graph"
	case Numeric:
		return "numeric"
	case Chars:
		return "chars"
	case CharRange:
		return "charRange"
	case CharRanges:
		return "charRanges"
	default:
		return "unknown"
	}
}

// IntSpec configures a stream of random ints in [Min, Max] inclusive.
type IntSpec struct {
	Min, Max    int
	Cardinality Cardinality
	Security    Security

	// Source, when non-nil, overrides Security with an explicit source.
	// Intended for seeded, deterministic tests.
	Source Source
}

// Int64Spec configures a stream of random int64s in [Min, Max] inclusive.
type Int64Spec struct {
	Min, Max    int64
	Cardinality Cardinality
	Security    Security

	// Source, when non-nil, overrides Security with an explicit source.
	Source Source
}

// StringSpec configures a stream of random strings. Every produced string
// has a body length uniform in [MinLength, MaxLength], each character drawn
// independently from the pool selected by Type, wrapped as Prefix+body+Suffix.
type StringSpec struct {
	MinLength, MaxLength int
	Type                 StringType

	// Chars is the explicit pool, used only when Type is Chars.
	Chars []rune

	// BeginChar and EndChar bound the pool when Type is CharRange.
	BeginChar, EndChar rune

	// BeginChars and EndChars bound the pools when Type is CharRanges.
	// They must have the same length.
	BeginChars, EndChars []rune

	Prefix, Suffix string

	Cardinality Cardinality
	Security    Security

	// Source, when non-nil, overrides Security with an explicit source.
	Source Source
}

func (c Cardinality) validate() error {
	switch c.Strategy {
	case Fixed:
		if c.Count <= 0 {
			return errors.New("count must be greater than zero")
		}
	case Random:
		if c.MinCount <= 0 || c.MaxCount < c.MinCount {
			return errors.New("minCount must be greater than zero, and maxCount must be greater or equal to minCount")
		}
	default:
		return errors.New("count strategy must be Fixed or Random")
	}
	return nil
}

func (s IntSpec) validate() error {
	if s.Min > s.Max {
		return errors.New("min must be equal or less than max")
	}
	return s.Cardinality.validate()
}

func (s Int64Spec) validate() error {
	if s.Min > s.Max {
		return errors.New("min must be equal or less than max")
	}
	return s.Cardinality.validate()
}

func (s StringSpec) validate() error {
	if s.MinLength < 0 {
		return errors.New("minLength must be equal or greater than zero")
	}
	if s.MinLength > s.MaxLength {
		return errors.New("minLength must be equal or less than maxLength")
	}
	switch s.Type {
	case Alphabetic, Alphanumeric, ASCII, Printable, Graph, Numeric:
	case Chars:
		if len(s.Chars) == 0 {
			return errors.New("chars must have at least one character")
		}
	case CharRange:
		if s.EndChar <= s.BeginChar {
			return errors.New("endChar must be higher than beginChar")
		}
	case CharRanges:
		if len(s.BeginChars) != len(s.EndChars) {
			return errors.New("beginChars and endChars must have the same length")
		}
		if len(s.BeginChars) == 0 {
			return errors.New("beginChars must have at least one range")
		}
		for i := range s.BeginChars {
			if s.EndChars[i] <= s.BeginChars[i] {
				return errors.New("endChar must be higher than beginChar")
			}
		}
	default:
		return errors.New("unknown string type")
	}
	return s.Cardinality.validate()
}

func (s IntSpec) source() Source {
	if s.Source != nil {
		return s.Source
	}
	return NewSource(s.Security)
}

func (s Int64Spec) source() Source {
	if s.Source != nil {
		return s.Source
	}
	return NewSource(s.Security)
}

func (s StringSpec) source() Source {
	if s.Source != nil {
		return s.Source
	}
	return NewSource(s.Security)
}
