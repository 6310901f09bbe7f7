// Package specfile loads random-generation specs from YAML documents.
//
// A document picks one value kind and carries the bounds, character pool
// strategy, cardinality, and security level for it:
//
//	kind: string
//	minLength: 3
//	maxLength: 8
//	type: alphanumeric
//	prefix: user-
//	count: 10
//	security: insecure
//
// Documents map onto the specs in pkg/random; semantic validation stays in
// that package and happens when a stream is created.
package specfile

import (
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/nomagicln/randkit/pkg/random"
)

// Document is the YAML representation of one generation spec.
type Document struct {
	// Kind selects the value kind: "int", "int64" or "string".
	Kind string `yaml:"kind"`

	// Min and Max bound numeric kinds (inclusive).
	Min int64 `yaml:"min"`
	Max int64 `yaml:"max"`

	// MinLength and MaxLength bound string bodies (inclusive).
	MinLength int `yaml:"minLength"`
	MaxLength int `yaml:"maxLength"`

	// Type names the character pool strategy for strings. Defaults to
	// "alphabetic". See ParseStringType for the recognized names.
	Type string `yaml:"type"`

	// Chars is the explicit pool for type "chars".
	Chars string `yaml:"chars"`

	// BeginChar/EndChar bound a "charRange" pool; each must be one rune.
	BeginChar string `yaml:"beginChar"`
	EndChar   string `yaml:"endChar"`

	// BeginChars/EndChars bound "charRanges" pools, paired by position.
	BeginChars string `yaml:"beginChars"`
	EndChars   string `yaml:"endChars"`

	Prefix string `yaml:"prefix"`
	Suffix string `yaml:"suffix"`

	// Count fixes the stream length. When MinCount/MaxCount are set the
	// length is drawn from that range instead. If nothing is set the
	// stream yields one value.
	Count    int `yaml:"count"`
	MinCount int `yaml:"minCount"`
	MaxCount int `yaml:"maxCount"`

	// Security is "insecure" (default) or "secure".
	Security string `yaml:"security"`
}

// Load reads and parses a spec document from path.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read spec file '%s': %w", path, err)
	}

	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse spec file '%s': %w", path, err)
	}

	return &doc, nil
}

// ParseStringType maps a document type name to a pool strategy.
func ParseStringType(name string) (random.StringType, error) {
	switch name {
	case "", "alphabetic":
		return random.Alphabetic, nil
	case "alphanumeric":
		return random.Alphanumeric, nil
	case "ascii":
		return random.ASCII, nil
	case "printable":
		return random.Printable, nil
	case "graph":
		return random.Graph, nil
	case "numeric":
		return random.Numeric, nil
	case "chars":
		return random.Chars, nil
	case "charRange":
		return random.CharRange, nil
	case "charRanges":
		return random.CharRanges, nil
	default:
		return 0, fmt.Errorf("unknown string type '%s'", name)
	}
}

// ParseSecurity maps a document security name to a security level.
func ParseSecurity(name string) (random.Security, error) {
	switch name {
	case "", "insecure":
		return random.Insecure, nil
	case "secure":
		return random.Secure, nil
	default:
		return 0, fmt.Errorf("unknown security level '%s'", name)
	}
}

// Cardinality maps the document count fields to a cardinality. An unset
// document defaults to a single value.
func (d *Document) Cardinality() random.Cardinality {
	if d.MinCount != 0 || d.MaxCount != 0 {
		return random.Between(d.MinCount, d.MaxCount)
	}
	if d.Count == 0 {
		return random.Exactly(1)
	}
	return random.Exactly(d.Count)
}

// IntSpec converts the document to an int spec. Valid only for kind "int".
func (d *Document) IntSpec() (random.IntSpec, error) {
	if d.Kind != "int" {
		return random.IntSpec{}, fmt.Errorf("document kind is '%s', not 'int'", d.Kind)
	}
	security, err := ParseSecurity(d.Security)
	if err != nil {
		return random.IntSpec{}, err
	}
	return random.IntSpec{
		Min:         int(d.Min),
		Max:         int(d.Max),
		Cardinality: d.Cardinality(),
		Security:    security,
	}, nil
}

// Int64Spec converts the document to an int64 spec. Valid only for kind "int64".
func (d *Document) Int64Spec() (random.Int64Spec, error) {
	if d.Kind != "int64" {
		return random.Int64Spec{}, fmt.Errorf("document kind is '%s', not 'int64'", d.Kind)
	}
	security, err := ParseSecurity(d.Security)
	if err != nil {
		return random.Int64Spec{}, err
	}
	return random.Int64Spec{
		Min:         d.Min,
		Max:         d.Max,
		Cardinality: d.Cardinality(),
		Security:    security,
	}, nil
}

// StringSpec converts the document to a string spec. Valid only for kind "string".
func (d *Document) StringSpec() (random.StringSpec, error) {
	if d.Kind != "string" {
		return random.StringSpec{}, fmt.Errorf("document kind is '%s', not 'string'", d.Kind)
	}
	stringType, err := ParseStringType(d.Type)
	if err != nil {
		return random.StringSpec{}, err
	}
	security, err := ParseSecurity(d.Security)
	if err != nil {
		return random.StringSpec{}, err
	}

	spec := random.StringSpec{
		MinLength:   d.MinLength,
		MaxLength:   d.MaxLength,
		Type:        stringType,
		Prefix:      d.Prefix,
		Suffix:      d.Suffix,
		Cardinality: d.Cardinality(),
		Security:    security,
	}

	switch stringType {
	case random.Chars:
		spec.Chars = []rune(d.Chars)
	case random.CharRange:
		spec.BeginChar, err = singleRune("beginChar", d.BeginChar)
		if err != nil {
			return random.StringSpec{}, err
		}
		spec.EndChar, err = singleRune("endChar", d.EndChar)
		if err != nil {
			return random.StringSpec{}, err
		}
	case random.CharRanges:
		spec.BeginChars = []rune(d.BeginChars)
		spec.EndChars = []rune(d.EndChars)
	}

	return spec, nil
}

func singleRune(field, value string) (rune, error) {
	r, size := utf8.DecodeRuneInString(value)
	if value == "" || size != len(value) || r == utf8.RuneError {
		return 0, fmt.Errorf("%s must be exactly one character, got '%s'", field, value)
	}
	return r, nil
}
