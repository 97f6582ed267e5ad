package lore

import (
	"fmt"
	"strings"
)

// LineKind identifies the syntactic class of a single input line.
type LineKind int

const (
	LinePlaceHolder LineKind = iota
	LineAtom
	LineComment
	LineLink
	LineDomain
	LineReference
)

// String returns the lowercase kind name used in structured output.
func (k LineKind) String() string {
	switch k {
	case LinePlaceHolder:
		return "placeholder"
	case LineAtom:
		return "atom"
	case LineComment:
		return "comment"
	case LineLink:
		return "link"
	case LineDomain:
		return "domain"
	case LineReference:
		return "reference"
	default:
		return "unknown"
	}
}

// MarshalText implements encoding.TextMarshaler so line kinds encode as
// their names in JSON and YAML.
func (k LineKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Line is one tokenized non-blank input line. Name and Value depend on the
// kind: Atom and Comment carry their text in Name, Link and Reference carry
// a name/value pair, Domain carries only a name.
type Line struct {
	Kind   LineKind `json:"kind" yaml:"kind"`
	Indent int      `json:"indent" yaml:"indent"`
	Name   string   `json:"name,omitempty" yaml:"name,omitempty"`
	Value  string   `json:"value,omitempty" yaml:"value,omitempty"`
}

// ParseLines splits input into lines, discards the all-whitespace ones, and
// tokenizes the rest in order.
func ParseLines(input string) []Line {
	var lines []Line
	for _, raw := range strings.Split(input, "\n") {
		if strings.TrimSpace(raw) == "" {
			continue
		}
		lines = append(lines, ParseLine(raw))
	}
	return lines
}

// ParseLine classifies one raw line. It is total: every input maps to
// exactly one Line and there is no failure case.
//
// Indentation is counted in leading space characters, two per level; odd
// counts round down. Tabs are not treated as indentation.
func ParseLine(raw string) Line {
	rest := strings.TrimLeft(raw, " ")
	indent := (len(raw) - len(rest)) / 2

	if rest == "#" {
		return Line{Kind: LinePlaceHolder, Indent: indent}
	}
	if strings.HasPrefix(rest, "#") && len(rest) > 1 && rest[1] != ' ' {
		return Line{Kind: LineComment, Indent: indent, Name: strings.TrimSpace(rest[1:])}
	}
	// A lone "+" is not a domain; "+ " with nothing after it is a domain
	// with an empty name.
	if strings.HasPrefix(rest, "+") && len(rest) > 1 {
		name := strings.TrimSpace(rest[1:])
		if left, right, ok := strings.Cut(name, ">"); ok {
			return Line{
				Kind:   LineReference,
				Indent: indent,
				Name:   strings.TrimSpace(left),
				Value:  strings.TrimSpace(right),
			}
		}
		return Line{Kind: LineDomain, Indent: indent, Name: name}
	}
	// Only lines that matched none of the prefix rules are candidates for
	// key = value, so a domain name containing "=" is never a link.
	if key, value, ok := strings.Cut(rest, "="); ok {
		return Line{
			Kind:   LineLink,
			Indent: indent,
			Name:   strings.TrimSpace(key),
			Value:  strings.TrimSpace(value),
		}
	}
	return Line{Kind: LineAtom, Indent: indent, Name: strings.TrimSpace(rest)}
}

// String re-serializes the line in source form. Spacing is normalized to
// two spaces per indent level, so ParseLine(l.String()) reproduces l.
func (l Line) String() string {
	pad := strings.Repeat("  ", l.Indent)
	switch l.Kind {
	case LinePlaceHolder:
		return pad + "#"
	case LineComment:
		return pad + "#" + l.Name
	case LineLink:
		return fmt.Sprintf("%s%s = %s", pad, l.Name, l.Value)
	case LineDomain:
		return pad + "+ " + l.Name
	case LineReference:
		return fmt.Sprintf("%s+ %s > %s", pad, l.Name, l.Value)
	default:
		return pad + l.Name
	}
}
