// Package keypattern parses templated translation keys and expands them into
// every concrete key their placeholders allow.
package keypattern

import (
	"strings"
)

// Pattern is a template literal body split into literal text and named
// placeholder slots. Segments always has one more element than Slots:
// Segments[i] precedes Slots[i].
type Pattern struct {
	Segments []string
	Slots    []string
}

// Parse splits the raw body of a template literal (the text between the
// backticks) on its ${...} expressions. Slot names are the trimmed
// expression source text.
func Parse(raw string) Pattern {
	var p Pattern
	var lit strings.Builder
	for i := 0; i < len(raw); {
		switch {
		case raw[i] == '\\' && i+1 < len(raw):
			lit.WriteString(raw[i : i+2])
			i += 2
		case raw[i] == '$' && i+1 < len(raw) && raw[i+1] == '{':
			end, ok := exprEnd(raw, i+2)
			if !ok {
				lit.WriteString(raw[i:])
				i = len(raw)
				continue
			}
			p.Segments = append(p.Segments, lit.String())
			lit.Reset()
			p.Slots = append(p.Slots, strings.TrimSpace(raw[i+2:end]))
			i = end + 1
		default:
			lit.WriteByte(raw[i])
			i++
		}
	}
	p.Segments = append(p.Segments, lit.String())
	return p
}

// IsLiteral reports whether the pattern has no placeholders.
func (p Pattern) IsLiteral() bool {
	return len(p.Slots) == 0
}

// Names returns the distinct slot names in order of first appearance.
func (p Pattern) Names() []string {
	seen := make(map[string]bool, len(p.Slots))
	var names []string
	for _, s := range p.Slots {
		if !seen[s] {
			seen[s] = true
			names = append(names, s)
		}
	}
	return names
}

// String reassembles the template body.
func (p Pattern) String() string {
	return p.render(func(slot string) string { return "${" + slot + "}" })
}

func (p Pattern) render(value func(slot string) string) string {
	var b strings.Builder
	for i, seg := range p.Segments {
		b.WriteString(seg)
		if i < len(p.Slots) {
			b.WriteString(value(p.Slots[i]))
		}
	}
	return b.String()
}

// TemplateEnd returns the index of the backtick closing a template literal
// whose body starts at src[start].
func TemplateEnd(src string, start int) (int, bool) {
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '`':
			return i, true
		case '$':
			if i+1 < len(src) && src[i+1] == '{' {
				end, ok := exprEnd(src, i+2)
				if !ok {
					return 0, false
				}
				i = end
			}
		}
	}
	return 0, false
}

// exprEnd returns the index of the brace closing a ${ expression whose
// text starts at src[start].
func exprEnd(src string, start int) (int, bool) {
	depth := 0
	for i := start; i < len(src); i++ {
		switch c := src[i]; c {
		case '{':
			depth++
		case '}':
			if depth == 0 {
				return i, true
			}
			depth--
		case '\'', '"':
			end, ok := QuoteEnd(src, i+1, c)
			if !ok {
				return 0, false
			}
			i = end
		case '`':
			end, ok := TemplateEnd(src, i+1)
			if !ok {
				return 0, false
			}
			i = end
		}
	}
	return 0, false
}

// QuoteEnd returns the index of the quote closing a string literal whose
// body starts at src[start]. Strings do not span lines.
func QuoteEnd(src string, start int, quote byte) (int, bool) {
	for i := start; i < len(src); i++ {
		switch src[i] {
		case '\\':
			i++
		case '\n':
			return 0, false
		case quote:
			return i, true
		}
	}
	return 0, false
}
