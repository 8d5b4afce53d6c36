// Package callsite finds translation call sites such as I18n.t('key') in
// JS/TS/Vue source and turns their first argument into candidate keys.
package callsite

import (
	"sort"
	"strings"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/finding"
)

// Options selects which calls count as translation calls.
type Options struct {
	// File is recorded in every call's Location.
	File string
	// Namespaces are the receiver identifiers, e.g. "I18n".
	Namespaces []string
	// Methods are the translation method names, e.g. "t" and "translate".
	Methods []string
}

var (
	DefaultNamespaces = []string{"I18n"}
	DefaultMethods    = []string{"t", "translate"}
)

// Call is one translation call site.
type Call struct {
	Location  finding.Location
	Namespace string
	Method    string
	Arg       Arg
	// Comments holds the text of comments inside the call's parentheses
	// and of comments following the call on the same line, in source order.
	Comments []string
}

// Scan returns the translation calls in src in source order. Calls nested
// inside another call's arguments are returned as well. The extension of
// opts.File selects how the file is split into JS: .vue files are read
// through their script blocks and template bindings, .ts files never hold
// JSX markup.
func Scan(src []byte, opts Options) []Call {
	text := string(src)
	namespaces := toSet(opts.Namespaces, DefaultNamespaces)
	methods := toSet(opts.Methods, DefaultMethods)
	lines := lineStarts(text)

	var calls []Call
	for _, r := range regions(text, opts.File) {
		toks := lexRange(text, r.start, r.end, r.jsx)
		calls = append(calls, scanTokens(toks, namespaces, methods, lines, opts.File)...)
	}
	return calls
}

func scanTokens(toks []token, namespaces, methods map[string]bool, lines []int, file string) []Call {
	var calls []Call
	for i := 0; i+3 < len(toks); i++ {
		ns, dot, method, open := toks[i], toks[i+1], toks[i+2], toks[i+3]
		if ns.kind != tokIdent || !namespaces[ns.text] ||
			dot.kind != tokPunct || dot.text != "." ||
			method.kind != tokIdent || !methods[method.text] ||
			open.kind != tokPunct || open.text != "(" {
			continue
		}
		if prev := previous(toks, i); prev != nil && prev.kind == tokPunct && (prev.text == "." || prev.text == "?.") {
			continue
		}

		arg, comments, ok := parseCall(toks, i+3, lines)
		if !ok {
			continue
		}
		line, col := position(lines, ns.off)
		calls = append(calls, Call{
			Location:  finding.Location{File: file, Line: line, Column: col},
			Namespace: ns.text,
			Method:    method.text,
			Arg:       arg,
			Comments:  comments,
		})
	}
	return calls
}

// parseCall reads the argument list opening at toks[open]. It returns the
// first argument's shape and the comments associated with the call.
func parseCall(toks []token, open int, lines []int) (Arg, []string, bool) {
	var first []token
	var comments []string
	depth := 0
	inFirst := true
	closeIdx := -1
	for i := open + 1; i < len(toks) && closeIdx < 0; i++ {
		t := toks[i]
		if t.kind == tokComment {
			comments = append(comments, t.value)
			continue
		}
		if t.kind == tokPunct {
			switch t.text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				if depth == 0 && t.text == ")" {
					closeIdx = i
					continue
				}
				depth--
			case ",":
				if depth == 0 {
					inFirst = false
					continue
				}
			}
		}
		if inFirst {
			first = append(first, t)
		}
	}
	if closeIdx < 0 {
		return nil, nil, false
	}

	closeLine, _ := position(lines, toks[closeIdx].off)
	j := closeIdx + 1
	if j < len(toks) && toks[j].kind == tokPunct && (toks[j].text == ";" || toks[j].text == ",") {
		j++
	}
	for ; j < len(toks) && toks[j].kind == tokComment; j++ {
		if line, _ := position(lines, toks[j].off); line != closeLine {
			break
		}
		comments = append(comments, toks[j].value)
	}

	if len(first) == 0 {
		return Unsupported{}, comments, true
	}
	return classify(first), comments, true
}

func previous(toks []token, i int) *token {
	for j := i - 1; j >= 0; j-- {
		if toks[j].kind != tokComment {
			return &toks[j]
		}
	}
	return nil
}

func toSet(values, defaults []string) map[string]bool {
	if len(values) == 0 {
		values = defaults
	}
	set := make(map[string]bool, len(values))
	for _, v := range values {
		set[strings.TrimSpace(v)] = true
	}
	return set
}

func lineStarts(text string) []int {
	starts := []int{0}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return starts
}

// position converts a byte offset to a 1-based line and column.
func position(starts []int, off int) (int, int) {
	line := sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1
	return line + 1, off - starts[line] + 1
}
