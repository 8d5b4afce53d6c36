package callsite

import (
	"strings"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
)

// Arg is the syntactic shape of a call site's first argument.
type Arg interface {
	isArg()
}

// Literal is a plain string or numeric literal. Numbers hold the string JS
// would convert them to.
type Literal struct {
	Value string
}

// Template is a template literal, possibly with placeholders.
type Template struct {
	Pattern keypattern.Pattern
}

// Conditional is a ternary whose branches are checked independently.
type Conditional struct {
	Consequent Arg
	Alternate  Arg
}

// Unsupported is any other expression. It cannot be checked statically.
type Unsupported struct {
	Text string
}

func (Literal) isArg()     {}
func (Template) isArg()    {}
func (Conditional) isArg() {}
func (Unsupported) isArg() {}

// assignmentOps end the expression to the left of a ternary; "=>" starts an
// arrow function body.
var assignmentOps = map[string]bool{
	"=": true, "+=": true, "-=": true, "*=": true, "/=": true, "%=": true, "**=": true,
	"<<=": true, ">>=": true, ">>>=": true, "&=": true, "|=": true, "^=": true,
	"&&=": true, "||=": true, "??=": true, "=>": true,
}

// classify determines the shape of an expression given its tokens, with
// comments already removed.
func classify(toks []token) Arg {
	toks = unwrapParens(toks)
	if len(toks) == 1 {
		switch toks[0].kind {
		case tokString:
			return Literal{Value: toks[0].value}
		case tokNumber:
			return Literal{Value: numberKey(toks[0].text)}
		case tokTemplate:
			return Template{Pattern: keypattern.Parse(toks[0].value)}
		}
	}
	if q, colon, ok := splitTernary(toks); ok {
		return Conditional{
			Consequent: branch(toks[q+1 : colon]),
			Alternate:  branch(toks[colon+1:]),
		}
	}
	return Unsupported{Text: joinText(toks)}
}

// branch accepts only a literal or a template; anything else, nested
// ternaries included, is unsupported.
func branch(toks []token) Arg {
	switch arg := classify(toks).(type) {
	case Literal, Template:
		return arg
	default:
		return Unsupported{Text: joinText(toks)}
	}
}

// splitTernary finds the top-level "?" and its matching ":".
func splitTernary(toks []token) (q, colon int, ok bool) {
	q = -1
	depth, nested := 0, 0
	for i, t := range toks {
		if t.kind != tokPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			depth++
		case ")", "]", "}":
			depth--
		}
		if depth != 0 {
			continue
		}
		switch {
		case q < 0 && assignmentOps[t.text]:
			return 0, 0, false
		case t.text == "?" && q < 0:
			q = i
		case t.text == "?":
			nested++
		case t.text == ":" && q >= 0 && nested > 0:
			nested--
		case t.text == ":" && q >= 0:
			return q, i, q > 0
		}
	}
	return 0, 0, false
}

// unwrapParens strips parentheses enclosing the whole expression.
func unwrapParens(toks []token) []token {
	for len(toks) >= 2 && toks[0].text == "(" && toks[len(toks)-1].text == ")" && toks[0].kind == tokPunct {
		depth := 0
		closes := -1
		for i, t := range toks {
			if t.kind != tokPunct {
				continue
			}
			switch t.text {
			case "(", "[", "{":
				depth++
			case ")", "]", "}":
				depth--
			}
			if depth == 0 {
				closes = i
				break
			}
		}
		if closes != len(toks)-1 {
			return toks
		}
		toks = toks[1 : len(toks)-1]
	}
	return toks
}

func joinText(toks []token) string {
	parts := make([]string, len(toks))
	for i, t := range toks {
		parts[i] = t.text
	}
	return strings.Join(parts, " ")
}
