package callsite

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/rancher-sandbox/rancher-desktop/src/go/i18n-keycheck/keypattern"
)

type tokenKind int

const (
	tokIdent tokenKind = iota
	tokString
	tokTemplate
	tokNumber
	tokPunct
	tokComment
	tokRegex
)

// token is one lexical element of JS/TS source. For strings value is the
// decoded text, for templates the raw body, for comments the text between
// the delimiters.
type token struct {
	kind  tokenKind
	text  string
	value string
	off   int
}

// Longest operators first.
var operators = []string{
	">>>=", "...", "===", "!==", "**=", "<<=", ">>=", ">>>", "&&=", "||=", "??=",
	"=>", "==", "!=", "<=", ">=", "&&", "||", "??", "++", "--", "+=", "-=", "*=",
	"/=", "%=", "&=", "|=", "^=", "**", "<<", ">>",
}

// exprKeywords are identifiers after which an expression, not an operator,
// comes next.
var exprKeywords = map[string]bool{
	"return": true, "typeof": true, "case": true, "do": true, "else": true,
	"in": true, "of": true, "instanceof": true, "new": true, "delete": true,
	"void": true, "throw": true, "yield": true, "await": true,
}

// lexer splits JS/TS source into tokens. It only needs to be good enough to
// find call sites: an unterminated string or template swallows the rest of
// the line or file.
type lexer struct {
	src  string
	pos  int
	jsx  bool
	toks []token
}

// lexRange tokenizes src[start:end]. Offsets stay relative to src. With jsx
// set, markup in expression position is skipped and only the JS inside its
// {...} containers is tokenized.
func lexRange(src string, start, end int, jsx bool) []token {
	l := &lexer{src: src[:end], pos: start, jsx: jsx}
	l.run(false)
	return l.toks
}

func (l *lexer) emit(kind tokenKind, start, end int, value string) {
	l.toks = append(l.toks, token{kind: kind, text: l.src[start:end], value: value, off: start})
}

// run tokenizes until the end of input or, inside a JSX container, until
// the unmatched "}" which it leaves unread. It reports whether it stopped at
// that brace.
func (l *lexer) run(container bool) bool {
	src := l.src
	depth := 0
	for l.pos < len(src) {
		i := l.pos
		c := src[i]
		switch {
		case isSpace(c):
			l.pos++
		case c == '/' && strings.HasPrefix(src[i:], "//"):
			end := strings.IndexByte(src[i:], '\n')
			if end < 0 {
				end = len(src) - i
			}
			l.emit(tokComment, i, i+end, src[i+2:i+end])
			l.pos += end
		case c == '/' && strings.HasPrefix(src[i:], "/*"):
			end := strings.Index(src[i+2:], "*/")
			if end < 0 {
				l.emit(tokComment, i, len(src), src[i+2:])
				l.pos = len(src)
				continue
			}
			l.emit(tokComment, i, i+end+4, src[i+2:i+2+end])
			l.pos += end + 4
		case c == '/' && l.exprStart() && l.regex():
		case c == '<' && l.jsx && l.exprStart() && l.element():
		case c == '\'' || c == '"':
			end, ok := keypattern.QuoteEnd(src, i+1, c)
			if !ok {
				end = strings.IndexByte(src[i:], '\n')
				if end < 0 {
					end = len(src)
				} else {
					end += i
				}
				l.emit(tokPunct, i, end, "")
				l.pos = end
				continue
			}
			l.emit(tokString, i, end+1, unescape(src[i+1:end]))
			l.pos = end + 1
		case c == '`':
			end, ok := keypattern.TemplateEnd(src, i+1)
			if !ok {
				l.emit(tokPunct, i, len(src), "")
				l.pos = len(src)
				continue
			}
			l.emit(tokTemplate, i, end+1, src[i+1:end])
			l.pos = end + 1
		case isDigit(c) || (c == '.' && i+1 < len(src) && isDigit(src[i+1])):
			j := i + 1
			for j < len(src) {
				b := src[j]
				exponentSign := (b == '+' || b == '-') && (src[j-1] == 'e' || src[j-1] == 'E') && !isHexLiteral(src[i:j])
				if !isIdentByte(b) && b != '.' && !exponentSign {
					break
				}
				j++
			}
			l.emit(tokNumber, i, j, src[i:j])
			l.pos = j
		case isIdentByte(c):
			j := i + 1
			for j < len(src) && isIdentByte(src[j]) {
				j++
			}
			l.emit(tokIdent, i, j, src[i:j])
			l.pos = j
		case c == '?' && strings.HasPrefix(src[i:], "?.") && !(i+2 < len(src) && isDigit(src[i+2])):
			l.emit(tokPunct, i, i+2, "")
			l.pos += 2
		default:
			op := string(c)
			for _, candidate := range operators {
				if strings.HasPrefix(src[i:], candidate) {
					op = candidate
					break
				}
			}
			if c >= utf8.RuneSelf {
				_, size := utf8.DecodeRuneInString(src[i:])
				op = src[i : i+size]
			}
			if container {
				switch op {
				case "{":
					depth++
				case "}":
					if depth == 0 {
						return true
					}
					depth--
				}
			}
			l.emit(tokPunct, i, i+len(op), "")
			l.pos += len(op)
		}
	}
	return false
}

// exprStart reports whether the next token begins an expression, which is
// where "/" opens a regular expression and "<" opens JSX markup.
func (l *lexer) exprStart() bool {
	for i := len(l.toks) - 1; i >= 0; i-- {
		t := l.toks[i]
		switch t.kind {
		case tokComment:
			continue
		case tokPunct:
			return t.text != ")" && t.text != "]"
		case tokIdent:
			return exprKeywords[t.text]
		default:
			return false
		}
	}
	return true
}

// regex reads a regular expression literal at l.pos. A literal that does not
// close on its line is left for the operator rules.
func (l *lexer) regex() bool {
	start := l.pos
	inClass := false
	for i := start + 1; i < len(l.src); i++ {
		switch l.src[i] {
		case '\\':
			i++
		case '\n':
			return false
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if inClass {
				continue
			}
			j := i + 1
			for j < len(l.src) && isIdentByte(l.src[j]) {
				j++
			}
			l.emit(tokRegex, start, j, "")
			l.pos = j
			return true
		}
	}
	return false
}

// element skips a JSX element at l.pos. Malformed markup restores the lexer
// so that "<" is read as an operator instead.
func (l *lexer) element() bool {
	if l.pos+1 >= len(l.src) {
		return false
	}
	if next := l.src[l.pos+1]; next != '>' && (!isIdentByte(next) || isDigit(next)) {
		return false
	}
	pos, n := l.pos, len(l.toks)
	if l.jsxElement() {
		return true
	}
	l.pos, l.toks = pos, l.toks[:n]
	return false
}

func isJSXNameByte(c byte) bool {
	return isIdentByte(c) || c == '-' || c == ':' || c == '.'
}

func (l *lexer) jsxElement() bool {
	l.pos++
	for l.pos < len(l.src) && isJSXNameByte(l.src[l.pos]) {
		l.pos++
	}
	for {
		for l.pos < len(l.src) && isSpace(l.src[l.pos]) {
			l.pos++
		}
		if l.pos >= len(l.src) {
			return false
		}
		switch c := l.src[l.pos]; {
		case c == '>':
			l.pos++
			return l.jsxChildren()
		case strings.HasPrefix(l.src[l.pos:], "/>"):
			l.pos += 2
			return true
		case c == '{':
			if !l.container() {
				return false
			}
		case c == '"' || c == '\'':
			end := strings.IndexByte(l.src[l.pos+1:], c)
			if end < 0 {
				return false
			}
			l.pos += end + 2
		case c == '=':
			l.pos++
		case isJSXNameByte(c):
			for l.pos < len(l.src) && isJSXNameByte(l.src[l.pos]) {
				l.pos++
			}
		default:
			return false
		}
	}
}

func (l *lexer) jsxChildren() bool {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case strings.HasPrefix(l.src[l.pos:], "</"):
			end := strings.IndexByte(l.src[l.pos:], '>')
			if end < 0 {
				return false
			}
			l.pos += end + 1
			return true
		case c == '<':
			if !l.jsxElement() {
				return false
			}
		case c == '{':
			if !l.container() {
				return false
			}
		default:
			l.pos++
		}
	}
	return false
}

// container tokenizes a {...} expression container, braces included.
func (l *lexer) container() bool {
	l.emit(tokPunct, l.pos, l.pos+1, "")
	l.pos++
	if !l.run(true) {
		return false
	}
	l.emit(tokPunct, l.pos, l.pos+1, "")
	l.pos++
	return true
}

func isHexLiteral(s string) bool {
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\f' || c == '\v'
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c)
}

// unescape decodes the escape sequences of a JS string literal body.
func unescape(s string) string {
	if !strings.Contains(s, `\`) {
		return s
	}
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != '\\' || i+1 >= len(s) {
			b.WriteByte(s[i])
			continue
		}
		i++
		switch c := s[i]; c {
		case 'n':
			b.WriteByte('\n')
		case 't':
			b.WriteByte('\t')
		case 'r':
			b.WriteByte('\r')
		case 'b':
			b.WriteByte('\b')
		case 'f':
			b.WriteByte('\f')
		case 'v':
			b.WriteByte('\v')
		case '0':
			b.WriteByte(0)
		case '\n':
			// line continuation
		case 'x':
			if r, ok := hexRune(s, i+1, 2); ok {
				b.WriteRune(r)
				i += 2
			} else {
				b.WriteByte(c)
			}
		case 'u':
			if i+1 < len(s) && s[i+1] == '{' {
				if end := strings.IndexByte(s[i:], '}'); end > 0 {
					if r, ok := hexRune(s, i+2, end-2); ok {
						b.WriteRune(r)
						i += end
						continue
					}
				}
			}
			if r, ok := hexRune(s, i+1, 4); ok {
				b.WriteRune(r)
				i += 4
			} else {
				b.WriteByte(c)
			}
		default:
			b.WriteByte(c)
		}
	}
	return b.String()
}

func hexRune(s string, start, n int) (rune, bool) {
	if n <= 0 || start+n > len(s) {
		return 0, false
	}
	v, err := strconv.ParseUint(s[start:start+n], 16, 32)
	if err != nil {
		return 0, false
	}
	return rune(v), true
}
