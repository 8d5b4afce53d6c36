package callsite

import (
	"path/filepath"
	"strings"
)

// region is a span of a source file holding JS, tokenized on its own.
type region struct {
	start, end int
	jsx        bool
}

// regions splits a file into its JS spans. A .vue file contributes its
// <script> bodies, {{ }} interpolations and bound attribute values; any
// other file is one span.
func regions(text, file string) []region {
	switch strings.ToLower(filepath.Ext(file)) {
	case ".vue":
		return vueRegions(text)
	case ".ts", ".mts", ".cts":
		// <T>expr is a type assertion, not markup.
		return []region{{start: 0, end: len(text)}}
	}
	return []region{{start: 0, end: len(text), jsx: true}}
}

// boundAttr reports whether a Vue attribute value is a JS expression.
func boundAttr(name string) bool {
	return strings.HasPrefix(name, ":") || strings.HasPrefix(name, "@") ||
		strings.HasPrefix(name, "#") || strings.HasPrefix(name, "v-")
}

func vueRegions(text string) []region {
	var out []region
	for i := 0; i < len(text); {
		switch {
		case strings.HasPrefix(text[i:], "<!--"):
			end := strings.Index(text[i+4:], "-->")
			if end < 0 {
				return out
			}
			i += 4 + end + 3
		case strings.HasPrefix(text[i:], "{{"):
			end := strings.Index(text[i+2:], "}}")
			if end < 0 {
				return out
			}
			out = append(out, region{start: i + 2, end: i + 2 + end})
			i += 2 + end + 2
		case text[i] == '<' && i+1 < len(text) && isIdentByte(text[i+1]) && !isDigit(text[i+1]):
			i = vueTag(text, i, &out)
		default:
			i++
		}
	}
	return out
}

// vueTag reads the start tag at text[i], records its bound attribute
// values and, for <script>, its body. It returns the offset to continue at.
func vueTag(text string, i int, out *[]region) int {
	j := i + 1
	for j < len(text) && isJSXNameByte(text[j]) {
		j++
	}
	name := strings.ToLower(text[i+1 : j])

	for j < len(text) {
		c := text[j]
		switch {
		case isSpace(c) || c == '/':
			j++
			continue
		case c == '>':
			j++
			return vueBody(text, j, name, out)
		}

		attrStart := j
		for j < len(text) && !isSpace(text[j]) && text[j] != '=' && text[j] != '>' && text[j] != '/' {
			j++
		}
		attr := text[attrStart:j]
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j >= len(text) || text[j] != '=' {
			continue
		}
		j++
		for j < len(text) && isSpace(text[j]) {
			j++
		}
		if j >= len(text) {
			break
		}
		if q := text[j]; q == '"' || q == '\'' {
			end := strings.IndexByte(text[j+1:], q)
			if end < 0 {
				return len(text)
			}
			if boundAttr(attr) {
				*out = append(*out, region{start: j + 1, end: j + 1 + end})
			}
			j += end + 2
			continue
		}
		valueStart := j
		for j < len(text) && !isSpace(text[j]) && text[j] != '>' {
			j++
		}
		if boundAttr(attr) {
			*out = append(*out, region{start: valueStart, end: j})
		}
	}
	return j
}

// vueBody records a <script> body and skips <style> bodies. Other elements
// continue right after their start tag.
func vueBody(text string, start int, name string, out *[]region) int {
	if name != "script" && name != "style" {
		return start
	}
	end := strings.Index(strings.ToLower(text[start:]), "</"+name)
	if end < 0 {
		end = len(text) - start
	}
	if name == "script" {
		*out = append(*out, region{start: start, end: start + end})
	}
	return start + end
}
