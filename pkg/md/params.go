// params.go implements the key=value argument grammar used by directive openers.
package md

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Params is an ordered key/value mapping parsed from a directive's argument text.
// Keys keep their first-insertion order; a repeated key keeps its position and
// takes the last value. Keys a renderer does not know are preserved.
type Params struct {
	keys   []string
	values map[string]string
}

// NewParams builds Params from alternating key, value pairs.
func NewParams(kv ...string) Params {
	var p Params
	for i := 0; i+1 < len(kv); i += 2 {
		p.Set(kv[i], kv[i+1])
	}
	return p
}

// Set stores value under key.
func (p *Params) Set(key, value string) {
	if p.values == nil {
		p.values = make(map[string]string)
	}
	if _, exists := p.values[key]; !exists {
		p.keys = append(p.keys, key)
	}
	p.values[key] = value
}

// Get returns the value for key and whether it was present.
func (p Params) Get(key string) (string, bool) {
	v, ok := p.values[key]
	return v, ok
}

// Value returns the value for key, or def when the key is missing or empty.
func (p Params) Value(key, def string) string {
	if v := p.values[key]; v != "" {
		return v
	}
	return def
}

// Keys returns the parameter names in source order.
func (p Params) Keys() []string {
	return append([]string(nil), p.keys...)
}

// Len returns the number of distinct keys.
func (p Params) Len() int {
	return len(p.keys)
}

// Map returns a copy of the parameters as a plain map.
func (p Params) Map() map[string]string {
	m := make(map[string]string, len(p.keys))
	for _, k := range p.keys {
		m[k] = p.values[k]
	}
	return m
}

// Tokenize parses a directive argument string into Params. It never fails;
// input it cannot make sense of yields fewer (or zero) parameters.
//
// Recognised forms:
//   - name="quoted value" - everything up to the next '"'; no escapes
//   - name=unquoted value - runs until the next whitespace-separated
//     identifier followed by '=', or to the end of the string
//
// A name that is not followed by '=' stops the scan.
func Tokenize(input string) Params {
	var params Params
	pos := 0

	for pos < len(input) {
		for pos < len(input) && input[pos] == ' ' {
			pos++
		}
		if pos >= len(input) {
			break
		}

		nameStart := pos
		for pos < len(input) && input[pos] != '=' && input[pos] != ' ' {
			pos++
		}
		name := input[nameStart:pos]

		if pos >= len(input) || input[pos] != '=' {
			break
		}
		pos++ // skip '='

		var value string
		if pos < len(input) && input[pos] == '"' {
			pos++ // skip opening quote
			end := strings.IndexByte(input[pos:], '"')
			if end < 0 {
				value = input[pos:]
				pos = len(input)
			} else {
				value = input[pos : pos+end]
				pos += end + 1 // skip closing quote
			}
		} else {
			rest := input[pos:]
			if next := nextParamBoundary(rest); next >= 0 {
				value = strings.TrimSpace(rest[:next])
				pos += next
			} else {
				value = strings.TrimSpace(rest)
				pos = len(input)
			}
		}

		if name = strings.TrimSpace(name); name != "" {
			params.Set(name, value)
		}
	}

	return params
}

// nextParamBoundary returns the offset of the whitespace run that precedes the
// next "ident=" in s, or -1. An identifier matches [A-Za-z_][A-Za-z0-9_]*.
func nextParamBoundary(s string) int {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !unicode.IsSpace(r) {
			i += size
			continue
		}

		runStart := i
		for i < len(s) {
			r, size = utf8.DecodeRuneInString(s[i:])
			if !unicode.IsSpace(r) {
				break
			}
			i += size
		}

		if identEnd := scanIdent(s, i); identEnd > i && identEnd < len(s) && s[identEnd] == '=' {
			return runStart
		}
	}
	return -1
}

// scanIdent returns the end of the identifier starting at pos, or pos if none.
func scanIdent(s string, pos int) int {
	if pos >= len(s) || !isIdentStart(s[pos]) {
		return pos
	}
	end := pos + 1
	for end < len(s) && isIdentChar(s[end]) {
		end++
	}
	return end
}

func isIdentStart(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || c == '_'
}

func isIdentChar(c byte) bool {
	return isIdentStart(c) || (c >= '0' && c <= '9')
}
