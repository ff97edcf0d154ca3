package oracle

import (
	"encoding/json"
	"regexp"
	"strings"
)

var fenced = regexp.MustCompile("(?s)```(?:json|JSON)?\\s*(.*?)\\s*```")

// ExtractJSON pulls the first JSON value out of model output. It tries, in
// order: the body of a markdown code fence, the whole trimmed text, and the
// first balanced {...} or [...] span.
func ExtractJSON(text string) (any, bool) {
	if m := fenced.FindStringSubmatch(text); m != nil {
		if v, ok := decode(m[1]); ok {
			return v, true
		}
	}
	trimmed := strings.TrimSpace(text)
	if v, ok := decode(trimmed); ok {
		return v, true
	}
	for start := 0; start < len(trimmed); start++ {
		c := trimmed[start]
		if c != '{' && c != '[' {
			continue
		}
		end := matchBracket(trimmed, start)
		if end < 0 {
			continue
		}
		if v, ok := decode(trimmed[start : end+1]); ok {
			return v, true
		}
	}
	return nil, false
}

func decode(s string) (any, bool) {
	s = strings.TrimSpace(s)
	if s == "" || (s[0] != '{' && s[0] != '[') {
		return nil, false
	}
	var v any
	if err := json.Unmarshal([]byte(s), &v); err != nil {
		return nil, false
	}
	return v, true
}

// matchBracket returns the index of the bracket closing s[open], skipping
// brackets inside string literals, or -1.
func matchBracket(s string, open int) int {
	var stack []byte
	inStr, esc := false, false
	for i := open; i < len(s); i++ {
		c := s[i]
		if inStr {
			switch {
			case esc:
				esc = false
			case c == '\\':
				esc = true
			case c == '"':
				inStr = false
			}
			continue
		}
		switch c {
		case '"':
			inStr = true
		case '{':
			stack = append(stack, '}')
		case '[':
			stack = append(stack, ']')
		case '}', ']':
			if len(stack) == 0 || stack[len(stack)-1] != c {
				return -1
			}
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return i
			}
		}
	}
	return -1
}
