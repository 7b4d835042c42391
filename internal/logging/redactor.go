package logging

import (
	"fmt"
	"strings"
	"unicode"
)

const redacted = "[REDACTED]"

// Keys whose values are always hidden. Matched against whole key segments,
// so "auth_token" matches and "apitoken" does not.
var secretSegments = []string{"secret", "password", "token", "auth", "credential", "url"}

// Keys that carry user-written chat text. Only the length is logged.
var contentSegments = []string{"text", "message", "bio"}

// redactor masks secrets and chat content in log key-value pairs.
type redactor struct {
	secrets map[string]struct{}
	content map[string]struct{}
}

func newRedactor() *redactor {
	return &redactor{secrets: segmentSet(secretSegments), content: segmentSet(contentSegments)}
}

func segmentSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

// redact returns a copy of pairs with masked values. A trailing key without a
// value is kept as is.
func (r *redactor) redact(pairs []any) []any {
	if len(pairs) == 0 {
		return pairs
	}
	out := append([]any(nil), pairs...)
	for i := 0; i+1 < len(out); i += 2 {
		key, ok := out[i].(string)
		if !ok {
			continue
		}
		segs := keySegments(key)
		switch {
		case hasAny(segs, r.secrets):
			out[i+1] = redacted
		case hasAny(segs, r.content):
			out[i+1] = fmt.Sprintf("[%d chars]", len([]rune(fmt.Sprint(out[i+1]))))
		}
	}
	return out
}

// keySegments lowercases key and splits it on anything that is not a letter
// or digit.
func keySegments(key string) []string {
	return strings.FieldsFunc(strings.ToLower(key), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func hasAny(segs []string, set map[string]struct{}) bool {
	for _, s := range segs {
		if _, ok := set[s]; ok {
			return true
		}
	}
	return false
}
