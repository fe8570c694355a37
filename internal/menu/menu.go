// Package menu maps free-text user input to the closest entry of a fixed
// menu. The matcher is deliberately not edit-distance based: it scores a
// digit shortcut, then a prefix match, a substring match and finally a
// character-overlap count against the leading word of each entry.
package menu

import (
	"strings"
	"unicode"
)

// Resolve returns the index of the entry best matching input. A single
// digit selects a 1-based entry directly; multi-digit numeric input falls
// through to fuzzy matching instead of being parsed as a larger index.
// ok is false only when no entry scored at all, which can only happen for
// an empty menu or an out-of-range digit shortcut.
func Resolve(entries []string, input string) (index int, ok bool) {
	if len(input) == 1 && input[0] >= '0' && input[0] <= '9' {
		idx := int(input[0]-'0') - 1
		if idx >= 0 && idx < len(entries) {
			return idx, true
		}
		return 0, false
	}

	in := strings.ToLower(input)
	best, bestScore := 0, -1
	for i, entry := range entries {
		if s := score(leadingWord(entry), in); s > bestScore {
			best, bestScore = i, s
		}
	}
	if bestScore < 0 {
		return 0, false
	}
	return best, true
}

// leadingWord extracts the lowercased first word of a menu entry, skipping
// any index prefix or punctuation ("2. Login to ..." yields "login").
func leadingWord(entry string) string {
	s := entry
	for len(s) > 0 {
		r := rune(s[0])
		if !unicode.IsDigit(r) && !unicode.IsPunct(r) && !unicode.IsSpace(r) {
			break
		}
		s = s[1:]
	}
	if i := strings.IndexByte(s, ' '); i >= 0 {
		s = s[:i]
	}
	return strings.ToLower(s)
}

// score rates how well a lowercased input matches an entry word:
//
//	prefix match:    1000 + (100 - |len diff|)
//	substring match:  500 + (100 - |len diff|)
//	fallback:         10 per input character present in the word
func score(word, input string) int {
	diff := len(word) - len(input)
	if diff < 0 {
		diff = -diff
	}
	if len(input) <= len(word) && strings.HasPrefix(word, input) {
		return 1000 + (100 - diff)
	}
	if strings.Contains(word, input) {
		return 500 + (100 - diff)
	}
	matches := 0
	for i := 0; i < len(input); i++ {
		if strings.IndexByte(word, input[i]) >= 0 {
			matches++
		}
	}
	return matches * 10
}
