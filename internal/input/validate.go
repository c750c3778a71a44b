// Package input validates raw query lines grapheme-cluster by grapheme
// cluster before they reach the segmenter, the same way the teacher's
// uniseg-backed tokenizer walks text one cluster at a time instead of one
// byte or rune at a time.
package input

import "github.com/rivo/uniseg"

// IsPlainLowercaseASCII reports whether s consists entirely of grapheme
// clusters that are themselves single lowercase ASCII letters. Unlike a
// byte-oriented regexp, this never misclassifies a multi-rune grapheme
// cluster (e.g. a combining accent sequence smuggled into the input) as a
// run of plain letters: each cluster is checked as a whole before its
// single rune is range-tested.
func IsPlainLowercaseASCII(s string) bool {
	if s == "" {
		return false
	}
	state := -1
	remaining := s
	for len(remaining) > 0 {
		cluster, rest, _, newState := uniseg.FirstGraphemeClusterInString(remaining, state)
		runes := []rune(cluster)
		if len(runes) != 1 || runes[0] < 'a' || runes[0] > 'z' {
			return false
		}
		remaining, state = rest, newState
	}
	return true
}
