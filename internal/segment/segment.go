// Package segment enumerates the legal pinyin syllabifications of an
// unseparated romanized string against a fixed syllable vocabulary.
package segment

import "github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/vocab"

// Segmentation is an ordered sequence of syllables whose concatenation
// equals the original input.
type Segmentation []string

// frame is one unit of the explicit work stack used in place of native
// recursion, so pathological inputs can't blow the call stack. It mirrors
// one level of the recursive depth-first algorithm: the suffix still to be
// split, and the path of syllables accumulated so far.
type frame struct {
	remaining string
	path      []string
}

// Segment returns every legal syllabification of input, in the order the
// recursive depth-first algorithm described in the decoder's design would
// emit them: at each level, prefixes are tried shortest-first, and a
// segmentation is only emitted once the whole input has been consumed by
// known syllables. An input with no legal split returns an empty, non-nil
// slice — not an error.
//
// Complexity is worst-case exponential in len(input); in practice pinyin's
// syllable structure keeps branching narrow. The explicit stack below
// preserves the exact emission order of the recursive version by treating
// every popped frame the same way, whether it happens to be a leaf (the
// whole input consumed) or not: only a pop ever emits or expands, enumeration
// never does. Child frames are pushed in descending prefix-length order so
// they pop in ascending order (a LIFO stack reverses whatever order it's
// pushed in), and a leaf frame popped earlier than a sibling's non-leaf
// children always finishes emitting before that sibling's own children are
// popped, exactly mirroring the recursive algorithm's call order.
func Segment(input string, voc *vocab.Vocabulary) []Segmentation {
	results := []Segmentation{}
	if input == "" {
		return results
	}

	stack := []frame{{remaining: input, path: nil}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.remaining == "" {
			results = append(results, append(Segmentation{}, top.path...))
			continue
		}

		children := childFrames(top, voc)
		// Push in reverse so the smallest prefix length is popped first,
		// matching the recursive algorithm's ascending-i iteration.
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, children[i])
		}
	}
	return results
}

// childFrames computes, for the current frame, every next frame reachable
// by consuming a known-syllable prefix of f.remaining. i=0 (the empty
// prefix) is never a candidate: the vocabulary never contains "".
func childFrames(f frame, voc *vocab.Vocabulary) []frame {
	var out []frame
	w := f.remaining
	for i := 1; i <= len(w); i++ {
		prefix := w[:i]
		if !voc.IsSyllable(prefix) {
			continue
		}
		path := make([]string, len(f.path)+1)
		copy(path, f.path)
		path[len(f.path)] = prefix
		out = append(out, frame{remaining: w[i:], path: path})
	}
	return out
}
