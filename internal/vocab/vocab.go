// Package vocab builds and exposes the fixed pinyin syllable vocabulary
// used by the segmenter to recognize legal syllable boundaries.
package vocab

// initials is the set of legal pinyin onset consonants, in declaration order.
var initials = []string{
	"b", "p", "m", "f", "d", "t", "n", "l", "g", "k", "h", "j", "q", "x",
	"z", "c", "s", "r", "zh", "ch", "sh", "y", "w",
}

// finals is the set of legal pinyin rhymes, in declaration order.
var finals = []string{
	"a", "o", "e", "i", "u", "v", "ai", "ei", "ui", "ao", "ou", "iu", "ie",
	"ve", "er", "an", "en", "in", "un", "ang", "eng", "ing", "ong", "uai",
	"ia", "uan", "uang", "uo", "ua",
}

// standalone is the set of syllables that stand on their own, not formed
// by combining an initial with a final.
var standalone = []string{
	"a", "o", "e", "ai", "ei", "ao", "ou", "er", "an", "en", "ang",
	"zi", "ci", "si", "zhi", "chi", "shi", "ri", "yi", "wu", "yu",
	"yin", "ying", "yun", "ye", "yue", "yuan",
}

// Vocabulary is the closed, finite set of legal pinyin syllables.
type Vocabulary struct {
	set map[string]struct{}
}

// New builds the vocabulary once: the Cartesian product of initials and
// finals in declaration order, followed by the standalone syllables,
// skipping anything already present.
func New() *Vocabulary {
	v := &Vocabulary{set: make(map[string]struct{}, 700)}
	for _, s := range initials {
		for _, f := range finals {
			v.add(s + f)
		}
	}
	for _, z := range standalone {
		v.add(z)
	}
	return v
}

func (v *Vocabulary) add(syllable string) {
	if _, ok := v.set[syllable]; ok {
		return
	}
	v.set[syllable] = struct{}{}
}

// IsSyllable reports whether s is a legal pinyin syllable.
func (v *Vocabulary) IsSyllable(s string) bool {
	if s == "" {
		return false
	}
	_, ok := v.set[s]
	return ok
}

// Len returns the number of distinct syllables in the vocabulary.
func (v *Vocabulary) Len() int {
	return len(v.set)
}
