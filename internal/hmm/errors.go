package hmm

import "errors"

// ErrUnknownSyllableState is returned when a segmentation contains a
// syllable with no candidate characters in pinyin_states. It is fatal for
// that segmentation's decode; callers decoding multiple segmentations of
// an ambiguous input should skip this one and continue with the rest.
var ErrUnknownSyllableState = errors.New("hmm: unknown syllable state")

// ErrDegenerateScores is returned alongside a (still usable) rank-0-only
// result when every path through the trellis floored out at MinLog —
// i.e. the parameter tables had no relevant entries at all. Per the
// decoder's contract this is a warning, not a fatal error: callers may
// still use the returned candidate.
var ErrDegenerateScores = errors.New("hmm: degenerate scores, all paths floored")
