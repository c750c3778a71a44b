// Package hmm implements the Viterbi decoder over the pinyin/character HMM
// and the result merger that interleaves candidates across segmentations.
package hmm

import (
	"fmt"
	"sort"
)

// MinLog is the floor log-probability substituted for any missing table
// entry. It is chosen so additive compositions of several floored values
// (up to a few hundred terms for realistic input lengths) remain finite
// and never overflow to -Inf.
const MinLog = -3.14e100

// MaxCandidates bounds how many ranked results a single decode produces.
const MaxCandidates = 100

// ProbSource is the read-only view of the parameter tables the decoder
// needs. internal/store.BoltStore satisfies this structurally.
type ProbSource interface {
	InitProb(c string) (float64, bool)
	TransProb(post, pre string) (float64, bool)
	EmissProb(c, syllable string) (float64, bool)
	PinyinStates(syllable string) (string, bool)
}

// Candidate is one ranked decode result.
type Candidate struct {
	Rank  int
	Chars string
}

type cell struct {
	score float64
	back  string
}

// candidates returns the deterministic, deduplicated, first-seen-order
// list of characters stored for syllable s, and whether any were found.
func candidates(ps ProbSource, s string) ([]string, bool) {
	raw, ok := ps.PinyinStates(s)
	if !ok || raw == "" {
		return nil, false
	}
	seen := make(map[string]struct{}, len(raw))
	out := make([]string, 0, len(raw))
	for _, r := range raw {
		c := string(r)
		if _, dup := seen[c]; dup {
			continue
		}
		seen[c] = struct{}{}
		out = append(out, c)
	}
	if len(out) == 0 {
		return nil, false
	}
	return out, true
}

func floorOr(v float64, ok bool) float64 {
	if !ok {
		return MinLog
	}
	return v
}

// Decode runs the Viterbi algorithm over one segmentation and returns up
// to MaxCandidates ranked character sequences, one character per syllable.
//
// If a syllable has no candidate characters, it returns
// ErrUnknownSyllableState naming the offending syllable and a nil result.
// If every surviving path floored at MinLog, it returns a single rank-0
// candidate alongside ErrDegenerateScores — a warning, not a fatal error.
func Decode(segmentation []string, ps ProbSource) ([]Candidate, error) {
	L := len(segmentation)
	if L == 0 {
		return nil, nil
	}

	colCandidates := make([][]string, L)
	for i, syl := range segmentation {
		cs, ok := candidates(ps, syl)
		if !ok {
			return nil, fmt.Errorf("%w: syllable %q has no candidate characters", ErrUnknownSyllableState, syl)
		}
		colCandidates[i] = cs
	}

	trellis := make([]map[string]cell, L)

	// Initialization (column 0).
	trellis[0] = make(map[string]cell, len(colCandidates[0]))
	for _, c := range colCandidates[0] {
		initP := floorOr(ps.InitProb(c))
		emissP := floorOr(ps.EmissProb(c, segmentation[0]))
		trellis[0][c] = cell{score: initP + emissP, back: ""}
	}

	// Recurrence, columns i = 0 .. L-2, populating column i+1.
	for i := 0; i < L-1; i++ {
		next := make(map[string]cell, len(colCandidates[i+1]))
		for _, cNext := range colCandidates[i+1] {
			emissP := floorOr(ps.EmissProb(cNext, segmentation[i+1]))

			bestScore := MinLog
			bestPrev := ""
			first := true
			for _, cPrev := range colCandidates[i] {
				prevCell, ok := trellis[i][cPrev]
				if !ok {
					continue
				}
				transP := floorOr(ps.TransProb(cNext, cPrev))
				score := prevCell.score + emissP + transP
				if first || score > bestScore {
					bestScore = score
					bestPrev = cPrev
					first = false
				}
			}
			next[cNext] = cell{score: bestScore, back: bestPrev}
		}
		trellis[i+1] = next
	}

	// Termination: add trans["EOS", c] to column L-1, backpointers unchanged.
	last := L - 1
	for c, v := range trellis[last] {
		eos := floorOr(ps.TransProb("EOS", c))
		v.score += eos
		trellis[last][c] = v
	}

	type ranked struct {
		char  string
		score float64
		order int
	}
	entries := make([]ranked, 0, len(trellis[last]))
	for i, c := range colCandidates[last] {
		v, ok := trellis[last][c]
		if !ok {
			continue
		}
		entries = append(entries, ranked{char: c, score: v.score, order: i})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].score > entries[j].score
	})

	// A path for which every init/emiss/trans lookup was missing scores the
	// floor summed 2L+1 times. It is accumulated here in the trellis's own
	// order of additions, so that path compares exactly equal to it and any
	// path with at least one real entry scores strictly above it.
	allFloored := MinLog + MinLog
	for i := 1; i < L; i++ {
		allFloored = allFloored + MinLog + MinLog
	}
	allFloored += MinLog

	degenerate := true
	for _, e := range entries {
		if e.score > allFloored {
			degenerate = false
			break
		}
	}

	limit := len(entries)
	if degenerate && limit > 1 {
		limit = 1
	}
	if limit > MaxCandidates {
		limit = MaxCandidates
	}

	results := make([]Candidate, 0, limit)
	for rank := 0; rank < limit; rank++ {
		lastChar := entries[rank].char
		path := make([]string, L)
		path[last] = lastChar
		for n := last - 1; n >= 0; n-- {
			path[n] = trellis[n+1][path[n+1]].back
		}
		results = append(results, Candidate{Rank: rank, Chars: joinChars(path)})
	}

	if degenerate {
		return results, ErrDegenerateScores
	}
	return results, nil
}

func joinChars(path []string) string {
	total := 0
	for _, p := range path {
		total += len(p)
	}
	buf := make([]byte, 0, total)
	for _, p := range path {
		buf = append(buf, p...)
	}
	return string(buf)
}
