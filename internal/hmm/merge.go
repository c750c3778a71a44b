package hmm

import "sort"

// Merge interleaves per-segmentation candidate lists into a single ordered
// list of strings: segmentation order first, then rank order within each
// segmentation, then a stable sort by rank ascending. Because the sort is
// stable, same-rank candidates from different segmentations keep their
// original segmentation order — rank-0 candidates from every segmentation
// appear first, then rank-1, and so on.
func Merge(perSegmentation [][]Candidate) []string {
	var flat []Candidate
	for _, segResults := range perSegmentation {
		flat = append(flat, segResults...)
	}

	sort.SliceStable(flat, func(i, j int) bool {
		return flat[i].Rank < flat[j].Rank
	})

	out := make([]string, len(flat))
	for i, c := range flat {
		out[i] = c.Chars
	}
	return out
}
