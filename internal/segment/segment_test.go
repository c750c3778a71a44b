package segment_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/segment"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/vocab"
)

func segToStrings(segs []segment.Segmentation) []string {
	out := make([]string, len(segs))
	for i, s := range segs {
		out[i] = strings.Join(s, "-")
	}
	return out
}

func TestSegment_NihaoSplitsTwoWays(t *testing.T) {
	v := vocab.New()
	segs := segment.Segment("nihao", v)
	// "hao" itself splits two ways ("ha"+"o" and "hao"), so "nihao" does too.
	require.Len(t, segs, 2)
	assert.Equal(t, segment.Segmentation{"ni", "ha", "o"}, segs[0])
	assert.Equal(t, segment.Segmentation{"ni", "hao"}, segs[1])
}

func TestSegment_AmbiguousSplit(t *testing.T) {
	v := vocab.New()
	segs := segment.Segment("hao", v)
	got := segToStrings(segs)
	assert.Contains(t, got, "ha-o")
	assert.Contains(t, got, "hao")
	assert.Len(t, segs, 2)
}

func TestSegment_ShorterPrefixFirstOrdering(t *testing.T) {
	v := vocab.New()
	segs := segment.Segment("hao", v)
	// "ha" (len 2) must be fully expanded before "hao" (len 3) is tried at
	// the first level: the recursive reference order is [ha,o] then [hao].
	require.Len(t, segs, 2)
	assert.Equal(t, segment.Segmentation{"ha", "o"}, segs[0])
	assert.Equal(t, segment.Segmentation{"hao"}, segs[1])
}

func TestSegment_SingleSyllable(t *testing.T) {
	v := vocab.New()
	segs := segment.Segment("a", v)
	require.Len(t, segs, 1)
	assert.Equal(t, segment.Segmentation{"a"}, segs[0])
}

func TestSegment_Empty(t *testing.T) {
	v := vocab.New()
	segs := segment.Segment("", v)
	assert.Empty(t, segs)
}

func TestSegment_NoLegalSplit(t *testing.T) {
	v := vocab.New()
	assert.Empty(t, segment.Segment("qqq", v))
	assert.Empty(t, segment.Segment("xyz", v))
}

func TestSegment_EveryResultReconstructsInput(t *testing.T) {
	v := vocab.New()
	for _, input := range []string{"nihao", "xian", "zhongguo", "a", "yin"} {
		for _, seg := range segment.Segment(input, v) {
			assert.Equal(t, input, strings.Join(seg, ""))
			for _, syl := range seg {
				assert.True(t, v.IsSyllable(syl))
			}
		}
	}
}
