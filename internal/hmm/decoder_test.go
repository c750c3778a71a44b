package hmm_test

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/hmm"
)

// fakeStore is a minimal in-memory ProbSource fixture. Its parameter
// values are illustrative stand-ins, per spec.md's seed-test table.
type fakeStore struct {
	init   map[string]float64
	trans  map[[2]string]float64
	emiss  map[[2]string]float64
	states map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		init:   map[string]float64{},
		trans:  map[[2]string]float64{},
		emiss:  map[[2]string]float64{},
		states: map[string]string{},
	}
}

func (f *fakeStore) InitProb(c string) (float64, bool) {
	v, ok := f.init[c]
	return v, ok
}

func (f *fakeStore) TransProb(post, pre string) (float64, bool) {
	v, ok := f.trans[[2]string{post, pre}]
	return v, ok
}

func (f *fakeStore) EmissProb(c, syllable string) (float64, bool) {
	v, ok := f.emiss[[2]string{c, syllable}]
	return v, ok
}

func (f *fakeStore) PinyinStates(syllable string) (string, bool) {
	v, ok := f.states[syllable]
	return v, ok
}

// niHaoFixture builds a tiny two-syllable fixture for "nihao" -> "你好",
// matching spec.md's S1 scenario.
func niHaoFixture() *fakeStore {
	f := newFakeStore()
	f.states["ni"] = "你尼"
	f.states["hao"] = "好号"

	f.init["你"] = math.Log(0.5)
	f.init["尼"] = math.Log(0.01)

	f.emiss[[2]string{"你", "ni"}] = math.Log(0.9)
	f.emiss[[2]string{"尼", "ni"}] = math.Log(0.1)
	f.emiss[[2]string{"好", "hao"}] = math.Log(0.8)
	f.emiss[[2]string{"号", "hao"}] = math.Log(0.2)

	f.trans[[2]string{"好", "你"}] = math.Log(0.7)
	f.trans[[2]string{"号", "你"}] = math.Log(0.01)
	f.trans[[2]string{"好", "尼"}] = math.Log(0.01)
	f.trans[[2]string{"号", "尼"}] = math.Log(0.01)

	f.trans[[2]string{"EOS", "好"}] = math.Log(0.9)
	f.trans[[2]string{"EOS", "号"}] = math.Log(0.1)
	return f
}

func TestDecode_S1_NihaoTopIsNiHao(t *testing.T) {
	f := niHaoFixture()
	results, err := hmm.Decode([]string{"ni", "hao"}, f)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	assert.Equal(t, 0, results[0].Rank)
	assert.Equal(t, "你好", results[0].Chars)
	assert.Len(t, []rune(results[0].Chars), 2)
}

func TestDecode_S3_SingleSyllable(t *testing.T) {
	f := newFakeStore()
	f.states["a"] = "啊阿"
	f.init["啊"] = math.Log(0.3)
	f.init["阿"] = math.Log(0.6)
	f.emiss[[2]string{"啊", "a"}] = math.Log(0.5)
	f.emiss[[2]string{"阿", "a"}] = math.Log(0.5)
	f.trans[[2]string{"EOS", "啊"}] = math.Log(0.9)
	f.trans[[2]string{"EOS", "阿"}] = math.Log(0.1)

	results, err := hmm.Decode([]string{"a"}, f)
	require.NoError(t, err)
	require.NotEmpty(t, results)

	// argmax over init+emiss+trans[EOS,.]:
	// 啊: log(.3)+log(.5)+log(.9) ; 阿: log(.6)+log(.5)+log(.1)
	scoreA := math.Log(0.3) + math.Log(0.5) + math.Log(0.9)
	scoreB := math.Log(0.6) + math.Log(0.5) + math.Log(0.1)
	want := "啊"
	if scoreB > scoreA {
		want = "阿"
	}
	assert.Equal(t, want, results[0].Chars)
}

func TestDecode_UnknownSyllableState(t *testing.T) {
	f := newFakeStore()
	_, err := hmm.Decode([]string{"zzzz"}, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hmm.ErrUnknownSyllableState))
}

func TestDecode_DegenerateScores(t *testing.T) {
	f := newFakeStore()
	f.states["ni"] = "你"
	f.states["hao"] = "好"
	// No init/emiss/trans entries at all: everything floors to MinLog.
	results, err := hmm.Decode([]string{"ni", "hao"}, f)
	require.Error(t, err)
	assert.True(t, errors.Is(err, hmm.ErrDegenerateScores))
	require.Len(t, results, 1)
	assert.Equal(t, "你好", results[0].Chars)
}

func TestDecode_OutputLengthMatchesSegmentationLength(t *testing.T) {
	f := niHaoFixture()
	results, err := hmm.Decode([]string{"ni", "hao"}, f)
	require.NoError(t, err)
	for _, r := range results {
		assert.Len(t, []rune(r.Chars), 2)
	}
}

func TestDecode_TieBreakFirstEncounteredWins(t *testing.T) {
	f := newFakeStore()
	f.states["ni"] = "你尼"
	f.states["hao"] = "好"
	f.init["你"] = math.Log(0.5)
	f.init["尼"] = math.Log(0.5)
	f.emiss[[2]string{"你", "ni"}] = math.Log(0.5)
	f.emiss[[2]string{"尼", "ni"}] = math.Log(0.5)
	f.emiss[[2]string{"好", "hao"}] = math.Log(0.5)
	// Equal transition probabilities from both predecessors -> tie.
	f.trans[[2]string{"好", "你"}] = math.Log(0.5)
	f.trans[[2]string{"好", "尼"}] = math.Log(0.5)
	f.trans[[2]string{"EOS", "好"}] = math.Log(0.5)

	results, err := hmm.Decode([]string{"ni", "hao"}, f)
	require.NoError(t, err)
	require.NotEmpty(t, results)
	// "你" appears before "尼" in the stored states string, so it must win the tie.
	assert.Equal(t, "你好", results[0].Chars)
}

func TestMerge_InterleavesByRankThenSegmentationOrder(t *testing.T) {
	segA := []hmm.Candidate{{Rank: 0, Chars: "A0"}, {Rank: 1, Chars: "A1"}}
	segB := []hmm.Candidate{{Rank: 0, Chars: "B0"}, {Rank: 1, Chars: "B1"}}

	merged := hmm.Merge([][]hmm.Candidate{segA, segB})
	assert.Equal(t, []string{"A0", "B0", "A1", "B1"}, merged)
}

func TestMerge_EmptyInputProducesEmptyOutput(t *testing.T) {
	assert.Empty(t, hmm.Merge(nil))
	assert.Empty(t, hmm.Merge([][]hmm.Candidate{}))
}
