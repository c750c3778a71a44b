package corpus

import (
	"fmt"
	"math"

	gopinyin "github.com/mozillazg/go-pinyin"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/logging"
)

// BOS and EOS are the sentinel tokens bracketing each character sequence
// when counting transition frequencies.
const (
	BOS = "BOS"
	EOS = "EOS"
)

// Writer is the subset of the parameter store's write API training needs.
// internal/store.BoltWriter satisfies this structurally.
type Writer interface {
	PutInitProb(c string, v float64) error
	PutTransProb(post, pre string, v float64) error
	PutEmissProb(c, syllable string, v float64) error
	AppendPinyinState(syllable, char string) error
}

var pinyinArgs = func() gopinyin.Args {
	a := gopinyin.NewArgs()
	a.Style = gopinyin.Normal
	a.Heteronym = false
	return a
}()

// CountInit estimates init_prob: log P(c is first char), from the first
// character of every extracted sequence.
func CountInit(seqs []string, w Writer) error {
	counts := make(map[string]uint64)
	total := uint64(len(seqs))

	for _, seq := range seqs {
		if seq == "" {
			continue
		}
		first := string([]rune(seq)[0])
		counts[first]++
	}

	for c, n := range counts {
		p := math.Log(float64(n) / float64(total))
		if err := w.PutInitProb(c, p); err != nil {
			return fmt.Errorf("corpus: write init_prob[%q]: %w", c, err)
		}
	}
	return nil
}

// CountTrans estimates trans_prob: log P(post | pre), bracketing each
// sequence with BOS/EOS sentinels, exactly as the original training tool
// does.
func CountTrans(seqs []string, w Writer) error {
	counts := make(map[string]map[string]uint64) // post -> pre -> n

	for _, seq := range seqs {
		if seq == "" {
			continue
		}
		chars := append([]string{BOS}, runeStrings(seq)...)
		chars = append(chars, EOS)

		for i := 1; i < len(chars); i++ {
			post, pre := chars[i], chars[i-1]
			row, ok := counts[post]
			if !ok {
				row = make(map[string]uint64)
				counts[post] = row
			}
			row[pre]++
		}
	}

	preTotals := make(map[string]uint64) // pre -> n, over every post
	for _, row := range counts {
		for pre, n := range row {
			preTotals[pre] += n
		}
	}

	for post, row := range counts {
		for pre, n := range row {
			p := math.Log(float64(n) / float64(preTotals[pre]))
			if err := w.PutTransProb(post, pre, p); err != nil {
				return fmt.Errorf("corpus: write trans_prob[%q,%q]: %w", post, pre, err)
			}
		}
	}
	return nil
}

// CountEmission estimates emiss_prob: log P(syllable | c), and builds the
// pinyin_states table from the same pass (a character becomes a candidate
// for a syllable the moment it is observed to emit it), avoiding the
// separate read-back pass the original training tool needs because it
// writes emiss_prob to the store before it can enumerate it.
func CountEmission(seqs []string, w Writer, onProgress func(done, total int)) error {
	counts := make(map[string]map[string]uint64) // char -> syllable -> n

	for i, seq := range seqs {
		if seq == "" {
			continue
		}
		chars := runeStrings(seq)
		syllables := gopinyin.Pinyin(seq, pinyinArgs)
		if len(syllables) != len(chars) {
			continue
		}
		for idx, char := range chars {
			readings := syllables[idx]
			if len(readings) == 0 || readings[0] == "" {
				continue
			}
			syl := readings[0]
			row, ok := counts[char]
			if !ok {
				row = make(map[string]uint64)
				counts[char] = row
			}
			row[syl]++
		}
		if onProgress != nil && (i+1)%10000 == 0 {
			onProgress(i+1, len(seqs))
		}
	}

	for char, row := range counts {
		var total uint64
		for _, n := range row {
			total += n
		}
		for syl, n := range row {
			p := math.Log(float64(n) / float64(total))
			if err := w.PutEmissProb(char, syl, p); err != nil {
				return fmt.Errorf("corpus: write emiss_prob[%q,%q]: %w", char, syl, err)
			}
			if err := w.AppendPinyinState(syl, char); err != nil {
				return fmt.Errorf("corpus: write pinyin_states[%q]: %w", syl, err)
			}
		}
	}
	return nil
}

// Train runs the full init/trans/emiss/pinyin_states estimation pipeline
// over seqs, logging progress the way the original training tool prints
// "{num}/{len}" every 10000 sequences.
func Train(seqs []string, w Writer) error {
	log := logging.GetLogger()
	log.Info().Int("sequences", len(seqs)).Msg("corpus: starting parameter estimation")

	if err := CountInit(seqs, w); err != nil {
		return err
	}
	if err := CountTrans(seqs, w); err != nil {
		return err
	}
	if err := CountEmission(seqs, w, func(done, total int) {
		log.Info().Int("done", done).Int("total", total).Msg("corpus: counting emissions")
	}); err != nil {
		return err
	}

	log.Info().Msg("corpus: parameter estimation complete")
	return nil
}

func runeStrings(s string) []string {
	rs := []rune(s)
	out := make([]string, len(rs))
	for i, r := range rs {
		out[i] = string(r)
	}
	return out
}
