// Package corpus implements the out-of-core-but-concrete corpus ingestion
// and parameter-estimation path (the "training" collaborator spec.md
// treats as external): extracting Chinese character runs from a text
// corpus and counting the unigram/bigram/emission frequencies that become
// the init/trans/emiss log-probability tables.
package corpus

import (
	"bufio"
	"io"
)

// isCJK reports whether r falls in the CJK Unified Ideograph range this
// system models, U+4E00..U+9FA5 — the same range as the training corpus
// regex `[一-龥]{2,}`.
func isCJK(r rune) bool {
	return r >= 0x4e00 && r <= 0x9fa5
}

// ExtractSequences streams r and returns every maximal run of two or more
// consecutive CJK Unified Ideographs, in encounter order. It reads
// incrementally through a 64 KiB buffered reader rather than slurping the
// whole corpus into memory first; the extracted sequences themselves are
// all held in the returned slice. onProgress, if non-nil, is called every 10000 sequences
// extracted (mirroring the original training tool's periodic progress
// print), passing the running count.
func ExtractSequences(r io.Reader, onProgress func(count int)) ([]string, error) {
	br := bufio.NewReaderSize(r, 64*1024)

	var seqs []string
	var cur []rune

	flush := func() {
		if len(cur) >= 2 {
			seqs = append(seqs, string(cur))
			if onProgress != nil && len(seqs)%10000 == 0 {
				onProgress(len(seqs))
			}
		}
		cur = cur[:0]
	}

	for {
		r, _, err := br.ReadRune()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if isCJK(r) {
			cur = append(cur, r)
			continue
		}
		flush()
	}
	flush()

	return seqs, nil
}
