// Command query reads one pinyin line from standard input, decodes it
// into ranked candidate Chinese character sequences, and prints them.
package main

import (
	"bufio"
	"errors"
	"fmt"
	"os"

	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/k0kubun/pp"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/hmm"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/input"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/logging"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/segment"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/store"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/vocab"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logging.SetLogger(logging.NewConsole(logging.LevelFromName(cfg.LogLevel)))
	log := logging.GetLogger()

	s, err := store.Open(cfg.StorePath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.StorePath).Msg("query: failed to open parameter store")
		os.Exit(1)
	}
	defer s.Close()

	line, err := readLine(os.Stdin)
	if err != nil {
		log.Error().Err(err).Msg("query: failed to read standard input")
		os.Exit(1)
	}

	if line != "" && !input.IsPlainLowercaseASCII(line) {
		log.Warn().Str("input", line).Msg("query: malformed input, expected [a-z]+")
	}

	voc := vocab.New()
	segmentations := segment.Segment(line, voc)

	var perSegmentation [][]hmm.Candidate
	for _, seg := range segmentations {
		candidates, err := hmm.Decode(seg, s)
		if err != nil {
			if errors.Is(err, hmm.ErrUnknownSyllableState) {
				log.Warn().Err(err).Strs("segmentation", seg).Msg("query: skipping segmentation")
				continue
			}
			if errors.Is(err, hmm.ErrDegenerateScores) {
				log.Warn().Err(err).Strs("segmentation", seg).Msg("query: degenerate scores")
				// Degenerate decodes still carry a usable rank-0 candidate.
			} else {
				log.Error().Err(err).Msg("query: decode failed")
				os.Exit(1)
			}
		}
		perSegmentation = append(perSegmentation, candidates)
	}

	if cfg.Debug {
		pp.Println(perSegmentation)
	}

	results := hmm.Merge(perSegmentation)
	printResults(results)
}

func readLine(f *os.File) (string, error) {
	scanner := bufio.NewScanner(f)
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", nil
	}
	return scanner.Text(), nil
}

func printResults(results []string) {
	for i, r := range results {
		line := fmt.Sprintf("result%d: %s", i, r)
		if i == 0 {
			color.Bold.Println(line)
			continue
		}
		fmt.Println(line)
	}
}
