// Command train ingests a text corpus and estimates the HMM's
// init/trans/emiss parameter tables and pinyin_states index, writing them
// to the parameter store.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/corpus"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/logging"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logging.SetLogger(logging.NewConsole(logging.LevelFromName(cfg.LogLevel)))
	log := logging.GetLogger()

	f, err := os.Open(cfg.CorpusPath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.CorpusPath).Msg("train: failed to open corpus")
		os.Exit(1)
	}
	defer f.Close()

	seqs, err := corpus.ExtractSequences(f, func(count int) {
		log.Info().Int("extracted", count).Msg("train: extracting character sequences")
	})
	if err != nil {
		log.Error().Err(err).Msg("train: failed to read corpus")
		os.Exit(1)
	}
	log.Info().Int("sequences", len(seqs)).Msg("train: extraction complete")

	w, err := store.OpenWriter(cfg.StorePath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.StorePath).Msg("train: failed to open parameter store")
		os.Exit(1)
	}

	if err := corpus.Train(seqs, w); err != nil {
		log.Error().Err(err).Msg("train: parameter estimation failed")
		_ = w.Rollback()
		os.Exit(1)
	}

	if err := w.Commit(); err != nil {
		log.Error().Err(err).Msg("train: failed to commit parameter store")
		os.Exit(1)
	}

	log.Info().Str("path", cfg.StorePath).Msg("train: parameter store written")
}
