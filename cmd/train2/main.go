// Command train2 imports pre-built init/trans/emiss/pinyin_states tables
// from the four fixed JSON files into the parameter store.
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/config"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/jsonimport"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/logging"
	"github.com/tassa-yoniso-manasi-karoto/hmmpinyin/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	logging.SetLogger(logging.NewConsole(logging.LevelFromName(cfg.LogLevel)))
	log := logging.GetLogger()

	paths := jsonimport.Paths{
		InitProb:     cfg.ParamFile("init_prob.json"),
		TransProb:    cfg.ParamFile("trans_prob.json"),
		EmissProb:    cfg.ParamFile("emiss_prob.json"),
		PinyinStates: cfg.ParamFile("pinyin_states.json"),
	}

	w, err := store.OpenWriter(cfg.StorePath)
	if err != nil {
		log.Error().Err(err).Str("path", cfg.StorePath).Msg("train2: failed to open parameter store")
		os.Exit(1)
	}

	if err := jsonimport.Import(paths, w); err != nil {
		log.Error().Err(err).Msg("train2: import failed")
		_ = w.Rollback()
		os.Exit(1)
	}

	if err := w.Commit(); err != nil {
		log.Error().Err(err).Msg("train2: failed to commit parameter store")
		os.Exit(1)
	}

	log.Info().Str("path", cfg.StorePath).Msg("train2: parameter store written from JSON")
}
