// Package config loads the environment-variable configuration shared by
// the train, train2, and query binaries, in the envOrDefault style used
// throughout this codebase's ancestry.
package config

import (
	"os"
	"path/filepath"
)

// Config holds every setting the three CLI binaries need.
type Config struct {
	StorePath  string // HMMPINYIN_STORE_PATH
	CorpusPath string // HMMPINYIN_CORPUS_PATH
	ParamsDir  string // HMMPINYIN_PARAMS_DIR
	Debug      bool   // HMMPINYIN_DEBUG
	LogLevel   string // HMMPINYIN_LOG_LEVEL
}

// Load reads configuration from the environment, applying defaults for
// anything unset. It never fails: every setting has a usable default.
func Load() Config {
	return Config{
		StorePath:  envOrDefault("HMMPINYIN_STORE_PATH", "./hmm.db"),
		CorpusPath: envOrDefault("HMMPINYIN_CORPUS_PATH", "./2014_corpus_pre.txt"),
		ParamsDir:  envOrDefault("HMMPINYIN_PARAMS_DIR", "./params"),
		Debug:      os.Getenv("HMMPINYIN_DEBUG") != "",
		LogLevel:   envOrDefault("HMMPINYIN_LOG_LEVEL", "info"),
	}
}

// ParamFile joins the configured params directory with one of the four
// fixed JSON parameter file names.
func (c Config) ParamFile(name string) string {
	return filepath.Join(c.ParamsDir, name)
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
