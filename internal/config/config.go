package config

import (
	"os"
	"strconv"
)

// Config holds all attune configuration, read from the environment.
type Config struct {
	Source Source
	Engine Engine
	Output Output
	Log    Log
}

// Source selects where reflection records come from.
type Source struct {
	Kind string // "stdin" or "file"
	Path string // input path when Kind is "file"
}

// Engine holds enrichment settings.
type Engine struct {
	TaxonomyPath string // empty means the built-in wheel
	Provider     string // "uniform" or "onnx"
	ModelPath    string
	VocabPath    string
	HeadPath     string
	Concurrency  int // parallel enrichments in batch mode
}

// Output selects where enriched results go.
type Output struct {
	Kind  string // "stdout", "file", or a comma-separated list for fan-out
	Path  string
	Trace bool // include per-rule trace entries in emitted records
}

// Log holds logging settings.
type Log struct {
	Level string
}

// Load reads configuration from ATTUNE_* environment variables with defaults
// that work out of the box: NDJSON on stdin, built-in taxonomy, no model,
// NDJSON on stdout.
func Load() Config {
	return Config{
		Source: Source{
			Kind: getenv("ATTUNE_SOURCE", "stdin"),
			Path: os.Getenv("ATTUNE_INPUT_PATH"),
		},
		Engine: Engine{
			TaxonomyPath: os.Getenv("ATTUNE_TAXONOMY_PATH"),
			Provider:     getenv("ATTUNE_PROVIDER", "uniform"),
			ModelPath:    getenv("ATTUNE_MODEL_PATH", "models/encoder.onnx"),
			VocabPath:    getenv("ATTUNE_VOCAB_PATH", "models/vocab.txt"),
			HeadPath:     getenv("ATTUNE_HEAD_PATH", "models/classifier_head.safetensors"),
			Concurrency:  getenvInt("ATTUNE_CONCURRENCY", 4),
		},
		Output: Output{
			Kind:  getenv("ATTUNE_OUTPUT", "stdout"),
			Path:  os.Getenv("ATTUNE_OUTPUT_PATH"),
			Trace: getenvBool("ATTUNE_TRACE", true),
		},
		Log: Log{
			Level: getenv("ATTUNE_LOG_LEVEL", "info"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getenvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
