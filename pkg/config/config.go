package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config holds runtime settings read from the environment. Paths and the
// round size can still be overridden by CLI flags.
type Config struct {
	// InterpreterURL is the endpoint of the natural-language interpreter
	// service. Empty disables delegation; the local engine answers everything.
	InterpreterURL     string        `env:"SPELLTUTOR_INTERPRETER_URL"`
	InterpreterTimeout time.Duration `env:"SPELLTUTOR_INTERPRETER_TIMEOUT" env-default:"10s"`

	// RoundSize is the number of words served per round.
	RoundSize int `env:"SPELLTUTOR_ROUND_SIZE" env-default:"5"`

	// WordListURL is fetched when the word list file is missing.
	WordListURL string `env:"SPELLTUTOR_WORDLIST_URL"`

	// DBPath is the SQLite word bank location.
	DBPath string `env:"SPELLTUTOR_DB" env-default:"spelltutor.db"`
}

// Load reads configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("read env config: %w", err)
	}
	return cfg, nil
}
