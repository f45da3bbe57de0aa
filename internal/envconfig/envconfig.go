// Package envconfig reads the demo command's settings from the process
// environment, falling back to an optional dotenv file and then to defaults.
package envconfig

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/hsiuhsiu/rsademo-go/pkg/rsademo"
)

// Environment keys.
const (
	KeyBits             = "RSADEMO_BITS"
	KeyMinBits          = "RSADEMO_MIN_BITS"
	KeyRounds           = "RSADEMO_ROUNDS"
	KeyMaxExponentSteps = "RSADEMO_MAX_EXPONENT_STEPS"
	KeyLogLevel         = "RSADEMO_LOG_LEVEL"
)

// DefaultBits is the prime width used when RSADEMO_BITS is unset.
const DefaultBits = 64

// Settings is the resolved demo configuration.
type Settings struct {
	Bits             uint64
	MinBits          uint64
	Rounds           int
	MaxExponentSteps uint64
	LogLevel         slog.Level
}

// KeyGenConfig maps the settings onto an rsademo.Config.
func (s *Settings) KeyGenConfig() rsademo.Config {
	cfg := rsademo.DefaultConfig()
	cfg.MinBits = s.MinBits
	cfg.PrimalityRounds = s.Rounds
	cfg.MaxExponentSteps = s.MaxExponentSteps
	return cfg
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if s.Bits < s.MinBits {
		return fmt.Errorf("%s=%d is below %s=%d", KeyBits, s.Bits, KeyMinBits, s.MinBits)
	}
	if s.Rounds < 0 {
		return fmt.Errorf("%s must be non-negative", KeyRounds)
	}
	return nil
}

// Loader resolves Settings. Process environment wins over the dotenv file.
type Loader struct {
	envFile string
	lookup  func(string) (string, bool)
}

// NewLoader returns a Loader reading envFile if it exists. An empty path
// disables the file.
func NewLoader(envFile string) *Loader {
	return &Loader{envFile: envFile, lookup: os.LookupEnv}
}

// Load reads and validates the settings.
func (l *Loader) Load() (*Settings, error) {
	file := map[string]string{}
	if l.envFile != "" {
		values, err := godotenv.Read(l.envFile)
		switch {
		case err == nil:
			file = values
		case errors.Is(err, fs.ErrNotExist):
		default:
			return nil, fmt.Errorf("read %s: %w", l.envFile, err)
		}
	}

	get := func(key, def string) string {
		if v, ok := l.lookup(key); ok && v != "" {
			return v
		}
		if v := file[key]; v != "" {
			return v
		}
		return def
	}

	var s Settings
	var err error
	if s.Bits, err = parseUint(KeyBits, get(KeyBits, strconv.Itoa(DefaultBits))); err != nil {
		return nil, err
	}
	if s.MinBits, err = parseUint(KeyMinBits, get(KeyMinBits, strconv.Itoa(rsademo.DefaultMinBits))); err != nil {
		return nil, err
	}
	if s.MaxExponentSteps, err = parseUint(KeyMaxExponentSteps, get(KeyMaxExponentSteps, strconv.Itoa(rsademo.DefaultMaxExponentSteps))); err != nil {
		return nil, err
	}
	rounds := get(KeyRounds, "20")
	if s.Rounds, err = strconv.Atoi(rounds); err != nil {
		return nil, fmt.Errorf("parse %s=%q: %w", KeyRounds, rounds, err)
	}
	level := get(KeyLogLevel, "info")
	if err := s.LogLevel.UnmarshalText([]byte(strings.ToUpper(level))); err != nil {
		return nil, fmt.Errorf("parse %s=%q: %w", KeyLogLevel, level, err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

func parseUint(key, raw string) (uint64, error) {
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s=%q: %w", key, raw, err)
	}
	return v, nil
}
