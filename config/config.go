// Package config loads the dealer settings from a JSON file and the environment.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/luca-patrignani/card-dealer/domain/random"
)

const (
	MinPlayers = 3
	MaxPlayers = 8
)

const (
	SourceMath   = "math"
	SourceCrypto = "crypto"
)

var ErrPlayersOutOfRange = fmt.Errorf("number of players must be between %d and %d", MinPlayers, MaxPlayers)

type Config struct {
	// Players is 0 when neither the file nor the environment set it.
	Players  int
	Shuffle  bool
	Source   string
	Seed     *uint64
	LogLevel slog.Level
}

// playerCount accepts both 5 and "5", as older userconf.json files quote it.
type playerCount int

func (p *playerCount) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*p = playerCount(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("numPlayers must be a number, got %s", data)
	}
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("invalid numPlayers %q: %w", s, err)
	}
	*p = playerCount(n)
	return nil
}

// file mirrors the JSON configuration file, e.g. {"numPlayers": 5}.
type file struct {
	NumPlayers *playerCount `json:"numPlayers"`
	Shuffle    *bool        `json:"shuffle"`
	Source     string       `json:"source"`
	Seed       *uint64      `json:"seed"`
	LogLevel   string       `json:"logLevel"`
}

// Load builds the configuration from defaults, then the JSON file at path
// (skipped when path is empty), then the environment.
func Load(path string) (Config, error) {
	c := Config{
		Shuffle:  true,
		Source:   SourceMath,
		LogLevel: slog.LevelInfo,
	}

	if path != "" {
		if err := c.readFile(path); err != nil {
			return Config{}, err
		}
	}
	if err := c.readEnv(); err != nil {
		return Config{}, err
	}

	if err := c.validateSource(); err != nil {
		return Config{}, err
	}
	if c.Players != 0 {
		if err := c.validatePlayers(); err != nil {
			return Config{}, err
		}
	}
	return c, nil
}

func (c *Config) readFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}
	var f file
	if err := json.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	if f.NumPlayers != nil {
		if *f.NumPlayers == 0 {
			return fmt.Errorf("%w: got 0", ErrPlayersOutOfRange)
		}
		c.Players = int(*f.NumPlayers)
	}
	if f.Shuffle != nil {
		c.Shuffle = *f.Shuffle
	}
	if f.Source != "" {
		c.Source = f.Source
	}
	if f.Seed != nil {
		c.Seed = f.Seed
	}
	if f.LogLevel != "" {
		level, err := parseLogLevel(f.LogLevel)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	return nil
}

func (c *Config) readEnv() error {
	if v := os.Getenv("NUM_PLAYERS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid NUM_PLAYERS %q: %w", v, err)
		}
		if n == 0 {
			return fmt.Errorf("%w: got 0", ErrPlayersOutOfRange)
		}
		c.Players = n
	}
	if v := os.Getenv("SHUFFLE"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid SHUFFLE %q: %w", v, err)
		}
		c.Shuffle = b
	}
	if v := os.Getenv("RANDOM_SOURCE"); v != "" {
		c.Source = v
	}
	if v := os.Getenv("RANDOM_SEED"); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid RANDOM_SEED %q: %w", v, err)
		}
		c.Seed = &seed
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		level, err := parseLogLevel(v)
		if err != nil {
			return err
		}
		c.LogLevel = level
	}
	return nil
}

// Validate checks the player count and the random source.
func (c Config) Validate() error {
	if err := c.validatePlayers(); err != nil {
		return err
	}
	return c.validateSource()
}

func (c Config) validatePlayers() error {
	if c.Players < MinPlayers || c.Players > MaxPlayers {
		return fmt.Errorf("%w: got %d", ErrPlayersOutOfRange, c.Players)
	}
	return nil
}

func (c Config) validateSource() error {
	switch c.Source {
	case SourceMath:
	case SourceCrypto:
		if c.Seed != nil {
			return errors.New("a seed cannot be used with the crypto source")
		}
	default:
		return fmt.Errorf("invalid random source %q", c.Source)
	}
	return nil
}

// RandomSource builds the configured random source. A seed selects a
// deterministic math source.
func (c Config) RandomSource() random.Source {
	if c.Source == SourceCrypto {
		return random.NewCrypto()
	}
	if c.Seed != nil {
		return random.NewSeeded(*c.Seed)
	}
	return random.New()
}

func parseLogLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, fmt.Errorf("invalid log level %q", s)
	}
}
