// internal/client/config/config.go
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	LogFile         string
	Debug           bool
	ReplyText       string
	ReplyDelay      time.Duration
	AutoReply       bool
	ScrollTolerance int
	InsertHighlight time.Duration
	Seed            bool
}

func Default() Config {
	return Config{
		LogFile:         "client.log",
		ReplyText:       "swaggy",
		ReplyDelay:      800 * time.Millisecond,
		ScrollTolerance: 1,
		InsertHighlight: 600 * time.Millisecond,
		Seed:            true,
	}
}

// Load reads the given .env files (".env" when none are named) and then the
// process environment. Missing files are ignored.
func Load(files ...string) (Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("loading %s: %w", f, err)
		}
	}
	return FromEnv()
}

// FromEnv builds a Config from CHAT_* variables on top of Default.
func FromEnv() (Config, error) {
	cfg := Default()

	if v := os.Getenv("CHAT_LOG_FILE"); v != "" {
		cfg.LogFile = v
	}
	if v := os.Getenv("CHAT_REPLY_TEXT"); v != "" {
		cfg.ReplyText = v
	}

	var err error
	if cfg.Debug, err = envBool("CHAT_DEBUG", cfg.Debug); err != nil {
		return Config{}, err
	}
	if cfg.AutoReply, err = envBool("CHAT_AUTO_REPLY", cfg.AutoReply); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = envBool("CHAT_SEED", cfg.Seed); err != nil {
		return Config{}, err
	}
	if cfg.ReplyDelay, err = envMillis("CHAT_REPLY_DELAY_MS", cfg.ReplyDelay); err != nil {
		return Config{}, err
	}
	if cfg.InsertHighlight, err = envMillis("CHAT_INSERT_HIGHLIGHT_MS", cfg.InsertHighlight); err != nil {
		return Config{}, err
	}
	if cfg.ScrollTolerance, err = envInt("CHAT_SCROLL_TOLERANCE", cfg.ScrollTolerance); err != nil {
		return Config{}, err
	}
	if cfg.ScrollTolerance < 0 {
		return Config{}, fmt.Errorf("CHAT_SCROLL_TOLERANCE: must not be negative, got %d", cfg.ScrollTolerance)
	}

	return cfg, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envMillis(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s: must not be negative, got %d", key, n)
	}
	return time.Duration(n) * time.Millisecond, nil
}
