package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	cfg, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
	require.Equal(t, "swaggy", cfg.ReplyText)
	require.True(t, cfg.Seed)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("CHAT_LOG_FILE", "/tmp/chat.log")
	t.Setenv("CHAT_DEBUG", "true")
	t.Setenv("CHAT_REPLY_TEXT", "later")
	t.Setenv("CHAT_REPLY_DELAY_MS", "0")
	t.Setenv("CHAT_AUTO_REPLY", "1")
	t.Setenv("CHAT_SCROLL_TOLERANCE", "3")
	t.Setenv("CHAT_INSERT_HIGHLIGHT_MS", "250")
	t.Setenv("CHAT_SEED", "false")

	cfg, err := FromEnv()

	require.NoError(t, err)
	require.Equal(t, Config{
		LogFile:         "/tmp/chat.log",
		Debug:           true,
		ReplyText:       "later",
		ReplyDelay:      0,
		AutoReply:       true,
		ScrollTolerance: 3,
		InsertHighlight: 250 * time.Millisecond,
		Seed:            false,
	}, cfg)
}

func TestFromEnv_InvalidValues(t *testing.T) {
	tests := []struct {
		key   string
		value string
	}{
		{"CHAT_DEBUG", "maybe"},
		{"CHAT_AUTO_REPLY", "yes please"},
		{"CHAT_REPLY_DELAY_MS", "soon"},
		{"CHAT_REPLY_DELAY_MS", "-1"},
		{"CHAT_SCROLL_TOLERANCE", "-2"},
		{"CHAT_INSERT_HIGHLIGHT_MS", "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.key+"="+tt.value, func(t *testing.T) {
			t.Setenv(tt.key, tt.value)

			_, err := FromEnv()

			require.Error(t, err)
			require.Contains(t, err.Error(), tt.key)
		})
	}
}

func TestLoad_MissingFileIsIgnored(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.env"))

	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoad_ReadsEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chat.env")
	require.NoError(t, os.WriteFile(path, []byte("CHAT_REPLY_TEXT=from file\nCHAT_AUTO_REPLY=true\n"), 0o644))
	t.Cleanup(func() {
		os.Unsetenv("CHAT_REPLY_TEXT")
		os.Unsetenv("CHAT_AUTO_REPLY")
	})

	cfg, err := Load(path)

	require.NoError(t, err)
	require.Equal(t, "from file", cfg.ReplyText)
	require.True(t, cfg.AutoReply)
}
