package core

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/vagledaren/vagledaren/pkg/testutils"
)

func TestMain(m *testing.M) {
	testutils.LoadEnv()
	os.Exit(m.Run())
}

func TestLoadBaseConfigFromENV(t *testing.T) {
	t.Setenv("VGL_API_SERVICE_ADDRESS", "127.0.0.1:8999")
	t.Setenv("VGL_API_POSTGRESQL_DSN", "postgres://localhost/vgl_test")
	t.Setenv("VGL_OPENAI_CHAT_MODEL", "gpt-4o-mini")
	t.Setenv("VGL_USAGE_LEDGER_PATH", "")

	cfg := LoadBaseConfigFromENV()
	assert.Equal(t, "127.0.0.1:8999", cfg.Addr)
	assert.Equal(t, "postgres://localhost/vgl_test", cfg.Postgres.FormatDSN())
	assert.Equal(t, "gpt-4o-mini", cfg.AI.Model.ChatModel)

	// FillDefault runs after the ENV pass.
	assert.Equal(t, "usage_log.json", cfg.Coach.LedgerPath)
	assert.Equal(t, 4000, cfg.Coach.TokenBudget)

	addr := testutils.GetEnvOrDefault("VGL_API_SERVICE_ADDRESS", "127.0.0.1:8080")
	assert.Equal(t, cfg.Addr, addr)
}

func TestCoachConfigFillDefault(t *testing.T) {
	var c CoachConfig
	c.FillDefault()
	assert.Equal(t, 4000, c.TokenBudget)
	assert.Equal(t, 10, c.KeepRecent)
	assert.Equal(t, 3, c.TopK)
	assert.Equal(t, "usage_log.json", c.LedgerPath)

	c = CoachConfig{TokenBudget: 2000, KeepRecent: 4, TopK: 5, LedgerPath: "/tmp/ledger.json"}
	c.FillDefault()
	assert.Equal(t, 2000, c.TokenBudget)
	assert.Equal(t, 4, c.KeepRecent)
}

func TestLogSlogLevel(t *testing.T) {
	l := Log{Level: "info"}
	assert.Equal(t, slog.LevelInfo, l.SlogLevel())
	l.Level = "ERROR"
	assert.Equal(t, slog.LevelError, l.SlogLevel())
	l.Level = ""
	assert.Equal(t, slog.LevelDebug, l.SlogLevel())
}
