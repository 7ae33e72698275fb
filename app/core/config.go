package core

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/vagledaren/vagledaren/app/core/srv"
)

func MustLoadBaseConfig(path string) CoreConfig {
	if path == "" {
		return LoadBaseConfigFromENV()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}

	conf := &CoreConfig{}
	conf.SetConfigBytes(raw)

	if err = toml.Unmarshal(raw, conf); err != nil {
		panic(err)
	}

	conf.Coach.FillDefault()
	return *conf
}

func (c CoreConfig) LoadCustomConfig(cfg any) error {
	if len(c.bytes) == 0 {
		return nil
	}
	if err := toml.Unmarshal(c.bytes, cfg); err != nil {
		return err
	}
	return nil
}

type CustomConfig[T any] struct {
	CustomConfig T `toml:"custom_config"`
}

func NewCustomConfigPayload[T any]() CustomConfig[T] {
	return CustomConfig[T]{}
}

func LoadBaseConfigFromENV() CoreConfig {
	var c CoreConfig
	c.FromENV()
	c.Coach.FillDefault()
	return c
}

type CoreConfig struct {
	Addr     string      `toml:"addr"`
	Log      Log         `toml:"log"`
	Postgres PGConfig    `toml:"postgres"`
	Redis    RedisConfig `toml:"redis"`

	AI    srv.AIConfig `toml:"ai"`
	Coach CoachConfig  `toml:"coach"`

	Semaphore SemaphoreConfig `toml:"semaphore"`

	bytes []byte `toml:"-"`
}

func (c *CoreConfig) SetConfigBytes(raw []byte) {
	c.bytes = raw
}

// CoachConfig tunes conversation truncation and the cost ledger.
type CoachConfig struct {
	TokenBudget int    `toml:"token_budget"` // prompt token budget before history truncation
	KeepRecent  int    `toml:"keep_recent"`  // messages kept after truncation, system prompt excluded
	TopK        int    `toml:"top_k"`        // knowledge documents injected per turn
	LedgerPath  string `toml:"ledger_path"`  // JSON cost ledger location
}

func (c *CoachConfig) FillDefault() {
	if c.TokenBudget <= 0 {
		c.TokenBudget = 4000
	}
	if c.KeepRecent <= 0 {
		c.KeepRecent = 10
	}
	if c.TopK <= 0 {
		c.TopK = 3
	}
	if c.LedgerPath == "" {
		c.LedgerPath = "usage_log.json"
	}
}

type SemaphoreConfig struct {
	Coach CoachSemaphoreConfig `toml:"coach"`
}

type CoachSemaphoreConfig struct {
	ModelMaxConcurrency int `toml:"model_max_concurrency"` // concurrent model calls, default 10
}

func (c *CoreConfig) FromENV() {
	c.Addr = os.Getenv("VGL_API_SERVICE_ADDRESS")
	c.Log.FromENV()
	c.Postgres.FromENV()
	c.Redis.FromENV()
	c.AI.Token = os.Getenv("VGL_OPENAI_TOKEN")
	c.AI.Proxy = os.Getenv("VGL_OPENAI_PROXY")
	c.AI.Model.ChatModel = os.Getenv("VGL_OPENAI_CHAT_MODEL")
	c.Coach.LedgerPath = os.Getenv("VGL_USAGE_LEDGER_PATH")
}

type PGConfig struct {
	DSN string `toml:"dsn"`
}

func (m *PGConfig) FromENV() {
	m.DSN = os.Getenv("VGL_API_POSTGRESQL_DSN")
}

func (c PGConfig) FormatDSN() string {
	return c.DSN
}

type RedisConfig struct {
	Addr     string `toml:"addr"`
	Password string `toml:"password"`
	DB       int    `toml:"db"`

	Cluster       bool     `toml:"cluster"`
	ClusterAddrs  []string `toml:"cluster_addrs"`
	ClusterPasswd string   `toml:"cluster_passwd"`

	PoolSize     int `toml:"pool_size"`
	MinIdleConns int `toml:"min_idle_conns"`
	MaxRetries   int `toml:"max_retries"`
	DialTimeout  int `toml:"dial_timeout"`
	ReadTimeout  int `toml:"read_timeout"`
	WriteTimeout int `toml:"write_timeout"`
}

func (r *RedisConfig) FromENV() {
	r.Addr = os.Getenv("VGL_REDIS_ADDR")
	r.Password = os.Getenv("VGL_REDIS_PASSWORD")
	if dbStr := os.Getenv("VGL_REDIS_DB"); dbStr != "" {
		if db, err := strconv.Atoi(dbStr); err == nil {
			r.DB = db
		}
	}
}

type Log struct {
	Level string `toml:"level"`
	Path  string `toml:"path"`
}

func (l *Log) FromENV() {
	l.Level = os.Getenv("VGL_API_LOG_LEVEL")
	l.Path = os.Getenv("VGL_API_LOG_PATH")
}

func (l *Log) SlogLevel() slog.Level {
	switch strings.ToLower(l.Level) {
	case "info":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelDebug
	}
}
