package core

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	goopenai "github.com/sashabaranov/go-openai"
	"gopkg.in/natefinch/lumberjack.v2"

	"github.com/vagledaren/vagledaren/app/core/srv"
	"github.com/vagledaren/vagledaren/app/store/sqlstore"
	"github.com/vagledaren/vagledaren/pkg/ai"
	"github.com/vagledaren/vagledaren/pkg/coach"
	"github.com/vagledaren/vagledaren/pkg/knowledge"
	"github.com/vagledaren/vagledaren/pkg/safe"
	"github.com/vagledaren/vagledaren/pkg/types"
	"github.com/vagledaren/vagledaren/pkg/usage"
)

type Core struct {
	cfg CoreConfig
	srv *srv.Srv

	stores     func() *sqlstore.Provider
	redis      redis.UniversalClient
	httpClient *http.Client
	httpEngine *gin.Engine

	metrics    *Metrics
	semaphores *SemaphoreManager
}

func MustSetupCore(cfg CoreConfig) *Core {
	{
		var writer io.Writer = os.Stdout
		if cfg.Log.Path != "" {
			writer = &lumberjack.Logger{
				Filename:   cfg.Log.Path,
				MaxSize:    500, // megabytes
				MaxBackups: 3,
				MaxAge:     28, // days
				Compress:   true,
			}
		}
		l := slog.New(slog.NewJSONHandler(writer, &slog.HandlerOptions{
			Level: cfg.Log.SlogLevel(),
		}))
		slog.SetDefault(l)
	}

	core := &Core{
		cfg:        cfg,
		httpClient: &http.Client{Timeout: time.Second * 3},
		metrics:    NewMetrics("vagledaren", "core"),
		httpEngine: gin.New(),
	}

	setupSqlStore(core)
	setupRedis(core)

	core.srv = srv.SetupSrvs(
		srv.ApplyAI(cfg.AI),
		srv.ApplyLedger(cfg.Coach.LedgerPath),
		srv.ApplyCoach(core.setupCoachManager),
	)

	core.semaphores = NewSemaphoreManager(core)
	return core
}

func setupSqlStore(core *Core) {
	core.stores = sqlstore.MustSetup(core.cfg.Postgres)
	if err := core.stores().Install(); err != nil {
		panic(err)
	}
	slog.Info("sql store ready")
}

func setupRedis(core *Core) {
	cfg := core.cfg.Redis
	if cfg.Cluster {
		core.redis = redis.NewClusterClient(&redis.ClusterOptions{
			Addrs:    cfg.ClusterAddrs,
			Password: cfg.ClusterPasswd,
		})
		return
	}
	core.redis = redis.NewClient(&redis.Options{
		Addr:         cfg.Addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		PoolSize:     cfg.PoolSize,
		MinIdleConns: cfg.MinIdleConns,
		MaxRetries:   cfg.MaxRetries,
		DialTimeout:  time.Duration(cfg.DialTimeout) * time.Second,
		ReadTimeout:  time.Duration(cfg.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.WriteTimeout) * time.Second,
	})
}

// setupCoachManager builds the knowledge retriever, prompt composer and
// session manager. Every model call lands in the ledger and is mirrored
// into postgres off the request path.
func (s *Core) setupCoachManager(driver ai.ChatAI, ledger *usage.Ledger) *coach.Manager {
	retriever := knowledge.NewRetriever(knowledge.Catalog())
	composer := coach.NewComposer(retriever, s.cfg.Coach.TopK)
	composer.Observe(func(mode types.CoachingMode, elapsed time.Duration, hits int) {
		s.metrics.ComposeObserve(string(mode), elapsed)
		s.metrics.RetrievalHitInc(hits > 0)
	})

	opts := coach.Options{
		TokenBudget: s.cfg.Coach.TokenBudget,
		KeepRecent:  s.cfg.Coach.KeepRecent,
		OnUsage: func(u *goopenai.Usage, model, sessionID string, mode types.CoachingMode) {
			record, err := ledger.Track(u, model, sessionID, mode)
			if err != nil {
				slog.Error("failed to track usage", slog.String("session_id", sessionID), slog.Any("error", err))
				return
			}
			safe.Run(func() {
				ctx, cancel := context.WithTimeout(context.Background(), time.Second*5)
				defer cancel()
				if err := s.Store().UsageRecordStore().Create(ctx, record); err != nil {
					slog.Error("failed to mirror usage record", slog.String("session_id", sessionID), slog.Any("error", err))
				}
			})
		},
	}

	return coach.NewManager(driver, composer, opts)
}

func (s *Core) Cfg() CoreConfig {
	return s.cfg
}

func (s *Core) HttpEngine() *gin.Engine {
	return s.httpEngine
}

func (s *Core) Metrics() *Metrics {
	return s.metrics
}

func (s *Core) Store() *sqlstore.Provider {
	return s.stores()
}

func (s *Core) Srv() *srv.Srv {
	return s.srv
}

func (s *Core) Redis() redis.UniversalClient {
	return s.redis
}

func (s *Core) Semaphores() *SemaphoreManager {
	return s.semaphores
}

func (s *Core) Cache() types.Cache {
	return &Cache{redis: s.redis}
}

type Cache struct {
	redis redis.UniversalClient
}

func (c *Cache) Expire(ctx context.Context, key string, expiration time.Duration) error {
	return c.redis.Expire(ctx, key, expiration).Err()
}

func (c *Cache) SetEx(ctx context.Context, key, value string, expiresAt time.Duration) error {
	return c.redis.SetEx(ctx, key, value, expiresAt).Err()
}

func (c *Cache) Get(ctx context.Context, key string) (string, error) {
	return c.redis.Get(ctx, key).Result()
}
