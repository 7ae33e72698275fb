package core

import (
	"context"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// DistributedSemaphore caps concurrency across instances via redis.
type DistributedSemaphore struct {
	redis      redis.UniversalClient
	key        string
	maxPermits int
	timeout    time.Duration
}

func NewDistributedSemaphore(redis redis.UniversalClient, key string, maxPermits int, timeout time.Duration) *DistributedSemaphore {
	return &DistributedSemaphore{
		redis:      redis,
		key:        key,
		maxPermits: maxPermits,
		timeout:    timeout,
	}
}

func (s *DistributedSemaphore) TryAcquire() bool {
	ctx := context.Background()

	script := `
		local key = KEYS[1]
		local max_permits = tonumber(ARGV[1])
		local timeout = tonumber(ARGV[2])

		local current = tonumber(redis.call('GET', key) or '0')

		if current < max_permits then
			redis.call('INCR', key)
			redis.call('EXPIRE', key, timeout)
			return 1
		else
			return 0
		end
	`

	result, err := s.redis.Eval(ctx, script, []string{s.key}, s.maxPermits, int(s.timeout.Seconds())).Int()
	if err != nil {
		return false
	}

	return result == 1
}

func (s *DistributedSemaphore) Release() {
	ctx := context.Background()

	// never decrement below zero
	script := `
		local key = KEYS[1]
		local current = tonumber(redis.call('GET', key) or '0')

		if current > 0 then
			redis.call('DECR', key)
			return 1
		else
			return 0
		end
	`

	s.redis.Eval(ctx, script, []string{s.key})
}

func (s *DistributedSemaphore) GetCurrent() int {
	ctx := context.Background()
	result, err := s.redis.Get(ctx, s.key).Int()
	if err != nil {
		return 0
	}
	return result
}

// SemaphoreManager hands out the shared semaphores, lazily.
type SemaphoreManager struct {
	core           *Core
	modelCalls     *DistributedSemaphore
	modelCallsOnce sync.Once
}

func NewSemaphoreManager(core *Core) *SemaphoreManager {
	return &SemaphoreManager{
		core: core,
	}
}

// ModelCalls limits concurrent chat completion requests platform-wide.
func (m *SemaphoreManager) ModelCalls() *DistributedSemaphore {
	m.modelCallsOnce.Do(func() {
		maxConcurrency := 10
		if m.core.cfg.Semaphore.Coach.ModelMaxConcurrency > 0 {
			maxConcurrency = m.core.cfg.Semaphore.Coach.ModelMaxConcurrency
		}

		m.modelCalls = NewDistributedSemaphore(
			m.core.Redis(),
			"vgl:semaphore:model_calls",
			maxConcurrency,
			time.Minute*5,
		)
	})
	return m.modelCalls
}
