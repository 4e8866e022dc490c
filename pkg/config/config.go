package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenAddr  string
	DatabaseURL string
	RedisAddr   string
	NATSURL     string
	LogLevel    string
	AdminToken  string

	QueueDelay      time.Duration
	QueuePollEvery  time.Duration
	QueueVisibility time.Duration
	QueueRetryDelay time.Duration
	QueueWorkers    int

	EvalCooldown time.Duration
	CounterTier  string

	AggIdleEvict time.Duration
	AggInboxSize int

	ResolveTimeout time.Duration
	ShutdownWait   time.Duration
	MaxCPU         int
}

const (
	TierOptimistic = "optimistic"
	TierConfirmed  = "confirmed"
)

func Parse() (*Config, error) {
	var errs []error
	c := &Config{}
	c.ListenAddr = getenv("LISTEN_ADDR", ":3000")
	c.DatabaseURL = getenv("DATABASE_URL", "")
	c.RedisAddr = getenv("REDIS_ADDR", "")
	c.NATSURL = getenv("NATS_URL", "nats://127.0.0.1:4222")
	c.LogLevel = getenv("LOG_LEVEL", "info")
	c.AdminToken = getenv("ADMIN_TOKEN", "")
	c.QueueDelay = mustDuration(getenv("QUEUE_DELAY", "600s"))
	c.QueuePollEvery = mustDuration(getenv("QUEUE_POLL_EVERY", "1s"))
	c.QueueVisibility = mustDuration(getenv("QUEUE_VISIBILITY", "30s"))
	c.QueueRetryDelay = mustDuration(getenv("QUEUE_RETRY_DELAY", "5s"))
	c.QueueWorkers = mustInt(getenv("QUEUE_WORKERS", "4"))
	c.EvalCooldown = mustDuration(getenv("EVAL_COOLDOWN", "3600s"))
	c.CounterTier = getenv("COUNTER_TIER", TierOptimistic)
	c.AggIdleEvict = mustDuration(getenv("AGG_IDLE_EVICT", "300s"))
	c.AggInboxSize = mustInt(getenv("AGG_INBOX_SIZE", "256"))
	c.ResolveTimeout = mustDuration(getenv("RESOLVE_TIMEOUT", "2s"))
	c.ShutdownWait = mustDuration(getenv("SHUTDOWN_WAIT", "5s"))
	c.MaxCPU = mustInt(getenv("MAX_CPU", "0"))

	if c.DatabaseURL == "" {
		errs = append(errs, fmt.Errorf("DATABASE_URL is required"))
	}
	if c.RedisAddr == "" {
		errs = append(errs, fmt.Errorf("REDIS_ADDR is required"))
	}
	if c.CounterTier != TierOptimistic && c.CounterTier != TierConfirmed {
		errs = append(errs, fmt.Errorf("COUNTER_TIER must be %q or %q", TierOptimistic, TierConfirmed))
	}
	if c.QueueWorkers <= 0 {
		errs = append(errs, fmt.Errorf("QUEUE_WORKERS must be > 0"))
	}
	if c.AggInboxSize <= 0 {
		errs = append(errs, fmt.Errorf("AGG_INBOX_SIZE must be > 0"))
	}
	if len(errs) > 0 {
		return nil, joinErrs(errs)
	}
	return c, nil
}

func getenv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}
func mustInt(s string) int { n, _ := strconv.Atoi(s); return n }
func mustDuration(s string) time.Duration {
	d, _ := time.ParseDuration(s)
	if d <= 0 {
		return time.Second
	}
	return d
}

func joinErrs(errs []error) error {
	msg := ""
	for i, e := range errs {
		if i > 0 {
			msg += "; "
		}
		msg += e.Error()
	}
	return fmt.Errorf("%s", msg)
}
