package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/example/redirector/internal/adapter/queue/redisq"
	"github.com/example/redirector/internal/adapter/store/postgres"
	redisstore "github.com/example/redirector/internal/adapter/store/redis"
	http_server "github.com/example/redirector/internal/adapter/transport/http"
	natsworkflow "github.com/example/redirector/internal/adapter/workflow/nats"
	"github.com/example/redirector/internal/service"
	"github.com/example/redirector/pkg/config"
	"github.com/nats-io/nats.go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type AppInfo struct {
	Name      string
	BuildTime string
	Commit    string
	Release   string
}

type App struct {
	cfg  config.Config
	info *AppInfo
	log  *zap.Logger

	store      *postgres.Store
	rdb        *redis.Client
	nc         *nats.Conn
	queue      *redisq.Queue
	aggregator *service.Aggregator
	producer   *service.Producer
	consumer   *service.Consumer
	server     *http_server.Server
}

func New(cfg config.Config, info *AppInfo, log *zap.Logger) (*App, error) {
	// 1) Store (Postgres)
	st, err := postgres.New(cfg.DatabaseURL, log)
	if err != nil {
		return nil, err
	}
	if err := st.Init(context.Background()); err != nil {
		return nil, err
	}

	// 2) Redis (queue + cool-down markers)
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		return nil, fmt.Errorf("redis ping: %w", err)
	}

	// 3) NATS (evaluation workflow hand-off)
	nc, err := nats.Connect(cfg.NATSURL,
		nats.Name(info.Name),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.ReconnectWait(time.Second),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect: %w", err)
	}

	// 4) Core services
	queue := redisq.New(log, rdb, redisq.Options{
		PollEvery:  cfg.QueuePollEvery,
		Visibility: cfg.QueueVisibility,
		RetryDelay: cfg.QueueRetryDelay,
		Workers:    cfg.QueueWorkers,
	})
	agg := service.NewAggregator(log, st, cfg.AggIdleEvict, cfg.AggInboxSize)
	producer := service.NewProducer(log, queue, cfg.QueueDelay)
	resolver := service.NewResolver(log, st)
	scheduler := service.NewScheduler(log, redisstore.NewCooldownStore(rdb), natsworkflow.NewStarter(log, nc), cfg.EvalCooldown)

	var sink service.CounterSink
	if cfg.CounterTier == config.TierConfirmed {
		sink = agg
	}
	consumer := service.NewConsumer(log, st, scheduler, sink)

	// 5) HTTP server
	srv := http_server.NewServer(log, http_server.Config{
		Addr:              cfg.ListenAddr,
		AdminToken:        cfg.AdminToken,
		ResolveTimeout:    cfg.ResolveTimeout,
		OptimisticCounter: cfg.CounterTier == config.TierOptimistic,
	}, resolver, producer, agg, st)

	return &App{
		cfg:        cfg,
		info:       info,
		log:        log,
		store:      st,
		rdb:        rdb,
		nc:         nc,
		queue:      queue,
		aggregator: agg,
		producer:   producer,
		consumer:   consumer,
		server:     srv,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	// Start the queue consumer loop
	bgCtx, cancel := context.WithCancel(ctx)
	defer cancel()
	queueDone := make(chan struct{})
	go func() {
		defer close(queueDone)
		a.queue.Run(bgCtx, a.consumer.OnMessage)
	}()

	// Start HTTP
	httpErrCh := make(chan error, 1)
	go func() { httpErrCh <- a.server.Start() }()

	var runErr error
	select {
	case <-ctx.Done():
		// graceful
		runErr = ErrAppShutdownNormal
	case err := <-httpErrCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			runErr = ErrAppStartup
		} else {
			runErr = ErrAppShutdownNormal
		}
	}

	// Graceful shutdown: stop taking requests, drain the queue workers,
	// flush live counters, then close the collaborators.
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), a.cfg.ShutdownWait)
	defer cancelShutdown()
	_ = a.server.Shutdown(shutdownCtx)
	cancel()
	select {
	case <-queueDone:
	case <-shutdownCtx.Done():
		a.log.Warn("queue drain timed out")
	}
	a.aggregator.Stop(shutdownCtx)
	_ = a.nc.Drain()
	_ = a.rdb.Close()
	a.store.Close()

	return runErr
}
