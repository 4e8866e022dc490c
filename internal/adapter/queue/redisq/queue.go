// Package redisq implements the delayed click queue on Redis sorted sets.
//
// Delivery is at-least-once: Enqueue scores each envelope with its deliver-at
// time; the consume loop atomically claims due messages into a processing set
// with a visibility deadline, and a reclaim pass requeues claims whose worker
// died before acking. Fatal messages go to a dead-letter list.
package redisq

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/example/redirector/internal/entity"
	"github.com/example/redirector/internal/service"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const (
	delayedKey    = "queue:clicks:delayed"
	processingKey = "queue:clicks:processing"
	deadLetterKey = "queue:clicks:dead"

	opTimeout = 5 * time.Second
)

// claimDue moves up to ARGV[3] due members from the delayed set into the
// processing set with the visibility deadline ARGV[2], returning them.
var claimDue = redis.NewScript(`
local due = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1], 'LIMIT', 0, ARGV[3])
for _, msg in ipairs(due) do
  redis.call('ZREM', KEYS[1], msg)
  redis.call('ZADD', KEYS[2], ARGV[2], msg)
end
return due
`)

// requeueStalled moves processing members whose visibility deadline passed
// back into the delayed set for redelivery.
var requeueStalled = redis.NewScript(`
local stalled = redis.call('ZRANGEBYSCORE', KEYS[1], '-inf', ARGV[1])
for _, msg in ipairs(stalled) do
  redis.call('ZREM', KEYS[1], msg)
  redis.call('ZADD', KEYS[2], ARGV[1], msg)
end
return #stalled
`)

// Handler processes one raw queue payload. A nil return acks the message;
// service.IsFatal errors dead-letter it; anything else redelivers it.
type Handler func(ctx context.Context, payload []byte) error

type Options struct {
	PollEvery  time.Duration // claim poll interval
	Visibility time.Duration // claim lease before a crashed worker's message is requeued
	RetryDelay time.Duration // redelivery delay after a retryable failure
	Workers    int
	BatchSize  int
}

type Queue struct {
	log  *zap.Logger
	rdb  *redis.Client
	opts Options
}

func New(log *zap.Logger, rdb *redis.Client, opts Options) *Queue {
	if opts.PollEvery <= 0 {
		opts.PollEvery = time.Second
	}
	if opts.Visibility <= 0 {
		opts.Visibility = 30 * time.Second
	}
	if opts.RetryDelay <= 0 {
		opts.RetryDelay = 5 * time.Second
	}
	if opts.Workers <= 0 {
		opts.Workers = 4
	}
	if opts.BatchSize <= 0 {
		opts.BatchSize = 100
	}
	return &Queue{log: log, rdb: rdb, opts: opts}
}

// Enqueue implements service.Queue.
func (q *Queue) Enqueue(ctx context.Context, ev entity.ClickEvent, delay time.Duration) error {
	env, err := entity.NewClickEnvelope(ev)
	if err != nil {
		return fmt.Errorf("encode click event: %w", err)
	}
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}
	deliverAt := time.Now().Add(delay)
	err = q.rdb.ZAdd(ctx, delayedKey, redis.Z{
		Score:  float64(deliverAt.UnixMilli()),
		Member: payload,
	}).Err()
	if err != nil {
		return fmt.Errorf("%w: %v", service.ErrQueueUnavailable, err)
	}
	return nil
}

// Run drains the queue with a pool of workers until ctx is done.
func (q *Queue) Run(ctx context.Context, handle Handler) {
	claimed := make(chan []byte, q.opts.Workers)
	var wg sync.WaitGroup
	for i := 0; i < q.opts.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for payload := range claimed {
				q.process(ctx, payload, handle)
			}
		}()
	}

	poll := time.NewTicker(q.opts.PollEvery)
	defer poll.Stop()
	reclaim := time.NewTicker(q.opts.Visibility)
	defer reclaim.Stop()

	for {
		select {
		case <-ctx.Done():
			close(claimed)
			wg.Wait()
			return
		case <-poll.C:
			q.claim(ctx, claimed)
		case <-reclaim.C:
			q.requeue(ctx)
		}
	}
}

func (q *Queue) claim(ctx context.Context, out chan<- []byte) {
	now := time.Now()
	msgs, err := claimDue.Run(ctx, q.rdb,
		[]string{delayedKey, processingKey},
		now.UnixMilli(),
		now.Add(q.opts.Visibility).UnixMilli(),
		q.opts.BatchSize,
	).StringSlice()
	if err != nil {
		q.log.Warn("queue claim failed", zap.Error(err))
		return
	}
	for _, msg := range msgs {
		select {
		case out <- []byte(msg):
		case <-ctx.Done():
			// already claimed; the visibility reclaim will requeue the rest
			return
		}
	}
}

func (q *Queue) requeue(ctx context.Context) {
	n, err := requeueStalled.Run(ctx, q.rdb,
		[]string{processingKey, delayedKey},
		time.Now().UnixMilli(),
	).Int()
	if err != nil {
		q.log.Warn("queue reclaim failed", zap.Error(err))
		return
	}
	if n > 0 {
		q.log.Info("requeued stalled messages", zap.Int("count", n))
	}
}

func (q *Queue) process(ctx context.Context, payload []byte, handle Handler) {
	err := handle(ctx, payload)
	switch {
	case err == nil:
		q.ack(payload)
	case service.IsFatal(err):
		q.deadLetter(payload, err)
	default:
		q.redeliver(payload, err)
	}
}

func (q *Queue) ack(payload []byte) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	if err := q.rdb.ZRem(ctx, processingKey, payload).Err(); err != nil {
		// the reclaim pass will redeliver; idempotent persistence absorbs it
		q.log.Warn("queue ack failed", zap.Error(err))
	}
}

func (q *Queue) redeliver(payload []byte, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	pipe := q.rdb.TxPipeline()
	pipe.ZRem(ctx, processingKey, payload)
	pipe.ZAdd(ctx, delayedKey, redis.Z{
		Score:  float64(time.Now().Add(q.opts.RetryDelay).UnixMilli()),
		Member: payload,
	})
	if _, err := pipe.Exec(ctx); err != nil {
		q.log.Warn("queue redeliver failed", zap.Error(err))
	}
	q.log.Warn("message redelivery scheduled",
		zap.Duration("retry_delay", q.opts.RetryDelay),
		zap.Error(cause),
	)
}

func (q *Queue) deadLetter(payload []byte, cause error) {
	ctx, cancel := context.WithTimeout(context.Background(), opTimeout)
	defer cancel()
	pipe := q.rdb.TxPipeline()
	pipe.ZRem(ctx, processingKey, payload)
	pipe.LPush(ctx, deadLetterKey, payload)
	if _, err := pipe.Exec(ctx); err != nil {
		q.log.Error("dead-letter push failed", zap.Error(err))
	}
	q.log.Error("message dead-lettered",
		zap.ByteString("payload", payload),
		zap.Error(cause),
	)
}
