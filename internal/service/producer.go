package service

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/example/redirector/internal/entity"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const enqueueTimeout = 5 * time.Second

// Producer builds click events on the redirect fast path and dispatches them
// to the queue without the caller ever waiting on the hand-off. An enqueue
// failure is logged and counted; it never reaches the redirect response.
type Producer struct {
	log     *zap.Logger
	queue   Queue
	delay   time.Duration
	dropped atomic.Int64
}

func NewProducer(log *zap.Logger, queue Queue, delay time.Duration) *Producer {
	if delay <= 0 {
		delay = 10 * time.Minute
	}
	return &Producer{log: log, queue: queue, delay: delay}
}

// Emit implements ProducerPort. The returned event is already on its way;
// callers must not treat it as delivered.
func (p *Producer) Emit(link *entity.Link, destination, country string, lat, lon *float64) entity.ClickEvent {
	ev := entity.ClickEvent{
		ID:          uuid.NewString(),
		LinkID:      link.ID,
		AccountID:   link.AccountID,
		Destination: destination,
		Country:     country,
		Latitude:    lat,
		Longitude:   lon,
		Timestamp:   time.Now().UTC(),
	}
	go p.enqueue(ev)
	return ev
}

func (p *Producer) enqueue(ev entity.ClickEvent) {
	ctx, cancel := context.WithTimeout(context.Background(), enqueueTimeout)
	defer cancel()
	if err := p.queue.Enqueue(ctx, ev, p.delay); err != nil {
		n := p.dropped.Add(1)
		p.log.Warn("click event dropped",
			zap.String("event_id", ev.ID),
			zap.String("link_id", ev.LinkID),
			zap.Int64("dropped_total", n),
			zap.Error(err),
		)
	}
}

// Dropped returns how many events failed to enqueue since start.
func (p *Producer) Dropped() int64 { return p.dropped.Load() }
