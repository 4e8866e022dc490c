package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/redirector/internal/entity"
	"go.uber.org/zap"
)

// Consumer drains the click queue: decode, persist, trigger evaluation.
// Persistence is idempotent on the event id, so redeliveries are harmless.
// A scheduler failure after successful persistence is logged and the message
// is still acked; retrying the whole message would only churn the store.
type Consumer struct {
	log       *zap.Logger
	clicks    ClickStore
	scheduler TriggerScheduler
	counter   CounterSink // nil unless the confirmed counter tier is active
}

func NewConsumer(log *zap.Logger, clicks ClickStore, scheduler TriggerScheduler, counter CounterSink) *Consumer {
	return &Consumer{log: log, clicks: clicks, scheduler: scheduler, counter: counter}
}

// OnMessage handles one raw queue payload. Schema violations come back
// wrapped Fatal (dead-letter); transient store failures come back wrapped
// Retryable (redelivery).
func (c *Consumer) OnMessage(ctx context.Context, payload []byte) error {
	var env entity.Envelope
	if err := json.Unmarshal(payload, &env); err != nil {
		return Fatal(fmt.Errorf("decode envelope: %w", err))
	}
	if env.Type != entity.EventTypeLinkClick {
		return Fatal(fmt.Errorf("unknown message type %q", env.Type))
	}
	var ev entity.ClickEvent
	if err := json.Unmarshal(env.Data, &ev); err != nil {
		return Fatal(fmt.Errorf("decode click event: %w", err))
	}
	if err := ev.Validate(); err != nil {
		return Fatal(err)
	}

	inserted, err := c.clicks.InsertClickEvent(ctx, ev)
	if err != nil {
		return Retryable(fmt.Errorf("persist click %s: %w", ev.ID, err))
	}
	if !inserted {
		c.log.Debug("duplicate click event", zap.String("event_id", ev.ID))
	}
	if inserted && c.counter != nil {
		c.counter.IncrementAsync(ev.AccountID, 1)
	}

	// Trigger-level failures stay out of the message-level result.
	res, err := c.scheduler.MaybeSchedule(ctx, TriggerCandidate{
		LinkID:       ev.LinkID,
		AccountID:    ev.AccountID,
		ClickEventID: ev.ID,
	})
	switch {
	case err != nil:
		c.log.Warn("evaluation trigger failed",
			zap.String("event_id", ev.ID),
			zap.String("link_id", ev.LinkID),
			zap.Error(err),
		)
	case !res.Scheduled:
		c.log.Debug("evaluation suppressed",
			zap.String("link_id", ev.LinkID),
			zap.String("reason", res.Reason),
		)
	}
	return nil
}
