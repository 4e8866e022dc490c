package service

import (
	"context"
	"time"

	"github.com/example/redirector/internal/entity"
)

//go:generate mockgen -source=contracts.go -destination=mock_contracts_test.go -package=service

// LinkStore — record store for routing configuration (get/put semantics).
type LinkStore interface {
	GetLink(ctx context.Context, id string) (*entity.Link, error)
	PutLink(ctx context.Context, link *entity.Link) error
}

// ClickStore persists click events. InsertClickEvent is an idempotent upsert
// keyed on the event id; it returns false when the id was already stored.
type ClickStore interface {
	InsertClickEvent(ctx context.Context, ev entity.ClickEvent) (bool, error)
}

// CounterStore holds per-account counter snapshots for the aggregator.
type CounterStore interface {
	LoadCounter(ctx context.Context, accountID string) (int64, error)
	SaveCounter(ctx context.Context, accountID string, clicks int64, lastClick time.Time) error
}

// Queue is the delayed, at-least-once delivery channel for click events.
type Queue interface {
	Enqueue(ctx context.Context, ev entity.ClickEvent, delay time.Duration) error
}

// Cooldowns is the per-link cool-down marker. Acquire is an atomic
// check-and-set: exactly one caller per (link, window) gets true.
type Cooldowns interface {
	Acquire(ctx context.Context, linkID string, window time.Duration) (bool, error)
}

// WorkflowStarter hands an evaluation trigger to the external
// workflow-execution collaborator. Fire-and-forget; no result is consumed.
type WorkflowStarter interface {
	StartEvaluation(ctx context.Context, trig entity.EvaluationTrigger) error
}

// TriggerScheduler decides whether a click should start a health evaluation.
type TriggerScheduler interface {
	MaybeSchedule(ctx context.Context, cand TriggerCandidate) (ScheduleResult, error)
}

// CounterSink receives confirmed-tier increments from the consumer.
type CounterSink interface {
	IncrementAsync(accountID string, delta int64)
}

// ResolverPort is the transport-facing routing lookup.
type ResolverPort interface {
	RoutingInfo(ctx context.Context, linkID string) (*entity.Link, error)
}

// ProducerPort is the transport-facing fire-and-forget event dispatch.
type ProducerPort interface {
	Emit(link *entity.Link, destination, country string, lat, lon *float64) entity.ClickEvent
}

// AggregatorPort is the transport-facing live counter.
type AggregatorPort interface {
	Increment(ctx context.Context, accountID string, delta int64) (int64, error)
	IncrementAsync(accountID string, delta int64)
	Subscribe(ctx context.Context, accountID string) (*Subscriber, error)
	Unsubscribe(accountID string, sub *Subscriber)
}
