package service

import (
	"context"
	"fmt"
	"time"

	"github.com/example/redirector/internal/entity"
	"go.uber.org/zap"
)

// TriggerCandidate is a click that may start a health evaluation.
type TriggerCandidate struct {
	LinkID       string
	AccountID    string
	ClickEventID string
}

// ScheduleResult reports the scheduling decision for one candidate.
type ScheduleResult struct {
	Scheduled bool
	Reason    string // set when suppressed
}

// Scheduler enforces the per-link cool-down between health evaluations.
// The cool-down marker is the only state shared between concurrent consumers,
// so the decision rides entirely on the Cooldowns check-and-set: duplicate and
// out-of-order click deliveries collapse into one winner per window.
type Scheduler struct {
	log       *zap.Logger
	cooldowns Cooldowns
	workflows WorkflowStarter
	window    time.Duration
}

func NewScheduler(log *zap.Logger, cooldowns Cooldowns, workflows WorkflowStarter, window time.Duration) *Scheduler {
	if window <= 0 {
		window = time.Hour
	}
	return &Scheduler{log: log, cooldowns: cooldowns, workflows: workflows, window: window}
}

// MaybeSchedule implements TriggerScheduler. A failing cool-down check
// degrades to "assume suppressed": under-evaluating is cheaper than starting
// duplicate workflows.
func (s *Scheduler) MaybeSchedule(ctx context.Context, cand TriggerCandidate) (ScheduleResult, error) {
	ok, err := s.cooldowns.Acquire(ctx, cand.LinkID, s.window)
	if err != nil {
		s.log.Warn("cool-down check failed, assuming suppressed",
			zap.String("link_id", cand.LinkID),
			zap.Error(err),
		)
		return ScheduleResult{Reason: "cool-down check failed"}, nil
	}
	if !ok {
		return ScheduleResult{Reason: "cool-down active"}, nil
	}

	trig := entity.EvaluationTrigger{
		LinkID:       cand.LinkID,
		AccountID:    cand.AccountID,
		ClickEventID: cand.ClickEventID,
		ScheduledAt:  time.Now().UTC(),
	}
	if err := s.workflows.StartEvaluation(ctx, trig); err != nil {
		return ScheduleResult{Scheduled: true}, fmt.Errorf("start evaluation for link %s: %w", cand.LinkID, err)
	}
	s.log.Info("evaluation scheduled",
		zap.String("link_id", cand.LinkID),
		zap.String("click_event_id", cand.ClickEventID),
	)
	return ScheduleResult{Scheduled: true}, nil
}
