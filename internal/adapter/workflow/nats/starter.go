// Package nats hands evaluation triggers to the external workflow executor
// over a NATS subject.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/example/redirector/internal/entity"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"
)

// SubjectEvaluations is where health-evaluation triggers are published.
const SubjectEvaluations = "evaluations.start"

// Starter implements service.WorkflowStarter. Publish is fire-and-forget by
// construction: no reply is requested and none is consumed.
type Starter struct {
	log *zap.Logger
	nc  *nats.Conn
}

func NewStarter(log *zap.Logger, nc *nats.Conn) *Starter {
	return &Starter{log: log, nc: nc}
}

func (s *Starter) StartEvaluation(_ context.Context, trig entity.EvaluationTrigger) error {
	payload, err := json.Marshal(trig)
	if err != nil {
		return fmt.Errorf("encode trigger: %w", err)
	}
	if err := s.nc.Publish(SubjectEvaluations, payload); err != nil {
		return fmt.Errorf("publish trigger for link %s: %w", trig.LinkID, err)
	}
	s.log.Debug("evaluation trigger published",
		zap.String("link_id", trig.LinkID),
		zap.String("click_event_id", trig.ClickEventID),
	)
	return nil
}
