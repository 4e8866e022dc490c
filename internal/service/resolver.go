package service

import (
	"context"

	"github.com/example/redirector/internal/entity"
	"go.uber.org/zap"
)

// Resolver fetches routing configuration for a link id. Stateless per
// request; nothing is cached across calls.
type Resolver struct {
	log   *zap.Logger
	links LinkStore
}

func NewResolver(log *zap.Logger, links LinkStore) *Resolver {
	return &Resolver{log: log, links: links}
}

// RoutingInfo implements ResolverPort. Unknown ids surface as ErrNotFound,
// which the transport must turn into a 404, never a 5xx.
func (r *Resolver) RoutingInfo(ctx context.Context, linkID string) (*entity.Link, error) {
	return r.links.GetLink(ctx, linkID)
}
