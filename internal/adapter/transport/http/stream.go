package http_server

import (
	"context"
	"net/http"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/example/redirector/internal/entity"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const streamWriteTimeout = 5 * time.Second

// handleClickStream upgrades the connection and pushes counter updates for
// one account. The account identity header is the trust-boundary hand-off:
// auth happens upstream, we only check the verified id is present and matches
// the path. websocket.Accept answers 426 itself for non-upgrade requests.
func (s *Server) handleClickStream() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		accountID := chi.URLParam(r, "accountID")
		ident := r.Header.Get("X-Account-ID")
		if ident == "" || ident != accountID {
			http.NotFound(w, r)
			return
		}

		conn, err := websocket.Accept(w, r, nil)
		if err != nil {
			s.log.Debug("websocket accept failed", zap.Error(err))
			return
		}
		defer conn.Close(websocket.StatusInternalError, "stream closed")

		// no client payload is expected; CloseRead cancels ctx on disconnect
		ctx := conn.CloseRead(r.Context())

		sub, err := s.agg.Subscribe(ctx, accountID)
		if err != nil {
			conn.Close(websocket.StatusTryAgainLater, "subscribe failed")
			return
		}
		defer s.agg.Unsubscribe(accountID, sub)

		for {
			select {
			case <-ctx.Done():
				conn.Close(websocket.StatusNormalClosure, "")
				return
			case n, ok := <-sub.Updates():
				if !ok {
					// dropped by the aggregator: slow reader or shutdown
					conn.Close(websocket.StatusTryAgainLater, "dropped")
					return
				}
				wctx, cancel := context.WithTimeout(ctx, streamWriteTimeout)
				err := wsjson.Write(wctx, conn, entity.CountUpdate{NewCount: n})
				cancel()
				if err != nil {
					s.log.Debug("stream write failed",
						zap.String("account_id", accountID),
						zap.Error(err),
					)
					return
				}
			}
		}
	}
}
