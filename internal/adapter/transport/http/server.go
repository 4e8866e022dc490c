package http_server

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/example/redirector/internal/entity"
	"github.com/example/redirector/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Config is the transport surface of the app configuration.
type Config struct {
	Addr           string
	AdminToken     string
	ResolveTimeout time.Duration
	// OptimisticCounter makes the redirect path bump the live counter
	// immediately; when false the consumer bumps it after persistence.
	OptimisticCounter bool
}

type Server struct {
	log      *zap.Logger
	cfg      Config
	resolver service.ResolverPort
	producer service.ProducerPort
	agg      service.AggregatorPort
	links    service.LinkStore
	httpSrv  *http.Server
}

func NewServer(log *zap.Logger, cfg Config, resolver service.ResolverPort, producer service.ProducerPort, agg service.AggregatorPort, links service.LinkStore) *Server {
	if cfg.ResolveTimeout <= 0 {
		cfg.ResolveTimeout = 2 * time.Second
	}
	s := &Server{log: log, cfg: cfg, resolver: resolver, producer: producer, agg: agg, links: links}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(zapLogger(log))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(http.StatusNoContent) })
	r.Get("/click-stream/{accountID}", s.handleClickStream())
	r.Put("/links/{linkID}", s.adminOnly(s.handleUpsertLink()))
	r.Get("/{linkID}", s.handleRedirect())

	s.httpSrv = &http.Server{Addr: cfg.Addr, Handler: r}
	return s
}

func (s *Server) Start() error {
	s.log.Info("http listen", zap.String("addr", s.cfg.Addr))
	return s.httpSrv.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

func zapLogger(log *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("http",
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.Duration("latency", time.Since(start)),
			)
		})
	}
}

// handleRedirect is the fast path: one bounded storage read, then respond.
// The event hand-off and the counter bump are fire-and-forget; their failures
// never change the response.
func (s *Server) handleRedirect() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")

		country, ok := parseCountry(r.Header.Get("CF-IPCountry"))
		if !ok {
			http.Error(w, "invalid country header", http.StatusBadRequest)
			return
		}
		lat, lon, ok := parseLatLong(r.Header)
		if !ok {
			http.Error(w, "invalid geo headers", http.StatusBadRequest)
			return
		}

		ctx, cancel := context.WithTimeout(r.Context(), s.cfg.ResolveTimeout)
		defer cancel()
		link, err := s.resolver.RoutingInfo(ctx, linkID)
		if err != nil {
			if errors.Is(err, service.ErrNotFound) {
				http.NotFound(w, r)
				return
			}
			s.log.Error("link lookup failed", zap.String("link_id", linkID), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		dest, err := service.Resolve(link.Rules, country, link.DefaultURL)
		if err != nil {
			// misconfiguration belongs to the link owner; the visitor gets a 404
			s.log.Error("link has no destination",
				zap.String("link_id", linkID),
				zap.String("account_id", link.AccountID),
			)
			http.NotFound(w, r)
			return
		}

		ev := s.producer.Emit(link, dest, country, lat, lon)
		if s.cfg.OptimisticCounter {
			s.agg.IncrementAsync(link.AccountID, 1)
		}
		s.log.Debug("redirect",
			zap.String("link_id", linkID),
			zap.String("event_id", ev.ID),
			zap.String("destination", dest),
		)
		http.Redirect(w, r, dest, http.StatusFound)
	}
}

func (s *Server) handleUpsertLink() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		linkID := chi.URLParam(r, "linkID")

		var link entity.Link
		dec := json.NewDecoder(r.Body)
		dec.DisallowUnknownFields()
		if err := dec.Decode(&link); err != nil {
			http.Error(w, "invalid JSON", http.StatusBadRequest)
			return
		}
		if link.ID == "" {
			link.ID = linkID
		}
		if link.ID != linkID {
			http.Error(w, "id mismatch", http.StatusBadRequest)
			return
		}
		if link.AccountID == "" {
			http.Error(w, "account_id required", http.StatusBadRequest)
			return
		}
		if link.DefaultURL == "" && len(link.Rules) == 0 {
			http.Error(w, "link needs a default_url or rules", http.StatusBadRequest)
			return
		}

		if err := s.links.PutLink(r.Context(), &link); err != nil {
			s.log.Error("link upsert failed", zap.String("link_id", linkID), zap.Error(err))
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

func (s *Server) adminOnly(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		token := r.Header.Get("X-Admin-Token")
		if s.cfg.AdminToken == "" || subtle.ConstantTimeCompare([]byte(token), []byte(s.cfg.AdminToken)) != 1 {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r)
	}
}

// parseCountry normalizes the CF-IPCountry header. Absent is fine, as are the
// XX/T1 unknown-origin markers (no rule will match); present but not a
// two-letter code is a client error.
func parseCountry(v string) (string, bool) {
	if v == "" || v == "XX" || v == "T1" {
		return "", true
	}
	if len(v) != 2 {
		return "", false
	}
	up := make([]byte, 2)
	for i := 0; i < 2; i++ {
		c := v[i]
		switch {
		case c >= 'a' && c <= 'z':
			c -= 'a' - 'A'
		case c >= 'A' && c <= 'Z':
		default:
			return "", false
		}
		up[i] = c
	}
	return string(up), true
}

func parseLatLong(h http.Header) (lat, lon *float64, ok bool) {
	lat, ok = parseCoord(h.Get("X-Geo-Latitude"), 90)
	if !ok {
		return nil, nil, false
	}
	lon, ok = parseCoord(h.Get("X-Geo-Longitude"), 180)
	if !ok {
		return nil, nil, false
	}
	return lat, lon, true
}

func parseCoord(v string, limit float64) (*float64, bool) {
	if v == "" {
		return nil, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil || f < -limit || f > limit {
		return nil, false
	}
	return &f, true
}
