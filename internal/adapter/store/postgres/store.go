package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/example/redirector/internal/entity"
	"github.com/example/redirector/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"
)

type Store struct {
	pool *pgxpool.Pool
	log  *zap.Logger
}

func New(dsn string, log *zap.Logger) (*Store, error) {
	pool, err := pgxpool.New(context.Background(), dsn)
	if err != nil {
		return nil, err
	}
	return &Store{pool: pool, log: log}, nil
}

func (s *Store) Init(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS links (
	id          TEXT        PRIMARY KEY,
	account_id  TEXT        NOT NULL,
	default_url TEXT        NOT NULL DEFAULT '',
	rules       JSONB       NOT NULL DEFAULT '[]',
	updated_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE TABLE IF NOT EXISTS click_events (
	id          UUID        PRIMARY KEY,
	link_id     TEXT        NOT NULL,
	account_id  TEXT        NOT NULL,
	destination TEXT        NOT NULL,
	country     TEXT        NOT NULL DEFAULT '',
	latitude    DOUBLE PRECISION,
	longitude   DOUBLE PRECISION,
	clicked_at  TIMESTAMPTZ NOT NULL,
	recorded_at TIMESTAMPTZ NOT NULL DEFAULT now()
);
CREATE INDEX IF NOT EXISTS idx_click_events_link_ts ON click_events (link_id, clicked_at);
CREATE INDEX IF NOT EXISTS idx_click_events_account_ts ON click_events (account_id, clicked_at);
CREATE TABLE IF NOT EXISTS account_counters (
	account_id    TEXT        PRIMARY KEY,
	clicks        BIGINT      NOT NULL DEFAULT 0,
	last_click_at TIMESTAMPTZ,
	updated_at    TIMESTAMPTZ NOT NULL DEFAULT now()
);
`
	_, err := s.pool.Exec(ctx, ddl)
	return err
}

// GetLink implements service.LinkStore
func (s *Store) GetLink(ctx context.Context, id string) (*entity.Link, error) {
	const q = `SELECT account_id, default_url, rules FROM links WHERE id = $1`
	var (
		link     = entity.Link{ID: id}
		rulesRaw []byte
	)
	err := s.pool.QueryRow(ctx, q, id).Scan(&link.AccountID, &link.DefaultURL, &rulesRaw)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("link %s: %w", id, service.ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(rulesRaw, &link.Rules); err != nil {
		return nil, fmt.Errorf("decode rules for link %s: %w", id, err)
	}
	return &link, nil
}

// PutLink implements service.LinkStore
func (s *Store) PutLink(ctx context.Context, link *entity.Link) error {
	rules, err := json.Marshal(link.Rules)
	if err != nil {
		return fmt.Errorf("encode rules for link %s: %w", link.ID, err)
	}
	const q = `
INSERT INTO links (id, account_id, default_url, rules, updated_at)
VALUES ($1, $2, $3, $4, now())
ON CONFLICT (id) DO UPDATE
SET account_id = EXCLUDED.account_id,
    default_url = EXCLUDED.default_url,
    rules = EXCLUDED.rules,
    updated_at = now()`
	_, err = s.pool.Exec(ctx, q, link.ID, link.AccountID, link.DefaultURL, rules)
	return err
}

// InsertClickEvent implements service.ClickStore. Re-delivering the same
// event id leaves exactly one row.
func (s *Store) InsertClickEvent(ctx context.Context, ev entity.ClickEvent) (bool, error) {
	const q = `
INSERT INTO click_events (id, link_id, account_id, destination, country, latitude, longitude, clicked_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
ON CONFLICT (id) DO NOTHING`
	tag, err := s.pool.Exec(ctx, q,
		ev.ID, ev.LinkID, ev.AccountID, ev.Destination, ev.Country,
		ev.Latitude, ev.Longitude, ev.Timestamp,
	)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() == 1, nil
}

// LoadCounter implements service.CounterStore. A missing account starts at zero.
func (s *Store) LoadCounter(ctx context.Context, accountID string) (int64, error) {
	const q = `SELECT clicks FROM account_counters WHERE account_id = $1`
	var clicks int64
	err := s.pool.QueryRow(ctx, q, accountID).Scan(&clicks)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return clicks, nil
}

// SaveCounter implements service.CounterStore
func (s *Store) SaveCounter(ctx context.Context, accountID string, clicks int64, lastClick time.Time) error {
	var lastClickArg any
	if !lastClick.IsZero() {
		lastClickArg = lastClick
	}
	const q = `
INSERT INTO account_counters (account_id, clicks, last_click_at, updated_at)
VALUES ($1, $2, $3, now())
ON CONFLICT (account_id) DO UPDATE
SET clicks = EXCLUDED.clicks,
    last_click_at = COALESCE(EXCLUDED.last_click_at, account_counters.last_click_at),
    updated_at = now()`
	_, err := s.pool.Exec(ctx, q, accountID, clicks, lastClickArg)
	return err
}

func (s *Store) Close() { s.pool.Close() }
