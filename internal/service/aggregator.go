package service

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

const (
	subscriberBuffer = 16
	snapshotTimeout  = 5 * time.Second
)

// Subscriber is one live click-stream connection. The aggregator closes the
// updates channel when the subscriber is dropped or the worker shuts down.
type Subscriber struct {
	accountID string
	updates   chan int64
	once      sync.Once
}

// Updates yields the counter value after every increment, starting with the
// current snapshot at subscribe time.
func (s *Subscriber) Updates() <-chan int64 { return s.updates }

func (s *Subscriber) close() {
	s.once.Do(func() { close(s.updates) })
}

// aggOp is one message on an account worker's inbox. Exactly one of
// sub/unsub is set for subscription ops; otherwise it is an increment.
type aggOp struct {
	delta int64
	reply chan int64 // nil for fire-and-forget increments
	sub   *Subscriber
	unsub *Subscriber
}

// accountWorker owns one account's counter. pending and closed are guarded by
// Aggregator.mu: pending counts in-flight senders, which blocks eviction so a
// worker never disappears under a sender holding its reference.
type accountWorker struct {
	accountID string
	inbox     chan aggOp
	pending   int
	closed    bool
}

// Aggregator serializes all counter mutations per account id through a
// dedicated sequential worker with a bounded inbox. Workers are created on
// first access (loading a snapshot baseline), broadcast every new count to
// their subscribers, and evict themselves after an idle window, persisting the
// counter so a later access resumes from it.
type Aggregator struct {
	log      *zap.Logger
	counters CounterStore
	idleTTL  time.Duration
	inboxLen int

	mu      sync.Mutex
	workers map[string]*accountWorker

	quit    chan struct{}
	wg      sync.WaitGroup
	dropped atomic.Int64
}

func NewAggregator(log *zap.Logger, counters CounterStore, idleTTL time.Duration, inboxLen int) *Aggregator {
	if idleTTL <= 0 {
		idleTTL = 5 * time.Minute
	}
	if inboxLen <= 0 {
		inboxLen = 256
	}
	return &Aggregator{
		log:      log,
		counters: counters,
		idleTTL:  idleTTL,
		inboxLen: inboxLen,
		workers:  make(map[string]*accountWorker),
		quit:     make(chan struct{}),
	}
}

// acquire returns the live worker for an account, creating one on miss, and
// registers the caller as a pending sender.
func (a *Aggregator) acquire(accountID string) *accountWorker {
	a.mu.Lock()
	defer a.mu.Unlock()
	w, ok := a.workers[accountID]
	if !ok {
		w = &accountWorker{accountID: accountID, inbox: make(chan aggOp, a.inboxLen)}
		a.workers[accountID] = w
		a.wg.Add(1)
		go a.run(w)
	}
	w.pending++
	return w
}

func (a *Aggregator) release(w *accountWorker) {
	a.mu.Lock()
	w.pending--
	a.mu.Unlock()
}

// Increment applies a delta and returns the new count. It blocks on a full
// inbox (back-pressure) until ctx is done.
func (a *Aggregator) Increment(ctx context.Context, accountID string, delta int64) (int64, error) {
	w := a.acquire(accountID)
	defer a.release(w)
	reply := make(chan int64, 1)
	select {
	case w.inbox <- aggOp{delta: delta, reply: reply}:
	case <-ctx.Done():
		return 0, ctx.Err()
	}
	select {
	case n := <-reply:
		return n, nil
	case <-ctx.Done():
		return 0, ctx.Err()
	}
}

// IncrementAsync applies a delta without waiting for acknowledgment. A full
// inbox drops the increment rather than queueing unbounded; the live counter
// tolerates that, the persisted event log does not depend on it.
func (a *Aggregator) IncrementAsync(accountID string, delta int64) {
	w := a.acquire(accountID)
	defer a.release(w)
	select {
	case w.inbox <- aggOp{delta: delta}:
	default:
		n := a.dropped.Add(1)
		a.log.Warn("aggregator inbox full, increment dropped",
			zap.String("account_id", accountID),
			zap.Int64("dropped_total", n),
		)
	}
}

// Subscribe attaches a live subscriber to an account's counter.
func (a *Aggregator) Subscribe(ctx context.Context, accountID string) (*Subscriber, error) {
	sub := &Subscriber{accountID: accountID, updates: make(chan int64, subscriberBuffer)}
	w := a.acquire(accountID)
	defer a.release(w)
	select {
	case w.inbox <- aggOp{sub: sub}:
		return sub, nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// Unsubscribe detaches a subscriber. Idempotent: unknown handles are ignored.
func (a *Aggregator) Unsubscribe(accountID string, sub *Subscriber) {
	if sub == nil {
		return
	}
	w := a.acquire(accountID)
	defer a.release(w)
	select {
	case w.inbox <- aggOp{unsub: sub}:
	case <-a.quit:
	}
}

// DroppedIncrements returns how many async increments were shed since start.
func (a *Aggregator) DroppedIncrements() int64 { return a.dropped.Load() }

// Stop tears down every worker, persisting counters best-effort.
func (a *Aggregator) Stop(ctx context.Context) {
	close(a.quit)
	done := make(chan struct{})
	go func() {
		a.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-ctx.Done():
		a.log.Warn("aggregator stop timed out", zap.Error(ctx.Err()))
	}
}

func (a *Aggregator) run(w *accountWorker) {
	defer a.wg.Done()

	count := a.baseline(w.accountID)
	var lastClick time.Time
	dirty := false
	subs := make(map[*Subscriber]struct{})

	idle := time.NewTimer(a.idleTTL)
	defer idle.Stop()

	for {
		select {
		case op := <-w.inbox:
			switch {
			case op.sub != nil:
				subs[op.sub] = struct{}{}
				a.deliver(subs, op.sub, count)
			case op.unsub != nil:
				if _, ok := subs[op.unsub]; ok {
					delete(subs, op.unsub)
					op.unsub.close()
				}
			default:
				count += op.delta
				lastClick = time.Now().UTC()
				dirty = true
				if op.reply != nil {
					op.reply <- count
				}
				for s := range subs {
					a.deliver(subs, s, count)
				}
			}
			if !idle.Stop() {
				select {
				case <-idle.C:
				default:
				}
			}
			idle.Reset(a.idleTTL)

		case <-idle.C:
			if len(subs) == 0 && a.tryEvict(w) {
				a.persist(w.accountID, count, lastClick, dirty)
				return
			}
			idle.Reset(a.idleTTL)

		case <-a.quit:
			a.mu.Lock()
			w.closed = true
			delete(a.workers, w.accountID)
			a.mu.Unlock()
			for s := range subs {
				s.close()
			}
			a.persist(w.accountID, count, lastClick, dirty)
			return
		}
	}
}

// deliver pushes a count to one subscriber. A blocked channel means the peer
// is gone or hopelessly behind: drop it and keep broadcasting to the rest.
func (a *Aggregator) deliver(subs map[*Subscriber]struct{}, s *Subscriber, count int64) {
	select {
	case s.updates <- count:
	default:
		delete(subs, s)
		s.close()
		a.log.Debug("subscriber dropped", zap.String("account_id", s.accountID))
	}
}

// tryEvict removes the worker from the registry if no sender is in flight and
// the inbox is drained. Both checks happen under the registry lock, so a
// sender that already acquired the worker always wins over eviction.
func (a *Aggregator) tryEvict(w *accountWorker) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	if w.pending > 0 || len(w.inbox) > 0 {
		return false
	}
	w.closed = true
	delete(a.workers, w.accountID)
	return true
}

func (a *Aggregator) baseline(accountID string) int64 {
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	n, err := a.counters.LoadCounter(ctx, accountID)
	if err != nil {
		a.log.Warn("counter baseline load failed, starting at zero",
			zap.String("account_id", accountID),
			zap.Error(err),
		)
		return 0
	}
	return n
}

func (a *Aggregator) persist(accountID string, count int64, lastClick time.Time, dirty bool) {
	if !dirty {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), snapshotTimeout)
	defer cancel()
	if err := a.counters.SaveCounter(ctx, accountID, count, lastClick); err != nil {
		a.log.Warn("counter snapshot save failed",
			zap.String("account_id", accountID),
			zap.Int64("count", count),
			zap.Error(err),
		)
	}
}
