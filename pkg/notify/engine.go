package notify

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/notifykit/pkg/broadcast"
	"github.com/dmitrymomot/notifykit/pkg/logger"
	"github.com/dmitrymomot/notifykit/pkg/ratelimit"
)

// defaultRateLimitKey scopes sends from producers that don't identify
// themselves via Input.Source.
const defaultRateLimitKey = "default"

// Engine is the notification dispatch pipeline. Construct one per process
// with New and inject it where needed; there is no package-level instance.
//
// A single mutex guards the queue, store, analytics, and preferences; every
// tick's mutations run to completion under it. Channel I/O runs outside the
// lock and no state is published until a dispatch batch settles.
type Engine struct {
	cfg Config
	log *slog.Logger
	now func() time.Time

	limiter    *ratelimit.Window
	rlStore    ratelimit.Store
	ownedStore *ratelimit.MemoryStore
	senders    map[Channel]Sender
	events     *broadcast.MemoryBroadcaster[Event]

	mu        sync.Mutex
	queue     priorityQueue
	store     *memoryStore
	analytics *analytics
	prefs     Preferences

	runMu   sync.Mutex
	cancel  context.CancelFunc
	wg      sync.WaitGroup
	started bool
	closed  bool
}

// Option configures the engine at construction time.
type Option func(*Engine)

// WithLogger sets the engine's logger. Defaults to slog.Default.
func WithLogger(log *slog.Logger) Option {
	return func(e *Engine) {
		if log != nil {
			e.log = log
		}
	}
}

// WithClock overrides the wall-clock source. Intended for tests.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) {
		if now != nil {
			e.now = now
		}
	}
}

// WithSender registers the sender for a channel, replacing any default.
// The sender registry is fixed after construction.
func WithSender(ch Channel, s Sender) Option {
	return func(e *Engine) {
		if s != nil {
			e.senders[ch] = s
		}
	}
}

// WithPlatformNotifier wires the host platform surface into the in-app
// channel. Without it the in-app channel reports not deliverable.
func WithPlatformNotifier(p PlatformNotifier) Option {
	return func(e *Engine) {
		e.senders[ChannelInApp] = &inAppSender{platform: p}
	}
}

// WithRateLimitStore replaces the in-process rate-limit ledger, e.g. with
// ratelimit.RedisStore when producers span processes.
func WithRateLimitStore(store ratelimit.Store) Option {
	return func(e *Engine) {
		if store != nil {
			e.rlStore = store
		}
	}
}

// WithPreferences sets the initial preferences instead of the permissive
// defaults.
func WithPreferences(prefs Preferences) Option {
	return func(e *Engine) {
		e.prefs = prefs
	}
}

// New creates an engine. Start must be called to run the queue processor
// and expiry sweeper; Send works before Start but nothing is dispatched
// until the processor runs.
func New(cfg Config, opts ...Option) (*Engine, error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	e := &Engine{
		cfg:       cfg,
		log:       slog.Default(),
		now:       time.Now,
		senders:   make(map[Channel]Sender),
		store:     newMemoryStore(cfg.MaxStored),
		analytics: newAnalytics(),
		prefs:     DefaultPreferences(),
		events:    broadcast.NewMemoryBroadcaster[Event](cfg.EventBuffer),
	}
	e.prefs.MaxStored = cfg.MaxStored

	for _, opt := range opts {
		opt(e)
	}
	e.prefs = e.prefs.normalized(cfg.MaxStored)

	// Local display surfaces and the in-app bridge are registered unless an
	// option already claimed the channel.
	for _, ch := range []Channel{ChannelSystem, ChannelToast, ChannelBanner} {
		if _, ok := e.senders[ch]; !ok {
			e.senders[ch] = &localSender{channel: ch, log: e.log}
		}
	}
	if _, ok := e.senders[ChannelInApp]; !ok {
		e.senders[ChannelInApp] = &inAppSender{}
	}

	if e.rlStore == nil {
		e.ownedStore = ratelimit.NewMemoryStore(ratelimit.WithTimeSource(e.now))
		e.rlStore = e.ownedStore
	}
	limiter, err := ratelimit.NewWindow(e.rlStore, ratelimit.Config{
		Limit:  cfg.RateLimit,
		Window: cfg.RateWindow,
	})
	if err != nil {
		return nil, err
	}
	e.limiter = limiter

	e.store.setMax(e.prefs.MaxStored)
	return e, nil
}

// Start launches the queue processor and expiry sweeper. They stop when ctx
// is cancelled or Close is called.
func (e *Engine) Start(ctx context.Context) error {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.closed {
		return ErrClosed
	}
	if e.started {
		return ErrAlreadyStarted
	}
	e.started = true

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.wg.Add(2)
	go e.runProcessor(runCtx)
	go e.runSweeper(runCtx)

	e.log.InfoContext(ctx, "notification engine started",
		logger.Component("notify"),
		slog.Duration("process_interval", e.cfg.ProcessInterval),
		slog.Duration("sweep_interval", e.cfg.SweepInterval),
	)
	return nil
}

// Close stops the background tasks, closes the event stream, and releases
// the rate-limit ledger when the engine owns it. Close is idempotent.
func (e *Engine) Close() error {
	e.runMu.Lock()
	defer e.runMu.Unlock()

	if e.closed {
		return nil
	}
	e.closed = true

	if e.cancel != nil {
		e.cancel()
	}
	e.wg.Wait()

	_ = e.events.Close()
	if e.ownedStore != nil {
		_ = e.ownedStore.Close()
	}
	return nil
}

// runProcessor drains at most one queued notification per tick. Throttling
// to one dequeue per tick bounds the outbound burst rate.
func (e *Engine) runProcessor(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.ProcessInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.mu.Lock()
			item, ok := e.queue.dequeue()
			e.mu.Unlock()
			if ok {
				e.dispatch(ctx, item)
			}
		}
	}
}

// runSweeper evicts expired notifications from the store. Queued items are
// not swept; an item with a short expiry can still be dispatched.
func (e *Engine) runSweeper(ctx context.Context) {
	defer e.wg.Done()

	ticker := time.NewTicker(e.cfg.SweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *Engine) sweep(ctx context.Context) {
	now := e.now()

	e.mu.Lock()
	expired := e.store.sweepExpired(now)
	e.analytics.expired += len(expired)
	for _, n := range expired {
		e.analytics.recordDisplay(n, now)
	}
	e.mu.Unlock()

	for i := range expired {
		n := expired[i]
		e.emit(Event{Type: EventDismissed, Notification: &n, Reason: DismissedExpired})
	}
	if len(expired) > 0 {
		e.log.InfoContext(ctx, "expired notifications evicted",
			logger.Component("notify"),
			logger.Count(len(expired)),
		)
	}
}

// Send admits a notification for delivery on the given channels (in-app
// when none are named) and returns its assigned id. It fails synchronously
// with validator.ValidationErrors or ErrRateLimitExceeded; all downstream
// failures surface on the event stream only.
func (e *Engine) Send(ctx context.Context, in Input, channels ...Channel) (string, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		e.emit(Event{Type: EventError, Op: "send", Err: err.Error()})
		e.log.WarnContext(ctx, "notification rejected", logger.Op("send"), logger.Error(err))
		return "", err
	}

	key := in.Source
	if key == "" {
		key = defaultRateLimitKey
	}
	res, err := e.limiter.Allow(ctx, key)
	if err != nil {
		e.emit(Event{Type: EventError, Op: "send", Err: err.Error()})
		return "", err
	}
	if !res.Allowed() {
		e.emit(Event{Type: EventError, Op: "send", Err: ErrRateLimitExceeded.Error()})
		e.log.WarnContext(ctx, "notification rejected",
			logger.Op("send"),
			logger.Reason("rate_limit"),
			slog.String("source", key),
			slog.Duration("retry_after", res.RetryAfter()),
		)
		return "", ErrRateLimitExceeded
	}

	now := e.now()
	n := in.build(uuid.New().String(), now)

	if len(channels) == 0 {
		channels = []Channel{ChannelInApp}
	}

	e.mu.Lock()
	e.analytics.recordSent(n)
	suppressed := !e.prefs.shouldDeliver(n, now)
	if suppressed {
		// Suppressed notifications skip dispatch entirely but stay visible
		// in history with their read state intact.
		e.store.insert(n)
	} else {
		e.queue.enqueue(queueItem{n: n, channels: channels})
	}
	e.mu.Unlock()

	e.emit(Event{Type: EventQueued, Notification: &n})
	e.log.DebugContext(ctx, "notification admitted",
		logger.NotificationID(n.ID),
		slog.String("priority", string(n.Priority)),
		slog.Bool("suppressed", suppressed),
	)
	return n.ID, nil
}

// MarkAsRead marks one stored notification read.
// Returns false for an unknown id.
func (e *Engine) MarkAsRead(id string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.markRead(id, e.now())
}

// MarkAllAsRead marks every stored notification read and returns how many
// changed state. The store size is unchanged.
func (e *Engine) MarkAllAsRead() int {
	e.mu.Lock()
	count := e.store.markAllRead(e.now())
	e.mu.Unlock()

	e.emit(Event{Type: EventAllRead})
	return count
}

// Click records a click on a stored notification, marking it read.
// Returns false for an unknown id.
func (e *Engine) Click(id string) bool {
	e.mu.Lock()
	n := e.store.get(id)
	if n == nil {
		e.mu.Unlock()
		return false
	}
	n.markRead(e.now())
	e.analytics.clicked++
	clicked := *n
	e.mu.Unlock()

	e.emit(Event{Type: EventClicked, Notification: &clicked})
	return true
}

// Dismiss removes a stored notification. An empty reason defaults to a
// user dismissal. Returns false for an unknown id.
func (e *Engine) Dismiss(id string, reason DismissReason) bool {
	if reason == "" {
		reason = DismissedByUser
	}

	e.mu.Lock()
	n, ok := e.store.dismiss(id)
	if !ok {
		e.mu.Unlock()
		return false
	}
	e.analytics.dismissed++
	e.analytics.recordDisplay(n, e.now())
	e.mu.Unlock()

	e.emit(Event{Type: EventDismissed, Notification: &n, Reason: reason})
	return true
}

// History returns stored notifications most recent first, optionally
// filtered by category and capped at a limit.
func (e *Engine) History(f HistoryFilter) []Notification {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.store.history(f)
}

// Analytics returns an immutable copy of the current counters.
func (e *Engine) Analytics() AnalyticsSnapshot {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.analytics.snapshot()
}

// ResetAnalytics zeroes every counter. This is the only decrement path.
func (e *Engine) ResetAnalytics() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.analytics.reset()
}

// UpdatePreferences merges the patch into current preferences and emits an
// updated event. The store cap is applied immediately.
func (e *Engine) UpdatePreferences(patch PreferencesPatch) error {
	if err := patch.validate(); err != nil {
		return err
	}

	e.mu.Lock()
	e.prefs.apply(patch)
	e.store.setMax(e.prefs.MaxStored)
	e.mu.Unlock()

	e.emit(Event{Type: EventUpdated})
	return nil
}

// Preferences returns a deep copy of the current preferences.
func (e *Engine) Preferences() Preferences {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.prefs.clone()
}

// Subscribe returns a lifecycle event subscriber. The subscription ends
// when ctx is cancelled or the subscriber is closed; slow subscribers drop
// events rather than blocking the engine.
func (e *Engine) Subscribe(ctx context.Context) broadcast.Subscriber[Event] {
	return e.events.Subscribe(ctx)
}

func (e *Engine) emit(ev Event) {
	ev.Timestamp = e.now()
	_ = e.events.Publish(context.Background(), ev)
}
