package portal

import (
	"log/slog"
	"time"

	"github.com/daniilsolovey/community-portal/internal/fallback"
	"github.com/daniilsolovey/community-portal/internal/metrics"
)

const (
	DefaultBranchTimeout    = 5 * time.Second
	DefaultViewCountTimeout = 3 * time.Second

	HomepageNewsLimit          = 5
	HomepageAnnouncementsLimit = 3
	HomepageBusinessesLimit    = 6
)

type Options struct {
	// BranchTimeout bounds every concurrent branch of Homepage and Search.
	BranchTimeout time.Duration
	// ViewCountTimeout bounds the detached view counter update.
	ViewCountTimeout time.Duration
}

// Manager serves community content from the store, or from generated data
// when the store is not configured.
type Manager struct {
	store    Store
	fallback *fallback.Generator
	metrics  *metrics.Metrics
	logger   *slog.Logger
	opts     Options

	now func() time.Time

	// viewCountDone, when set, is called after each detached view count update.
	viewCountDone func(err error)
}

func NewManager(store Store, gen *fallback.Generator, m *metrics.Metrics, logger *slog.Logger, opts Options) *Manager {
	if opts.BranchTimeout <= 0 {
		opts.BranchTimeout = DefaultBranchTimeout
	}
	if opts.ViewCountTimeout <= 0 {
		opts.ViewCountTimeout = DefaultViewCountTimeout
	}
	if gen == nil {
		gen = fallback.New()
	}

	return &Manager{
		store:    store,
		fallback: gen,
		metrics:  m,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
	}
}

// useFallback reports whether reads of entity must be served from generated data.
func (m *Manager) useFallback(entity string) bool {
	if m.store.Configured() {
		return false
	}

	m.metrics.FallbackRead(entity)
	return true
}
