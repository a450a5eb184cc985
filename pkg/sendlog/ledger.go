package sendlog

import (
	"sort"
	"sync"
	"time"
)

const (
	// DefaultHourlyLimit is the maximum number of sends admitted per trailing hour.
	DefaultHourlyLimit = 100
	// DefaultDailyLimit is the maximum number of sends admitted per trailing 24 hours.
	DefaultDailyLimit = 1000

	hourWindow = time.Hour
	dayWindow  = 24 * time.Hour
)

// SendRecord is an immutable fact: a send to Recipient completed at SentAt.
// The recipient is retained for diagnostics only; rate computation uses the
// timestamp alone.
type SendRecord struct {
	Recipient string
	SentAt    time.Time
}

// Status is a point-in-time rate limit verdict derived from the ledger.
type Status struct {
	SentLastHour int
	SentLastDay  int
	CanSend      bool
	HourlyLimit  int
	DailyLimit   int

	// NextAvailableAt is the earliest time the binding window admits one more
	// send. Nil while CanSend is true.
	NextAvailableAt *time.Time
}

// Ledger is an append-only record of successful sends. Records are only ever
// appended or bulk-cleared; entries that have aged past the daily window are
// pruned on append since they can no longer affect any derived value.
type Ledger struct {
	mu          sync.RWMutex
	records     []SendRecord // ascending by SentAt
	hourlyLimit int
	dailyLimit  int
}

// Option configures a Ledger.
type Option func(*Ledger)

// WithHourlyLimit overrides the trailing-hour send cap. Non-positive values
// are ignored.
func WithHourlyLimit(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.hourlyLimit = n
		}
	}
}

// WithDailyLimit overrides the trailing-24h send cap. Non-positive values are
// ignored.
func WithDailyLimit(n int) Option {
	return func(l *Ledger) {
		if n > 0 {
			l.dailyLimit = n
		}
	}
}

// New creates an empty ledger with the default limits unless overridden.
func New(opts ...Option) *Ledger {
	l := &Ledger{
		hourlyLimit: DefaultHourlyLimit,
		dailyLimit:  DefaultDailyLimit,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// NewFromConfig creates a ledger from an environment-driven Config.
func NewFromConfig(cfg Config) *Ledger {
	return New(
		WithHourlyLimit(cfg.HourlyLimit),
		WithDailyLimit(cfg.DailyLimit),
	)
}

// RecordSent appends a send record stamped with the current time. It never
// fails and has no side effects beyond the append.
func (l *Ledger) RecordSent(recipient string) {
	now := time.Now()

	l.mu.Lock()
	defer l.mu.Unlock()

	// Drop entries older than the daily window before appending; they are
	// invisible to every query the ledger answers.
	cutoff := now.Add(-dayWindow)
	idx := sort.Search(len(l.records), func(i int) bool {
		return l.records[i].SentAt.After(cutoff)
	})
	if idx > 0 {
		l.records = append(l.records[:0], l.records[idx:]...)
	}

	l.records = append(l.records, SendRecord{Recipient: recipient, SentAt: now})
}

// CanSendNow reports whether both windows currently admit one more send.
// Equivalent to Status().CanSend without building the full status.
func (l *Ledger) CanSendNow() bool {
	now := time.Now()

	l.mu.RLock()
	defer l.mu.RUnlock()

	lastHour, lastDay := l.countsLocked(now)
	return lastHour < l.hourlyLimit && lastDay < l.dailyLimit
}

// Status computes the current rate limit status. Limits are hard cut-offs:
// the send that brings a window count up to its limit is admitted, the next
// one is blocked.
func (l *Ledger) Status() Status {
	now := time.Now()

	l.mu.RLock()
	defer l.mu.RUnlock()

	lastHour, lastDay := l.countsLocked(now)

	s := Status{
		SentLastHour: lastHour,
		SentLastDay:  lastDay,
		CanSend:      lastHour < l.hourlyLimit && lastDay < l.dailyLimit,
		HourlyLimit:  l.hourlyLimit,
		DailyLimit:   l.dailyLimit,
	}
	if s.CanSend {
		return s
	}

	// The violated window relaxes when its oldest in-window record ages out.
	// With both windows violated, the later of the two is binding since both
	// must clear before a send is admitted.
	var next time.Time
	if lastHour >= l.hourlyLimit {
		next = l.oldestAfterLocked(now.Add(-hourWindow)).Add(hourWindow)
	}
	if lastDay >= l.dailyLimit {
		if t := l.oldestAfterLocked(now.Add(-dayWindow)).Add(dayWindow); t.After(next) {
			next = t
		}
	}
	s.NextAvailableAt = &next

	return s
}

// History returns a copy of the retained records, oldest first. The ledger
// retains at most the trailing daily window.
func (l *Ledger) History() []SendRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]SendRecord, len(l.records))
	copy(out, l.records)
	return out
}

// Clear drops all records. Used for test isolation and operator recovery.
func (l *Ledger) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil
}

// countsLocked returns the record counts inside the hourly and daily windows
// ending at now. Caller must hold at least a read lock.
func (l *Ledger) countsLocked(now time.Time) (lastHour, lastDay int) {
	hourCutoff := now.Add(-hourWindow)
	dayCutoff := now.Add(-dayWindow)

	// Records are ascending, so each window is a suffix of the slice.
	dayIdx := sort.Search(len(l.records), func(i int) bool {
		return l.records[i].SentAt.After(dayCutoff)
	})
	hourIdx := sort.Search(len(l.records), func(i int) bool {
		return l.records[i].SentAt.After(hourCutoff)
	})

	return len(l.records) - hourIdx, len(l.records) - dayIdx
}

// oldestAfterLocked returns the timestamp of the oldest record newer than
// cutoff. Caller must hold at least a read lock and must have verified the
// window is non-empty.
func (l *Ledger) oldestAfterLocked(cutoff time.Time) time.Time {
	idx := sort.Search(len(l.records), func(i int) bool {
		return l.records[i].SentAt.After(cutoff)
	})
	return l.records[idx].SentAt
}
