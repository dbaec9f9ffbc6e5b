package ratelimit

import (
	"sync"
	"time"
)

// Limiter decides synchronously whether a caller is over its write
// budget. It never blocks: the answer is immediate either way.
type Limiter interface {
	IsLimited(callerID string) bool
}

type window struct {
	start time.Time
	count int
}

// WindowLimiter counts events per caller in fixed time windows. The first
// event after a window expires starts a fresh one. State lives in
// process; callers inject it where rate limiting applies so none of it
// leaks into the lifecycle core.
type WindowLimiter struct {
	mu      sync.Mutex
	limit   int
	length  time.Duration
	windows map[string]*window
	now     func() time.Time

	sincePrune int
}

// every this many new windows, drop the expired ones
const pruneEvery = 256

func NewWindowLimiter(limit int, length time.Duration) *WindowLimiter {
	return &WindowLimiter{
		limit:   limit,
		length:  length,
		windows: make(map[string]*window),
		now:     time.Now,
	}
}

// IsLimited records one event for the caller and reports whether that
// event pushed the current window over the limit.
func (l *WindowLimiter) IsLimited(callerID string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	w := l.windows[callerID]
	if w == nil || now.Sub(w.start) >= l.length {
		l.windows[callerID] = &window{start: now, count: 1}
		l.prune(now)
		return l.limit < 1
	}

	w.count++
	return w.count > l.limit
}

func (l *WindowLimiter) prune(now time.Time) {
	l.sincePrune++
	if l.sincePrune < pruneEvery {
		return
	}
	l.sincePrune = 0
	for key, w := range l.windows {
		if now.Sub(w.start) >= l.length {
			delete(l.windows, key)
		}
	}
}
