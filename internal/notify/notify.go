package notify

import (
	"io"
	"log/slog"
	"sync"
	"time"
)

// Notifier schedules a single pending alert. Implementations are best effort:
// callers log errors and carry on.
type Notifier interface {
	// Schedule replaces any pending alert with one that fires after d.
	Schedule(d time.Duration) error
	// Cancel drops the pending alert, if any.
	Cancel() error
}

// Nop is a Notifier that does nothing.
type Nop struct{}

func (Nop) Schedule(time.Duration) error { return nil }
func (Nop) Cancel() error                { return nil }

// Bell rings the terminal bell when the scheduled alert fires.
type Bell struct {
	mu     sync.Mutex
	w      io.Writer
	timer  *time.Timer
	gen    int
	logger *slog.Logger
	after  func(time.Duration, func()) *time.Timer
}

// NewBell returns a Bell that writes to w.
func NewBell(w io.Writer, logger *slog.Logger) *Bell {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Bell{w: w, logger: logger, after: time.AfterFunc}
}

func (b *Bell) Schedule(d time.Duration) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.timer != nil {
		b.timer.Stop()
	}
	b.gen++
	gen := b.gen
	b.timer = b.after(d, func() { b.ring(gen) })
	b.logger.Debug("rest alert scheduled", "after", d)
	return nil
}

func (b *Bell) Cancel() error {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.gen++
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
		b.logger.Debug("rest alert cancelled")
	}
	return nil
}

// ring fires only for the most recent Schedule call.
func (b *Bell) ring(gen int) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if gen != b.gen {
		return
	}
	b.timer = nil
	if _, err := io.WriteString(b.w, "\a"); err != nil {
		b.logger.Warn("rest alert failed", "error", err)
	}
}
