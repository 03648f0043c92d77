// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package reltime

import (
	"sync"
	"time"

	"github.com/dustin/go-humanize"
)

// Format renders the elapsed time between the last update and now as the
// label text, e.g. "updated 3 minutes ago".
func Format(updated, now time.Time) string {
	return "updated " + humanize.RelTime(updated, now, "ago", "from now")
}

// Label is a self-updating relative-time sub-widget. While started it
// recomputes the label text once per second against wall-clock now and
// pushes it to the update callback, but only while the visible predicate
// holds. Stop halts the ticker immediately; a stopped Label never fires.
type Label struct {
	mu       sync.Mutex
	updated  time.Time
	visible  func() bool
	onUpdate func(text string)
	now      func() time.Time
	stop     chan struct{}
}

// New creates a Label that delivers text through onUpdate. The label
// starts stopped; call Start to arm the ticker.
func New(onUpdate func(text string)) *Label {
	return &Label{
		onUpdate: onUpdate,
		visible:  func() bool { return true },
		now:      time.Now,
	}
}

// SetVisible installs the predicate consulted before every update. A nil
// predicate means always visible.
func (l *Label) SetVisible(pred func() bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if pred == nil {
		pred = func() bool { return true }
	}
	l.visible = pred
}

// SetClock overrides the wall-clock source. Tests use this to pin "now".
func (l *Label) SetClock(now func() time.Time) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.now = now
}

// SetTimestamp records the moment the label measures from and, if the label
// is running and visible, pushes a recomputed text immediately.
func (l *Label) SetTimestamp(t time.Time) {
	l.mu.Lock()
	l.updated = t
	running := l.stop != nil
	l.mu.Unlock()
	if running {
		l.tick()
	}
}

// Start arms the one-second ticker. Starting an already-started Label is a
// no-op.
func (l *Label) Start() {
	l.mu.Lock()
	if l.stop != nil {
		l.mu.Unlock()
		return
	}
	stop := make(chan struct{})
	l.stop = stop
	l.mu.Unlock()

	l.tick()

	go func() {
		ticker := time.NewTicker(time.Second)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				l.tick()
			}
		}
	}()
}

// Stop halts the ticker. Safe to call multiple times and on a never-started
// Label.
func (l *Label) Stop() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.stop == nil {
		return
	}
	close(l.stop)
	l.stop = nil
}

func (l *Label) tick() {
	l.mu.Lock()
	if l.stop == nil || l.updated.IsZero() || !l.visible() {
		l.mu.Unlock()
		return
	}
	text := Format(l.updated, l.now())
	onUpdate := l.onUpdate
	l.mu.Unlock()

	if onUpdate != nil {
		onUpdate(text)
	}
}
