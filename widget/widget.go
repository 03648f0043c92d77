// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package widget

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/danielhkuo/pollwidget/client"
	"github.com/danielhkuo/pollwidget/models"
	"github.com/danielhkuo/pollwidget/reltime"
	"github.com/danielhkuo/pollwidget/render"
)

// DefaultUpdateFrequency is the refresh interval used when the config
// leaves UpdateFrequency unset (the original widget's 60 minutes).
const DefaultUpdateFrequency = 60 * time.Minute

// Config is the full configuration surface of one widget instance.
type Config struct {
	RequestAPI string // read endpoint URL (GET)
	VoteAPI    string // write endpoint URL (PATCH)

	// Default content shown until the first fetch completes.
	Question string
	Options  []models.Option

	Width            int           // pixels, 0 means auto
	Height           int           // pixels, 0 means auto
	UpdateFrequency  time.Duration // refresh interval, default 60m
	ShowRelativeTime bool

	Orientation render.Orientation
	Styles      render.Styles
}

// Fetcher is the client-side poll protocol the widget drives. *client.Client
// implements it.
type Fetcher interface {
	Fetch(ctx context.Context) (models.PollState, error)
	Vote(ctx context.Context, id models.OptionID) (models.PollState, error)
}

// Widget is one mounted poll widget: a state store, a refresh loop, a
// one-shot vote action, and an optional relative-time label. A host creates
// it explicitly, subscribes with OnView, and owns its Start/Stop lifecycle.
type Widget struct {
	cfg Config
	api Fetcher

	mu          sync.Mutex
	emitMu      sync.Mutex
	state       models.PollState
	revealed    bool
	lastUpdate  time.Time
	mounted     bool
	stop        chan struct{}
	prevView    render.View
	updatedText string

	onView  func(render.View)
	onError func(error)

	label *reltime.Label
	now   func() time.Time
}

// New creates a widget for the given config. A nil api wires the default
// HTTP client against cfg.RequestAPI / cfg.VoteAPI.
func New(cfg Config, api Fetcher) *Widget {
	if api == nil {
		api = client.New(cfg.RequestAPI, cfg.VoteAPI)
	}
	if cfg.UpdateFrequency <= 0 {
		cfg.UpdateFrequency = DefaultUpdateFrequency
	}
	w := &Widget{
		cfg: cfg,
		api: api,
		state: models.PollState{
			Question: cfg.Question,
			Options:  cfg.Options,
		},
		now: time.Now,
	}
	w.label = reltime.New(w.setUpdatedLabel)
	w.label.SetVisible(func() bool {
		return cfg.ShowRelativeTime && w.Revealed()
	})
	return w
}

// OnView subscribes the host's render sink. Set before Start; every
// accepted state mutation produces exactly one view. The callback must not
// call back into the widget synchronously.
func (w *Widget) OnView(fn func(render.View)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onView = fn
}

// OnError subscribes the host's error sink. Failed refreshes and votes are
// reported here; the displayed state is left unchanged either way.
func (w *Widget) OnError(fn func(error)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onError = fn
}

// SetClock overrides the wall-clock source for the last-update timestamp.
func (w *Widget) SetClock(now func() time.Time) {
	w.mu.Lock()
	w.now = now
	w.mu.Unlock()
	w.label.SetClock(now)
}

// Start mounts the widget: renders the default content, issues an immediate
// refresh, and arms the recurring refresh timer. Starting a started widget
// is a no-op.
func (w *Widget) Start(ctx context.Context) {
	w.mu.Lock()
	if w.mounted {
		w.mu.Unlock()
		return
	}
	w.mounted = true
	stop := make(chan struct{})
	w.stop = stop
	w.mu.Unlock()

	w.emit()
	w.label.Start()

	go w.run(ctx, stop)
}

// Stop unmounts the widget. The refresh timer and the relative-time label
// are freed unconditionally, and any network response that arrives after
// Stop is discarded instead of mutating detached state. Safe to call more
// than once.
func (w *Widget) Stop() {
	w.mu.Lock()
	if !w.mounted {
		w.mu.Unlock()
		return
	}
	w.mounted = false
	close(w.stop)
	w.stop = nil
	w.mu.Unlock()

	w.label.Stop()
}

// Vote submits the chosen option. The first accepted call flips the widget
// from Voting to Revealed synchronously, then submits the id and merges the
// server's response like a refresh. Any later call is a no-op; the reported
// bool says whether the vote was accepted.
func (w *Widget) Vote(ctx context.Context, id models.OptionID) bool {
	w.mu.Lock()
	if !w.mounted || w.revealed {
		w.mu.Unlock()
		return false
	}
	w.revealed = true
	w.mu.Unlock()

	// Reveal immediately, before the network round trip.
	w.emit()

	go func() {
		state, err := w.api.Vote(ctx, id)
		if err != nil {
			w.fail(err)
			return
		}
		w.apply(state)
	}()
	return true
}

// Refresh fetches the current poll state once, outside the timer cadence.
func (w *Widget) Refresh(ctx context.Context) {
	state, err := w.api.Fetch(ctx)
	if err != nil {
		w.fail(err)
		return
	}
	w.apply(state)
}

// Revealed reports whether results are visible.
func (w *Widget) Revealed() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.revealed
}

// State returns a snapshot of the current poll state.
func (w *Widget) State() models.PollState {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state.Clone()
}

// LastUpdate returns the timestamp of the last successful refresh or vote
// response; zero until the first one lands.
func (w *Widget) LastUpdate() time.Time {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastUpdate
}

func (w *Widget) run(ctx context.Context, stop chan struct{}) {
	w.Refresh(ctx)

	ticker := time.NewTicker(w.cfg.UpdateFrequency)
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.Refresh(ctx)
		}
	}
}

// apply replaces the whole state (last write wins, no merge) and re-renders.
// Responses racing Stop lose: once unmounted nothing is applied.
func (w *Widget) apply(state models.PollState) {
	w.mu.Lock()
	if !w.mounted {
		w.mu.Unlock()
		return
	}
	w.state = state
	w.lastUpdate = w.now()
	w.mu.Unlock()

	w.label.SetTimestamp(w.LastUpdate())
	w.emit()
}

func (w *Widget) fail(err error) {
	w.mu.Lock()
	onError := w.onError
	mounted := w.mounted
	w.mu.Unlock()

	if !mounted {
		return
	}
	slog.Warn("poll request failed", "error", err)
	if onError != nil {
		onError(err)
	}
}

func (w *Widget) setUpdatedLabel(text string) {
	w.mu.Lock()
	if !w.mounted || text == w.updatedText {
		w.mu.Unlock()
		return
	}
	w.updatedText = text
	w.mu.Unlock()

	w.emit()
}

// emit renders the current state and pushes the reconciled view to the
// host. emitMu keeps build and delivery atomic, so two racing responses
// cannot deliver their views out of order and leave the stale one painted
// last. The callback runs without the state lock held.
func (w *Widget) emit() {
	w.emitMu.Lock()
	defer w.emitMu.Unlock()

	w.mu.Lock()
	opts := render.Options{
		Width:       w.cfg.Width,
		Height:      w.cfg.Height,
		Orientation: w.cfg.Orientation,
		Styles:      w.cfg.Styles,
	}
	if w.cfg.ShowRelativeTime && w.revealed {
		opts.UpdatedLabel = w.updatedText
	}
	view := render.Render(w.state, w.revealed, opts)
	view = render.Reconcile(w.prevView, view)
	w.prevView = view
	onView := w.onView
	w.mu.Unlock()

	if onView != nil {
		onView(view)
	}
}
