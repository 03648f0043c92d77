package reltime

import (
	"testing"
	"time"
)

func TestFormat(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		updated time.Time
		want    string
	}{
		{"seconds", now.Add(-30 * time.Second), "updated 30 seconds ago"},
		{"minutes", now.Add(-3 * time.Minute), "updated 3 minutes ago"},
		{"hours", now.Add(-2 * time.Hour), "updated 2 hours ago"},
		{"just now", now, "updated now"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Format(tt.updated, now)
			if got != tt.want {
				t.Errorf("Format() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestLabel_UpdatesWhileVisible(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	got := make(chan string, 8)

	l := New(func(text string) { got <- text })
	l.SetClock(func() time.Time { return now })

	l.Start()
	defer l.Stop()

	l.SetTimestamp(now.Add(-3 * time.Minute))

	select {
	case text := <-got:
		if text != "updated 3 minutes ago" {
			t.Errorf("expected %q, got %q", "updated 3 minutes ago", text)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("label never fired")
	}
}

func TestLabel_SilentWhileHidden(t *testing.T) {
	got := make(chan string, 8)

	l := New(func(text string) { got <- text })
	l.SetVisible(func() bool { return false })

	l.Start()
	defer l.Stop()

	l.SetTimestamp(time.Now())

	select {
	case text := <-got:
		t.Errorf("hidden label must not fire, got %q", text)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLabel_NoUpdatesAfterStop(t *testing.T) {
	got := make(chan string, 8)

	l := New(func(text string) { got <- text })
	l.Start()
	l.SetTimestamp(time.Now())
	<-got // initial update

	l.Stop()
	drain(got)

	// SetTimestamp recomputes only while running.
	l.SetTimestamp(time.Now())

	select {
	case text := <-got:
		t.Errorf("stopped label must not fire, got %q", text)
	case <-time.After(100 * time.Millisecond):
	}
}

func TestLabel_StopIdempotent(t *testing.T) {
	l := New(nil)
	l.Stop() // never started
	l.Start()
	l.Stop()
	l.Stop() // twice
}

func drain(ch chan string) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}
