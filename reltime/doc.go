// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package reltime provides the self-updating "updated N ago" label.

# Lifecycle

Label follows the same start/stop contract as the widget's refresh loop:

	label := reltime.New(func(text string) { view.SetFooter(text) })
	label.SetTimestamp(time.Now())
	label.Start()
	defer label.Stop()

While started, the label recomputes its text every second via
humanize.RelTime and pushes it to the callback. Stop frees the ticker
unconditionally; no update can fire after Stop returns from the caller's
point of view (a tick racing Stop is discarded by the stop guard).

# Visibility

SetVisible installs a predicate consulted before each update, so a host can
park the label while results are hidden without tearing it down:

	label.SetVisible(func() bool { return w.Revealed() })
*/
package reltime
