// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package render turns poll state into a visual tree.

# Pure Rendering

Render has no side effects and no hidden inputs:

	view := render.Render(state, revealed, opts)

Before the first vote the widget is in hide-results mode: every bar at full
width, vote counts hidden. After the reveal each bar's width is

	votes_i / max_j votes_j * 90%

so the leading option always renders at exactly 90%. A poll where every
option has zero votes clamps all widths to 0 instead of producing NaN.

# Reconciliation

Reconcile(prev, next) marks which bars should run their one-shot width
transition, keyed by option id: all of them when the reveal just happened,
and any bar whose width changed while results were already visible. Options
that appear or disappear between refreshes are handled by construction —
the View is rebuilt wholesale, so there is never a stale animation target.

# Output

View is plain data. HTML(view) produces an embeddable snippet honoring the
configured width/height, bar orientation, and the named style variables
(background, text color, font size, border radius, bar color, vote color).
*/
package render
