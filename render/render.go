// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"

	"github.com/danielhkuo/pollwidget/models"
)

// BarScale is the rendered width, in percent, of the bar with the most
// votes. Every other bar is proportional to it.
const BarScale = 90.0

// Orientation selects between the two widget variants.
type Orientation string

const (
	Horizontal Orientation = "horizontal"
	Vertical   Orientation = "vertical"
)

// Styles are the named presentational variables a host may override. Zero
// values fall back to the defaults below at render time.
type Styles struct {
	Background   string
	TextColor    string
	FontSize     string
	BorderRadius string
	BarColor     string
	VoteColor    string
}

var defaultStyles = Styles{
	Background:   "#ffffff",
	TextColor:    "#222222",
	FontSize:     "14px",
	BorderRadius: "4px",
	BarColor:     "#4f86f7",
	VoteColor:    "#666666",
}

// Options carries the presentational slice of the widget configuration.
type Options struct {
	Width        int // pixels, 0 means auto
	Height       int // pixels, 0 means auto
	Orientation  Orientation
	Styles       Styles
	UpdatedLabel string // empty hides the label
}

// Row is one rendered option.
type Row struct {
	ID        models.OptionID
	Text      string
	Votes     int
	ShowVotes bool
	BarWidth  float64 // percent, 0..BarScale (100 before reveal)
	Animate   bool    // set by Reconcile, never by Render
}

// View is the complete visual output for one poll state. It is plain data;
// hosts may walk it directly or use HTML to get an embeddable snippet.
type View struct {
	Question     string
	Rows         []Row
	Revealed     bool
	UpdatedLabel string
	Width        string // CSS dimension, "auto" or "<n>px"
	Height       string
	Orientation  Orientation
	Styles       Styles
}

// Render is a pure mapping from poll state to a View. Before the reveal,
// bars are full width and vote counts hidden; after it, each bar's width is
// votes/max*BarScale. A poll whose votes are all zero renders every bar at
// width 0 rather than dividing by zero.
func Render(state models.PollState, revealed bool, opts Options) View {
	v := View{
		Question:     state.Question,
		Revealed:     revealed,
		Width:        dimension(opts.Width),
		Height:       dimension(opts.Height),
		Orientation:  opts.Orientation,
		Styles:       mergeStyles(opts.Styles),
		UpdatedLabel: opts.UpdatedLabel,
	}
	if v.Orientation == "" {
		v.Orientation = Horizontal
	}

	max := 0
	for _, opt := range state.Options {
		if opt.Votes > max {
			max = opt.Votes
		}
	}

	for _, opt := range state.Options {
		row := Row{ID: opt.ID, Text: opt.Text, Votes: opt.Votes}
		if !revealed {
			row.BarWidth = 100
		} else {
			row.ShowVotes = true
			if max > 0 {
				row.BarWidth = float64(opt.Votes) / float64(max) * BarScale
			}
		}
		v.Rows = append(v.Rows, row)
	}
	return v
}

// Reconcile compares the previous and next views by option id and marks the
// rows whose bar should run its one-shot width transition: every row when
// the reveal just happened, and any row whose width changed while results
// were already visible. Ids present only in next appear without animation;
// ids that vanished are simply absent from next.
func Reconcile(prev, next View) View {
	if !next.Revealed {
		return next
	}
	if !prev.Revealed {
		for i := range next.Rows {
			next.Rows[i].Animate = true
		}
		return next
	}

	prevWidths := make(map[models.OptionID]float64, len(prev.Rows))
	for _, row := range prev.Rows {
		prevWidths[row.ID] = row.BarWidth
	}
	for i, row := range next.Rows {
		if w, ok := prevWidths[row.ID]; ok && w != row.BarWidth {
			next.Rows[i].Animate = true
		}
	}
	return next
}

func dimension(px int) string {
	if px <= 0 {
		return "auto"
	}
	return fmt.Sprintf("%dpx", px)
}

func mergeStyles(s Styles) Styles {
	if s.Background == "" {
		s.Background = defaultStyles.Background
	}
	if s.TextColor == "" {
		s.TextColor = defaultStyles.TextColor
	}
	if s.FontSize == "" {
		s.FontSize = defaultStyles.FontSize
	}
	if s.BorderRadius == "" {
		s.BorderRadius = defaultStyles.BorderRadius
	}
	if s.BarColor == "" {
		s.BarColor = defaultStyles.BarColor
	}
	if s.VoteColor == "" {
		s.VoteColor = defaultStyles.VoteColor
	}
	return s
}
