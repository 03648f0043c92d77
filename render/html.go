// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package render

import (
	"fmt"
	"html/template"
	"strings"
)

var snippet = template.Must(template.New("pollwidget").Funcs(template.FuncMap{
	"pct": func(w float64) string { return fmt.Sprintf("%.1f%%", w) },
}).Parse(`<div class="pollwidget pollwidget-{{.Orientation}}" style="width:{{.Width}};height:{{.Height}};background:{{.Styles.Background}};color:{{.Styles.TextColor}};font-size:{{.Styles.FontSize}}">
  <p class="pollwidget-question">{{.Question}}</p>
{{- range .Rows}}
  <div class="pollwidget-option" data-option-id="{{.ID}}">
    <span class="pollwidget-label">{{.Text}}</span>
    <div class="pollwidget-bar{{if .Animate}} pollwidget-animate{{end}}" style="width:{{pct .BarWidth}};background:{{$.Styles.BarColor}};border-radius:{{$.Styles.BorderRadius}}"></div>
{{- if .ShowVotes}}
    <span class="pollwidget-votes" style="color:{{$.Styles.VoteColor}}">{{.Votes}}</span>
{{- end}}
  </div>
{{- end}}
{{- if .UpdatedLabel}}
  <p class="pollwidget-updated">{{.UpdatedLabel}}</p>
{{- end}}
</div>
`))

// HTML renders the view as an embeddable snippet. Bars marked Animate carry
// the pollwidget-animate class; the host's stylesheet owns the transition
// itself.
func HTML(v View) (string, error) {
	var sb strings.Builder
	if err := snippet.Execute(&sb, v); err != nil {
		return "", fmt.Errorf("failed to render snippet: %w", err)
	}
	return sb.String(), nil
}
