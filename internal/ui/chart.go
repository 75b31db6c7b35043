package ui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/rivo/tview"
	"github.com/samber/lo"

	"github.com/vcrini/lazypokemon/internal/views"
)

const defaultChartWidth = 60

// barChart draws one horizontal bar per stat, scaled so the largest value
// spans the space left after the label and value columns.
func barChart(bars []views.Bar, width int) string {
	if len(bars) == 0 {
		return ""
	}
	if width <= 0 {
		width = defaultChartWidth
	}
	labelWidth := lo.Max(lo.Map(bars, func(b views.Bar, _ int) int {
		return utf8.RuneCountInString(b.Label)
	}))
	max := lo.Max(lo.Map(bars, func(b views.Bar, _ int) int { return b.Value }))
	room := width - labelWidth - 6
	if room < 1 {
		room = 1
	}

	var b strings.Builder
	for i, bar := range bars {
		n := 0
		if max > 0 && bar.Value > 0 {
			n = bar.Value * room / max
			if n == 0 {
				n = 1
			}
		}
		pad := strings.Repeat(" ", labelWidth-utf8.RuneCountInString(bar.Label))
		fmt.Fprintf(&b, "%s%s [gold]%s[-] %d", tview.Escape(bar.Label), pad, strings.Repeat("█", n), bar.Value)
		if i < len(bars)-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}
