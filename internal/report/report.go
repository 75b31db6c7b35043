// Package report prints every view of a record as one plain document.
package report

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vcrini/lazypokemon/internal/pager"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
	"github.com/vcrini/lazypokemon/internal/views"
)

const barWidth = 40

// Options is applied to every section. Number only affects views with a
// numeric filter and Page only the paged ones.
type Options struct {
	Query    string
	Number   *int
	Page     int
	PageSize int
	// Others are listed next to the main record in the overview section.
	Others []*pokeapi.Record
}

type styles struct {
	heading lipgloss.Style
	title   lipgloss.Style
	muted   lipgloss.Style
	bar     lipgloss.Style
}

func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		heading: r.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		title:   r.NewStyle().Bold(true),
		muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		bar:     r.NewStyle().Foreground(lipgloss.Color("214")),
	}
}

// Write renders overview, forms, game indices, held items, moves and stats in
// that order.
func Write(w io.Writer, rec *pokeapi.Record, opts Options) error {
	if rec == nil {
		return errors.New("no record to report")
	}
	st := newStyles(w)
	var b strings.Builder

	name := views.Capitalize(rec.Name)
	fmt.Fprintf(&b, "%s\n\n", st.heading.Render(fmt.Sprintf("%s (#%d)", name, rec.ID)))

	for _, kind := range views.Kinds {
		state := stateFor(kind, opts)
		v := views.Render(kind, rec, state)
		if kind == views.Overview && len(opts.Others) > 0 {
			v = views.Listing(listed(rec, opts.Others), state)
		}
		if kind.Spec().Paged {
			v.Cards = expanded(kind, rec, state, len(v.Cards))
		}
		writeSection(&b, st, v)
	}

	_, err := io.WriteString(w, b.String())
	return err
}

func stateFor(kind views.Kind, opts Options) views.State {
	size := opts.PageSize
	if size <= 0 {
		size = pager.DefaultSize
	}
	s := views.NewState(size)
	s.SetQuery(opts.Query)
	if kind.Spec().HasNumber() {
		s.SetNumber(opts.Number)
	}
	if opts.Page > 1 {
		s.Pager.Page = opts.Page
	}
	return s
}

func listed(rec *pokeapi.Record, others []*pokeapi.Record) []pokeapi.Record {
	out := []pokeapi.Record{*rec}
	for _, o := range others {
		if o != nil {
			out = append(out, *o)
		}
	}
	return out
}

// expanded renders each card on the page in its open form. A document has no
// toggles, so every move shows its details.
func expanded(kind views.Kind, rec *pokeapi.Record, state views.State, n int) []views.Card {
	out := make([]views.Card, 0, n)
	for i := 0; i < n; i++ {
		s := state
		s.Toggle(s.Pager.Offset() + i)
		out = append(out, views.Render(kind, rec, s).Cards[i])
	}
	return out
}

func writeSection(b *strings.Builder, st styles, v views.View) {
	b.WriteString(st.heading.Render(v.Title) + "\n")
	b.WriteString(strings.Repeat("=", len([]rune(v.Title))) + "\n")
	for _, h := range v.Header {
		b.WriteString(h + "\n")
	}

	if v.Empty != "" {
		b.WriteString(st.muted.Render(v.Empty) + "\n\n")
		return
	}

	for _, c := range v.Cards {
		b.WriteString(st.title.Render(c.Title) + "\n")
		if c.Expanded {
			for _, line := range c.Details {
				b.WriteString(line + "\n")
			}
		} else {
			for _, line := range c.Lines {
				b.WriteString(line + "\n")
			}
		}
		for _, l := range c.Links {
			if l.URL == "" {
				continue
			}
			b.WriteString(st.muted.Render(fmt.Sprintf("%s: %s", l.Label, l.URL)) + "\n")
		}
		b.WriteString("\n")
	}

	if len(v.Bars) > 0 {
		writeBars(b, st, v)
	}

	if v.Paged {
		b.WriteString(st.muted.Render(fmt.Sprintf("Page %d of %d (%d moves)", v.Page, v.Pages, v.Total)) + "\n\n")
	}
}

func writeBars(b *strings.Builder, st styles, v views.View) {
	labelWidth := 0
	for _, bar := range v.Bars {
		labelWidth = max(labelWidth, len([]rune(bar.Label)))
	}
	top := v.MaxValue()
	for _, bar := range v.Bars {
		n := 0
		if top > 0 {
			n = bar.Value * barWidth / top
		}
		pad := strings.Repeat(" ", labelWidth-len([]rune(bar.Label)))
		fmt.Fprintf(b, "%s%s %s %d\n", bar.Label, pad, st.bar.Render(strings.Repeat("#", n)), bar.Value)
	}
	b.WriteString("\n")
}
