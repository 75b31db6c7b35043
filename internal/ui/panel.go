package ui

import (
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vcrini/lazypokemon/internal/debounce"
	"github.com/vcrini/lazypokemon/internal/filter"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
	"github.com/vcrini/lazypokemon/internal/views"
)

var sortOptions = []filter.Order{filter.Source, filter.Ascending, filter.Descending}

// panel is one catalog page: its filter controls, its list or chart and the
// state they drive.
type panel struct {
	spec  views.Spec
	state views.State
	view  views.View

	root   *tview.Flex
	search *tview.InputField
	number *tview.InputField
	sort   *tview.DropDown
	hidden *tview.Checkbox
	list   *tview.List
	chart  *tview.TextView
	info   *tview.TextView

	query *debounce.Debouncer[string]
}

func (ui *tviewUI) newPanel(kind views.Kind, pageSize int, window time.Duration) *panel {
	p := &panel{spec: kind.Spec(), state: views.NewState(pageSize)}

	p.query = debounce.New(window, func(text string) {
		ui.queue(func() { ui.commitQuery(p, text) })
	})

	p.search = tview.NewInputField().SetLabel(" Search ").SetFieldWidth(0).SetPlaceholder(p.spec.SearchPlaceholder)
	p.search.SetChangedFunc(func(text string) {
		p.query.Push(text)
	})
	p.search.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			p.query.Flush()
			ui.focusActiveCatalogList()
		}
	})

	filters := tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(p.search, 0, 2, false)

	if p.spec.HasNumber() {
		p.number = tview.NewInputField().SetLabel(" Filter ").SetFieldWidth(0).SetPlaceholder(p.spec.NumberPlaceholder)
		p.number.SetAcceptanceFunc(tview.InputFieldInteger)
		p.number.SetChangedFunc(func(text string) {
			n, err := filter.ParseNumber(text)
			if err != nil {
				n = nil
			}
			p.state.SetNumber(n)
			ui.refreshPanel(p)
			ui.refreshDetail()
		})
		p.number.SetDoneFunc(func(key tcell.Key) {
			if key == tcell.KeyEnter {
				ui.focusActiveCatalogList()
			}
		})
		filters.AddItem(p.number, 0, 1, false)
	}

	if p.spec.Sortable {
		p.sort = tview.NewDropDown().SetLabel(" Sort ")
		p.sort.SetFieldBackgroundColor(tcell.ColorBlack)
		p.sort.SetFieldTextColor(tcell.ColorWhite)
		p.sort.SetListStyles(
			tcell.StyleDefault.Foreground(tcell.ColorWhite).Background(tcell.ColorBlack),
			tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGold),
		)
		filters.AddItem(p.sort, 0, 1, false)
	}

	if p.spec.HiddenToggle {
		p.hidden = tview.NewCheckbox().SetLabel(" Hidden only ")
		p.hidden.SetChangedFunc(func(checked bool) {
			p.state.SetHiddenOnly(checked)
			ui.refreshPanel(p)
			ui.refreshDetail()
		})
		filters.AddItem(p.hidden, 0, 1, false)
	}

	p.info = tview.NewTextView().SetDynamicColors(true)

	p.root = tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(filters, 2, 0, false)

	if p.spec.Chart {
		p.chart = tview.NewTextView().SetDynamicColors(true).SetWrap(false)
		p.root.AddItem(p.chart, 0, 1, true)
	} else {
		p.list = tview.NewList().ShowSecondaryText(true)
		p.list.SetChangedFunc(func(int, string, string, rune) {
			ui.refreshDetail()
		})
		p.list.SetSelectedFunc(func(index int, _, _ string, _ rune) {
			if p.spec.Paged {
				ui.toggleMove(p, index)
			}
		})
		p.root.AddItem(p.list, 0, 1, true)
	}
	p.root.AddItem(p.info, 2, 0, false)
	p.root.SetBorder(true)

	if p.sort != nil {
		labels := make([]string, 0, len(sortOptions))
		for _, o := range sortOptions {
			labels = append(labels, o.String())
		}
		p.sort.SetOptions(labels, func(_ string, index int) {
			if index < 0 || index >= len(sortOptions) {
				index = 0
			}
			if p.state.Order == sortOptions[index] {
				return
			}
			p.state.SetOrder(sortOptions[index])
			ui.refreshPanel(p)
			ui.refreshDetail()
			ui.focusActiveCatalogList()
		})
		p.sort.SetCurrentOption(0)
	}
	return p
}

// primary is what '1' and Enter in the search box focus.
func (p *panel) primary() tview.Primitive {
	if p.chart != nil {
		return p.chart
	}
	return p.list
}

// controls lists the focusable widgets of the panel in tab order.
func (p *panel) controls() []tview.Primitive {
	out := []tview.Primitive{p.search}
	if p.number != nil {
		out = append(out, p.number)
	}
	if p.sort != nil {
		out = append(out, p.sort)
	}
	if p.hidden != nil {
		out = append(out, p.hidden)
	}
	return append(out, p.primary())
}

func (p *panel) owns(focus tview.Primitive) bool {
	for _, c := range p.controls() {
		if c == focus {
			return true
		}
	}
	return false
}

func (p *panel) render(rec *pokeapi.Record) {
	p.view = views.Render(p.spec.Kind, rec, p.state)

	if p.chart != nil {
		text := barChart(p.view.Bars, defaultChartWidth)
		if p.view.Empty != "" {
			text = "[gray]" + p.view.Empty + "[-]"
		}
		p.chart.SetText(text)
	}

	if p.list != nil {
		current := p.list.GetCurrentItem()
		p.list.Clear()
		for _, c := range p.view.Cards {
			secondary := ""
			if len(c.Lines) > 0 {
				secondary = c.Lines[0]
			}
			p.list.AddItem(tview.Escape(c.Title), tview.Escape(secondary), 0, nil)
		}
		if current >= len(p.view.Cards) {
			current = len(p.view.Cards) - 1
		}
		if current < 0 {
			current = 0
		}
		if len(p.view.Cards) > 0 {
			p.list.SetCurrentItem(current)
		}
	}

	p.info.SetText(p.infoText())
}

func (p *panel) infoText() string {
	var lines []string
	if len(p.view.Header) > 0 {
		lines = append(lines, tview.Escape(strings.Join(p.view.Header, "  ")))
	}
	switch {
	case p.view.Empty != "":
		lines = append(lines, "[gray]"+p.view.Empty+"[-]")
	case p.view.Paged:
		lines = append(lines, fmt.Sprintf("Page %d of %d  [black:gold]p[-:-] prev  [black:gold]n[-:-] next", p.view.Page, p.view.Pages))
	default:
		lines = append(lines, fmt.Sprintf("%d shown", p.view.Total))
	}
	return strings.Join(lines, "\n")
}

// selectedCard is the card under the list cursor, or nil.
func (p *panel) selectedCard() *views.Card {
	if p.list == nil || len(p.view.Cards) == 0 {
		return nil
	}
	idx := p.list.GetCurrentItem()
	if idx < 0 || idx >= len(p.view.Cards) {
		return nil
	}
	return &p.view.Cards[idx]
}

// reset clears every filter control. SetText fires the changed handlers, so
// the pending debounced query is dropped afterwards.
func (p *panel) reset() {
	p.search.SetText("")
	p.query.Cancel()
	if p.number != nil {
		p.number.SetText("")
	}
	if p.hidden != nil {
		p.hidden.SetChecked(false)
	}
	p.state.Reset()
	if p.sort != nil {
		p.sort.SetCurrentOption(0)
	}
}

func (p *panel) close() {
	p.query.Close()
}
