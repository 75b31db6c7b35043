// Package ui is the interactive page composer: a tview application with one
// catalog page per view and a shared detail pane.
package ui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/vcrini/lazypokemon/internal/observability"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
	"github.com/vcrini/lazypokemon/internal/views"
)

const helpText = " [black:gold]q[-:-] quit  [black:gold]?[-:-] help  [black:gold]f[-:-] fullscreen  [black:gold]tab/shift+tab[-:-] focus  [black:gold]1/2[-:-] panels  [black:gold][[ / ]][-:-] views  [black:gold]/[-:-] raw search  [black:gold]PgUp/PgDn[-:-] scroll details  [black:gold]v[-:-] reset filters "

const (
	pageLoading = "loading"
	pageError   = "error"
	pageMain    = "main"
)

type Options struct {
	Loader   *pokeapi.Loader
	Pokemon  string
	Debounce time.Duration
	PageSize int
	Logger   observability.Logger
}

type tviewUI struct {
	app     *tview.Application
	pages   *tview.Pages
	status  *tview.TextView
	loading *tview.TextView
	failure *tview.TextView

	catalogPanel *tview.Pages
	detail       *tview.TextView
	mainRow      *tview.Flex
	body         *tview.Flex

	panels   []*panel
	active   int
	focus    []tview.Primitive
	focusIdx int
	message  string

	loader  *pokeapi.Loader
	pokemon string
	result  pokeapi.Result
	log     observability.Logger

	// queue runs f on the UI goroutine. Timer and fetch callbacks go through it.
	queue func(f func())

	detailRaw     string
	detailQuery   string
	detailMatches int

	helpVisible     bool
	helpReturnFocus tview.Primitive

	modalVisible bool
	modalName    string

	fullscreenActive bool
	fullscreenTarget string

	closed bool
}

// Run builds the UI, starts the fetch and blocks until the user quits.
func Run(ctx context.Context, opts Options) error {
	tview.Styles.PrimitiveBackgroundColor = tcell.ColorBlack
	tview.Styles.ContrastBackgroundColor = tcell.ColorBlack
	tview.Styles.MoreContrastBackgroundColor = tcell.ColorBlack
	tview.Styles.BorderColor = tcell.ColorGold
	tview.Styles.TitleColor = tcell.ColorGold
	tview.Styles.GraphicsColor = tcell.ColorGold
	tview.Styles.PrimaryTextColor = tcell.ColorWhite
	tview.Styles.SecondaryTextColor = tcell.ColorLightGray
	tview.Styles.TertiaryTextColor = tcell.ColorAqua
	tview.Styles.InverseTextColor = tcell.ColorBlack
	tview.Styles.ContrastSecondaryTextColor = tcell.ColorBlack

	ui := newTViewUI(opts)
	defer ui.shutdown()
	ui.start(ctx)
	return ui.app.SetRoot(ui.pages, true).EnableMouse(true).Run()
}

func newTViewUI(opts Options) *tviewUI {
	ui := &tviewUI{
		app:     tview.NewApplication(),
		loader:  opts.Loader,
		pokemon: opts.Pokemon,
		log:     opts.Logger.With("ui"),
		message: "Ready.",
	}
	ui.queue = func(f func()) { ui.app.QueueUpdateDraw(f) }
	ui.build(opts)
	return ui
}

func (ui *tviewUI) build(opts Options) {
	ui.catalogPanel = tview.NewPages()
	for i, kind := range views.Kinds {
		p := ui.newPanel(kind, opts.PageSize, opts.Debounce)
		ui.panels = append(ui.panels, p)
		ui.catalogPanel.AddPage(p.spec.Key, p.root, true, i == 0)
	}
	ui.refreshCatalogTitles()

	ui.detail = tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	ui.detail.SetBorder(true).SetTitle(" [2]-Details ")

	ui.mainRow = tview.NewFlex().SetDirection(tview.FlexColumn).
		AddItem(ui.catalogPanel, 0, 1, true).
		AddItem(ui.detail, 0, 1, false)

	ui.status = tview.NewTextView().SetDynamicColors(true).SetText(helpText)
	ui.status.SetBackgroundColor(tcell.ColorBlack)

	ui.body = tview.NewFlex().SetDirection(tview.FlexRow)
	ui.applyLayout()

	ui.loading = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter)
	ui.loading.SetBorder(true).SetTitle(" lazypokemon ")
	ui.loading.SetText(fmt.Sprintf("\n\nLoading Pokémon %s...\n\n[gray]q to quit[-]", tview.Escape(ui.pokemon)))

	ui.failure = tview.NewTextView().SetDynamicColors(true).SetTextAlign(tview.AlignCenter).SetWrap(true)
	ui.failure.SetBorder(true).SetTitle(" Error ")

	ui.pages = tview.NewPages().
		AddPage(pageMain, ui.body, true, false).
		AddPage(pageError, ui.failure, true, false).
		AddPage(pageLoading, ui.loading, true, true)

	ui.rebuildFocus()
	ui.app.SetFocus(ui.loading)
	ui.app.SetInputCapture(ui.handleGlobalKeys)
}

// start issues the fetch. The result is applied on the UI goroutine and is
// dropped if the UI has been shut down in the meantime.
func (ui *tviewUI) start(ctx context.Context) {
	if ui.loader == nil {
		ui.onLoaded(pokeapi.Result{Status: pokeapi.Failed, Message: "Failed to fetch data"})
		return
	}
	ui.log.Infof("fetching pokemon %s", ui.pokemon)
	ui.loader.Start(ctx, func(res pokeapi.Result) {
		ui.queue(func() { ui.onLoaded(res) })
	})
}

func (ui *tviewUI) onLoaded(res pokeapi.Result) {
	if ui.closed {
		return
	}
	ui.result = res
	switch res.Status {
	case pokeapi.Failed:
		ui.log.Errorf("fetch failed: %s", res.Message)
		ui.failure.SetText(fmt.Sprintf("\n\n[red]%s[-]\n\n[gray]q to quit[-]", tview.Escape(res.Message)))
		ui.pages.SwitchToPage(pageError)
		ui.app.SetFocus(ui.failure)
	case pokeapi.Ready:
		ui.log.Infof("loaded %s (#%d)", res.Record.Name, res.Record.ID)
		ui.pages.SwitchToPage(pageMain)
		ui.refreshAll()
		ui.focusActiveCatalogList()
	}
}

func (ui *tviewUI) ready() bool {
	return ui.result.Status == pokeapi.Ready
}

func (ui *tviewUI) record() *pokeapi.Record {
	if !ui.ready() {
		return nil
	}
	return ui.result.Record
}

func (ui *tviewUI) activePanel() *panel {
	return ui.panels[ui.active]
}

func (ui *tviewUI) panelByKey(key string) *panel {
	for _, p := range ui.panels {
		if p.spec.Key == key {
			return p
		}
	}
	return nil
}

func (ui *tviewUI) panelFor(focus tview.Primitive) *panel {
	for _, p := range ui.panels {
		if p.owns(focus) {
			return p
		}
	}
	return nil
}

func (ui *tviewUI) handleGlobalKeys(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		ui.app.Stop()
		return nil
	}
	if !ui.ready() {
		if ev.Key() == tcell.KeyRune && ev.Rune() == 'q' {
			ui.app.Stop()
		}
		return nil
	}

	focus := ui.app.GetFocus()
	_, focusIsInput := focus.(*tview.InputField)

	if ui.helpVisible {
		if ev.Key() == tcell.KeyEscape || (ev.Key() == tcell.KeyRune && (ev.Rune() == '?' || ev.Rune() == 'q')) {
			ui.closeHelpOverlay()
			return nil
		}
		return ev
	}
	if ui.modalVisible {
		if ev.Key() == tcell.KeyEscape {
			ui.closeModal()
			return nil
		}
		return ev
	}

	if focusIsInput && ev.Key() == tcell.KeyEsc {
		ui.focusActiveCatalogList()
		return nil
	}

	switch ev.Key() {
	case tcell.KeyTAB:
		ui.focusNext()
		return nil
	case tcell.KeyBacktab:
		ui.focusPrev()
		return nil
	case tcell.KeyPgUp:
		ui.scrollDetail(-1)
		return nil
	case tcell.KeyPgDn:
		ui.scrollDetail(1)
		return nil
	}

	if ev.Key() != tcell.KeyRune || focusIsInput {
		return ev
	}

	switch ev.Rune() {
	case '?':
		ui.openHelpOverlay(focus)
		return nil
	case 'f':
		ui.toggleFullscreenForFocus(focus)
		return nil
	case 'q':
		ui.app.Stop()
		return nil
	case '1':
		ui.focusActiveCatalogList()
		return nil
	case '2':
		ui.focusDetail()
		return nil
	case '[':
		ui.switchCatalog(-1)
		return nil
	case ']':
		ui.switchCatalog(1)
		return nil
	case '/':
		ui.openRawSearch(focus)
		return nil
	case 'v':
		ui.resetFilters()
		return nil
	case 'n':
		if ui.activePanel().spec.Paged {
			ui.changePage(ui.activePanel(), 1)
			return nil
		}
	case 'p':
		if ui.activePanel().spec.Paged {
			ui.changePage(ui.activePanel(), -1)
			return nil
		}
	}
	return ev
}

// rebuildFocus recomputes the tab order: the active panel's controls, then
// the detail pane.
func (ui *tviewUI) rebuildFocus() {
	ui.focus = append(ui.activePanel().controls(), ui.detail)
	ui.focusIdx = len(ui.focus) - 2
}

func (ui *tviewUI) focusNext() {
	if len(ui.focus) == 0 {
		return
	}
	ui.focusIdx = (ui.focusIdx + 1) % len(ui.focus)
	ui.app.SetFocus(ui.focus[ui.focusIdx])
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) focusPrev() {
	if len(ui.focus) == 0 {
		return
	}
	ui.focusIdx--
	if ui.focusIdx < 0 {
		ui.focusIdx = len(ui.focus) - 1
	}
	ui.app.SetFocus(ui.focus[ui.focusIdx])
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) focusOn(target tview.Primitive) {
	for i, f := range ui.focus {
		if f == target {
			ui.focusIdx = i
			ui.app.SetFocus(f)
			break
		}
	}
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) focusActiveCatalogList() {
	if len(ui.focus) == 0 {
		return
	}
	ui.focusOn(ui.activePanel().primary())
}

func (ui *tviewUI) focusDetail() {
	ui.focusOn(ui.detail)
}

func (ui *tviewUI) refreshCatalogTitles() {
	n := len(ui.panels)
	for i, p := range ui.panels {
		prev := ui.panels[(i-1+n)%n]
		next := ui.panels[(i+1)%n]
		p.root.SetTitle(fmt.Sprintf(" [1] %s | '[' %s | ']' %s ", p.spec.Title, prev.spec.Title, next.spec.Title))
	}
}

func (ui *tviewUI) switchCatalog(delta int) {
	if delta == 0 || len(ui.panels) == 0 {
		return
	}
	n := len(ui.panels)
	ui.active = ((ui.active+delta)%n + n) % n
	p := ui.activePanel()
	ui.catalogPanel.SwitchToPage(p.spec.Key)
	if ui.fullscreenActive && ui.fullscreenTarget != "details" {
		ui.fullscreenTarget = p.spec.Key
		ui.applyLayout()
	}
	ui.rebuildFocus()
	ui.message = "View: " + p.spec.Title
	ui.focusActiveCatalogList()
}

func (ui *tviewUI) refreshAll() {
	for _, p := range ui.panels {
		ui.refreshPanel(p)
	}
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) refreshPanel(p *panel) {
	p.render(ui.record())
}

// commitQuery applies a debounced search value to its panel.
func (ui *tviewUI) commitQuery(p *panel, text string) {
	if ui.closed {
		return
	}
	p.state.SetQuery(text)
	ui.refreshPanel(p)
	ui.log.Debugf("%s query %q: %d results", p.spec.Key, text, p.view.Total)
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) changePage(p *panel, delta int) {
	total := p.view.Total
	var moved bool
	if delta > 0 {
		moved = p.state.Pager.Next(total)
	} else {
		moved = p.state.Pager.Prev()
	}
	if !moved {
		return
	}
	ui.refreshPanel(p)
	if p.list != nil && len(p.view.Cards) > 0 {
		p.list.SetCurrentItem(0)
	}
	ui.log.Debugf("%s page %d/%d", p.spec.Key, p.view.Page, p.view.Pages)
	ui.message = fmt.Sprintf("Page %d of %d", p.view.Page, p.view.Pages)
	ui.refreshDetail()
	ui.refreshStatus()
}

// toggleMove opens or closes the move at index on the current page.
func (ui *tviewUI) toggleMove(p *panel, index int) {
	if index < 0 || index >= len(p.view.Cards) {
		return
	}
	p.state.Toggle(p.state.Pager.Offset() + index)
	ui.refreshPanel(p)
	p.list.SetCurrentItem(index)
	ui.refreshDetail()
}

func (ui *tviewUI) resetFilters() {
	p := ui.activePanel()
	p.reset()
	ui.refreshPanel(p)
	ui.message = "Filters reset: " + p.spec.Title
	ui.refreshDetail()
	ui.refreshStatus()
}

func (ui *tviewUI) refreshStatus() {
	if ui.status == nil {
		return
	}
	focusLabel := "Details"
	if p := ui.panelFor(ui.app.GetFocus()); p != nil {
		focusLabel = p.spec.Title
	}
	msg := ui.message
	if msg == "" {
		msg = "Ready."
	}
	name := ""
	if rec := ui.record(); rec != nil {
		name = views.Capitalize(rec.Name)
	}
	ui.status.SetText(fmt.Sprintf("pokémon:[black:gold] %s [-:-] | focus:[black:gold] %s [-:-] | %s [black:gold]msg[-:-] %s", tview.Escape(name), tview.Escape(focusLabel), helpText, tview.Escape(msg)))
}

// shutdown stops every timer and drops a fetch that has not landed yet.
func (ui *tviewUI) shutdown() {
	if ui.closed {
		return
	}
	ui.closed = true
	for _, p := range ui.panels {
		p.close()
	}
	if ui.loader != nil {
		ui.loader.Dispose()
	}
	ui.log.Infof("shutdown")
}

// scrollDetail moves the details pane by whole screens, keeping one line of
// overlap and stopping on the last line of the card.
func (ui *tviewUI) scrollDetail(screens int) {
	_, _, _, height := ui.detail.GetInnerRect()
	step := max(height-1, 1)
	row, _ := ui.detail.GetScrollOffset()
	last := strings.Count(ui.detailRaw, "\n")
	ui.detail.ScrollTo(min(max(row+screens*step, 0), last), 0)
}
