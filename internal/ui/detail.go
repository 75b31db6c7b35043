package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
)

func (ui *tviewUI) refreshDetail() {
	if ui.detail == nil {
		return
	}
	p := ui.activePanel()
	switch {
	case ui.record() == nil:
		ui.detailRaw = ""
	case p.view.Empty != "":
		ui.detailRaw = p.view.Title + "\n\n" + p.view.Empty
	case p.chart != nil:
		lines := []string{p.view.Title}
		for _, b := range p.view.Bars {
			lines = append(lines, fmt.Sprintf("%s: %d", b.Label, b.Value))
		}
		ui.detailRaw = strings.Join(lines, "\n")
	default:
		card := p.selectedCard()
		if card == nil {
			ui.detailRaw = "Nothing selected."
		} else {
			ui.detailRaw = card.Text()
		}
	}
	ui.renderDetail()
}

func (ui *tviewUI) renderDetail() {
	if ui.detail == nil {
		return
	}
	text := ui.detailRaw
	if strings.TrimSpace(text) == "" {
		text = "No details."
	}
	re := matcher(ui.detailQuery)
	lines := strings.Split(text, "\n")
	ui.detailMatches = 0
	for i, line := range lines {
		marked, n := highlight(line, re)
		ui.detailMatches += n
		if i == 0 {
			marked = "[yellow]" + marked + "[-]"
		}
		lines[i] = marked
	}
	ui.detail.SetText(strings.Join(lines, "\n"))
}

// matcher is a case-insensitive literal pattern for query, or nil when the
// query is blank.
func matcher(query string) *regexp.Regexp {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil
	}
	return regexp.MustCompile("(?i)" + regexp.QuoteMeta(q))
}

// highlight escapes a raw detail line and marks every match of re. Matching
// runs before escaping so color tags are never hit.
func highlight(line string, re *regexp.Regexp) (string, int) {
	if re == nil {
		return tview.Escape(line), 0
	}
	matches := re.FindAllStringIndex(line, -1)
	var b strings.Builder
	last := 0
	for _, m := range matches {
		b.WriteString(tview.Escape(line[last:m[0]]))
		b.WriteString("[black:gold]" + tview.Escape(line[m[0]:m[1]]) + "[-:-]")
		last = m[1]
	}
	b.WriteString(tview.Escape(line[last:]))
	return b.String(), len(matches)
}

// openRawSearch asks for a query in a small modal. On the detail pane it
// highlights matches; anywhere else it replaces the active search without
// waiting for the debounce window.
func (ui *tviewUI) openRawSearch(focus tview.Primitive) {
	input := tview.NewInputField().SetLabel(" Search ").SetFieldWidth(28)
	input.SetBorder(true).SetTitle("Search")
	p := ui.activePanel()
	if focus == ui.detail {
		input.SetText(ui.detailQuery)
	} else {
		input.SetText(p.search.GetText())
	}

	returnFocus := focus
	modal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(input, 48, 0, true).
			AddItem(nil, 0, 1, false), 5, 0, true).
		AddItem(nil, 0, 1, false)

	ui.modalVisible = true
	ui.modalName = "raw_search"
	ui.pages.AddPage(ui.modalName, modal, true, true)
	ui.app.SetFocus(input)

	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEsc {
			ui.closeModal()
			ui.app.SetFocus(returnFocus)
			return
		}
		ui.applyRawSearch(returnFocus, input.GetText())
		ui.closeModal()
		ui.app.SetFocus(returnFocus)
		ui.refreshStatus()
	})
}

func (ui *tviewUI) applyRawSearch(target tview.Primitive, query string) {
	if target == ui.detail {
		ui.detailQuery = strings.TrimSpace(query)
		ui.renderDetail()
		if ui.detailQuery == "" {
			ui.message = "Details highlight cleared."
		} else {
			ui.message = fmt.Sprintf("Details highlight: %s (%d matches)", ui.detailQuery, ui.detailMatches)
		}
		return
	}
	p := ui.activePanel()
	p.search.SetText(query)
	p.query.Flush()
	ui.message = "Filter updated: " + p.spec.Title
}

func (ui *tviewUI) openHelpOverlay(focus tview.Primitive) {
	if ui.helpVisible {
		return
	}
	ui.helpVisible = true
	ui.helpReturnFocus = focus

	text := tview.NewTextView().SetDynamicColors(true).SetWrap(true)
	text.SetBorder(true).SetTitle("Help")
	text.SetText(ui.buildHelpContent(focus))

	modal := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexColumn).
			AddItem(nil, 0, 1, false).
			AddItem(text, 0, 1, true).
			AddItem(nil, 0, 1, false), 0, 1, true).
		AddItem(nil, 0, 1, false)

	ui.pages.AddPage("help", modal, true, true)
	ui.app.SetFocus(text)
}

func (ui *tviewUI) buildHelpContent(focus tview.Primitive) string {
	var b strings.Builder
	b.WriteString("lazypokemon - shortcuts\n\n")

	panel := "Details"
	panelLines := []string{"- /: highlight text in details"}
	if p := ui.panelFor(focus); p != nil {
		panel = p.spec.Title
		panelLines = []string{"- /: replace the search text", "- v: reset filters"}
		if p.number != nil {
			panelLines = append(panelLines, "- filter box: exact "+strings.TrimSuffix(p.spec.NumberPlaceholder, "..."))
		}
		if p.sort != nil {
			panelLines = append(panelLines, "- sort: base experience ascending / descending")
		}
		if p.hidden != nil {
			panelLines = append(panelLines, "- hidden only: keep entries with a hidden ability")
		}
		if p.spec.Paged {
			panelLines = append(panelLines, "- n / p: next / previous page", "- enter: show / hide move details")
		}
	}

	b.WriteString("[yellow]" + tview.Escape(panel) + "[-]\n")
	for _, line := range panelLines {
		b.WriteString(line + "\n")
	}

	b.WriteString("\n[yellow]Global[-]\n")
	b.WriteString("- q / ctrl+c: quit\n")
	b.WriteString("- ?: open/close help\n")
	b.WriteString("- tab / shift+tab: change focus\n")
	b.WriteString("- 1 / 2: focus list / details\n")
	b.WriteString("- [ / ]: previous / next view\n")
	b.WriteString("- f: fullscreen current panel\n")
	b.WriteString("- PgUp / PgDn: scroll details\n")
	b.WriteString("\nEsc/?/q to close")
	return b.String()
}

func (ui *tviewUI) closeHelpOverlay() {
	if !ui.helpVisible {
		return
	}
	ui.helpVisible = false
	ui.pages.RemovePage("help")
	if ui.helpReturnFocus != nil {
		ui.app.SetFocus(ui.helpReturnFocus)
	}
}

func (ui *tviewUI) closeModal() {
	if !ui.modalVisible {
		return
	}
	if ui.modalName != "" {
		ui.pages.RemovePage(ui.modalName)
	}
	ui.modalVisible = false
	ui.modalName = ""
}

func (ui *tviewUI) fullscreenTargetForFocus(focus tview.Primitive) string {
	if focus == ui.detail {
		return "details"
	}
	if p := ui.panelFor(focus); p != nil {
		return p.spec.Key
	}
	return ""
}

func (ui *tviewUI) toggleFullscreenForFocus(focus tview.Primitive) {
	target := ui.fullscreenTargetForFocus(focus)
	if target == "" {
		return
	}
	if ui.fullscreenActive && ui.fullscreenTarget == target {
		ui.fullscreenActive = false
		ui.fullscreenTarget = ""
		ui.applyLayout()
		ui.message = "Fullscreen off"
		ui.refreshStatus()
		return
	}
	ui.fullscreenActive = true
	ui.fullscreenTarget = target
	ui.applyLayout()
	ui.message = "Fullscreen " + target
	ui.refreshStatus()
}

// applyLayout puts either the list and details row or the fullscreen target
// above the status bar.
func (ui *tviewUI) applyLayout() {
	var content tview.Primitive = ui.mainRow
	if ui.fullscreenActive {
		if ui.fullscreenTarget == "details" {
			content = ui.detail
		} else if p := ui.panelByKey(ui.fullscreenTarget); p != nil {
			content = p.root
		}
	}
	ui.body.Clear().
		AddItem(content, 0, 1, true).
		AddItem(ui.status, 1, 0, false)
}
