package views

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/vcrini/lazypokemon/internal/filter"
	"github.com/vcrini/lazypokemon/internal/pager"
	"github.com/vcrini/lazypokemon/internal/pokeapi"
)

type Link struct {
	Label string
	URL   string
}

type Card struct {
	Title    string
	Lines    []string
	Links    []Link
	Expanded bool
	Details  []string
}

type Bar struct {
	Label string
	Value int
}

// View is what a panel draws: cards for list views, bars for the chart.
// Empty holds the "no match" message and is blank when something matched.
type View struct {
	Kind   Kind
	Title  string
	Header []string
	Cards  []Card
	Bars   []Bar
	Total  int
	Empty  string
	Page   int
	Pages  int
	Paged  bool
}

var (
	overviewFields = filter.Fields[pokeapi.Record]{
		Names: func(r pokeapi.Record) []string {
			names := make([]string, 0, len(r.Abilities))
			for _, a := range r.Abilities {
				names = append(names, a.Name)
			}
			return names
		},
		Flag: func(r pokeapi.Record) bool {
			for _, a := range r.Abilities {
				if a.IsHidden {
					return true
				}
			}
			return false
		},
		SortKey: func(r pokeapi.Record) int { return r.BaseExperience },
	}
	formFields = filter.Fields[pokeapi.Form]{
		Name:   func(f pokeapi.Form) string { return f.Name },
		Number: func(f pokeapi.Form) int { return utf8.RuneCountInString(f.Name) },
	}
	gameIndexFields = filter.Fields[pokeapi.GameIndex]{
		Name:   func(g pokeapi.GameIndex) string { return g.VersionName },
		Number: func(g pokeapi.GameIndex) int { return g.Index },
	}
	heldItemFields = filter.Fields[pokeapi.HeldItem]{
		Name: func(h pokeapi.HeldItem) string { return h.ItemName },
	}
	moveFields = filter.Fields[pokeapi.Move]{
		Name: func(m pokeapi.Move) string { return m.MoveName },
	}
	statFields = filter.Fields[pokeapi.Stat]{
		Name: func(s pokeapi.Stat) string { return s.StatName },
	}
)

// Render derives the view for kind from the record and state. A nil record
// renders as an empty one.
func Render(kind Kind, rec *pokeapi.Record, st State) View {
	records := []pokeapi.Record{}
	if rec == nil {
		rec = &pokeapi.Record{}
	} else {
		records = append(records, *rec)
	}
	switch kind {
	case Forms:
		return renderForms(rec, st)
	case GameIndices:
		return renderGameIndices(rec, st)
	case HeldItems:
		return renderHeldItems(rec, st)
	case Moves:
		return renderMoves(rec, st)
	case Stats:
		return renderStats(rec, st)
	default:
		return Listing(records, st)
	}
}

// Listing is the overview over any number of records. Render uses it with
// the single fetched record.
func Listing(records []pokeapi.Record, st State) View {
	v := newView(Overview)
	items := filter.Apply(records, overviewFields, st.query())
	v.Total = len(items)
	for _, r := range items {
		c := Card{Title: fmt.Sprintf("Base Experience: %d", r.BaseExperience)}
		c.Lines = append(c.Lines, "Name: "+Capitalize(r.Name), "Abilities:")
		for _, a := range r.Abilities {
			line := "  " + a.Name
			if a.IsHidden {
				line += " (Hidden)"
			}
			c.Lines = append(c.Lines, fmt.Sprintf("%s - Slot %d", line, a.Slot))
			c.Links = append(c.Links, Link{Label: a.Name, URL: a.URL})
		}
		if r.Cries.Latest != "" {
			c.Links = append(c.Links, Link{Label: "Cry", URL: r.Cries.Latest})
		}
		v.Cards = append(v.Cards, c)
	}
	return finish(v, "No Pokémon match the search/filter criteria.")
}

func renderForms(rec *pokeapi.Record, st State) View {
	v := newView(Forms)
	items := filter.Apply(rec.Forms, formFields, st.query())
	v.Total = len(items)
	for _, f := range items {
		c := Card{Title: Capitalize(f.Name)}
		c.Links = append(c.Links, Link{Label: "View Form Details", URL: f.URL})
		c.Lines = append(c.Lines, fmt.Sprintf("Base Experience: %d", rec.BaseExperience), "Abilities:")
		for _, a := range rec.Abilities {
			line := "  " + a.Name
			if a.IsHidden {
				line += " (Hidden Ability)"
			}
			c.Lines = append(c.Lines, line)
		}
		c.Lines = append(c.Lines, "Cries:")
		c.Links = append(c.Links, Link{Label: "Latest Cry", URL: rec.Cries.Latest}, Link{Label: "Legacy Cry", URL: rec.Cries.Legacy})
		v.Cards = append(v.Cards, c)
	}
	return finish(v, "No forms match the search/filter criteria.")
}

func renderGameIndices(rec *pokeapi.Record, st State) View {
	v := newView(GameIndices)
	items := filter.Apply(rec.GameIndices, gameIndexFields, st.query())
	v.Total = len(items)
	for _, g := range items {
		v.Cards = append(v.Cards, Card{
			Title: "Game Version: " + Capitalize(g.VersionName),
			Lines: []string{fmt.Sprintf("Game Index: %d", g.Index)},
			Links: []Link{{Label: "View Version Details", URL: g.VersionURL}},
		})
	}
	return finish(v, "No game versions match the search/filter criteria.")
}

func renderHeldItems(rec *pokeapi.Record, st State) View {
	v := newView(HeldItems)
	v.Header = []string{fmt.Sprintf("Pokemon Height: %d", rec.Height)}
	items := filter.Apply(rec.HeldItems, heldItemFields, st.query())
	v.Total = len(items)
	for _, h := range items {
		c := Card{
			Title: "Item Name: " + Capitalize(h.ItemName),
			Links: []Link{{Label: "View Item Details", URL: h.ItemURL}},
			Lines: []string{"Version Details:"},
		}
		for _, d := range h.VersionDetails {
			c.Lines = append(c.Lines, fmt.Sprintf("  %s - Rarity: %d", Capitalize(d.VersionName), d.Rarity))
		}
		v.Cards = append(v.Cards, c)
	}
	return finish(v, "No held items match the search criteria.")
}

func renderMoves(rec *pokeapi.Record, st State) View {
	v := newView(Moves)
	items := filter.Apply(rec.Moves, moveFields, st.query())
	v.Total = len(items)
	v.Page = st.Pager.Current()
	v.Pages = st.Pager.Count(len(items))
	v.Paged = st.Pager.Visible(len(items))

	offset := st.Pager.Offset()
	for i, m := range pager.Window(st.Pager, items) {
		c := Card{Title: "Move: " + m.MoveName, Expanded: offset+i == st.Expanded}
		if c.Expanded {
			c.Lines = []string{"Hide Details"}
			c.Details = append(c.Details, "Version Group Details:")
			for _, d := range m.VersionGroupDetails {
				c.Details = append(c.Details,
					"  Version Group: "+Capitalize(d.VersionGroupName),
					fmt.Sprintf("  Level Learned At: %d", d.LevelLearnedAt),
					"  Move Learn Method: "+Capitalize(d.LearnMethodName),
				)
				c.Links = append(c.Links, Link{Label: Capitalize(d.LearnMethodName), URL: d.LearnMethodURL})
			}
		} else {
			c.Lines = []string{"View Details"}
		}
		v.Cards = append(v.Cards, c)
	}
	return finish(v, "No moves match the search criteria.")
}

func renderStats(rec *pokeapi.Record, st State) View {
	v := newView(Stats)
	items := filter.Apply(rec.Stats, statFields, st.query())
	v.Total = len(items)
	v.Bars = make([]Bar, 0, len(items))
	for _, s := range items {
		v.Bars = append(v.Bars, Bar{Label: Capitalize(s.StatName), Value: s.BaseValue})
	}
	if len(v.Bars) == 0 {
		v.Empty = "No stats match the search criteria."
	}
	return v
}

func newView(k Kind) View {
	return View{Kind: k, Title: k.Spec().Title, Cards: []Card{}}
}

func finish(v View, empty string) View {
	if len(v.Cards) == 0 {
		v.Empty = empty
	}
	return v
}

// Capitalize upper-cases the first letter only: "special-attack" becomes
// "Special-attack".
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}

// Text flattens a card for detail panes and plain output.
func (c Card) Text() string {
	var b strings.Builder
	b.WriteString(c.Title)
	for _, line := range c.Lines {
		b.WriteString("\n" + line)
	}
	for _, line := range c.Details {
		b.WriteString("\n" + line)
	}
	for _, l := range c.Links {
		if l.URL == "" {
			continue
		}
		b.WriteString(fmt.Sprintf("\n%s: %s", l.Label, l.URL))
	}
	return b.String()
}

// MaxValue is the largest bar, used to scale charts.
func (v View) MaxValue() int {
	max := 0
	for _, b := range v.Bars {
		if b.Value > max {
			max = b.Value
		}
	}
	return max
}
