package views

import (
	"github.com/vcrini/lazypokemon/internal/filter"
	"github.com/vcrini/lazypokemon/internal/pager"
)

// State is the per-panel view state. Each panel owns exactly one.
type State struct {
	Query      string
	Number     *int
	HiddenOnly bool
	Order      filter.Order
	Pager      pager.Pager
	// Expanded is the index, in the filtered list, of the open card or -1.
	Expanded int
}

func NewState(pageSize int) State {
	return State{Pager: pager.New(pageSize), Expanded: -1}
}

// SetQuery, SetNumber and SetHiddenOnly change the filtered set, so they go
// back to the first page and close any open card.
func (s *State) SetQuery(q string) {
	s.Query = q
	s.filterChanged()
}

func (s *State) SetNumber(n *int) {
	s.Number = n
	s.filterChanged()
}

func (s *State) SetHiddenOnly(v bool) {
	s.HiddenOnly = v
	s.filterChanged()
}

func (s *State) SetOrder(o filter.Order) {
	s.Order = o
	s.filterChanged()
}

// Toggle opens card i, closing whichever was open, or closes it if already open.
func (s *State) Toggle(i int) {
	if s.Expanded == i {
		s.Expanded = -1
		return
	}
	s.Expanded = i
}

func (s *State) Reset() {
	s.Query = ""
	s.Number = nil
	s.HiddenOnly = false
	s.Order = filter.Source
	s.filterChanged()
}

func (s State) query() filter.Query {
	return filter.Query{Text: s.Query, Number: s.Number, FlagOnly: s.HiddenOnly, Order: s.Order}
}

func (s *State) filterChanged() {
	s.Pager.Reset()
	s.Expanded = -1
}
