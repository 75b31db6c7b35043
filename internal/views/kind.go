package views

type Kind int

const (
	Overview Kind = iota
	Forms
	GameIndices
	HeldItems
	Moves
	Stats
)

var Kinds = []Kind{Overview, Forms, GameIndices, HeldItems, Moves, Stats}

// Spec describes the inputs a view offers, so callers can build controls
// without knowing each view.
type Spec struct {
	Kind              Kind
	Key               string
	Title             string
	SearchPlaceholder string
	NumberPlaceholder string
	Sortable          bool
	HiddenToggle      bool
	Paged             bool
	Chart             bool
}

func (k Kind) Spec() Spec {
	switch k {
	case Forms:
		return Spec{Kind: k, Key: "forms", Title: "Pokémon Forms", SearchPlaceholder: "form name...", NumberPlaceholder: "name length..."}
	case GameIndices:
		return Spec{Kind: k, Key: "game-indices", Title: "Game Indices Listing", SearchPlaceholder: "game version...", NumberPlaceholder: "game index..."}
	case HeldItems:
		return Spec{Kind: k, Key: "held-items", Title: "Held Items Listing", SearchPlaceholder: "item name..."}
	case Moves:
		return Spec{Kind: k, Key: "moves", Title: "Moves Listing", SearchPlaceholder: "move name...", Paged: true}
	case Stats:
		return Spec{Kind: k, Key: "stats", Title: "Pokémon Stats Listing", SearchPlaceholder: "stat name...", Chart: true}
	default:
		return Spec{Kind: Overview, Key: "overview", Title: "Pokémon Listing", SearchPlaceholder: "ability name...", Sortable: true, HiddenToggle: true}
	}
}

func (k Kind) String() string {
	return k.Spec().Key
}

func (s Spec) HasNumber() bool {
	return s.NumberPlaceholder != ""
}
