package pokeapi

// Record is one Pokémon as fetched from the API. It is never modified after
// decoding; views only read from it.
type Record struct {
	ID             int
	Name           string
	Height         int
	BaseExperience int
	Cries          Cries
	Abilities      []Ability
	Forms          []Form
	GameIndices    []GameIndex
	HeldItems      []HeldItem
	Moves          []Move
	Stats          []Stat
}

type Cries struct {
	Latest string
	Legacy string
}

type Ability struct {
	Name     string
	URL      string
	IsHidden bool
	Slot     int
}

type Form struct {
	Name string
	URL  string
}

type GameIndex struct {
	VersionName string
	VersionURL  string
	Index       int
}

type VersionRarity struct {
	VersionName string
	Rarity      int
}

type HeldItem struct {
	ItemName       string
	ItemURL        string
	VersionDetails []VersionRarity
}

type VersionGroupDetail struct {
	VersionGroupName string
	LevelLearnedAt   int
	LearnMethodName  string
	LearnMethodURL   string
}

type Move struct {
	MoveName            string
	VersionGroupDetails []VersionGroupDetail
}

type Stat struct {
	StatName  string
	BaseValue int
}
