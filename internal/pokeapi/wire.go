package pokeapi

import (
	"bytes"

	json "github.com/goccy/go-json"
)

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type wireRecord struct {
	ID             int    `json:"id"`
	Name           string `json:"name"`
	Height         int    `json:"height"`
	BaseExperience int    `json:"base_experience"`
	Cries          struct {
		Latest string `json:"latest"`
		Legacy string `json:"legacy"`
	} `json:"cries"`
	Abilities []struct {
		Ability  namedResource `json:"ability"`
		IsHidden bool          `json:"is_hidden"`
		Slot     int           `json:"slot"`
	} `json:"abilities"`
	Forms       []namedResource `json:"forms"`
	GameIndices []struct {
		GameIndex int           `json:"game_index"`
		Version   namedResource `json:"version"`
	} `json:"game_indices"`
	HeldItems []struct {
		Item           namedResource `json:"item"`
		VersionDetails []struct {
			Rarity  int           `json:"rarity"`
			Version namedResource `json:"version"`
		} `json:"version_details"`
	} `json:"held_items"`
	Moves []struct {
		Move                namedResource `json:"move"`
		VersionGroupDetails []struct {
			LevelLearnedAt  int           `json:"level_learned_at"`
			MoveLearnMethod namedResource `json:"move_learn_method"`
			VersionGroup    namedResource `json:"version_group"`
		} `json:"version_group_details"`
	} `json:"moves"`
	Stats []struct {
		BaseStat int           `json:"base_stat"`
		Stat     namedResource `json:"stat"`
	} `json:"stats"`
}

// DecodeRecord turns a PokeAPI pokemon document into a Record. Missing or
// null lists come back as empty slices.
func DecodeRecord(body []byte) (*Record, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, &FetchError{Kind: ErrorEmpty}
	}
	var w wireRecord
	if err := json.Unmarshal(trimmed, &w); err != nil {
		return nil, &FetchError{Kind: ErrorDecode, Err: err}
	}
	return w.record(), nil
}

func (w wireRecord) record() *Record {
	rec := &Record{
		ID:             w.ID,
		Name:           w.Name,
		Height:         w.Height,
		BaseExperience: w.BaseExperience,
		Cries:          Cries{Latest: w.Cries.Latest, Legacy: w.Cries.Legacy},
		Abilities:      make([]Ability, 0, len(w.Abilities)),
		Forms:          make([]Form, 0, len(w.Forms)),
		GameIndices:    make([]GameIndex, 0, len(w.GameIndices)),
		HeldItems:      make([]HeldItem, 0, len(w.HeldItems)),
		Moves:          make([]Move, 0, len(w.Moves)),
		Stats:          make([]Stat, 0, len(w.Stats)),
	}
	for _, a := range w.Abilities {
		rec.Abilities = append(rec.Abilities, Ability{Name: a.Ability.Name, URL: a.Ability.URL, IsHidden: a.IsHidden, Slot: a.Slot})
	}
	for _, f := range w.Forms {
		rec.Forms = append(rec.Forms, Form{Name: f.Name, URL: f.URL})
	}
	for _, g := range w.GameIndices {
		rec.GameIndices = append(rec.GameIndices, GameIndex{VersionName: g.Version.Name, VersionURL: g.Version.URL, Index: g.GameIndex})
	}
	for _, h := range w.HeldItems {
		item := HeldItem{ItemName: h.Item.Name, ItemURL: h.Item.URL, VersionDetails: make([]VersionRarity, 0, len(h.VersionDetails))}
		for _, v := range h.VersionDetails {
			item.VersionDetails = append(item.VersionDetails, VersionRarity{VersionName: v.Version.Name, Rarity: v.Rarity})
		}
		rec.HeldItems = append(rec.HeldItems, item)
	}
	for _, m := range w.Moves {
		move := Move{MoveName: m.Move.Name, VersionGroupDetails: make([]VersionGroupDetail, 0, len(m.VersionGroupDetails))}
		for _, d := range m.VersionGroupDetails {
			move.VersionGroupDetails = append(move.VersionGroupDetails, VersionGroupDetail{
				VersionGroupName: d.VersionGroup.Name,
				LevelLearnedAt:   d.LevelLearnedAt,
				LearnMethodName:  d.MoveLearnMethod.Name,
				LearnMethodURL:   d.MoveLearnMethod.URL,
			})
		}
		rec.Moves = append(rec.Moves, move)
	}
	for _, s := range w.Stats {
		rec.Stats = append(rec.Stats, Stat{StatName: s.Stat.Name, BaseValue: s.BaseStat})
	}
	return rec
}
