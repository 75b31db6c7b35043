package filter

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
)

type form struct {
	Name string
	Exp  int
}

var formFields = Fields[form]{
	Name:    func(f form) string { return f.Name },
	Number:  func(f form) int { return utf8.RuneCountInString(f.Name) },
	SortKey: func(f form) int { return f.Exp },
}

var forms = []form{
	{"charmander", 62},
	{"charmeleon", 142},
	{"charizard", 240},
	{"Charizard-Gmax", 240},
	{"bulbasaur", 64},
	{"squirtle", 63},
}

func names(items []form) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Name)
	}
	return out
}

func intp(n int) *int { return &n }

func TestApplyEmptyQueryReturnsAllInOrder(t *testing.T) {
	got := Apply(forms, formFields, Query{})
	if diff := cmp.Diff(forms, got); diff != "" {
		t.Fatalf("unexpected result (-want +got):\n%s", diff)
	}
}

func TestApplyTextIsCaseInsensitiveSubstring(t *testing.T) {
	for _, q := range []string{"char", "CHAR", "iza", "saur", "x", "-g"} {
		got := Apply(forms, formFields, Query{Text: q})
		for _, it := range got {
			if !strings.Contains(strings.ToLower(it.Name), strings.ToLower(q)) {
				t.Fatalf("query %q returned %q", q, it.Name)
			}
		}
		want := 0
		for _, it := range forms {
			if strings.Contains(strings.ToLower(it.Name), strings.ToLower(q)) {
				want++
			}
		}
		if len(got) != want {
			t.Fatalf("query %q: expected %d items, got %d", q, want, len(got))
		}
	}
}

func TestApplyTextThenNumberCommutes(t *testing.T) {
	textFirst := Apply(Apply(forms, formFields, Query{Text: "char"}), formFields, Query{Number: intp(9)})
	numberFirst := Apply(Apply(forms, formFields, Query{Number: intp(9)}), formFields, Query{Text: "char"})
	both := Apply(forms, formFields, Query{Text: "char", Number: intp(9)})

	want := []string{"charizard"}
	if diff := cmp.Diff(want, names(textFirst)); diff != "" {
		t.Fatalf("text then number (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, names(numberFirst)); diff != "" {
		t.Fatalf("number then text (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(want, names(both)); diff != "" {
		t.Fatalf("combined (-want +got):\n%s", diff)
	}
}

func TestApplySortIsStable(t *testing.T) {
	asc := Apply(forms, formFields, Query{Order: Ascending})
	wantAsc := []string{"charmander", "squirtle", "bulbasaur", "charmeleon", "charizard", "Charizard-Gmax"}
	if diff := cmp.Diff(wantAsc, names(asc)); diff != "" {
		t.Fatalf("ascending (-want +got):\n%s", diff)
	}

	desc := Apply(forms, formFields, Query{Order: Descending})
	wantDesc := []string{"charizard", "Charizard-Gmax", "charmeleon", "bulbasaur", "squirtle", "charmander"}
	if diff := cmp.Diff(wantDesc, names(desc)); diff != "" {
		t.Fatalf("descending (-want +got):\n%s", diff)
	}
}

func TestApplyDoesNotMutateSource(t *testing.T) {
	before := append([]form(nil), forms...)
	got := Apply(forms, formFields, Query{Order: Descending})
	got[0].Name = "changed"
	if diff := cmp.Diff(before, forms); diff != "" {
		t.Fatalf("source mutated (-before +after):\n%s", diff)
	}
}

func TestApplyIsIdempotent(t *testing.T) {
	q := Query{Text: "a", Order: Ascending}
	once := Apply(forms, formFields, q)
	twice := Apply(once, formFields, q)
	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("not idempotent (-once +twice):\n%s", diff)
	}
}

func TestApplyNamesAndFlag(t *testing.T) {
	type mon struct {
		Abilities []string
		Hidden    bool
		Exp       int
	}
	fields := Fields[mon]{
		Names:   func(m mon) []string { return m.Abilities },
		Flag:    func(m mon) bool { return m.Hidden },
		SortKey: func(m mon) int { return m.Exp },
	}
	items := []mon{
		{Abilities: []string{"overgrow", "chlorophyll"}, Hidden: true, Exp: 64},
		{Abilities: []string{"blaze"}, Hidden: false, Exp: 62},
		{Abilities: []string{"torrent", "rain-dish"}, Hidden: true, Exp: 63},
	}

	got := Apply(items, fields, Query{Text: "CHLORO"})
	if len(got) != 1 || got[0].Exp != 64 {
		t.Fatalf("expected only the chlorophyll entry, got %+v", got)
	}

	got = Apply(items, fields, Query{FlagOnly: true, Order: Ascending})
	if len(got) != 2 || got[0].Exp != 63 || got[1].Exp != 64 {
		t.Fatalf("expected hidden entries sorted by exp, got %+v", got)
	}
}

func TestApplyNilAndMissingSelectors(t *testing.T) {
	got := Apply[form](nil, formFields, Query{Text: "x"})
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
	plain := Fields[form]{Name: func(f form) string { return f.Name }}
	got = Apply(forms, plain, Query{Number: intp(3), Order: Descending})
	if diff := cmp.Diff(forms, got); diff != "" {
		t.Fatalf("stages without selectors should be skipped (-want +got):\n%s", diff)
	}
}

func TestParseNumber(t *testing.T) {
	n, err := ParseNumber("  ")
	if err != nil || n != nil {
		t.Fatalf("expected nil filter, got %v, %v", n, err)
	}
	n, err = ParseNumber(" 153 ")
	if err != nil || n == nil || *n != 153 {
		t.Fatalf("expected 153, got %v, %v", n, err)
	}
	if _, err := ParseNumber("abc"); err == nil {
		t.Fatalf("expected error for abc")
	}
}

func TestOrderString(t *testing.T) {
	if Source.String() != "Default" || Ascending.String() != "Ascending" || Descending.String() != "Descending" {
		t.Fatalf("unexpected order labels")
	}
}
