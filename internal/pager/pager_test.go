package pager

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seq(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out
}

func TestSlice(t *testing.T) {
	items := seq(14)
	cases := []struct {
		page int
		want []int
	}{
		{1, []int{0, 1, 2, 3, 4, 5}},
		{2, []int{6, 7, 8, 9, 10, 11}},
		{3, []int{12, 13}},
		{4, []int{}},
		{0, []int{}},
		{math.MaxInt, []int{}},
		{math.MaxInt/6 + 2, []int{}},
	}
	for _, tc := range cases {
		got := Slice(items, 6, tc.page)
		if diff := cmp.Diff(tc.want, got); diff != "" {
			t.Fatalf("page %d (-want +got):\n%s", tc.page, diff)
		}
	}
}

func TestSliceCannotGrowIntoSource(t *testing.T) {
	items := seq(14)
	first := Slice(items, 6, 1)
	_ = append(first, 99)
	if items[6] != 6 {
		t.Fatalf("expected source untouched, got %d", items[6])
	}
}

func TestNavigation(t *testing.T) {
	p := New(6)
	if p.Count(14) != 3 {
		t.Fatalf("expected 3 pages, got %d", p.Count(14))
	}
	if p.Prev() {
		t.Fatalf("expected prev at page 1 to be a no-op")
	}
	if !p.Next(14) || !p.Next(14) {
		t.Fatalf("expected to reach page 3")
	}
	if p.Page != 3 {
		t.Fatalf("expected page 3, got %d", p.Page)
	}
	if p.Next(14) {
		t.Fatalf("expected next at last page to be a no-op")
	}
	if p.Page != 3 {
		t.Fatalf("expected page to stay 3, got %d", p.Page)
	}
	if got := Window(p, seq(14)); len(got) != 2 {
		t.Fatalf("expected 2 items on the last page, got %d", len(got))
	}
	p.Reset()
	if p.Page != 1 {
		t.Fatalf("expected reset to page 1, got %d", p.Page)
	}
}

func TestEmptyAndDefaults(t *testing.T) {
	p := New(0)
	if p.Size != DefaultSize {
		t.Fatalf("expected default size %d, got %d", DefaultSize, p.Size)
	}
	if p.Count(0) != 0 {
		t.Fatalf("expected no pages for empty list")
	}
	if p.Next(0) {
		t.Fatalf("expected next on empty list to be a no-op")
	}
	if p.Visible(6) || !p.Visible(7) {
		t.Fatalf("pager should only show when items exceed one page")
	}
	var zero Pager
	if got := Window(zero, seq(3)); len(got) != 3 {
		t.Fatalf("expected zero pager to show first page, got %d", len(got))
	}
}

func TestOffset(t *testing.T) {
	p := New(6)
	p.Next(20)
	p.Next(20)
	if p.Offset() != 12 || p.Current() != 3 {
		t.Fatalf("expected offset 12 on page 3, got %d on %d", p.Offset(), p.Current())
	}
}

func TestOffsetSaturatesOnHugePage(t *testing.T) {
	p := Pager{Size: 6, Page: math.MaxInt}
	if got := p.Offset(); got != math.MaxInt {
		t.Fatalf("expected offset to saturate, got %d", got)
	}
	if got := Window(p, seq(14)); len(got) != 0 {
		t.Fatalf("expected empty window, got %v", got)
	}
	if got := Slice([]int{}, 6, 2); len(got) != 0 {
		t.Fatalf("expected empty slice of empty list, got %v", got)
	}
}
