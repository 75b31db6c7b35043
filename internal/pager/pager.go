package pager

import "math"

const DefaultSize = 6

// Pager tracks the current 1-based page of a list whose length can change.
type Pager struct {
	Size int
	Page int
}

func New(size int) Pager {
	if size <= 0 {
		size = DefaultSize
	}
	return Pager{Size: size, Page: 1}
}

// Count is the number of pages needed for total items.
func (p Pager) Count(total int) int {
	size := p.size()
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}

// Next moves forward unless already on the last page.
func (p *Pager) Next(total int) bool {
	if p.current() >= p.Count(total) {
		return false
	}
	p.Page = p.current() + 1
	return true
}

// Prev moves back unless already on the first page.
func (p *Pager) Prev() bool {
	if p.current() <= 1 {
		return false
	}
	p.Page = p.current() - 1
	return true
}

func (p *Pager) Reset() {
	p.Page = 1
}

// Visible reports whether navigation is worth showing.
func (p Pager) Visible(total int) bool {
	return total > p.size()
}

func Window[T any](p Pager, items []T) []T {
	return Slice(items, p.size(), p.current())
}

// Slice returns items[(page-1)*size : page*size], clamped. Out of range pages
// yield an empty slice.
func Slice[T any](items []T, size, page int) []T {
	if size <= 0 || page < 1 || page-1 > (len(items)-1)/size {
		return []T{}
	}
	start := (page - 1) * size
	if start >= len(items) {
		return []T{}
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}
	return items[start:end:end]
}

func (p Pager) size() int {
	if p.Size <= 0 {
		return DefaultSize
	}
	return p.Size
}

// Offset is the index of the first item on the current page, saturating at
// math.MaxInt.
func (p Pager) Offset() int {
	size := p.size()
	if p.current()-1 > math.MaxInt/size {
		return math.MaxInt
	}
	return (p.current() - 1) * size
}

// Current is Page, treating unset as the first page.
func (p Pager) Current() int {
	return p.current()
}

func (p Pager) current() int {
	if p.Page < 1 {
		return 1
	}
	return p.Page
}
