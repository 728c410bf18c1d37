package model

import "sort"

// TextElement is one positioned run of text as reported by the document
// loader, typically a single line within one column of the page.
// Elements are values and are never modified after loading.
type TextElement struct {
	Page int    `json:"page"` // 0-based page index
	BBox BBox   `json:"bbox"`
	Text string `json:"text"`
}

// X0 returns the left edge
func (e TextElement) X0() float64 { return e.BBox.X0 }

// Y0 returns the bottom edge
func (e TextElement) Y0() float64 { return e.BBox.Y0 }

// X1 returns the right edge
func (e TextElement) X1() float64 { return e.BBox.X1 }

// Y1 returns the top edge
func (e TextElement) Y1() float64 { return e.BBox.Y1 }

// ReadingLess orders elements top-to-bottom, then left-to-right.
func ReadingLess(a, b TextElement) bool {
	if a.BBox.Y1 != b.BBox.Y1 {
		return a.BBox.Y1 > b.BBox.Y1
	}
	return a.BBox.X0 < b.BBox.X0
}

// SortReadingOrder returns a copy of elements sorted in reading order.
// Elements that compare equal keep their loader order.
func SortReadingOrder(elements []TextElement) []TextElement {
	sorted := make([]TextElement, len(elements))
	copy(sorted, elements)
	sort.SliceStable(sorted, func(i, j int) bool {
		return ReadingLess(sorted[i], sorted[j])
	})
	return sorted
}
