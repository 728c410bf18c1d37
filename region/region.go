// Package region turns a pair of anchors into the rectangle holding a
// field's value and collects the text found inside it.
//
// Handbook pages are laid out as a two-column form:
//
//	┌────────────┬──────────────────────────┐
//	│ label      │ value we want            │
//	├────────────┼──────────────────────────┤
//	│ terminator │ next field's value       │
//	└────────────┴──────────────────────────┘
//
// The label's left edge plus a horizontal offset marks the value column,
// the label's top edge marks the top of the value, and the terminator's top
// edge marks where the value ends.
package region

import (
	"strings"

	"github.com/lernziele/modextract/model"
)

// Compute derives the value region of a field:
//
//	lower-left  = (label.X0 + dev.Start.X, terminator.Y1 + dev.Start.Y)
//	upper-right = (label.X0 + dev.End.X,   label.Y1 + dev.End.Y)
//
// The result is not clamped or validated; a degenerate box is returned as is.
func Compute(label, terminator model.TextElement, dev model.DeviationPair) model.BBox {
	lowerLeft := model.Point{
		X: label.BBox.X0 + dev.Start.X,
		Y: terminator.BBox.Y1 + dev.Start.Y,
	}
	upperRight := model.Point{
		X: label.BBox.X0 + dev.End.X,
		Y: label.BBox.Y1 + dev.End.Y,
	}
	return model.NewBBoxFromPoints(lowerLeft, upperRight)
}

// ComputeRow derives the region of a value that shares the label's row
// only. It is Compute with the label's bottom edge in place of a
// terminator, used when no terminator is present on the page.
func ComputeRow(label model.TextElement, dev model.DeviationPair) model.BBox {
	bottom := model.TextElement{BBox: model.BBox{Y1: label.BBox.Y0}}
	return Compute(label, bottom, dev)
}

// Elements returns the elements of a page that lie completely inside box,
// in reading order.
func Elements(idx model.PageIndex, page int, box model.BBox) []model.TextElement {
	var selected []model.TextElement
	for _, elem := range idx.Elements(page) {
		if box.ContainsBox(elem.BBox) {
			selected = append(selected, elem)
		}
	}
	return model.SortReadingOrder(selected)
}

// Extract joins the text of every element inside box in reading order.
// Whitespace runs collapse to a single space. An empty string means
// nothing was found, which is not an error.
func Extract(idx model.PageIndex, page int, box model.BBox) string {
	elements := Elements(idx, page, box)
	if len(elements) == 0 {
		return ""
	}

	parts := make([]string, 0, len(elements))
	for _, elem := range elements {
		parts = append(parts, elem.Text)
	}
	return squash(strings.Join(parts, " "))
}

func squash(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
