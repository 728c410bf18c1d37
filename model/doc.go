// Package model provides the data types shared by the loader, the
// extraction engine and the output layer.
//
// # Positioned text
//
// A [Document] is a PDF reduced to its text: a list of [Page] values, each
// holding [TextElement] values with a [BBox] in PDF user space (origin at
// the bottom-left, y growing upward). The extraction engine only depends on
// the [PageIndex] interface, so tests can build documents in memory:
//
//	doc := model.NewDocument()
//	page := doc.AddPage(595, 842)
//	page.AddText(model.NewBBox(10, 700, 70, 710), "Modulnummer")
//
// # Geometry
//
//   - [BBox] - corner-based rectangle; corners are never reordered
//   - [Point] - 2D offset
//   - [DeviationPair] - per-field corner offsets for value regions
//
// # Results
//
// [FieldSpec] describes how to locate one field and [ModuleRecord] holds the
// fields extracted from one module description page.
package model
