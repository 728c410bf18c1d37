// Package layout groups the glyphs reported by a PDF parser into line
// fragments: horizontal runs of text on one baseline that are not
// interrupted by a column gap.
//
// Module handbooks are two-column forms, so a fragment is usually either a
// label ("Modulnummer") or one line of a value. Keeping the columns apart
// is what lets the region package select values by position.
//
// # Line Detection
//
//	detector := layout.NewLineDetector()
//	elements := detector.Detect(pageIndex, glyphs)
//
// # Configuration
//
// Gaps and tolerances are multiples of the font size:
//
//	config := layout.DefaultLineConfig()
//	config.CharMargin = 3.0 // wider gap before a new fragment starts
//	detector := layout.NewLineDetectorWithConfig(config)
package layout
