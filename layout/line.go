package layout

import (
	"math"
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lernziele/modextract/model"
)

// Glyph is a positioned run of characters as emitted by the PDF parser.
// X and Y give the start of the run on its baseline.
type Glyph struct {
	Text     string
	X, Y     float64
	Width    float64
	FontName string
	FontSize float64
}

// LineConfig holds configuration for line detection
type LineConfig struct {
	// LineHeightTolerance is the baseline distance, as a fraction of the
	// font size, within which glyphs belong to the same line (default: 0.5)
	LineHeightTolerance float64

	// CharMargin is the horizontal gap, as a multiple of the font size,
	// that splits a line into separate fragments (default: 2.0)
	CharMargin float64

	// WordMargin is the horizontal gap, as a multiple of the font size,
	// above which a space is inserted between glyphs (default: 0.1)
	WordMargin float64

	// Descent is the part of the font size that lies below the baseline
	// (default: 0.2)
	Descent float64

	// DefaultFontSize is used for glyphs that report no font size
	// (default: 10)
	DefaultFontSize float64
}

// DefaultLineConfig returns sensible default configuration
func DefaultLineConfig() LineConfig {
	return LineConfig{
		LineHeightTolerance: 0.5,
		CharMargin:          2.0,
		WordMargin:          0.1,
		Descent:             0.2,
		DefaultFontSize:     10.0,
	}
}

// LineDetector turns glyphs into line fragments
type LineDetector struct {
	config LineConfig
}

// NewLineDetector creates a new line detector with default configuration
func NewLineDetector() *LineDetector {
	return &LineDetector{
		config: DefaultLineConfig(),
	}
}

// NewLineDetectorWithConfig creates a line detector with custom configuration
func NewLineDetectorWithConfig(config LineConfig) *LineDetector {
	return &LineDetector{
		config: config,
	}
}

// Config returns the detector's configuration
func (d *LineDetector) Config() LineConfig {
	return d.config
}

// Detect groups the glyphs of one page into text elements. Elements are
// returned top to bottom, left to right; whitespace-only fragments are
// dropped.
func (d *LineDetector) Detect(pageIndex int, glyphs []Glyph) []model.TextElement {
	if len(glyphs) == 0 {
		return nil
	}

	var elements []model.TextElement
	for _, line := range d.groupIntoLines(glyphs) {
		for _, run := range d.splitRuns(line) {
			text := strings.TrimSpace(d.assembleLineText(run))
			if text == "" {
				continue
			}
			elements = append(elements, model.TextElement{
				Page: pageIndex,
				BBox: d.runBBox(run),
				Text: text,
			})
		}
	}
	return elements
}

// groupIntoLines groups glyphs into horizontal lines based on baseline.
// Lines come back top to bottom, glyphs within a line left to right.
func (d *LineDetector) groupIntoLines(glyphs []Glyph) [][]Glyph {
	sorted := make([]Glyph, len(glyphs))
	copy(sorted, glyphs)
	// Higher Y first (top of page); stream order for equal baselines
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Y > sorted[j].Y
	})

	var lines [][]Glyph
	var currentLine []Glyph

	for _, g := range sorted {
		if len(currentLine) == 0 {
			currentLine = append(currentLine, g)
			continue
		}

		avgY := averageY(currentLine)
		tolerance := d.fontSize(g) * d.config.LineHeightTolerance
		if math.Abs(g.Y-avgY) <= tolerance {
			currentLine = append(currentLine, g)
			continue
		}

		lines = append(lines, sortByX(currentLine))
		currentLine = []Glyph{g}
	}

	if len(currentLine) > 0 {
		lines = append(lines, sortByX(currentLine))
	}
	return lines
}

// splitRuns cuts a line wherever the horizontal gap between neighbours
// exceeds CharMargin. On a two-column form this separates label and value.
func (d *LineDetector) splitRuns(line []Glyph) [][]Glyph {
	var runs [][]Glyph
	start := 0
	for i := 1; i < len(line); i++ {
		if isBlank(line[i].Text) {
			continue
		}
		prev := lastInk(line[start:i])
		if prev < 0 {
			continue
		}
		p := line[start+prev]
		gap := line[i].X - (p.X + p.Width)
		if gap > d.fontSize(p)*d.config.CharMargin {
			runs = append(runs, line[start:i])
			start = i
		}
	}
	return append(runs, line[start:])
}

// assembleLineText assembles text from glyphs with appropriate spacing
func (d *LineDetector) assembleLineText(run []Glyph) string {
	var sb strings.Builder
	for i, g := range run {
		if i > 0 {
			prev := run[i-1]
			gap := g.X - (prev.X + prev.Width)
			if gap > d.fontSize(g)*d.config.WordMargin && !endsWithSpace(prev.Text) && !startsWithSpace(g.Text) {
				sb.WriteString(" ")
			}
		}
		sb.WriteString(g.Text)
	}
	return sb.String()
}

// runBBox computes the box of a run from its non-blank glyphs. Glyph boxes
// span from the descent below the baseline to one font size above that.
func (d *LineDetector) runBBox(run []Glyph) model.BBox {
	var box model.BBox
	first := true
	for _, g := range run {
		if isBlank(g.Text) {
			continue
		}
		size := d.fontSize(g)
		y0 := g.Y - size*d.config.Descent
		gb := model.NewBBox(g.X, y0, g.X+g.Width, y0+size)
		if first {
			box, first = gb, false
			continue
		}
		box = box.Union(gb)
	}
	return box
}

func (d *LineDetector) fontSize(g Glyph) float64 {
	if g.FontSize > 0 {
		return g.FontSize
	}
	return d.config.DefaultFontSize
}

func averageY(glyphs []Glyph) float64 {
	total := 0.0
	for _, g := range glyphs {
		total += g.Y
	}
	return total / float64(len(glyphs))
}

func sortByX(glyphs []Glyph) []Glyph {
	sort.SliceStable(glyphs, func(i, j int) bool {
		return glyphs[i].X < glyphs[j].X
	})
	return glyphs
}

// lastInk returns the index of the last non-blank glyph, or -1
func lastInk(glyphs []Glyph) int {
	for i := len(glyphs) - 1; i >= 0; i-- {
		if !isBlank(glyphs[i].Text) {
			return i
		}
	}
	return -1
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func endsWithSpace(s string) bool {
	r, _ := utf8.DecodeLastRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}

func startsWithSpace(s string) bool {
	r, _ := utf8.DecodeRuneInString(s)
	return s != "" && unicode.IsSpace(r)
}
