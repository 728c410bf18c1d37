package region

import (
	"testing"

	"github.com/lernziele/modextract/model"
)

const epsilon = 1e-9

func TestCompute(t *testing.T) {
	label := model.TextElement{BBox: model.NewBBox(10, 100, 40, 110)}
	terminator := model.TextElement{BBox: model.NewBBox(10, 90, 40, 95)}
	dev := model.DeviationPair{
		Start: model.Point{X: 120, Y: 0},
		End:   model.Point{X: 490, Y: 1},
	}

	got := Compute(label, terminator, dev)
	want := model.NewBBox(130, 95, 500, 111)
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeMixesAnchors(t *testing.T) {
	// The terminator only contributes its top edge.
	label := model.TextElement{BBox: model.NewBBox(50, 300, 90, 310)}
	terminator := model.TextElement{BBox: model.NewBBox(400, 200, 480, 220)}

	got := Compute(label, terminator, model.DeviationPair{})
	want := model.NewBBox(50, 220, 50, 310)
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("Compute() = %+v, want %+v", got, want)
	}
}

func TestComputeRow(t *testing.T) {
	label := model.TextElement{BBox: model.NewBBox(10, 700, 70, 710)}
	dev := model.DeviationPair{
		Start: model.Point{X: 120, Y: 0},
		End:   model.Point{X: 490, Y: 1},
	}

	got := ComputeRow(label, dev)
	want := model.NewBBox(130, 700, 500, 711)
	if !got.ApproxEqual(want, epsilon) {
		t.Errorf("ComputeRow() = %+v, want %+v", got, want)
	}
}

func TestComputeDoesNotClamp(t *testing.T) {
	// Terminator above the label produces an inverted box.
	label := model.TextElement{BBox: model.NewBBox(10, 100, 40, 110)}
	terminator := model.TextElement{BBox: model.NewBBox(10, 200, 40, 210)}
	dev := model.DeviationPair{End: model.Point{X: 490, Y: 1}}

	got := Compute(label, terminator, dev)
	if got.Y0 != 210 || got.Y1 != 111 {
		t.Errorf("Compute() = %+v, want Y0=210 Y1=111", got)
	}
}

func newPage(elems ...model.TextElement) *model.Document {
	doc := model.NewDocument()
	page := doc.AddPage(595, 842)
	for _, e := range elems {
		page.AddText(e.BBox, e.Text)
	}
	return doc
}

func TestExtract(t *testing.T) {
	doc := newPage(
		model.TextElement{Text: "Anwenden der Theorie.", BBox: model.NewBBox(130, 588, 300, 598)},
		model.TextElement{Text: "Verstehen der Grund-", BBox: model.NewBBox(130, 600, 300, 610)},
		model.TextElement{Text: "Ausserhalb", BBox: model.NewBBox(10, 600, 60, 610)},
		model.TextElement{Text: "Darunter", BBox: model.NewBBox(130, 550, 200, 560)},
		model.TextElement{Text: "lagen.", BBox: model.NewBBox(310, 600, 350, 610)},
	)
	box := model.NewBBox(130, 570, 500, 611)

	got := Extract(doc, 0, box)
	want := "Verstehen der Grund- lagen. Anwenden der Theorie."
	if got != want {
		t.Errorf("Extract() = %q, want %q", got, want)
	}
}

func TestExtractSquashesWhitespace(t *testing.T) {
	doc := newPage(
		model.TextElement{Text: "  Keine \n", BBox: model.NewBBox(130, 560, 160, 570)},
		model.TextElement{Text: "\tVorkenntnisse. ", BBox: model.NewBBox(170, 560, 260, 570)},
	)

	got := Extract(doc, 0, model.NewBBox(130, 550, 500, 571))
	if got != "Keine Vorkenntnisse." {
		t.Errorf("Extract() = %q", got)
	}
}

func TestExtractEmpty(t *testing.T) {
	doc := newPage(
		model.TextElement{Text: "INF-101", BBox: model.NewBBox(130, 700, 170, 710)},
	)

	tests := []struct {
		name string
		box  model.BBox
	}{
		{"no overlap", model.NewBBox(300, 300, 400, 400)},
		{"partial overlap", model.NewBBox(140, 690, 500, 711)},
		{"inverted", model.NewBBox(500, 711, 130, 690)},
		{"zero area", model.NewBBox(130, 700, 130, 700)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Extract(doc, 0, tt.box); got != "" {
				t.Errorf("Extract() = %q, want empty", got)
			}
		})
	}

	if got := Extract(doc, 3, model.NewBBox(0, 0, 1000, 1000)); got != "" {
		t.Errorf("Extract() on missing page = %q, want empty", got)
	}
}
