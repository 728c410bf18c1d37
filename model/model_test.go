package model

import (
	"math"
	"testing"
)

// ============================================================================
// Point Tests
// ============================================================================

func TestPointDistance(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   Point
		expected float64
	}{
		{"same point", Point{0, 0}, Point{0, 0}, 0},
		{"horizontal", Point{0, 0}, Point{3, 0}, 3},
		{"vertical", Point{0, 0}, Point{0, 4}, 4},
		{"diagonal 3-4-5", Point{0, 0}, Point{3, 4}, 5},
		{"negative coords", Point{-1, -1}, Point{2, 3}, 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.p1.Distance(tt.p2)
			if math.Abs(result-tt.expected) > 0.0001 {
				t.Errorf("Distance() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestPointAdd(t *testing.T) {
	got := Point{10, 100}.Add(Point{120, -2})
	if got != (Point{130, 98}) {
		t.Errorf("Add() = %+v, want {130 98}", got)
	}
}

// ============================================================================
// BBox Tests
// ============================================================================

func TestNewBBoxFromPointsKeepsCorners(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
		want   BBox
	}{
		{"normal", Point{10, 20}, Point{50, 70}, BBox{10, 20, 50, 70}},
		{"inverted", Point{50, 70}, Point{10, 20}, BBox{50, 70, 10, 20}},
		{"same point", Point{10, 10}, Point{10, 10}, BBox{10, 10, 10, 10}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := NewBBoxFromPoints(tt.p1, tt.p2)
			if got != tt.want {
				t.Errorf("NewBBoxFromPoints() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestBBoxDimensions(t *testing.T) {
	bbox := NewBBox(10, 20, 110, 70)

	if bbox.Width() != 100 {
		t.Errorf("Width() = %v, want 100", bbox.Width())
	}
	if bbox.Height() != 50 {
		t.Errorf("Height() = %v, want 50", bbox.Height())
	}
	if c := bbox.Center(); c != (Point{60, 45}) {
		t.Errorf("Center() = %+v, want {60 45}", c)
	}
	if bbox.Area() != 5000 {
		t.Errorf("Area() = %v, want 5000", bbox.Area())
	}
	if bbox.LowerLeft() != (Point{10, 20}) || bbox.UpperRight() != (Point{110, 70}) {
		t.Errorf("corners = %+v %+v", bbox.LowerLeft(), bbox.UpperRight())
	}
}

func TestBBoxIsEmpty(t *testing.T) {
	tests := []struct {
		name string
		bbox BBox
		want bool
	}{
		{"normal", NewBBox(0, 0, 10, 10), false},
		{"zero width", NewBBox(5, 0, 5, 10), true},
		{"zero height", NewBBox(0, 5, 10, 5), true},
		{"inverted", NewBBox(10, 10, 0, 0), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bbox.IsEmpty(); got != tt.want {
				t.Errorf("IsEmpty() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBBoxContainsBox(t *testing.T) {
	outer := NewBBox(130, 95, 500, 111)

	tests := []struct {
		name  string
		inner BBox
		want  bool
	}{
		{"inside", NewBBox(140, 100, 200, 110), true},
		{"touching edges", NewBBox(130, 95, 500, 111), true},
		{"sticks out left", NewBBox(129, 100, 200, 110), false},
		{"sticks out top", NewBBox(140, 100, 200, 112), false},
		{"below", NewBBox(140, 80, 200, 90), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := outer.ContainsBox(tt.inner); got != tt.want {
				t.Errorf("ContainsBox(%+v) = %v, want %v", tt.inner, got, tt.want)
			}
		})
	}

	inverted := NewBBox(500, 111, 130, 95)
	if inverted.ContainsBox(NewBBox(140, 100, 200, 110)) {
		t.Error("inverted box should not contain anything")
	}
}

func TestBBoxIntersectsAndUnion(t *testing.T) {
	a := NewBBox(0, 0, 10, 10)
	b := NewBBox(5, 5, 15, 15)
	c := NewBBox(20, 20, 30, 30)

	if !a.Intersects(b) {
		t.Error("a should intersect b")
	}
	if a.Intersects(c) {
		t.Error("a should not intersect c")
	}
	if got := a.Union(c); got != NewBBox(0, 0, 30, 30) {
		t.Errorf("Union() = %+v", got)
	}
}

func TestBBoxApproxEqual(t *testing.T) {
	a := NewBBox(130, 95, 500, 111)
	b := NewBBox(130.0000001, 95, 500, 110.9999999)
	if !a.ApproxEqual(b, 1e-6) {
		t.Error("boxes should be approximately equal")
	}
	if a.ApproxEqual(NewBBox(131, 95, 500, 111), 1e-6) {
		t.Error("boxes should differ")
	}
}

// ============================================================================
// Element / Document Tests
// ============================================================================

func TestSortReadingOrder(t *testing.T) {
	elements := []TextElement{
		{Text: "bottom", BBox: NewBBox(10, 10, 50, 20)},
		{Text: "top-right", BBox: NewBBox(200, 100, 250, 110)},
		{Text: "top-left", BBox: NewBBox(10, 100, 50, 110)},
		{Text: "top-left-twin", BBox: NewBBox(10, 100, 50, 110)},
	}

	sorted := SortReadingOrder(elements)
	want := []string{"top-left", "top-left-twin", "top-right", "bottom"}
	for i, w := range want {
		if sorted[i].Text != w {
			t.Errorf("sorted[%d] = %q, want %q", i, sorted[i].Text, w)
		}
	}

	if elements[0].Text != "bottom" {
		t.Error("SortReadingOrder should not modify its input")
	}
}

func TestDocumentPageIndex(t *testing.T) {
	doc := NewDocument()
	p0 := doc.AddPage(595, 842)
	p1 := doc.AddPage(595, 842)
	p1.AddText(NewBBox(10, 700, 70, 710), "Modulnummer")

	var idx PageIndex = doc
	if idx.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", idx.PageCount())
	}
	if p0.Index != 0 || p1.Index != 1 {
		t.Errorf("page indices = %d, %d", p0.Index, p1.Index)
	}
	if len(idx.Elements(0)) != 0 {
		t.Error("page 0 should be empty")
	}
	elems := idx.Elements(1)
	if len(elems) != 1 || elems[0].Text != "Modulnummer" || elems[0].Page != 1 {
		t.Errorf("Elements(1) = %+v", elems)
	}
	if idx.Elements(5) != nil || idx.Elements(-1) != nil {
		t.Error("out of range pages should have no elements")
	}
}

func TestPageElementsInRegion(t *testing.T) {
	page := NewPage(0, 595, 842)
	page.AddText(NewBBox(130, 700, 170, 710), "INF-101")
	page.AddText(NewBBox(130, 680, 190, 690), "Grundlagen")

	got := page.ElementsInRegion(NewBBox(130, 690, 500, 711))
	if len(got) != 1 || got[0].Text != "INF-101" {
		t.Errorf("ElementsInRegion() = %+v", got)
	}
}

func TestModuleRecordHasName(t *testing.T) {
	if (ModuleRecord{ID: "INF-101"}).HasName() {
		t.Error("record without name should report HasName() == false")
	}
	if !(ModuleRecord{ID: "INF-101", Name: "Grundlagen"}).HasName() {
		t.Error("record with name should report HasName() == true")
	}
}
