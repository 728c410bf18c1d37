package model

// Page holds the positioned text of a single page
type Page struct {
	Index    int           `json:"index"`  // 0-based page index
	Width    float64       `json:"width"`  // Page width in points
	Height   float64       `json:"height"` // Page height in points
	Elements []TextElement `json:"elements"`
}

// NewPage creates a new page with given index and dimensions
func NewPage(index int, width, height float64) *Page {
	return &Page{
		Index:    index,
		Width:    width,
		Height:   height,
		Elements: make([]TextElement, 0),
	}
}

// AddText appends a text element to the page. The element's page index is
// set to the page's own index.
func (p *Page) AddText(bbox BBox, text string) {
	p.Elements = append(p.Elements, TextElement{Page: p.Index, BBox: bbox, Text: text})
}

// ElementsInRegion returns the elements lying completely inside bbox,
// in loader order
func (p *Page) ElementsInRegion(bbox BBox) []TextElement {
	var elements []TextElement
	for _, elem := range p.Elements {
		if bbox.ContainsBox(elem.BBox) {
			elements = append(elements, elem)
		}
	}
	return elements
}
