package model

import "time"

// PageIndex is the narrow view of a parsed document that the extraction
// engine works on. Any loader, or an in-memory test double, can provide it.
type PageIndex interface {
	// PageCount returns the total number of pages
	PageCount() int

	// Elements returns the text elements of a 0-based page in loader
	// order. Out of range pages have no elements.
	Elements(pageIndex int) []TextElement
}

// Document is a loaded PDF reduced to its positioned text
type Document struct {
	Path     string   `json:"path,omitempty"`
	Metadata Metadata `json:"metadata"`
	Pages    []*Page  `json:"pages"`
}

// Metadata contains document-level information
type Metadata struct {
	Title    string    `json:"title,omitempty"`
	Author   string    `json:"author,omitempty"`
	Producer string    `json:"producer,omitempty"`
	LoadedAt time.Time `json:"loaded_at"`
}

// NewDocument creates a new empty document
func NewDocument() *Document {
	return &Document{
		Pages: make([]*Page, 0),
	}
}

// AddPage appends a new empty page with the given dimensions and returns it
func (d *Document) AddPage(width, height float64) *Page {
	page := NewPage(len(d.Pages), width, height)
	d.Pages = append(d.Pages, page)
	return page
}

// GetPage returns a page by 0-based index, or nil
func (d *Document) GetPage(index int) *Page {
	if index < 0 || index >= len(d.Pages) {
		return nil
	}
	return d.Pages[index]
}

// PageCount returns the total number of pages
func (d *Document) PageCount() int {
	return len(d.Pages)
}

// Elements implements PageIndex
func (d *Document) Elements(pageIndex int) []TextElement {
	page := d.GetPage(pageIndex)
	if page == nil {
		return nil
	}
	return page.Elements
}
