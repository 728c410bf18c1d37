// Package reader loads PDF files into the positioned-text model.
//
// Parsing is done by github.com/ledongthuc/pdf. The glyph runs it reports
// are grouped into line fragments by the layout package and normalised to
// Unicode NFKC, which also folds typographic ligatures such as "ﬁ".
//
// # Loading
//
//	doc, err := reader.Load("handbook.pdf")
//
// # Caching
//
// Parsing large handbooks is slow. A [Cache] keeps parsed documents as JSON
// files keyed by the SHA-256 of the PDF contents:
//
//	cache, err := reader.NewCache("./.cache/")
//	doc, err := reader.Load("handbook.pdf", reader.WithCache(cache))
//
// # Page Access
//
// For page-by-page access, open a [Reader]:
//
//	r, err := reader.Open("handbook.pdf")
//	defer r.Close()
//	page, err := r.Page(0)
package reader
