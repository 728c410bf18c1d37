package reader

import (
	"fmt"
	"os"
	"time"

	"github.com/ledongthuc/pdf"
	"golang.org/x/text/unicode/norm"

	"github.com/lernziele/modextract/format"
	"github.com/lernziele/modextract/layout"
	"github.com/lernziele/modextract/model"
)

// A4 portrait in points, used when a page carries no MediaBox
const (
	defaultPageWidth  = 595.0
	defaultPageHeight = 842.0
)

// Reader reads positioned text from a PDF file
type Reader struct {
	file     *os.File
	pdf      *pdf.Reader
	path     string
	detector *layout.LineDetector
}

// Open opens a PDF file and returns a Reader
func Open(filename string) (*Reader, error) {
	return OpenWithConfig(filename, layout.DefaultLineConfig())
}

// OpenWithConfig opens a PDF file using a custom line configuration
func OpenWithConfig(filename string, config layout.LineConfig) (*Reader, error) {
	if err := format.RequirePDF(filename); err != nil {
		return nil, err
	}

	file, r, err := pdf.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	return &Reader{
		file:     file,
		pdf:      r,
		path:     filename,
		detector: layout.NewLineDetectorWithConfig(config),
	}, nil
}

// Close closes the PDF file
func (r *Reader) Close() error {
	if r.file != nil {
		err := r.file.Close()
		r.file = nil
		return err
	}
	return nil
}

// PageCount returns the number of pages
func (r *Reader) PageCount() int {
	return r.pdf.NumPage()
}

// Page reads the text of a page (0-based)
func (r *Reader) Page(index int) (page *model.Page, err error) {
	if index < 0 || index >= r.PageCount() {
		return nil, fmt.Errorf("page %d out of range (1-%d)", index+1, r.PageCount())
	}

	p := r.pdf.Page(index + 1)
	if p.V.IsNull() {
		return model.NewPage(index, defaultPageWidth, defaultPageHeight), nil
	}

	// The parser panics on some malformed content streams.
	defer func() {
		if rec := recover(); rec != nil {
			page = nil
			err = fmt.Errorf("page %d: malformed content: %v", index+1, rec)
		}
	}()

	width, height := mediaBox(p)
	page = model.NewPage(index, width, height)

	content := p.Content()
	glyphs := make([]layout.Glyph, 0, len(content.Text))
	for _, t := range content.Text {
		glyphs = append(glyphs, layout.Glyph{
			Text:     norm.NFKC.String(t.S),
			X:        t.X,
			Y:        t.Y,
			Width:    t.W,
			FontName: t.Font,
			FontSize: t.FontSize,
		})
	}
	page.Elements = append(page.Elements, r.detector.Detect(index, glyphs)...)
	return page, nil
}

// Document reads every page into a model.Document
func (r *Reader) Document() (*model.Document, error) {
	doc := model.NewDocument()
	doc.Path = r.path
	doc.Metadata = r.metadata()

	for i := 0; i < r.PageCount(); i++ {
		page, err := r.Page(i)
		if err != nil {
			return nil, err
		}
		doc.Pages = append(doc.Pages, page)
	}
	return doc, nil
}

func (r *Reader) metadata() model.Metadata {
	info := r.pdf.Trailer().Key("Info")
	return model.Metadata{
		Title:    norm.NFKC.String(info.Key("Title").Text()),
		Author:   norm.NFKC.String(info.Key("Author").Text()),
		Producer: info.Key("Producer").Text(),
		LoadedAt: time.Now().UTC(),
	}
}

func mediaBox(p pdf.Page) (width, height float64) {
	box := p.V.Key("MediaBox")
	if box.Len() != 4 {
		return defaultPageWidth, defaultPageHeight
	}
	width = box.Index(2).Float64() - box.Index(0).Float64()
	height = box.Index(3).Float64() - box.Index(1).Float64()
	if width <= 0 || height <= 0 {
		return defaultPageWidth, defaultPageHeight
	}
	return width, height
}

// Option configures Load
type Option func(*loadOptions)

type loadOptions struct {
	cache      *Cache
	lineConfig layout.LineConfig
}

// WithCache makes Load consult and fill the given parse cache
func WithCache(c *Cache) Option {
	return func(o *loadOptions) {
		o.cache = c
	}
}

// WithLineConfig overrides the line detection configuration
func WithLineConfig(config layout.LineConfig) Option {
	return func(o *loadOptions) {
		o.lineConfig = config
	}
}

// Load parses a PDF file into a model.Document. With a cache configured,
// a previously parsed copy of the same file contents is returned instead.
func Load(path string, opts ...Option) (*model.Document, error) {
	o := loadOptions{lineConfig: layout.DefaultLineConfig()}
	for _, opt := range opts {
		opt(&o)
	}

	var key string
	if o.cache != nil {
		var err error
		key, err = o.cache.Key(path, o.lineConfig)
		if err != nil {
			return nil, err
		}
		doc, ok, err := o.cache.Get(key)
		if err != nil {
			return nil, err
		}
		if ok {
			doc.Path = path
			return doc, nil
		}
	}

	r, err := OpenWithConfig(path, o.lineConfig)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	doc, err := r.Document()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	if o.cache != nil {
		if err := o.cache.Put(key, doc); err != nil {
			return nil, err
		}
	}
	return doc, nil
}
