package modextract

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/lernziele/modextract/config"
	"github.com/lernziele/modextract/layout"
	"github.com/lernziele/modextract/model"
	"github.com/lernziele/modextract/reader"
)

// pageResult holds the outcome of building one page.
type pageResult struct {
	record   model.ModuleRecord
	built    bool
	warnings []Warning
}

// Extractor provides a fluent interface for extracting module records.
// Each configuration method returns a new Extractor instance, which allows
// method chaining. Terminal operations may be called from several
// goroutines on the same Extractor; the document is loaded once.
type Extractor struct {
	// Source
	filename string
	loadMu   sync.Mutex
	index    model.PageIndex // loaded document, nil until first use; guarded by loadMu

	// Configuration
	options ExtractOptions

	// Accumulated error (fail-fast)
	err error
}

// clone creates a shallow copy of the Extractor with a deep copy of options.
func (e *Extractor) clone() *Extractor {
	e.loadMu.Lock()
	index := e.index
	e.loadMu.Unlock()

	return &Extractor{
		filename: e.filename,
		index:    index,
		options:  e.options.clone(),
		err:      e.err,
	}
}

// ensureIndex loads the document if it has not been loaded yet and
// returns it.
func (e *Extractor) ensureIndex() (model.PageIndex, error) {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	if e.index != nil {
		return e.index, nil
	}
	if e.filename == "" {
		return nil, fmt.Errorf("no filename specified")
	}

	opts := []reader.Option{reader.WithLineConfig(e.options.lineConfig)}
	if e.options.cacheDir != "" {
		cache, err := reader.NewCache(e.options.cacheDir)
		if err != nil {
			return nil, err
		}
		opts = append(opts, reader.WithCache(cache))
	}

	doc, err := reader.Load(e.filename, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", e.filename, err)
	}
	e.options.logger.WithFields(logrus.Fields{
		"file":  e.filename,
		"pages": doc.PageCount(),
	}).Debug("document loaded")

	e.index = doc
	return doc, nil
}

// ============================================================================
// Configuration Methods (return new Extractor instance)
// ============================================================================

// Pages restricts extraction to the given pages (1-indexed).
// Multiple calls are cumulative.
//
// Example:
//
//	records, _, err := modextract.Open("handbook.pdf").Pages(12, 13).Records()
func (e *Extractor) Pages(pages ...int) *Extractor {
	newExt := e.clone()
	newExt.options.pages = append(newExt.options.pages, pages...)
	return newExt
}

// PageRange restricts extraction to a range of pages (1-indexed, inclusive).
//
// Example:
//
//	records, _, err := modextract.Open("handbook.pdf").PageRange(5, 40).Records()
func (e *Extractor) PageRange(start, end int) *Extractor {
	newExt := e.clone()
	for i := start; i <= end; i++ {
		newExt.options.pages = append(newExt.options.pages, i)
	}
	return newExt
}

// Template replaces the default handbook template. An invalid template
// makes every terminal operation fail.
func (e *Extractor) Template(tmpl config.Template) *Extractor {
	newExt := e.clone()
	if err := tmpl.Validate(); err != nil && newExt.err == nil {
		newExt.err = err
	}
	newExt.options.template = cloneTemplate(tmpl)
	return newExt
}

// LineConfig overrides how glyphs are grouped into fragments while loading.
// It has no effect on an Extractor created with FromDocument.
func (e *Extractor) LineConfig(cfg layout.LineConfig) *Extractor {
	newExt := e.clone()
	newExt.options.lineConfig = cfg
	return newExt
}

// Workers sets how many pages are built concurrently (default: 1).
// Values below 1 are treated as 1.
func (e *Extractor) Workers(n int) *Extractor {
	newExt := e.clone()
	if n < 1 {
		n = 1
	}
	newExt.options.workers = n
	return newExt
}

// CacheDir enables the on-disk parse cache in dir.
func (e *Extractor) CacheDir(dir string) *Extractor {
	newExt := e.clone()
	newExt.options.cacheDir = dir
	return newExt
}

// NoCache disables the parse cache.
func (e *Extractor) NoCache() *Extractor {
	return e.CacheDir("")
}

// Logger sets the logger that receives progress and warnings. The default
// is the logrus standard logger.
func (e *Extractor) Logger(logger logrus.FieldLogger) *Extractor {
	newExt := e.clone()
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	newExt.options.logger = logger
	return newExt
}

// ============================================================================
// Terminal Operations
// ============================================================================

// PageCount returns the number of pages in the document.
func (e *Extractor) PageCount() (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	idx, err := e.ensureIndex()
	if err != nil {
		return 0, err
	}
	return idx.PageCount(), nil
}

// Document returns the loaded page index.
func (e *Extractor) Document() (model.PageIndex, error) {
	if e.err != nil {
		return nil, e.err
	}
	return e.ensureIndex()
}

// Records builds one record per module description page, in ascending page
// order. Warnings describe skipped pages and fields that could not be
// located; they are also logged at warn level.
//
// Example:
//
//	records, warnings, err := modextract.Open("handbook.pdf").Records()
//	for _, r := range records {
//	    fmt.Println(r.ID, r.Name)
//	}
func (e *Extractor) Records() ([]model.ModuleRecord, []Warning, error) {
	return e.RecordsContext(context.Background())
}

// RecordsContext is Records with cancellation. Pages not started when ctx
// is done are not built and ctx.Err() is returned.
func (e *Extractor) RecordsContext(ctx context.Context) ([]model.ModuleRecord, []Warning, error) {
	if e.err != nil {
		return nil, nil, e.err
	}
	idx, err := e.ensureIndex()
	if err != nil {
		return nil, nil, err
	}

	pageIndices, err := e.resolvePages(idx.PageCount())
	if err != nil {
		return nil, nil, err
	}

	log := e.options.logger
	tmpl := e.options.template
	results := make([]pageResult, len(pageIndices))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.options.workers)
	for i, pageIdx := range pageIndices {
		i, pageIdx := i, pageIdx
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			record, built, warnings := BuildPage(idx, pageIdx, tmpl)
			results[i] = pageResult{record: record, built: built, warnings: warnings}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var records []model.ModuleRecord
	var warnings []Warning
	for _, res := range results {
		for _, w := range res.warnings {
			entry := log.WithFields(logrus.Fields{"page": w.Page, "field": w.Field})
			if res.built {
				entry.Warn(w.Err)
			} else {
				entry.Warn("page skipped: ", w.Err)
			}
		}
		warnings = append(warnings, res.warnings...)
		if res.built {
			log.WithFields(logrus.Fields{"page": res.record.Page, "id": res.record.ID}).Info("module extracted")
			records = append(records, res.record)
		}
	}

	sort.SliceStable(warnings, func(i, j int) bool {
		return warnings[i].Page < warnings[j].Page
	})
	return records, warnings, nil
}

// ============================================================================
// Internal helpers
// ============================================================================

// resolvePages converts 1-indexed page numbers to 0-indexed and validates them.
// If no pages specified, returns all pages.
func (e *Extractor) resolvePages(pageCount int) ([]int, error) {
	// If no pages specified, use all pages
	if len(e.options.pages) == 0 {
		pageIndices := make([]int, pageCount)
		for i := 0; i < pageCount; i++ {
			pageIndices[i] = i
		}
		return pageIndices, nil
	}

	// Convert 1-indexed to 0-indexed and validate
	seen := make(map[int]bool)
	var pageIndices []int
	for _, p := range e.options.pages {
		if p < 1 || p > pageCount {
			return nil, fmt.Errorf("page %d out of range (1-%d)", p, pageCount)
		}
		zeroIndexed := p - 1
		if !seen[zeroIndexed] {
			seen[zeroIndexed] = true
			pageIndices = append(pageIndices, zeroIndexed)
		}
	}

	// Sort pages in order
	sort.Ints(pageIndices)
	return pageIndices, nil
}
