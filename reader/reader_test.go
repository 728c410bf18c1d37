package reader

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lernziele/modextract/format"
	"github.com/lernziele/modextract/internal/pdftest"
	"github.com/lernziele/modextract/layout"
	"github.com/lernziele/modextract/model"
)

// handbook writes a two-page PDF: a cover page and one module page
func handbook(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "handbuch.pdf")
	err := pdftest.WriteFile(path,
		pdftest.Page{
			{X: 10, Y: 780, Size: 8, S: "Modulhandbuch Informatik"},
		},
		pdftest.Page{
			{X: 10, Y: 702, Size: 8, S: "Modulnummer"},
			{X: 130, Y: 702, Size: 8, S: "INF-101"},
			{X: 10, Y: 682, Size: 8, S: "Titel"},
			{X: 130, Y: 682, Size: 8, S: "Grundlagen"},
		},
	)
	if err != nil {
		t.Fatalf("failed to write PDF: %v", err)
	}
	return path
}

func findText(elems []model.TextElement, text string) (model.TextElement, bool) {
	for _, e := range elems {
		if e.Text == text {
			return e, true
		}
	}
	return model.TextElement{}, false
}

// ============================================================================
// Reader Tests
// ============================================================================

func TestReaderPages(t *testing.T) {
	r, err := Open(handbook(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if r.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", r.PageCount())
	}

	page, err := r.Page(1)
	if err != nil {
		t.Fatalf("Page(1) error = %v", err)
	}
	if page.Index != 1 || page.Width != 595 || page.Height != 842 {
		t.Errorf("page = index %d, %vx%v", page.Index, page.Width, page.Height)
	}

	label, ok := findText(page.Elements, "Modulnummer")
	if !ok {
		t.Fatalf("label not found in %+v", page.Elements)
	}
	// 11 characters at 8pt with a 500/1000 em advance
	want := model.NewBBox(10, 700.4, 54, 708.4)
	if !label.BBox.ApproxEqual(want, 1e-6) {
		t.Errorf("label BBox = %+v, want %+v", label.BBox, want)
	}
	if _, ok := findText(page.Elements, "INF-101"); !ok {
		t.Errorf("value not split from label: %+v", page.Elements)
	}
}

func TestReaderPageOutOfRange(t *testing.T) {
	r, err := Open(handbook(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	defer r.Close()

	if _, err := r.Page(2); err == nil {
		t.Error("Page(2) should fail on a two-page document")
	}
	if _, err := r.Page(-1); err == nil {
		t.Error("Page(-1) should fail")
	}
}

func TestReaderCloseTwice(t *testing.T) {
	r, err := Open(handbook(t))
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if err := r.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestOpenMissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing.pdf"))
	if err == nil {
		t.Fatal("Open() should fail for a missing file")
	}
}

func TestOpenRejectsOtherFormats(t *testing.T) {
	path := filepath.Join(t.TempDir(), "handbuch.html")
	os.WriteFile(path, []byte("<html><body>Modulnummer</body></html>"), 0o644)

	_, err := Open(path)
	if !errors.Is(err, format.ErrNotPDF) {
		t.Errorf("Open() error = %v, want ErrNotPDF", err)
	}
}

func TestLoadDocument(t *testing.T) {
	path := handbook(t)
	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if doc.Path != path {
		t.Errorf("Path = %q, want %q", doc.Path, path)
	}
	if doc.PageCount() != 2 {
		t.Fatalf("PageCount() = %d, want 2", doc.PageCount())
	}
	if doc.Metadata.Title != "Modulhandbuch" {
		t.Errorf("Title = %q", doc.Metadata.Title)
	}
	if _, ok := findText(doc.Elements(0), "Modulhandbuch Informatik"); !ok {
		t.Errorf("cover text missing: %+v", doc.Elements(0))
	}
}

// ============================================================================
// Cache Tests
// ============================================================================

func sampleDocument() *model.Document {
	doc := model.NewDocument()
	doc.Path = "sample.pdf"
	page := doc.AddPage(595, 842)
	page.AddText(model.NewBBox(10, 700, 70, 710), "Modulnummer")
	page.AddText(model.NewBBox(130, 700, 170, 710), "INF-101")
	return doc
}

func TestCacheRoundTrip(t *testing.T) {
	c, err := NewCache(filepath.Join(t.TempDir(), "cache"))
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	if _, ok, err := c.Get("absent"); ok || err != nil {
		t.Fatalf("Get(absent) = ok %v, err %v", ok, err)
	}

	doc := sampleDocument()
	if err := c.Put("k1", doc); err != nil {
		t.Fatalf("Put() error = %v", err)
	}

	got, ok, err := c.Get("k1")
	if err != nil || !ok {
		t.Fatalf("Get(k1) = ok %v, err %v", ok, err)
	}
	elems := got.Elements(0)
	if len(elems) != 2 || elems[1].Text != "INF-101" || elems[1].BBox != model.NewBBox(130, 700, 170, 710) {
		t.Errorf("cached elements = %+v", elems)
	}

	// No temporary files are left behind
	entries, _ := os.ReadDir(c.Dir())
	for _, e := range entries {
		if strings.HasSuffix(e.Name(), ".tmp") {
			t.Errorf("leftover temp file %s", e.Name())
		}
	}
}

func TestCacheCorruptEntryIsMiss(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}
	if err := os.WriteFile(filepath.Join(c.Dir(), "bad.json"), []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, ok, err := c.Get("bad"); ok || err != nil {
		t.Errorf("Get(bad) = ok %v, err %v; want miss", ok, err)
	}
}

func TestCacheKey(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	dir := t.TempDir()
	a := filepath.Join(dir, "a.pdf")
	b := filepath.Join(dir, "b.pdf")
	os.WriteFile(a, []byte("same bytes"), 0o644)
	os.WriteFile(b, []byte("same bytes"), 0o644)

	cfg := layout.DefaultLineConfig()
	ka, err := c.Key(a, cfg)
	if err != nil {
		t.Fatalf("Key() error = %v", err)
	}
	kb, _ := c.Key(b, cfg)
	if ka != kb {
		t.Error("identical contents should share a key")
	}

	cfg.CharMargin = 3
	kc, _ := c.Key(a, cfg)
	if kc == ka {
		t.Error("a different line config should change the key")
	}

	if _, err := c.Key(filepath.Join(dir, "missing.pdf"), cfg); err == nil {
		t.Error("Key() should fail for a missing file")
	}
}

func TestLoadUsesCache(t *testing.T) {
	c, err := NewCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewCache() error = %v", err)
	}

	path := handbook(t)
	first, err := Load(path, WithCache(c))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	// Replace the cached entry; a second load must return it unchanged.
	key, _ := c.Key(path, layout.DefaultLineConfig())
	if err := c.Put(key, sampleDocument()); err != nil {
		t.Fatal(err)
	}

	second, err := Load(path, WithCache(c))
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if first.PageCount() != 2 || second.PageCount() != 1 {
		t.Errorf("page counts = %d, %d; want 2, 1", first.PageCount(), second.PageCount())
	}
	if second.Path != path {
		t.Errorf("cached Path = %q, want %q", second.Path, path)
	}
}
