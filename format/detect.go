// Package format recognises the document formats module handbooks are
// published in, so that anything other than a PDF is rejected with a clear
// message before parsing.
package format

import (
	"archive/zip"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// Format is a document format.
type Format int

const (
	// Unknown indicates an unrecognized format.
	Unknown Format = iota
	// PDF indicates a PDF document.
	PDF
	// DOCX indicates a Microsoft Word (.docx) document.
	DOCX
	// ODT indicates an OpenDocument Text (.odt) document.
	ODT
	// HTML indicates an HTML document.
	HTML
)

// ErrNotPDF is returned by RequirePDF for files in any other format.
var ErrNotPDF = errors.New("not a PDF document")

// String returns the string representation of the format.
func (f Format) String() string {
	switch f {
	case PDF:
		return "PDF"
	case DOCX:
		return "DOCX"
	case ODT:
		return "ODT"
	case HTML:
		return "HTML"
	default:
		return "Unknown"
	}
}

// pdfMagic starts every PDF file. Some producers put junk in front of it,
// so the header is searched for within the first kilobyte.
var pdfMagic = []byte("%PDF-")

const sniffLen = 1024

// Sniff inspects the content of r to determine its format.
func Sniff(r io.ReaderAt, size int64) (Format, error) {
	head := make([]byte, sniffLen)
	n, err := r.ReadAt(head, 0)
	if err != nil && err != io.EOF {
		return Unknown, err
	}
	head = head[:n]

	switch {
	case bytes.Contains(head, pdfMagic):
		return PDF, nil
	case bytes.HasPrefix(head, []byte("PK\x03\x04")):
		return sniffZIP(r, size), nil
	case looksLikeHTML(head):
		return HTML, nil
	}
	return Unknown, nil
}

// sniffZIP tells DOCX and ODT archives apart.
func sniffZIP(r io.ReaderAt, size int64) Format {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Unknown
	}
	for _, f := range zr.File {
		switch {
		case f.Name == "mimetype":
			rc, err := f.Open()
			if err != nil {
				continue
			}
			data, _ := io.ReadAll(io.LimitReader(rc, 256))
			rc.Close()
			if strings.Contains(string(data), "application/vnd.oasis.opendocument.text") {
				return ODT
			}
		case strings.HasPrefix(f.Name, "word/"):
			return DOCX
		}
	}
	return Unknown
}

func looksLikeHTML(head []byte) bool {
	upper := strings.ToUpper(strings.TrimSpace(string(head)))
	return strings.HasPrefix(upper, "<!DOCTYPE HTML") || strings.HasPrefix(upper, "<HTML")
}

// RequirePDF returns an error wrapping ErrNotPDF unless the file at path
// is a PDF.
func RequirePDF(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return err
	}

	got, err := Sniff(f, info.Size())
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if got != PDF {
		if got == Unknown {
			return fmt.Errorf("%s: %w", path, ErrNotPDF)
		}
		return fmt.Errorf("%s: %w (found %s; export the handbook as PDF)", path, ErrNotPDF, got)
	}
	return nil
}
