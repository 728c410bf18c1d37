// Package anchor locates the label fragments ("anchors") that introduce a
// field on a handbook page.
package anchor

import (
	"errors"
	"fmt"
	"strings"

	"github.com/lernziele/modextract/model"
)

// ErrNotFound is matched by every *NotFoundError via errors.Is.
var ErrNotFound = errors.New("anchor not found")

// NotFoundError reports that none of the candidate labels occurs on a page.
type NotFoundError struct {
	Candidates []string
	Page       int // 0-based page index
}

func (e *NotFoundError) Error() string {
	quoted := make([]string, len(e.Candidates))
	for i, c := range e.Candidates {
		quoted[i] = fmt.Sprintf("%q", c)
	}
	return fmt.Sprintf("descriptor %s not found on page %d", strings.Join(quoted, " / "), e.Page+1)
}

// Is makes errors.Is(err, ErrNotFound) succeed.
func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// Resolve returns the element on the given page that contains the first
// candidate, in candidate order, with at least one match. When several
// elements contain the winning candidate the first in reading order is
// returned.
func Resolve(idx model.PageIndex, page int, candidates []string) (model.TextElement, error) {
	elements := model.SortReadingOrder(idx.Elements(page))

	for _, candidate := range candidates {
		for _, elem := range elements {
			if strings.Contains(elem.Text, candidate) {
				return elem, nil
			}
		}
	}

	return model.TextElement{}, &NotFoundError{
		Candidates: append([]string(nil), candidates...),
		Page:       page,
	}
}

// Resolver resolves anchors against one page index. It holds no state
// besides the index and is safe for concurrent use.
type Resolver struct {
	idx model.PageIndex
}

// NewResolver creates a resolver for idx
func NewResolver(idx model.PageIndex) *Resolver {
	return &Resolver{idx: idx}
}

// Resolve is the method form of the package-level Resolve
func (r *Resolver) Resolve(page int, candidates []string) (model.TextElement, error) {
	return Resolve(r.idx, page, candidates)
}

// Pair resolves a field's label and its terminator. The returned error
// names whichever of the two failed first.
func (r *Resolver) Pair(page int, labels, terminators []string) (label, terminator model.TextElement, err error) {
	label, err = r.Resolve(page, labels)
	if err != nil {
		return model.TextElement{}, model.TextElement{}, err
	}
	terminator, err = r.Resolve(page, terminators)
	if err != nil {
		return model.TextElement{}, model.TextElement{}, err
	}
	return label, terminator, nil
}
