package output

import (
	"fmt"
	"io"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"github.com/lernziele/modextract/model"
)

// WriteHTML renders records as a standalone HTML page with one section per
// module.
func WriteHTML(w io.Writer, title string, records []model.ModuleRecord) error {
	body := element(atom.Body)
	body.AppendChild(textElement(atom.H1, title))
	for _, r := range records {
		body.AppendChild(moduleSection(r))
	}

	head := element(atom.Head)
	head.AppendChild(element(atom.Meta, html.Attribute{Key: "charset", Val: "utf-8"}))
	head.AppendChild(textElement(atom.Title, title))

	root := element(atom.Html, html.Attribute{Key: "lang", Val: "de"})
	root.AppendChild(head)
	root.AppendChild(body)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(root)

	if err := html.Render(w, doc); err != nil {
		return fmt.Errorf("failed to render HTML: %w", err)
	}
	return nil
}

func moduleSection(r model.ModuleRecord) *html.Node {
	section := element(atom.Section, html.Attribute{Key: "id", Val: ModuleDir(r)})

	heading := r.ID
	if r.HasName() {
		heading += ": " + r.Name
	}
	section.AppendChild(textElement(atom.H2, heading))
	section.AppendChild(textElement(atom.P, fmt.Sprintf("Seite %d", r.Page)))

	for _, list := range []struct {
		title     string
		sentences []string
	}{
		{"Lernziele / Kompetenzen", r.Competencies},
		{"Voraussetzungen", r.Requirements},
	} {
		sentences := nonEmpty(list.sentences)
		if len(sentences) == 0 {
			continue
		}
		section.AppendChild(textElement(atom.H3, list.title))
		ul := element(atom.Ul)
		for _, s := range sentences {
			ul.AppendChild(textElement(atom.Li, s))
		}
		section.AppendChild(ul)
	}
	return section
}

func element(a atom.Atom, attrs ...html.Attribute) *html.Node {
	return &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
}

func textElement(a atom.Atom, text string) *html.Node {
	n := element(a)
	n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
	return n
}
