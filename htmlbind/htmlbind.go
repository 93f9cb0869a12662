// Package htmlbind reads text out of an HTML element, inflects it and
// optionally writes the result into another element of the same document.
package htmlbind

import (
	"fmt"
	"io"

	"github.com/PuerkitoBio/goquery"

	"github.com/cours-de-latin/declension"
)

// Inflector is the part of declension.Registry Bind needs.
type Inflector interface {
	InflectWord(word, lang, caseName string, opts declension.Options) (string, error)
}

// Request names the elements and the inflection to apply.
type Request struct {
	// Selector picks the source element; the first match is used.
	Selector string
	// Target, when set, picks the element that receives the result.
	// A target that matches nothing is skipped silently.
	Target string
	Lang   string
	Case   string
	Policy declension.Policy
}

// Document wraps a parsed HTML document.
type Document struct {
	doc *goquery.Document
}

// Parse reads an HTML document from r.
func Parse(r io.Reader) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}
	return &Document{doc: doc}, nil
}

// Bind inflects the text of req.Selector and writes it to req.Target.
// Form fields (input) contribute their value attribute; any other element
// contributes its text content.
func (d *Document) Bind(inf Inflector, req Request) (string, error) {
	src := d.doc.Find(req.Selector).First()
	if src.Length() == 0 {
		return "", fmt.Errorf("element %q not found", req.Selector)
	}
	out, err := inf.InflectWord(readText(src), req.Lang, req.Case, declension.Options{Policy: req.Policy})
	if err != nil {
		return "", err
	}
	if req.Target != "" {
		if dst := d.doc.Find(req.Target).First(); dst.Length() > 0 {
			writeText(dst, out)
		}
	}
	return out, nil
}

// HTML renders the document, including any written targets.
func (d *Document) HTML() (string, error) {
	return d.doc.Html()
}

func readText(s *goquery.Selection) string {
	if goquery.NodeName(s) == "input" {
		v, _ := s.Attr("value")
		return v
	}
	return s.Text()
}

func writeText(s *goquery.Selection, text string) {
	switch goquery.NodeName(s) {
	case "input":
		s.SetAttr("value", text)
	default:
		s.SetText(text)
	}
}
