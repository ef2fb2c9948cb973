package source

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/net/html/charset"

	"inventory-report/models"
)

// ErrNoRoot is returned when the document has no root element.
var ErrNoRoot = errors.New("xml: document has no root element")

// document matches any root element; only its direct <item> children are read.
type document struct {
	Items []item `xml:"item"`
}

// item collects every occurrence of each child so the first one can win.
type item struct {
	ID        []leadingText `xml:"id"`
	Name      []leadingText `xml:"name"`
	Category  []leadingText `xml:"category"`
	Quantity  []leadingText `xml:"quantity"`
	UnitPrice []leadingText `xml:"unit_price"`
}

// leadingText is the character data of an element up to its first child
// element. Anything after that child is ignored.
type leadingText string

func (t *leadingText) UnmarshalXML(d *xml.Decoder, _ xml.StartElement) error {
	var b strings.Builder
	for {
		tok, err := d.Token()
		if err != nil {
			return err
		}
		switch tt := tok.(type) {
		case xml.CharData:
			b.Write(tt)
		case xml.StartElement:
			*t = leadingText(b.String())
			if err := d.Skip(); err != nil {
				return err
			}
			return d.Skip()
		case xml.EndElement:
			*t = leadingText(b.String())
			return nil
		}
	}
}

// ReadFile opens path and decodes its items. The file is closed before
// ReadFile returns.
func ReadFile(path string) ([]*models.RawItem, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("xml: open %q: %w", path, err)
	}
	defer f.Close()

	items, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("xml: parse %q: %w", path, err)
	}
	return items, nil
}

// Decode reads a whole inventory document from r. Any well-formedness
// problem, including content after the root element, fails the whole
// document. Non-UTF-8 encodings named in the XML declaration are converted.
func Decode(r io.Reader) ([]*models.RawItem, error) {
	dec := xml.NewDecoder(r)
	dec.CharsetReader = charset.NewReaderLabel

	var doc document
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoRoot
		}
		return nil, err
	}

	if err := expectEOF(dec); err != nil {
		return nil, err
	}

	items := make([]*models.RawItem, len(doc.Items))
	for i, it := range doc.Items {
		items[i] = &models.RawItem{
			Position:  i + 1,
			ID:        first(it.ID),
			Name:      first(it.Name),
			Category:  first(it.Category),
			Quantity:  first(it.Quantity),
			UnitPrice: first(it.UnitPrice),
		}
	}
	return items, nil
}

func first(vals []leadingText) *string {
	if len(vals) == 0 {
		return nil
	}
	s := string(vals[0])
	return &s
}

func expectEOF(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.StartElement:
			return fmt.Errorf("unexpected element <%s> after document element", t.Name.Local)
		case xml.CharData:
			if strings.TrimSpace(string(t)) != "" {
				return errors.New("unexpected text after document element")
			}
		}
	}
}
