package feedcheck

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"feedtally/internal/feed"
	"feedtally/internal/xmlevent"
)

// ElementAttrs is one start element that carried attributes.
type ElementAttrs struct {
	Path  string
	Scope feed.Scope
	Attrs []xmlevent.AttrPair
}

// String renders the element as "path [scope] name=value ...".
func (e ElementAttrs) String() string {
	var b strings.Builder
	b.WriteString(e.Path)
	b.WriteString(" [")
	b.WriteString(e.Scope.String())
	b.WriteByte(']')
	for _, attr := range e.Attrs {
		fmt.Fprintf(&b, " %s=%q", attr.Name, attr.Value)
	}
	return b.String()
}

// Attributes walks a document and returns every start element that has
// attributes, in document order. Elements seen before a syntax error are
// returned alongside the error.
func Attributes(r io.Reader, opts ...xmlevent.Option) ([]ElementAttrs, error) {
	src := xmlevent.NewSource(r, opts...)
	m := feed.NewMachine(nil)

	var out []ElementAttrs
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return out, nil
		}
		if err != nil {
			return out, fmt.Errorf("%w: %w", feed.ErrMalformed, err)
		}
		if m.Handle(ev) {
			return out, nil
		}
		if ev.Kind != xmlevent.KindStartElement {
			continue
		}
		if attrs := m.Attrs(); len(attrs) > 0 {
			out = append(out, ElementAttrs{
				Path:  "/" + strings.Join(m.Path(), "/"),
				Scope: m.Scope(),
				Attrs: attrs,
			})
		}
	}
}
