package xmlevent

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html/charset"
)

// Kind identifies the shape of an Event.
type Kind int

const (
	// KindOther covers processing instructions and directives.
	KindOther Kind = iota
	KindStartElement
	KindEndElement
	// KindText is character data with at least one non-whitespace rune, or
	// any CDATA section.
	KindText
	KindWhitespace
	KindEndDocument
)

func (k Kind) String() string {
	switch k {
	case KindStartElement:
		return "start_element"
	case KindEndElement:
		return "end_element"
	case KindText:
		return "text"
	case KindWhitespace:
		return "whitespace"
	case KindEndDocument:
		return "end_document"
	default:
		return "other"
	}
}

// Event is one step of a document walk. Name.Space carries the raw namespace
// prefix as written in the document, not the resolved namespace URL.
type Event struct {
	Kind Kind
	Name xml.Name
	Attr []xml.Attr
	Text string
}

// Option customizes a Source.
type Option func(*Source)

// WithCharsetFallback decodes documents whose XML declaration names an
// encoding other than UTF-8 (ISO-8859-1, windows-1252, ...).
func WithCharsetFallback(enabled bool) Option {
	return func(s *Source) {
		if enabled {
			s.dec.CharsetReader = s.charsetReader
		} else {
			s.dec.CharsetReader = nil
		}
	}
}

// WithHTMLEntities accepts the HTML entity set (&nbsp;, &eacute;, ...) that
// hand-written feeds often contain.
func WithHTMLEntities(enabled bool) Option {
	return func(s *Source) {
		if enabled {
			s.dec.Entity = xml.HTMLEntity
		} else {
			s.dec.Entity = nil
		}
	}
}

// Source turns a byte stream into a lazy, finite sequence of events. It walks
// raw tokens so prefixes survive untranslated, and performs the
// well-formedness checks RawToken skips: element matching, a single root,
// and no text outside it.
//
// Comments are dropped. Character data separated only by comments or
// processing instructions is delivered as one KindText event; a CDATA
// section is always its own KindText event, even when blank.
type Source struct {
	dec        *xml.Decoder
	tap        *tap
	pending    *rawToken
	open       []xml.Name
	sawRoot    bool
	rootClosed bool
	finished   bool
}

type rawToken struct {
	tok   xml.Token
	text  string
	cdata bool
	err   error
}

// NewSource wraps r. Charset conversion is enabled by default.
func NewSource(r io.Reader, opts ...Option) *Source {
	s := &Source{tap: newTap(r, 0)}
	s.dec = xml.NewDecoder(s.tap)
	s.dec.Strict = true
	s.dec.CharsetReader = s.charsetReader
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Next returns the next event. After KindEndDocument has been delivered every
// further call returns io.EOF. Structural problems surface as *xml.SyntaxError.
func (s *Source) Next() (Event, error) {
	if s.finished {
		return Event{}, io.EOF
	}
	for {
		rt := s.read()
		if errors.Is(rt.err, io.EOF) {
			return s.finish()
		}
		if rt.err != nil {
			return Event{}, rt.err
		}

		switch t := rt.tok.(type) {
		case xml.StartElement:
			if s.rootClosed {
				return Event{}, s.syntaxError(fmt.Sprintf("element <%s> after the root element", QualifiedName(t.Name)))
			}
			s.open = append(s.open, t.Name)
			s.sawRoot = true
			return Event{Kind: KindStartElement, Name: t.Name, Attr: t.Attr}, nil
		case xml.EndElement:
			if err := s.closeElement(t.Name); err != nil {
				return Event{}, err
			}
			if len(s.open) == 0 {
				s.rootClosed = true
			}
			return Event{Kind: KindEndElement, Name: t.Name}, nil
		case xml.CharData:
			if rt.cdata {
				if len(s.open) == 0 {
					return Event{}, s.syntaxError("CDATA section outside the root element")
				}
				return Event{Kind: KindText, Text: rt.text}, nil
			}
			text := s.coalesce(rt.text)
			if strings.TrimSpace(text) == "" {
				return Event{Kind: KindWhitespace, Text: text}, nil
			}
			if len(s.open) == 0 {
				return Event{}, s.syntaxError("text outside the root element")
			}
			return Event{Kind: KindText, Text: text}, nil
		case xml.Comment:
			continue
		default:
			return Event{Kind: KindOther}, nil
		}
	}
}

// coalesce appends plain character data that follows text, skipping comments
// and processing instructions in between. The first token that ends the run
// is pushed back.
func (s *Source) coalesce(text string) string {
	var b strings.Builder
	b.WriteString(text)
	for {
		rt := s.read()
		if rt.err != nil {
			s.pending = &rt
			return b.String()
		}
		switch rt.tok.(type) {
		case xml.CharData:
			if rt.cdata {
				s.pending = &rt
				return b.String()
			}
			b.WriteString(rt.text)
		case xml.Comment, xml.ProcInst:
		default:
			s.pending = &rt
			return b.String()
		}
	}
}

func (s *Source) read() rawToken {
	if s.pending != nil {
		rt := *s.pending
		s.pending = nil
		return rt
	}

	start := s.dec.InputOffset()
	s.tap.discard(start)
	tok, err := s.dec.RawToken()
	if err != nil {
		return rawToken{err: err}
	}
	switch t := tok.(type) {
	case xml.StartElement:
		return rawToken{tok: t.Copy()}
	case xml.CharData:
		return rawToken{tok: t.Copy(), text: string(t), cdata: s.tap.hasPrefix(start, "<![CDATA[")}
	default:
		return rawToken{tok: xml.CopyToken(tok)}
	}
}

// charsetReader converts a declared non-UTF-8 encoding and moves the tap onto
// the converted stream, where the decoder's offsets now point.
func (s *Source) charsetReader(label string, input io.Reader) (io.Reader, error) {
	converted, err := charset.NewReaderLabel(label, input)
	if err != nil {
		return nil, err
	}
	s.tap.stop()
	s.tap = newTap(converted, s.dec.InputOffset())
	return s.tap, nil
}

func (s *Source) finish() (Event, error) {
	if len(s.open) > 0 {
		top := s.open[len(s.open)-1]
		return Event{}, s.syntaxError(fmt.Sprintf("unexpected EOF: element <%s> not closed", QualifiedName(top)))
	}
	if !s.sawRoot {
		return Event{}, s.syntaxError("no root element")
	}
	s.finished = true
	return Event{Kind: KindEndDocument}, nil
}

func (s *Source) closeElement(name xml.Name) error {
	if len(s.open) == 0 {
		return s.syntaxError(fmt.Sprintf("unexpected end element </%s>", QualifiedName(name)))
	}
	top := s.open[len(s.open)-1]
	if top != name {
		return s.syntaxError(fmt.Sprintf("element <%s> closed by </%s>", QualifiedName(top), QualifiedName(name)))
	}
	s.open = s.open[:len(s.open)-1]
	return nil
}

func (s *Source) syntaxError(msg string) error {
	line, _ := s.dec.InputPos()
	return &xml.SyntaxError{Msg: msg, Line: line}
}
