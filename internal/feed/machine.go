package feed

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"feedtally/internal/xmlevent"
)

const (
	elementChannel     = "channel"
	elementItem        = "item"
	elementLiveItem    = "podcast:liveitem"
	elementTitle       = "title"
	elementDescription = "description"
)

// ErrMalformed marks a document whose event stream failed mid-parse.
var ErrMalformed = errors.New("malformed document")

// ItemCounter receives one call per item or live item recorded.
type ItemCounter interface {
	RecordItem()
}

// EventSource yields document events; *xmlevent.Source satisfies it.
type EventSource interface {
	Next() (xmlevent.Event, error)
}

// Machine routes one document's events into a Feed. It is not safe for
// concurrent use; each document gets its own Machine.
type Machine struct {
	feed    Feed
	path    []string
	scope   Scope
	counter ItemCounter
	lower   cases.Caser

	lastAttrs []xmlevent.AttrPair
}

// NewMachine returns a machine in ScopeChannel. counter may be nil.
func NewMachine(counter ItemCounter) *Machine {
	return &Machine{
		scope:   ScopeChannel,
		counter: counter,
		lower:   cases.Lower(language.Und),
	}
}

// Feed returns the record built so far.
func (m *Machine) Feed() *Feed {
	return &m.feed
}

// Scope reports the active scope.
func (m *Machine) Scope() Scope {
	return m.scope
}

// Path returns a copy of the open element names, outermost first.
func (m *Machine) Path() []string {
	out := make([]string, len(m.path))
	copy(out, m.path)
	return out
}

// Attrs returns the qualified attributes of the most recent start element.
func (m *Machine) Attrs() []xmlevent.AttrPair {
	return m.lastAttrs
}

// Handle applies one event and reports whether the document is complete.
func (m *Machine) Handle(ev xmlevent.Event) bool {
	switch ev.Kind {
	case xmlevent.KindStartElement:
		m.start(m.normalize(ev.Name), ev)
	case xmlevent.KindEndElement:
		m.end(m.normalize(ev.Name))
	case xmlevent.KindText:
		m.text(ev.Text)
	case xmlevent.KindEndDocument:
		return true
	}
	return false
}

func (m *Machine) start(name string, ev xmlevent.Event) {
	next, opens := m.scope.enter(name)
	if opens {
		switch next {
		case ScopeItem:
			m.feed.Items = append(m.feed.Items, Item{})
		case ScopeLiveItem:
			m.feed.LiveItems = append(m.feed.LiveItems, LiveItem{})
		}
		if m.counter != nil {
			m.counter.RecordItem()
		}
	}
	m.scope = next
	m.lastAttrs = xmlevent.QualifiedAttrs(ev.Attr)
	m.path = append(m.path, name)
}

func (m *Machine) end(name string) {
	m.scope = m.scope.leave(name)
	if len(m.path) > 0 {
		m.path = m.path[:len(m.path)-1]
	}
}

// text overwrites rather than appends: a title split across several text
// events keeps only its last fragment.
func (m *Machine) text(raw string) {
	if len(m.path) == 0 {
		return
	}
	field := m.path[len(m.path)-1]
	if field != elementTitle && field != elementDescription {
		return
	}
	value := strings.TrimSpace(raw)

	var title, description *string
	switch m.scope {
	case ScopeChannel:
		title, description = &m.feed.Title, &m.feed.Description
	case ScopeItem:
		if len(m.feed.Items) == 0 {
			return
		}
		last := &m.feed.Items[len(m.feed.Items)-1]
		title, description = &last.Title, &last.Description
	case ScopeLiveItem:
		if len(m.feed.LiveItems) == 0 {
			return
		}
		last := &m.feed.LiveItems[len(m.feed.LiveItems)-1]
		title, description = &last.Title, &last.Description
	}

	if field == elementTitle {
		*title = value
	} else {
		*description = value
	}
}

func (m *Machine) normalize(name xml.Name) string {
	return m.lower.String(strings.TrimSpace(xmlevent.QualifiedName(name)))
}

// NormalizeName renders prefix:local lower-cased and trimmed, the form used
// for every element comparison.
func NormalizeName(prefix, local string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(xmlevent.QualifiedName(xml.Name{Space: prefix, Local: local})))
}

// Parse drives src to completion. The returned feed is never nil; on error it
// holds whatever was recorded before the failure and the error wraps
// ErrMalformed.
func Parse(src EventSource, counter ItemCounter) (*Feed, error) {
	m := NewMachine(counter)
	for {
		ev, err := src.Next()
		if errors.Is(err, io.EOF) {
			return m.Feed(), nil
		}
		if err != nil {
			return m.Feed(), fmt.Errorf("%w: %w", ErrMalformed, err)
		}
		if m.Handle(ev) {
			return m.Feed(), nil
		}
	}
}
