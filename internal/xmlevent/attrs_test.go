package xmlevent_test

import (
	"encoding/xml"
	"reflect"
	"strings"
	"testing"

	"feedtally/internal/xmlevent"
)

func TestQualifiedAttrsPreservesOrderAndPrefix(t *testing.T) {
	src := xmlevent.NewSource(strings.NewReader(`<item foo="bar" podcast:baz="qux"/>`))
	ev, err := src.Next()
	if err != nil {
		t.Fatalf("Next returned error: %v", err)
	}
	got := xmlevent.QualifiedAttrs(ev.Attr)
	want := []xmlevent.AttrPair{
		{Name: "foo", Value: "bar"},
		{Name: "podcast:baz", Value: "qux"},
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("unexpected attributes: got %+v want %+v", got, want)
	}
}

func TestQualifiedAttrsEmpty(t *testing.T) {
	if got := xmlevent.QualifiedAttrs(nil); got != nil {
		t.Fatalf("expected nil for no attributes, got %+v", got)
	}
}

func TestQualifiedAttrsNamespaceDeclarations(t *testing.T) {
	attrs := []xml.Attr{
		{Name: xml.Name{Local: "xmlns"}, Value: "urn:default"},
		{Name: xml.Name{Space: "xmlns", Local: "podcast"}, Value: "urn:podcast"},
	}
	got := xmlevent.QualifiedAttrs(attrs)
	if got[0].Name != "xmlns" || got[1].Name != "xmlns:podcast" {
		t.Fatalf("unexpected names: %+v", got)
	}
	if value, ok := xmlevent.Lookup(got, "xmlns:podcast"); !ok || value != "urn:podcast" {
		t.Fatalf("Lookup returned %q, %v", value, ok)
	}
	if _, ok := xmlevent.Lookup(got, "missing"); ok {
		t.Fatal("expected Lookup miss")
	}
}
