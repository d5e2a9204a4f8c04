package xmlevent

import "encoding/xml"

// AttrPair is one attribute rendered as (qualified name, value).
type AttrPair struct {
	Name  string
	Value string
}

// QualifiedName renders prefix:local, or local when there is no prefix.
func QualifiedName(name xml.Name) string {
	if name.Space == "" {
		return name.Local
	}
	return name.Space + ":" + name.Local
}

// QualifiedAttrs converts a start element's raw attributes into ordered
// (qualified name, value) pairs. Input order is preserved.
func QualifiedAttrs(attrs []xml.Attr) []AttrPair {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]AttrPair, 0, len(attrs))
	for _, attr := range attrs {
		out = append(out, AttrPair{Name: QualifiedName(attr.Name), Value: attr.Value})
	}
	return out
}

// Lookup returns the value of the first pair whose name matches.
func Lookup(pairs []AttrPair, name string) (string, bool) {
	for _, pair := range pairs {
		if pair.Name == name {
			return pair.Value, true
		}
	}
	return "", false
}
