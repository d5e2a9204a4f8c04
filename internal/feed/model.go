// Package feed routes a document's events into channel, item and live-item
// records and counts items as they are opened.
package feed

// Item is a regular <item> entry.
type Item struct {
	Title       string
	Description string
}

// LiveItem is a Podcasting 2.0 <podcast:liveItem> entry.
type LiveItem struct {
	Title       string
	Description string
}

// Feed accumulates what a single document yielded.
type Feed struct {
	Title       string
	Description string
	Items       []Item
	LiveItems   []LiveItem
}

// Summary is the read-once view used for completion reporting.
type Summary struct {
	Title         string
	Description   string
	Items         int
	LiveItems     int
	LastItemTitle string
	// HasLastItem is false when the document had no items, in which case
	// LastItemTitle is meaningless.
	HasLastItem bool
}

// Recorded returns the number of items and live items combined.
func (s Summary) Recorded() int {
	return s.Items + s.LiveItems
}

// Summary captures the feed's reportable fields.
func (f *Feed) Summary() Summary {
	if f == nil {
		return Summary{}
	}
	s := Summary{
		Title:       f.Title,
		Description: f.Description,
		Items:       len(f.Items),
		LiveItems:   len(f.LiveItems),
	}
	if n := len(f.Items); n > 0 {
		s.LastItemTitle = f.Items[n-1].Title
		s.HasLastItem = true
	}
	return s
}
