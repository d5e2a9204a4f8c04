package feedcheck

import (
	"bytes"
	"fmt"
	"os"

	"github.com/mmcdole/gofeed"

	"feedtally/internal/config"
	"feedtally/internal/feed"
	"feedtally/internal/xmlevent"
)

// Comparison holds both parsers' view of one document.
type Comparison struct {
	Document string

	Stream    feed.Summary
	StreamErr error

	GofeedTitle string
	GofeedType  string
	GofeedItems int
	GofeedErr   error
}

// Match reports whether both parsers succeeded and agree on the item count.
// Live items are excluded because gofeed does not surface them as items.
func (c Comparison) Match() bool {
	return c.StreamErr == nil && c.GofeedErr == nil && c.Stream.Items == c.GofeedItems
}

// CompareFile reads path once and parses it with both parsers.
func CompareFile(path string, parser config.Parser) (Comparison, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Comparison{}, fmt.Errorf("read %s: %w", path, err)
	}
	cmp := CompareBytes(data, parser)
	cmp.Document = path
	return cmp, nil
}

// CompareBytes parses data with the streaming machine and with gofeed.
func CompareBytes(data []byte, parser config.Parser) Comparison {
	var cmp Comparison

	src := xmlevent.NewSource(bytes.NewReader(data),
		xmlevent.WithCharsetFallback(parser.CharsetFallback),
		xmlevent.WithHTMLEntities(parser.HTMLEntities),
	)
	doc, err := feed.Parse(src, nil)
	cmp.Stream = doc.Summary()
	cmp.StreamErr = err

	gf, err := gofeed.NewParser().Parse(bytes.NewReader(data))
	if err != nil {
		cmp.GofeedErr = err
		return cmp
	}
	cmp.GofeedTitle = gf.Title
	cmp.GofeedType = gf.FeedType
	cmp.GofeedItems = len(gf.Items)
	return cmp
}
