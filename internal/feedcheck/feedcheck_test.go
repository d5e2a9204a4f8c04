package feedcheck_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"feedtally/internal/config"
	"feedtally/internal/feed"
	"feedtally/internal/feedcheck"
)

const podcastFeed = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0" xmlns:podcast="https://podcastindex.org/namespace/1.0">
  <channel>
    <title>Show</title>
    <description>About the show</description>
    <item>
      <title>Episode 1</title>
      <enclosure url="https://example.com/1.mp3" length="100" type="audio/mpeg"/>
      <guid isPermaLink="false">ep-1</guid>
    </item>
    <item>
      <title>Episode 2</title>
    </item>
    <podcast:liveItem status="live">
      <title>Live now</title>
    </podcast:liveItem>
  </channel>
</rss>`

func TestCompareBytesAgrees(t *testing.T) {
	cmp := feedcheck.CompareBytes([]byte(podcastFeed), config.Default().Parser)
	if !cmp.Match() {
		t.Fatalf("expected match, got %+v", cmp)
	}
	if cmp.Stream.Items != 2 || cmp.Stream.LiveItems != 1 {
		t.Fatalf("unexpected stream summary %+v", cmp.Stream)
	}
	if cmp.GofeedTitle != "Show" || cmp.GofeedType != "rss" {
		t.Fatalf("unexpected gofeed view %+v", cmp)
	}
}

func TestCompareBytesMalformed(t *testing.T) {
	cmp := feedcheck.CompareBytes([]byte(`<rss><channel><title>X</title><item>`), config.Default().Parser)
	if cmp.Match() {
		t.Fatal("malformed document must not match")
	}
	if !errors.Is(cmp.StreamErr, feed.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", cmp.StreamErr)
	}
}

func TestCompareFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "show.xml")
	if err := os.WriteFile(path, []byte(podcastFeed), 0o644); err != nil {
		t.Fatal(err)
	}
	cmp, err := feedcheck.CompareFile(path, config.Default().Parser)
	if err != nil {
		t.Fatalf("CompareFile: %v", err)
	}
	if cmp.Document != path || !cmp.Match() {
		t.Fatalf("unexpected comparison %+v", cmp)
	}

	if _, err := feedcheck.CompareFile(filepath.Join(t.TempDir(), "none.xml"), config.Default().Parser); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestAttributesListsElementsInOrder(t *testing.T) {
	elems, err := feedcheck.Attributes(strings.NewReader(podcastFeed))
	if err != nil {
		t.Fatalf("Attributes: %v", err)
	}

	var paths []string
	for _, e := range elems {
		paths = append(paths, e.Path)
	}
	want := []string{
		"/rss",
		"/rss/channel/item/enclosure",
		"/rss/channel/item/guid",
		"/rss/channel/podcast:liveitem",
	}
	if strings.Join(paths, ",") != strings.Join(want, ",") {
		t.Fatalf("paths = %v, want %v", paths, want)
	}

	enclosure := elems[1]
	if enclosure.Scope != feed.ScopeItem {
		t.Fatalf("expected item scope, got %s", enclosure.Scope)
	}
	if got := enclosure.String(); got != `/rss/channel/item/enclosure [item] url="https://example.com/1.mp3" length="100" type="audio/mpeg"` {
		t.Fatalf("unexpected rendering %s", got)
	}
	if elems[3].Scope != feed.ScopeLiveItem {
		t.Fatalf("expected live_item scope, got %s", elems[3].Scope)
	}
}

func TestAttributesMalformedReturnsPartial(t *testing.T) {
	elems, err := feedcheck.Attributes(strings.NewReader(`<rss version="2.0"><channel>`))
	if !errors.Is(err, feed.ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
	if len(elems) != 1 || elems[0].Path != "/rss" {
		t.Fatalf("expected partial result, got %v", elems)
	}
}
