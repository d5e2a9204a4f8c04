package testsupport

import (
	"os"
	"path/filepath"
	"testing"
)

// Sample documents shared by package tests.
const (
	// TwoItemFeed has two items whose last title is "A2".
	TwoItemFeed = `<rss><channel><title>Alpha</title>
<item><title>A1</title></item>
<item><title>A2</title></item>
</channel></rss>`

	// LiveItemFeed has one item and one podcast live item.
	LiveItemFeed = `<rss xmlns:podcast="https://podcastindex.org/namespace/1.0"><channel><title>Beta</title>
<item><title>B1</title></item>
<podcast:liveItem><title>Live</title></podcast:liveItem>
</channel></rss>`

	// EmptyFeed has a channel title and no items.
	EmptyFeed = `<rss><channel><title>Gamma</title></channel></rss>`

	// TruncatedFeed ends after two items with the channel still open.
	TruncatedFeed = `<rss><channel><title>Delta</title>
<item><title>D1</title></item>
<item><title>D2</title></item>`
)

// WriteFeed writes body to path, creating parent directories.
func WriteFeed(t testing.TB, path, body string) {
	t.Helper()

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir for %s: %v", path, err)
	}
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
}
