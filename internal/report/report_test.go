package report_test

import (
	"bytes"
	"errors"
	"strings"
	"sync"
	"testing"

	"feedtally/internal/config"
	"feedtally/internal/feed"
	"feedtally/internal/report"
)

func TestFormatCompleted(t *testing.T) {
	tests := []struct {
		name    string
		summary feed.Summary
		want    string
	}{
		{
			name:    "with items",
			summary: feed.Summary{Title: "My Feed", Items: 2, LastItemTitle: "Ep 2", HasLastItem: true},
			want:    `"My Feed"[2] -> "Ep 2"`,
		},
		{
			name:    "no items",
			summary: feed.Summary{Title: "Quiet"},
			want:    `"Quiet"[0] -> <none>`,
		},
		{
			name:    "quotes escaped",
			summary: feed.Summary{Title: `Say "hi"`, Items: 1, LastItemTitle: "", HasLastItem: true},
			want:    `"Say \"hi\""[1] -> ""`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := report.FormatCompleted(tt.summary); got != tt.want {
				t.Fatalf("FormatCompleted = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestFormatFailureLines(t *testing.T) {
	err := errors.New("boom")
	if got := report.FormatFailed("Partial", err); got != `"Partial" -> Error: boom` {
		t.Fatalf("FormatFailed = %s", got)
	}
	if got := report.FormatOpenFailed("/feeds/a.xml", err); got != "/feeds/a.xml -> Error: boom" {
		t.Fatalf("FormatOpenFailed = %s", got)
	}
}

func TestReporterPlainOutput(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, false)
	r.Completed(feed.Summary{Title: "A", Items: 1, LastItemTitle: "x", HasLastItem: true})
	r.Failed("B", errors.New("bad"))
	r.Done(1)

	want := "\"A\"[1] -> \"x\"\n\"B\" -> Error: bad\nDone!\nTotal items parsed: 1\n"
	if buf.String() != want {
		t.Fatalf("output mismatch:\n%q\nwant\n%q", buf.String(), want)
	}
}

func TestReporterColorWrapsFailures(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, true)
	r.Failed("B", errors.New("bad"))
	if !strings.Contains(buf.String(), "\x1b[") {
		t.Fatalf("expected ANSI escape in %q", buf.String())
	}
}

func TestReporterLinesDoNotInterleave(t *testing.T) {
	var buf bytes.Buffer
	r := report.New(&buf, false)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			r.Completed(feed.Summary{Title: "Concurrent", Items: 3, LastItemTitle: "last", HasLastItem: true})
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 50 {
		t.Fatalf("expected 50 lines, got %d", len(lines))
	}
	for _, line := range lines {
		if line != `"Concurrent"[3] -> "last"` {
			t.Fatalf("corrupted line %q", line)
		}
	}
}

func TestColorEnabled(t *testing.T) {
	var buf bytes.Buffer
	if !report.ColorEnabled(&buf, config.ColorAlways) {
		t.Fatal("always must enable color")
	}
	if report.ColorEnabled(&buf, config.ColorNever) {
		t.Fatal("never must disable color")
	}
	if report.ColorEnabled(&buf, config.ColorAuto) {
		t.Fatal("auto must not color a non-terminal writer")
	}
}

func TestSummaryTable(t *testing.T) {
	out := report.SummaryTable([]report.Row{
		{Document: "a.xml", Title: "Feed A", Items: 12, LiveItems: 1, Status: "ok", Duration: "3ms"},
		{Document: "b.xml", Title: "", Items: 0, Status: "failed"},
	})
	for _, want := range []string{"DOCUMENT", "LIVE", "a.xml", "Feed A", "12", "failed"} {
		if !strings.Contains(out, want) {
			t.Fatalf("table missing %q:\n%s", want, out)
		}
	}
}

func TestRenderTablePadsShortRows(t *testing.T) {
	out := report.RenderTable([]string{"One", "Two"}, [][]string{{"only"}}, report.AlignLeft, report.AlignRight)
	if !strings.Contains(out, "only") {
		t.Fatalf("unexpected table:\n%s", out)
	}
	if report.RenderTable(nil, nil) != "" {
		t.Fatal("expected empty output without headers")
	}
}
