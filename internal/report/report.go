package report

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"feedtally/internal/config"
	"feedtally/internal/feed"
)

// NoLastItem stands in for the last item title when a feed has no items.
const NoLastItem = "<none>"

// FormatCompleted renders the per-document success line.
func FormatCompleted(s feed.Summary) string {
	last := NoLastItem
	if s.HasLastItem {
		last = strconv.Quote(s.LastItemTitle)
	}
	return fmt.Sprintf("%q[%d] -> %s", s.Title, s.Items, last)
}

// FormatFailed renders the per-document failure line.
func FormatFailed(partialTitle string, err error) string {
	return fmt.Sprintf("%q -> Error: %v", partialTitle, err)
}

// FormatOpenFailed renders the line for a document that could not be opened.
func FormatOpenFailed(path string, err error) string {
	return fmt.Sprintf("%s -> Error: %v", path, err)
}

// ColorEnabled resolves a report.color mode for out. "auto" colours only
// terminals and honours NO_COLOR.
func ColorEnabled(out io.Writer, mode string) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Reporter serializes report lines from concurrent workers so lines never
// interleave.
type Reporter struct {
	mu    sync.Mutex
	out   io.Writer
	color bool
}

// New returns a reporter writing to out.
func New(out io.Writer, color bool) *Reporter {
	return &Reporter{out: out, color: color}
}

// Completed prints the success line for one document.
func (r *Reporter) Completed(s feed.Summary) {
	r.println(FormatCompleted(s))
}

// Failed prints the failure line for a document that broke mid-parse.
func (r *Reporter) Failed(partialTitle string, err error) {
	r.println(r.paint(FormatFailed(partialTitle, err), text.FgRed))
}

// OpenFailed prints the line for a document that could not be opened.
func (r *Reporter) OpenFailed(path string, err error) {
	r.println(r.paint(FormatOpenFailed(path, err), text.FgYellow))
}

// Done prints the final summary.
func (r *Reporter) Done(totalItems int) {
	r.println(r.paint("Done!", text.FgGreen, text.Bold))
	r.println(fmt.Sprintf("Total items parsed: %d", totalItems))
}

// Println writes an arbitrary block, such as a rendered table.
func (r *Reporter) Println(block string) {
	r.println(block)
}

func (r *Reporter) println(line string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.out, line)
}

func (r *Reporter) paint(s string, colors ...text.Color) string {
	if !r.color {
		return s
	}
	return text.Colors(colors).Sprint(s)
}
