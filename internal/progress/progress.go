// Package progress provides a CLI progress indicator for batch imports.
// Output goes to stderr to keep stdout clean (under MCP, stdout carries
// JSON-RPC), and TTY detection makes it a no-op in scripted usage.
package progress

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// minItems is the minimum number of items before showing progress.
// For small imports, progress adds noise without benefit.
const minItems = 5

// Progress tracks and displays batch progress.
type Progress struct {
	w       io.Writer
	label   string
	total   int
	current int
	isTTY   bool
}

// New creates a progress reporter that writes to stderr.
// If total is less than minItems, updates are suppressed.
func New(label string, total int) *Progress {
	return &Progress{
		w:     os.Stderr,
		label: label,
		total: total,
		isTTY: term.IsTerminal(int(os.Stderr.Fd())),
	}
}

// Increment advances the counter by one and redraws the line.
// On TTY it updates in place via carriage return; otherwise no-op.
func (p *Progress) Increment() {
	p.current++
	if p.total < minItems || !p.isTTY {
		return
	}
	pct := (p.current * 100) / p.total
	fmt.Fprintf(p.w, "\r%s... %d/%d (%d%%)", p.label, p.current, p.total, pct)
}

// Done clears the progress line (on TTY) to make way for the summary.
func (p *Progress) Done() {
	if p.total < minItems || !p.isTTY {
		return
	}
	fmt.Fprintf(p.w, "\r%s\r", "                                        ")
}
