// Package importer implements the batch URL import pipeline: many
// save-and-optionally-mark-read operations over one list of URLs, with
// per-item outcome accounting.
//
// Batches are processed strictly sequentially, and so are items within a
// batch. The Stash API documents no concurrency allowance, so the
// pipeline trades throughput for not overwhelming it. No item is ever
// retried, and no item failure aborts the run: every URL is processed
// exactly once and lands in exactly one of three buckets.
package importer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/stash-reader/stash-mcp/internal/api"
	"github.com/stash-reader/stash-mcp/internal/format"
	"github.com/stash-reader/stash-mcp/internal/progress"
)

// Batch sizing. Sizes outside [1, MaxBatchSize] are clamped, not rejected.
const (
	DefaultBatchSize = 10
	MaxBatchSize     = 20
)

// compactSkipMax is the largest skipped count still listed URL by URL in
// the summary. Beyond it only the count is shown, keeping summaries for
// large re-imports readable.
const compactSkipMax = 10

// ErrNoURLs is returned when Run is called with an empty input list.
var ErrNoURLs = errors.New("no URLs to import")

// Saver is the slice of the API client the pipeline needs. Narrowed to
// an interface so tests can script per-URL outcomes and count calls.
type Saver interface {
	Save(ctx context.Context, req api.SaveRequest) (*api.SaveResponse, error)
	MarkRead(ctx context.Context, id string) error
}

// Options configures an import run.
type Options struct {
	MarkRead  bool // mark each article read after saving
	BatchSize int  // items per batch; zero means DefaultBatchSize
}

// Item records one URL's outcome.
type Item struct {
	URL       string
	ArticleID string // set for succeeded items
	Reason    string // set for skipped and failed items
}

// Result accumulates the outcome of one run. The three buckets preserve
// input order and grow monotonically; a Result is owned by a single run
// and never reused.
type Result struct {
	Succeeded []Item
	Skipped   []Item
	Failed    []Item
	Notes     []string // diagnostics that don't change any item's bucket
}

// Run imports every URL, in order, and always processes the full list:
// failures are recorded, never propagated. The only error return is for
// an empty input list, which is a caller mistake rather than an outcome.
func Run(ctx context.Context, client Saver, urls []string, opts Options) (Result, error) {
	var result Result
	if len(urls) == 0 {
		return result, ErrNoURLs
	}

	prog := progress.New("Importing", len(urls))
	defer prog.Done()

	size := clampBatchSize(opts.BatchSize)
	for _, batch := range partition(urls, size) {
		for _, u := range batch {
			importOne(ctx, client, u, opts.MarkRead, &result)
			prog.Increment()
		}
	}
	return result, nil
}

// importOne saves a single URL and files it into a bucket. Any fault,
// including a transport error, is contained here; nothing escapes to
// abort the batch.
func importOne(ctx context.Context, client Saver, u string, markRead bool, result *Result) {
	resp, err := client.Save(ctx, api.SaveRequest{URL: u})
	if err != nil {
		if api.IsCode(err, api.CodeAlreadyRead) {
			result.Skipped = append(result.Skipped, Item{URL: u, Reason: "already read"})
			return
		}
		result.Failed = append(result.Failed, Item{URL: u, Reason: format.SaveError(err)})
		return
	}

	if resp.AlreadySaved() {
		result.Skipped = append(result.Skipped, Item{URL: u, Reason: "already saved"})
		return
	}

	if markRead {
		// The save already succeeded; a failed mark-read downgrades
		// nothing, it only leaves a note.
		if err := client.MarkRead(ctx, resp.ID); err != nil {
			result.Notes = append(result.Notes,
				fmt.Sprintf("saved %s but could not mark it read: %s", u, format.Generic(err)))
		}
	}

	result.Succeeded = append(result.Succeeded, Item{URL: u, ArticleID: resp.ID})
}

// partition splits urls into contiguous batches of at most size,
// preserving input order.
func partition(urls []string, size int) [][]string {
	var batches [][]string
	for start := 0; start < len(urls); start += size {
		end := min(start+size, len(urls))
		batches = append(batches, urls[start:end])
	}
	return batches
}

func clampBatchSize(n int) int {
	switch {
	case n <= 0:
		return DefaultBatchSize
	case n > MaxBatchSize:
		return MaxBatchSize
	default:
		return n
	}
}

// Summary renders the run outcome: counts, every failed item with its
// reason, and skipped items individually only while the list stays
// compact (at most compactSkipMax).
func (r Result) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Import complete: %d succeeded, %d skipped, %d failed.\n",
		len(r.Succeeded), len(r.Skipped), len(r.Failed))

	if len(r.Failed) > 0 {
		b.WriteString("\nFailed:\n")
		for _, item := range r.Failed {
			fmt.Fprintf(&b, "- %s: %s\n", item.URL, item.Reason)
		}
	}

	if len(r.Skipped) > 0 && len(r.Skipped) <= compactSkipMax {
		b.WriteString("\nSkipped:\n")
		for _, item := range r.Skipped {
			fmt.Fprintf(&b, "- %s (%s)\n", item.URL, item.Reason)
		}
	}

	if len(r.Notes) > 0 {
		b.WriteString("\nNotes:\n")
		for _, note := range r.Notes {
			fmt.Fprintf(&b, "- %s\n", note)
		}
	}

	return strings.TrimRight(b.String(), "\n")
}
