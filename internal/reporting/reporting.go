// Package reporting provides the output side of a scan. Matched paths are
// written to a single writer (normally standard output), one root-relative
// path per line, either streamed in traversal order or buffered and lexically
// sorted for reproducible output. Everything else (statistics, skips) goes to
// the structured log, never onto the report writer.
package reporting

import (
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"

	"github.com/desertwitch/bomscan/internal/schema"
	"github.com/dustin/go-humanize"
)

// Handler is the principal implementation for reporting operations.
type Handler struct {
	sync.Mutex

	writer     io.Writer
	sortOutput bool

	buffered []string

	probed    int
	matched   int
	skipped   int
	bytesRead uint64
}

// NewHandler returns a pointer to a new reporting [Handler]. With sortOutput
// set, matched paths are buffered until [Handler.Flush] instead of streamed.
func NewHandler(writer io.Writer, sortOutput bool) *Handler {
	return &Handler{
		writer:     writer,
		sortOutput: sortOutput,
	}
}

// Report tallies a [schema.ScanResult] and, for a match, emits the candidate's
// root-relative path (immediately, or into the sort buffer).
func (r *Handler) Report(result *schema.ScanResult) error {
	r.Lock()
	defer r.Unlock()

	r.probed++
	r.bytesRead += uint64(result.BytesRead) //nolint:gosec

	if result.Skipped {
		r.skipped++

		return nil
	}

	if !result.HasBOM {
		return nil
	}

	r.matched++

	if r.sortOutput {
		r.buffered = append(r.buffered, result.Candidate.RelPath)

		return nil
	}

	if _, err := fmt.Fprintln(r.writer, result.Candidate.RelPath); err != nil {
		return fmt.Errorf("(report) failed to write path: %w", err)
	}

	return nil
}

// Flush writes all buffered paths in lexical order. It is a no-op when the
// handler streams unsorted.
func (r *Handler) Flush() error {
	r.Lock()
	defer r.Unlock()

	if !r.sortOutput {
		return nil
	}

	sort.Strings(r.buffered)

	for _, relPath := range r.buffered {
		if _, err := fmt.Fprintln(r.writer, relPath); err != nil {
			return fmt.Errorf("(report) failed to write path: %w", err)
		}
	}

	r.buffered = nil

	return nil
}

// Summary logs the final scan statistics.
func (r *Handler) Summary() {
	r.Lock()
	defer r.Unlock()

	slog.Info("Scan complete.",
		"probed", humanize.Comma(int64(r.probed)),
		"matched", humanize.Comma(int64(r.matched)),
		"skipped", humanize.Comma(int64(r.skipped)),
		"read", humanize.Bytes(r.bytesRead),
	)
}
