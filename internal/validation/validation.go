// Package validation provides sanity checks for enumerated candidates before
// they are handed to the prober. A failed check drops only that candidate and
// logs a warning; validation itself never fails a scan.
package validation

import (
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/desertwitch/bomscan/internal/filesystem"
	"github.com/desertwitch/bomscan/internal/schema"
)

// Candidates filters a slice of [schema.Candidate] down to those passing all
// sanity checks, logging a warning for every dropped candidate.
func Candidates(candidates []*schema.Candidate) []*schema.Candidate {
	var filtered []*schema.Candidate

	for _, c := range candidates {
		if err := validateCandidate(c); err != nil {
			slog.Warn("Dropped candidate: failed pre-probe validation.",
				"err", err,
				"path", c.Path,
			)

			continue
		}

		filtered = append(filtered, c)
	}

	return filtered
}

func validateCandidate(c *schema.Candidate) error {
	if c.Path == "" {
		return ErrNoPath
	}

	if !filepath.IsAbs(c.Path) {
		return ErrPathRelative
	}

	if c.RelPath == "" {
		return ErrNoRelPath
	}

	if filepath.IsAbs(c.RelPath) {
		return ErrRelPathAbsolute
	}

	if c.RelPath == ".." || strings.HasPrefix(c.RelPath, ".."+string(filepath.Separator)) {
		return ErrRelPathEscapes
	}

	if _, ok := filesystem.RecognizedExt(c.Path); !ok {
		return ErrUnrecognizedExt
	}

	return nil
}
