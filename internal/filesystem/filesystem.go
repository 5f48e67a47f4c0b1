// Package filesystem provides the enumeration of candidate files for probing.
// It recursively walks a root directory and collects every regular file whose
// name carries one of the recognized extensions.
package filesystem

import (
	"context"
	"io/fs"
	"log/slog"
	"path/filepath"

	"github.com/desertwitch/bomscan/internal/schema"
)

type osProvider interface {
	Stat(name string) (fs.FileInfo, error)
}

// Handler is the principal implementation for filesystem operations.
type Handler struct {
	walker fsWalker
	osOps  osProvider
}

// NewHandler returns a pointer to a new filesystem [Handler].
func NewHandler(walker fsWalker, osOps osProvider) *Handler {
	return &Handler{
		walker: walker,
		osOps:  osOps,
	}
}

// Candidates walks the tree below the given root and returns a [schema.Candidate]
// for every regular file whose name carries a recognized extension. A relative
// root is resolved against the working directory, so candidate paths are
// always absolute.
//
// Failures on individual entries are skipped and the walk continues; an error
// on the root itself (non-existent, not a directory, unreadable) is returned.
// Directory symlinks are not descended into, as per [filepath.WalkDir].
func (f *Handler) Candidates(ctx context.Context, root string) ([]*schema.Candidate, error) {
	var candidates []*schema.Candidate

	root, err := filepath.Abs(root)
	if err != nil {
		return nil, &EnumerationError{Path: root, Err: err}
	}

	rootInfo, err := f.osOps.Stat(root)
	if err != nil {
		return nil, &EnumerationError{Path: root, Err: err}
	}
	if !rootInfo.IsDir() {
		return nil, &EnumerationError{Path: root, Err: ErrRootNotDirectory}
	}

	err = f.walker.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if err != nil {
			if path == root {
				return err
			}

			slog.Debug("Skipped inaccessible entry during enumeration.",
				"err", err,
				"path", path,
			)

			return nil
		}

		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}

		ext, ok := RecognizedExt(d.Name())
		if !ok {
			return nil
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			slog.Debug("Skipped entry with unresolvable relative path.",
				"err", err,
				"path", path,
			)

			return nil
		}

		candidates = append(candidates, &schema.Candidate{
			Path:    path,
			RelPath: relPath,
			Ext:     ext,
		})

		return nil
	})
	if err != nil {
		return nil, &EnumerationError{Path: root, Err: err}
	}

	return candidates, nil
}
