// Package scanner provides the probing of candidate files for the UTF-8
// byte-order-mark. Probing reads at most the first bytes of a file; a failure
// while probing is contained to that file and classified into a skip reason,
// so that one unreadable file can never abort an entire scan.
package scanner

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"

	"github.com/desertwitch/bomscan/internal/schema"
	"github.com/zeebo/blake3"
	"golang.org/x/sys/unix"
)

type osProvider interface {
	Open(name string) (*os.File, error)
}

type unixProvider interface {
	Access(path string, mode uint32) error
}

//nolint:containedctx
type contextReader struct {
	ctx    context.Context
	reader io.Reader
}

func (cr *contextReader) Read(p []byte) (int, error) {
	select {
	case <-cr.ctx.Done():
		return 0, context.Canceled
	default:
		return cr.reader.Read(p)
	}
}

// Handler is the principal implementation for probing operations.
type Handler struct {
	osOps       osProvider
	unixOps     unixProvider
	fingerprint bool
}

// NewHandler returns a pointer to a new scanner [Handler]. With fingerprint
// set, matched files are additionally content-hashed in their entirety.
func NewHandler(osOps osProvider, unixOps unixProvider, fingerprint bool) *Handler {
	return &Handler{
		osOps:       osOps,
		unixOps:     unixOps,
		fingerprint: fingerprint,
	}
}

// Probe inspects the first bytes of a candidate file and returns a
// [schema.ScanResult] holding either the match decision or a classified skip
// reason. Probe itself never fails; any per-file failure becomes a skip.
func (s *Handler) Probe(ctx context.Context, c *schema.Candidate) *schema.ScanResult {
	result := &schema.ScanResult{Candidate: c}

	if err := s.unixOps.Access(c.Path, unix.R_OK); err != nil {
		return skipResult(result, classifyAccessError(err))
	}

	file, err := s.osOps.Open(c.Path)
	if err != nil {
		return skipResult(result, classifyAccessError(err))
	}
	defer file.Close()

	header := make([]byte, SignatureLen)

	n, err := io.ReadFull(file, header)
	result.BytesRead = int64(n)

	if err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			return skipResult(result, ErrFileTooShort)
		}

		return skipResult(result, fmt.Errorf("failed to read header: %w", err))
	}

	result.HasBOM = HasSignature(header)

	if result.HasBOM && s.fingerprint {
		s.establishFingerprint(ctx, result, file, header)
	}

	return result
}

// establishFingerprint content-hashes an already matched file in its entirety.
// A failure here does not revoke the match; the fingerprint is left unset.
func (s *Handler) establishFingerprint(ctx context.Context, result *schema.ScanResult, file io.Reader, header []byte) {
	hasher := blake3.New()
	_, _ = hasher.Write(header)

	ctxReader := &contextReader{
		ctx:    ctx,
		reader: file,
	}

	n, err := io.Copy(hasher, ctxReader)
	result.BytesRead += n

	if err != nil {
		slog.Debug("Could not fingerprint matched file.",
			"err", err,
			"path", result.Candidate.Path,
		)

		return
	}

	result.Fingerprint = hex.EncodeToString(hasher.Sum(nil))
}

func skipResult(result *schema.ScanResult, reason error) *schema.ScanResult {
	result.Skipped = true
	result.SkipReason = reason

	slog.Debug("Skipped candidate during probing.",
		"err", reason,
		"path", result.Candidate.Path,
	)

	return result
}

func classifyAccessError(err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, unix.ENOENT):
		return fmt.Errorf("%w: %w", ErrFileVanished, err)
	case errors.Is(err, fs.ErrPermission), errors.Is(err, unix.EACCES):
		return fmt.Errorf("%w: %w", ErrNotReadable, err)
	default:
		return fmt.Errorf("failed to access file: %w", err)
	}
}
