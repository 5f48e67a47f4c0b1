package scanner

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/desertwitch/bomscan/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// fakeUnix is a fake implementation of unixProvider, returning a canned error
// for access checks.
type fakeUnix struct {
	accessErr error
}

func (f *fakeUnix) Access(_ string, _ uint32) error {
	return f.accessErr
}

func newTestCandidate(t *testing.T, name string, content []byte) *schema.Candidate {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))

	return &schema.Candidate{
		Path:    path,
		RelPath: name,
		Ext:     filepath.Ext(name),
	}
}

// TestProbe_Success_Match tests probing a file that carries the BOM.
func TestProbe_Success_Match(t *testing.T) {
	t.Parallel()

	c := newTestCandidate(t, "a.json", append([]byte{0xEF, 0xBB, 0xBF}, []byte("{}")...))

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, false)

	result := handler.Probe(context.Background(), c)
	require.False(t, result.Skipped)

	assert.True(t, result.HasBOM)
	assert.Equal(t, int64(SignatureLen), result.BytesRead)
	assert.Empty(t, result.Fingerprint)
}

// TestProbe_Success_NoMatch tests probing a file without the BOM.
func TestProbe_Success_NoMatch(t *testing.T) {
	t.Parallel()

	c := newTestCandidate(t, "b.ts", []byte("export {}"))

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, false)

	result := handler.Probe(context.Background(), c)
	require.False(t, result.Skipped)

	assert.False(t, result.HasBOM)
}

// TestProbe_Success_Fingerprint tests content hashing of a matched file.
func TestProbe_Success_Fingerprint(t *testing.T) {
	t.Parallel()

	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{"key":"value"}`)...)
	c := newTestCandidate(t, "a.json", content)

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, true)

	result := handler.Probe(context.Background(), c)
	require.False(t, result.Skipped)

	assert.True(t, result.HasBOM)
	assert.Len(t, result.Fingerprint, 64, "expected a hex-encoded 256-bit digest")
	assert.Equal(t, int64(len(content)), result.BytesRead)

	// An unchanged file must fingerprint identically on a second probe.
	again := handler.Probe(context.Background(), c)
	assert.Equal(t, result.Fingerprint, again.Fingerprint)
}

// TestProbe_Skip_TooShort_Table tests that undersized files become skips.
func TestProbe_Skip_TooShort_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name    string
		content []byte
	}{
		{"Success_ZeroBytes", []byte{}},
		{"Success_OneByte", []byte{0xEF}},
		{"Success_TwoBytes", []byte{0xEF, 0xBB}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			c := newTestCandidate(t, "short.yml", tc.content)

			handler := NewHandler(&schema.OS{}, &schema.Unix{}, false)

			result := handler.Probe(context.Background(), c)
			require.True(t, result.Skipped)

			assert.False(t, result.HasBOM)
			assert.ErrorIs(t, result.SkipReason, ErrFileTooShort)
		})
	}
}

// TestProbe_Skip_Vanished tests probing a file that no longer exists.
func TestProbe_Skip_Vanished(t *testing.T) {
	t.Parallel()

	c := &schema.Candidate{
		Path:    filepath.Join(t.TempDir(), "gone.json"),
		RelPath: "gone.json",
		Ext:     ".json",
	}

	handler := NewHandler(&schema.OS{}, &schema.Unix{}, false)

	result := handler.Probe(context.Background(), c)
	require.True(t, result.Skipped)

	assert.False(t, result.HasBOM)
	assert.ErrorIs(t, result.SkipReason, ErrFileVanished)
}

// TestProbe_Skip_NotReadable tests probing a file that fails the access check.
func TestProbe_Skip_NotReadable(t *testing.T) {
	t.Parallel()

	c := newTestCandidate(t, "locked.json", []byte("{}"))

	handler := NewHandler(&schema.OS{}, &fakeUnix{accessErr: unix.EACCES}, false)

	result := handler.Probe(context.Background(), c)
	require.True(t, result.Skipped)

	assert.False(t, result.HasBOM)
	assert.ErrorIs(t, result.SkipReason, ErrNotReadable)
}

// TestHasSignature_Table tests the byte-order-mark prefix comparison.
func TestHasSignature_Table(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name     string
		header   []byte
		expected bool
	}{
		{"Success_ExactSignature", []byte{0xEF, 0xBB, 0xBF}, true},
		{"Success_SignatureWithContent", []byte{0xEF, 0xBB, 0xBF, '{', '}'}, true},
		{"Fail_Empty", []byte{}, false},
		{"Fail_TooShort", []byte{0xEF, 0xBB}, false},
		{"Fail_WrongBytes", []byte{0xEF, 0xBB, 0xBE}, false},
		{"Fail_PlainText", []byte("exp"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, HasSignature(tc.header))
		})
	}
}
