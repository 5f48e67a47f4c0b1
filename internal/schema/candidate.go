package schema

// Candidate describes a single file that was enumerated for probing, on the
// basis of its name carrying one of the recognized extensions.
type Candidate struct {
	// Path is the absolute path of the candidate file.
	Path string

	// RelPath is the path of the candidate file relative to the scan root.
	RelPath string

	// Ext is the recognized extension the candidate was matched on.
	Ext string
}

// ScanResult is the per-file outcome of a probing operation. A result is
// either conclusive (Skipped false, HasBOM decided) or skipped with a reason
// (Skipped true, SkipReason set); a skipped file never aborts the scan.
type ScanResult struct {
	// Candidate is the probed file.
	Candidate *Candidate

	// HasBOM reports whether the file begins with the UTF-8 byte-order-mark.
	HasBOM bool

	// BytesRead is the number of content bytes that were read for this file.
	BytesRead int64

	// Fingerprint is the hex-encoded content hash of a matched file. It is
	// only set when fingerprinting was requested and the file matched.
	Fingerprint string

	// Skipped reports whether the file could not be conclusively probed.
	Skipped bool

	// SkipReason holds the classified cause when Skipped is true.
	SkipReason error
}
