package validation

import "errors"

var (
	// ErrNoPath occurs when a candidate carries no absolute path at all.
	ErrNoPath = errors.New("no candidate path")

	// ErrPathRelative occurs when a candidate path is provided as relative
	// rather than absolute.
	ErrPathRelative = errors.New("candidate path is relative")

	// ErrNoRelPath occurs when a candidate carries no root-relative path.
	ErrNoRelPath = errors.New("no candidate relative path")

	// ErrRelPathAbsolute occurs when a candidate's relative path is in fact
	// absolute.
	ErrRelPathAbsolute = errors.New("candidate relative path is absolute")

	// ErrRelPathEscapes occurs when a candidate's relative path points above
	// the scan root.
	ErrRelPathEscapes = errors.New("candidate relative path escapes the root")

	// ErrUnrecognizedExt occurs when a candidate's name does not carry one of
	// the recognized extensions.
	ErrUnrecognizedExt = errors.New("candidate has no recognized extension")
)
