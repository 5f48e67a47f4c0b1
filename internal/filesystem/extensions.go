package filesystem

import "strings"

// recognizedExtensions is the fixed set of file extensions that makes a file
// eligible for probing. Matching is an exact, case-sensitive suffix match.
//
//nolint:gochecknoglobals
var recognizedExtensions = []string{
	".json",
	".jsonc",
	".mjs",
	".js",
	".ts",
	".yaml",
	".yml",
}

// RecognizedExt reports whether a filename ends in one of the recognized
// extensions, returning the matched extension when it does.
func RecognizedExt(name string) (string, bool) {
	for _, ext := range recognizedExtensions {
		if strings.HasSuffix(name, ext) {
			return ext, true
		}
	}

	return "", false
}
