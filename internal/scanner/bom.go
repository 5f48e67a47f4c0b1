package scanner

import "bytes"

// SignatureLen is the length of the UTF-8 byte-order-mark in bytes.
const SignatureLen = 3

// Signature is the UTF-8 byte-order-mark as prepended to encoded text files.
//
//nolint:gochecknoglobals
var Signature = []byte{0xEF, 0xBB, 0xBF}

// HasSignature reports whether a file header begins with the UTF-8
// byte-order-mark. A header shorter than [SignatureLen] never matches.
func HasSignature(header []byte) bool {
	return bytes.HasPrefix(header, Signature)
}
