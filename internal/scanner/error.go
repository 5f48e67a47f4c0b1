package scanner

import "errors"

var (
	// ErrNotReadable is a skip reason that occurs when a candidate file exists
	// but cannot be read (e.g. permissions were removed).
	ErrNotReadable = errors.New("file is not readable")

	// ErrFileVanished is a skip reason that occurs when a candidate file
	// disappeared between enumeration and probing.
	ErrFileVanished = errors.New("file vanished before probing")

	// ErrFileTooShort is a skip reason that occurs when a candidate file holds
	// fewer bytes than the byte-order-mark signature.
	ErrFileTooShort = errors.New("file is shorter than the signature")
)
