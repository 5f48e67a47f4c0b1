package main

import "errors"

// ErrNoRootPath occurs when no scan root was given on the command line or in
// the configuration file.
var ErrNoRootPath = errors.New("no root path configured")
