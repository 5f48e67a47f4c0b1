package filesystem

import (
	"io/fs"
	"path/filepath"
)

type fsWalker interface {
	WalkDir(root string, fn fs.WalkDirFunc) error
}

// FileWalker is an implementation of fsWalker wrapping [filepath.WalkDir].
type FileWalker struct{}

// WalkDir wraps around [filepath.WalkDir].
func (*FileWalker) WalkDir(root string, fn fs.WalkDirFunc) error {
	return filepath.WalkDir(root, fn)
}
