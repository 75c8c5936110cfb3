package pkg

import (
	"errors"
	"io/fs"
	"os"
)

// PathExists reports whether path exists and is a directory (isDir) or a
// regular file (!isDir). A missing path is not an error.
func PathExists(path string, isDir bool) (bool, error) {
	info, err := os.Stat(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return false, nil
	case err != nil:
		return false, err
	case isDir:
		return info.IsDir(), nil
	default:
		return info.Mode().IsRegular(), nil
	}
}
