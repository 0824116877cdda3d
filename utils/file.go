package utils

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/amalfra/etag/v3"
	"github.com/dustin/go-humanize"
	"github.com/hymkor/trash-go"
)

// Describe returns "name (1,234 bytes) W/"etag"" for a written file.
func Describe(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s (%s bytes) %s",
		filepath.Base(path),
		humanize.Comma(int64(len(data))),
		etag.Generate(string(data), true)), nil
}

// Discard removes path, or moves it to the recycle bin when useTrash is set.
// A missing path is not an error.
func Discard(path string, useTrash bool) error {
	if _, err := os.Lstat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	if useTrash {
		return trash.Throw(path)
	}
	return os.RemoveAll(path)
}
