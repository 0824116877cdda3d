//go:build !windows

package utils

import (
	"os"
	"strings"
)

// IsIgnoreFile reports symlinks and dotfiles such as .DS_Store.
func IsIgnoreFile(info os.FileInfo) bool {
	return info.Mode()&os.ModeSymlink != 0 || strings.HasPrefix(info.Name(), ".")
}
