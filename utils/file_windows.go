package utils

import (
	"os"
	"strings"
	"syscall"
)

// IsIgnoreFile reports shortcuts and hidden or system files.
func IsIgnoreFile(info os.FileInfo) bool {
	if strings.HasSuffix(info.Name(), ".lnk") {
		return true
	}
	stat, ok := info.Sys().(*syscall.Win32FileAttributeData)
	if !ok {
		return true
	}
	return stat.FileAttributes&syscall.FILE_ATTRIBUTE_HIDDEN != 0 ||
		stat.FileAttributes&syscall.FILE_ATTRIBUTE_SYSTEM != 0
}
