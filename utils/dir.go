package utils

import (
	"os"
	"path/filepath"
)

// ParseWorkDir resolves workDir to an absolute directory, falling back to the
// current directory when it is empty or not a directory.
func ParseWorkDir(workDir string) string {
	if workDir == "" {
		workDir, _ = os.Getwd()
		return workDir
	}
	fp, err := filepath.Abs(workDir)
	if err != nil {
		workDir, _ = os.Getwd()
		return workDir
	}
	info, err := os.Stat(fp)
	if err != nil || !info.IsDir() {
		workDir, _ = os.Getwd()
		return workDir
	}
	return fp
}

// EnsureDir creates dir (and parents) if missing.
func EnsureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}
