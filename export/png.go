// Package export writes the standalone PNG icons.
package export

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// Sizes are the PNG sizes written by WritePNGs, in order.
var Sizes = []int{16, 32, 48, 128, 256, 512, 1024}

// ICOSizes are the sizes packed into icon.ico.
var ICOSizes = []int{16, 32, 48, 128, 256}

// PNGName returns the output file name for size.
func PNGName(size int) string {
	switch size {
	case 256:
		return "128x128@2x.png"
	case 128:
		return "128x128.png"
	case 32:
		return "32x32.png"
	}
	return fmt.Sprintf("icon-%d.png", size)
}

// WritePNGs renders every size in Sizes into dir. The first encode or I/O
// error stops the run. It returns the written paths.
func WritePNGs(dir string, render func(size int) image.Image) ([]string, error) {
	paths := make([]string, 0, len(Sizes))
	for _, size := range Sizes {
		p := filepath.Join(dir, PNGName(size))
		if err := writePNG(p, render(size)); err != nil {
			return paths, err
		}
		paths = append(paths, p)
	}
	return paths, nil
}

func writePNG(path string, img image.Image) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := png.Encode(out, img); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return out.Close()
}
