// Package iconset writes macOS iconset directories and collects their PNGs
// into icns entries.
package iconset

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"iconkit/icns"
	"iconkit/logo"
	"iconkit/utils"
)

// DirName is the conventional iconset directory name.
const DirName = "icon.iconset"

// ErrNoIcons is returned by Collect when no slot yielded an entry.
var ErrNoIcons = errors.New("no valid icons found in iconset")

// Payload selects what is stored in each icns element.
type Payload int

const (
	// RawRGBA stores decoded pixels, four bytes per pixel, top row first.
	RawRGBA Payload = iota
	// PNG stores the PNG file as read from disk.
	PNG
)

// Renderer produces the image for a pixel size.
type Renderer func(size int) image.Image

// cached calls render once per distinct size.
func cached(render Renderer) Renderer {
	seen := make(map[int]image.Image)
	return func(size int) image.Image {
		if img, ok := seen[size]; ok {
			return img
		}
		img := render(size)
		seen[size] = img
		return img
	}
}

// Write creates dir and writes one PNG per slot. It returns the written
// file names in layout order.
func Write(dir string, layout []Slot, render Renderer) ([]string, error) {
	if err := utils.EnsureDir(dir); err != nil {
		return nil, err
	}
	render = cached(render)
	names := make([]string, 0, len(layout))
	for _, s := range layout {
		if err := writePNG(filepath.Join(dir, s.Filename), render(s.Size)); err != nil {
			return names, err
		}
		names = append(names, s.Filename)
	}
	return names, nil
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

// Entries renders every slot in memory and returns raw RGBA entries.
func Entries(layout []Slot, render Renderer) []icns.Entry {
	render = cached(render)
	entries := make([]icns.Entry, 0, len(layout))
	for _, s := range layout {
		entries = append(entries, icns.Entry{
			Type: s.Type,
			Data: logo.ToNRGBA(render(s.Size)).Pix,
		})
	}
	return entries
}

// Locate returns the file to use for s in dir. When the expected name is
// absent it falls back to the first PNG, in name order, whose name contains
// the slot's size. ok is false when neither exists.
func Locate(dir string, s Slot) (path string, ok bool) {
	exact := filepath.Join(dir, s.Filename)
	if info, err := os.Stat(exact); err == nil && !info.IsDir() {
		return exact, true
	}

	files, err := os.ReadDir(dir)
	if err != nil {
		return "", false
	}
	want := strconv.Itoa(s.Size)
	for _, f := range files {
		name := f.Name()
		if f.IsDir() ||
			!strings.EqualFold(filepath.Ext(name), ".png") ||
			!strings.Contains(name, want) {
			continue
		}
		info, err := f.Info()
		if err != nil || utils.IsIgnoreFile(info) {
			continue
		}
		return filepath.Join(dir, name), true
	}
	return "", false
}

// Added describes a collected slot.
type Added struct {
	Slot  Slot
	Path  string
	Bytes int
}

// Skipped describes a slot that produced no entry.
type Skipped struct {
	Slot   Slot
	Reason error
}

// Result is the outcome of Collect.
type Result struct {
	Entries []icns.Entry
	Added   []Added
	Skipped []Skipped
}

// ErrNotFound is the Skipped reason for a slot with no matching file.
var ErrNotFound = errors.New("not found")

// Collect reads the PNG for every slot in dir. Slots whose file is missing or
// unreadable are recorded in Skipped and left out. It returns ErrNoIcons
// when nothing was collected, along with the skip list.
func Collect(dir string, layout []Slot, payload Payload) (Result, error) {
	var res Result
	info, err := os.Stat(dir)
	if err != nil {
		return res, fmt.Errorf("iconset directory: %w", err)
	}
	if !info.IsDir() {
		return res, fmt.Errorf("iconset directory: %s is not a directory", dir)
	}

	for _, s := range layout {
		path, ok := Locate(dir, s)
		if !ok {
			res.Skipped = append(res.Skipped, Skipped{Slot: s, Reason: ErrNotFound})
			continue
		}
		data, err := load(path, payload)
		if err != nil {
			res.Skipped = append(res.Skipped, Skipped{Slot: s, Reason: err})
			continue
		}
		res.Entries = append(res.Entries, icns.Entry{Type: s.Type, Data: data})
		res.Added = append(res.Added, Added{Slot: s, Path: path, Bytes: len(data)})
	}

	if len(res.Entries) == 0 {
		return res, ErrNoIcons
	}
	return res, nil
}

func load(path string, payload Payload) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if payload == PNG {
		if _, err := png.DecodeConfig(bytes.NewReader(raw)); err != nil {
			return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
		}
		return raw, nil
	}
	img, err := png.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return logo.ToNRGBA(img).Pix, nil
}
