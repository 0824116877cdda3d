package main

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconkit/icns"
	"iconkit/iconset"
	"iconkit/logo"
	"iconkit/utils"
)

func quiet() (*utils.Status, *utils.Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &utils.Status{Out: &buf, Plain: true}, &utils.Logger{ID: "test", Out: &buf}, &buf
}

func TestRunFullIconset(t *testing.T) {
	dir := t.TempDir()
	setDir := filepath.Join(dir, iconset.DirName)
	render := func(size int) image.Image { return logo.Draw(size, logo.DefaultPalette) }
	if _, err := iconset.Write(setDir, iconset.AppleLayout, render); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "icon.icns")
	st, log, buf := quiet()
	if err := run(options{setDir: setDir, out: out}, st, log); err != nil {
		t.Fatalf("run: %v\n%s", err, buf)
	}

	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	entries, err := icns.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(iconset.AppleLayout) {
		t.Fatalf("entries = %d", len(entries))
	}
	sum := 8
	for i, e := range entries {
		s := iconset.AppleLayout[i]
		if e.Type != s.Type || len(e.Data) != s.Size*s.Size*4 {
			t.Errorf("entry %d: %s/%d bytes", i, e.Type, len(e.Data))
		}
		sum += 8 + len(e.Data)
	}
	if got := binary.BigEndian.Uint32(data[4:8]); int(got) != sum {
		t.Errorf("declared %d, re-summed %d", got, sum)
	}
}

func TestRunPartialIconset(t *testing.T) {
	dir := t.TempDir()
	render := func(size int) image.Image { return image.NewNRGBA(image.Rect(0, 0, size, size)) }
	if _, err := iconset.Write(dir, iconset.AppleLayout[:2], render); err != nil {
		t.Fatal(err)
	}

	out := filepath.Join(dir, "icon.icns")
	st, log, buf := quiet()
	if err := run(options{setDir: dir, out: out, legacy: true}, st, log); err != nil {
		t.Fatalf("run: %v\n%s", err, buf)
	}
	data, _ := os.ReadFile(out)
	entries, err := icns.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 2 {
		t.Errorf("entries = %d, want 2", len(entries))
	}
	if entries[0].Type != "ic07" {
		t.Errorf("legacy first type = %s", entries[0].Type)
	}
	if !strings.Contains(buf.String(), "[!!] 跳过 icon_512x512@2x.png") {
		t.Errorf("missing skip warning in:\n%s", buf)
	}
}

func TestRunEmptyIconsetWritesNothing(t *testing.T) {
	dir := t.TempDir()
	out := filepath.Join(dir, "icon.icns")
	st, log, _ := quiet()
	err := run(options{setDir: dir, out: out}, st, log)
	if !errors.Is(err, iconset.ErrNoIcons) {
		t.Fatalf("err = %v, want ErrNoIcons", err)
	}
	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("output exists: %v", err)
	}
}

func TestRunMissingIconset(t *testing.T) {
	dir := t.TempDir()
	st, log, _ := quiet()
	err := run(options{setDir: filepath.Join(dir, "nope"), out: filepath.Join(dir, "icon.icns")}, st, log)
	if err == nil || errors.Is(err, iconset.ErrNoIcons) {
		t.Errorf("err = %v", err)
	}
}
