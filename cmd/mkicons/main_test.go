package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"iconkit/export"
	"iconkit/ico"
	"iconkit/icns"
	"iconkit/iconset"
	"iconkit/logo"
	"iconkit/utils"
)

func TestRunWritesAllOutputs(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	st := &utils.Status{Out: &buf, Plain: true}

	opts := options{dir: dir, palette: logo.DefaultPalette, icns: true}
	if err := run(opts, st); err != nil {
		t.Fatalf("run: %v\n%s", err, buf.String())
	}

	for _, size := range export.Sizes {
		if _, err := os.Stat(filepath.Join(dir, export.PNGName(size))); err != nil {
			t.Errorf("png %d: %v", size, err)
		}
	}

	data, err := os.ReadFile(filepath.Join(dir, "icon.ico"))
	if err != nil {
		t.Fatal(err)
	}
	entries, err := ico.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != len(export.ICOSizes) {
		t.Errorf("ico entries = %d, want %d", len(entries), len(export.ICOSizes))
	}

	for _, s := range iconset.AppleLayout {
		if _, err := os.Stat(filepath.Join(dir, iconset.DirName, s.Filename)); err != nil {
			t.Errorf("iconset %s: %v", s.Filename, err)
		}
	}

	data, err = os.ReadFile(filepath.Join(dir, "icon.icns"))
	if err != nil {
		t.Fatal(err)
	}
	elems, err := icns.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(elems) != len(iconset.AppleLayout) {
		t.Errorf("icns entries = %d", len(elems))
	}

	out := buf.String()
	for _, want := range []string{"128x128@2x.png (", "icon.ico (", "icon.icns (", iconset.DirName + "/"} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q", want)
		}
	}
}

func TestRunCleanRemovesStaleIconset(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, iconset.DirName, "old.png")
	if err := os.MkdirAll(filepath.Dir(stale), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(stale, []byte("x"), 0644); err != nil {
		t.Fatal(err)
	}

	st := &utils.Status{Out: &bytes.Buffer{}, Plain: true}
	if err := run(options{dir: dir, palette: logo.DefaultPalette, clean: true}, st); err != nil {
		t.Fatal(err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Errorf("stale file survived: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "icon.icns")); !os.IsNotExist(err) {
		t.Errorf("icon.icns written without -icns: %v", err)
	}
}

func TestSetColor(t *testing.T) {
	p := logo.DefaultPalette
	if !setColor(&p.Primary, "") || p.Primary != logo.DefaultPalette.Primary {
		t.Error("empty input changed the color")
	}
	if !setColor(&p.Primary, "#000") || p.Primary.R != 0 || p.Primary.A != 255 {
		t.Errorf("primary = %v", p.Primary)
	}
	if setColor(&p.Success, "nope") {
		t.Error("invalid color accepted")
	}
}

func TestRunReturnsPNGAndICOErrors(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T) string
	}{
		{
			name: "output dir is a file",
			setup: func(t *testing.T) string {
				p := filepath.Join(t.TempDir(), "out")
				if err := os.WriteFile(p, []byte("x"), 0644); err != nil {
					t.Fatal(err)
				}
				return p
			},
		},
		{
			name: "icon.ico is a directory",
			setup: func(t *testing.T) string {
				dir := t.TempDir()
				if err := os.Mkdir(filepath.Join(dir, "icon.ico"), 0o755); err != nil {
					t.Fatal(err)
				}
				return dir
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := tt.setup(t)
			st := &utils.Status{Out: &bytes.Buffer{}, Plain: true}
			if err := run(options{dir: dir, palette: logo.DefaultPalette, icns: true}, st); err == nil {
				t.Fatal("run succeeded, want error")
			}
			if _, err := os.Stat(filepath.Join(dir, iconset.DirName)); err == nil {
				t.Error("iconset written after a failed step")
			}
		})
	}
}

func TestRunReportsICNSFailureAndContinues(t *testing.T) {
	dir := t.TempDir()
	if err := os.Mkdir(filepath.Join(dir, "icon.icns"), 0o755); err != nil {
		t.Fatal(err)
	}
	var buf bytes.Buffer
	st := &utils.Status{Out: &buf, Plain: true}
	if err := run(options{dir: dir, palette: logo.DefaultPalette, icns: true}, st); err != nil {
		t.Fatalf("run: %v", err)
	}

	out := buf.String()
	for _, want := range []string{"[xx] ICNS 文件生成失败", "icon.ico (", "iconutil -c icns"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if _, err := os.Stat(filepath.Join(dir, iconset.DirName, "icon_16x16.png")); err != nil {
		t.Errorf("iconset missing: %v", err)
	}
}
