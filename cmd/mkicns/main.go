// mkicns packs an existing icon.iconset directory into icon.icns without
// iconutil, so it also runs on Linux and Windows.
package main

import (
	"errors"
	"flag"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"

	"iconkit/icns"
	"iconkit/iconset"
	"iconkit/utils"
)

type options struct {
	setDir string
	out    string
	legacy bool
	png    bool
}

func main() {
	var dir string
	var opts options
	flag.StringVar(&dir, "d", "", "图标目录（默认当前目录）")
	flag.StringVar(&opts.setDir, "i", "", "iconset 目录（默认 <图标目录>/icon.iconset）")
	flag.StringVar(&opts.out, "o", "", "输出文件（默认 <图标目录>/icon.icns）")
	flag.BoolVar(&opts.legacy, "legacy", false, "使用旧版类型码表")
	flag.BoolVar(&opts.png, "png", false, "直接存入 PNG 数据而不是 RGBA 像素")
	flag.Parse()

	dir = utils.ParseWorkDir(dir)
	if opts.setDir == "" {
		opts.setDir = filepath.Join(dir, iconset.DirName)
	}
	if opts.out == "" {
		opts.out = filepath.Join(dir, "icon.icns")
	}

	st := utils.NewStatus()
	log := &utils.Logger{ID: "mkicns"}

	st.Title("ICNS 生成")
	st.Line("%s", "========================================")
	if err := run(opts, st, log); err != nil {
		st.Line("")
		st.Fail("ICNS 文件生成失败")
		st.Line("")
		st.Hint("替代方案: 使用在线转换工具")
		st.Line("   https://cloudconvert.com/icns-converter")
		st.Line("   将 icon.iconset 目录打包为 ZIP 后上传")
		return
	}
	st.Line("")
	st.Title("ICNS 文件已生成，可用于 macOS 打包")
}

// run collects the iconset and writes the icns file. Missing or unreadable
// slots are skipped; nothing is written when no slot could be collected.
func run(opts options, st *utils.Status, log *utils.Logger) error {
	payload := iconset.RawRGBA
	if opts.png {
		payload = iconset.PNG
	}

	st.Section("读取 iconset: %s", opts.setDir)
	res, err := iconset.Collect(opts.setDir, iconset.Layout(opts.legacy), payload)
	for _, s := range res.Skipped {
		if errors.Is(s.Reason, iconset.ErrNotFound) {
			st.Warn("跳过 %s (未找到)", s.Slot.Filename)
			continue
		}
		st.Warn("跳过 %s", s.Slot.Filename)
		log.Warnf("%s: %v", s.Slot.Filename, s.Reason)
	}
	for _, a := range res.Added {
		st.OK("已添加 %s (%dx%d, %s bytes)", filepath.Base(a.Path), a.Slot.Size, a.Slot.Size, humanize.Comma(int64(a.Bytes)))
	}
	if err != nil {
		if errors.Is(err, iconset.ErrNoIcons) {
			st.Fail("iconset 中没有可用的图标")
		} else {
			st.Fail("%v", err)
			st.Line("   请先运行 mkicons 生成 iconset")
		}
		return err
	}

	st.Section("写入 ICNS 文件...")
	if err := icns.WriteFile(opts.out, res.Entries); err != nil {
		log.Error(err)
		return err
	}
	if err := verify(opts.out, len(res.Entries), st); err != nil {
		log.Error(err)
		return err
	}
	return nil
}

func verify(path string, want int, st *utils.Status) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	entries, err := icns.Decode(data)
	if err != nil {
		return err
	}
	if len(entries) != want {
		return errors.New("icns: entry count mismatch after write")
	}
	st.OK("已生成 %s", path)
	st.Line("   大小: %s bytes", humanize.Comma(int64(len(data))))
	st.Line("   图标: %d", len(entries))
	return nil
}
