// mkicons draws the brand logo and writes the packaging icons: standalone
// PNGs, icon.ico, the icon.iconset directory and, with -icns, icon.icns.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"
	"slices"

	"iconkit/export"
	"iconkit/ico"
	"iconkit/icns"
	"iconkit/iconset"
	"iconkit/logo"
	"iconkit/utils"
)

type options struct {
	dir      string
	palette  logo.Palette
	clean    bool
	useTrash bool
	icns     bool
	legacy   bool
}

func main() {
	var opts = options{palette: logo.DefaultPalette}
	var primary, success string
	flag.StringVar(&opts.dir, "d", "", "输出目录（默认当前目录）")
	flag.StringVar(&primary, "primary", "", "主色，#RRGGBB 或 R,G,B")
	flag.StringVar(&success, "success", "", "对勾颜色，#RRGGBB 或 R,G,B")
	flag.BoolVar(&opts.clean, "c", false, "生成前清除旧的 iconset 目录")
	flag.BoolVar(&opts.useTrash, "t", false, "清除时放入回收站")
	flag.BoolVar(&opts.icns, "icns", false, "同时直接生成 icon.icns")
	flag.BoolVar(&opts.legacy, "legacy", false, "icns 使用旧版类型码表")
	flag.Parse()

	if !setColor(&opts.palette.Primary, primary) || !setColor(&opts.palette.Success, success) {
		os.Exit(2)
	}
	if opts.dir != "" {
		if err := utils.EnsureDir(opts.dir); err != nil {
			fmt.Println("创建输出目录失败:", err)
			os.Exit(1)
		}
	}
	opts.dir = utils.ParseWorkDir(opts.dir)

	st := utils.NewStatus()
	if err := run(opts, st); err != nil {
		st.Fail("图标生成失败: %v", err)
		os.Exit(1)
	}
}

// setColor overwrites dst when in is non-empty.
func setColor(dst *color.RGBA, in string) bool {
	if in == "" {
		return true
	}
	c, ok := utils.ParseColor(in)
	if !ok {
		fmt.Println("颜色参数无效:", in)
		return false
	}
	*dst = c
	return true
}

func run(opts options, st *utils.Status) error {
	render := func(size int) image.Image { return logo.Draw(size, opts.palette) }

	st.Title("品牌图标生成")
	st.Line("%s", "========================================")

	st.Section("生成 PNG 图标...")
	paths, err := export.WritePNGs(opts.dir, render)
	if err != nil {
		return err
	}
	for i, p := range paths {
		st.OK("已生成 %s (%dx%d)", filepath.Base(p), export.Sizes[i], export.Sizes[i])
	}

	st.Section("生成 Windows ICO 文件...")
	images := make([]ico.Image, 0, len(export.ICOSizes))
	for _, size := range export.ICOSizes {
		images = append(images, ico.Image{Size: size, Image: render(size)})
	}
	icoPath := filepath.Join(opts.dir, "icon.ico")
	if err := ico.WriteFile(icoPath, images, ico.RawBGRA); err != nil {
		return err
	}
	st.OK("已生成 %s", icoPath)

	st.Section("生成 macOS iconset...")
	setDir := filepath.Join(opts.dir, iconset.DirName)
	if opts.clean || opts.useTrash {
		if err := utils.Discard(setDir, opts.useTrash); err != nil {
			return fmt.Errorf("清除 %s: %w", setDir, err)
		}
	}
	layout := iconset.Layout(opts.legacy)
	names, err := iconset.Write(setDir, layout, render)
	if err != nil {
		return err
	}
	for _, n := range names {
		st.OK("已生成 %s", n)
	}
	st.Line("\n   iconset 目录: %s", setDir)

	icnsWritten := false
	if opts.icns {
		st.Section("生成 macOS ICNS 文件...")
		icnsPath := filepath.Join(opts.dir, "icon.icns")
		if err := icns.WriteFile(icnsPath, iconset.Entries(layout, render)); err != nil {
			st.Fail("ICNS 文件生成失败: %v", err)
			st.Hint("可改用 iconutil 或 mkicns 从 iconset 生成")
		} else {
			st.OK("已生成 %s", icnsPath)
			icnsWritten = true
		}
	}

	st.Line("")
	st.Title("图标生成完成")
	summary(opts.dir, st)

	st.Line("")
	st.Hint("后续步骤:")
	st.Line("   1. 检查生成的图标")
	if !icnsWritten {
		st.Line("   2. macOS 上: iconutil -c icns %s -o %s", setDir, filepath.Join(opts.dir, "icon.icns"))
		st.Line("      其他系统: mkicns -d %s", opts.dir)
	}
	st.Line("   3. 在打包配置中引用 icon.ico 和 icon.icns")
	return nil
}

func summary(dir string, st *utils.Status) {
	st.Line("\n生成的文件:")
	var files []string
	for _, pattern := range []string{"*.png", "*.ico", "*.icns"} {
		m, _ := filepath.Glob(filepath.Join(dir, pattern))
		files = append(files, m...)
	}
	slices.Sort(files)
	for _, f := range files {
		d, err := utils.Describe(f)
		if err != nil {
			continue
		}
		st.Line("   %s", d)
	}
	if info, err := os.Stat(filepath.Join(dir, iconset.DirName)); err == nil && info.IsDir() {
		st.Line("   %s/ (目录)", iconset.DirName)
	}
}
