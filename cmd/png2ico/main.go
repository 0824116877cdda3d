// png2ico scales an existing PNG to each requested size and packs the
// results into an .ico next to it.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/image/draw"

	"iconkit/ico"
	"iconkit/utils"
)

func main() {
	var input, sizesStr string
	flag.StringVar(&input, "i", "", "PNG 文件路径（必填）")
	flag.StringVar(&sizesStr, "s", "16,32,48,128,256", "ICO尺寸，用逗号分隔")
	flag.Parse()

	if input == "" {
		fmt.Println("请指定输入 PNG 文件：-i <file.png>")
		return
	}

	sizes, err := parseSizes(sizesStr)
	if err != nil {
		fmt.Println(err)
		return
	}

	outFile := input[0:len(input)-len(filepath.Ext(input))] + ".ico"
	if err := convert(input, outFile, sizes); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}

	d, err := utils.Describe(outFile)
	if err != nil {
		d = outFile
	}
	fmt.Println("生成成功:", d)
}

func parseSizes(s string) ([]int, error) {
	var sizes []int
	for _, part := range strings.Split(s, ",") {
		v, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil || v <= 0 {
			return nil, fmt.Errorf("尺寸参数无效: %s", part)
		}
		sizes = append(sizes, v)
	}
	return sizes, nil
}

func convert(input, outFile string, sizes []int) error {
	in, err := os.Open(input)
	if err != nil {
		return err
	}
	defer in.Close()

	src, err := png.Decode(in)
	if err != nil {
		return fmt.Errorf("decode %s: %w", input, err)
	}

	images := make([]ico.Image, len(sizes))
	for i, sz := range sizes {
		images[i] = ico.Image{Size: sz, Image: resizeCatmullRom(src, sz, sz)}
	}
	return ico.WriteFile(outFile, images, ico.PNG)
}

func resizeCatmullRom(src image.Image, w, h int) *image.NRGBA {
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Rect, src, src.Bounds(), draw.Over, nil)
	return dst
}
