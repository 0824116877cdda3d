// Package ico writes and reads Windows icon containers whose entries carry
// raw 32-bit BGRA pixel data or embedded PNGs.
package ico

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"image/png"
	"io"
	"os"

	"iconkit/logo"
)

const (
	headerSize = 6
	entrySize  = 16
	iconType   = 1
	bpp        = 32
)

// ErrFormat is returned by Decode for input that is not an icon container.
var ErrFormat = errors.New("ico: invalid format")

// Payload selects how each image is stored.
type Payload int

const (
	// RawBGRA stores the pixels, four bytes each, top row first.
	RawBGRA Payload = iota
	// PNG stores a PNG-encoded image, which Windows Vista and later read.
	PNG
)

// Image is one size variant. Size is the nominal edge length recorded in the
// directory; Image is not checked against it.
type Image struct {
	Size  int
	Image image.Image
}

// DirEntry is a parsed directory record.
type DirEntry struct {
	Width, Height byte // 0 means 256 or more
	Colors        byte
	Planes        uint16
	BitCount      uint16
	BytesInRes    uint32
	Offset        uint32
}

// BGRA returns the pixels of img, top row first, with red and blue swapped.
func BGRA(img image.Image) []byte {
	n := logo.ToNRGBA(img)
	out := make([]byte, len(n.Pix))
	for i := 0; i+3 < len(n.Pix); i += 4 {
		out[i] = n.Pix[i+2]
		out[i+1] = n.Pix[i+1]
		out[i+2] = n.Pix[i]
		out[i+3] = n.Pix[i+3]
	}
	return out
}

func dimByte(size int) byte {
	if size >= 256 {
		return 0
	}
	return byte(size)
}

func encodePayload(img image.Image, payload Payload) ([]byte, error) {
	if payload == PNG {
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	}
	return BGRA(img), nil
}

// Encode writes images to w as header, directory, then payloads in order.
func Encode(w io.Writer, images []Image, payload Payload) error {
	payloads := make([][]byte, len(images))
	for i, im := range images {
		p, err := encodePayload(im.Image, payload)
		if err != nil {
			return fmt.Errorf("ico: entry %d: %w", i, err)
		}
		payloads[i] = p
	}

	bw := bufio.NewWriter(w)

	binary.Write(bw, binary.LittleEndian, uint16(0))
	binary.Write(bw, binary.LittleEndian, uint16(iconType))
	binary.Write(bw, binary.LittleEndian, uint16(len(images)))

	offset := uint32(headerSize + len(images)*entrySize)

	for i, im := range images {
		e := DirEntry{
			Width:      dimByte(im.Size),
			Height:     dimByte(im.Size),
			Planes:     1,
			BitCount:   bpp,
			BytesInRes: uint32(len(payloads[i])),
			Offset:     offset,
		}
		bw.Write([]byte{e.Width, e.Height, e.Colors, 0})
		binary.Write(bw, binary.LittleEndian, e.Planes)
		binary.Write(bw, binary.LittleEndian, e.BitCount)
		binary.Write(bw, binary.LittleEndian, e.BytesInRes)
		binary.Write(bw, binary.LittleEndian, e.Offset)
		offset += e.BytesInRes
	}

	for _, p := range payloads {
		bw.Write(p)
	}
	return bw.Flush()
}

// WriteFile encodes images into a new file at path.
func WriteFile(path string, images []Image, payload Payload) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := Encode(out, images, payload); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// Decode parses the header and directory of an icon container held in data
// and checks that every payload lies inside it.
func Decode(data []byte) ([]DirEntry, error) {
	if len(data) < headerSize {
		return nil, ErrFormat
	}
	if binary.LittleEndian.Uint16(data[0:2]) != 0 || binary.LittleEndian.Uint16(data[2:4]) != iconType {
		return nil, ErrFormat
	}
	count := int(binary.LittleEndian.Uint16(data[4:6]))
	if len(data) < headerSize+count*entrySize {
		return nil, fmt.Errorf("%w: directory truncated", ErrFormat)
	}

	entries := make([]DirEntry, count)
	r := bytes.NewReader(data[headerSize:])
	for i := range entries {
		var raw [4]byte
		r.Read(raw[:])
		e := &entries[i]
		e.Width, e.Height, e.Colors = raw[0], raw[1], raw[2]
		binary.Read(r, binary.LittleEndian, &e.Planes)
		binary.Read(r, binary.LittleEndian, &e.BitCount)
		binary.Read(r, binary.LittleEndian, &e.BytesInRes)
		binary.Read(r, binary.LittleEndian, &e.Offset)
		if uint64(e.Offset)+uint64(e.BytesInRes) > uint64(len(data)) {
			return nil, fmt.Errorf("%w: entry %d exceeds file", ErrFormat, i)
		}
	}
	return entries, nil
}
