// Package icns writes and reads Apple icon containers.
package icns

import (
	"bufio"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"os"
)

const (
	magic      = "icns"
	headerSize = 8
)

// ErrFormat is returned by Decode for input that is not an icns container.
var ErrFormat = errors.New("icns: invalid format")

// Entry is one icon element: a four-byte type code and its payload.
type Entry struct {
	Type string
	Data []byte
}

// Len is the serialized size of e including its eight-byte element header.
func (e Entry) Len() int {
	return headerSize + len(e.Data)
}

// Size returns the total file length declared in the header for entries.
func Size(entries []Entry) int {
	n := headerSize
	for _, e := range entries {
		n += e.Len()
	}
	return n
}

// Encode writes the header followed by every entry. Type codes must be four
// bytes long.
func Encode(w io.Writer, entries []Entry) error {
	for _, e := range entries {
		if len(e.Type) != 4 {
			return fmt.Errorf("icns: type code %q is not 4 bytes", e.Type)
		}
	}

	bw := bufio.NewWriter(w)
	bw.WriteString(magic)
	binary.Write(bw, binary.BigEndian, uint32(Size(entries)))
	for _, e := range entries {
		bw.WriteString(e.Type)
		binary.Write(bw, binary.BigEndian, uint32(len(e.Data)))
		bw.Write(e.Data)
	}
	return bw.Flush()
}

// WriteFile encodes entries into a new file at path.
func WriteFile(path string, entries []Entry) error {
	out, err := os.Create(path)
	if err != nil {
		return err
	}
	defer out.Close()

	if err := Encode(out, entries); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return out.Close()
}

// Decode parses data into its entries. The element lengths must add up to
// the header's total length.
func Decode(data []byte) ([]Entry, error) {
	if len(data) < headerSize || string(data[:4]) != magic {
		return nil, ErrFormat
	}
	total := binary.BigEndian.Uint32(data[4:8])
	if int64(total) != int64(len(data)) {
		return nil, fmt.Errorf("%w: header declares %d bytes, have %d", ErrFormat, total, len(data))
	}

	var entries []Entry
	for off := headerSize; off < len(data); {
		if len(data)-off < headerSize {
			return nil, fmt.Errorf("%w: truncated element at %d", ErrFormat, off)
		}
		n := binary.BigEndian.Uint32(data[off+4 : off+8])
		end := int64(off) + headerSize + int64(n)
		if end > int64(len(data)) {
			return nil, fmt.Errorf("%w: element at %d overruns file", ErrFormat, off)
		}
		entries = append(entries, Entry{
			Type: string(data[off : off+4]),
			Data: data[off+headerSize : end],
		})
		off = int(end)
	}
	return entries, nil
}
