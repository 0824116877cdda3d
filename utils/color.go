package utils

import (
	"image/color"
	"strconv"
	"strings"
)

// ParseColor accepts "#RGB", "#RRGGBB" or "R,G,B" (decimal). ok is false when
// input is not one of those forms.
func ParseColor(input string) (c color.RGBA, ok bool) {
	input = strings.TrimSpace(input)
	if len(input) == 0 {
		return
	}

	if hex, found := strings.CutPrefix(input, "#"); found {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) != 6 {
			return
		}
		r, err := strconv.ParseUint(hex[0:2], 16, 8)
		if err != nil {
			return
		}
		g, err := strconv.ParseUint(hex[2:4], 16, 8)
		if err != nil {
			return
		}
		b, err := strconv.ParseUint(hex[4:6], 16, 8)
		if err != nil {
			return
		}
		return color.RGBA{uint8(r), uint8(g), uint8(b), 255}, true
	}

	parts := strings.Split(input, ",")
	if len(parts) != 3 {
		return
	}
	var v [3]uint8
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil || n < 0 || n > 255 {
			return
		}
		v[i] = uint8(n)
	}
	return color.RGBA{v[0], v[1], v[2], 255}, true
}
