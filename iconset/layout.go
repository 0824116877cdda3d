package iconset

// Slot is one expected iconset file: its file name, the icns type code its
// pixels are stored under, and the pixel edge length.
type Slot struct {
	Filename string
	Type     string
	Size     int
}

// AppleLayout follows Apple's published icns type table.
var AppleLayout = []Slot{
	{"icon_16x16.png", "icp4", 16},
	{"icon_16x16@2x.png", "ic11", 32},
	{"icon_32x32.png", "icp5", 32},
	{"icon_32x32@2x.png", "ic12", 64},
	{"icon_128x128.png", "ic07", 128},
	{"icon_128x128@2x.png", "ic13", 256},
	{"icon_256x256.png", "ic08", 256},
	{"icon_256x256@2x.png", "ic14", 512},
	{"icon_512x512.png", "ic09", 512},
	{"icon_512x512@2x.png", "ic10", 1024},
}

// LegacyLayout is the table earlier builds of the app shipped with. It
// numbers ic07..ic14 in file order and then reuses ic09 and ic10 for the
// 512 and 1024 images, so those codes appear twice.
var LegacyLayout = []Slot{
	{"icon_16x16.png", "ic07", 16},
	{"icon_16x16@2x.png", "ic08", 32},
	{"icon_32x32.png", "ic09", 32},
	{"icon_32x32@2x.png", "ic10", 64},
	{"icon_128x128.png", "ic11", 128},
	{"icon_128x128@2x.png", "ic12", 256},
	{"icon_256x256.png", "ic13", 256},
	{"icon_256x256@2x.png", "ic14", 512},
	{"icon_512x512.png", "ic09", 512},
	{"icon_512x512@2x.png", "ic10", 1024},
}

// Layout returns LegacyLayout when legacy is set, AppleLayout otherwise.
func Layout(legacy bool) []Slot {
	if legacy {
		return LegacyLayout
	}
	return AppleLayout
}
