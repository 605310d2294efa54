package render

// Color is an RGBA color in 8-bit channels.
type Color struct {
	R, G, B, A uint8
}

func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xFF} }

// Hex unpacks a 0xRRGGBBAA value.
func Hex(v uint32) Color {
	return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}
}

var (
	ColorGrid    = Hex(0xAAAAAAFF)
	ColorSegment = Hex(0xFFFFFFFF)
	ColorPoint   = Hex(0xFF0000FF)
	ColorClosest = Hex(0x000000FF)
	ColorClear   = RGB(0x3a, 0x3f, 0x4e)
)
