package hal

import "image/color"

// unpack565 widens an RGB565 pixel by bit replication so that full-scale channels
// come back as 0xFF.
func unpack565(p uint16) color.RGBA {
	r5 := uint8(p>>11) & 0x1F
	g6 := uint8(p>>5) & 0x3F
	b5 := uint8(p) & 0x1F
	return color.RGBA{
		R: r5<<3 | r5>>2,
		G: g6<<2 | g6>>4,
		B: b5<<3 | b5>>2,
		A: 0xFF,
	}
}

func readPixel(buf []byte, off int) uint16 {
	return uint16(buf[off]) | uint16(buf[off+1])<<8
}
