package render

// Target is a pixel sink for the Canvas. Out-of-range writes are ignored.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// SpanTarget is a Target that can fill a horizontal run in one call.
// Canvas uses it for circle fills when available.
type SpanTarget interface {
	Target
	FillSpan(x0, x1, y int, c Color)
}

// RGB565Target views a little-endian RGB565 buffer. Stride is in bytes and may
// exceed 2*W.
type RGB565Target struct {
	Buf    []byte
	Stride int
	W, H   int
}

var _ SpanTarget = (*RGB565Target)(nil)

func (t *RGB565Target) Size() (w, h int) {
	if t == nil {
		return 0, 0
	}
	return t.W, t.H
}

// row returns the visible bytes of row y, or nil when y is off the target or
// the buffer is too short to hold it.
func (t *RGB565Target) row(y int) []byte {
	if t == nil || y < 0 || y >= t.H || t.W <= 0 || t.Stride < 2*t.W {
		return nil
	}
	start := y * t.Stride
	end := start + 2*t.W
	if end > len(t.Buf) {
		return nil
	}
	return t.Buf[start:end]
}

func (t *RGB565Target) SetPixel(x, y int, c Color) {
	r := t.row(y)
	if r == nil || x < 0 || 2*x >= len(r) {
		return
	}
	put565(r[2*x:], RGB565(c))
}

// FillSpan paints pixels x0..x1 inclusive of row y. The span is empty when
// x0 > x1.
func (t *RGB565Target) FillSpan(x0, x1, y int, c Color) {
	r := t.row(y)
	if r == nil {
		return
	}
	x0 = maxInt(x0, 0)
	x1 = minInt(x1, len(r)/2-1)
	p := RGB565(c)
	for x := x0; x <= x1; x++ {
		put565(r[2*x:], p)
	}
}

// Clear fills row 0 and copies it to the others.
func (t *RGB565Target) Clear(c Color) {
	first := t.row(0)
	if first == nil {
		return
	}
	t.FillSpan(0, t.W-1, 0, c)
	for y := 1; y < t.H; y++ {
		if r := t.row(y); r != nil {
			copy(r, first)
		}
	}
}

func put565(b []byte, p uint16) {
	b[0] = byte(p)
	b[1] = byte(p >> 8)
}

// RGB565 packs c as rrrrrggggggbbbbb. Alpha is dropped.
func RGB565(c Color) uint16 {
	return uint16(c.R>>3)<<11 | uint16(c.G>>2)<<5 | uint16(c.B>>3)
}
