package render

import "math"

// Canvas is a software Painter that rasterizes into a Target.
//
// Lines are clipped to the target before stepping, so endpoints far off screen
// (points near the camera plane) cost no more than visible ones.
type Canvas struct {
	T Target
}

func NewCanvas(t Target) *Canvas { return &Canvas{T: t} }

func (c *Canvas) Clear(col Color) {
	if c == nil || c.T == nil {
		return
	}
	c.T.Clear(col)
}

func (c *Canvas) DrawLine(x0, y0, x1, y1 int, col Color) {
	if c == nil || c.T == nil {
		return
	}
	w, h := c.T.Size()
	if w <= 0 || h <= 0 {
		return
	}
	fx0, fy0, fx1, fy1, ok := clipLine(float64(x0), float64(y0), float64(x1), float64(y1), float64(w-1), float64(h-1))
	if !ok {
		return
	}
	bresenham(c.T, int(math.Round(fx0)), int(math.Round(fy0)), int(math.Round(fx1)), int(math.Round(fy1)), col)
}

func (c *Canvas) FillCircle(cx, cy, r int, col Color) {
	if c == nil || c.T == nil || r < 0 {
		return
	}
	w, h := c.T.Size()
	if cx+r < 0 || cy+r < 0 || cx-r >= w || cy-r >= h {
		return
	}
	for dy := -r; dy <= r; dy++ {
		y := cy + dy
		if y < 0 || y >= h {
			continue
		}
		dx := int(math.Sqrt(float64(r*r - dy*dy)))
		xa := maxInt(cx-dx, 0)
		xb := minInt(cx+dx, w-1)
		if st, ok := c.T.(SpanTarget); ok {
			st.FillSpan(xa, xb, y, col)
			continue
		}
		for x := xa; x <= xb; x++ {
			c.T.SetPixel(x, y, col)
		}
	}
}

func bresenham(t Target, x0, y0, x1, y1 int, c Color) {
	dx := absInt(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -absInt(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		t.SetPixel(x0, y0, c)
		if x0 == x1 && y0 == y1 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

const (
	outLeft = 1 << iota
	outRight
	outTop
	outBottom
)

func outCode(x, y, maxX, maxY float64) int {
	code := 0
	if x < 0 {
		code |= outLeft
	} else if x > maxX {
		code |= outRight
	}
	if y < 0 {
		code |= outTop
	} else if y > maxY {
		code |= outBottom
	}
	return code
}

// clipLine clips a segment to [0,maxX]x[0,maxY] (Cohen-Sutherland).
func clipLine(x0, y0, x1, y1, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	c0 := outCode(x0, y0, maxX, maxY)
	c1 := outCode(x1, y1, maxX, maxY)
	for i := 0; i < 8; i++ {
		if c0|c1 == 0 {
			return x0, y0, x1, y1, true
		}
		if c0&c1 != 0 {
			return 0, 0, 0, 0, false
		}
		out := c0
		if out == 0 {
			out = c1
		}
		var x, y float64
		switch {
		case out&outBottom != 0:
			x = x0 + (x1-x0)*(maxY-y0)/(y1-y0)
			y = maxY
		case out&outTop != 0:
			x = x0 + (x1-x0)*(0-y0)/(y1-y0)
			y = 0
		case out&outRight != 0:
			y = y0 + (y1-y0)*(maxX-x0)/(x1-x0)
			x = maxX
		default:
			y = y0 + (y1-y0)*(0-x0)/(x1-x0)
			x = 0
		}
		if out == c0 {
			x0, y0 = x, y
			c0 = outCode(x0, y0, maxX, maxY)
		} else {
			x1, y1 = x, y
			c1 = outCode(x1, y1, maxX, maxY)
		}
	}
	// Rounding can leave an endpoint a hair outside; snap it in.
	return clampF(x0, maxX), clampF(y0, maxY), clampF(x1, maxX), clampF(y1, maxY), true
}

func clampF(v, hi float64) float64 {
	if v < 0 {
		return 0
	}
	if v > hi {
		return hi
	}
	return v
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
