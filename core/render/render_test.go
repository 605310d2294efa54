package render

import (
	"math"
	"testing"

	"segview/core/geom"
	"segview/core/scene"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type call struct {
	kind PrimKind
	args [5]int
	c    Color
}

type recorder struct {
	calls []call
}

func (r *recorder) DrawLine(x0, y0, x1, y1 int, c Color) {
	r.calls = append(r.calls, call{kind: PrimLine, args: [5]int{x0, y0, x1, y1}, c: c})
}

func (r *recorder) FillCircle(x, y, rad int, c Color) {
	r.calls = append(r.calls, call{kind: PrimCircle, args: [5]int{x, y, rad}, c: c})
}

// topDown projects x to screen x and z to screen y on a 400x400 viewport.
func topDown() Builder {
	var vp geom.Matrix4x4
	vp[0][0] = 0.5
	vp[2][1] = 0.5
	vp[3][3] = 1
	return Builder{ViewProj: vp, Viewport: geom.MakeViewportMatrix(0, 0, 400, 400, 0, 1)}
}

func TestGridLineCount(t *testing.T) {
	var l List
	topDown().Grid(&l, DefaultGridHalfWidth, DefaultGridDivisions, ColorGrid)

	require.Equal(t, 42, l.Len())
	assert.Equal(t, 42, l.count(PrimLine))

	for i, p := range l.Prims[:21] {
		assert.Equalf(t, p.X0, p.X1, "x-line %d not constant x", i)
		assert.Equalf(t, 400, p.Y0, "x-line %d start", i)
		assert.Equalf(t, 0, p.Y1, "x-line %d end", i)
	}
	for i, p := range l.Prims[21:] {
		assert.Equalf(t, p.Y0, p.Y1, "z-line %d not constant z", i)
		assert.Equalf(t, 0, p.X0, "z-line %d start", i)
		assert.Equalf(t, 400, p.X1, "z-line %d end", i)
	}
	assert.Equal(t, 0, l.Prims[0].X0)
	assert.Equal(t, 400, l.Prims[21].Y0)
}

func TestGridNoDivisions(t *testing.T) {
	var l List
	topDown().Grid(&l, 2, 0, ColorGrid)
	assert.Equal(t, 0, l.Len())
}

func TestScreenTruncates(t *testing.T) {
	b := Builder{ViewProj: geom.Identity(), Viewport: geom.Identity()}
	x, y := b.Screen(geom.V3(3.9, -2.7, 0))
	assert.Equal(t, 3, x)
	assert.Equal(t, -2, y)
}

func TestScreenClampsFarPoints(t *testing.T) {
	b := Builder{ViewProj: geom.Identity(), Viewport: geom.Identity()}

	x, y := b.Screen(geom.V3(1e30, -1e30, 0))
	assert.Equal(t, ScreenBound, x)
	assert.Equal(t, -ScreenBound, y)

	x, _ = b.Screen(geom.V3(geom.Scalar(math.NaN()), 0, 0))
	assert.Equal(t, ScreenBound, x)

	// A line heading to +1e30 must leave through the right edge.
	tg := newTarget(8, 8)
	x, _ = b.Screen(geom.V3(1e30, 0, 0))
	NewCanvas(tg).DrawLine(4, 4, x, 4, ColorSegment)
	assert.Equal(t, RGB565(ColorSegment), tg.at(7, 4))
	assert.Equal(t, uint16(0), tg.at(0, 4))
}

func TestSphereEdgeCount(t *testing.T) {
	var l List
	b := topDown()
	b.Sphere(&l, geom.Sphere{Center: geom.V3(0, 0, 0), Radius: 1}, ColorPoint)
	assert.Equal(t, 2*SphereDivisions*SphereDivisions, l.count(PrimLine))
	assert.Equal(t, 512, l.Len())
}

func TestFrameOrder(t *testing.T) {
	st := scene.Default()
	res := st.Evaluate()
	b := Builder{ViewProj: res.ViewProj, Viewport: geom.MakeViewportMatrix(0, 0, 1280, 720, 0, 1)}

	var l List
	b.Frame(&l, &st, res, DefaultOptions())
	require.Equal(t, 45, l.Len())
	for _, p := range l.Prims[:42] {
		assert.Equal(t, PrimLine, p.Kind)
		assert.Equal(t, ColorGrid, p.Color)
	}
	seg := l.Prims[42]
	assert.Equal(t, PrimLine, seg.Kind)
	assert.Equal(t, ColorSegment, seg.Color)
	x0, y0 := b.Screen(st.Segment.Origin)
	x1, y1 := b.Screen(st.Segment.End())
	assert.Equal(t, [4]int{x0, y0, x1, y1}, [4]int{seg.X0, seg.Y0, seg.X1, seg.Y1})
	assert.NotEqual(t, [2]int{x0, y0}, [2]int{x1, y1})

	assert.Equal(t, PrimCircle, l.Prims[43].Kind)
	assert.Equal(t, ColorPoint, l.Prims[43].Color)
	px, py := b.Screen(st.Point)
	assert.Equal(t, [2]int{px, py}, [2]int{l.Prims[43].X0, l.Prims[43].Y0})
	assert.Equal(t, PrimCircle, l.Prims[44].Kind)
	assert.Equal(t, ColorClosest, l.Prims[44].Color)

	x, y := b.Screen(res.Closest)
	assert.Equal(t, [2]int{x, y}, [2]int{l.Prims[44].X0, l.Prims[44].Y0})

	opts := DefaultOptions()
	opts.SphereMarkers = true
	b.Frame(&l, &st, res, opts)
	assert.Equal(t, 45+2*512, l.Len())
}

func TestSubmitReplaysInOrder(t *testing.T) {
	var l List
	l.AddLine(1, 2, 3, 4, ColorGrid)
	l.AddCircle(5, 6, 7, ColorPoint)
	l.AddLine(8, 9, 10, 11, ColorSegment)

	var r recorder
	l.Submit(&r)
	require.Len(t, r.calls, 3)
	assert.Equal(t, call{kind: PrimLine, args: [5]int{1, 2, 3, 4}, c: ColorGrid}, r.calls[0])
	assert.Equal(t, call{kind: PrimCircle, args: [5]int{5, 6, 7}, c: ColorPoint}, r.calls[1])
	assert.Equal(t, call{kind: PrimLine, args: [5]int{8, 9, 10, 11}, c: ColorSegment}, r.calls[2])

	l.Reset()
	assert.Equal(t, 0, l.Len())
	assert.GreaterOrEqual(t, cap(l.Prims), 3)
}

func TestHex(t *testing.T) {
	assert.Equal(t, Color{R: 0x11, G: 0x22, B: 0x33, A: 0x44}, Hex(0x11223344))
	assert.Equal(t, RGB(0xAA, 0xAA, 0xAA), ColorGrid)
}

func newTarget(w, h int) *RGB565Target {
	return &RGB565Target{Buf: make([]byte, w*h*2), Stride: w * 2, W: w, H: h}
}

func (t *RGB565Target) at(x, y int) uint16 {
	off := y*t.Stride + x*2
	return uint16(t.Buf[off]) | uint16(t.Buf[off+1])<<8
}

func TestCanvasLineClipped(t *testing.T) {
	tg := newTarget(8, 8)
	c := NewCanvas(tg)
	white := RGB565(ColorSegment)

	c.DrawLine(-100, 3, 100, 3, ColorSegment)
	for x := 0; x < 8; x++ {
		assert.Equalf(t, white, tg.at(x, 3), "x=%d", x)
	}
	assert.Equal(t, uint16(0), tg.at(0, 2))

	c.DrawLine(-1e9, -1e9, 1e9, 1e9, ColorSegment)
	for i := 0; i < 8; i++ {
		assert.Equalf(t, white, tg.at(i, i), "diag %d", i)
	}

	tg.Clear(Color{})
	c.DrawLine(-10, -10, -1, 20, ColorSegment)
	for i := 0; i < len(tg.Buf); i++ {
		require.Zero(t, tg.Buf[i])
	}
}

func TestCanvasFillCircle(t *testing.T) {
	tg := newTarget(8, 8)
	c := NewCanvas(tg)
	red := RGB565(ColorPoint)

	c.FillCircle(4, 4, 1, ColorPoint)
	for _, p := range [][2]int{{4, 3}, {3, 4}, {4, 4}, {5, 4}, {4, 5}} {
		assert.Equalf(t, red, tg.at(p[0], p[1]), "%v", p)
	}
	assert.Equal(t, uint16(0), tg.at(3, 3))

	c.FillCircle(0, 0, 3, ColorPoint)
	assert.Equal(t, red, tg.at(0, 0))
	c.FillCircle(-50, -50, 3, ColorPoint)
}

func TestRGB565TargetBounds(t *testing.T) {
	tg := newTarget(2, 2)
	tg.SetPixel(-1, 0, ColorSegment)
	tg.SetPixel(2, 0, ColorSegment)
	tg.SetPixel(0, 2, ColorSegment)
	for _, b := range tg.Buf {
		assert.Zero(t, b)
	}

	tg.Clear(ColorSegment)
	assert.Equal(t, uint16(0xFFFF), tg.at(1, 1))

	var nilTarget *RGB565Target
	nilTarget.SetPixel(0, 0, ColorSegment)
	nilTarget.Clear(ColorSegment)
}

func TestRGB565TargetSpansAndStride(t *testing.T) {
	// 3 visible pixels per row plus 2 bytes of row padding.
	tg := &RGB565Target{Buf: make([]byte, 8*2), Stride: 8, W: 3, H: 2}
	tg.Clear(ColorSegment)
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equalf(t, uint16(0xFFFF), tg.at(x, y), "(%d,%d)", x, y)
		}
		assert.Zerof(t, tg.Buf[y*8+6], "padding row %d", y)
	}

	tg.Clear(Color{})
	tg.FillSpan(-5, 1, 1, ColorSegment)
	assert.Equal(t, uint16(0xFFFF), tg.at(0, 1))
	assert.Equal(t, uint16(0xFFFF), tg.at(1, 1))
	assert.Equal(t, uint16(0), tg.at(2, 1))

	tg.Clear(Color{})
	tg.FillSpan(2, 1, 0, ColorSegment)
	tg.FillSpan(0, 2, 5, ColorSegment)
	for _, b := range tg.Buf {
		require.Zero(t, b)
	}

	// Rows of a circle that end left of the target paint nothing.
	big := newTarget(8, 8)
	NewCanvas(big).FillCircle(-3, 4, 3, ColorPoint)
	assert.Equal(t, RGB565(ColorPoint), big.at(0, 4))
	assert.Equal(t, uint16(0), big.at(0, 1))
	assert.Equal(t, uint16(0), big.at(0, 7))
}
