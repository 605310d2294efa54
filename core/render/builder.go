package render

import (
	"math"

	"segview/core/geom"
	"segview/core/scene"
)

const (
	DefaultGridHalfWidth = 2.0
	// DefaultGridDivisions is the number of cells between the center line and an edge.
	DefaultGridDivisions = 10
	// SphereDivisions is the latitude and longitude subdivision of Sphere.
	SphereDivisions = 16
)

// Options controls what Frame emits.
type Options struct {
	GridHalfWidth geom.Scalar
	GridDivisions int

	// MarkerRadius is the pixel radius of the point markers.
	MarkerRadius int

	// SphereMarkers additionally draws a wireframe sphere of SphereRadius around the
	// reference point and the closest point.
	SphereMarkers bool
	SphereRadius  geom.Scalar
}

func DefaultOptions() Options {
	return Options{
		GridHalfWidth: DefaultGridHalfWidth,
		GridDivisions: DefaultGridDivisions,
		MarkerRadius:  4,
		SphereRadius:  0.01,
	}
}

// Builder emits screen-space primitives for world-space geometry.
type Builder struct {
	ViewProj geom.Matrix4x4
	Viewport geom.Matrix4x4
}

// Screen maps a world point to integer pixels. Coordinates are truncated and
// limited to ±ScreenBound.
func (b Builder) Screen(v geom.Vector3) (x, y int) {
	s := geom.ToScreen(v, b.ViewProj, b.Viewport)
	return pixel(s.X), pixel(s.Y)
}

// ScreenBound is the largest pixel magnitude Screen returns. Points near the
// camera plane project to huge values; the line still leaves through the
// correct edge once clipped.
const ScreenBound = 1 << 30

// pixel truncates v toward zero. NaN maps to +ScreenBound.
func pixel(v geom.Scalar) int {
	switch {
	case v != v:
		return ScreenBound
	case v >= ScreenBound:
		return ScreenBound
	case v <= -ScreenBound:
		return -ScreenBound
	}
	return int(v)
}

func (b Builder) line(l *List, p0, p1 geom.Vector3, c Color) {
	x0, y0 := b.Screen(p0)
	x1, y1 := b.Screen(p1)
	l.AddLine(x0, y0, x1, y1, c)
}

// Grid emits a square grid on the y=0 plane spanning [-half, half] on x and z.
//
// Lines are spaced half/div apart, so each axis gets 2*div+1 lines. Lines of
// constant x come first, then lines of constant z.
func (b Builder) Grid(l *List, half geom.Scalar, div int, c Color) {
	if div <= 0 {
		return
	}
	every := half / geom.Scalar(div)
	n := 2*div + 1
	for i := 0; i < n; i++ {
		x := -half + geom.Scalar(i)*every
		b.line(l, geom.V3(x, 0, -half), geom.V3(x, 0, half), c)
	}
	for i := 0; i < n; i++ {
		z := -half + geom.Scalar(i)*every
		b.line(l, geom.V3(-half, 0, z), geom.V3(half, 0, z), c)
	}
}

// Segment emits one line from s.Origin to s.Origin+s.Diff.
func (b Builder) Segment(l *List, s geom.Segment, c Color) {
	b.line(l, s.Origin, s.End(), c)
}

// Marker emits a filled circle of radius r pixels at p.
func (b Builder) Marker(l *List, p geom.Vector3, r int, c Color) {
	x, y := b.Screen(p)
	l.AddCircle(x, y, r, c)
}

// Sphere emits a UV wireframe: SphereDivisions latitude bands by SphereDivisions
// longitude slices, two edges per cell (one along the meridian, one along the
// parallel).
func (b Builder) Sphere(l *List, s geom.Sphere, c Color) {
	const div = SphereDivisions
	const latStep = math.Pi / div
	const lonStep = 2 * math.Pi / div

	at := func(theta, phi float64) geom.Vector3 {
		st, ct := math.Sincos(theta)
		sp, cp := math.Sincos(phi)
		r := float64(s.Radius)
		return geom.V3(
			s.Center.X+geom.Scalar(r*ct*cp),
			s.Center.Y+geom.Scalar(r*st),
			s.Center.Z+geom.Scalar(r*ct*sp),
		)
	}

	for lat := 0; lat < div; lat++ {
		theta := -math.Pi/2 + float64(lat)*latStep
		for lon := 0; lon < div; lon++ {
			phi := float64(lon) * lonStep
			a := at(theta, phi)
			b.line(l, a, at(theta+latStep, phi), c)
			b.line(l, a, at(theta, phi+lonStep), c)
		}
	}
}

// Frame rebuilds l for one frame: grid, segment, reference point, closest point,
// then the optional sphere markers.
func (b Builder) Frame(l *List, st *scene.State, res scene.Result, opts Options) {
	l.Reset()
	b.Grid(l, opts.GridHalfWidth, opts.GridDivisions, ColorGrid)
	b.Segment(l, st.Segment, ColorSegment)
	b.Marker(l, st.Point, opts.MarkerRadius, ColorPoint)
	b.Marker(l, res.Closest, opts.MarkerRadius, ColorClosest)
	if opts.SphereMarkers {
		b.Sphere(l, geom.Sphere{Center: st.Point, Radius: opts.SphereRadius}, ColorPoint)
		b.Sphere(l, geom.Sphere{Center: res.Closest, Radius: opts.SphereRadius}, ColorClosest)
	}
}
