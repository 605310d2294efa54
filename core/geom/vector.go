package geom

// Scalar is the numeric type used by geom.
type Scalar = float32

// Vector3 is a 3D vector or point.
type Vector3 struct {
	X, Y, Z Scalar
}

func V3(x, y, z Scalar) Vector3 { return Vector3{X: x, Y: y, Z: z} }

func Add(a, b Vector3) Vector3      { return Vector3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }
func Subtract(a, b Vector3) Vector3 { return Vector3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func Multiply(v Vector3, s Scalar) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

func Dot(a, b Vector3) Scalar { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

// LengthSquared is Dot(v, v). It is never negative.
func LengthSquared(v Vector3) Scalar { return Dot(v, v) }

// Segment spans Origin + t*Diff for t in [0, 1].
type Segment struct {
	Origin Vector3
	Diff   Vector3
}

// End returns Origin + Diff.
func (s Segment) End() Vector3 { return Add(s.Origin, s.Diff) }

// Degenerate reports whether Diff has zero length.
func (s Segment) Degenerate() bool { return LengthSquared(s.Diff) == 0 }

// Sphere is a center point and a non-negative radius.
type Sphere struct {
	Center Vector3
	Radius Scalar
}
