package geom

// Project returns the component of v1 along v2.
//
// A zero-length v2 has no direction; the result is the zero vector.
func Project(v1, v2 Vector3) Vector3 {
	d := Dot(v2, v2)
	if d == 0 {
		return Vector3{}
	}
	return Multiply(v2, Dot(v1, v2)/d)
}

// ClosestParam returns the segment parameter of the point on s closest to p,
// clamped to [0, 1]. A degenerate segment yields 0.
func ClosestParam(p Vector3, s Segment) Scalar {
	d := LengthSquared(s.Diff)
	if d == 0 {
		return 0
	}
	return Clamp01(Dot(Subtract(p, s.Origin), s.Diff) / d)
}

// ClosestPoint returns the point on s closest to p.
// A degenerate segment is treated as the single point s.Origin.
func ClosestPoint(p Vector3, s Segment) Vector3 {
	return Add(s.Origin, Multiply(s.Diff, ClosestParam(p, s)))
}

func Clamp01(v Scalar) Scalar {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
