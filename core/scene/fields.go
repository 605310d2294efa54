package scene

import "segview/core/geom"

// Field is one editable scalar of a State.
type Field struct {
	Group string // e.g. "Point"
	Axis  string // "x", "y" or "z"
	Value *geom.Scalar
	// Step is the change applied per frame while the field is being dragged.
	Step geom.Scalar
}

const (
	GroupPoint         = "Point"
	GroupSegmentOrigin = "Segment origin"
	GroupSegmentDiff   = "Segment diff"
	GroupCameraT       = "CameraT"
	GroupCameraR       = "CameraR"
)

// Fields lists the editable scalars of s in display order. The pointers alias s.
func Fields(s *State) []Field {
	out := make([]Field, 0, 15)
	add := func(group string, v *geom.Vector3, step geom.Scalar) {
		out = append(out,
			Field{Group: group, Axis: "x", Value: &v.X, Step: step},
			Field{Group: group, Axis: "y", Value: &v.Y, Step: step},
			Field{Group: group, Axis: "z", Value: &v.Z, Step: step},
		)
	}
	add(GroupPoint, &s.Point, 0.01)
	add(GroupSegmentOrigin, &s.Segment.Origin, 0.01)
	add(GroupSegmentDiff, &s.Segment.Diff, 0.01)
	add(GroupCameraT, &s.Camera.Translate, 0.1)
	add(GroupCameraR, &s.Camera.Rotate, 0.01)
	return out
}
