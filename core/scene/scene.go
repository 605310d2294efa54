// Package scene holds the per-frame camera and scene parameters.
//
// A State is owned by the host loop and passed by pointer; the geometry core only
// reads it. Nothing is persisted: a process always starts from Default, optionally
// overridden once at start-up by a YAML file.
package scene

import "segview/core/geom"

// Camera is the camera placement: a translation and Euler angles in radians.
type Camera struct {
	Translate geom.Vector3
	Rotate    geom.Vector3
}

// ViewProjection returns the camera's view-projection matrix.
func (c Camera) ViewProjection() geom.Matrix4x4 {
	return geom.MakeViewProjectionMatrix(c.Translate, c.Rotate)
}

// State is everything the user can edit between frames.
type State struct {
	Camera  Camera
	Segment geom.Segment
	Point   geom.Vector3
}

// Default returns the start-up state.
func Default() State {
	return State{
		Camera: Camera{
			Translate: geom.V3(0.2, -8.0, 20.0),
			Rotate:    geom.V3(0.4, 3.15, 0.0),
		},
		Segment: geom.Segment{
			Origin: geom.V3(-1.5, 0.5, 0.3),
			Diff:   geom.V3(3.0, -2.0, 2.0),
		},
		Point: geom.V3(-1.5, -0.3, 0.6),
	}
}

// Result is what the core derives from a State each frame.
type Result struct {
	ViewProj geom.Matrix4x4
	// Projection is (Point - Segment.Origin) projected onto Segment.Diff.
	Projection geom.Vector3
	Closest    geom.Vector3
}

// Evaluate recomputes the view-projection matrix and the segment queries.
func (s *State) Evaluate() Result {
	return Result{
		ViewProj:   s.Camera.ViewProjection(),
		Projection: geom.Project(geom.Subtract(s.Point, s.Segment.Origin), s.Segment.Diff),
		Closest:    geom.ClosestPoint(s.Point, s.Segment),
	}
}
