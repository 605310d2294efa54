package geom

import "math"

// Projection holds the perspective constants of the camera.
type Projection struct {
	FOVYDeg Scalar
	Aspect  Scalar
	Near    Scalar
	Far     Scalar
}

// DefaultProjection is the fixed projection used by MakeViewProjectionMatrix.
var DefaultProjection = Projection{
	FOVYDeg: 60,
	Aspect:  1280.0 / 720.0,
	Near:    0.1,
	Far:     100,
}

// Matrix returns the perspective matrix for p.
func (p Projection) Matrix() Matrix4x4 {
	return MakePerspectiveMatrix(p.FOVYDeg*(math.Pi/180), p.Aspect, p.Near, p.Far)
}

// MakePerspectiveMatrix builds a perspective matrix that maps depth [0, far] to
// [0, 1] (not the [-1, 1] GL range).
//
// The layout is kept entry for entry: m[2][3] carries -near*far/(far-near) and
// m[3][2] is 1.
func MakePerspectiveMatrix(fovYRad, aspect, near, far Scalar) Matrix4x4 {
	f := Scalar(1 / math.Tan(float64(fovYRad)/2))
	var m Matrix4x4
	m[0][0] = f / aspect
	m[1][1] = f
	m[2][2] = far / (far - near)
	m[2][3] = (-near * far) / (far - near)
	m[3][2] = 1
	return m
}

// MakeViewMatrix returns the camera view matrix: translate by -translate, then
// rotate by MakeRotateMatrix(rotate).
func MakeViewMatrix(translate, rotate Vector3) Matrix4x4 {
	t := MakeTranslateMatrix(Multiply(translate, -1))
	return MultiplyMatrix(t, MakeRotateMatrix(rotate))
}

// MakeViewProjectionMatrix returns view * DefaultProjection for a camera placed at
// translate with Euler angles rotate (radians).
func MakeViewProjectionMatrix(translate, rotate Vector3) Matrix4x4 {
	return MultiplyMatrix(MakeViewMatrix(translate, rotate), DefaultProjection.Matrix())
}

// MakeViewportMatrix maps normalized device coordinates to pixels.
// Screen y grows downward.
func MakeViewportMatrix(left, top, width, height, near, far Scalar) Matrix4x4 {
	var m Matrix4x4
	m[0][0] = width / 2
	m[1][1] = -height / 2
	m[2][2] = far - near
	m[3][0] = left + width/2
	m[3][1] = top + height/2
	m[3][2] = near
	m[3][3] = 1
	return m
}
