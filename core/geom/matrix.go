package geom

import "math"

// Matrix4x4 is a row-major 4x4 matrix, m[row][col].
//
// Points are row vectors multiplied on the left, so the translation lives in
// row 3 and MultiplyMatrix(a, b) applies a first, then b.
type Matrix4x4 [4][4]Scalar

func Identity() Matrix4x4 {
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MultiplyMatrix returns a * b.
func MultiplyMatrix(a, b Matrix4x4) Matrix4x4 {
	var out Matrix4x4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < 4; k++ {
				out[i][j] += a[i][k] * b[k][j]
			}
		}
	}
	return out
}

// Transform applies m to the homogeneous point (v, 1).
//
// When the resulting w is non-zero x, y and z are divided by it. When w is zero the
// divide is skipped and the raw values are returned.
func Transform(v Vector3, m Matrix4x4) Vector3 {
	x := v.X*m[0][0] + v.Y*m[1][0] + v.Z*m[2][0] + m[3][0]
	y := v.X*m[0][1] + v.Y*m[1][1] + v.Z*m[2][1] + m[3][1]
	z := v.X*m[0][2] + v.Y*m[1][2] + v.Z*m[2][2] + m[3][2]
	w := v.X*m[0][3] + v.Y*m[1][3] + v.Z*m[2][3] + m[3][3]
	if w != 0 {
		x /= w
		y /= w
		z /= w
	}
	return Vector3{X: x, Y: y, Z: z}
}

// ToScreen maps a world point to pixels: world → clip with viewProj, then
// clip → screen with viewport.
func ToScreen(v Vector3, viewProj, viewport Matrix4x4) Vector3 {
	return Transform(Transform(v, viewProj), viewport)
}

func sincos(rad Scalar) (s, c Scalar) {
	sf, cf := math.Sincos(float64(rad))
	return Scalar(sf), Scalar(cf)
}

func MakeRotateXMatrix(rad Scalar) Matrix4x4 {
	s, c := sincos(rad)
	return Matrix4x4{
		{1, 0, 0, 0},
		{0, c, -s, 0},
		{0, s, c, 0},
		{0, 0, 0, 1},
	}
}

func MakeRotateYMatrix(rad Scalar) Matrix4x4 {
	s, c := sincos(rad)
	return Matrix4x4{
		{c, 0, s, 0},
		{0, 1, 0, 0},
		{-s, 0, c, 0},
		{0, 0, 0, 1},
	}
}

func MakeRotateZMatrix(rad Scalar) Matrix4x4 {
	s, c := sincos(rad)
	return Matrix4x4{
		{c, -s, 0, 0},
		{s, c, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// MakeRotateMatrix composes the Euler rotation as Z·X·Y.
//
// The order defines the camera's angle convention; changing it changes what every
// rotate value means.
func MakeRotateMatrix(rotate Vector3) Matrix4x4 {
	zx := MultiplyMatrix(MakeRotateZMatrix(rotate.Z), MakeRotateXMatrix(rotate.X))
	return MultiplyMatrix(zx, MakeRotateYMatrix(rotate.Y))
}

func MakeTranslateMatrix(t Vector3) Matrix4x4 {
	m := Identity()
	m[3][0] = t.X
	m[3][1] = t.Y
	m[3][2] = t.Z
	return m
}
