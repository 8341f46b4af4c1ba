// Package affine provides 3x3 homogeneous-coordinate transforms for 2D shapes.
// Points are row vectors (x, y, 1) multiplied on the left of a matrix, so a
// chain like p.Mul(R).Mul(T) applies R first and T second.
package affine

import "math"

// Vec3 is a homogeneous 2D point or vector. W is kept at 1 for points.
type Vec3 struct {
	X, Y, W float64
}

// Point returns the homogeneous point (x, y, 1).
func Point(x, y float64) Vec3 {
	return Vec3{X: x, Y: y, W: 1}
}

// Mat3 is a row-major 3x3 matrix.
type Mat3 [3][3]float64

// Translator returns the matrix that adds (dx, dy) to a row-vector point.
func Translator(dx, dy float64) Mat3 {
	return Mat3{
		{1, 0, 0},
		{0, 1, 0},
		{dx, dy, 1},
	}
}

// Rotator returns the 2D rotation by angle radians in homogeneous form.
// Under the row-vector convention (0, 1) maps to (sin a, cos a).
func Rotator(angle float64) Mat3 {
	sin, cos := math.Sincos(angle)
	return Mat3{
		{cos, -sin, 0},
		{sin, cos, 0},
		{0, 0, 1},
	}
}

// Scaler returns a uniform scale of the x and y components.
// The homogeneous row is untouched so translation is never scaled.
func Scaler(s float64) Mat3 {
	return Mat3{
		{s, 0, 0},
		{0, s, 0},
		{0, 0, 1},
	}
}

// Mul returns m·o.
func (m Mat3) Mul(o Mat3) Mat3 {
	var r Mat3
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j]
		}
	}
	return r
}

// Mul returns the row vector v·m.
func (v Vec3) Mul(m Mat3) Vec3 {
	return Vec3{
		X: v.X*m[0][0] + v.Y*m[1][0] + v.W*m[2][0],
		Y: v.X*m[0][1] + v.Y*m[1][1] + v.W*m[2][1],
		W: v.X*m[0][2] + v.Y*m[1][2] + v.W*m[2][2],
	}
}

// AddXY adds the x and y components of o, leaving W as is.
func (v Vec3) AddXY(o Vec3) Vec3 {
	return Vec3{X: v.X + o.X, Y: v.Y + o.Y, W: v.W}
}

// Polygon is an ordered list of homogeneous points.
type Polygon []Vec3

// Transform returns a new polygon with every point multiplied by m.
func (p Polygon) Transform(m Mat3) Polygon {
	out := make(Polygon, len(p))
	for i, v := range p {
		out[i] = v.Mul(m)
	}
	return out
}
