package vmath

import "math"

// Matrix3x2 is a 2D affine transform in row-vector form:
//
//	x' = x*M11 + y*M21 + M31
//	y' = x*M12 + y*M22 + M32
type Matrix3x2 struct {
	M11, M12 float64
	M21, M22 float64
	M31, M32 float64
}

// Identity3x2 returns the identity transform.
func Identity3x2() Matrix3x2 {
	return Matrix3x2{M11: 1, M22: 1}
}

// Translation3x2 returns a translation by (x, y).
func Translation3x2(x, y float64) Matrix3x2 {
	return Matrix3x2{M11: 1, M22: 1, M31: x, M32: y}
}

// Scale3x2 returns a scale by (sx, sy) about the origin.
func Scale3x2(sx, sy float64) Matrix3x2 {
	return Matrix3x2{M11: sx, M22: sy}
}

// Rotation3x2 returns a rotation by radians about the origin.
// Positive angles rotate +X towards +Y.
func Rotation3x2(radians float64) Matrix3x2 {
	sin, cos := math.Sincos(radians)
	return Matrix3x2{M11: cos, M12: sin, M21: -sin, M22: cos}
}

// IsIdentity reports whether m is exactly the identity.
func (m Matrix3x2) IsIdentity() bool {
	return m == Identity3x2()
}

// Mul returns the transform that applies m and then n.
func (m Matrix3x2) Mul(n Matrix3x2) Matrix3x2 {
	return Matrix3x2{
		M11: m.M11*n.M11 + m.M12*n.M21,
		M12: m.M11*n.M12 + m.M12*n.M22,
		M21: m.M21*n.M11 + m.M22*n.M21,
		M22: m.M21*n.M12 + m.M22*n.M22,
		M31: m.M31*n.M11 + m.M32*n.M21 + n.M31,
		M32: m.M31*n.M12 + m.M32*n.M22 + n.M32,
	}
}

// Determinant returns the determinant of the linear part.
func (m Matrix3x2) Determinant() float64 {
	return m.M11*m.M22 - m.M21*m.M12
}

// Invert returns the inverse of m. ok is false, and the identity is
// returned, when m is singular.
func (m Matrix3x2) Invert() (inv Matrix3x2, ok bool) {
	det := m.Determinant()
	if det > -1e-12 && det < 1e-12 {
		return Identity3x2(), false
	}
	invDet := 1.0 / det
	a := m.M22 * invDet
	b := -m.M12 * invDet
	c := -m.M21 * invDet
	d := m.M11 * invDet
	return Matrix3x2{
		M11: a, M12: b,
		M21: c, M22: d,
		M31: -(a*m.M31 + c*m.M32),
		M32: -(b*m.M31 + d*m.M32),
	}, true
}

// TransformPoint applies m to p.
func (m Matrix3x2) TransformPoint(p Vec2) Vec2 {
	return Vec2{
		X: p.X*m.M11 + p.Y*m.M21 + m.M31,
		Y: p.X*m.M12 + p.Y*m.M22 + m.M32,
	}
}

// ScaleFactor returns the geometric mean of the axis scales, used to
// convert distances measured in the source space.
func (m Matrix3x2) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(m.Determinant()))
}

// TransformRect returns the axis-aligned bounds of r after transformation.
func (m Matrix3x2) TransformRect(r Rect) Rect {
	corners := [4]Vec2{
		m.TransformPoint(Vec2{r.X, r.Y}),
		m.TransformPoint(Vec2{r.X + r.Width, r.Y}),
		m.TransformPoint(Vec2{r.X, r.Y + r.Height}),
		m.TransformPoint(Vec2{r.X + r.Width, r.Y + r.Height}),
	}
	out := RectFromPoints(corners[0], corners[1])
	out = out.Union(RectFromPoints(corners[2], corners[3]))
	return out
}

// Matrix4x4 is a 3D transform in row-vector form.
type Matrix4x4 struct {
	M11, M12, M13, M14 float64
	M21, M22, M23, M24 float64
	M31, M32, M33, M34 float64
	M41, M42, M43, M44 float64
}

// Identity4x4 returns the identity transform.
func Identity4x4() Matrix4x4 {
	return Matrix4x4{M11: 1, M22: 1, M33: 1, M44: 1}
}

// Affine2D projects m onto the XY plane.
func (m Matrix4x4) Affine2D() Matrix3x2 {
	return Matrix3x2{
		M11: m.M11, M12: m.M12,
		M21: m.M21, M22: m.M22,
		M31: m.M41, M32: m.M42,
	}
}
