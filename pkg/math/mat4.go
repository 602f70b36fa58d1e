package math

import "math"

// Mat4 is a 4x4 matrix in column-major order (OpenGL compatible).
// Layout: [m0 m4 m8  m12]
//
//	[m1 m5 m9  m13]
//	[m2 m6 m10 m14]
//	[m3 m7 m11 m15]
type Mat4 [16]float32

// Identity returns an identity matrix.
func Identity() Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Perspective returns a perspective projection matrix.
// fovY is in radians, aspect is width/height.
func Perspective(fovY, aspect, near, far float64) Mat4 {
	f := 1.0 / math.Tan(fovY/2.0)
	nf := 1.0 / (near - far)

	return Mat4{
		float32(f / aspect), 0, 0, 0,
		0, float32(f), 0, 0,
		0, 0, float32((far + near) * nf), -1,
		0, 0, float32(2 * far * near * nf), 0,
	}
}

// Translate returns a translation matrix.
func Translate(v Vec3) Mat4 {
	return Mat4{
		1, 0, 0, 0,
		0, 1, 0, 0,
		0, 0, 1, 0,
		float32(v.X), float32(v.Y), float32(v.Z), 1,
	}
}

// RotateX returns a rotation matrix around the X axis (radians).
func RotateX(angle float64) Mat4 {
	c := float32(math.Cos(angle))
	s := float32(math.Sin(angle))

	return Mat4{
		1, 0, 0, 0,
		0, c, s, 0,
		0, -s, c, 0,
		0, 0, 0, 1,
	}
}

// RotateY returns a rotation matrix around the Y axis (radians).
func RotateY(angle float64) Mat4 {
	c := float32(math.Cos(angle))
	s := float32(math.Sin(angle))

	return Mat4{
		c, 0, -s, 0,
		0, 1, 0, 0,
		s, 0, c, 0,
		0, 0, 0, 1,
	}
}

// RotateZ returns a rotation matrix around the Z axis (radians).
func RotateZ(angle float64) Mat4 {
	c := float32(math.Cos(angle))
	s := float32(math.Sin(angle))

	return Mat4{
		c, s, 0, 0,
		-s, c, 0, 0,
		0, 0, 1, 0,
		0, 0, 0, 1,
	}
}

// Euler returns the rotation matrix for Euler angles applied in XYZ order,
// i.e. Rx * Ry * Rz.
func Euler(r Vec3) Mat4 {
	return RotateX(r.X).Mul(RotateY(r.Y)).Mul(RotateZ(r.Z))
}

// Compose returns the model matrix Translate(position) * Euler(rotation).
func Compose(position, rotation Vec3) Mat4 {
	return Translate(position).Mul(Euler(rotation))
}

// Mul multiplies this matrix by another (m * other).
func (m Mat4) Mul(other Mat4) Mat4 {
	var result Mat4
	for col := 0; col < 4; col++ {
		for row := 0; row < 4; row++ {
			result[col*4+row] =
				m[0*4+row]*other[col*4+0] +
					m[1*4+row]*other[col*4+1] +
					m[2*4+row]*other[col*4+2] +
					m[3*4+row]*other[col*4+3]
		}
	}
	return result
}

// InverseRigid inverts a matrix made only of rotation and translation.
// The rotation block is transposed and the translation rotated back.
func (m Mat4) InverseRigid() Mat4 {
	tx, ty, tz := m[12], m[13], m[14]
	return Mat4{
		m[0], m[4], m[8], 0,
		m[1], m[5], m[9], 0,
		m[2], m[6], m[10], 0,
		-(m[0]*tx + m[1]*ty + m[2]*tz),
		-(m[4]*tx + m[5]*ty + m[6]*tz),
		-(m[8]*tx + m[9]*ty + m[10]*tz),
		1,
	}
}

// TransformPoint transforms a 3D point by this matrix (assumes w=1).
func (m Mat4) TransformPoint(p Vec3) Vec3 {
	x := float64(m[0])*p.X + float64(m[4])*p.Y + float64(m[8])*p.Z + float64(m[12])
	y := float64(m[1])*p.X + float64(m[5])*p.Y + float64(m[9])*p.Z + float64(m[13])
	z := float64(m[2])*p.X + float64(m[6])*p.Y + float64(m[10])*p.Z + float64(m[14])
	w := float64(m[3])*p.X + float64(m[7])*p.Y + float64(m[11])*p.Z + float64(m[15])
	if w != 0 && w != 1 {
		return Vec3{x / w, y / w, z / w}
	}
	return Vec3{x, y, z}
}

// Ptr returns a pointer to the first element (for OpenGL uniform calls).
func (m *Mat4) Ptr() *float32 {
	return &m[0]
}
