package vmath

import (
	"math"
)

// Quat is a unit quaternion representing a 3D orientation
type Quat struct {
	X, Y, Z, W float64
}

// QIdentity returns the identity orientation
func QIdentity() Quat {
	return Quat{W: 1}
}

func QMul(a, b Quat) Quat {
	return Quat{
		X: a.W*b.X + a.X*b.W + a.Y*b.Z - a.Z*b.Y,
		Y: a.W*b.Y - a.X*b.Z + a.Y*b.W + a.Z*b.X,
		Z: a.W*b.Z + a.X*b.Y - a.Y*b.X + a.Z*b.W,
		W: a.W*b.W - a.X*b.X - a.Y*b.Y - a.Z*b.Z,
	}
}

func QDot(a, b Quat) float64 {
	return a.X*b.X + a.Y*b.Y + a.Z*b.Z + a.W*b.W
}

func QNormalize(q Quat) Quat {
	mag := math.Sqrt(QDot(q, q))
	if mag == 0 {
		return QIdentity()
	}
	inv := 1.0 / mag
	return Quat{q.X * inv, q.Y * inv, q.Z * inv, q.W * inv}
}

// QConjugate returns the inverse rotation for a unit quaternion
func QConjugate(q Quat) Quat {
	return Quat{-q.X, -q.Y, -q.Z, q.W}
}

// QRotate applies the rotation to a vector
func QRotate(q Quat, v Vec3) Vec3 {
	// v' = v + 2*cross(q.xyz, cross(q.xyz, v) + w*v)
	u := Vec3{q.X, q.Y, q.Z}
	t := V3Scale(V3Cross(u, v), 2)
	return V3Add(v, V3Add(V3Scale(t, q.W), V3Cross(u, t)))
}

// QForward returns the rotated forward axis (-Z, camera convention)
func QForward(q Quat) Vec3 {
	return QRotate(q, Vec3{0, 0, -1})
}

// qFromBasis builds a quaternion from orthonormal basis column vectors
func qFromBasis(x, y, z Vec3) Quat {
	trace := x.X + y.Y + z.Z

	var q Quat
	switch {
	case trace > 0:
		s := 0.5 / math.Sqrt(trace+1.0)
		q = Quat{
			X: (y.Z - z.Y) * s,
			Y: (z.X - x.Z) * s,
			Z: (x.Y - y.X) * s,
			W: 0.25 / s,
		}
	case x.X > y.Y && x.X > z.Z:
		s := 2.0 * math.Sqrt(1.0+x.X-y.Y-z.Z)
		q = Quat{
			X: 0.25 * s,
			Y: (y.X + x.Y) / s,
			Z: (z.X + x.Z) / s,
			W: (y.Z - z.Y) / s,
		}
	case y.Y > z.Z:
		s := 2.0 * math.Sqrt(1.0+y.Y-x.X-z.Z)
		q = Quat{
			X: (y.X + x.Y) / s,
			Y: 0.25 * s,
			Z: (z.Y + y.Z) / s,
			W: (z.X - x.Z) / s,
		}
	default:
		s := 2.0 * math.Sqrt(1.0+z.Z-x.X-y.Y)
		q = Quat{
			X: (z.X + x.Z) / s,
			Y: (z.Y + y.Z) / s,
			Z: 0.25 * s,
			W: (x.Y - y.X) / s,
		}
	}
	return QNormalize(q)
}

// QLookAt returns the orientation of an eye looking at target with the given up
// reference. Right-handed, forward along -Z. Degenerate input (eye == target, or
// up parallel to the view direction) falls back to identity
func QLookAt(eye, target, up Vec3) Quat {
	z := V3Sub(eye, target)
	if V3MagSq(z) == 0 {
		return QIdentity()
	}
	z = V3Normalize(z)

	x := V3Cross(up, z)
	if V3MagSq(x) < 1e-12 {
		return QIdentity()
	}
	x = V3Normalize(x)
	y := V3Cross(z, x)

	return qFromBasis(x, y, z)
}

// QSlerp spherically interpolates between orientations, t unclamped
// Takes the shortest arc; falls back to nlerp for nearly parallel inputs
func QSlerp(a, b Quat, t float64) Quat {
	cosTheta := QDot(a, b)
	if cosTheta < 0 {
		b = Quat{-b.X, -b.Y, -b.Z, -b.W}
		cosTheta = -cosTheta
	}

	if cosTheta > 0.9995 {
		return QNormalize(Quat{
			a.X + (b.X-a.X)*t,
			a.Y + (b.Y-a.Y)*t,
			a.Z + (b.Z-a.Z)*t,
			a.W + (b.W-a.W)*t,
		})
	}

	theta := math.Acos(cosTheta)
	sinTheta := math.Sin(theta)
	wa := math.Sin((1-t)*theta) / sinTheta
	wb := math.Sin(t*theta) / sinTheta
	return QNormalize(Quat{
		a.X*wa + b.X*wb,
		a.Y*wa + b.Y*wb,
		a.Z*wa + b.Z*wb,
		a.W*wa + b.W*wb,
	})
}

// QDampTo rotates current toward target with exponential half-life smoothing
// along the great-circle arc (spherical damping, not componentwise lerp)
func QDampTo(current, target Quat, halfLife, dt float64) Quat {
	return QSlerp(current, target, DampFactor(halfLife, dt))
}
