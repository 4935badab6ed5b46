package game

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// The helpers below round every product with an explicit float32 conversion. Go allows a compiler to fuse
// x*y+z into a single FMA instruction on some architectures, which would make replicas running on
// different hardware disagree in the last bit.

// Scale returns v multiplied by s.
func Scale(v mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{float32(v[0] * s), float32(v[1] * s), float32(v[2] * s)}
}

// ScaleAdd returns a + b*s.
func ScaleAdd(a, b mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{
		a[0] + float32(b[0]*s),
		a[1] + float32(b[1]*s),
		a[2] + float32(b[2]*s),
	}
}

// ClampMagnitude returns v unchanged if its length is at most max, otherwise a vector with the same
// direction and a length of max. A vector with non-finite components is reduced to zero.
func ClampMagnitude(v mgl32.Vec3, max float32) mgl32.Vec3 {
	if !FiniteVec3(v) {
		return mgl32.Vec3{}
	}
	if max <= 0 {
		return mgl32.Vec3{}
	}
	lenSqr := float32(v[0]*v[0]) + float32(v[1]*v[1]) + float32(v[2]*v[2])
	if lenSqr <= float32(max*max) {
		return v
	}
	l := math32.Sqrt(lenSqr)
	return Scale(v, max/l)
}

// ClampFloat clamps the given value to the given range.
func ClampFloat(num, min, max float32) float32 {
	if num < min {
		return min
	}
	return math32.Min(num, max)
}

// Finite returns true if f is neither NaN nor infinite.
func Finite(f float32) bool {
	return !math32.IsNaN(f) && !math32.IsInf(f, 0)
}

// FiniteVec3 returns true if every component of v is finite.
func FiniteVec3(v mgl32.Vec3) bool {
	return Finite(v[0]) && Finite(v[1]) && Finite(v[2])
}

// RotateYaw turns a strafe/forward impulse into a world space horizontal direction facing yaw degrees.
// The Y component of the result is always zero.
func RotateYaw(impulse mgl32.Vec2, yaw float32) mgl32.Vec3 {
	rad := DegToRad(yaw)
	sin, cos := Sin(rad), Cos(rad)
	strafe, forward := impulse.X(), impulse.Y()
	return mgl32.Vec3{
		float32(strafe*cos) - float32(forward*sin),
		0,
		float32(forward*cos) + float32(strafe*sin),
	}
}
