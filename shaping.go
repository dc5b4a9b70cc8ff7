package cavemat

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Scalar shaping helpers shared by the material recipes and the blender.
// The pipeline order is fixed: noise -> layered mix -> Rescale -> Quantize,
// and for blend ratios: raw ratio -> EaseInOutSine -> Quantize.

// Quantize rounds v onto a grid of steps+1 discrete levels over [0,1].
func Quantize(v, steps float32) float32 {
	return math32.Round(v*steps) / steps
}

// QuantizeVec3 applies Quantize per component.
func QuantizeVec3(v mgl32.Vec3, steps float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Quantize(v.X(), steps),
		Quantize(v.Y(), steps),
		Quantize(v.Z(), steps),
	}
}

// Rescale affinely remaps a [0,1] value into [min,max].
func Rescale(v, min, max float32) float32 {
	return v*(max-min) + min
}

// Saturate clamps v to [0,1].
func Saturate(v float32) float32 {
	return math32.Min(math32.Max(v, 0), 1)
}

// EaseInOutSine reshapes x in [0,1] into a slow-fast-slow S-curve, so a
// linear ramp across a triangle reads as a soft transition before it is
// quantized into steps.
func EaseInOutSine(x float32) float32 {
	return -(math32.Cos(math32.Pi*x) - 1) / 2
}

// EaseInOutSineVec3 applies EaseInOutSine per component.
func EaseInOutSineVec3(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{
		EaseInOutSine(v.X()),
		EaseInOutSine(v.Y()),
		EaseInOutSine(v.Z()),
	}
}

// Mix linearly interpolates from a to b. Both endpoints are exact: t=0
// yields a and t=1 yields b bit-for-bit.
func Mix(a, b, t float32) float32 {
	return a*(1-t) + b*t
}

// MixVec3 applies Mix per component.
func MixVec3(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return mgl32.Vec3{
		Mix(a.X(), b.X(), t),
		Mix(a.Y(), b.Y(), t),
		Mix(a.Z(), b.Z(), t),
	}
}

// MixVec4 applies Mix per component.
func MixVec4(a, b mgl32.Vec4, t float32) mgl32.Vec4 {
	return mgl32.Vec4{
		Mix(a.X(), b.X(), t),
		Mix(a.Y(), b.Y(), t),
		Mix(a.Z(), b.Z(), t),
		Mix(a.W(), b.W(), t),
	}
}

// SnapToGrid quantizes p onto a uniform world-space grid of the given cell
// size. Larger sizes give a coarser, more voxelized sampling pattern.
// size must be > 0; validating that is the caller's contract.
func SnapToGrid(p mgl32.Vec3, size float32) mgl32.Vec3 {
	return mgl32.Vec3{
		math32.Round(p.X()/size) * size,
		math32.Round(p.Y()/size) * size,
		math32.Round(p.Z()/size) * size,
	}
}
