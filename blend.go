package cavemat

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Blender resolves a fragment's voxel type triple and interpolated ratio
// vector into one material record. It is stateless per invocation; one
// Blender can serve any number of goroutines.
type Blender struct {
	Registry *Registry

	// RenderVoxelSize is the world-space grid the sampling position is
	// snapped to before any recipe runs, so every candidate material of a
	// blend samples the exact same point. Must be > 0; not validated here.
	RenderVoxelSize float32

	// TransitionSteps is how many discrete levels the eased blend ratio
	// is quantized to. Must be >= 1; 1 collapses transitions to hard
	// edges. Not validated here.
	TransitionSteps float32
}

// The uniform values the upstream terrain spawns chunks with.
const (
	DefaultRenderVoxelSize float32 = 7.0
	DefaultTransitionSteps float32 = 5.0
)

func NewBlender(reg *Registry) *Blender {
	return &Blender{
		Registry:        reg,
		RenderVoxelSize: DefaultRenderVoxelSize,
		TransitionSteps: DefaultTransitionSteps,
	}
}

// transition turns a raw interpolated ratio into a stepped blend factor.
func (b *Blender) transition(r float32) float32 {
	return Quantize(EaseInOutSine(r), b.TransitionSteps)
}

// Blend picks the cheapest evaluation for the number of distinct types on
// the triangle. Branch order is a deliberate tie-break: the all-equal case
// must win before any pairwise check even when several equalities hold.
//
// In the pairwise cases the shared type is the base material and the odd
// vertex's type is mixed toward it, driven by that odd vertex's ratio
// slot. The three-way case is a raw weighted sum of the eased, quantized
// ratio vector; weights are used as supplied and never renormalized, so a
// ratio triple that does not sum to 1 carries through to the output
// unchanged (matching the upstream shader, see DESIGN.md).
func (b *Blender) Blend(types [3]TypeId, ratio mgl32.Vec3, p mgl32.Vec3, time float32) VoxelMaterial {
	gp := SnapToGrid(p, b.RenderVoxelSize)

	switch {
	case types[0] == types[1] && types[1] == types[2]:
		return b.Registry.MaterialFor(types[0], gp, time)

	case types[0] == types[1]:
		shared := b.Registry.MaterialFor(types[0], gp, time)
		odd := b.Registry.MaterialFor(types[2], gp, time)
		return mixMaterial(shared, odd, b.transition(ratio.Z()))

	case types[0] == types[2]:
		shared := b.Registry.MaterialFor(types[0], gp, time)
		odd := b.Registry.MaterialFor(types[1], gp, time)
		return mixMaterial(shared, odd, b.transition(ratio.Y()))

	case types[1] == types[2]:
		shared := b.Registry.MaterialFor(types[1], gp, time)
		odd := b.Registry.MaterialFor(types[0], gp, time)
		return mixMaterial(shared, odd, b.transition(ratio.X()))
	}

	a := b.Registry.MaterialFor(types[0], gp, time)
	c := b.Registry.MaterialFor(types[1], gp, time)
	d := b.Registry.MaterialFor(types[2], gp, time)
	w := QuantizeVec3(EaseInOutSineVec3(ratio), b.TransitionSteps)
	return weighMaterials(a, c, d, w)
}

// BlendFragment is Blend over an interpolated fragment input.
func (b *Blender) BlendFragment(frag FragmentInput, time float32) VoxelMaterial {
	return b.Blend(frag.VoxelType, frag.VoxelRatio, frag.Position, time)
}

func mixMaterial(a, b VoxelMaterial, t float32) VoxelMaterial {
	return VoxelMaterial{
		BaseColor:   MixVec3(a.BaseColor, b.BaseColor, t),
		Reflectance: Mix(a.Reflectance, b.Reflectance, t),
		Emissive:    MixVec4(a.Emissive, b.Emissive, t),
	}
}

// weighMaterials sums the three records by per-type weight. No clamping:
// out-of-range weights produce out-of-range fields.
func weighMaterials(a, b, c VoxelMaterial, w mgl32.Vec3) VoxelMaterial {
	return VoxelMaterial{
		BaseColor: a.BaseColor.Mul(w.X()).
			Add(b.BaseColor.Mul(w.Y())).
			Add(c.BaseColor.Mul(w.Z())),
		Reflectance: a.Reflectance*w.X() + b.Reflectance*w.Y() + c.Reflectance*w.Z(),
		Emissive: a.Emissive.Mul(w.X()).
			Add(b.Emissive.Mul(w.Y())).
			Add(c.Emissive.Mul(w.Z())),
	}
}
