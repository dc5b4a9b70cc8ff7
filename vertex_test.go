package cavemat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func triangleAttrs() (VertexAttributes, VertexAttributes, VertexAttributes) {
	types := [3]TypeId{BrownRock, YellowRock, ShinyGreenRock}
	a := VertexAttributes{
		Position:   mgl32.Vec3{0, 0, 0},
		VoxelType:  types,
		VoxelRatio: mgl32.Vec3{1, 0, 0},
	}
	b := VertexAttributes{
		Position:   mgl32.Vec3{10, 0, 0},
		VoxelType:  types,
		VoxelRatio: mgl32.Vec3{0, 1, 0},
	}
	c := VertexAttributes{
		Position:   mgl32.Vec3{0, 10, 0},
		VoxelType:  types,
		VoxelRatio: mgl32.Vec3{0, 0, 1},
	}
	return a, b, c
}

func TestInterpolateFragmentAtVertices(t *testing.T) {
	a, b, c := triangleAttrs()

	frag := InterpolateFragment(a, b, c, mgl32.Vec3{1, 0, 0})
	assert.Equal(t, a.Position, frag.Position)
	assert.Equal(t, a.VoxelRatio, frag.VoxelRatio)

	frag = InterpolateFragment(a, b, c, mgl32.Vec3{0, 1, 0})
	assert.Equal(t, b.Position, frag.Position)
	assert.Equal(t, b.VoxelRatio, frag.VoxelRatio)
}

func TestInterpolateFragmentCenter(t *testing.T) {
	a, b, c := triangleAttrs()
	third := float32(1.0 / 3.0)

	frag := InterpolateFragment(a, b, c, mgl32.Vec3{third, third, third})
	assert.InDelta(t, third, frag.VoxelRatio.X(), 1e-6)
	assert.InDelta(t, third, frag.VoxelRatio.Y(), 1e-6)
	assert.InDelta(t, third, frag.VoxelRatio.Z(), 1e-6)
	assert.InDelta(t, 10.0/3.0, frag.Position.X(), 1e-5)
	assert.InDelta(t, 10.0/3.0, frag.Position.Y(), 1e-5)
}

func TestInterpolateFragmentTypesCarryFlat(t *testing.T) {
	a, b, c := triangleAttrs()

	// The id triple never interpolates, whatever the barycentric point.
	for _, bary := range []mgl32.Vec3{{1, 0, 0}, {0.2, 0.3, 0.5}, {0, 0, 1}} {
		frag := InterpolateFragment(a, b, c, bary)
		assert.Equal(t, a.VoxelType, frag.VoxelType)
	}
}
