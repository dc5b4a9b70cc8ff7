package cavemat

import (
	"github.com/go-gl/mathgl/mgl32"
)

// VertexAttributes is the per-vertex contract consumed from the mesher.
// Every vertex of a triangle carries the triangle's full type triple (the
// wire format pads it to four bytes; the fourth is unused); VoxelRatio is
// the vertex's own weight vector, trending toward 1 in its own slot.
type VertexAttributes struct {
	Position   mgl32.Vec3
	VoxelType  [3]TypeId
	VoxelRatio mgl32.Vec3
}

// FragmentInput is what interpolation hands the blend stage: position and
// ratio interpolate smoothly, the type triple carries flat.
type FragmentInput struct {
	Position   mgl32.Vec3
	VoxelType  [3]TypeId
	VoxelRatio mgl32.Vec3
}

// InterpolateFragment produces the fragment input at barycentric
// coordinates bary over triangle (a, b, c). Type ids never interpolate;
// the triple is taken from a, which the mesher keeps identical across the
// triangle's vertices.
func InterpolateFragment(a, b, c VertexAttributes, bary mgl32.Vec3) FragmentInput {
	return FragmentInput{
		Position: a.Position.Mul(bary.X()).
			Add(b.Position.Mul(bary.Y())).
			Add(c.Position.Mul(bary.Z())),
		VoxelType: a.VoxelType,
		VoxelRatio: a.VoxelRatio.Mul(bary.X()).
			Add(b.VoxelRatio.Mul(bary.Y())).
			Add(c.VoxelRatio.Mul(bary.Z())),
	}
}
