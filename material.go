package cavemat

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// TypeId identifies a voxel material recipe. Ids below the sentinel range
// index the procedural registry; the sentinel ids (252-255) never do.
type TypeId uint32

const (
	BrownRock      TypeId = 0
	YellowRock     TypeId = 1
	ShinyGreenRock TypeId = 2

	// FakeBoundary renders identically to Boundary but is kept distinct
	// upstream (breakable vs. unbreakable terrain edge).
	FakeBoundary TypeId = 252
	Boundary     TypeId = 253
	Invalid      TypeId = 254
	Unset        TypeId = 255
)

// PerceptualRoughness is the fixed roughness hint handed to the lighting
// stage alongside every material record. The base is maximally glossy and
// only Reflectance modulates the specular response.
const PerceptualRoughness float32 = 0.0

// Name returns a display name for the id, matching the upstream palette.
func (id TypeId) Name() string {
	switch id {
	case BrownRock:
		return "Brown Rock"
	case YellowRock:
		return "Smooth Yellow Rock"
	case ShinyGreenRock:
		return "Shiny Green Rock"
	case FakeBoundary:
		return "Fake Boundary"
	case Boundary:
		return "Boundary"
	case Invalid:
		return "Invalid"
	case Unset:
		return "Unset"
	}
	return fmt.Sprintf("Type %d", uint32(id))
}

// IsSentinel reports whether the id is one of the reserved non-registry values.
func (id TypeId) IsSentinel() bool {
	return id >= FakeBoundary && id <= Unset
}

// VoxelMaterial is the record a material function produces for one shaded
// point. It is a plain value; every evaluation builds a fresh one.
type VoxelMaterial struct {
	BaseColor   mgl32.Vec3 // linear RGB in [0,1], implicitly opaque
	Reflectance float32    // specular response hint in [0,1]
	Emissive    mgl32.Vec4 // RGB + intensity
}

// NewVoxelMaterial returns a record with neutral defaults: black base,
// zero reflectance, emissive (0,0,0,1). Fields a recipe does not set keep
// these values.
func NewVoxelMaterial() VoxelMaterial {
	return VoxelMaterial{
		Emissive: mgl32.Vec4{0, 0, 0, 1},
	}
}
