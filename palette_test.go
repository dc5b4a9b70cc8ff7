package cavemat

import (
	"path/filepath"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultPaletteBuilds(t *testing.T) {
	p := DefaultPalette()
	require.NoError(t, p.Validate())
	assert.NotEmpty(t, p.Id)

	b, err := p.Build(nil)
	require.NoError(t, err)
	assert.Equal(t, DefaultRenderVoxelSize, b.RenderVoxelSize)
	assert.Equal(t, DefaultTransitionSteps, b.TransitionSteps)
	assert.Equal(t, []TypeId{0, 1, 2, 3}, b.Registry.Registered())
}

func TestPaletteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.yaml")

	p := DefaultPalette()
	require.NoError(t, p.Save(path))

	loaded, err := LoadPalette(path)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestPaletteBuildMatchesStockRegistry(t *testing.T) {
	b, err := DefaultPalette().Build(nil)
	require.NoError(t, err)

	stock := DefaultRegistry(nil)
	pos := mgl32.Vec3{14.2, -6.1, 80.0}
	for _, id := range []TypeId{BrownRock, YellowRock, ShinyGreenRock} {
		assert.Equal(t, stock.MaterialFor(id, pos, 0), b.Registry.MaterialFor(id, pos, 0), "id %d", id)
	}
}

func TestPaletteValidation(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Palette)
	}{
		{"zero voxel size", func(p *Palette) { p.RenderVoxelSize = 0 }},
		{"zero transition steps", func(p *Palette) { p.TransitionSteps = 0 }},
		{"sentinel id", func(p *Palette) { p.Materials[0].Id = uint32(Invalid) }},
		{"duplicate id", func(p *Palette) { p.Materials[1].Id = p.Materials[0].Id }},
		{"no octaves", func(p *Palette) { p.Materials[0].Octaves = nil }},
		{"bad striation", func(p *Palette) { p.Materials[0].StriationScale = 0 }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := DefaultPalette()
			tc.mutate(p)
			assert.Error(t, p.Validate())
		})
	}
}

func TestLoadPaletteMissingFile(t *testing.T) {
	_, err := LoadPalette(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestSaveAssignsId(t *testing.T) {
	p := DefaultPalette()
	p.Id = ""
	require.NoError(t, p.Save(filepath.Join(t.TempDir(), "p.yaml")))
	assert.NotEmpty(t, p.Id)
}
