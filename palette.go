package cavemat

import (
	"fmt"
	"os"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// Palette is the on-disk form of a material set plus the two render
// uniforms. It exists so the editor can tweak rock colors and transition
// behavior without recompiling.
type Palette struct {
	Id              string         `yaml:"id"`
	RenderVoxelSize float32        `yaml:"render_voxel_size"`
	TransitionSteps float32        `yaml:"voxel_type_transition_steps"`
	Materials       []PaletteEntry `yaml:"materials"`
}

// PaletteEntry is one registered recipe. Anomaly entries ignore the color
// and octave fields and use the hue-rotating template instead.
type PaletteEntry struct {
	Id             uint32          `yaml:"id"`
	Name           string          `yaml:"name,omitempty"`
	Dark           [3]float32      `yaml:"dark,flow"`
	Light          [3]float32      `yaml:"light,flow"`
	Octaves        []PaletteOctave `yaml:"octaves,omitempty"`
	BandMin        float32         `yaml:"band_min"`
	BandMax        float32         `yaml:"band_max"`
	StriationScale float32         `yaml:"striation_scale"`
	Glossy         bool            `yaml:"glossy,omitempty"`
	Anomaly        bool            `yaml:"anomaly,omitempty"`
}

type PaletteOctave struct {
	Scale  float32 `yaml:"scale"`
	Weight float32 `yaml:"weight,omitempty"`
}

// DefaultPalette mirrors the stock registry: the three rocks under their
// upstream ids, the anomaly under the first free id, and the uniform
// values terrain chunks spawn with.
func DefaultPalette() *Palette {
	return &Palette{
		Id:              uuid.NewString(),
		RenderVoxelSize: DefaultRenderVoxelSize,
		TransitionSteps: DefaultTransitionSteps,
		Materials: []PaletteEntry{
			rockEntry(BrownRock, BrownRockParams),
			rockEntry(YellowRock, YellowRockParams),
			rockEntry(ShinyGreenRock, ShinyGreenRockParams),
			{
				Id:             3,
				Name:           "Anomaly",
				StriationScale: DefaultAnomalyParams.StriationScale,
				Anomaly:        true,
			},
		},
	}
}

func rockEntry(id TypeId, params RockParams) PaletteEntry {
	entry := PaletteEntry{
		Id:             uint32(id),
		Name:           id.Name(),
		Dark:           [3]float32{params.Dark.X(), params.Dark.Y(), params.Dark.Z()},
		Light:          [3]float32{params.Light.X(), params.Light.Y(), params.Light.Z()},
		BandMin:        params.BandMin,
		BandMax:        params.BandMax,
		StriationScale: params.StriationScale,
		Glossy:         params.Glossy,
	}
	for _, oct := range params.Octaves {
		entry.Octaves = append(entry.Octaves, PaletteOctave{Scale: oct.Scale, Weight: oct.Weight})
	}
	return entry
}

// LoadPalette reads and validates a palette file.
func LoadPalette(path string) (*Palette, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load palette: %w", err)
	}
	var p Palette
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("load palette %s: %w", path, err)
	}
	if err := p.Validate(); err != nil {
		return nil, fmt.Errorf("palette %s: %w", path, err)
	}
	return &p, nil
}

// Save writes the palette, assigning a document id if it has none.
func (p *Palette) Save(path string) error {
	if p.Id == "" {
		p.Id = uuid.NewString()
	}
	data, err := yaml.Marshal(p)
	if err != nil {
		return fmt.Errorf("save palette: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("save palette %s: %w", path, err)
	}
	return nil
}

// Validate enforces the caller contract the evaluation path itself does
// not check: positive grid size, at least one transition step, no entries
// on sentinel ids.
func (p *Palette) Validate() error {
	if p.RenderVoxelSize <= 0 {
		return fmt.Errorf("render_voxel_size must be > 0, got %g", p.RenderVoxelSize)
	}
	if p.TransitionSteps < 1 {
		return fmt.Errorf("voxel_type_transition_steps must be >= 1, got %g", p.TransitionSteps)
	}
	seen := make(map[uint32]bool)
	for _, entry := range p.Materials {
		if TypeId(entry.Id).IsSentinel() {
			return fmt.Errorf("material id %d is a reserved sentinel", entry.Id)
		}
		if seen[entry.Id] {
			return fmt.Errorf("material id %d listed twice", entry.Id)
		}
		seen[entry.Id] = true
		if !entry.Anomaly && len(entry.Octaves) == 0 {
			return fmt.Errorf("material id %d has no body noise octaves", entry.Id)
		}
		if entry.StriationScale <= 0 {
			return fmt.Errorf("material id %d: striation_scale must be > 0", entry.Id)
		}
	}
	return nil
}

// Build registers every entry and returns a blender carrying the
// palette's uniforms.
func (p *Palette) Build(log Logger) (*Blender, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	reg := NewRegistry(log)
	for _, entry := range p.Materials {
		var fn MaterialFunc
		if entry.Anomaly {
			params := DefaultAnomalyParams
			params.StriationScale = entry.StriationScale
			fn = Anomaly(params)
		} else {
			fn = Rock(entry.rockParams())
		}
		if err := reg.Register(TypeId(entry.Id), fn); err != nil {
			return nil, err
		}
	}
	b := NewBlender(reg)
	b.RenderVoxelSize = p.RenderVoxelSize
	b.TransitionSteps = p.TransitionSteps
	return b, nil
}

func (e PaletteEntry) rockParams() RockParams {
	params := RockParams{
		Dark:           mgl32.Vec3{e.Dark[0], e.Dark[1], e.Dark[2]},
		Light:          mgl32.Vec3{e.Light[0], e.Light[1], e.Light[2]},
		BandMin:        e.BandMin,
		BandMax:        e.BandMax,
		StriationScale: e.StriationScale,
		Glossy:         e.Glossy,
	}
	for _, oct := range e.Octaves {
		params.Octaves = append(params.Octaves, Octave{Scale: oct.Scale, Weight: oct.Weight})
	}
	return params
}
