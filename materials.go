package cavemat

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// The stock recipes share one template: a coarse multi-octave body noise
// picks how light or dark the rock is here, a fine anisotropic striation
// noise lays horizontal strata over it, and both are posterized so the
// result reads as a small set of flat bands rather than a gradient.

const (
	// Body noise is posterized to 7 levels, striation to 4.
	bodyBandSteps  = 7
	striationSteps = 4

	// Striation samples noise very coarsely on X/Z and finely on Y, which
	// is what turns it into horizontal strata.
	striationHorizontalScale = 64
)

// Octave is one body-noise layer: sample position divided by Scale, mixed
// into the running value by Weight. The first layer of a recipe enters at
// full weight and its Weight field is ignored.
type Octave struct {
	Scale  float32
	Weight float32
}

// RockParams are the hand-tuned constants of one rock recipe.
type RockParams struct {
	Dark  mgl32.Vec3 // striation endpoint for low striation values
	Light mgl32.Vec3 // striation endpoint for high striation values

	Octaves []Octave

	// Body noise is compressed into [BandMin,BandMax] before posterizing,
	// so even the darkest band keeps some of the base hue.
	BandMin float32
	BandMax float32

	// World-space divisor of the vertical striation axis. Smaller is
	// finer banding; the boundary rock uses a coarser value.
	StriationScale float32

	// Glossy rocks reuse the striation value as reflectance, so the dark
	// strata pick up a specular sheen.
	Glossy bool
}

var (
	BrownRockParams = RockParams{
		Dark:           mgl32.Vec3{0.22, 0.12, 0.06},
		Light:          mgl32.Vec3{0.45, 0.30, 0.16},
		Octaves:        []Octave{{Scale: 2}, {Scale: 4, Weight: 0.5}, {Scale: 8, Weight: 0.25}},
		BandMin:        0.25,
		BandMax:        1.0,
		StriationScale: 2,
	}

	YellowRockParams = RockParams{
		Dark:           mgl32.Vec3{0.42, 0.34, 0.12},
		Light:          mgl32.Vec3{0.72, 0.62, 0.30},
		Octaves:        []Octave{{Scale: 1}, {Scale: 5, Weight: 0.5}},
		BandMin:        0.65,
		BandMax:        1.0,
		StriationScale: 6,
	}

	ShinyGreenRockParams = RockParams{
		Dark:           mgl32.Vec3{0.04, 0.18, 0.08},
		Light:          mgl32.Vec3{0.16, 0.50, 0.24},
		Octaves:        []Octave{{Scale: 2}, {Scale: 6, Weight: 0.5}, {Scale: 12, Weight: 0.25}},
		BandMin:        0.25,
		BandMax:        1.0,
		StriationScale: 4,
		Glossy:         true,
	}

	// Near-black palette and coarser strata for the terrain edge. Both
	// Boundary and FakeBoundary render through this.
	boundaryParams = RockParams{
		Dark:           mgl32.Vec3{0.02, 0.02, 0.03},
		Light:          mgl32.Vec3{0.14, 0.14, 0.16},
		Octaves:        []Octave{{Scale: 2}, {Scale: 8, Weight: 0.5}},
		BandMin:        0.25,
		BandMax:        1.0,
		StriationScale: 8,
		Glossy:         true,
	}
)

var boundaryFunc = Rock(boundaryParams)

// Diagnostic checkerboard tints. Red = Invalid, green = Unset, yellow =
// any id nothing is registered for.
var (
	invalidTint = mgl32.Vec3{0.8, 0.1, 0.1}
	unsetTint   = mgl32.Vec3{0.1, 0.8, 0.1}
	unknownTint = mgl32.Vec3{0.8, 0.8, 0.1}
)

func vecDiv(p mgl32.Vec3, s float32) mgl32.Vec3 {
	return mgl32.Vec3{p.X() / s, p.Y() / s, p.Z() / s}
}

// bodyBand layers the octaves, compresses the result into the recipe's
// band and posterizes it.
func bodyBand(p mgl32.Vec3, params RockParams) float32 {
	n := Noise3(vecDiv(p, params.Octaves[0].Scale))
	for _, oct := range params.Octaves[1:] {
		n = Mix(n, Noise3(vecDiv(p, oct.Scale)), oct.Weight)
	}
	// Noise is [-1,1]; fold it to [0,1] before the band remap.
	n = Saturate(n*0.5 + 0.5)
	return Quantize(Rescale(n, params.BandMin, params.BandMax), bodyBandSteps)
}

// striation samples noise stretched flat on X/Z and fine on Y, producing
// posterized horizontal strata in [0,1].
func striation(p mgl32.Vec3, scale float32) float32 {
	sp := mgl32.Vec3{
		p.X() / striationHorizontalScale,
		p.Y() / scale,
		p.Z() / striationHorizontalScale,
	}
	return Quantize(math32.Abs(Noise3(sp)), striationSteps)
}

// Rock builds a material func from the shared rock template.
func Rock(params RockParams) MaterialFunc {
	return func(p mgl32.Vec3, _ float32) VoxelMaterial {
		band := bodyBand(p, params)
		str := striation(p, params.StriationScale)

		m := NewVoxelMaterial()
		// Strata pick the hue between the two endpoints, then the body
		// band darkens toward black independently of hue.
		col := MixVec3(params.Dark, params.Light, str)
		m.BaseColor = MixVec3(mgl32.Vec3{}, col, band)
		if params.Glossy {
			m.Reflectance = str
		}
		return m
	}
}

// AnomalyParams tune the time-varying recipe. Saturation and value are
// fixed; only the hue rotates.
type AnomalyParams struct {
	Saturation     float32
	Value          float32
	StriationScale float32
}

var DefaultAnomalyParams = AnomalyParams{
	Saturation:     0.7,
	Value:          0.9,
	StriationScale: 4,
}

// Anomaly builds the animated recipe: the light color endpoint is derived
// from a hue that rotates with elapsed time / 16, and the hue color also
// feeds a faint emissive term so anomalies glow in the dark.
func Anomaly(params AnomalyParams) MaterialFunc {
	return func(p mgl32.Vec3, time float32) VoxelMaterial {
		hue := math32.Mod(time/16, 1)
		if hue < 0 {
			hue += 1
		}
		light := hsvToRGB(hue*360, params.Saturation, params.Value)

		rock := RockParams{
			Dark:           MixVec3(mgl32.Vec3{}, light, 0.15),
			Light:          light,
			Octaves:        []Octave{{Scale: 2}, {Scale: 6, Weight: 0.5}},
			BandMin:        0.25,
			BandMax:        1.0,
			StriationScale: params.StriationScale,
		}

		band := bodyBand(p, rock)
		str := striation(p, rock.StriationScale)

		m := NewVoxelMaterial()
		col := MixVec3(rock.Dark, rock.Light, str)
		m.BaseColor = MixVec3(mgl32.Vec3{}, col, band)
		m.Emissive = mgl32.Vec4{
			light.X() * 0.2 * str,
			light.Y() * 0.2 * str,
			light.Z() * 0.2 * str,
			1,
		}
		return m
	}
}

// checkerboard is the diagnostic fallback: quantize the position onto a
// 32-step grid and force pure black wherever any quantized axis lands on
// an even value, so the tint always alternates with black and can't be
// mistaken for a solid-fill recipe.
func checkerboard(p mgl32.Vec3, tint mgl32.Vec3) VoxelMaterial {
	m := NewVoxelMaterial()
	m.BaseColor = tint
	for _, v := range [3]float32{p.X(), p.Y(), p.Z()} {
		if int32(math32.Round(v*32))%2 == 0 {
			m.BaseColor = mgl32.Vec3{}
			break
		}
	}
	return m
}

// hsvToRGB converts hue in degrees plus saturation/value in [0,1] to
// linear RGB.
func hsvToRGB(h, s, v float32) mgl32.Vec3 {
	h = math32.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := v * s
	x := c * (1 - math32.Abs(math32.Mod(h/60, 2)-1))
	m := v - c

	var r, g, b float32
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return mgl32.Vec3{r + m, g + m, b + m}
}
