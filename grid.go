package cavemat

import (
	"image"
	"image/color"
	"runtime"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Plane is a rectangular slice of world space rasterized into an image,
// one blend evaluation per pixel.
type Plane struct {
	Origin mgl32.Vec3 // world position of pixel (0,0)
	DU     mgl32.Vec3 // world step per pixel along image x
	DV     mgl32.Vec3 // world step per pixel along image y
	Width  int
	Height int
}

// RatioFunc supplies the interpolated ratio vector for normalized plane
// coordinates u,v in [0,1]. Pure, like everything on the evaluation path.
type RatioFunc func(u, v float32) mgl32.Vec3

// UniformRatio is the RatioFunc for a single-type surface.
func UniformRatio(r mgl32.Vec3) RatioFunc {
	return func(u, v float32) mgl32.Vec3 { return r }
}

// HorizontalSweep ramps the odd slot's ratio 0..1 across u; handy for
// rendering a transition strip between two types.
func HorizontalSweep(slot int) RatioFunc {
	return func(u, v float32) mgl32.Vec3 {
		var r mgl32.Vec3
		r[slot] = u
		return r
	}
}

// EvaluatePlane maps Blend over every pixel of the plane. Evaluations are
// independent, so rows are spread across one worker per CPU; the result is
// identical to a serial loop. Fields are clamped to [0,1] only at the
// image edge, after blending.
func EvaluatePlane(b *Blender, plane Plane, types [3]TypeId, ratioAt RatioFunc, time float32) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, plane.Width, plane.Height))

	workers := runtime.NumCPU()
	if workers > plane.Height {
		workers = plane.Height
	}
	if workers < 1 {
		workers = 1
	}

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(start int) {
			defer wg.Done()
			for y := start; y < plane.Height; y += workers {
				v := float32(0)
				if plane.Height > 1 {
					v = float32(y) / float32(plane.Height-1)
				}
				for x := 0; x < plane.Width; x++ {
					u := float32(0)
					if plane.Width > 1 {
						u = float32(x) / float32(plane.Width-1)
					}
					p := plane.Origin.
						Add(plane.DU.Mul(float32(x))).
						Add(plane.DV.Mul(float32(y)))
					m := b.Blend(types, ratioAt(u, v), p, time)
					img.SetRGBA(x, y, materialRGBA(m))
				}
			}
		}(w)
	}
	wg.Wait()

	return img
}

func materialRGBA(m VoxelMaterial) color.RGBA {
	return color.RGBA{
		R: uint8(Saturate(m.BaseColor.X())*255 + 0.5),
		G: uint8(Saturate(m.BaseColor.Y())*255 + 0.5),
		B: uint8(Saturate(m.BaseColor.Z())*255 + 0.5),
		A: 255,
	}
}
