package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/gekko3d/cavemat"

	"github.com/go-gl/mathgl/mgl32"
	xdraw "golang.org/x/image/draw"
)

// swatchgen renders the registered materials and the diagnostic fallbacks
// to PNG swatches, plus a transition strip per material pair, for eyeballing
// palette changes without launching the game.
func main() {
	var (
		outDir    = flag.String("out", "swatches", "output directory")
		paletteIn = flag.String("palette", "", "palette yaml file (empty = stock palette)")
		size      = flag.Int("size", 160, "swatch size in pixels")
		scale     = flag.Float64("scale", 0.5, "world units per pixel")
		upscale   = flag.Int("upscale", 2, "integer upscale factor for the output")
		timeAt    = flag.Float64("time", 0, "time uniform in seconds (anomaly hue)")
		useWall   = flag.Bool("walltime", false, "use wall-clock time instead of -time")
		debug     = flag.Bool("debug", false, "enable debug logging")
	)
	flag.Parse()

	logger := cavemat.NewDefaultLogger("swatchgen", *debug)

	palette := cavemat.DefaultPalette()
	if *paletteIn != "" {
		loaded, err := cavemat.LoadPalette(*paletteIn)
		if err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		palette = loaded
	}

	blender, err := palette.Build(logger)
	if err != nil {
		logger.Errorf("%v", err)
		os.Exit(1)
	}

	t := float32(*timeAt)
	if *useWall {
		t = cavemat.NewWallClock().Elapsed()
	}

	if err := os.MkdirAll(*outDir, 0755); err != nil {
		logger.Errorf("create %s: %v", *outDir, err)
		os.Exit(1)
	}

	plane := cavemat.Plane{
		// Off-origin so the diagnostic checkerboards don't start on an
		// all-even (pure black) cell.
		Origin: mgl32.Vec3{0.1, 0.1, 0.1},
		DU:     mgl32.Vec3{float32(*scale), 0, 0},
		DV:     mgl32.Vec3{0, float32(*scale), 0},
		Width:  *size,
		Height: *size,
	}

	ids := blender.Registry.Registered()
	swatchIds := append([]cavemat.TypeId{}, ids...)
	swatchIds = append(swatchIds,
		cavemat.Boundary,
		cavemat.FakeBoundary,
		cavemat.Invalid,
		cavemat.Unset,
		cavemat.TypeId(999), // unregistered, renders the yellow fallback
	)

	for _, id := range swatchIds {
		img := cavemat.EvaluatePlane(blender, plane, [3]cavemat.TypeId{id, id, id},
			cavemat.UniformRatio(mgl32.Vec3{1, 0, 0}), t)
		name := fmt.Sprintf("type_%03d_%s.png", uint32(id), slug(id.Name()))
		if err := writePNG(filepath.Join(*outDir, name), img, *upscale); err != nil {
			logger.Errorf("%v", err)
			os.Exit(1)
		}
		logger.Infof("wrote %s", name)
	}

	// Transition strips: shared type on the left, odd type swept in from
	// the right via ratio slot 2.
	strip := plane
	strip.Height = *size / 4
	if strip.Height < 1 {
		strip.Height = 1
	}
	for i, a := range ids {
		for _, b := range ids[i+1:] {
			img := cavemat.EvaluatePlane(blender, strip, [3]cavemat.TypeId{a, a, b},
				cavemat.HorizontalSweep(2), t)
			name := fmt.Sprintf("blend_%03d_%03d.png", uint32(a), uint32(b))
			if err := writePNG(filepath.Join(*outDir, name), img, *upscale); err != nil {
				logger.Errorf("%v", err)
				os.Exit(1)
			}
			logger.Infof("wrote %s", name)
		}
	}
}

func writePNG(path string, img *image.RGBA, upscale int) error {
	var out image.Image = img
	if upscale > 1 {
		b := img.Bounds()
		dst := image.NewRGBA(image.Rect(0, 0, b.Dx()*upscale, b.Dy()*upscale))
		xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), img, b, xdraw.Src, nil)
		out = dst
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	defer f.Close()
	if err := png.Encode(f, out); err != nil {
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return nil
}

func slug(name string) string {
	return strings.ReplaceAll(strings.ToLower(name), " ", "_")
}
