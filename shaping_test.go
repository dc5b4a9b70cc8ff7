package cavemat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuantizeLevelCount(t *testing.T) {
	for _, steps := range []float32{1, 4, 5, 7} {
		levels := make(map[float32]bool)
		for i := 0; i <= 1000; i++ {
			levels[Quantize(float32(i)/1000, steps)] = true
		}
		assert.LessOrEqual(t, len(levels), int(steps)+1,
			"steps=%v must yield at most steps+1 levels", steps)
	}
}

func TestQuantizeEndpoints(t *testing.T) {
	assert.Equal(t, float32(0), Quantize(0, 7))
	assert.Equal(t, float32(1), Quantize(1, 7))
	assert.Equal(t, float32(1), Quantize(0.99, 4))
}

func TestRescale(t *testing.T) {
	assert.Equal(t, float32(0.25), Rescale(0, 0.25, 1))
	assert.Equal(t, float32(1), Rescale(1, 0.25, 1))
	assert.InDelta(t, 0.625, Rescale(0.5, 0.25, 1), 1e-6)
}

func TestSaturate(t *testing.T) {
	assert.Equal(t, float32(0), Saturate(-3))
	assert.Equal(t, float32(1), Saturate(42))
	assert.Equal(t, float32(0.5), Saturate(0.5))
}

func TestEaseInOutSine(t *testing.T) {
	assert.Equal(t, float32(0), EaseInOutSine(0))
	assert.InDelta(t, 1, EaseInOutSine(1), 1e-6)
	assert.InDelta(t, 0.5, EaseInOutSine(0.5), 1e-6)

	// Slow-fast-slow: monotonic, flatter at the ends than in the middle.
	prev := float32(0)
	for i := 1; i <= 100; i++ {
		v := EaseInOutSine(float32(i) / 100)
		require.GreaterOrEqual(t, v, prev, "ease must be monotonic")
		prev = v
	}
	edge := EaseInOutSine(0.05) - EaseInOutSine(0)
	mid := EaseInOutSine(0.525) - EaseInOutSine(0.475)
	assert.Less(t, edge, mid)
}

func TestMixEndpointsExact(t *testing.T) {
	a, b := float32(0.137), float32(0.914)
	assert.Equal(t, a, Mix(a, b, 0))
	assert.Equal(t, b, Mix(a, b, 1))

	va := mgl32.Vec3{0.1, 0.2, 0.3}
	vb := mgl32.Vec3{0.9, 0.8, 0.7}
	assert.Equal(t, va, MixVec3(va, vb, 0))
	assert.Equal(t, vb, MixVec3(va, vb, 1))

	ea := mgl32.Vec4{0, 0, 0, 1}
	eb := mgl32.Vec4{0.2, 0.1, 0.4, 1}
	assert.Equal(t, ea, MixVec4(ea, eb, 0))
	assert.Equal(t, eb, MixVec4(ea, eb, 1))
}

func TestSnapToGrid(t *testing.T) {
	assert.Equal(t, mgl32.Vec3{7, 7, 7}, SnapToGrid(mgl32.Vec3{10, 10, 10}, 7))
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, SnapToGrid(mgl32.Vec3{3, -3, 1}, 7))
	assert.Equal(t, mgl32.Vec3{-7, 14, 0}, SnapToGrid(mgl32.Vec3{-6, 12, 2}, 7))

	// Coarser grid, coarser cells.
	assert.Equal(t, mgl32.Vec3{0, 0, 0}, SnapToGrid(mgl32.Vec3{10, 10, 10}, 32))
}
