package cavemat

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestNoise3Deterministic(t *testing.T) {
	p := mgl32.Vec3{12.5, -3.75, 104.2}
	first := Noise3(p)
	for i := 0; i < 50; i++ {
		if v := Noise3(p); v != first {
			t.Fatalf("Noise3 not deterministic: %v != %v on call %d", v, first, i)
		}
	}
}

func TestNoise3Range(t *testing.T) {
	// Sweep a mix of magnitudes and signs; every sample must stay in [-1,1].
	for x := float32(-20); x <= 20; x += 0.7 {
		for y := float32(-20); y <= 20; y += 1.3 {
			v := Noise3(mgl32.Vec3{x, y, x*0.5 + y*0.25})
			assert.LessOrEqual(t, v, float32(1))
			assert.GreaterOrEqual(t, v, float32(-1))
		}
	}
}

func TestNoise3Varies(t *testing.T) {
	a := Noise3(mgl32.Vec3{1.3, 2.1, 3.7})
	b := Noise3(mgl32.Vec3{8.9, -4.2, 0.5})
	c := Noise3(mgl32.Vec3{-15.1, 7.7, 22.3})
	if a == b && b == c {
		t.Fatalf("Noise3 returned %v for three unrelated points", a)
	}
}

func TestNoise3Continuous(t *testing.T) {
	// Adjacent samples a tiny step apart must not jump.
	const eps = 0.001
	p := mgl32.Vec3{4.2, 1.9, -7.3}
	v0 := Noise3(p)
	v1 := Noise3(p.Add(mgl32.Vec3{eps, 0, 0}))
	assert.InDelta(t, v0, v1, 0.05)
}

func TestNoise3NegativeCoordinates(t *testing.T) {
	// Lattice wrapping must behave on negative cells too.
	v := Noise3(mgl32.Vec3{-100.4, -250.9, -3.1})
	assert.LessOrEqual(t, v, float32(1))
	assert.GreaterOrEqual(t, v, float32(-1))
}

func TestNoise2DeterministicAndBounded(t *testing.T) {
	first := Noise2(3.7, -9.2)
	if second := Noise2(3.7, -9.2); second != first {
		t.Fatalf("Noise2 not deterministic: %v != %v", second, first)
	}
	for x := float32(-10); x <= 10; x += 0.37 {
		v := Noise2(x, x*1.7)
		assert.LessOrEqual(t, v, float32(1))
		assert.GreaterOrEqual(t, v, float32(-1))
	}
}
