package cavemat

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Coherent simplex noise over a fixed permutation table. There is no seed
// on purpose: two evaluations of the same point must agree everywhere a
// material is sampled, including across processes.

var grad3 = [12][3]float32{
	{1, 1, 0}, {-1, 1, 0}, {1, -1, 0}, {-1, -1, 0},
	{1, 0, 1}, {-1, 0, 1}, {1, 0, -1}, {-1, 0, -1},
	{0, 1, 1}, {0, -1, 1}, {0, 1, -1}, {0, -1, -1},
}

// Ken Perlin's reference permutation, doubled at init so index arithmetic
// never needs a second wrap.
var permBase = [256]uint8{
	151, 160, 137, 91, 90, 15, 131, 13, 201, 95, 96, 53, 194, 233, 7, 225,
	140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23, 190, 6, 148,
	247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32,
	57, 177, 33, 88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175,
	74, 165, 71, 134, 139, 48, 27, 166, 77, 146, 158, 231, 83, 111, 229, 122,
	60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244, 102, 143, 54,
	65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169,
	200, 196, 135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64,
	52, 217, 226, 250, 124, 123, 5, 202, 38, 147, 118, 126, 255, 82, 85, 212,
	207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42, 223, 183, 170, 213,
	119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104,
	218, 246, 97, 228, 251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241,
	81, 51, 145, 235, 249, 14, 239, 107, 49, 192, 214, 31, 181, 199, 106, 157,
	184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254, 138, 236, 205, 93,
	222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
}

var perm [512]int
var permMod12 [512]int

func init() {
	for i := 0; i < 512; i++ {
		perm[i] = int(permBase[i&255])
		permMod12[i] = perm[i] % 12
	}
}

func dot3(g [3]float32, x, y, z float32) float32 {
	return g[0]*x + g[1]*y + g[2]*z
}

func dot2(g [3]float32, x, y float32) float32 {
	return g[0]*x + g[1]*y
}

// Noise3 samples 3D simplex noise at p. Output is in [-1,1], continuous in
// p, and a pure function of p.
func Noise3(p mgl32.Vec3) float32 {
	const f3 = 1.0 / 3.0
	const g3 = 1.0 / 6.0

	x, y, z := p.X(), p.Y(), p.Z()

	// Skew into simplex cell space.
	s := (x + y + z) * f3
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)
	k := math32.Floor(z + s)

	t := (i + j + k) * g3
	x0 := x - (i - t)
	y0 := y - (j - t)
	z0 := z - (k - t)

	// Rank the cell-relative coordinates to pick the simplex corner order.
	var i1, j1, k1, i2, j2, k2 int
	if x0 >= y0 {
		switch {
		case y0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 1, 0
		case x0 >= z0:
			i1, j1, k1 = 1, 0, 0
			i2, j2, k2 = 1, 0, 1
		default:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 1, 0, 1
		}
	} else {
		switch {
		case y0 < z0:
			i1, j1, k1 = 0, 0, 1
			i2, j2, k2 = 0, 1, 1
		case x0 < z0:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 0, 1, 1
		default:
			i1, j1, k1 = 0, 1, 0
			i2, j2, k2 = 1, 1, 0
		}
	}

	x1 := x0 - float32(i1) + g3
	y1 := y0 - float32(j1) + g3
	z1 := z0 - float32(k1) + g3
	x2 := x0 - float32(i2) + 2*g3
	y2 := y0 - float32(j2) + 2*g3
	z2 := z0 - float32(k2) + 2*g3
	x3 := x0 - 1 + 3*g3
	y3 := y0 - 1 + 3*g3
	z3 := z0 - 1 + 3*g3

	ii := int(i) & 255
	jj := int(j) & 255
	kk := int(k) & 255

	gi0 := permMod12[ii+perm[jj+perm[kk]]]
	gi1 := permMod12[ii+i1+perm[jj+j1+perm[kk+k1]]]
	gi2 := permMod12[ii+i2+perm[jj+j2+perm[kk+k2]]]
	gi3 := permMod12[ii+1+perm[jj+1+perm[kk+1]]]

	var n0, n1, n2, n3 float32

	if t0 := 0.6 - x0*x0 - y0*y0 - z0*z0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot3(grad3[gi0], x0, y0, z0)
	}
	if t1 := 0.6 - x1*x1 - y1*y1 - z1*z1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot3(grad3[gi1], x1, y1, z1)
	}
	if t2 := 0.6 - x2*x2 - y2*y2 - z2*z2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot3(grad3[gi2], x2, y2, z2)
	}
	if t3 := 0.6 - x3*x3 - y3*y3 - z3*z3; t3 > 0 {
		t3 *= t3
		n3 = t3 * t3 * dot3(grad3[gi3], x3, y3, z3)
	}

	// Scale the corner sum into [-1,1].
	return 32 * (n0 + n1 + n2 + n3)
}

// Noise2 samples 2D simplex noise at (x, y). Output is in [-1,1].
func Noise2(x, y float32) float32 {
	f2 := 0.5 * (math32.Sqrt(3) - 1)
	g2 := (3 - math32.Sqrt(3)) / 6

	s := (x + y) * f2
	i := math32.Floor(x + s)
	j := math32.Floor(y + s)

	t := (i + j) * g2
	x0 := x - (i - t)
	y0 := y - (j - t)

	var i1, j1 int
	if x0 > y0 {
		i1, j1 = 1, 0
	} else {
		i1, j1 = 0, 1
	}

	x1 := x0 - float32(i1) + g2
	y1 := y0 - float32(j1) + g2
	x2 := x0 - 1 + 2*g2
	y2 := y0 - 1 + 2*g2

	ii := int(i) & 255
	jj := int(j) & 255

	gi0 := permMod12[ii+perm[jj]]
	gi1 := permMod12[ii+i1+perm[jj+j1]]
	gi2 := permMod12[ii+1+perm[jj+1]]

	var n0, n1, n2 float32

	if t0 := 0.5 - x0*x0 - y0*y0; t0 > 0 {
		t0 *= t0
		n0 = t0 * t0 * dot2(grad3[gi0], x0, y0)
	}
	if t1 := 0.5 - x1*x1 - y1*y1; t1 > 0 {
		t1 *= t1
		n1 = t1 * t1 * dot2(grad3[gi1], x1, y1)
	}
	if t2 := 0.5 - x2*x2 - y2*y2; t2 > 0 {
		t2 *= t2
		n2 = t2 * t2 * dot2(grad3[gi2], x2, y2)
	}

	return 70 * (n0 + n1 + n2)
}
