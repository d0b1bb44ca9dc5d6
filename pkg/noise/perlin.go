// Package noise provides Perlin gradient noise and the fractal sums built on it.
package noise

import gomath "math"

// perm is Ken Perlin's reference permutation. The trailing entry repeats
// perm[0] so lookups at index+1 never need a second wrap.
var perm = [257]int32{
	151, 160, 137, 91, 90, 15,
	131, 13, 201, 95, 96, 53, 194, 233, 7, 225, 140, 36, 103, 30, 69, 142, 8, 99, 37, 240, 21, 10, 23,
	190, 6, 148, 247, 120, 234, 75, 0, 26, 197, 62, 94, 252, 219, 203, 117, 35, 11, 32, 57, 177, 33,
	88, 237, 149, 56, 87, 174, 20, 125, 136, 171, 168, 68, 175, 74, 165, 71, 134, 139, 48, 27, 166,
	77, 146, 158, 231, 83, 111, 229, 122, 60, 211, 133, 230, 220, 105, 92, 41, 55, 46, 245, 40, 244,
	102, 143, 54, 65, 25, 63, 161, 1, 216, 80, 73, 209, 76, 132, 187, 208, 89, 18, 169, 200, 196,
	135, 130, 116, 188, 159, 86, 164, 100, 109, 198, 173, 186, 3, 64, 52, 217, 226, 250, 124, 123,
	5, 202, 38, 147, 118, 126, 255, 82, 85, 212, 207, 206, 59, 227, 47, 16, 58, 17, 182, 189, 28, 42,
	223, 183, 170, 213, 119, 248, 152, 2, 44, 154, 163, 70, 221, 153, 101, 155, 167, 43, 172, 9,
	129, 22, 39, 253, 19, 98, 108, 110, 79, 113, 224, 232, 178, 185, 112, 104, 218, 246, 97, 228,
	251, 34, 242, 193, 238, 210, 144, 12, 191, 179, 162, 241, 81, 51, 145, 235, 249, 14, 239, 107,
	49, 192, 214, 31, 181, 199, 106, 157, 184, 84, 204, 176, 115, 121, 50, 45, 127, 4, 150, 254,
	138, 236, 205, 93, 222, 114, 67, 29, 24, 72, 243, 141, 128, 195, 78, 66, 215, 61, 156, 180,
	151,
}

// Noise1 returns 1D gradient noise at x. The result is zero at integer x.
func Noise1(x float32) float32 {
	X, x := lattice(x)
	return lerp(fade(x), grad1(X, x), grad1(X+1, x-1))
}

// Noise2 returns 2D gradient noise at (x, y).
func Noise2(x, y float32) float32 {
	X, x := lattice(x)
	Y, y := lattice(y)
	u := fade(x)
	v := fade(y)
	A := (perm[X] + Y) & 0xff
	B := (perm[X+1] + Y) & 0xff
	return lerp(v,
		lerp(u, grad2(A, x, y), grad2(B, x-1, y)),
		lerp(u, grad2(A+1, x, y-1), grad2(B+1, x-1, y-1)))
}

// Noise3 returns 3D gradient noise at (x, y, z), roughly in [-1, 1].
// The field is C1-continuous and repeats every 256 units on each axis.
func Noise3(x, y, z float32) float32 {
	X, x := lattice(x)
	Y, y := lattice(y)
	Z, z := lattice(z)
	u := fade(x)
	v := fade(y)
	w := fade(z)
	A := (perm[X] + Y) & 0xff
	B := (perm[X+1] + Y) & 0xff
	AA := (perm[A] + Z) & 0xff
	BA := (perm[B] + Z) & 0xff
	AB := (perm[A+1] + Z) & 0xff
	BB := (perm[B+1] + Z) & 0xff
	return lerp(w,
		lerp(v,
			lerp(u, grad3(AA, x, y, z), grad3(BA, x-1, y, z)),
			lerp(u, grad3(AB, x, y-1, z), grad3(BB, x-1, y-1, z))),
		lerp(v,
			lerp(u, grad3(AA+1, x, y, z-1), grad3(BA+1, x-1, y, z-1)),
			lerp(u, grad3(AB+1, x, y-1, z-1), grad3(BB+1, x-1, y-1, z-1))))
}

// lattice splits x into its cell index wrapped to [0, 255] and the
// fractional offset within the cell. The wrap is taken in float64 so
// coordinates beyond the int32 range stay on the 256-unit period.
func lattice(x float32) (int32, float32) {
	fl := gomath.Floor(float64(x))
	cell := gomath.Mod(fl, 256)
	if cell < 0 {
		cell += 256
	}
	return int32(cell), float32(float64(x) - fl)
}

// fade is the quintic 6t^5 - 15t^4 + 10t^3.
func fade(t float32) float32 {
	return t * t * t * (t*(t*6-15) + 10)
}

func lerp(t, a, b float32) float32 {
	return a + t*(b-a)
}

func grad1(i int32, x float32) float32 {
	if perm[i]&1 != 0 {
		return x
	}
	return -x
}

func grad2(i int32, x, y float32) float32 {
	h := perm[i]
	return signed(h&1 != 0, x) + signed(h&2 != 0, y)
}

func grad3(i int32, x, y, z float32) float32 {
	h := perm[i] & 15
	u := y
	if h < 8 {
		u = x
	}
	var v float32
	switch {
	case h < 4:
		v = y
	case h == 12 || h == 14:
		v = x
	default:
		v = z
	}
	return signed(h&1 != 0, u) + signed(h&2 != 0, v)
}

func signed(positive bool, x float32) float32 {
	if positive {
		return x
	}
	return -x
}
