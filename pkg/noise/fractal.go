package noise

// Fractal4Weights are the octave weights of Fractal4. Each octave doubles
// both frequency and weight, so the finest octave dominates.
var Fractal4Weights = [4]float32{1, 2, 4, 8}

// Fractal4 sums four octaves of f starting at (x, y, z), doubling the
// sample coordinate and the weight after every octave.
func Fractal4(f Field, x, y, z float32) float32 {
	var disp float32
	w := float32(1)
	for range 4 {
		disp += f.Sample(x, y, z) * w
		w *= 2
		x *= 2
		y *= 2
		z *= 2
	}
	return disp
}

// Fractal4Coeffs sums four Perlin octaves at doubling frequency with
// caller-supplied weights.
func Fractal4Coeffs(x, y, z, w0, w1, w2, w3 float32) float32 {
	f := w0 * Noise3(x, y, z)
	x, y, z = x*2, y*2, z*2
	f += w1 * Noise3(x, y, z)
	x, y, z = x*2, y*2, z*2
	f += w2 * Noise3(x, y, z)
	x, y, z = x*2, y*2, z*2
	return f + w3*Noise3(x, y, z)
}

// FBM1 returns fractional Brownian motion over Noise1. The first octave
// has weight 0.5 and each following octave halves it.
func FBM1(x float32, octaves int) float32 {
	var f float32
	w := float32(0.5)
	for range octaves {
		f += w * Noise1(x)
		x *= 2
		w *= 0.5
	}
	return f
}

// FBM2 returns fractional Brownian motion over Noise2.
func FBM2(x, y float32, octaves int) float32 {
	var f float32
	w := float32(0.5)
	for range octaves {
		f += w * Noise2(x, y)
		x *= 2
		y *= 2
		w *= 0.5
	}
	return f
}

// FBM3 returns fractional Brownian motion over Noise3.
func FBM3(x, y, z float32, octaves int) float32 {
	var f float32
	w := float32(0.5)
	for range octaves {
		f += w * Noise3(x, y, z)
		x *= 2
		y *= 2
		z *= 2
		w *= 0.5
	}
	return f
}
