package material

import (
	"math"
	"math/rand"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

const perlinPointCount = 256

// Perlin is gradient noise over 3D space, immutable once built
type Perlin struct {
	ranVec []core.Vec3
	permX  []int
	permY  []int
	permZ  []int
}

// NewPerlin builds the gradient and permutation tables from the given
// random generator
func NewPerlin(random *rand.Rand) *Perlin {
	ranVec := make([]core.Vec3, perlinPointCount)
	for i := range ranVec {
		ranVec[i] = core.NewVec3(
			2*random.Float64()-1,
			2*random.Float64()-1,
			2*random.Float64()-1,
		).Normalize()
	}

	return &Perlin{
		ranVec: ranVec,
		permX:  perlinGeneratePerm(random),
		permY:  perlinGeneratePerm(random),
		permZ:  perlinGeneratePerm(random),
	}
}

func perlinGeneratePerm(random *rand.Rand) []int {
	perm := make([]int, perlinPointCount)
	for i := range perm {
		perm[i] = i
	}
	random.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	return perm
}

// Noise returns smoothed gradient noise in [-1, 1] at the given point
func (per *Perlin) Noise(p core.Vec3) float64 {
	u := p.X - math.Floor(p.X)
	v := p.Y - math.Floor(p.Y)
	w := p.Z - math.Floor(p.Z)

	i := int(math.Floor(p.X))
	j := int(math.Floor(p.Y))
	k := int(math.Floor(p.Z))

	var c [2][2][2]core.Vec3
	for di := 0; di < 2; di++ {
		for dj := 0; dj < 2; dj++ {
			for dk := 0; dk < 2; dk++ {
				c[di][dj][dk] = per.ranVec[per.permX[(i+di)&255]^
					per.permY[(j+dj)&255]^
					per.permZ[(k+dk)&255]]
			}
		}
	}

	return trilinearInterp(c, u, v, w)
}

// Turbulence sums successive octaves of noise at doubling frequencies
func (per *Perlin) Turbulence(p core.Vec3, depth int) float64 {
	accum := 0.0
	weight := 1.0
	temp := p

	for i := 0; i < depth; i++ {
		accum += weight * per.Noise(temp)
		weight *= 0.5
		temp = temp.Multiply(2)
	}

	return math.Abs(accum)
}

// trilinearInterp performs hermitian-smoothed trilinear interpolation over
// the gradient cell
func trilinearInterp(c [2][2][2]core.Vec3, u, v, w float64) float64 {
	uu := u * u * (3 - 2*u)
	vv := v * v * (3 - 2*v)
	ww := w * w * (3 - 2*w)

	accum := 0.0
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			for k := 0; k < 2; k++ {
				fi, fj, fk := float64(i), float64(j), float64(k)
				weight := core.NewVec3(u-fi, v-fj, w-fk)
				accum += (fi*uu + (1-fi)*(1-uu)) *
					(fj*vv + (1-fj)*(1-vv)) *
					(fk*ww + (1-fk)*(1-ww)) *
					c[i][j][k].Dot(weight)
			}
		}
	}

	return accum
}

// NoiseTexture is a marble-like procedural texture built on Perlin
// turbulence
type NoiseTexture struct {
	noise *Perlin
	scale float64
}

// NewNoiseTexture creates a noise texture with the given frequency scale
func NewNoiseTexture(scale float64, random *rand.Rand) *NoiseTexture {
	return &NoiseTexture{noise: NewPerlin(random), scale: scale}
}

// Value returns a grayscale marble pattern
func (n *NoiseTexture) Value(u, v float64, p core.Vec3) core.Vec3 {
	brightness := 0.5 * (1.0 + math.Sin(n.scale*p.Z+10*n.noise.Turbulence(p, 7)))
	return core.NewVec3(1, 1, 1).Multiply(brightness)
}
