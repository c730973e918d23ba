package core

import "math"

// PDF pairs a directional probability density with a matching sampler.
// Value must always equal the true density of the sampling process behind
// Generate; the path-tracing estimator relies on this consistency to stay
// unbiased.
type PDF interface {
	// Value returns the density (≥ 0) of the given direction
	Value(direction Vec3) float64

	// Generate draws a direction from the distribution
	Generate(sampler Sampler) Vec3
}

// CosinePDF is a cosine-weighted hemisphere distribution around a normal
type CosinePDF struct {
	uvw ONB
}

// NewCosinePDF creates a cosine-weighted distribution about the given normal
func NewCosinePDF(normal Vec3) *CosinePDF {
	return &CosinePDF{uvw: NewONB(normal)}
}

// Value returns cos(θ)/π for directions above the surface, zero below
func (p *CosinePDF) Value(direction Vec3) float64 {
	cosine := direction.Normalize().Dot(p.uvw.W)
	if cosine <= 0 {
		return 0
	}
	return cosine / math.Pi
}

// Generate draws a cosine-weighted direction in the hemisphere
func (p *CosinePDF) Generate(sampler Sampler) Vec3 {
	return p.uvw.Local(SampleCosineDirection(sampler.Get2D()))
}

// SpherePDF is a uniform distribution over the full sphere of directions,
// used for isotropic scattering in participating media
type SpherePDF struct{}

// NewSpherePDF creates a uniform sphere distribution
func NewSpherePDF() *SpherePDF {
	return &SpherePDF{}
}

// Value returns the constant density 1/(4π)
func (p *SpherePDF) Value(direction Vec3) float64 {
	return 1.0 / (4.0 * math.Pi)
}

// Generate draws a uniform direction on the unit sphere
func (p *SpherePDF) Generate(sampler Sampler) Vec3 {
	return SampleOnUnitSphere(sampler.Get2D())
}

// HittablePDF importance-samples directions from a fixed origin toward a
// target Hittable, typically the scene's emissive geometry
type HittablePDF struct {
	target Hittable
	origin Vec3
}

// NewHittablePDF creates a distribution toward target as seen from origin
func NewHittablePDF(target Hittable, origin Vec3) *HittablePDF {
	return &HittablePDF{target: target, origin: origin}
}

// Value delegates to the target's solid-angle density
func (p *HittablePDF) Value(direction Vec3) float64 {
	return p.target.PDFValue(p.origin, direction)
}

// Generate delegates to the target's direction sampler
func (p *HittablePDF) Generate(sampler Sampler) Vec3 {
	return p.target.RandomDirection(p.origin, sampler)
}

// MixturePDF blends exactly two distributions with fixed equal weight
type MixturePDF struct {
	a, b PDF
}

// NewMixturePDF creates an equal-weight mixture of two distributions
func NewMixturePDF(a, b PDF) *MixturePDF {
	return &MixturePDF{a: a, b: b}
}

// Value always reports 0.5·a + 0.5·b for the direction, regardless of which
// component generated it. This is what keeps the estimator's weight
// unbiased.
func (p *MixturePDF) Value(direction Vec3) float64 {
	return 0.5*p.a.Value(direction) + 0.5*p.b.Value(direction)
}

// Generate flips an unbiased coin to choose the generating component
func (p *MixturePDF) Generate(sampler Sampler) Vec3 {
	if sampler.Get1D() < 0.5 {
		return p.a.Generate(sampler)
	}
	return p.b.Generate(sampler)
}
