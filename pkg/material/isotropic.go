package material

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Isotropic scatters uniformly in all directions, serving as the phase
// function of a participating medium
type Isotropic struct {
	Albedo core.Texture
}

// NewIsotropic creates an isotropic material with a solid color
func NewIsotropic(albedo core.Vec3) *Isotropic {
	return &Isotropic{Albedo: NewSolidColor(albedo)}
}

// NewTexturedIsotropic creates an isotropic material with a texture
func NewTexturedIsotropic(albedo core.Texture) *Isotropic {
	return &Isotropic{Albedo: albedo}
}

// Emitted returns black; media do not emit
func (i *Isotropic) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter produces a non-specular outcome distributed uniformly over the
// sphere of directions
func (i *Isotropic) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: i.Albedo.Value(hit.U, hit.V, hit.Point),
		Specular:    false,
		PDF:         core.NewSpherePDF(),
	}, true
}

// ScatteringPDF returns the uniform sphere density 1/(4π)
func (i *Isotropic) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 1.0 / (4.0 * math.Pi)
}
