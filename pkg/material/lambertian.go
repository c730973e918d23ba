package material

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Lambertian represents a perfectly diffuse material
type Lambertian struct {
	Albedo core.Texture // Base color/reflectance (solid or textured)
}

// NewLambertian creates a lambertian material with a solid color
func NewLambertian(albedo core.Vec3) *Lambertian {
	return &Lambertian{Albedo: NewSolidColor(albedo)}
}

// NewTexturedLambertian creates a lambertian material with a texture
func NewTexturedLambertian(albedo core.Texture) *Lambertian {
	return &Lambertian{Albedo: albedo}
}

// Emitted returns black; lambertian surfaces do not emit
func (l *Lambertian) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	return core.Vec3{}
}

// Scatter produces a non-specular outcome whose outgoing distribution is
// cosine-weighted about the hit normal
func (l *Lambertian) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{
		Attenuation: l.Albedo.Value(hit.U, hit.V, hit.Point),
		Specular:    false,
		PDF:         core.NewCosinePDF(hit.Normal),
	}, true
}

// ScatteringPDF returns max(0, cosθ)/π, matching the density the cosine
// distribution actually samples from
func (l *Lambertian) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	cosine := hit.Normal.Dot(scattered.Direction.Normalize())
	if cosine < 0 {
		return 0
	}
	return cosine / math.Pi
}
