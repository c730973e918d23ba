package material

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
)

// DiffuseLight is a light-emitting material. It never scatters, and it
// only radiates from its front face.
type DiffuseLight struct {
	Emission core.Texture
}

// NewDiffuseLight creates a light with solid emission color
func NewDiffuseLight(emission core.Vec3) *DiffuseLight {
	return &DiffuseLight{Emission: NewSolidColor(emission)}
}

// NewTexturedDiffuseLight creates a light with textured emission
func NewTexturedDiffuseLight(emission core.Texture) *DiffuseLight {
	return &DiffuseLight{Emission: emission}
}

// Emitted returns the emission when the hit observed the front face,
// black otherwise
func (dl *DiffuseLight) Emitted(rayIn core.Ray, hit *core.HitRecord, u, v float64, p core.Vec3) core.Vec3 {
	if !hit.FrontFace {
		return core.Vec3{}
	}
	return dl.Emission.Value(u, v, p)
}

// Scatter returns a terminal outcome; lights absorb incoming rays
func (dl *DiffuseLight) Scatter(rayIn core.Ray, hit *core.HitRecord, sampler core.Sampler) (core.ScatterResult, bool) {
	return core.ScatterResult{}, false
}

// ScatteringPDF returns zero; lights never scatter
func (dl *DiffuseLight) ScatteringPDF(rayIn core.Ray, hit *core.HitRecord, scattered core.Ray) float64 {
	return 0
}
