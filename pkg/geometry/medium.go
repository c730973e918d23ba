package geometry

import (
	"math"
	"math/rand"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// ConstantMedium is a participating medium of uniform density filling the
// volume of a boundary shape. A ray passing through it scatters at an
// exponentially distributed depth; the scattering itself is handled by the
// medium's phase-function material, usually Isotropic.
type ConstantMedium struct {
	core.NonSampleable
	Boundary      core.Hittable
	PhaseFunction core.Material
	negInvDensity float64
}

// NewConstantMedium creates a medium of the given density inside boundary,
// scattering through the given phase-function material
func NewConstantMedium(boundary core.Hittable, density float64, phaseFunction core.Material) *ConstantMedium {
	return &ConstantMedium{
		Boundary:      boundary,
		PhaseFunction: phaseFunction,
		negInvDensity: -1.0 / density,
	}
}

// Hit finds the span of the ray inside the boundary and draws an
// exponentially distributed scatter distance along it.
// The entry/exit solve supports convex boundaries.
func (m *ConstantMedium) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	entry, ok := m.Boundary.Hit(ray, math.Inf(-1), math.Inf(1))
	if !ok {
		return nil, false
	}

	exit, ok := m.Boundary.Hit(ray, entry.T+1e-4, math.Inf(1))
	if !ok {
		return nil, false
	}

	tEnter := math.Max(entry.T, tMin)
	tExit := math.Min(exit.T, tMax)
	if tEnter >= tExit {
		return nil, false
	}
	if tEnter < 0 {
		tEnter = 0
	}

	rayLength := ray.Direction.Length()
	distanceInside := (tExit - tEnter) * rayLength

	// The global source is locked internally, which keeps concurrent
	// renders safe at the cost of cross-ray reproducibility here.
	hitDistance := m.negInvDensity * math.Log(rand.Float64())
	if hitDistance > distanceInside {
		return nil, false
	}

	t := tEnter + hitDistance/rayLength
	hit := &core.HitRecord{
		T:         t,
		Point:     ray.At(t),
		Normal:    core.NewVec3(1, 0, 0), // Arbitrary, unused by the phase function
		FrontFace: true,
		Material:  m.PhaseFunction,
	}

	return hit, true
}

// BoundingBox delegates to the boundary shape
func (m *ConstantMedium) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return m.Boundary.BoundingBox(t0, t1)
}
