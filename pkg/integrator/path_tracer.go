package integrator

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Self-intersection epsilon for the primary intersection query
const shadowEpsilon = 1e-3

// Mixture densities below this are treated as zero contribution rather
// than a division fault
const minDensity = 1e-12

// PathTracer estimates the radiance arriving along a ray by recursively
// sampling the rendering equation, combining light-directed and
// material-directed sampling through an equal-weight mixture distribution.
type PathTracer struct {
	Background core.Vec3 // Radiance returned for rays that escape the scene
	MaxDepth   int       // Bounce budget capping recursion depth
}

// NewPathTracer creates a path tracer with the given background and bounce
// budget
func NewPathTracer(background core.Vec3, maxDepth int) *PathTracer {
	return &PathTracer{Background: background, MaxDepth: maxDepth}
}

// Li estimates radiance for a camera ray against the scene root, using
// lights as the importance-sampling target set. A non-empty light set is a
// precondition; scene construction is responsible for it.
func (pt *PathTracer) Li(ray core.Ray, world, lights core.Hittable, sampler core.Sampler) core.Vec3 {
	return pt.rayColor(ray, world, lights, pt.MaxDepth, sampler)
}

func (pt *PathTracer) rayColor(ray core.Ray, world, lights core.Hittable, depth int, sampler core.Sampler) core.Vec3 {
	// Budget exhausted, no more light is gathered
	if depth <= 0 {
		return core.Vec3{}
	}

	hit, ok := world.Hit(ray, shadowEpsilon, infinity)
	if !ok {
		return pt.Background
	}

	emitted := hit.Material.Emitted(ray, hit, hit.U, hit.V, hit.Point)

	scatter, ok := hit.Material.Scatter(ray, hit, sampler)
	if !ok {
		// Absorbed, the path ends with whatever the surface emits
		return emitted
	}

	if scatter.Specular {
		// Deterministic continuation, no density weighting
		next := pt.rayColor(scatter.SpecularRay, world, lights, depth-1, sampler)
		return emitted.Add(scatter.Attenuation.MultiplyVec(next))
	}

	// Blend sampling toward the light set with the material's own lobe.
	// The same mixture instance both generates the direction and reports
	// its density, which is what keeps the estimate unbiased.
	lightPDF := core.NewHittablePDF(lights, hit.Point)
	mixture := core.NewMixturePDF(lightPDF, scatter.PDF)

	direction := mixture.Generate(sampler)
	if direction.NearZero() {
		direction = hit.Normal
	}
	scattered := core.NewRayAt(hit.Point, direction, ray.Time)

	density := mixture.Value(direction)
	if density < minDensity {
		// Cannot form a finite estimator for this direction
		return emitted
	}

	scatteringPDF := hit.Material.ScatteringPDF(ray, hit, scattered)
	next := pt.rayColor(scattered, world, lights, depth-1, sampler)

	return emitted.Add(scatter.Attenuation.MultiplyVec(next).Multiply(scatteringPDF / density))
}
