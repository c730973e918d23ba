package integrator

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

var infinity = math.Inf(1)

// Integrator estimates radiance for a single camera ray
type Integrator interface {
	Li(ray core.Ray, world, lights core.Hittable, sampler core.Sampler) core.Vec3
}
