package scene

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
	"github.com/fernlight/go-pathtracer/pkg/renderer"
)

// Scene bundles everything a render needs: the intersection root, the
// designated light set for importance sampling, the camera, and the
// background radiance for escaping rays.
//
// Lights must be non-empty: the estimator builds a mixture distribution
// against it without guarding (a degenerate scene is a construction bug,
// not a runtime condition).
type Scene struct {
	World      core.Hittable
	Lights     core.Hittable
	Camera     *renderer.Camera
	Background core.Vec3
	Width      int
	Height     int
}
