package renderer

import (
	"math"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Camera generates rays for normalized image-plane coordinates, with
// thin-lens depth of field and a shutter interval for motion blur
type Camera struct {
	origin          core.Vec3
	lowerLeftCorner core.Vec3
	horizontal      core.Vec3
	vertical        core.Vec3
	u, v            core.Vec3
	lensRadius      float64
	time0, time1    float64
}

// CameraConfig holds the parameters needed to position a camera
type CameraConfig struct {
	LookFrom      core.Vec3
	LookAt        core.Vec3
	VUp           core.Vec3
	VFov          float64 // Vertical field of view in degrees
	AspectRatio   float64
	Aperture      float64
	FocusDistance float64
	Time0, Time1  float64 // Shutter interval
}

// NewCamera creates a camera from the given configuration
func NewCamera(cfg CameraConfig) *Camera {
	theta := cfg.VFov * math.Pi / 180.0
	h := math.Tan(theta / 2)
	viewportHeight := 2.0 * h
	viewportWidth := cfg.AspectRatio * viewportHeight

	w := cfg.LookFrom.Subtract(cfg.LookAt).Normalize()
	u := cfg.VUp.Cross(w).Normalize()
	v := w.Cross(u)

	origin := cfg.LookFrom
	horizontal := u.Multiply(cfg.FocusDistance * viewportWidth)
	vertical := v.Multiply(cfg.FocusDistance * viewportHeight)
	lowerLeftCorner := origin.
		Subtract(horizontal.Multiply(0.5)).
		Subtract(vertical.Multiply(0.5)).
		Subtract(w.Multiply(cfg.FocusDistance))

	return &Camera{
		origin:          origin,
		lowerLeftCorner: lowerLeftCorner,
		horizontal:      horizontal,
		vertical:        vertical,
		u:               u,
		v:               v,
		lensRadius:      cfg.Aperture / 2,
		time0:           cfg.Time0,
		time1:           cfg.Time1,
	}
}

// GetRay generates a ray for screen coordinates (s, t) in [0,1]², with
// lens-aperture jitter and a time sampled within the shutter interval
func (c *Camera) GetRay(s, t float64, sampler core.Sampler) core.Ray {
	var offset core.Vec3
	if c.lensRadius > 0 {
		rd := core.SamplePointInUnitDisk(sampler.Get2D()).Multiply(c.lensRadius)
		offset = c.u.Multiply(rd.X).Add(c.v.Multiply(rd.Y))
	}

	direction := c.lowerLeftCorner.
		Add(c.horizontal.Multiply(s)).
		Add(c.vertical.Multiply(t)).
		Subtract(c.origin).
		Subtract(offset)

	time := c.time0 + sampler.Get1D()*(c.time1-c.time0)

	return core.NewRayAt(c.origin.Add(offset), direction, time)
}
