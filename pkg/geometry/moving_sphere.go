package geometry

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
)

// MovingSphere is a sphere whose center moves linearly between two points
// over a time interval, producing motion blur when rays carry times
// sampled across the camera's shutter
type MovingSphere struct {
	core.NonSampleable
	Center0, Center1 core.Vec3
	Time0, Time1     float64
	Radius           float64
	Material         core.Material
}

// NewMovingSphere creates a sphere moving from center0 at time0 to center1
// at time1
func NewMovingSphere(center0, center1 core.Vec3, time0, time1, radius float64, material core.Material) *MovingSphere {
	return &MovingSphere{
		Center0:  center0,
		Center1:  center1,
		Time0:    time0,
		Time1:    time1,
		Radius:   radius,
		Material: material,
	}
}

// CenterAt returns the interpolated center at the given time
func (s *MovingSphere) CenterAt(time float64) core.Vec3 {
	if s.Time1 == s.Time0 {
		return s.Center0
	}
	frac := (time - s.Time0) / (s.Time1 - s.Time0)
	return s.Center0.Add(s.Center1.Subtract(s.Center0).Multiply(frac))
}

// Hit tests the ray against the sphere at the ray's time
func (s *MovingSphere) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	center := s.CenterAt(ray.Time)

	root, ok := sphereRoot(ray, center, s.Radius, tMin, tMax)
	if !ok {
		return nil, false
	}

	hit := &core.HitRecord{
		T:        root,
		Point:    ray.At(root),
		Material: s.Material,
	}

	outwardNormal := hit.Point.Subtract(center).Multiply(1.0 / s.Radius)
	hit.U, hit.V = sphereUV(outwardNormal)
	hit.SetFaceNormal(ray, outwardNormal)

	return hit, true
}

// BoundingBox returns the union of the extreme boxes over [t0, t1]
func (s *MovingSphere) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	radius := core.NewVec3(s.Radius, s.Radius, s.Radius)
	center0 := s.CenterAt(t0)
	center1 := s.CenterAt(t1)

	box0 := core.NewAABB(center0.Subtract(radius), center0.Add(radius))
	box1 := core.NewAABB(center1.Subtract(radius), center1.Add(radius))
	return box0.Union(box1), true
}
