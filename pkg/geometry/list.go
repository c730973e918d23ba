package geometry

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
)

// List is an ordered aggregate of hittables. It doubles as the designated
// light set handed to the integrator for importance sampling.
type List struct {
	Objects []core.Hittable
}

// NewList creates a list from the given hittables
func NewList(objects ...core.Hittable) *List {
	return &List{Objects: objects}
}

// Add appends an object to the list
func (l *List) Add(object core.Hittable) {
	l.Objects = append(l.Objects, object)
}

// Hit tests every member and keeps the closest qualifying result. The
// current best t acts as a shrinking upper bound for subsequent tests.
func (l *List) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, object := range l.Objects {
		if hit, ok := object.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	return closest, closest != nil
}

// BoundingBox returns the union of all members' boxes, absent if the list
// is empty or any member is unbounded
func (l *List) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	if len(l.Objects) == 0 {
		return core.AABB{}, false
	}

	var box core.AABB
	first := true
	for _, object := range l.Objects {
		objectBox, ok := object.BoundingBox(t0, t1)
		if !ok {
			return core.AABB{}, false
		}
		if first {
			box = objectBox
			first = false
		} else {
			box = box.Union(objectBox)
		}
	}

	return box, true
}

// PDFValue returns the unweighted arithmetic mean of member densities,
// consistent with RandomDirection choosing a member uniformly.
// A non-empty list is a precondition.
func (l *List) PDFValue(origin, direction core.Vec3) float64 {
	weight := 1.0 / float64(len(l.Objects))
	sum := 0.0
	for _, object := range l.Objects {
		sum += weight * object.PDFValue(origin, direction)
	}
	return sum
}

// RandomDirection picks one member uniformly at random and delegates.
// A non-empty list is a precondition.
func (l *List) RandomDirection(origin core.Vec3, sampler core.Sampler) core.Vec3 {
	index := int(sampler.Get1D() * float64(len(l.Objects)))
	if index >= len(l.Objects) {
		index = len(l.Objects) - 1
	}
	return l.Objects[index].RandomDirection(origin, sampler)
}
