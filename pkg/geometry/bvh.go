package geometry

import (
	"sort"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

// Leaf threshold: nodes with this many or fewer shapes become leaves and
// use linear search
const leafThreshold = 4

// bvhNode is a node in the bounding volume hierarchy
type bvhNode struct {
	boundingBox core.AABB
	left        *bvhNode
	right       *bvhNode
	shapes      []core.Hittable // Only set for leaf nodes
}

// BVH is a bounding volume hierarchy for fast ray-object intersection.
// It exposes the same Hittable contract as the aggregates it accelerates,
// so the integrator treats it as an opaque scene root.
type BVH struct {
	core.NonSampleable
	root      *bvhNode
	unbounded []core.Hittable // Shapes with no box, always tested linearly
	box       core.AABB
	hasBox    bool
}

// NewBVH constructs a BVH from shapes, using their extent over [t0, t1]
func NewBVH(shapes []core.Hittable, t0, t1 float64) *BVH {
	bvh := &BVH{}

	// Unbounded shapes cannot be partitioned spatially
	type boundedShape struct {
		shape core.Hittable
		box   core.AABB
	}
	var bounded []boundedShape
	for _, shape := range shapes {
		if box, ok := shape.BoundingBox(t0, t1); ok {
			bounded = append(bounded, boundedShape{shape: shape, box: box})
		} else {
			bvh.unbounded = append(bvh.unbounded, shape)
		}
	}

	if len(bounded) > 0 {
		boxes := make(map[core.Hittable]core.AABB, len(bounded))
		ordered := make([]core.Hittable, len(bounded))
		for i, bs := range bounded {
			boxes[bs.shape] = bs.box
			ordered[i] = bs.shape
		}
		bvh.root = buildBVH(ordered, boxes)
		bvh.box = bvh.root.boundingBox
		bvh.hasBox = len(bvh.unbounded) == 0
	}

	return bvh
}

// buildBVH recursively builds the hierarchy by median split along the
// longest axis, with leaf thresholding
func buildBVH(shapes []core.Hittable, boxes map[core.Hittable]core.AABB) *bvhNode {
	boundingBox := boxes[shapes[0]]
	for _, shape := range shapes[1:] {
		boundingBox = boundingBox.Union(boxes[shape])
	}

	if len(shapes) <= leafThreshold {
		return &bvhNode{boundingBox: boundingBox, shapes: shapes}
	}

	axis := boundingBox.LongestAxis()
	sort.Slice(shapes, func(i, j int) bool {
		return boxes[shapes[i]].Center().Axis(axis) < boxes[shapes[j]].Center().Axis(axis)
	})

	mid := len(shapes) / 2
	return &bvhNode{
		boundingBox: boundingBox,
		left:        buildBVH(shapes[:mid], boxes),
		right:       buildBVH(shapes[mid:], boxes),
	}
}

// Hit tests if a ray intersects any shape in the hierarchy
func (bvh *BVH) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	closestSoFar := tMax

	for _, shape := range bvh.unbounded {
		if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
			closest = hit
			closestSoFar = hit.T
		}
	}

	if bvh.root != nil {
		if hit, ok := hitNode(bvh.root, ray, tMin, closestSoFar); ok {
			closest = hit
		}
	}

	return closest, closest != nil
}

// hitNode recursively tests ray intersection against the hierarchy
func hitNode(node *bvhNode, ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	if !node.boundingBox.Hit(ray, tMin, tMax) {
		return nil, false
	}

	if node.shapes != nil {
		var closest *core.HitRecord
		closestSoFar := tMax
		for _, shape := range node.shapes {
			if hit, ok := shape.Hit(ray, tMin, closestSoFar); ok {
				closest = hit
				closestSoFar = hit.T
			}
		}
		return closest, closest != nil
	}

	leftHit, leftOk := hitNode(node.left, ray, tMin, tMax)
	if leftOk {
		tMax = leftHit.T
	}
	rightHit, rightOk := hitNode(node.right, ray, tMin, tMax)
	if rightOk {
		return rightHit, true
	}
	return leftHit, leftOk
}

// BoundingBox returns the extent of all bounded shapes; absent if any
// member is unbounded or the hierarchy is empty
func (bvh *BVH) BoundingBox(t0, t1 float64) (core.AABB, bool) {
	return bvh.box, bvh.hasBox
}
