package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

func TestSphere_Hit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1, nil)

	ray := core.NewRay(core.NewVec3(-5, 0, 0), core.NewVec3(1, 0, 0))
	hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit")
	}
	if math.Abs(hit.T-4) > 1e-12 {
		t.Errorf("t = %f, expected 4", hit.T)
	}
	if !hit.FrontFace {
		t.Error("outside hit should be front face")
	}
	if hit.Normal.Subtract(core.NewVec3(-1, 0, 0)).Length() > 1e-12 {
		t.Errorf("normal = %v, expected (-1,0,0)", hit.Normal)
	}

	miss := core.NewRay(core.NewVec3(-5, 2, 0), core.NewVec3(1, 0, 0))
	if _, ok := sphere.Hit(miss, 0.001, math.Inf(1)); ok {
		t.Error("expected miss")
	}
}

func TestSphere_InsideHit(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 2, nil)

	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 1, 0))
	hit, ok := sphere.Hit(ray, 0.001, math.Inf(1))
	if !ok {
		t.Fatal("expected hit from inside")
	}
	if hit.FrontFace {
		t.Error("inside hit should be back face")
	}
	// Normal is oriented against the ray
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("normal %v not facing the ray", hit.Normal)
	}
}

func TestSphere_UV(t *testing.T) {
	u, v := sphereUV(core.NewVec3(0, 1, 0))
	if math.Abs(v-1) > 1e-12 {
		t.Errorf("north pole v = %f, expected 1", v)
	}

	u, v = sphereUV(core.NewVec3(0, -1, 0))
	if math.Abs(v) > 1e-12 {
		t.Errorf("south pole v = %f, expected 0", v)
	}

	u, v = sphereUV(core.NewVec3(-1, 0, 0))
	if math.Abs(u) > 1e-12 && math.Abs(u-1) > 1e-12 {
		t.Errorf("seam u = %f, expected 0 or 1", u)
	}
	if math.Abs(v-0.5) > 1e-12 {
		t.Errorf("equator v = %f, expected 0.5", v)
	}
}

func TestSphere_PDFValueMatchesSolidAngle(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 10), 1, nil)
	origin := core.NewVec3(0, 0, 0)

	// Solid angle of the subtended cone: 2π(1 − √(1 − r²/d²))
	cosThetaMax := math.Sqrt(1 - 1.0/100.0)
	expected := 1.0 / (2 * math.Pi * (1 - cosThetaMax))

	got := sphere.PDFValue(origin, core.NewVec3(0, 0, 1))
	if math.Abs(got-expected) > 1e-9 {
		t.Errorf("density = %f, expected %f", got, expected)
	}

	if got := sphere.PDFValue(origin, core.NewVec3(0, 0, -1)); got != 0 {
		t.Errorf("density away from sphere = %f, expected 0", got)
	}
}

func TestSphere_RandomDirectionHitsSphere(t *testing.T) {
	sphere := NewSphere(core.NewVec3(3, -2, 7), 1.5, nil)
	origin := core.NewVec3(0, 0, 0)
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(17)))

	for i := 0; i < 1000; i++ {
		dir := sphere.RandomDirection(origin, sampler)
		if _, ok := sphere.Hit(core.NewRay(origin, dir), 1e-3, math.Inf(1)); !ok {
			t.Fatalf("sampled direction %v misses the sphere", dir)
		}
	}
}

func TestMovingSphere_CenterInterpolation(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0),
		0, 1, 1, nil,
	)

	if got := sphere.CenterAt(0); got != core.NewVec3(0, 0, 0) {
		t.Errorf("center at t=0: %v", got)
	}
	if got := sphere.CenterAt(1); got != core.NewVec3(10, 0, 0) {
		t.Errorf("center at t=1: %v", got)
	}
	if got := sphere.CenterAt(0.5); got != core.NewVec3(5, 0, 0) {
		t.Errorf("center at t=0.5: %v", got)
	}
}

func TestMovingSphere_HitDependsOnRayTime(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0),
		0, 1, 1, nil,
	)

	// At time 0 the sphere is at the origin; at time 1 it has moved away
	early := core.NewRayAt(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 0)
	if _, ok := sphere.Hit(early, 0.001, math.Inf(1)); !ok {
		t.Error("expected hit at time 0")
	}

	late := core.NewRayAt(core.NewVec3(0, 0, -5), core.NewVec3(0, 0, 1), 1)
	if _, ok := sphere.Hit(late, 0.001, math.Inf(1)); ok {
		t.Error("expected miss at time 1 after the sphere moved")
	}
}

func TestMovingSphere_BoundingBoxCoversPath(t *testing.T) {
	sphere := NewMovingSphere(
		core.NewVec3(0, 0, 0), core.NewVec3(10, 0, 0),
		0, 1, 1, nil,
	)

	box, ok := sphere.BoundingBox(0, 1)
	if !ok {
		t.Fatal("expected bounding box")
	}
	if box.Min.X > -1 || box.Max.X < 11 {
		t.Errorf("box %v does not cover the motion path", box)
	}
}
