package scene

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

func checkScene(t *testing.T, s *Scene) {
	t.Helper()
	if s.World == nil {
		t.Fatal("scene has no world")
	}
	if s.Lights == nil {
		t.Fatal("scene has no light set")
	}
	if s.Camera == nil {
		t.Fatal("scene has no camera")
	}
	if s.Width <= 0 || s.Height <= 0 {
		t.Fatalf("scene has degenerate native size %dx%d", s.Width, s.Height)
	}

	// The light set must be sampleable from an interior point: a direction
	// it generates must carry positive density.
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	origin := core.NewVec3(278, 278, 0)
	direction := s.Lights.RandomDirection(origin, sampler)
	if direction.NearZero() {
		t.Fatal("light set generated a zero direction")
	}
	if density := s.Lights.PDFValue(origin, direction); density <= 0 || math.IsInf(density, 0) {
		t.Fatalf("light set density %f for its own sample", density)
	}
}

func TestCornellScene(t *testing.T) {
	s := NewCornellScene()
	checkScene(t, s)

	// A ray straight into the box must hit something (the far wall)
	ray := core.NewRay(core.NewVec3(278, 278, -800), core.NewVec3(0, 0, 1))
	if _, ok := s.World.Hit(ray, 0.001, math.Inf(1)); !ok {
		t.Error("axial ray should reach the back wall")
	}
}

func TestCornellSmokeScene(t *testing.T) {
	checkScene(t, NewCornellSmokeScene())
}

func TestDefaultScene(t *testing.T) {
	s := NewDefaultScene()
	if s.World == nil || s.Lights == nil || s.Camera == nil {
		t.Fatal("incomplete scene")
	}

	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	direction := s.Lights.RandomDirection(core.NewVec3(0, 1, 0), sampler)
	if density := s.Lights.PDFValue(core.NewVec3(0, 1, 0), direction); density <= 0 {
		t.Errorf("light set density %f for its own sample", density)
	}
}
