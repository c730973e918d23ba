package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/fernlight/go-pathtracer/pkg/core"
)

func surfaceHit(normal core.Vec3) *core.HitRecord {
	return &core.HitRecord{
		Point:     core.Vec3{},
		Normal:    normal,
		T:         1,
		FrontFace: true,
	}
}

func TestLambertian_ScatterReturnsCosinePDF(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.7, 0.3, 0.1))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(42)))
	hit := surfaceHit(core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	scatter, ok := lambertian.Scatter(rayIn, hit, sampler)
	if !ok {
		t.Fatal("diffuse surface must always scatter")
	}
	if scatter.Specular {
		t.Error("diffuse scatter must not be specular")
	}
	if scatter.PDF == nil {
		t.Fatal("diffuse scatter must carry a sampling density")
	}
	if scatter.Attenuation != core.NewVec3(0.7, 0.3, 0.1) {
		t.Errorf("attenuation = %v, want albedo", scatter.Attenuation)
	}

	// Samples stay in the hemisphere around the surface normal
	for i := 0; i < 1000; i++ {
		direction := scatter.PDF.Generate(sampler)
		if direction.Dot(hit.Normal) < 0 {
			t.Fatalf("sample %v leaves the upper hemisphere", direction)
		}
	}
}

func TestLambertian_ScatteringPDFMatchesSamplingDensity(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	sampler := core.NewRandomSampler(rand.New(rand.NewSource(7)))
	hit := surfaceHit(core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, -1), core.NewVec3(0, -1, 1))

	scatter, _ := lambertian.Scatter(rayIn, hit, sampler)
	for i := 0; i < 1000; i++ {
		direction := scatter.PDF.Generate(sampler)
		scattered := core.NewRay(hit.Point, direction)

		density := scatter.PDF.Value(direction)
		brdfPDF := lambertian.ScatteringPDF(rayIn, hit, scattered)
		if math.Abs(density-brdfPDF) > 1e-9 {
			t.Fatalf("sampling density %f != scattering density %f", density, brdfPDF)
		}
	}
}

func TestLambertian_ScatteringPDFBelowSurfaceIsZero(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	hit := surfaceHit(core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	scattered := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))

	if pdf := lambertian.ScatteringPDF(rayIn, hit, scattered); pdf != 0 {
		t.Errorf("density below the surface = %f, want 0", pdf)
	}
}

func TestLambertian_EmitsNothing(t *testing.T) {
	lambertian := NewLambertian(core.NewVec3(1, 1, 1))
	hit := surfaceHit(core.NewVec3(0, 1, 0))
	rayIn := core.NewRay(core.Vec3{}, core.NewVec3(0, -1, 0))

	if emitted := lambertian.Emitted(rayIn, hit, 0.5, 0.5, core.Vec3{}); emitted != (core.Vec3{}) {
		t.Errorf("emitted = %v, want black", emitted)
	}
}
