package core

import (
	"math"
	"math/rand"
	"testing"
)

// constPDF is a stub distribution with a fixed density and direction
type constPDF struct {
	density   float64
	direction Vec3
}

func (p constPDF) Value(direction Vec3) float64 { return p.density }
func (p constPDF) Generate(sampler Sampler) Vec3 {
	return p.direction
}

func TestMixturePDF_ValueIsExactAverage(t *testing.T) {
	a := constPDF{density: 0.8, direction: NewVec3(1, 0, 0)}
	b := constPDF{density: 0.2, direction: NewVec3(0, 1, 0)}
	mixture := NewMixturePDF(a, b)

	directions := []Vec3{
		NewVec3(1, 0, 0),
		NewVec3(0, 0, 1),
		NewVec3(-1, 2, 0.5),
		NewVec3(0.3, -0.7, 0.1),
	}

	for _, dir := range directions {
		got := mixture.Value(dir)
		expected := 0.5*a.Value(dir) + 0.5*b.Value(dir)
		if got != expected {
			t.Errorf("mixture density for %v: got %v, expected exactly %v", dir, got, expected)
		}
	}
}

func TestMixturePDF_GenerateUsesBothComponents(t *testing.T) {
	a := constPDF{density: 1, direction: NewVec3(1, 0, 0)}
	b := constPDF{density: 1, direction: NewVec3(0, 1, 0)}
	mixture := NewMixturePDF(a, b)
	sampler := NewRandomSampler(rand.New(rand.NewSource(7)))

	countA := 0
	trials := 10000
	for i := 0; i < trials; i++ {
		if mixture.Generate(sampler) == a.direction {
			countA++
		}
	}

	fraction := float64(countA) / float64(trials)
	if math.Abs(fraction-0.5) > 0.02 {
		t.Errorf("component A chosen with frequency %f, expected ~0.5", fraction)
	}
}

func TestCosinePDF_ValueFormula(t *testing.T) {
	normal := NewVec3(0, 0, 1)
	pdf := NewCosinePDF(normal)

	// Straight up: cos=1
	if got := pdf.Value(NewVec3(0, 0, 1)); math.Abs(got-1.0/math.Pi) > 1e-12 {
		t.Errorf("density straight up: got %f, expected %f", got, 1.0/math.Pi)
	}

	// 60 degrees: cos=0.5
	dir := NewVec3(math.Sqrt(3)/2, 0, 0.5)
	if got := pdf.Value(dir); math.Abs(got-0.5/math.Pi) > 1e-12 {
		t.Errorf("density at 60 degrees: got %f, expected %f", got, 0.5/math.Pi)
	}

	// Below the surface: zero, never negative
	if got := pdf.Value(NewVec3(0, 0, -1)); got != 0 {
		t.Errorf("density below surface: got %f, expected 0", got)
	}
}

func TestCosinePDF_IntegratesToOne(t *testing.T) {
	normal := NewVec3(0, 1, 0).Normalize()
	pdf := NewCosinePDF(normal)
	random := rand.New(rand.NewSource(42))

	// Uniform hemisphere Monte Carlo: E[pdf] * 2π should be 1
	samples := 200000
	sum := 0.0
	for i := 0; i < samples; i++ {
		dir := SampleOnUnitSphere(NewVec2(random.Float64(), random.Float64()))
		if dir.Dot(normal) < 0 {
			dir = dir.Negate()
		}
		sum += pdf.Value(dir)
	}

	integral := sum / float64(samples) * 2 * math.Pi
	if math.Abs(integral-1.0) > 0.02 {
		t.Errorf("cosine density integrates to %f, expected 1", integral)
	}
}

func TestCosinePDF_SampledDensityMatchesValue(t *testing.T) {
	normal := NewVec3(0.3, 0.8, -0.2).Normalize()
	pdf := NewCosinePDF(normal)
	sampler := NewRandomSampler(rand.New(rand.NewSource(11)))

	for i := 0; i < 1000; i++ {
		dir := pdf.Generate(sampler)

		cosine := dir.Normalize().Dot(normal)
		if cosine < -1e-12 {
			t.Fatalf("generated direction below surface: %v", dir)
		}

		expected := math.Max(0, cosine) / math.Pi
		if math.Abs(pdf.Value(dir)-expected) > 1e-9 {
			t.Fatalf("Value %f disagrees with expected density %f", pdf.Value(dir), expected)
		}
	}
}

func TestSpherePDF_UniformDensity(t *testing.T) {
	pdf := NewSpherePDF()
	expected := 1.0 / (4.0 * math.Pi)

	for _, dir := range []Vec3{NewVec3(1, 0, 0), NewVec3(0, -1, 0), NewVec3(1, 2, 3)} {
		if got := pdf.Value(dir); got != expected {
			t.Errorf("sphere density for %v: got %f, expected %f", dir, got, expected)
		}
	}
}

// fakeTarget is a stub Hittable exposing a fixed density and direction
type fakeTarget struct {
	NonSampleable
	density   float64
	direction Vec3
}

func (f fakeTarget) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) { return nil, false }
func (f fakeTarget) BoundingBox(t0, t1 float64) (AABB, bool)           { return AABB{}, false }
func (f fakeTarget) PDFValue(origin, direction Vec3) float64           { return f.density }
func (f fakeTarget) RandomDirection(origin Vec3, sampler Sampler) Vec3 { return f.direction }

func TestHittablePDF_Delegates(t *testing.T) {
	target := fakeTarget{density: 0.25, direction: NewVec3(0, 0, 1)}
	pdf := NewHittablePDF(target, NewVec3(1, 2, 3))
	sampler := NewRandomSampler(rand.New(rand.NewSource(1)))

	if got := pdf.Value(NewVec3(1, 0, 0)); got != 0.25 {
		t.Errorf("delegated density: got %f, expected 0.25", got)
	}
	if got := pdf.Generate(sampler); got != target.direction {
		t.Errorf("delegated direction: got %v", got)
	}
}

func TestONB_Orthonormal(t *testing.T) {
	axes := []Vec3{
		NewVec3(0, 0, 1),
		NewVec3(1, 0, 0),
		NewVec3(0.957, 0.2, -0.1),
		NewVec3(-3, 1, 2),
	}

	for _, axis := range axes {
		uvw := NewONB(axis)

		for _, v := range []Vec3{uvw.U, uvw.V, uvw.W} {
			if math.Abs(v.Length()-1) > 1e-12 {
				t.Errorf("basis vector %v not unit length for axis %v", v, axis)
			}
		}

		if math.Abs(uvw.U.Dot(uvw.V)) > 1e-12 ||
			math.Abs(uvw.V.Dot(uvw.W)) > 1e-12 ||
			math.Abs(uvw.U.Dot(uvw.W)) > 1e-12 {
			t.Errorf("basis not orthogonal for axis %v", axis)
		}

		if uvw.W.Dot(axis.Normalize()) < 1-1e-12 {
			t.Errorf("W %v not aligned with axis %v", uvw.W, axis)
		}
	}
}
