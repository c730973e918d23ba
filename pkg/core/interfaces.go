package core

// Hittable is any geometric entity or composite that can be tested for ray
// intersection and spatial extent. PDFValue and RandomDirection support
// importance sampling toward the shape and are only meaningful for
// light-sampling-capable variants; every other variant embeds
// NonSampleable and reports a zero density.
type Hittable interface {
	// Hit tests the ray against the shape within (tMin, tMax). A miss is an
	// ordinary outcome, reported through the bool.
	Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool)

	// BoundingBox returns the axis-aligned extent of the shape over the
	// time interval [t0, t1]. Unbounded shapes report false.
	BoundingBox(t0, t1 float64) (AABB, bool)

	// PDFValue returns the solid-angle density of sampling the given
	// direction from origin via RandomDirection.
	PDFValue(origin, direction Vec3) float64

	// RandomDirection draws a direction from origin toward the shape.
	RandomDirection(origin Vec3, sampler Sampler) Vec3
}

// NonSampleable provides the default PDF operations for shapes that cannot
// be importance-sampled. Embed it in any Hittable that is never used as a
// light-sampling target.
type NonSampleable struct{}

// PDFValue returns zero density
func (NonSampleable) PDFValue(origin, direction Vec3) float64 {
	return 0
}

// RandomDirection returns an arbitrary fixed direction
func (NonSampleable) RandomDirection(origin Vec3, sampler Sampler) Vec3 {
	return Vec3{X: 1, Y: 0, Z: 0}
}

// HitRecord contains information about a ray-object intersection
type HitRecord struct {
	Point     Vec3     // Point of intersection
	Normal    Vec3     // Surface normal at intersection, oriented against the ray
	T         float64  // Parameter t along the ray
	U, V      float64  // Surface coordinates in [0,1]²
	FrontFace bool     // Whether the ray hit the front face
	Material  Material // Material of the hit object
}

// SetFaceNormal sets the normal vector and determines front/back face
func (h *HitRecord) SetFaceNormal(ray Ray, outwardNormal Vec3) {
	h.FrontFace = ray.Direction.Dot(outwardNormal) < 0
	if h.FrontFace {
		h.Normal = outwardNormal
	} else {
		h.Normal = outwardNormal.Negate()
	}
}

// ScatterResult is the outcome of a material scattering a ray.
// Specular scattering carries a deterministic continuation ray and no
// density; diffuse scattering carries the distribution the outgoing
// direction should be drawn from instead.
type ScatterResult struct {
	Attenuation Vec3 // Color attenuation, components in [0,1]
	Specular    bool // Whether the outgoing direction is deterministic
	SpecularRay Ray  // Continuation ray, valid only when Specular
	PDF         PDF  // Outgoing direction distribution, valid only when not Specular
}

// Material is the emission + scattering contract of a surface. Emission and
// scattering are independent outputs of a hit: a non-scattering emissive
// surface terminates the path after returning its emission.
type Material interface {
	// Emitted returns the radiance the surface emits toward the ray.
	Emitted(rayIn Ray, hit *HitRecord, u, v float64, p Vec3) Vec3

	// Scatter produces the scatter outcome for a hit. Absorption is an
	// ordinary outcome, reported as false.
	Scatter(rayIn Ray, hit *HitRecord, sampler Sampler) (ScatterResult, bool)

	// ScatteringPDF returns the material's own density for the scattered
	// direction. Zero for specular and non-scattering materials.
	ScatteringPDF(rayIn Ray, hit *HitRecord, scattered Ray) float64
}

// Texture provides color as a function of surface coordinates
type Texture interface {
	Value(u, v float64, p Vec3) Vec3
}
