package core

import "math"

// ONB is an orthonormal basis with W as its principal axis
type ONB struct {
	U, V, W Vec3
}

// NewONB builds an orthonormal basis around the given axis
func NewONB(w Vec3) ONB {
	unitW := w.Normalize()

	// Pick a helper axis not parallel to W
	var a Vec3
	if math.Abs(unitW.X) > 0.9 {
		a = NewVec3(0, 1, 0)
	} else {
		a = NewVec3(1, 0, 0)
	}

	v := unitW.Cross(a).Normalize()
	u := unitW.Cross(v)

	return ONB{U: u, V: v, W: unitW}
}

// Local transforms a vector from basis coordinates to world space
func (o ONB) Local(a Vec3) Vec3 {
	return o.U.Multiply(a.X).Add(o.V.Multiply(a.Y)).Add(o.W.Multiply(a.Z))
}
