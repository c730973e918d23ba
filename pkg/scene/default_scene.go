package scene

import (
	"math/rand"

	"github.com/fernlight/go-pathtracer/pkg/core"
	"github.com/fernlight/go-pathtracer/pkg/geometry"
	"github.com/fernlight/go-pathtracer/pkg/material"
	"github.com/fernlight/go-pathtracer/pkg/renderer"
)

// NewDefaultScene builds an open scene exercising the full material and
// texture set: checkered ground, glass, metal, marble and a motion-blurred
// sphere under a rectangular area light
func NewDefaultScene() *Scene {
	random := rand.New(rand.NewSource(1984))

	ground := material.NewTexturedLambertian(
		material.NewCheckerColors(
			core.NewVec3(0.2, 0.3, 0.1),
			core.NewVec3(0.9, 0.9, 0.9),
		),
	)
	marble := material.NewTexturedLambertian(material.NewNoiseTexture(4, random))
	glass := material.NewDielectric(1.5)
	steel := material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0.05)
	clay := material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))
	light := material.NewDiffuseLight(core.NewVec3(5, 5, 5))

	lightRect := geometry.NewXZRect(-2, 2, -2, 2, 6, light)

	world := geometry.NewList(
		geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground),
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1, glass),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1, clay),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1, steel),
		geometry.NewSphere(core.NewVec3(0, 1, -3), 1, marble),
		geometry.NewMovingSphere(
			core.NewVec3(2, 0.4, 2), core.NewVec3(2, 0.7, 2),
			0, 1, 0.4, clay,
		),
		geometry.NewFlipFace(lightRect),
	)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0.5, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          20,
		AspectRatio:   16.0 / 9.0,
		Aperture:      0.1,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &Scene{
		World:      geometry.NewBVH(world.Objects, 0, 1),
		Lights:     geometry.NewList(lightRect),
		Camera:     camera,
		Background: core.NewVec3(0.5, 0.7, 1.0).Multiply(0.2),
		Width:      400,
		Height:     225,
	}
}
