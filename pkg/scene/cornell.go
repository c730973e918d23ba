package scene

import (
	"github.com/fernlight/go-pathtracer/pkg/core"
	"github.com/fernlight/go-pathtracer/pkg/geometry"
	"github.com/fernlight/go-pathtracer/pkg/material"
	"github.com/fernlight/go-pathtracer/pkg/renderer"
)

// NewCornellScene builds the classic Cornell box: colored walls, a ceiling
// light flipped to radiate downward, and two rotated boxes
func NewCornellScene() *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(15, 15, 15))

	lightRect := geometry.NewXZRect(213, 343, 227, 332, 554, light)

	world := geometry.NewList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewFlipFace(lightRect),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15,
		),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18,
		),
		core.NewVec3(130, 0, 65),
	)
	world.Add(tall)
	world.Add(short)

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &Scene{
		World:      geometry.NewBVH(world.Objects, 0, 1),
		Lights:     geometry.NewList(lightRect),
		Camera:     camera,
		Background: core.Vec3{},
		Width:      400,
		Height:     400,
	}
}

// NewCornellSmokeScene replaces the Cornell boxes with constant-density
// participating media, one bright and one dark
func NewCornellSmokeScene() *Scene {
	red := material.NewLambertian(core.NewVec3(0.65, 0.05, 0.05))
	white := material.NewLambertian(core.NewVec3(0.73, 0.73, 0.73))
	green := material.NewLambertian(core.NewVec3(0.12, 0.45, 0.15))
	light := material.NewDiffuseLight(core.NewVec3(7, 7, 7))

	lightRect := geometry.NewXZRect(113, 443, 127, 432, 554, light)

	world := geometry.NewList(
		geometry.NewYZRect(0, 555, 0, 555, 555, green),
		geometry.NewYZRect(0, 555, 0, 555, 0, red),
		geometry.NewFlipFace(lightRect),
		geometry.NewXZRect(0, 555, 0, 555, 0, white),
		geometry.NewXZRect(0, 555, 0, 555, 555, white),
		geometry.NewXYRect(0, 555, 0, 555, 555, white),
	)

	tall := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 330, 165), white),
			15,
		),
		core.NewVec3(265, 0, 295),
	)
	short := geometry.NewTranslate(
		geometry.NewRotateY(
			geometry.NewBox(core.NewVec3(0, 0, 0), core.NewVec3(165, 165, 165), white),
			-18,
		),
		core.NewVec3(130, 0, 65),
	)

	world.Add(geometry.NewConstantMedium(tall, 0.01, material.NewIsotropic(core.NewVec3(0, 0, 0))))
	world.Add(geometry.NewConstantMedium(short, 0.01, material.NewIsotropic(core.NewVec3(1, 1, 1))))

	camera := renderer.NewCamera(renderer.CameraConfig{
		LookFrom:      core.NewVec3(278, 278, -800),
		LookAt:        core.NewVec3(278, 278, 0),
		VUp:           core.NewVec3(0, 1, 0),
		VFov:          40,
		AspectRatio:   1.0,
		Aperture:      0,
		FocusDistance: 10,
		Time0:         0,
		Time1:         1,
	})

	return &Scene{
		World:      geometry.NewBVH(world.Objects, 0, 1),
		Lights:     geometry.NewList(lightRect),
		Camera:     camera,
		Background: core.Vec3{},
		Width:      400,
		Height:     400,
	}
}
