package main

import (
	"flag"
	"fmt"
	"math"

	eternae "github.com/kazenoko-git/AbyssalEternae"
)

var (
	out     = flag.String("o", "out.png", "output PNG path")
	size    = flag.Int("size", 512, "output size in pixels")
	scale   = flag.Int("scale", 2, "supersampling factor")
	sunTime = flag.Float64("sun", 0.35, "sun angle as a fraction of a half day")
	taps    = flag.Int("taps", 3, "shadow filter taps per axis (1, 2 or 3)")
)

func main() {
	flag.Parse()

	angle := *sunTime * math.Pi
	sun := eternae.NewSunLight(eternae.V(math.Cos(angle), math.Sin(angle), 0.5))
	switch *taps {
	case 1:
		sun.Shadow.Taps = eternae.Taps1
	case 2:
		sun.Shadow.Taps = eternae.Taps2x2
	default:
		sun.Shadow.Taps = eternae.Taps3x3
	}

	eye := eternae.V(0, 8, -12)
	center := eternae.V(0, 1, 0)
	up := eternae.V(0, 1, 0)

	ground := eternae.NewObjectFromMesh(eternae.NewPlaneMesh())
	ground.Matrix = eternae.Scale(eternae.V(40, 1, 40))
	ground.Material.Color = eternae.HexColor("cccccc")
	ground.Material.Diffuse = eternae.HalfLambert{Squared: true}
	ground.Material.Rim.Enabled = false

	sphere := eternae.NewObjectFromMesh(eternae.NewSphereMesh(32, 48))
	sphere.Matrix = eternae.Scale(eternae.V(2, 2, 2)).Translate(eternae.V(0, 2, 0))
	sphere.Material.Color = eternae.HexColor("ff3333")
	sphere.Material.Diffuse = eternae.ToonBands{Bands: 3, Floor: 0.15}
	sphere.Material.Rim = eternae.NewRimParams()
	sphere.Material.OutlineWidth = 0.04

	cube := eternae.NewObjectFromMesh(eternae.NewCubeMesh())
	cube.Matrix = eternae.Rotate(eternae.V(1, 1, 0), eternae.Radians(45)).
		Scale(eternae.V(1.5, 1.5, 1.5)).
		Translate(eternae.V(5, 1.5, 2))
	cube.Material.Color = eternae.HexColor("3388ff")
	cube.Material.Diffuse = eternae.ToonRamp{Threshold: 0.4, Softness: 0.05}
	cube.Material.OutlineWidth = 0.03

	scene := eternae.NewCelScene(eye, center, up, 50, *size, *scale, sun)
	scene.Draw(false, *out, []*eternae.Object{ground, sphere, cube})
	fmt.Println("wrote", *out)
}
