package eternae

import (
	"image"
	"image/png"
	"math"
	"os"
	"strconv"

	"github.com/nfnt/resize"
)

func Clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

func ClampInt(x, lo, hi int) int {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// Smoothstep is the Hermite interpolation used by the toon ramp and the rim
// term. Returns 0 below edge0, 1 above edge1. Degenerate edges collapse to a
// hard step instead of dividing by zero.
func Smoothstep(edge0, edge1, x float64) float64 {
	if edge0 == edge1 {
		if x < edge0 {
			return 0
		}
		return 1
	}
	t := Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

func LoadImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	im, _, err := image.Decode(file)
	return im, err
}

func SavePNG(path string, im image.Image) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return png.Encode(file, im)
}

// Downsample resizes a supersampled render down to the target width using
// Lanczos resampling, preserving aspect ratio.
func Downsample(im image.Image, width int) image.Image {
	return resize.Resize(uint(width), 0, im, resize.Lanczos3)
}

func pf(s string) float64 {
	f, _ := strconv.ParseFloat(s, 64)
	return f
}

func fixIndex(s string, n int) int {
	if s == "" {
		return 0
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	if i < 0 {
		return i + n
	}
	return i
}
