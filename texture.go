package eternae

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"log"
	"math"
	"net/http"
	"time"
)

type Texture interface {
	Sample(u, v float64) Color
	BilinearSample(u, v float64) Color
}

type ImageTexture struct {
	Width  int
	Height int
	Image  image.Image
}

func NewImageTexture(im image.Image) Texture {
	return &ImageTexture{
		Width:  im.Bounds().Dx(),
		Height: im.Bounds().Dy(),
		Image:  im,
	}
}

func LoadTexture(path string) (Texture, error) {
	im, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	return NewImageTexture(im), nil
}

func LoadTextureFromURL(url string) Texture {
	client := http.Client{Timeout: 10 * time.Second}
	resp, err := client.Get(url)
	if err != nil || resp.StatusCode != 200 {
		log.Printf("eternae: could not fetch texture from %s", url)
		return nil
	}
	defer resp.Body.Close()
	im, _, err := image.Decode(resp.Body)
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func TexFromBytes(data []byte) Texture {
	im, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil
	}
	return NewImageTexture(im)
}

func (t *ImageTexture) at(x, y int) Color {
	x = ClampInt(x, 0, t.Width-1)
	y = ClampInt(y, 0, t.Height-1)
	return MakeColor(t.Image.At(x, y))
}

func (t *ImageTexture) Sample(u, v float64) Color {
	// wrap, then flip V for standard UV coords
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	x := int(u * float64(t.Width))
	y := int(v * float64(t.Height))
	return t.at(x, y)
}

func (t *ImageTexture) BilinearSample(u, v float64) Color {
	u = u - math.Floor(u)
	v = 1 - (v - math.Floor(v))
	fx := u*float64(t.Width) - 0.5
	fy := v*float64(t.Height) - 0.5
	x := int(math.Floor(fx))
	y := int(math.Floor(fy))
	dx := fx - float64(x)
	dy := fy - float64(y)
	c00 := t.at(x, y)
	c10 := t.at(x+1, y)
	c01 := t.at(x, y+1)
	c11 := t.at(x+1, y+1)
	top := c00.Lerp(c10, dx)
	bottom := c01.Lerp(c11, dx)
	return top.Lerp(bottom, dy)
}
