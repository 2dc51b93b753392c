package imaging

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uniformImage(c color.NRGBA, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func checkerboard(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if (x+y)%2 == 0 {
				img.SetNRGBA(x, y, color.NRGBA{R: 255, G: 255, B: 255, A: 255})
			} else {
				img.SetNRGBA(x, y, color.NRGBA{A: 255})
			}
		}
	}
	return img
}

func TestDecode(t *testing.T) {
	p := NewProcessor(0.5)

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, uniformImage(color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 10, 10)))

	img, err := p.Decode(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, 10, img.Bounds().Dx())

	_, err = p.Decode([]byte("not an image"))
	assert.Error(t, err)
}

func TestPreprocess(t *testing.T) {
	p := NewProcessor(0.5)

	small := uniformImage(color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 640, 480)
	processed := p.Preprocess(small)
	assert.Equal(t, 640, processed.Bounds().Dx())
	assert.Equal(t, 480, processed.Bounds().Dy())

	large := uniformImage(color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 2048, 1024)
	processed = p.Preprocess(large)
	assert.Equal(t, 1024, processed.Bounds().Dx())
	assert.Equal(t, 512, processed.Bounds().Dy())
	assert.LessOrEqual(t, processed.Bounds().Dx(), MaxDimension)
	assert.LessOrEqual(t, processed.Bounds().Dy(), MaxDimension)
}

func TestQuality_UniformImage(t *testing.T) {
	p := NewProcessor(0.5)

	quality := p.Quality(uniformImage(color.NRGBA{R: 128, G: 128, B: 128, A: 255}, 64, 64))

	// A flat image has no edges and no contrast but mid brightness.
	assert.Equal(t, "poor", quality.BlurQuality)
	assert.Equal(t, "good", quality.BrightnessQuality)
	assert.Equal(t, "poor", quality.ContrastQuality)
	assert.Equal(t, "fair", quality.OverallQuality)
	assert.Equal(t, "64x64", quality.Resolution)
	assert.InDelta(t, 128, quality.Brightness, 2)
}

func TestQuality_HighContrastImage(t *testing.T) {
	p := NewProcessor(0.5)

	quality := p.Quality(checkerboard(64, 64))

	assert.Equal(t, "good", quality.BlurQuality)
	assert.Equal(t, "good", quality.ContrastQuality)
	assert.Greater(t, quality.BlurScore, 100.0)
	assert.Greater(t, quality.Contrast, 30.0)
}

func TestDetectFace_SkinToneImage(t *testing.T) {
	p := NewProcessor(0.5)

	face := p.DetectFace(uniformImage(color.NRGBA{R: 205, G: 140, B: 110, A: 255}, 200, 200))

	assert.True(t, face.FaceDetected)
	assert.Equal(t, 1, face.FaceCount)
	require.NotNil(t, face.FaceBbox)
	assert.Equal(t, 40.0, face.FaceBbox.X)
	assert.Equal(t, 40.0, face.FaceBbox.Y)
	assert.Equal(t, 120.0, face.FaceBbox.Width)
	assert.Equal(t, 120.0, face.FaceBbox.Height)
	assert.GreaterOrEqual(t, face.Confidence, 0.5)
}

func TestDetectFace_NoFace(t *testing.T) {
	p := NewProcessor(0.5)

	face := p.DetectFace(uniformImage(color.NRGBA{R: 30, G: 60, B: 200, A: 255}, 200, 200))

	assert.False(t, face.FaceDetected)
	assert.Equal(t, 0, face.FaceCount)
	assert.Nil(t, face.FaceBbox)
}

func TestIsSkinTone(t *testing.T) {
	assert.True(t, isSkinTone(205, 140, 110))
	assert.True(t, isSkinTone(150, 100, 80))
	assert.False(t, isSkinTone(30, 60, 200))  // blue
	assert.False(t, isSkinTone(100, 95, 90))  // too little channel spread
	assert.False(t, isSkinTone(90, 150, 100)) // green dominant
}
