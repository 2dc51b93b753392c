package imaging

import (
	"bytes"
	"fmt"
	"image"
	"math"

	"github.com/disintegration/imaging"

	"skinvision-backend/pkg/api"
)

// Uploaded photos are downscaled so their longest side does not exceed this
// before any analysis runs.
const MaxDimension = 1024

type Processor struct {
	faceConfidence float64
}

func NewProcessor(faceConfidence float64) *Processor {
	return &Processor{faceConfidence: faceConfidence}
}

// Decode parses the raw upload bytes. Only formats registered with image
// (jpeg and png here) are accepted.
func (p *Processor) Decode(data []byte) (image.Image, error) {
	img, err := imaging.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("could not decode image: %w", err)
	}
	return img, nil
}

// Preprocess downscales oversized images, preserving aspect ratio. Images
// already within bounds are returned unchanged in size.
func (p *Processor) Preprocess(img image.Image) image.Image {
	b := img.Bounds()
	if b.Dx() <= MaxDimension && b.Dy() <= MaxDimension {
		return imaging.Clone(img)
	}
	return imaging.Fit(img, MaxDimension, MaxDimension, imaging.Lanczos)
}

// Quality computes blur (Laplacian variance), brightness (mean intensity),
// and contrast (intensity stddev) over the grayscale image, along with the
// coarse good/fair/poor ratings derived from them.
func (p *Processor) Quality(img image.Image) api.ImageQuality {
	gray := imaging.Grayscale(img)
	w, h := gray.Bounds().Dx(), gray.Bounds().Dy()

	intensity := func(x, y int) float64 {
		return float64(gray.Pix[y*gray.Stride+x*4])
	}

	var sum, sumSq float64
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := intensity(x, y)
			sum += v
			sumSq += v * v
		}
	}
	n := float64(w * h)
	brightness := sum / n
	contrast := math.Sqrt(sumSq/n - brightness*brightness)

	var lapSum, lapSumSq float64
	var lapN float64
	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			l := 4*intensity(x, y) - intensity(x-1, y) - intensity(x+1, y) - intensity(x, y-1) - intensity(x, y+1)
			lapSum += l
			lapSumSq += l * l
			lapN++
		}
	}
	var blur float64
	if lapN > 0 {
		mean := lapSum / lapN
		blur = lapSumSq/lapN - mean*mean
	}

	blurQuality := "poor"
	if blur > 100 {
		blurQuality = "good"
	} else if blur > 50 {
		blurQuality = "fair"
	}

	brightnessQuality := "fair"
	if brightness > 50 && brightness < 200 {
		brightnessQuality = "good"
	}

	contrastQuality := "poor"
	if contrast > 30 {
		contrastQuality = "good"
	} else if contrast > 15 {
		contrastQuality = "fair"
	}

	return api.ImageQuality{
		BlurScore:         blur,
		BlurQuality:       blurQuality,
		Brightness:        brightness,
		BrightnessQuality: brightnessQuality,
		Contrast:          contrast,
		ContrastQuality:   contrastQuality,
		Resolution:        fmt.Sprintf("%dx%d", w, h),
		OverallQuality:    overallQuality(blurQuality, brightnessQuality, contrastQuality),
	}
}

func overallQuality(ratings ...string) string {
	scores := map[string]int{"good": 3, "fair": 2, "poor": 1}
	total := 0
	for _, r := range ratings {
		total += scores[r]
	}
	switch {
	case total >= 8:
		return "excellent"
	case total >= 6:
		return "good"
	case total >= 4:
		return "fair"
	default:
		return "poor"
	}
}

// DetectFace estimates face presence from the share of skin-tone pixels in
// the central 60% of the frame. This stands in for a trained detector: the
// skin ratio doubles as the detection confidence and is compared against the
// configured cutoff.
func (p *Processor) DetectFace(img image.Image) api.FaceDetection {
	nrgba := imaging.Clone(img)
	w, h := nrgba.Bounds().Dx(), nrgba.Bounds().Dy()

	x0, y0 := int(float64(w)*0.2), int(float64(h)*0.2)
	x1, y1 := int(float64(w)*0.8), int(float64(h)*0.8)
	if x1 <= x0 || y1 <= y0 {
		return api.FaceDetection{FaceDetected: false, FaceCount: 0}
	}

	var skin, total float64
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			off := y*nrgba.Stride + x*4
			r := float64(nrgba.Pix[off])
			g := float64(nrgba.Pix[off+1])
			b := float64(nrgba.Pix[off+2])
			if isSkinTone(r, g, b) {
				skin++
			}
			total++
		}
	}

	ratio := skin / total
	if ratio < p.faceConfidence {
		return api.FaceDetection{FaceDetected: false, FaceCount: 0}
	}

	return api.FaceDetection{
		FaceDetected: true,
		FaceCount:    1,
		FaceBbox: &api.BoundingBox{
			X:      float64(x0),
			Y:      float64(y0),
			Width:  float64(x1 - x0),
			Height: float64(y1 - y0),
		},
		Confidence: ratio,
	}
}

// Classic RGB skin-tone rule: dominant red with sufficient channel spread.
func isSkinTone(r, g, b float64) bool {
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	return r > 95 && g > 40 && b > 20 &&
		r > g && r > b &&
		math.Abs(r-g) > 15 &&
		maxC-minC > 15
}
