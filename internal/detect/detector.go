package detect

import (
	"bytes"
	"context"
	"image"
	_ "image/gif"  // register decoder
	_ "image/jpeg" // register decoder
	_ "image/png"  // register decoder
)

// Detector produces skin issue tags from raw image bytes. Implementations
// must return a deduplicated list preserving first-occurrence order.
type Detector interface {
	Detect(ctx context.Context, data []byte) ([]string, error)
}

// Luminance thresholds on the 0-255 scale.
const (
	dullnessThreshold = 100
	oilyThreshold     = 180
)

// Placeholder is a stand-in analyzer until a real model is wired in. It
// derives tags from crude brightness statistics and always includes a fixed
// default pair, so the result is never empty. A payload that fails to decode
// as an image is not an error; the defaults still apply.
type Placeholder struct{}

// Detect implements Detector.
func (Placeholder) Detect(ctx context.Context, data []byte) ([]string, error) {
	_ = ctx

	var issues []string
	if img, _, err := image.Decode(bytes.NewReader(data)); err == nil {
		mean := meanLuminance(img)
		if mean < dullnessThreshold {
			issues = append(issues, "dullness")
		}
		if mean > oilyThreshold {
			issues = append(issues, "oily")
		}
	}
	issues = append(issues, "dryness", "acne")
	return dedupe(issues), nil
}

func meanLuminance(img image.Image) float64 {
	bounds := img.Bounds()
	if bounds.Empty() {
		return 0
	}
	var sum float64
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := img.At(x, y).RGBA()
			// RGBA returns 16-bit channels; 257 scales back to 0-255.
			sum += (0.299*float64(r) + 0.587*float64(g) + 0.114*float64(b)) / 257.0
		}
	}
	return sum / float64(bounds.Dx()*bounds.Dy())
}

func dedupe(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if _, ok := seen[tag]; ok {
			continue
		}
		seen[tag] = struct{}{}
		out = append(out, tag)
	}
	return out
}
