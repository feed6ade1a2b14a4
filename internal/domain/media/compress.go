package media

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

const (
	maxDimension  = 1920
	targetBytes   = 1024 * 1024 // ~1 MB
	startQuality  = 85
	minQuality    = 40
	qualityStride = 15
)

// CompressImage re-encodes an image as JPEG with a max dimension of 1920px,
// stepping the quality down toward ~1 MB. On any failure the original path
// is returned so the caller can upload the file uncompressed.
func CompressImage(path string) (string, string) {
	img, err := imaging.Open(path, imaging.AutoOrientation(true))
	if err != nil {
		return path, ""
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxDimension || bounds.Dy() > maxDimension {
		img = imaging.Fit(img, maxDimension, maxDimension, imaging.Lanczos)
	}

	out := strings.TrimSuffix(path, filepath.Ext(path)) + "_c.jpg"
	for q := startQuality; q >= minQuality; q -= qualityStride {
		if err := imaging.Save(img, out, imaging.JPEGQuality(q)); err != nil {
			return path, ""
		}
		if info, err := os.Stat(out); err == nil && info.Size() <= targetBytes {
			break
		}
	}

	if info, err := os.Stat(out); err != nil || info.Size() == 0 {
		os.Remove(out)
		return path, ""
	}
	return out, "image/jpeg"
}
