package whitebg

import (
	"image"

	"github.com/disintegration/imaging"
)

// OpaqueBounds returns the smallest rectangle holding every pixel with
// non-zero alpha. ok is false when the image is fully transparent.
func OpaqueBounds(img *image.NRGBA) (bbox image.Rectangle, ok bool) {
	w, h := img.Rect.Dx(), img.Rect.Dy()

	minX, minY := w, h
	maxX, maxY := 0, 0

	for y := 0; y < h; y++ {
		row := y * img.Stride
		for x := 0; x < w; x++ {
			if img.Pix[row+x*4+3] == 0 {
				continue
			}
			ok = true
			minX = min(minX, x)
			minY = min(minY, y)
			maxX = max(maxX, x)
			maxY = max(maxY, y)
		}
	}

	if !ok {
		return image.Rectangle{}, false
	}
	return image.Rect(minX, minY, maxX+1, maxY+1).Add(img.Rect.Min), true
}

// Crop trims img to OpaqueBounds. A fully transparent image is returned as is
// with cropped set to false.
func Crop(img *image.NRGBA) (out *image.NRGBA, bbox image.Rectangle, cropped bool) {
	bbox, ok := OpaqueBounds(img)
	if !ok {
		return img, img.Rect, false
	}
	if bbox.Eq(img.Rect) {
		return img, bbox, false
	}
	return imaging.Crop(img, bbox), bbox, true
}
