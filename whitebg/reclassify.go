package whitebg

import (
	"image"

	"golang.org/x/sync/errgroup"
)

// Reclassify returns a copy of src in which every pixel whose red, green and
// blue channels all exceed threshold is replaced by transparent white
// (255,255,255,0). Other pixels, alpha included, are copied untouched. The
// second result is the number of pixels cleared.
func Reclassify(src *image.NRGBA, threshold uint8) (*image.NRGBA, int) {
	return reclassify(src, threshold, 1)
}

func reclassify(src *image.NRGBA, threshold uint8, workers int) (*image.NRGBA, int) {
	dst := image.NewNRGBA(src.Rect)
	h := src.Rect.Dy()
	if h == 0 || src.Rect.Dx() == 0 {
		return dst, 0
	}

	if workers <= 1 || h < 2 {
		return dst, reclassifyRows(dst, src, threshold, 0, h)
	}

	workers = min(workers, h)
	chunk := (h + workers - 1) / workers
	counts := make([]int, workers)

	var g errgroup.Group
	g.SetLimit(workers)
	for i := 0; i < workers; i++ {
		i := i
		y0 := i * chunk
		y1 := min(y0+chunk, h)
		if y0 >= y1 {
			break
		}
		g.Go(func() error {
			counts[i] = reclassifyRows(dst, src, threshold, y0, y1)
			return nil
		})
	}
	_ = g.Wait()

	cleared := 0
	for _, c := range counts {
		cleared += c
	}
	return dst, cleared
}

// reclassifyRows handles rows [y0,y1) relative to src.Rect.Min.
func reclassifyRows(dst, src *image.NRGBA, threshold uint8, y0, y1 int) int {
	w := src.Rect.Dx()
	cleared := 0
	for y := y0; y < y1; y++ {
		s := src.Pix[y*src.Stride : y*src.Stride+w*4]
		d := dst.Pix[y*dst.Stride : y*dst.Stride+w*4]
		for i := 0; i < len(s); i += 4 {
			if s[i] > threshold && s[i+1] > threshold && s[i+2] > threshold {
				d[i], d[i+1], d[i+2], d[i+3] = 255, 255, 255, 0
				cleared++
				continue
			}
			copy(d[i:i+4], s[i:i+4])
		}
	}
	return cleared
}
