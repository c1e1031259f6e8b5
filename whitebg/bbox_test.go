package whitebg

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpaqueBounds(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		points []image.Point
		want   image.Rectangle
		wantOK bool
	}{
		{"empty", nil, image.Rectangle{}, false},
		{"single pixel", []image.Point{{3, 4}}, image.Rect(3, 4, 4, 5), true},
		{"corners", []image.Point{{0, 0}, {9, 7}}, image.Rect(0, 0, 10, 8), true},
		{"spread", []image.Point{{2, 6}, {7, 1}, {5, 5}}, image.Rect(2, 1, 8, 7), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewNRGBA(image.Rect(0, 0, 10, 8))
			for _, p := range tt.points {
				img.SetNRGBA(p.X, p.Y, color.NRGBA{A: 1})
			}

			got, ok := OpaqueBounds(img)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCrop(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 10, 10))
	img.SetNRGBA(2, 3, color.NRGBA{R: 1, G: 2, B: 3, A: 255})
	img.SetNRGBA(5, 6, color.NRGBA{R: 4, G: 5, B: 6, A: 9})

	out, bbox, cropped := Crop(img)
	require.True(t, cropped)
	assert.Equal(t, image.Rect(2, 3, 6, 7), bbox)
	assert.Equal(t, image.Rect(0, 0, 4, 4), out.Bounds())
	assert.Equal(t, color.NRGBA{R: 1, G: 2, B: 3, A: 255}, out.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{R: 4, G: 5, B: 6, A: 9}, out.NRGBAAt(3, 3))
	assert.Equal(t, color.NRGBA{}, out.NRGBAAt(1, 1))
}

func TestCrop_FullyTransparentIsUntouched(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 6, 4))
	out, bbox, cropped := Crop(img)
	assert.False(t, cropped)
	assert.Same(t, img, out)
	assert.Equal(t, img.Rect, bbox)
}

func TestCrop_AlreadyTight(t *testing.T) {
	t.Parallel()

	img := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	img.SetNRGBA(0, 0, color.NRGBA{A: 255})
	img.SetNRGBA(2, 2, color.NRGBA{A: 255})

	out, bbox, cropped := Crop(img)
	assert.False(t, cropped)
	assert.Same(t, img, out)
	assert.Equal(t, img.Rect, bbox)
}
