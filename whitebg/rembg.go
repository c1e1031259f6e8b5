package whitebg

import (
	"context"
	"image"
)

type BackgroundRemover interface {
	Remove(ctx context.Context, img image.Image) (image.Image, error)
}

var _ BackgroundRemover = (*Remover)(nil)
