package whitebg

import (
	"bytes"
	"context"
	"errors"
	"image"
	"io"
	"log/slog"

	"github.com/chaos-io/whitebg/util"
)

// Result describes a successful run.
type Result struct {
	Input  string
	Output string
	// Format is the name of the decoder that read the input ("png", "jpeg", ...).
	Format string
	// Size is the size of the written image.
	Size image.Point
	// Bounds is the crop rectangle in source coordinates, or the full source
	// rectangle when nothing was cropped.
	Bounds  image.Rectangle
	Cropped bool
	Cleared int
}

// Remover turns near-white pixels transparent and trims transparent borders.
type Remover struct {
	opts Options
}

func NewRemover(opts Options) (*Remover, error) {
	if opts.Workers == 0 {
		opts.Workers = 1
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Remover{opts: opts}, nil
}

// RemoveWhiteBackground reads input, clears every pixel brighter than
// threshold on all three colour channels, crops to the remaining content and
// writes the result to output as PNG.
func RemoveWhiteBackground(input, output string, threshold int) (Result, error) {
	opts := DefaultOptions()
	opts.Threshold = threshold
	r, err := NewRemover(opts)
	if err != nil {
		return Result{}, err
	}
	return r.RemoveFile(context.Background(), input, output)
}

// Remove implements BackgroundRemover on an already decoded image.
func (r *Remover) Remove(ctx context.Context, img image.Image) (image.Image, error) {
	if img == nil {
		return nil, decodeErr("remove background", "", errors.New("nil image provided"))
	}
	out, _, err := r.transform(ctx, img)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// RemoveFile is RemoveWhiteBackground with the remover's options. The output
// file is created only once the input has been decoded and processed.
func (r *Remover) RemoveFile(ctx context.Context, input, output string) (Result, error) {
	img, format, err := util.OpenImage(input)
	if err != nil {
		return Result{}, decodeErr("decode", input, err)
	}

	out, res, err := r.transform(ctx, img)
	if err != nil {
		return Result{}, err
	}
	res.Input, res.Output, res.Format = input, output, format

	if err := util.SavePNG(output, out); err != nil {
		return Result{}, encodeErr("encode", output, err)
	}

	slog.Debug("saved transparent image", "input", input, "output", output, "format", format,
		"cleared", res.Cleared, "bounds", res.Bounds, "cropped", res.Cropped)
	return res, nil
}

// Process decodes an image from src and writes the PNG result to dst.
func (r *Remover) Process(ctx context.Context, src io.Reader, dst io.Writer) (Result, error) {
	img, format, err := util.DecodeImage(src)
	if err != nil {
		return Result{}, decodeErr("decode", "", err)
	}

	out, res, err := r.transform(ctx, img)
	if err != nil {
		return Result{}, err
	}
	res.Format = format

	if err := util.EncodePNG(dst, out); err != nil {
		return Result{}, encodeErr("encode", "", err)
	}
	return res, nil
}

// RemoveBytes is Process over byte slices.
func (r *Remover) RemoveBytes(ctx context.Context, data []byte) ([]byte, Result, error) {
	if len(data) == 0 {
		return nil, Result{}, decodeErr("decode", "", errors.New("empty image data"))
	}

	var buf bytes.Buffer
	res, err := r.Process(ctx, bytes.NewReader(data), &buf)
	if err != nil {
		return nil, Result{}, err
	}
	return buf.Bytes(), res, nil
}

func (r *Remover) transform(ctx context.Context, img image.Image) (*image.NRGBA, Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, Result{}, &Error{Kind: KindUnknown, Op: "remove background", Err: err}
	}

	b := img.Bounds()
	if b.Empty() {
		return nil, Result{}, decodeErr("remove background", "", errors.New("empty image"))
	}

	src := resizeWithinMax(ToNRGBA(img), r.opts.MaxSide)

	cleaned, cleared := reclassify(src, uint8(r.opts.Threshold), r.opts.Workers)
	slog.Debug("reclassified pixels", "width", src.Rect.Dx(), "height", src.Rect.Dy(),
		"threshold", r.opts.Threshold, "cleared", cleared)

	out, bbox, cropped := Crop(cleaned)

	return out, Result{
		Size:    out.Rect.Size(),
		Bounds:  bbox,
		Cropped: cropped,
		Cleared: cleared,
	}, nil
}
