package whitebg

import "fmt"

// DefaultThreshold is the exclusive lower bound a channel must exceed to
// count as white.
const DefaultThreshold = 240

type Options struct {
	// Threshold must lie in [0,255].
	Threshold int
	// Workers splits the reclassification pass by rows. 0 and 1 both mean a
	// single goroutine.
	Workers int
	// MaxSide downscales the image before reclassification when its longest
	// side exceeds it. 0 disables resizing.
	MaxSide int
}

func DefaultOptions() Options {
	return Options{
		Threshold: DefaultThreshold,
		Workers:   1,
	}
}

func (o Options) Validate() error {
	if o.Threshold < 0 || o.Threshold > 255 {
		return &Error{Kind: KindConfig, Op: "validate options", Err: fmt.Errorf("threshold %d out of range [0,255]", o.Threshold)}
	}
	if o.Workers < 0 {
		return &Error{Kind: KindConfig, Op: "validate options", Err: fmt.Errorf("workers %d must not be negative", o.Workers)}
	}
	if o.MaxSide < 0 {
		return &Error{Kind: KindConfig, Op: "validate options", Err: fmt.Errorf("max side %d must not be negative", o.MaxSide)}
	}
	return nil
}
