package whitebg

import (
	"errors"
	"fmt"
)

// Kind classifies why a background removal failed.
type Kind int

const (
	KindUnknown Kind = iota
	KindUsage
	KindConfig
	KindDecode
	KindEncode
)

func (k Kind) String() string {
	switch k {
	case KindUsage:
		return "usage"
	case KindConfig:
		return "config"
	case KindDecode:
		return "decode"
	case KindEncode:
		return "encode"
	default:
		return "unknown"
	}
}

// Error is returned by every exported operation of the package.
type Error struct {
	Kind Kind
	Op   string
	Path string
	Err  error
}

func (e *Error) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf reports the Kind carried by err, or KindUnknown.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindUnknown
}

// UsageError builds the error the command line reports for a bad invocation.
func UsageError(msg string) error {
	return &Error{Kind: KindUsage, Op: "usage", Err: errors.New(msg)}
}

func decodeErr(op, path string, err error) error {
	return &Error{Kind: KindDecode, Op: op, Path: path, Err: err}
}

func encodeErr(op, path string, err error) error {
	return &Error{Kind: KindEncode, Op: op, Path: path, Err: err}
}
