package util

import (
	"log/slog"
	"time"
)

// Trace 记录耗时，用法: defer util.Trace("msg")()
func Trace(msg string) func() {
	start := time.Now()
	return func() {
		slog.Debug(msg, "elapsed", time.Since(start))
	}
}
