// Package progress provides reusable progress-reporting helpers.
package progress

// Callback receives per-item progress updates.
type Callback func(processed, total int)

// Emit calls cb with clamped processed/total values.
// It is a no-op when cb is nil or total is non-positive.
func Emit(cb Callback, processed, total int) {
	if cb == nil || total <= 0 {
		return
	}

	if processed < 0 {
		processed = 0
	}
	if processed > total {
		processed = total
	}

	cb(processed, total)
}
