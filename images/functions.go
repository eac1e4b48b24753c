// Package images - raster image helpers shared by the icon pipeline:
// PNG codec with atomic writes, center-cropping, and small numeric
// utilities for per-pixel processing.
package images

import (
	"runtime"
	"sync"
)

// Clamp restricts a value to the range [min, max].
//
// Arguments:
//   - value: The value to clamp.
//   - min: Minimum allowed value.
//   - max: Maximum allowed value.
//
// Returns:
//   - The clamped value within [min, max].
func Clamp(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Parallel partitions dataSize units of work across one goroutine per
// CPU core and blocks until all partitions complete. Small workloads
// run serially since the goroutine overhead isn't worth it.
//
// Arguments:
//   - dataSize: The number of units to process (typically image rows).
//   - fn: Function invoked per partition with [partStart, partEnd) indices.
func Parallel(dataSize int, fn func(partStart, partEnd int)) {
	numGoroutines := runtime.NumCPU()
	if dataSize < numGoroutines*2 {
		fn(0, dataSize)
		return
	}

	partSize := dataSize / numGoroutines

	var wg sync.WaitGroup
	wg.Add(numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		partStart := i * partSize
		partEnd := partStart + partSize
		// Last partition absorbs the remainder.
		if i == numGoroutines-1 {
			partEnd = dataSize
		}

		go func(start, end int) {
			defer wg.Done()
			fn(start, end)
		}(partStart, partEnd)
	}
	wg.Wait()
}
