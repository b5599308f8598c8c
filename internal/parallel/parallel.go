// Package parallel runs a range of independent items, such as dataset
// samples, as contiguous chunks on separate goroutines. Each chunk owns its
// buffers, so callers never share mutable state between chunks.
package parallel

import (
	"runtime"
	"sync"
)

// Config decides how ForChunks divides a range.
type Config struct {
	// Enabled false runs the whole range on the caller's goroutine.
	Enabled bool
	// NumWorkers caps the number of chunks.
	NumWorkers int
	// MinChunkSize is the smallest range worth splitting. A chunk allocates
	// its own output buffers, so it has to cover enough items to pay for
	// them.
	MinChunkSize int
}

// DefaultConfig uses one chunk per CPU and splits ranges of 64 items or more.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:      n > 1,
		NumWorkers:   n,
		MinChunkSize: 64,
	}
}

// ForChunks calls f(start, end) for consecutive half-open ranges covering
// [0, n). Each call runs on its own goroutine, so f may keep per-chunk state
// such as scratch buffers. With parallelism disabled, or n below
// MinChunkSize, f is called once with the whole range on the caller's
// goroutine.
func ForChunks(n int, f func(start, end int), cfg Config) {
	if n <= 0 {
		return
	}
	if !cfg.Enabled || cfg.NumWorkers <= 1 || n < cfg.MinChunkSize {
		f(0, n)
		return
	}

	var wg sync.WaitGroup
	chunkSize := max((n+cfg.NumWorkers-1)/cfg.NumWorkers, cfg.MinChunkSize, 1)

	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		wg.Add(1)
		go func(s, e int) {
			defer wg.Done()
			f(s, e)
		}(start, end)
	}
	wg.Wait()
}
