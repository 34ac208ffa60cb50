// Package profiling is a lightweight per-frame CPU timer used by the render
// loop and the stats overlay.
package profiling

import (
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"
)

var (
	mu     sync.Mutex
	totals = make(map[string]time.Duration)
)

// Track returns a stop function that adds the elapsed time to the named
// bucket. Usage: defer profiling.Track("mapgeom.Render")()
func Track(name string) func() {
	start := time.Now()
	return func() {
		d := time.Since(start)
		mu.Lock()
		totals[name] += d
		mu.Unlock()
	}
}

// ResetFrame clears all buckets. Called at the start of each frame.
func ResetFrame() {
	mu.Lock()
	clear(totals)
	mu.Unlock()
}

// Snapshot returns a copy of the current frame's buckets.
func Snapshot() map[string]time.Duration {
	mu.Lock()
	defer mu.Unlock()
	out := make(map[string]time.Duration, len(totals))
	for k, v := range totals {
		out[k] = v
	}
	return out
}

// SumWithPrefix totals every bucket whose name starts with prefix.
func SumWithPrefix(prefix string) time.Duration {
	mu.Lock()
	defer mu.Unlock()
	var sum time.Duration
	for k, v := range totals {
		if strings.HasPrefix(k, prefix) {
			sum += v
		}
	}
	return sum
}

// TopLines formats the n slowest buckets of the current frame, one per line,
// slowest first.
func TopLines(n int) []string {
	snap := Snapshot()
	type entry struct {
		name string
		dur  time.Duration
	}
	entries := make([]entry, 0, len(snap))
	for k, v := range snap {
		entries = append(entries, entry{k, v})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].dur > entries[j].dur })
	if n > len(entries) {
		n = len(entries)
	}
	lines := make([]string, 0, n)
	for _, e := range entries[:n] {
		lines = append(lines, fmt.Sprintf("%s: %.2fms", e.name, float64(e.dur.Microseconds())/1000.0))
	}
	return lines
}
