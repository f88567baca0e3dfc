// Package profiler records named scope durations into a fixed ring so an
// overlay can display smoothed frame costs without allocating per frame.
package profiler

import (
	"runtime"
	"time"
)

type sample struct {
	name string
	dur  time.Duration
}

var (
	ring []sample
	head int
)

// Init sizes the sample ring. Call once at startup.
func Init(capacity int) {
	if capacity <= 0 {
		capacity = 1 << 10
	}
	ring = make([]sample, 0, capacity)
	head = 0
}

// Start begins a named scope; invoke the returned func to end it.
//
//	done := profiler.Start("UILayer.OnRender")
//	defer done()
func Start(name string) func() {
	if ring == nil {
		return func() {}
	}
	t0 := time.Now()
	return func() { record(name, time.Since(t0)) }
}

func record(name string, d time.Duration) {
	s := sample{name: name, dur: d}
	if len(ring) < cap(ring) {
		ring = append(ring, s)
		return
	}
	ring[head] = s
	head = (head + 1) % len(ring)
}

// AverageMillis reports the mean duration of the named scope across the
// retained samples, or 0 when none were recorded.
func AverageMillis(name string) float32 {
	var total time.Duration
	n := 0
	for _, s := range ring {
		if s.name == name {
			total += s.dur
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return float32(total.Seconds() * 1000 / float64(n))
}

// ----- runtime counters for the overlay -----

func MemoryUsage() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.HeapAlloc
}

func MemoryAllocs() uint64 {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	return m.Mallocs
}

func NumGoroutine() int { return runtime.NumGoroutine() }
func NumCPU() int       { return runtime.NumCPU() }
