// Package profiler samples frame rate and Go heap statistics and reports them through zap.
package profiler

import (
	"runtime"
	"time"

	"go.uber.org/zap"
)

// Stats is one reporting window.
type Stats struct {
	// FPS is the mean frame rate over the window.
	FPS float64
	// WorstFrame is the longest gap between two ticks in the window.
	WorstFrame time.Duration
	// HeapMB is the live heap at the end of the window.
	HeapMB float64
	// AllocRateMB is heap churn in MB per second over the window.
	AllocRateMB float64
	// GCCount is the cumulative number of collections.
	GCCount uint32
	// MaxPause is the longest GC pause that finished inside the window.
	MaxPause time.Duration
	// SysMB is the memory obtained from the OS.
	SysMB float64
}

// Profiler tracks frame rate and memory statistics for performance monitoring.
// It is driven from the main loop and is not safe for concurrent use.
type Profiler struct {
	frameCount     int
	lastTime       time.Time
	lastTick       time.Time
	worstFrame     time.Duration
	updateInterval time.Duration
	memStats       runtime.MemStats
	lastGCCount    uint32
	lastTotalAlloc uint64
	last           Stats

	now    func() time.Time
	logger *zap.Logger
}

// NewProfiler creates a new Profiler. The update interval defaults to 1 second.
//
// Parameters:
//   - options: variadic list of ProfilerBuilderOption functions
//
// Returns:
//   - *Profiler: the newly created profiler instance
func NewProfiler(options ...ProfilerBuilderOption) *Profiler {
	p := &Profiler{
		updateInterval: time.Second,
		now:            time.Now,
		logger:         zap.NewNop(),
	}
	for _, opt := range options {
		opt(p)
	}
	p.lastTime = p.now()
	p.lastTick = p.lastTime
	return p
}

// Tick should be called once per presented frame.
// When the update interval has elapsed it closes the window, logs it at Info and resets.
//
// Returns:
//   - bool: true if a window was reported this tick
func (p *Profiler) Tick() bool {
	p.frameCount++
	current := p.now()
	if gap := current.Sub(p.lastTick); gap > p.worstFrame {
		p.worstFrame = gap
	}
	p.lastTick = current

	elapsed := current.Sub(p.lastTime)
	if elapsed < p.updateInterval {
		return false
	}

	runtime.ReadMemStats(&p.memStats)
	stats := Stats{
		FPS:        float64(p.frameCount) / elapsed.Seconds(),
		WorstFrame: p.worstFrame,
		HeapMB:     float64(p.memStats.Alloc) / 1024 / 1024,
		SysMB:      float64(p.memStats.Sys) / 1024 / 1024,
		GCCount:    p.memStats.NumGC,
	}
	stats.AllocRateMB = float64(p.memStats.TotalAlloc-p.lastTotalAlloc) / 1024 / 1024 / elapsed.Seconds()

	// PauseNs is a circular buffer of the last 256 pauses.
	start := p.lastGCCount
	if stats.GCCount-start > 256 {
		start = stats.GCCount - 256
	}
	for i := start; i < stats.GCCount; i++ {
		if pause := time.Duration(p.memStats.PauseNs[i%256]); pause > stats.MaxPause {
			stats.MaxPause = pause
		}
	}

	p.logger.Info("frame stats",
		zap.Float64("fps", stats.FPS),
		zap.Duration("worst_frame", stats.WorstFrame),
		zap.Float64("heap_mb", stats.HeapMB),
		zap.Float64("alloc_rate_mb", stats.AllocRateMB),
		zap.Uint32("gc", stats.GCCount),
		zap.Duration("max_pause", stats.MaxPause),
		zap.Float64("sys_mb", stats.SysMB),
	)

	p.last = stats
	p.frameCount = 0
	p.worstFrame = 0
	p.lastTime = current
	p.lastGCCount = stats.GCCount
	p.lastTotalAlloc = p.memStats.TotalAlloc
	return true
}

// Last returns the most recently reported window, or a zero Stats before the first report.
func (p *Profiler) Last() Stats {
	return p.last
}
