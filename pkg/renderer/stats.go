package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels  int           // Total number of pixels rendered
	TotalSamples int           // Total number of samples taken
	Duration     time.Duration // Wall time of the whole render
	Workers      []WorkerStats // One entry per worker, indexed by worker ID
}

// WorkerStats tracks the work done by a single render worker
type WorkerStats struct {
	ID       int           // Worker index, also the first row it owns
	Rows     int           // Number of rows rendered
	Samples  int           // Number of camera samples taken
	Duration time.Duration // Time spent rendering the stripe
}

// AverageSamples returns the mean number of samples per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalSamples) / float64(s.TotalPixels)
}

// SamplesPerSecond returns the render throughput
func (s RenderStats) SamplesPerSecond() float64 {
	if s.Duration <= 0 {
		return 0
	}
	return float64(s.TotalSamples) / s.Duration.Seconds()
}

// collectStats folds per-worker statistics into a render summary
func collectStats(width, height int, workers []WorkerStats, duration time.Duration) RenderStats {
	stats := RenderStats{
		TotalPixels: width * height,
		Duration:    duration,
		Workers:     workers,
	}
	for _, w := range workers {
		stats.TotalSamples += w.Samples
	}
	return stats
}
