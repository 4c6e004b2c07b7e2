package utils

import (
	"fmt"
	"io"
	"os"
	"time"
)

// Verbose controls whether progress and timing statistics are printed.
// Set to false to suppress output.
var Verbose = true

// Output is the writer where progress and timing statistics are printed.
// Defaults to os.Stdout.
var Output io.Writer = os.Stdout

// Logf prints a progress line when Verbose is set.
func Logf(format string, args ...any) {
	if !Verbose {
		return
	}
	fmt.Fprintf(Output, format+"\n", args...)
}

// TimingStats holds timing information for different operations
type TimingStats struct {
	TotalTime   time.Duration
	SeedTime    time.Duration
	LayoutTime  time.Duration
	RenderTime  time.Duration
	DisplayTime time.Duration
}

// PrintTimingStats prints detailed timing statistics.
// Respects the Verbose flag - does nothing if Verbose is false.
func PrintTimingStats(stats *TimingStats) {
	if !Verbose {
		return
	}
	fmt.Fprintln(Output, "\n=== TIMING STATISTICS ===")
	fmt.Fprintf(Output, "Total time: %v\n", stats.TotalTime)
	fmt.Fprintln(Output, "\nBreakdown by operation:")
	fmt.Fprintf(Output, "  Seeding: %v (%.1f%%, %.1fµs)\n", stats.SeedTime, percent(stats.SeedTime, stats.TotalTime), DurationUS(stats.SeedTime))
	fmt.Fprintf(Output, "  Layout: %v (%.1f%%, %.1fµs)\n", stats.LayoutTime, percent(stats.LayoutTime, stats.TotalTime), DurationUS(stats.LayoutTime))
	fmt.Fprintf(Output, "  Render: %v (%.1f%%, %.1fµs)\n", stats.RenderTime, percent(stats.RenderTime, stats.TotalTime), DurationUS(stats.RenderTime))
	fmt.Fprintf(Output, "  Display: %v (%.1f%%, %.1fµs)\n", stats.DisplayTime, percent(stats.DisplayTime, stats.TotalTime), DurationUS(stats.DisplayTime))
}

func percent(part, total time.Duration) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}

// DurationUS converts any time.Duration to micro-seconds as float64
func DurationUS(d time.Duration) float64 {
	return float64(d.Nanoseconds()) / 1_000.0
}
