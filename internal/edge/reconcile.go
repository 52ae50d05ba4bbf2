package edge

import (
	"math"
	"time"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// padToSpan realigns a trace so it covers [start, end] even when the
// stored data began late or ended early. Missing positions are filled
// with NaN, so the trace must already use the NaN convention. The
// trace is changed in place; the number of samples added is returned.
// Data outside the span is never truncated.
func padToSpan(tr *timeseries.Trace, start, end time.Time) int {
	if tr.Stats.Delta <= 0 {
		return 0
	}
	padded := 0

	if tr.Stats.Start.After(start) {
		cnt := sampleCount(tr.Stats.Start.Sub(start), tr.Stats.Delta)
		if cnt > 0 {
			tr.Data = append(nanSlice(cnt), tr.Data...)
			tr.Stats.Start = start
			padded += cnt
		}
	}
	if tr.End().Before(end) {
		cnt := sampleCount(end.Sub(tr.End()), tr.Stats.Delta)
		if cnt > 0 {
			tr.Data = append(tr.Data, nanSlice(cnt)...)
			padded += cnt
		}
	}
	return padded
}

// sampleCount rounds a gap to its nearest whole number of samples.
func sampleCount(gap, delta time.Duration) int {
	return int(math.Round(float64(gap) / float64(delta)))
}

func nanSlice(n int) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = math.NaN()
	}
	return s
}
