package edge

import (
	"math"
	"testing"
	"time"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

func minuteTrace(start time.Time, data []float64) *timeseries.Trace {
	return timeseries.New(timeseries.Stats{
		Network:  "NT",
		Station:  "BOU",
		Location: "R0",
		Channel:  "H",
		Start:    start,
		Delta:    time.Minute,
	}, data)
}

func TestPadToSpanNoOpWhenCovering(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Minute)
	tr := minuteTrace(start, []float64{1, 2, 3, 4, 5})

	padded := padToSpan(tr, start, end)
	if padded != 0 {
		t.Fatalf("covering trace must not be padded, got %d", padded)
	}
	if tr.Npts() != 5 || !tr.Stats.Start.Equal(start) || !tr.End().Equal(end) {
		t.Fatalf("covering trace changed: npts=%d start=%s end=%s", tr.Npts(), tr.Stats.Start, tr.End())
	}
}

func TestPadToSpanPrependsExactly(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Minute)
	tr := minuteTrace(start.Add(2*time.Minute), []float64{3, 4, 5})

	padded := padToSpan(tr, start, end)
	if padded != 2 {
		t.Fatalf("expected 2 padded samples, got %d", padded)
	}
	if !tr.Stats.Start.Equal(start) {
		t.Fatalf("expected start reset to %s, got %s", start, tr.Stats.Start)
	}
	if tr.Npts() != 5 {
		t.Fatalf("expected 5 samples, got %d", tr.Npts())
	}
	if !math.IsNaN(tr.Data[0]) || !math.IsNaN(tr.Data[1]) {
		t.Fatalf("prepended samples must be NaN: %v", tr.Data[:2])
	}
	if tr.Data[2] != 3 {
		t.Fatalf("original data shifted incorrectly: %v", tr.Data)
	}
}

func TestPadToSpanAppends(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(5 * time.Minute)
	tr := minuteTrace(start, []float64{1, 2, 3})

	padded := padToSpan(tr, start, end)
	if padded != 3 {
		t.Fatalf("expected 3 padded samples, got %d", padded)
	}
	if !tr.End().Equal(end) {
		t.Fatalf("expected end %s, got %s", end, tr.End())
	}
	for i := 3; i < 6; i++ {
		if !math.IsNaN(tr.Data[i]) {
			t.Fatalf("appended sample %d must be NaN, got %v", i, tr.Data[i])
		}
	}
}

func TestPadToSpanBothEnds(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(6 * time.Minute)
	tr := minuteTrace(start.Add(2*time.Minute), []float64{3, 4})

	padded := padToSpan(tr, start, end)
	if padded != 5 {
		t.Fatalf("expected 5 padded samples, got %d", padded)
	}
	if tr.Npts() != 7 {
		t.Fatalf("expected 7 samples, got %d", tr.Npts())
	}
	if !tr.Stats.Start.Equal(start) || !tr.End().Equal(end) {
		t.Fatalf("span mismatch: start=%s end=%s", tr.Stats.Start, tr.End())
	}
}

func TestPadToSpanNeverTruncates(t *testing.T) {
	start := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	tr := minuteTrace(start, []float64{1, 2, 3, 4, 5, 6})

	// Requested span is narrower than the data.
	padded := padToSpan(tr, start.Add(time.Minute), start.Add(2*time.Minute))
	if padded != 0 || tr.Npts() != 6 {
		t.Fatalf("narrow request must not truncate: padded=%d npts=%d", padded, tr.Npts())
	}
	if !tr.Stats.Start.Equal(start) {
		t.Fatalf("start must be unchanged, got %s", tr.Stats.Start)
	}
}
