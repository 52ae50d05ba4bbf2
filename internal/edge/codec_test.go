package edge

import (
	"testing"
	"time"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

func TestScaleToIntTruncatesTowardZero(t *testing.T) {
	cases := []struct {
		in   float64
		want int32
	}{
		{20840.5, 20840500},
		{1.0009, 1000},
		{-1.0009, -1000},
		{0, 0},
		{-0.0004, 0},
	}
	for _, tc := range cases {
		got := ScaleToInt([]float64{tc.in})
		if got[0] != tc.want {
			t.Fatalf("ScaleToInt(%v): expected %d, got %d", tc.in, tc.want, got[0])
		}
	}
}

func TestScaleToFloat(t *testing.T) {
	tr := &timeseries.Trace{
		Stats: timeseries.Stats{Start: time.Unix(0, 0).UTC(), Delta: time.Minute},
		Data:  []float64{20840500, -57250, 0},
	}
	ScaleToFloat(tr)

	want := []float64{20840.5, -57.25, 0}
	for i, v := range want {
		if tr.Data[i] != v {
			t.Fatalf("data[%d]: expected %v, got %v", i, v, tr.Data[i])
		}
	}
}

func TestScaleRoundTrip(t *testing.T) {
	counts := []float64{20840500, -57250, 1, -1, 0, 2147483000}
	tr := &timeseries.Trace{
		Stats: timeseries.Stats{Start: time.Unix(0, 0).UTC(), Delta: time.Minute},
		Data:  append([]float64(nil), counts...),
	}

	ScaleToFloat(tr)
	back := ScaleToInt(tr.Data)
	for i, c := range counts {
		if back[i] != int32(c) {
			t.Fatalf("round trip lost counts at %d: expected %v, got %d", i, c, back[i])
		}
	}
}
