package edge

import (
	"fmt"
	"time"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// Protocol limits on samples per packet.
const (
	hourSeconds = 3600
	dayMinutes  = 1440
)

// window is one protocol-bounded send unit. Windows are produced during
// a write and never persisted.
type window struct {
	start   time.Time
	samples []float64
}

// writeWindowParams returns the chunk size, sample spacing and wire
// sample rate for a writable interval. Daily and hourly data cannot be
// sent to an Edge node.
func writeWindowParams(interval string) (nsamp int, timeoffset time.Duration, sampleRate float64, err error) {
	switch interval {
	case "second":
		return hourSeconds, time.Second, 1.0, nil
	case "minute":
		return dayMinutes, time.Minute, 1.0 / 60, nil
	}
	return 0, 0, 0, fmt.Errorf("%w %q", ErrUnsupportedWriteInterval, interval)
}

// chunkTrace splits a gap-free trace into windows of at most nsamp
// samples. The last window carries the remainder. Each window start is
// the previous start advanced by the samples sent times the offset.
func chunkTrace(tr *timeseries.Trace, nsamp int, timeoffset time.Duration) []window {
	var windows []window
	start := tr.Stats.Start
	total := tr.Npts()
	for i := 0; i < total; i += nsamp {
		end := i + nsamp
		if end > total {
			end = total
		}
		sent := end - i
		windows = append(windows, window{start: start, samples: tr.Data[i:end]})
		start = start.Add(time.Duration(sent) * timeoffset)
	}
	return windows
}
