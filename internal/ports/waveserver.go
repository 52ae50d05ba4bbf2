package ports

import (
	"time"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

type WaveServer interface {
	Query(network, station, location, channel string, start, end time.Time) (timeseries.Stream, error)
}
