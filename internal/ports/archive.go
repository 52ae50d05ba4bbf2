package ports

import "github.com/j143/geomag-algorithms/internal/timeseries"

type Archive interface {
	WriteStream(st timeseries.Stream) error
	Name() string
}
