package ports

import "github.com/j143/geomag-algorithms/internal/timeseries"

type MetadataAttacher interface {
	Attach(stats *timeseries.Stats, observatory, channel, dataType, interval string)
}
