// Package metadata annotates traces with observatory details after a read.
package metadata

import (
	"github.com/j143/geomag-algorithms/internal/ports"
	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// Info describes one observatory for annotation purposes.
type Info struct {
	Name              string
	Agency            string
	DeclinationBase   float64
	SensorOrientation string
	Conditions        string
}

const usgsConditions = "The Conditions of Use for data provided through " +
	"this system are described at http://geomag.usgs.gov/"

// defaultTable ships one observatory as a template. Deployments covering
// a fleet pass their own table to NewDefaultsWith.
var defaultTable = map[string]Info{
	"BOU": {
		Name:              "Boulder",
		Agency:            "United States Geological Survey (USGS)",
		DeclinationBase:   5527,
		SensorOrientation: "HDZF",
		Conditions:        usgsConditions,
	},
}

// Defaults attaches observatory metadata from a lookup table. Unknown
// observatories still get the channel, data type and interval set.
type Defaults struct {
	table map[string]Info
}

func NewDefaults() *Defaults {
	return &Defaults{table: defaultTable}
}

func NewDefaultsWith(table map[string]Info) *Defaults {
	return &Defaults{table: table}
}

func (d *Defaults) Attach(stats *timeseries.Stats, observatory, channel, dataType, interval string) {
	stats.Channel = channel
	stats.DataType = dataType
	stats.DataInterval = interval

	info, ok := d.table[observatory]
	if !ok {
		return
	}
	stats.StationName = info.Name
	stats.Agency = info.Agency
	stats.DeclinationBase = info.DeclinationBase
	stats.SensorOrientation = info.SensorOrientation
	stats.Conditions = info.Conditions
}

var _ ports.MetadataAttacher = (*Defaults)(nil)
