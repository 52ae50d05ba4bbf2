package geomag

import (
	"github.com/j143/geomag-algorithms/internal/adapters/metadata"
	"github.com/j143/geomag-algorithms/internal/app/config"
	"github.com/j143/geomag-algorithms/internal/edge"
	"github.com/j143/geomag-algorithms/internal/ports"
	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// Stream is an ordered collection of traces, one per channel after a read.
type Stream = timeseries.Stream

// Trace is one channel's fixed-rate samples with its missing-value convention.
type Trace = timeseries.Trace

// Stats is the per-trace header carrying wire codes and observatory metadata.
type Stats = timeseries.Stats

// Request selects observatory data for one Get or Put call. Unset fields
// fall back to the configured defaults.
type Request = edge.Request

// Config is the full runtime configuration.
type Config = config.Config

// EdgeConfig is the Edge node endpoint and default selection section.
type EdgeConfig = edge.Config

// TimescaleConfig enables archiving of read results when set.
type TimescaleConfig = config.TimescaleConfig

// MetricsConfig addresses the Prometheus metrics listener.
type MetricsConfig = config.MetricsConfig

// WaveServer fetches raw channel data for a time range.
type WaveServer = ports.WaveServer

// RawInput is one open write session against an Edge node.
type RawInput = ports.RawInput

// RawInputDialer opens raw input sessions.
type RawInputDialer = ports.RawInputDialer

// WireIdentity is the resolved Earthworm addressing tuple for one channel.
type WireIdentity = ports.WireIdentity

// MetadataAttacher annotates traces after a read.
type MetadataAttacher = ports.MetadataAttacher

// ObservatoryInfo describes one observatory for the default attacher.
type ObservatoryInfo = metadata.Info

// Archive persists reconciled read results.
type Archive = ports.Archive

// Observability emits logs and metrics about reads and writes.
type Observability = ports.Observability

// Field is a structured log field used by Observability implementations.
type Field = ports.Field

// Re-exported errors for convenience.
var (
	ErrInvalidRange             = edge.ErrInvalidRange
	ErrInvalidChannel           = edge.ErrInvalidChannel
	ErrInvalidDataType          = edge.ErrInvalidDataType
	ErrInvalidInterval          = edge.ErrInvalidInterval
	ErrUnsupportedWriteInterval = edge.ErrUnsupportedWriteInterval
	ErrNoWaveServer             = edge.ErrNoWaveServer
	ErrNoRawInput               = edge.ErrNoRawInput
)

// LoadConfig reads, defaults and validates a configuration file.
func LoadConfig(path string) (*Config, error) {
	return config.Load(path)
}

// IdentityFor resolves the wire identity for one observatory channel
// without building a runtime. Useful for tooling.
func IdentityFor(observatory, channel, dataType, interval, locationCode string) (WireIdentity, error) {
	return edge.IdentityFor(observatory, channel, dataType, interval, locationCode)
}

// NewMetadataDefaults returns the table-driven metadata attacher used when
// no custom attacher is injected.
func NewMetadataDefaults(table map[string]ObservatoryInfo) MetadataAttacher {
	if table == nil {
		return metadata.NewDefaults()
	}
	return metadata.NewDefaultsWith(table)
}
