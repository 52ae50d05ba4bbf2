package geomag

import (
	base "github.com/j143/geomag-algorithms/pkg/geomag"
)

// Re-exported errors for convenience.
var (
	ErrInvalidRange             = base.ErrInvalidRange
	ErrInvalidChannel           = base.ErrInvalidChannel
	ErrInvalidDataType          = base.ErrInvalidDataType
	ErrInvalidInterval          = base.ErrInvalidInterval
	ErrUnsupportedWriteInterval = base.ErrUnsupportedWriteInterval
	ErrNoWaveServer             = base.ErrNoWaveServer
	ErrNoRawInput               = base.ErrNoRawInput
)

// Type aliases so consumers can import github.com/j143/geomag-algorithms directly.
type (
	Config           = base.Config
	EdgeConfig       = base.EdgeConfig
	TimescaleConfig  = base.TimescaleConfig
	MetricsConfig    = base.MetricsConfig
	Request          = base.Request
	Stream           = base.Stream
	Trace            = base.Trace
	Stats            = base.Stats
	Runtime          = base.Runtime
	RuntimeOption    = base.RuntimeOption
	WaveServer       = base.WaveServer
	RawInput         = base.RawInput
	RawInputDialer   = base.RawInputDialer
	WireIdentity     = base.WireIdentity
	MetadataAttacher = base.MetadataAttacher
	ObservatoryInfo  = base.ObservatoryInfo
	Archive          = base.Archive
	Observability    = base.Observability
	Field            = base.Field
)

// Config helpers.
func LoadConfig(path string) (*Config, error) {
	return base.LoadConfig(path)
}

// Runtime and options.
func NewRuntime(cfg *Config, opts ...RuntimeOption) (*Runtime, error) {
	return base.NewRuntime(cfg, opts...)
}

func WithWaveServer(ws WaveServer) RuntimeOption {
	return base.WithWaveServer(ws)
}

func WithRawInputDialer(d RawInputDialer) RuntimeOption {
	return base.WithRawInputDialer(d)
}

func WithMetadataAttacher(m MetadataAttacher) RuntimeOption {
	return base.WithMetadataAttacher(m)
}

func WithArchive(a Archive) RuntimeOption {
	return base.WithArchive(a)
}

func WithObservability(obs Observability) RuntimeOption {
	return base.WithObservability(obs)
}

// Wire identity tooling.
func IdentityFor(observatory, channel, dataType, interval, locationCode string) (WireIdentity, error) {
	return base.IdentityFor(observatory, channel, dataType, interval, locationCode)
}

// Metadata defaults.
func NewMetadataDefaults(table map[string]ObservatoryInfo) MetadataAttacher {
	return base.NewMetadataDefaults(table)
}
