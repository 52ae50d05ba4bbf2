// Package timeseries holds the in-memory representation of observatory
// channel data: fixed-rate traces with an explicit missing-sample
// convention, grouped into streams.
package timeseries

import (
	"math"
	"time"
)

// Stats is the per-trace header. Wire codes are populated by the transport
// on reads; the observatory fields are filled in by a metadata attacher.
type Stats struct {
	Network  string
	Station  string
	Location string
	Channel  string
	Start    time.Time
	Delta    time.Duration

	DataType     string
	DataInterval string

	StationName       string
	Agency            string
	DeclinationBase   float64
	SensorOrientation string
	Conditions        string
}

// ID returns the dotted stream identifier, e.g. "NT.BOU.R0.MVH".
func (s Stats) ID() string {
	return s.Network + "." + s.Station + "." + s.Location + "." + s.Channel
}

// Trace is one channel's samples at a fixed rate. A sample is missing when
// its mask bit is set, or, with no mask attached, when it is NaN. Gaps are
// always represented by missing samples, never by omission, so
// len(Data) x Delta always spans Start through End.
type Trace struct {
	Stats Stats
	Data  []float64
	Mask  []bool // aligned 1:1 with Data when non-nil; true marks missing
}

// New builds a trace around the given samples. The samples are not copied.
func New(stats Stats, data []float64) *Trace {
	return &Trace{Stats: stats, Data: data}
}

// Npts is the number of samples, present or missing.
func (t *Trace) Npts() int { return len(t.Data) }

// End is the time of the last sample, derived from Start and Delta.
// It is never stored; an empty trace ends when it starts.
func (t *Trace) End() time.Time {
	if len(t.Data) == 0 {
		return t.Stats.Start
	}
	return t.Stats.Start.Add(time.Duration(len(t.Data)-1) * t.Stats.Delta)
}

// MaskInvalid switches the trace to the explicit-mask view: every
// non-finite sample is marked missing. Samples already masked stay masked.
func (t *Trace) MaskInvalid() {
	if t.Mask == nil {
		t.Mask = make([]bool, len(t.Data))
	}
	for i, v := range t.Data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Mask[i] = true
		}
	}
}

// FillNaN switches the trace to the sentinel view: masked samples become
// NaN and the mask is dropped.
func (t *Trace) FillNaN() {
	if t.Mask == nil {
		return
	}
	for i, missing := range t.Mask {
		if missing {
			t.Data[i] = math.NaN()
		}
	}
	t.Mask = nil
}

// Slice returns the sub-trace covering samples [i, j). The returned trace
// shares backing storage with the receiver.
func (t *Trace) Slice(i, j int) *Trace {
	out := &Trace{Stats: t.Stats, Data: t.Data[i:j]}
	out.Stats.Start = t.Stats.Start.Add(time.Duration(i) * t.Stats.Delta)
	if t.Mask != nil {
		out.Mask = t.Mask[i:j]
	}
	return out
}

// Split breaks a masked trace into its contiguous present runs. Each
// returned trace is gap-free and carries no mask. An unmasked trace is
// returned whole; a fully masked trace yields an empty stream.
func (t *Trace) Split() Stream {
	if t.Mask == nil {
		return Stream{t}
	}
	var out Stream
	i := 0
	for i < len(t.Data) {
		if t.Mask[i] {
			i++
			continue
		}
		j := i
		for j < len(t.Data) && !t.Mask[j] {
			j++
		}
		seg := &Trace{Stats: t.Stats, Data: t.Data[i:j]}
		seg.Stats.Start = t.Stats.Start.Add(time.Duration(i) * t.Stats.Delta)
		out = append(out, seg)
		i = j
	}
	return out
}
