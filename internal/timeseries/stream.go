package timeseries

import (
	"fmt"
	"math"
	"sort"
	"time"
)

// Stream is an ordered collection of traces, usually one per channel.
type Stream []*Trace

// Select returns the traces whose channel code matches exactly.
func (s Stream) Select(channel string) Stream {
	var out Stream
	for _, t := range s {
		if t.Stats.Channel == channel {
			out = append(out, t)
		}
	}
	return out
}

// Merge collapses overlapping or adjacent traces that share a stream
// identifier into one trace per identifier, masking any samples no segment
// covered. When segments overlap, the later-starting segment wins. Traces
// with distinct identifiers pass through untouched, in first-appearance
// order.
func (s Stream) Merge() (Stream, error) {
	groups := make(map[string]Stream)
	var order []string
	for _, t := range s {
		id := t.Stats.ID()
		if _, seen := groups[id]; !seen {
			order = append(order, id)
		}
		groups[id] = append(groups[id], t)
	}

	out := make(Stream, 0, len(order))
	for _, id := range order {
		group := groups[id]
		if len(group) == 1 {
			out = append(out, group[0])
			continue
		}
		merged, err := mergeGroup(id, group)
		if err != nil {
			return nil, err
		}
		out = append(out, merged)
	}
	return out, nil
}

func mergeGroup(id string, group Stream) (*Trace, error) {
	delta := group[0].Stats.Delta
	if delta <= 0 {
		return nil, fmt.Errorf("merge %s: missing sample interval", id)
	}
	for _, t := range group[1:] {
		if t.Stats.Delta != delta {
			return nil, fmt.Errorf("merge %s: conflicting sample intervals %s and %s",
				id, delta, t.Stats.Delta)
		}
	}

	sorted := make(Stream, len(group))
	copy(sorted, group)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stats.Start.Before(sorted[j].Stats.Start)
	})

	start := sorted[0].Stats.Start
	end := sorted[0].End()
	for _, t := range sorted[1:] {
		if e := t.End(); e.After(end) {
			end = e
		}
	}

	n := int(math.Round(float64(end.Sub(start))/float64(delta))) + 1
	data := make([]float64, n)
	mask := make([]bool, n)
	for i := range mask {
		mask[i] = true
	}

	for _, t := range sorted {
		offset := int(math.Round(float64(t.Stats.Start.Sub(start)) / float64(delta)))
		for k, v := range t.Data {
			if t.Mask != nil && t.Mask[k] {
				continue
			}
			idx := offset + k
			if idx < 0 || idx >= n {
				continue
			}
			data[idx] = v
			mask[idx] = false
		}
	}

	merged := &Trace{Stats: sorted[0].Stats, Data: data, Mask: mask}
	merged.Stats.Start = start
	return merged, nil
}

// Span reports the earliest start and latest end across all traces.
// The zero times are returned for an empty stream.
func (s Stream) Span() (time.Time, time.Time) {
	if len(s) == 0 {
		return time.Time{}, time.Time{}
	}
	start := s[0].Stats.Start
	end := s[0].End()
	for _, t := range s[1:] {
		if t.Stats.Start.Before(start) {
			start = t.Stats.Start
		}
		if e := t.End(); e.After(end) {
			end = e
		}
	}
	return start, end
}
