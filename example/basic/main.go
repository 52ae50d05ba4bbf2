package main

import (
	"fmt"
	"log"
	"math"
	"time"

	geomag "github.com/j143/geomag-algorithms"
)

func main() {
	cfg := &geomag.Config{
		Edge: geomag.EdgeConfig{
			Host:        "edge.example.com",
			Port:        2060,
			Observatory: "BOU",
		},
	}

	rt, err := geomag.NewRuntime(cfg, geomag.WithWaveServer(demoWaveServer{}))
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	end := start.Add(4 * time.Minute)

	st, err := rt.Get(geomag.Request{Channels: []string{"H"}}, start, end)
	if err != nil {
		log.Fatalf("get: %v", err)
	}

	for _, tr := range st {
		fmt.Printf("%s %s/%s %d samples\n",
			tr.Stats.ID(), tr.Stats.DataType, tr.Stats.DataInterval, tr.Npts())
		for i, v := range tr.Data {
			ts := tr.Stats.Start.Add(time.Duration(i) * tr.Stats.Delta)
			if math.IsNaN(v) {
				fmt.Printf("  %s  (gap)\n", ts.Format(time.RFC3339))
				continue
			}
			fmt.Printf("  %s  %.3f\n", ts.Format(time.RFC3339), v)
		}
	}
}

// demoWaveServer stands in for a real waveserver client. It serves a
// minute trace that starts late and ends early, so the runtime pads both
// ends of the requested range.
type demoWaveServer struct{}

func (demoWaveServer) Query(network, station, location, channel string, start, end time.Time) (geomag.Stream, error) {
	return geomag.Stream{
		{
			Stats: geomag.Stats{
				Network:  network,
				Station:  station,
				Location: location,
				Channel:  channel,
				Start:    start.Add(time.Minute),
				Delta:    time.Minute,
			},
			Data: []float64{20840500, 20841500, 20842500},
		},
	}, nil
}
