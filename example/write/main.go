package main

import (
	"fmt"
	"log"
	"math"
	"time"

	"github.com/j143/geomag-algorithms/pkg/geomag"
)

func main() {
	cfg := &geomag.Config{
		Edge: geomag.EdgeConfig{
			Host:        "edge.example.com",
			Port:        7981,
			Observatory: "BOU",
		},
	}

	rt, err := geomag.NewRuntime(cfg, geomag.WithRawInputDialer(demoDialer{}))
	if err != nil {
		log.Fatalf("build runtime: %v", err)
	}

	start := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)
	st := geomag.Stream{
		{
			Stats: geomag.Stats{Channel: "H", Start: start, Delta: time.Minute},
			Data:  []float64{20840.5, 20841.5, math.NaN(), 20843.5},
		},
	}

	// The gap splits the trace, so the session sees two sends.
	if err := rt.Put(st, geomag.Request{Channels: []string{"H"}}); err != nil {
		log.Fatalf("put: %v", err)
	}
}

type demoDialer struct{}

func (demoDialer) Dial(tag, host string, port int, cwbHost string, cwbPort int) (geomag.RawInput, error) {
	fmt.Printf("dial %s:%d tag=%s\n", host, port, tag)
	return &demoRawInput{}, nil
}

// demoRawInput prints the packets a real raw input client would frame
// onto the socket.
type demoRawInput struct{}

func (d *demoRawInput) BuildIdentity(station, channel, location, network string) geomag.WireIdentity {
	return geomag.WireIdentity{
		Network:  network,
		Station:  station,
		Location: location,
		Channel:  channel,
	}
}

func (d *demoRawInput) Send(id geomag.WireIdentity, sampleCount int, samples []int32, start time.Time, sampleRate float64, activity, ioClock, quality, timingQuality int32) error {
	fmt.Printf("send %s.%s.%s.%s count=%d start=%s rate=%.5f samples=%v\n",
		id.Network, id.Station, id.Location, id.Channel,
		sampleCount, start.Format(time.RFC3339), sampleRate, samples)
	return nil
}

func (d *demoRawInput) Forceout(id geomag.WireIdentity) error {
	fmt.Printf("forceout %s.%s.%s.%s\n", id.Network, id.Station, id.Location, id.Channel)
	return nil
}

func (d *demoRawInput) Close() error {
	fmt.Println("close")
	return nil
}
