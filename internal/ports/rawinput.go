package ports

import "time"

// WireIdentity is the resolved Earthworm addressing tuple for one channel.
type WireIdentity struct {
	Network  string
	Station  string
	Location string
	Channel  string
}

type RawInput interface {
	BuildIdentity(station, channel, location, network string) WireIdentity
	Send(id WireIdentity, sampleCount int, samples []int32, start time.Time, sampleRate float64, activity, ioClock, quality, timingQuality int32) error
	Forceout(id WireIdentity) error
	Close() error
}

type RawInputDialer interface {
	Dial(tag, host string, port int, cwbHost string, cwbPort int) (RawInput, error)
}
