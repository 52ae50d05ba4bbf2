// Package edge maps observatory time series onto Earthworm wire identities
// and moves sample data to and from Edge nodes.
package edge

import (
	"fmt"

	"github.com/j143/geomag-algorithms/internal/ports"
)

// Network returns the network code. All geomagnetic channels live under NT.
func Network() string {
	return "NT"
}

// Station returns the station code for an observatory. The observatory
// code is used as the station unchanged.
func Station(observatory string) string {
	return observatory
}

// IntervalCode converts a sampling interval name into its single
// character Earthworm code.
func IntervalCode(interval string) (string, error) {
	switch interval {
	case "daily":
		return "D", nil
	case "hourly":
		return "H", nil
	case "minute":
		return "M", nil
	case "second":
		return "S", nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidInterval, interval)
}

// ChannelCode builds the three character Earthworm channel code, for
// example H at minute interval becomes MVH.
func ChannelCode(channel, interval string) (string, error) {
	code, err := IntervalCode(interval)
	if err != nil {
		return "", err
	}
	switch channel {
	case "D":
		return code + "VD", nil
	case "E":
		return code + "VE", nil
	case "F":
		return code + "SF", nil
	case "H":
		return code + "VH", nil
	case "Z":
		return code + "VZ", nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidChannel, channel)
}

// LocationCode resolves the location code for a data type. A non-empty
// override wins unconditionally, even when the data type is unknown.
func LocationCode(dataType, override string) (string, error) {
	if override != "" {
		return override, nil
	}
	switch dataType {
	case "variation":
		return "R0", nil
	case "quasi-definitive":
		return "Q0", nil
	case "definitive":
		return "D0", nil
	}
	return "", fmt.Errorf("%w %q", ErrInvalidDataType, dataType)
}

// IdentityFor resolves the full wire identity for one observatory channel.
func IdentityFor(observatory, channel, dataType, interval, override string) (ports.WireIdentity, error) {
	channelCode, err := ChannelCode(channel, interval)
	if err != nil {
		return ports.WireIdentity{}, err
	}
	location, err := LocationCode(dataType, override)
	if err != nil {
		return ports.WireIdentity{}, err
	}
	return ports.WireIdentity{
		Network:  Network(),
		Station:  Station(observatory),
		Location: location,
		Channel:  channelCode,
	}, nil
}
