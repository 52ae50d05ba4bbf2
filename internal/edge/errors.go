package edge

import "errors"

// ErrInvalidRange indicates a query span whose start is after its end.
var ErrInvalidRange = errors.New("geomag: start after end")

// ErrInvalidChannel indicates a channel with no Earthworm channel code mapping.
var ErrInvalidChannel = errors.New("geomag: unknown channel")

// ErrInvalidDataType indicates a data type with no location code mapping.
var ErrInvalidDataType = errors.New("geomag: unknown data type")

// ErrInvalidInterval indicates a sampling interval with no interval code mapping.
var ErrInvalidInterval = errors.New("geomag: unknown interval")

// ErrUnsupportedWriteInterval indicates an interval the writer cannot chunk.
// Only second and minute data can be sent to an Edge node.
var ErrUnsupportedWriteInterval = errors.New("geomag: interval not supported for writing")

// ErrNoWaveServer indicates a read was attempted without a wave server client.
var ErrNoWaveServer = errors.New("geomag: no wave server configured")

// ErrNoRawInput indicates a write was attempted without a raw input dialer.
var ErrNoRawInput = errors.New("geomag: no raw input dialer configured")
