package edge

import (
	"math"

	"github.com/j143/geomag-algorithms/internal/timeseries"
)

// Edge nodes store geomagnetic values as integer thousandths of the
// physical unit.
const scaleFactor = 1000.0

// ScaleToInt converts physical values to wire counts. Values are
// multiplied by 1000 and truncated toward zero. The caller must mask
// non-finite samples first.
func ScaleToInt(data []float64) []int32 {
	counts := make([]int32, len(data))
	for i, v := range data {
		counts[i] = int32(math.Trunc(v * scaleFactor))
	}
	return counts
}

// ScaleToFloat converts wire counts back to physical values in place.
func ScaleToFloat(tr *timeseries.Trace) {
	for i, v := range tr.Data {
		tr.Data[i] = v / scaleFactor
	}
}
