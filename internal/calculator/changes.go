// Package calculator holds the small pure computations shared by the data
// services.
package calculator

import "math"

// Round2 rounds to two decimal places, matching the precision used on the
// wire for prices, index levels and derived statistics.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// Round1 rounds to one decimal place, the precision used for weather
// metrics.
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Changes derives day-over-day absolute and percentage change for an
// ordered value sequence. Both outputs have the same length as the input.
//
// Rules:
//   - fewer than two values: both outputs are all zeros
//   - element 0 is always 0.0 in both outputs
//   - a zero previous value yields 0.0 for both (no division by zero)
//   - results are rounded to two decimals
func Changes(values []float64) (changes []float64, changePercent []float64) {
	changes = make([]float64, len(values))
	changePercent = make([]float64, len(values))
	if len(values) < 2 {
		return changes, changePercent
	}

	for i := 1; i < len(values); i++ {
		prev := values[i-1]
		if prev == 0 {
			continue
		}
		diff := Round2(values[i] - prev)
		changes[i] = diff
		changePercent[i] = Round2(diff / prev * 100)
	}
	return changes, changePercent
}
