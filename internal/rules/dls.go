package rules

import "math"

// AdjustedTarget computes a rain-adjusted chase target.
//
// This is a deliberate placeholder heuristic, not the official
// Duckworth-Lewis-Stern resource table: remaining overs scale the first
// innings total linearly, each wicket down shaves five percent, and the
// usual +1 wins. Good enough for club matches; anything official needs
// the real tables.
func AdjustedTarget(firstInningsTotal, oversLost, wicketsDown, totalOvers int) int {
	if totalOvers <= 0 {
		return firstInningsTotal + 1
	}
	resourceLeft := float64(totalOvers-oversLost) / float64(totalOvers)
	if resourceLeft < 0 {
		resourceLeft = 0
	}
	wicketPenalty := 1 - float64(wicketsDown)*0.05
	if wicketPenalty < 0 {
		wicketPenalty = 0
	}
	return int(math.Ceil(float64(firstInningsTotal)*resourceLeft*wicketPenalty)) + 1
}
