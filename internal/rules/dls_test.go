package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAdjustedTarget_NoInterruption(t *testing.T) {
	assert.Equal(t, 161, AdjustedTarget(160, 0, 0, 20))
}

func TestAdjustedTarget_OversLostScaleTarget(t *testing.T) {
	// Half the overs gone halves the resource.
	assert.Equal(t, 81, AdjustedTarget(160, 10, 0, 20))
}

func TestAdjustedTarget_WicketsShaveFivePercentEach(t *testing.T) {
	assert.Equal(t, 145, AdjustedTarget(160, 0, 2, 20))
}

func TestAdjustedTarget_DegenerateInputs(t *testing.T) {
	assert.Equal(t, 161, AdjustedTarget(160, 0, 0, 0), "no over allocation falls back to total plus one")
	assert.Equal(t, 1, AdjustedTarget(160, 25, 0, 20), "all resource lost")
	assert.Equal(t, 1, AdjustedTarget(160, 0, 25, 20), "wicket penalty floors at zero")
}
