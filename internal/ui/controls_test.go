package ui

import (
	"testing"

	"chain-ca/internal/core"

	"github.com/stretchr/testify/assert"
)

func TestNudgeIntClampsToBounds(t *testing.T) {
	ctrl := core.ParameterControl{Key: "n", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: 3, HasMin: true, HasMax: true}

	v, ok := nudgeInt(ctrl, 2, 1)
	assert.True(t, ok)
	assert.Equal(t, 3, v)

	_, ok = nudgeInt(ctrl, 3, 1)
	assert.False(t, ok, "at max")

	_, ok = nudgeInt(ctrl, 0, -1)
	assert.False(t, ok, "at min")
}

func TestNudgeFloatSnapsToStep(t *testing.T) {
	ctrl := core.ParameterControl{Key: "p", Type: core.ParamTypeFloat, Step: 0.01, Min: 0, Max: 1, HasMin: true, HasMax: true}

	v := 0.1
	for i := 0; i < 10; i++ {
		var ok bool
		v, ok = nudgeFloat(ctrl, v, 1)
		assert.True(t, ok)
	}
	assert.InDelta(t, 0.2, v, 1e-12)

	_, ok := nudgeFloat(ctrl, 1, 1)
	assert.False(t, ok)
}

func TestFormatFloatPrecisionFollowsStep(t *testing.T) {
	assert.Equal(t, "0.10", formatFloat(core.ParameterControl{Step: 0.01}, 0.1))
	assert.Equal(t, "0.5", formatFloat(core.ParameterControl{Step: 0.5}, 0.5))
	assert.Equal(t, "0.1235", formatFloat(core.ParameterControl{Step: 0.0001}, 0.12345))
}

func TestReadoutsSkipAdjustableKeys(t *testing.T) {
	snap := core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{Name: "Board", Params: []core.Parameter{{Key: "atom_chance", Label: "Atom chance", Value: "0.1"}}},
		{Name: "Population", Params: []core.Parameter{
			{Key: "atoms", Label: "Atoms", Value: "12"},
			{Key: "neutrons", Label: "Neutrons", Value: "3"},
		}},
	}}
	controls := []core.ParameterControl{{Key: "atom_chance"}}

	lines := readouts(snap, controls)
	assert.Equal(t, []readoutLine{
		{label: "Population", header: true},
		{label: "Atoms", value: "12"},
		{label: "Neutrons", value: "3"},
	}, lines)
}
