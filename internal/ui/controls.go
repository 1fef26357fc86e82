package ui

import (
	"math"
	"strconv"

	"chain-ca/internal/core"
)

const defaultFloatStep = 0.05

// nudgeInt returns the value one step away from current in direction, clamped
// to the control's bounds. ok is false when the value would not change.
func nudgeInt(ctrl core.ParameterControl, current, direction int) (int, bool) {
	if direction == 0 {
		return current, false
	}
	step := int(math.Round(ctrl.Step))
	if step <= 0 {
		step = 1
	}
	target := current + direction*step
	if ctrl.HasMin {
		if min := int(math.Round(ctrl.Min)); target < min {
			target = min
		}
	}
	if ctrl.HasMax {
		if max := int(math.Round(ctrl.Max)); target > max {
			target = max
		}
	}
	return target, target != current
}

// nudgeFloat is the float counterpart of nudgeInt.
func nudgeFloat(ctrl core.ParameterControl, current float64, direction int) (float64, bool) {
	if direction == 0 {
		return current, false
	}
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	target := current + float64(direction)*step
	if ctrl.HasMin && target < ctrl.Min {
		target = ctrl.Min
	}
	if ctrl.HasMax && target > ctrl.Max {
		target = ctrl.Max
	}
	// Snap to the step grid so repeated nudges don't accumulate error.
	target = math.Round(target/step) * step
	return target, math.Abs(target-current) >= 1e-9
}

func formatFloat(ctrl core.ParameterControl, value float64) string {
	step := ctrl.Step
	if step <= 0 {
		step = defaultFloatStep
	}
	precision := 1
	switch {
	case step < 0.001:
		precision = 4
	case step < 0.01:
		precision = 3
	case step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// readouts flattens every snapshot group that has no adjustable control into
// label/value lines, grouped under their headers.
func readouts(snap core.ParameterSnapshot, controls []core.ParameterControl) []readoutLine {
	adjustable := make(map[string]bool, len(controls))
	for _, c := range controls {
		adjustable[c.Key] = true
	}
	var lines []readoutLine
	for _, group := range snap.Groups {
		var params []core.Parameter
		for _, p := range group.Params {
			if !adjustable[p.Key] {
				params = append(params, p)
			}
		}
		if len(params) == 0 {
			continue
		}
		lines = append(lines, readoutLine{label: group.Name, header: true})
		for _, p := range params {
			lines = append(lines, readoutLine{label: p.Label, value: p.Value})
		}
	}
	return lines
}

type readoutLine struct {
	label  string
	value  string
	header bool
}
