package core

import (
	"math"
	"strconv"
)

// ParamType tells the HUD how to read and step a parameter value.
type ParamType string

const (
	ParamTypeInt   ParamType = "int"
	ParamTypeFloat ParamType = "float"
	ParamTypeBool  ParamType = "bool"
)

// Parameter is one labelled value reported by a sim. Value is preformatted.
type Parameter struct {
	Key   string
	Label string
	Type  ParamType
	Value string
}

// ParameterGroup is a titled block of parameters.
type ParameterGroup struct {
	Name   string
	Params []Parameter
}

// ParameterSnapshot is everything a sim reports for display in one frame.
type ParameterSnapshot struct {
	Groups []ParameterGroup
}

// Lookup finds the parameter with the given key.
func (s ParameterSnapshot) Lookup(key string) (Parameter, bool) {
	for _, g := range s.Groups {
		for _, p := range g.Params {
			if p.Key == key {
				return p, true
			}
		}
	}
	return Parameter{}, false
}

// ParameterControl is a bounded value the HUD may step with -/+ buttons.
type ParameterControl struct {
	Key   string
	Label string
	Type  ParamType
	Step  float64
	Min   float64
	Max   float64
}

// Nudge returns value moved one step in direction (negative or positive),
// clamped to [Min, Max]. ok is false when the value would not change.
func (c ParameterControl) Nudge(value float64, direction int) (next float64, ok bool) {
	if direction == 0 {
		return value, false
	}
	step := c.Step
	if step <= 0 {
		step = 1
	}
	if direction < 0 {
		step = -step
	}
	next = math.Min(math.Max(value+step, c.Min), c.Max)
	if c.Type == ParamTypeInt {
		next = math.Round(next)
	}
	return next, math.Abs(next-value) > 1e-9
}

// Format renders value with a precision suited to the control's step.
func (c ParameterControl) Format(value float64) string {
	if c.Type == ParamTypeInt {
		return strconv.Itoa(int(math.Round(value)))
	}
	precision := 1
	switch {
	case c.Step < 0.01:
		precision = 3
	case c.Step < 0.1:
		precision = 2
	}
	return strconv.FormatFloat(value, 'f', precision, 64)
}

// Tunable is implemented by sims whose parameters the HUD can show and adjust.
type Tunable interface {
	Parameters() ParameterSnapshot
	ParameterControls() []ParameterControl
	SetIntParameter(key string, value int) bool
	SetFloatParameter(key string, value float64) bool
}
