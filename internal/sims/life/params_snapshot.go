package life

import (
	"strconv"

	"lifegrid/internal/core"
)

var _ core.Tunable = (*Life)(nil)

// Parameters reports the current tunables for the HUD.
func (l *Life) Parameters() core.ParameterSnapshot {
	groups := []core.ParameterGroup{
		{
			Name: "World",
			Params: []core.Parameter{
				intParam("w", "Width", l.torus.W),
				intParam("h", "Height", l.torus.H),
				int64Param("seed", "Seed", l.cfg.Seed),
				boolParam("colored", "Colored", l.cfg.Colored),
			},
		},
		{
			Name: "Execution",
			Params: []core.Parameter{
				intParam("workers", "Workers", l.cfg.Workers),
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.population),
			},
		},
	}
	if l.cfg.Colored {
		groups = append(groups, core.ParameterGroup{
			Name: "Color",
			Params: []core.Parameter{
				intParam("jitter", "Newborn jitter", l.cfg.Jitter),
				floatParam("saturation", "Newborn saturation", l.cfg.Saturation),
			},
		})
	}
	return core.ParameterSnapshot{Groups: groups}
}

// ParameterControls lists the values the HUD may adjust.
func (l *Life) ParameterControls() []core.ParameterControl {
	controls := []core.ParameterControl{
		{Key: "workers", Label: "Workers", Type: core.ParamTypeInt, Step: 1, Min: 1, Max: maxWorkers},
	}
	if l.cfg.Colored {
		controls = append(controls,
			core.ParameterControl{Key: "jitter", Label: "Jitter", Type: core.ParamTypeInt, Step: 1, Min: 0, Max: maxJitter},
			core.ParameterControl{Key: "saturation", Label: "Saturation", Type: core.ParamTypeFloat, Step: 0.05, Min: 0, Max: 1},
		)
	}
	return controls
}

// SetIntParameter updates an integer tunable by key.
func (l *Life) SetIntParameter(key string, value int) bool {
	switch key {
	case "workers":
		return l.SetWorkers(value)
	case "jitter":
		if !l.cfg.Colored || value < 0 || value > maxJitter {
			return false
		}
		l.cfg.Jitter = value
		return true
	}
	return false
}

// SetFloatParameter updates a floating point tunable by key.
func (l *Life) SetFloatParameter(key string, value float64) bool {
	if key != "saturation" || !l.cfg.Colored || !(value >= 0 && value <= 1) {
		return false
	}
	l.cfg.Saturation = value
	return true
}

func intParam(key, label string, value int) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.Itoa(value),
	}
}

func int64Param(key, label string, value int64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeInt,
		Value: strconv.FormatInt(value, 10),
	}
}

func floatParam(key, label string, value float64) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeFloat,
		Value: strconv.FormatFloat(value, 'f', -1, 64),
	}
}

func boolParam(key, label string, value bool) core.Parameter {
	return core.Parameter{
		Key:   key,
		Label: label,
		Type:  core.ParamTypeBool,
		Value: strconv.FormatBool(value),
	}
}
