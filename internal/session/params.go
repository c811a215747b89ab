package session

import (
	"strconv"

	"lifeboard/internal/core"
)

const maxTPS = 240

// Parameters reports the session status for the HUD.
func (c *Controller) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Board",
			Params: []core.Parameter{
				{Key: KeyState, Label: "State", Type: core.ParamTypeString, Value: c.state.String()},
				{Key: KeyGeneration, Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
				{Key: KeyPopulation, Label: "Population", Type: core.ParamTypeInt, Value: strconv.Itoa(c.cur.Population())},
				{Key: KeyPending, Label: "Rebaseline", Type: core.ParamTypeBool, Value: strconv.FormatBool(c.pendingSave || c.edited)},
			},
		},
		{
			Name: "Timing",
			Params: []core.Parameter{
				{Key: KeyPlayTPS, Label: "Play TPS", Type: core.ParamTypeInt, Value: strconv.Itoa(c.cfg.PlayTPS)},
				{Key: KeyEditTPS, Label: "Edit TPS", Type: core.ParamTypeInt, Value: strconv.Itoa(c.cfg.EditTPS)},
				{Key: KeyDensity, Label: "Density", Type: core.ParamTypeString, Value: c.cfg.Density.String()},
			},
		},
	}}
}

// ParameterControls lists the tick rates as HUD-adjustable values.
func (c *Controller) ParameterControls() []core.ParameterControl {
	return []core.ParameterControl{
		{Key: KeyPlayTPS, Label: "Play TPS", Step: 1, Min: 1, Max: maxTPS, HasMin: true, HasMax: true},
		{Key: KeyEditTPS, Label: "Edit TPS", Step: 10, Min: 10, Max: maxTPS, HasMin: true, HasMax: true},
	}
}

// SetIntParameter updates a tick rate. Unknown keys are rejected.
func (c *Controller) SetIntParameter(key string, value int) bool {
	for _, ctrl := range c.ParameterControls() {
		if ctrl.Key != key {
			continue
		}
		value = ctrl.Clamp(value)
		switch key {
		case KeyPlayTPS:
			c.cfg.PlayTPS = value
		case KeyEditTPS:
			c.cfg.EditTPS = value
		}
		return true
	}
	return false
}

var (
	_ core.ParameterProvider         = (*Controller)(nil)
	_ core.ParameterControlsProvider = (*Controller)(nil)
	_ core.IntParameterSetter        = (*Controller)(nil)
)
