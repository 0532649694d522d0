package life

import (
	"strconv"

	"life-canvas/internal/core"
)

// Parameters reports the grid setup and run counters.
func (l *Life) Parameters() core.ParameterSnapshot {
	size := l.Size()
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "Grid",
			Params: []core.Parameter{
				intParam("w", "Width", size.W),
				intParam("h", "Height", size.H),
				{Key: "neighbors", Label: "Neighbors", Type: core.ParamTypeString, Value: string(l.cfg.Neighbors)},
			},
		},
		{
			Name: "Run",
			Params: []core.Parameter{
				intParam("seeds", "Seeds", l.cfg.Seeds),
				intParam("rate", "Gen/s", l.cfg.Rate),
				intParam("generation", "Generation", l.generation),
				intParam("population", "Population", l.population),
			},
		},
	}}
}

func intParam(key, label string, v int) core.Parameter {
	return core.Parameter{Key: key, Label: label, Type: core.ParamTypeInt, Value: strconv.Itoa(v)}
}
