package config

// Presets are the classic textbook systems, keyed by name.
var Presets = map[string]*Config{
	"first_order": {
		Num: []float64{1}, Den: []float64{1, 1},
		Input: "step", Horizon: DefaultHorizon, Samples: DefaultSamples,
	},
	"second_order": {
		Num: []float64{1}, Den: []float64{1, 2, 1},
		Input: "step", Horizon: DefaultHorizon, Samples: DefaultSamples,
	},
	"unstable": {
		Num: []float64{1}, Den: []float64{1, -1, 1},
		Input: "step", Horizon: DefaultHorizon, Samples: DefaultSamples,
	},
	"integrator": {
		Num: []float64{1}, Den: []float64{1, 1, 0},
		Input: "ramp", Horizon: DefaultHorizon, Samples: DefaultSamples,
	},
	"oscillatory": {
		Num: []float64{1}, Den: []float64{1, 0, 1},
		Input: "step", Horizon: DefaultHorizon, Samples: DefaultSamples,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}
