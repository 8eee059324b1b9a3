package config

var Presets = map[string]map[string]*Config{
	"square-well": {
		"bound": {
			Potential: "square-well", Method: "numerov", K2: -0.407,
			Grid: GridConfig{RMin: 0, RMax: 10, Points: 1001},
			Scan: ScanConfig{K2Min: -3.9, K2Max: -0.01, Samples: 64, MaxIter: 100, Tol: 1e-10},
		},
		"shallow": {
			Potential: "square-well", Method: "numerov", K2: -0.05,
			Params: map[string]float64{"depth": 3},
			Grid:   GridConfig{RMin: 0, RMax: 20, Points: 2001},
			Scan:   ScanConfig{K2Min: -2.9, K2Max: -0.005, Samples: 96, MaxIter: 100, Tol: 1e-10},
		},
		"scattering": {
			Potential: "square-well", Method: "numerov", K2: 1.0,
			Grid: GridConfig{RMin: 0, RMax: 20, Points: 4001},
		},
	},
	"coulomb": {
		"hydrogen-1s": {
			Potential: "coulomb", Method: "numerov", K2: -1,
			Grid: GridConfig{RMin: 0.001, RMax: 30.001, Points: 3001},
			Scan: ScanConfig{K2Min: -1.2, K2Max: -0.2, Samples: 60, MaxIter: 100, Tol: 1e-10},
		},
		"hydrogen-2s": {
			Potential: "coulomb", Method: "numerov", K2: -0.25,
			Grid: GridConfig{RMin: 0.001, RMax: 40.001, Points: 4001},
			Scan: ScanConfig{K2Min: -0.4, K2Max: -0.1, Samples: 60, MaxIter: 100, Tol: 1e-10},
		},
		"rydberg": {
			Potential: "coulomb", Method: "numerov", K2: -0.04,
			Grid: GridConfig{RMin: 0.001, RMax: 60.001, Points: 6001},
			Scan: ScanConfig{K2Min: -1.2, K2Max: -0.03, Samples: 400, MaxIter: 100, Tol: 1e-10},
		},
	},
	"harmonic": {
		"ground": {
			Potential: "harmonic", Method: "numerov", K2: 3,
			Grid: GridConfig{RMin: 0, RMax: 6, Points: 1201},
		},
		"ladder": {
			Potential: "harmonic", Method: "numerov", K2: 3,
			Grid: GridConfig{RMin: 0, RMax: 6, Points: 1201},
			Scan: ScanConfig{K2Min: 2, K2Max: 12, Samples: 101, MaxIter: 100, Tol: 1e-10},
		},
	},
	"woods-saxon": {
		"neutron-levels": {
			Potential: "woods-saxon", Method: "numerov", K2: -30,
			Grid: GridConfig{RMin: 0, RMax: 15, Points: 1501},
			Scan: ScanConfig{K2Min: -49, K2Max: -0.5, Samples: 200, MaxIter: 100, Tol: 1e-10},
		},
	},
	"zero": {
		"free": {
			Potential: "zero", Method: "numerov", K2: 1,
			Grid: GridConfig{RMin: 0, RMax: 20, Points: 2001},
		},
	},
}

func GetPreset(potential, preset string) *Config {
	potPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	cfg, ok := potPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets(potential string) []string {
	potPresets, ok := Presets[potential]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(potPresets))
	for name := range potPresets {
		names = append(names, name)
	}
	return names
}
