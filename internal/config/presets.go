package config

// Presets are hand-authored propellers for quick experiments. Table domains
// deliberately extend well past the angles a sweep can reach, since lookups
// beyond a table's end abort the run.
var Presets = map[string]*Config{
	"cruiser": {
		Name: "cruiser",
		Geometry: GeometryConfig{
			Blades:   2,
			Stations: []float64{0.15, 0.25, 0.35, 0.45, 0.55, 0.65, 0.80},
			Twist:    []float64{32, 26, 21, 17, 14, 12, 10},
			Area:     []float64{0.010, 0.014, 0.016, 0.016, 0.015, 0.013, 0.010},
		},
		Aero: AeroConfig{
			Alpha:  []float64{-180, -20, -10, -5, 0, 5, 10, 15, 20, 180},
			CL:     []float64{0, -1.0, -0.6, -0.15, 0.30, 0.75, 1.15, 1.40, 1.10, 0},
			CD0:    f64(0.012),
			PolarK: []float64{0.080, 0.050, 0.030, 0.025, 0.022, 0.022, 0.025, 0.030, 0.050, 0.080},
		},
		Environment: EnvironmentConfig{
			RPM:        2400,
			SpeedStart: 0,
			SpeedEnd:   40,
			SpeedSteps: 20,
			Density:    DefaultDensity,
		},
	},
	"varipitch": {
		Name: "varipitch",
		Geometry: GeometryConfig{
			Blades:   3,
			Stations: []float64{0.20, 0.35, 0.50, 0.65, 0.80, 0.95, 1.10},
			Twist:    []float64{28, 23, 19, 16, 13, 11, 9},
			Area:     []float64{0.012, 0.017, 0.020, 0.021, 0.019, 0.016, 0.012},
			// Constant-speed governor: coarser pitch as forward speed builds.
			PitchSpeeds: []float64{0, 15, 30, 45, 60, 90},
			PitchAngles: []float64{0, 2, 5, 9, 14, 22},
		},
		Aero: AeroConfig{
			Alpha: []float64{-180, -15, -10, -5, 0, 5, 10, 15, 20, 180},
			CL:    []float64{0, -0.85, -0.55, -0.10, 0.35, 0.80, 1.20, 1.45, 1.15, 0},
			CD:    []float64{1.20, 0.080, 0.035, 0.016, 0.012, 0.018, 0.035, 0.070, 0.130, 1.20},
		},
		Environment: EnvironmentConfig{
			RPM:        2000,
			SpeedStart: 0,
			SpeedEnd:   50,
			SpeedSteps: 25,
			Density:    DefaultDensity,
		},
	},
}

func GetPreset(name string) *Config {
	return Presets[name]
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

func f64(v float64) *float64 { return &v }
