package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, DefaultRPM, cfg.Environment.RPM)
	require.Equal(t, DefaultSteps, cfg.Environment.SpeedSteps)
	require.Equal(t, DefaultDensity, cfg.Environment.Density)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	yml := `
name: bench
geometry:
  blades: 2
  stations: [0.1, 0.3, 0.5]
  twist: [10, 8, 6]
  area: [0.010, 0.012, 0.008]
aero:
  alpha: [-95, 95]
  cl: [-1.5, 1.5]
  cd0: 0.012
  polar_k: [0.03, 0.03]
environment:
  rpm: 1800
  speed_end: 30
`
	path := filepath.Join(t.TempDir(), "bench.yaml")
	require.NoError(t, os.WriteFile(path, []byte(yml), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)

	require.Equal(t, "bench", cfg.Name)
	require.Equal(t, 2, cfg.Geometry.Blades)
	require.Equal(t, 1800.0, cfg.Environment.RPM)
	require.Equal(t, 30.0, cfg.Environment.SpeedEnd)
	// Unset environment fields keep their defaults.
	require.Equal(t, DefaultSteps, cfg.Environment.SpeedSteps)
	require.Equal(t, DefaultDensity, cfg.Environment.Density)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cruiser.yaml")

	require.NoError(t, Save(path, Presets["cruiser"]))

	loaded, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, Presets["cruiser"], loaded)
}

func TestDragModelSelection(t *testing.T) {
	tests := []struct {
		name    string
		aero    AeroConfig
		wantErr string
	}{
		{
			"polar",
			AeroConfig{Alpha: []float64{-90, 90}, CL: []float64{-1, 1}, CD0: f64(0.01), PolarK: []float64{0.03, 0.03}},
			"",
		},
		{
			"direct",
			AeroConfig{Alpha: []float64{-90, 90}, CL: []float64{-1, 1}, CD: []float64{0.05, 0.05}},
			"",
		},
		{
			"both",
			AeroConfig{Alpha: []float64{-90, 90}, CL: []float64{-1, 1}, CD0: f64(0.01), PolarK: []float64{0.03, 0.03}, CD: []float64{0.05, 0.05}},
			"mutually exclusive",
		},
		{
			"neither",
			AeroConfig{Alpha: []float64{-90, 90}, CL: []float64{-1, 1}},
			"set either",
		},
		{
			"partial polar",
			AeroConfig{Alpha: []float64{-90, 90}, CL: []float64{-1, 1}, CD0: f64(0.01)},
			"needs both",
		},
	}

	for _, tt := range tests {
		_, err := tt.aero.dragModel()
		if tt.wantErr == "" {
			require.NoError(t, err, tt.name)
		} else {
			require.ErrorContains(t, err, tt.wantErr, tt.name)
		}
	}
}

func TestPresetsSweep(t *testing.T) {
	for name, cfg := range Presets {
		rotor, err := cfg.Rotor()
		require.NoError(t, err, name)

		points, err := rotor.Sweep(cfg.Env())
		require.NoError(t, err, name)
		require.Len(t, points, cfg.Environment.SpeedSteps+1, name)

		// Static thrust should be positive and decay as forward speed builds.
		require.Greater(t, points[0].Thrust, 0.0, name)
		last := points[len(points)-1]
		require.Less(t, last.Thrust, points[0].Thrust, name)
	}
}

func TestGetPreset(t *testing.T) {
	require.NotNil(t, GetPreset("cruiser"))
	require.NotNil(t, GetPreset("varipitch"))
	require.Nil(t, GetPreset("nonexistent"))
	require.ElementsMatch(t, []string{"cruiser", "varipitch"}, ListPresets())
}
