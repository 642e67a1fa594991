package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/airscrew/internal/bem"
	"github.com/san-kum/airscrew/internal/interp"
)

const (
	DefaultRPM     = 2400.0
	DefaultSteps   = 20
	DefaultDensity = 1.225 // sea-level standard atmosphere, kg/m³
)

type Config struct {
	Name        string            `yaml:"name"`
	Geometry    GeometryConfig    `yaml:"geometry"`
	Aero        AeroConfig        `yaml:"aero"`
	Environment EnvironmentConfig `yaml:"environment"`
}

type GeometryConfig struct {
	Blades   int       `yaml:"blades"`
	Stations []float64 `yaml:"stations"` // radii, m, inner to tip
	Twist    []float64 `yaml:"twist"`    // built-in twist per station, degrees
	Area     []float64 `yaml:"area"`     // section area per station, m²
	// Optional variable-pitch schedule: correction angle vs forward speed.
	PitchSpeeds []float64 `yaml:"pitch_speeds,omitempty"` // m/s
	PitchAngles []float64 `yaml:"pitch_angles,omitempty"` // degrees
}

// AeroConfig selects one of two drag models by which fields are present:
// cd0 + polar_k for the drag-polar model, or cd for a direct table.
type AeroConfig struct {
	Alpha  []float64 `yaml:"alpha"` // angle of attack breakpoints, degrees
	CL     []float64 `yaml:"cl"`
	CD0    *float64  `yaml:"cd0,omitempty"`
	PolarK []float64 `yaml:"polar_k,omitempty"`
	CD     []float64 `yaml:"cd,omitempty"`
}

type EnvironmentConfig struct {
	RPM        float64 `yaml:"rpm"`         // shaft speed, revolutions per minute
	SpeedStart float64 `yaml:"speed_start"` // m/s
	SpeedEnd   float64 `yaml:"speed_end"`   // m/s
	SpeedSteps int     `yaml:"speed_steps"`
	Density    float64 `yaml:"density"` // kg/m³
}

func DefaultConfig() *Config {
	return &Config{
		Environment: EnvironmentConfig{
			RPM:        DefaultRPM,
			SpeedSteps: DefaultSteps,
			Density:    DefaultDensity,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Rotor assembles the bem geometry and aerodynamics from the parallel
// per-station arrays. Table validation happens inside bem.NewRotor.
func (c *Config) Rotor() (*bem.Rotor, error) {
	g := c.Geometry
	geo := bem.Geometry{
		Blades:   g.Blades,
		Stations: g.Stations,
		Twist:    interp.Table{X: g.Stations, Y: g.Twist},
		Area:     interp.Table{X: g.Stations, Y: g.Area},
	}
	if len(g.PitchSpeeds) > 0 || len(g.PitchAngles) > 0 {
		pitch := interp.Table{X: g.PitchSpeeds, Y: g.PitchAngles}
		geo.Pitch = &pitch
	}

	drag, err := c.Aero.dragModel()
	if err != nil {
		return nil, err
	}
	aero := bem.Aero{
		Lift: interp.Table{X: c.Aero.Alpha, Y: c.Aero.CL},
		Drag: drag,
	}

	return bem.NewRotor(geo, aero)
}

func (a AeroConfig) dragModel() (bem.DragModel, error) {
	polar := a.CD0 != nil || len(a.PolarK) > 0
	direct := len(a.CD) > 0

	switch {
	case polar && direct:
		return nil, fmt.Errorf("aero: cd table and cd0/polar_k are mutually exclusive")
	case direct:
		return bem.TableDrag{CD: interp.Table{X: a.Alpha, Y: a.CD}}, nil
	case polar:
		if a.CD0 == nil || len(a.PolarK) == 0 {
			return nil, fmt.Errorf("aero: polar model needs both cd0 and polar_k")
		}
		return bem.PolarDrag{CD0: *a.CD0, K: interp.Table{X: a.Alpha, Y: a.PolarK}}, nil
	default:
		return nil, fmt.Errorf("aero: set either cd or cd0/polar_k")
	}
}

// Env maps the environment group onto the sweep parameters.
func (c *Config) Env() bem.Env {
	return bem.Env{
		RPM:        c.Environment.RPM,
		SpeedStart: c.Environment.SpeedStart,
		SpeedEnd:   c.Environment.SpeedEnd,
		Steps:      c.Environment.SpeedSteps,
		Density:    c.Environment.Density,
	}
}
