package bem

import (
	"fmt"
	"math"

	"github.com/san-kum/airscrew/internal/interp"
)

// Section is the local inflow at one radial station.
type Section struct {
	Radius   float64 // m
	Velocity float64 // resultant inflow speed, m/s
	Alpha    float64 // induced angle of attack, degrees
}

// SectionForce holds one station's force contributions.
type SectionForce struct {
	Radius float64
	Thrust float64 // N
	Drag   float64 // N
	Torque float64 // N·m
}

// BladeLoads aggregates one blade's section forces at one forward speed.
type BladeLoads struct {
	Sections []SectionForce
	Thrust   float64
	Drag     float64
	Torque   float64
}

// SpeedPoint is one row of the performance curve.
type SpeedPoint struct {
	Speed          float64 // km/h
	Thrust         float64 // N
	Torque         float64 // N·m
	Power          float64 // W
	ThrustCoeff    float64 // dimensionless; non-finite at zero forward speed
	ThrustPerPower float64 // N/W; non-finite at zero forward speed
}

// Geometry describes one blade. Stations are the radial breakpoints, inner
// to tip; Twist and Area are keyed on the same radii. Pitch, when set, maps
// forward speed (m/s) to a variable-pitch correction angle (degrees).
type Geometry struct {
	Blades   int
	Stations []float64
	Twist    interp.Table // radius (m) -> built-in twist, degrees
	Area     interp.Table // radius (m) -> section area, m²
	Pitch    *interp.Table
}

// TipRadius returns the outermost station radius.
func (g Geometry) TipRadius() float64 {
	return g.Stations[len(g.Stations)-1]
}

func (g Geometry) Validate() error {
	if g.Blades < 1 {
		return fmt.Errorf("geometry: blade count must be positive, got %d", g.Blades)
	}
	if len(g.Stations) < 2 {
		return fmt.Errorf("geometry: need at least 2 radial stations, got %d", len(g.Stations))
	}
	for i := 1; i < len(g.Stations); i++ {
		if g.Stations[i] <= g.Stations[i-1] {
			return fmt.Errorf("geometry: stations not strictly increasing at index %d", i)
		}
	}
	if g.TipRadius() <= 0 {
		return fmt.Errorf("geometry: tip radius must be positive, got %g", g.TipRadius())
	}
	if err := g.Twist.Validate(); err != nil {
		return fmt.Errorf("geometry twist table: %w", err)
	}
	if err := g.Area.Validate(); err != nil {
		return fmt.Errorf("geometry area table: %w", err)
	}
	if g.Pitch != nil {
		if err := g.Pitch.Validate(); err != nil {
			return fmt.Errorf("geometry pitch table: %w", err)
		}
	}
	return nil
}

// DragModel yields a section drag coefficient from the total angle of
// attack (degrees) and the lift coefficient already looked up there.
type DragModel interface {
	Coefficient(alpha, cl float64) (float64, error)
}

// PolarDrag models drag as a zero-lift coefficient plus a lift-induced
// term: cd = cd0 + k(alpha)·cl².
type PolarDrag struct {
	CD0 float64
	K   interp.Table // alpha (degrees) -> polar factor
}

func (p PolarDrag) Coefficient(alpha, cl float64) (float64, error) {
	k, err := p.K.At(alpha)
	if err != nil {
		return 0, fmt.Errorf("polar factor at alpha %.2f: %w", alpha, err)
	}
	return p.CD0 + k*cl*cl, nil
}

// TableDrag looks the drag coefficient up directly from a polar table.
type TableDrag struct {
	CD interp.Table // alpha (degrees) -> cd
}

func (d TableDrag) Coefficient(alpha, cl float64) (float64, error) {
	cd, err := d.CD.At(alpha)
	if err != nil {
		return 0, fmt.Errorf("drag coefficient at alpha %.2f: %w", alpha, err)
	}
	return cd, nil
}

// Aero holds the section airfoil data.
type Aero struct {
	Lift interp.Table // alpha (degrees) -> cl
	Drag DragModel
}

func (a Aero) Validate() error {
	if err := a.Lift.Validate(); err != nil {
		return fmt.Errorf("aero lift table: %w", err)
	}
	switch d := a.Drag.(type) {
	case PolarDrag:
		if err := d.K.Validate(); err != nil {
			return fmt.Errorf("aero polar table: %w", err)
		}
	case TableDrag:
		if err := d.CD.Validate(); err != nil {
			return fmt.Errorf("aero drag table: %w", err)
		}
	case nil:
		return fmt.Errorf("aero: no drag model configured")
	}
	return nil
}

// Env is the operating environment for a sweep. RPM is shaft speed in
// revolutions per minute; AngularSpeed converts it once at the boundary.
type Env struct {
	RPM        float64
	SpeedStart float64 // m/s
	SpeedEnd   float64 // m/s
	Steps      int     // number of intervals; the sweep emits Steps+1 points
	Density    float64 // kg/m³
}

// AngularSpeed returns the shaft speed in rad/s.
func (e Env) AngularSpeed() float64 {
	return 2 * math.Pi * e.RPM / 60
}

func (e Env) Validate() error {
	if e.RPM <= 0 {
		return fmt.Errorf("env: rpm must be positive, got %g", e.RPM)
	}
	if e.Density <= 0 {
		return fmt.Errorf("env: density must be positive, got %g", e.Density)
	}
	if e.SpeedEnd < e.SpeedStart {
		return fmt.Errorf("env: speed range end %g below start %g", e.SpeedEnd, e.SpeedStart)
	}
	if e.Steps < 0 {
		return fmt.Errorf("env: speed steps must be non-negative, got %d", e.Steps)
	}
	if e.Steps == 0 && e.SpeedEnd != e.SpeedStart {
		return fmt.Errorf("env: zero steps over non-degenerate range [%g, %g]", e.SpeedStart, e.SpeedEnd)
	}
	return nil
}
