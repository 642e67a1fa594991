package bem

import "fmt"

// Rotor binds blade geometry to section aerodynamics. Construct with
// NewRotor so the tables are validated once up front.
type Rotor struct {
	geo  Geometry
	aero Aero
}

func NewRotor(geo Geometry, aero Aero) (*Rotor, error) {
	if err := geo.Validate(); err != nil {
		return nil, err
	}
	if err := aero.Validate(); err != nil {
		return nil, err
	}
	return &Rotor{geo: geo, aero: aero}, nil
}

// Geometry returns the rotor's blade geometry.
func (r *Rotor) Geometry() Geometry { return r.geo }

// BladeLoads integrates section forces along one blade at the given shaft
// speed (rad/s), forward speed (m/s) and air density (kg/m³). The section
// count equals the number of radial stations. Totals sum the per-section
// thrust, drag and torque; any table lookup outside its domain aborts the
// whole integration.
func (r *Rotor) BladeLoads(omega, speed, density float64) (*BladeLoads, error) {
	pitch := 0.0
	if r.geo.Pitch != nil {
		var err error
		pitch, err = r.geo.Pitch.At(speed)
		if err != nil {
			return nil, fmt.Errorf("pitch correction at %.2f m/s: %w", speed, err)
		}
	}

	sections := SectionFlow(omega, r.geo.TipRadius(), speed, len(r.geo.Stations))

	loads := &BladeLoads{Sections: make([]SectionForce, 0, len(sections))}
	for _, sec := range sections {
		area, err := r.geo.Area.At(sec.Radius)
		if err != nil {
			return nil, fmt.Errorf("section area at r=%.3f: %w", sec.Radius, err)
		}
		twist, err := r.geo.Twist.At(sec.Radius)
		if err != nil {
			return nil, fmt.Errorf("twist at r=%.3f: %w", sec.Radius, err)
		}

		q := 0.5 * density * sec.Velocity * sec.Velocity
		alpha := twist + sec.Alpha + pitch

		cl, err := r.aero.Lift.At(alpha)
		if err != nil {
			return nil, fmt.Errorf("lift coefficient at alpha %.2f: %w", alpha, err)
		}
		cd, err := r.aero.Drag.Coefficient(alpha, cl)
		if err != nil {
			return nil, err
		}

		f := SectionForce{
			Radius: sec.Radius,
			Thrust: cl * q * area,
			Drag:   cd * q * area,
		}
		f.Torque = f.Drag * sec.Radius

		loads.Sections = append(loads.Sections, f)
		loads.Thrust += f.Thrust
		loads.Drag += f.Drag
		loads.Torque += f.Torque
	}

	return loads, nil
}
