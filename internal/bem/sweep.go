package bem

import (
	"fmt"
	"math"
)

// Sweep evaluates the rotor across env's forward-speed range and returns
// Steps+1 points from SpeedStart to SpeedEnd inclusive. Single-blade loads
// scale by blade count; power is total torque times shaft speed. The thrust
// coefficient normalizes by disc area and free-stream dynamic pressure, so
// at zero forward speed it and the thrust-to-power ratio come out non-finite
// rather than failing.
func (r *Rotor) Sweep(env Env) ([]SpeedPoint, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	points := make([]SpeedPoint, env.Steps+1)
	for i := range points {
		p, err := r.pointAt(env, i)
		if err != nil {
			return nil, err
		}
		points[i] = p
	}
	return points, nil
}

func (r *Rotor) pointAt(env Env, i int) (SpeedPoint, error) {
	step := 0.0
	if env.Steps > 0 {
		step = (env.SpeedEnd - env.SpeedStart) / float64(env.Steps)
	}
	speed := env.SpeedStart + float64(i)*step

	omega := env.AngularSpeed()
	loads, err := r.BladeLoads(omega, speed, env.Density)
	if err != nil {
		return SpeedPoint{}, fmt.Errorf("sweep point %d (%.2f m/s): %w", i, speed, err)
	}

	blades := float64(r.geo.Blades)
	thrust := loads.Thrust * blades
	torque := loads.Torque * blades
	power := torque * omega

	tip := r.geo.TipRadius()
	discArea := math.Pi * tip * tip
	q := 0.5 * env.Density * speed * speed

	return SpeedPoint{
		Speed:          speed * 3.6,
		Thrust:         thrust,
		Torque:         torque,
		Power:          power,
		ThrustCoeff:    thrust / (discArea * q),
		ThrustPerPower: thrust / power,
	}, nil
}
