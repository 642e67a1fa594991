package bem

import "math"

const degPerRad = 180 / math.Pi

// SectionFlow samples the local inflow at n evenly spaced annulus midpoints
// along a blade of the given tip radius. omega is the shaft speed in rad/s
// and speed the forward speed in m/s. Midpoint sampling keeps every radius
// strictly positive, so the tangential component never vanishes.
func SectionFlow(omega, tipRadius, speed float64, n int) []Section {
	dr := tipRadius / float64(n)
	sections := make([]Section, n)
	for i := range sections {
		r := (float64(i) + 0.5) * dr
		tangential := omega * r
		sections[i] = Section{
			Radius:   r,
			Velocity: math.Sqrt(speed*speed + tangential*tangential),
			Alpha:    -math.Atan(speed/tangential) * degPerRad,
		}
	}
	return sections
}
