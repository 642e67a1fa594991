// Package bem computes propeller thrust and power with blade-element theory.
//
// The blade is split into radial strips. For each strip the local inflow
// (resultant velocity and induced angle of attack) follows from shaft speed
// and forward speed, section coefficients come from tabulated airfoil data,
// and the strip forces integrate into one blade's thrust, drag and torque:
//
//	rotor, err := bem.NewRotor(geo, aero)
//	points, err := rotor.Sweep(env)
//
// Sweep evaluates the rotor over a range of forward speeds and reports
// total thrust, torque, power, thrust coefficient and thrust-to-power ratio
// per speed point. All inputs are SI; forward speed in the output is km/h.
package bem
