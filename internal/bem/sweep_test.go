package bem_test

import (
	"math"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/airscrew/internal/bem"
	"github.com/san-kum/airscrew/internal/interp"
)

func sweepRotor(blades int) *bem.Rotor {
	stations := []float64{0.1, 0.3, 0.5}
	geo := bem.Geometry{
		Blades:   blades,
		Stations: stations,
		Twist:    interp.Table{X: stations, Y: []float64{10, 8, 6}},
		Area:     interp.Table{X: stations, Y: []float64{0.010, 0.012, 0.008}},
	}
	aero := bem.Aero{
		Lift: interp.Table{X: []float64{-95, 95}, Y: []float64{-1.5, 1.5}},
		Drag: bem.PolarDrag{CD0: 0.012, K: interp.Table{X: []float64{-95, 95}, Y: []float64{0.03, 0.03}}},
	}
	rotor, err := bem.NewRotor(geo, aero)
	Expect(err).NotTo(HaveOccurred())
	return rotor
}

var _ = Describe("Sweep", func() {
	env := bem.Env{RPM: 1800, SpeedStart: 5, SpeedEnd: 20, Steps: 5, Density: 1.225}

	It("returns Steps+1 points spanning the speed range in km/h", func() {
		points, err := sweepRotor(2).Sweep(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(6))

		Expect(points[0].Speed).To(BeNumerically("~", 5*3.6, 1e-9))
		Expect(points[5].Speed).To(BeNumerically("~", 20*3.6, 1e-9))

		step := (20.0 - 5.0) / 5.0 * 3.6
		for i := 1; i < len(points); i++ {
			Expect(points[i].Speed - points[i-1].Speed).To(BeNumerically("~", step, 1e-9))
		}
	})

	It("scales thrust, torque and power with blade count but not the ratios", func() {
		two, err := sweepRotor(2).Sweep(env)
		Expect(err).NotTo(HaveOccurred())
		six, err := sweepRotor(6).Sweep(env)
		Expect(err).NotTo(HaveOccurred())

		for i := range two {
			Expect(six[i].Thrust).To(BeNumerically("~", 3*two[i].Thrust, 1e-9))
			Expect(six[i].Torque).To(BeNumerically("~", 3*two[i].Torque, 1e-9))
			Expect(six[i].Power).To(BeNumerically("~", 3*two[i].Power, 1e-6))
			Expect(six[i].ThrustCoeff).To(BeNumerically("~", two[i].ThrustCoeff, 1e-9))
			Expect(six[i].ThrustPerPower).To(BeNumerically("~", two[i].ThrustPerPower, 1e-9))
		}
	})

	It("rejects a degenerate environment", func() {
		bad := env
		bad.Steps = 0
		_, err := sweepRotor(2).Sweep(bad)
		Expect(err).To(HaveOccurred())

		bad = env
		bad.RPM = 0
		_, err = sweepRotor(2).Sweep(bad)
		Expect(err).To(HaveOccurred())

		bad = env
		bad.Density = -1
		_, err = sweepRotor(2).Sweep(bad)
		Expect(err).To(HaveOccurred())
	})

	It("computes identical points in parallel", func() {
		sequential, err := sweepRotor(3).Sweep(env)
		Expect(err).NotTo(HaveOccurred())
		parallel, err := sweepRotor(3).SweepParallel(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(parallel).To(Equal(sequential))
	})
})

var _ = Describe("Sweep golden scenario", func() {
	// Untwisted unit blade with a linear lift curve and zero drag, spun at
	// exactly 1 rad/s, so every number is reproducible by hand.
	newUnitRotor := func() *bem.Rotor {
		stations := []float64{0, 1}
		geo := bem.Geometry{
			Blades:   1,
			Stations: stations,
			Twist:    interp.Table{X: stations, Y: []float64{0, 0}},
			Area:     interp.Table{X: stations, Y: []float64{1, 1}},
		}
		aero := bem.Aero{
			Lift: interp.Table{X: []float64{-90, 90}, Y: []float64{-1, 1}},
			Drag: bem.PolarDrag{CD0: 0, K: interp.Table{X: []float64{-90, 90}, Y: []float64{0, 0}}},
		}
		rotor, err := bem.NewRotor(geo, aero)
		Expect(err).NotTo(HaveOccurred())
		return rotor
	}

	rpmForOneRadPerSec := 60 / (2 * math.Pi)

	It("produces zero static thrust with non-finite ratios", func() {
		env := bem.Env{RPM: rpmForOneRadPerSec, SpeedStart: 0, SpeedEnd: 0, Steps: 0, Density: 1}
		points, err := newUnitRotor().Sweep(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(1))

		p := points[0]
		Expect(p.Speed).To(Equal(0.0))
		Expect(p.Thrust).To(Equal(0.0))
		Expect(p.Torque).To(Equal(0.0))
		Expect(p.Power).To(Equal(0.0))
		Expect(math.IsNaN(p.ThrustCoeff)).To(BeTrue())
		Expect(math.IsNaN(p.ThrustPerPower)).To(BeTrue())
	})

	It("matches the hand-computed thrust at 2 m/s", func() {
		// Two annulus midpoints at r = 0.25 and r = 0.75:
		//   alpha = -atan(2/r) degrees, cl = alpha/90, q = (4 + r^2)/2
		// summing cl*q gives -3.6306536931568707 N for the single blade.
		env := bem.Env{RPM: rpmForOneRadPerSec, SpeedStart: 2, SpeedEnd: 2, Steps: 0, Density: 1}
		points, err := newUnitRotor().Sweep(env)
		Expect(err).NotTo(HaveOccurred())
		Expect(points).To(HaveLen(1))

		Expect(points[0].Speed).To(BeNumerically("~", 7.2, 1e-12))
		Expect(points[0].Thrust).To(BeNumerically("~", -3.6306536931568707, 1e-9))
		Expect(points[0].Torque).To(Equal(0.0))
	})
})
