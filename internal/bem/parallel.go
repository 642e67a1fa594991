package bem

import "sync"

// SweepParallel computes the same points as Sweep with one goroutine per
// speed sample. Every point is independent, so output order is preserved by
// indexing into a preallocated slice. The first error wins; the result is
// all-or-nothing either way.
func (r *Rotor) SweepParallel(env Env) ([]SpeedPoint, error) {
	if err := env.Validate(); err != nil {
		return nil, err
	}

	points := make([]SpeedPoint, env.Steps+1)
	errs := make([]error, env.Steps+1)

	var wg sync.WaitGroup
	for i := range points {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			points[idx], errs[idx] = r.pointAt(env, idx)
		}(i)
	}
	wg.Wait()

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return points, nil
}
