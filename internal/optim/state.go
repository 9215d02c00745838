package optim

import "fmt"

// State is one snapshot of a stateful optimizer's bookkeeping: the current
// parameter vector plus the algorithm's named accumulator vectors and
// counters. Every accumulator vector has the same length as Params.
//
// Updates produce a fresh State and never modify the one they were given, so
// a caller holding an old snapshot can keep inspecting it after later steps.
type State struct {
	Params   []float64
	Vectors  map[string][]float64
	Counters map[string]int64
}

// Vector returns the named accumulator vector, or nil if absent.
func (s State) Vector(name string) []float64 {
	return s.Vectors[name]
}

// Counter returns the named counter, or 0 if absent.
func (s State) Counter(name string) int64 {
	return s.Counters[name]
}

// dict returns the introspectable view of the snapshot: every field except
// Params, with vectors copied so later steps cannot alias into the result.
func (s State) dict() map[string]any {
	d := make(map[string]any, len(s.Vectors)+len(s.Counters))
	for name, vec := range s.Vectors {
		d[name] = append([]float64(nil), vec...)
	}
	for name, c := range s.Counters {
		d[name] = c
	}
	return d
}

// checkShape verifies every accumulator vector matches the parameter count n.
func (s State) checkShape(op string, n int) error {
	for name, vec := range s.Vectors {
		if len(vec) != n {
			return &ShapeError{
				Op:   fmt.Sprintf("%s state %q", op, name),
				Want: n,
				Got:  len(vec),
			}
		}
	}
	return nil
}
