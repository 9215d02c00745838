package optim

// Algorithm is the stateful optimizer representation: an initialize
// operation that produces zeroed accumulator state for a parameter count,
// an update operation that maps one state snapshot and a gradient to the
// next snapshot, and the snapshot currently carried.
//
// State is materialized on the first ComputeParameters call, sized to the
// parameter vector seen there, or eagerly via Initialized. Each step
// replaces the snapshot wholesale; an Algorithm value is never mutated in
// place, ComputeParameters returns the advanced copy.
type Algorithm struct {
	name   string
	init   func(n int) State
	update func(s State, gradient []float64) (State, error)
	state  *State
}

// NewAlgorithm builds a stateful optimizer from its initialize and update
// operations. init receives the parameter count and returns the zeroed
// accumulator state; update receives a snapshot whose Params field holds the
// current parameters and must return the next snapshot with updated Params.
func NewAlgorithm(name string, init func(n int) State, update func(s State, gradient []float64) (State, error)) *Algorithm {
	return &Algorithm{name: name, init: init, update: update}
}

func (a *Algorithm) String() string { return a.name }

// Parameters implements Optimizer. Algorithms in this package never own
// their parameters; the driver supplies them on every step.
func (a *Algorithm) Parameters() []float64 { return nil }

// Initialized returns a copy of the algorithm with accumulator state
// materialized for n parameters, so the first step is no different from any
// other. Calling it is optional; an uninitialized algorithm initializes
// itself on the first ComputeParameters call instead.
func (a *Algorithm) Initialized(n int) *Algorithm {
	st := a.init(n)
	out := *a
	out.state = &st
	return &out
}

// ComputeParameters implements Optimizer.
func (a *Algorithm) ComputeParameters(gradient, params []float64) ([]float64, Optimizer, error) {
	if len(gradient) != len(params) {
		return nil, a, &ShapeError{Op: a.name + " gradient", Want: len(params), Got: len(gradient)}
	}

	var cur State
	if a.state != nil {
		cur = *a.state
		if cur.Params != nil && len(cur.Params) != len(params) {
			return nil, a, &ShapeError{Op: a.name + " params", Want: len(cur.Params), Got: len(params)}
		}
	} else {
		cur = a.init(len(params))
	}
	if err := cur.checkShape(a.name, len(params)); err != nil {
		return nil, a, err
	}

	cur.Params = params
	next, err := a.update(cur, gradient)
	if err != nil {
		return nil, a, err
	}
	if len(next.Params) != len(params) {
		return nil, a, &ShapeError{Op: a.name + " update", Want: len(params), Got: len(next.Params)}
	}

	out := *a
	out.state = &next
	return next.Params, &out, nil
}

// StateDict implements Optimizer. Before initialization it returns an empty
// map; afterwards it returns the accumulators and counters of the carried
// snapshot, excluding params.
func (a *Algorithm) StateDict() map[string]any {
	if a.state == nil {
		return map[string]any{}
	}
	return a.state.dict()
}
