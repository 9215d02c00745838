// Package optim implements gradient-based parameter optimizers.
//
// This package provides:
//   - Optimizer interface: the uniform contract every optimizer satisfies
//   - Rule: stateless pure update rules
//   - Algorithm: stateful algorithms with per-parameter accumulators
//   - SGD, ADADELTA, Adam: the concrete algorithms
//
// An optimizer comes in one of two representations. A Rule is a pure mapping
// from (params, gradient) to new params with no bookkeeping of its own. An
// Algorithm carries accumulator state (momentum, running variances, step
// counters) that is initialized once, sized to the parameter count, and then
// threaded by value from step to step. FromRule converts a Rule into the
// Algorithm representation so an external stepping loop can drive both kinds
// identically.
//
// Example usage:
//
//	optimizer := optim.NewAdam(optim.AdamConfig{StepSize: 0.001})
//
//	// Training loop
//	var opt optim.Optimizer = optimizer
//	for step := range steps {
//	    grad := computeGradient(params)
//	    params, opt, err = opt.ComputeParameters(grad, params)
//	    if err != nil {
//	        return err
//	    }
//	}
//
// Vector arithmetic is consumed from gonum; this package only implements the
// optimizer bookkeeping on top of it.
package optim

// Optimizer is the capability set shared by both optimizer representations.
//
// Each step the driver supplies the current gradient and parameter vectors
// and receives the updated parameters together with the optimizer value to
// use for the next step. Stateful algorithms return a copy carrying their
// next state snapshot; stateless rules return themselves. The previous
// optimizer value stays valid, so drivers rebind rather than mutate.
//
// A single optimizer value must not be advanced from two goroutines at once;
// sequencing is the caller's responsibility. Distinct optimizer values are
// fully independent.
type Optimizer interface {
	// Parameters returns the parameter vector the optimizer owns, if it
	// carries one outside of explicit ComputeParameters calls. Every
	// optimizer in this package returns nil: the driver supplies params
	// on each step. The hook exists for variants with embedded state.
	Parameters() []float64

	// ComputeParameters applies one optimization step.
	//
	// gradient and params must have equal length, and that length is fixed
	// for the optimizer's lifetime once state has been initialized. NaN and
	// Inf values propagate per IEEE semantics; they are never caught here.
	ComputeParameters(gradient, params []float64) ([]float64, Optimizer, error)

	// StateDict returns the introspectable state fields, keyed by name,
	// for logging and diagnostics. The parameter vector is excluded; it is
	// retrieved through ComputeParameters. Stateless rules return an empty
	// map. Returned vectors are copies, safe to hold across steps.
	StateDict() map[string]any
}
