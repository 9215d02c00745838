package optim

import "fmt"

// Rule is the stateless optimizer representation: a pure mapping from the
// current parameters and a gradient to new parameters, with no accumulators.
// A Rule satisfies Optimizer directly and FromRule converts it into the
// Algorithm representation when a driver wants the two kinds unified.
type Rule func(params, gradient []float64) []float64

// Parameters implements Optimizer; a rule carries no parameters of its own.
func (r Rule) Parameters() []float64 { return nil }

// ComputeParameters implements Optimizer by applying the rule. The returned
// optimizer is the rule itself; there is no state to advance.
func (r Rule) ComputeParameters(gradient, params []float64) ([]float64, Optimizer, error) {
	if len(gradient) != len(params) {
		return nil, r, &ShapeError{Op: "rule gradient", Want: len(params), Got: len(gradient)}
	}
	return r(params, gradient), r, nil
}

// StateDict implements Optimizer; a rule has nothing to introspect.
func (r Rule) StateDict() map[string]any { return map[string]any{} }

// FromRule converts a stateless rule into the stateful Algorithm
// representation. The algorithm's initialize is a no-op returning an empty
// snapshot; its update applies the rule to the snapshot's params and writes
// the result back.
func FromRule(r Rule) *Algorithm {
	return NewAlgorithm("rule",
		func(int) State { return State{} },
		func(s State, gradient []float64) (State, error) {
			s.Params = r(s.Params, gradient)
			return s, nil
		})
}

// FromFunc adapts an arbitrarily supplied optimizer value into an Optimizer.
// It accepts a constructed Optimizer, a Rule (or a plain function of the
// same shape), or a dynamically typed rule func(params, gradient []float64)
// any whose result is validated on every step: anything other than a flat
// []float64, a state-shaped value in particular, yields a ConfigError.
//
// Any other value is rejected immediately with a ConfigError. The usual way
// to hit this is registering an optimizer constructor, NewAdam for example,
// without calling it.
func FromFunc(v any) (Optimizer, error) {
	switch fn := v.(type) {
	case Rule:
		// Before Optimizer: a Rule satisfies Optimizer too, but callers of
		// FromFunc want the normalized stateful representation.
		return FromRule(fn), nil
	case Optimizer:
		return fn, nil
	case func(params, gradient []float64) []float64:
		return FromRule(fn), nil
	case func(params, gradient []float64) any:
		return fromDynamicRule(fn), nil
	default:
		return nil, &ConfigError{Detail: fmt.Sprintf(
			"%T is neither an optimizer nor an update rule; an optimizer constructor was likely registered without being called", v)}
	}
}

// fromDynamicRule wraps a loosely typed rule, checking on every step that it
// produced a flat parameter vector rather than a structured value.
func fromDynamicRule(fn func(params, gradient []float64) any) *Algorithm {
	return NewAlgorithm("rule",
		func(int) State { return State{} },
		func(s State, gradient []float64) (State, error) {
			out := fn(s.Params, gradient)
			next, ok := out.([]float64)
			if !ok {
				return State{}, &ConfigError{Detail: fmt.Sprintf(
					"update rule returned %T instead of a parameter vector; an optimizer constructor was likely registered without being called", out)}
			}
			s.Params = next
			return s, nil
		})
}
