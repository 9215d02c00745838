// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"github.com/born-ml/descent/internal/optim"
)

// Optimizer is the capability set shared by every optimizer variant.
type Optimizer = optim.Optimizer

// Rule is the stateless optimizer representation.
type Rule = optim.Rule

// Algorithm is the stateful optimizer representation.
type Algorithm = optim.Algorithm

// State is one snapshot of a stateful optimizer's bookkeeping.
type State = optim.State

// ConfigError reports an optimizer that was wired up incorrectly.
type ConfigError = optim.ConfigError

// ShapeError reports mismatched vector lengths.
type ShapeError = optim.ShapeError

// NewAlgorithm builds a stateful optimizer from its initialize and update
// operations.
func NewAlgorithm(name string, init func(n int) State, update func(s State, gradient []float64) (State, error)) *Algorithm {
	return optim.NewAlgorithm(name, init, update)
}

// FromRule converts a stateless rule into the stateful Algorithm
// representation.
func FromRule(r Rule) *Algorithm {
	return optim.FromRule(r)
}

// FromFunc adapts an arbitrarily supplied optimizer value into an Optimizer,
// rejecting values that are not optimizers or update rules, un-invoked
// optimizer constructors in particular.
func FromFunc(v any) (Optimizer, error) {
	return optim.FromFunc(v)
}

// Accumulate computes the exponential running average
// decay*avg + (1-decay)*value, element-wise.
func Accumulate(decay float64, avg, value []float64) []float64 {
	return optim.Accumulate(decay, avg, value)
}

// SGD (plain gradient descent)

// SGDConfig contains configuration for the SGD rule.
type SGDConfig = optim.SGDConfig

// NewSGD returns plain gradient descent as a stateless update rule.
//
// Example:
//
//	rule := optim.NewSGD(optim.SGDConfig{LR: 0.1})
//	params, _, err := rule.ComputeParameters(gradient, params)
func NewSGD(config SGDConfig) Rule {
	return optim.NewSGD(config)
}

// ADADELTA

// AdaDeltaConfig contains configuration for the ADADELTA optimizer.
type AdaDeltaConfig = optim.AdaDeltaConfig

// NewAdaDelta creates the ADADELTA optimizer.
//
// Example:
//
//	var opt optim.Optimizer = optim.NewAdaDelta(optim.AdaDeltaConfig{
//	    DecayRate:    0.95,
//	    Conditioning: 1e-6,
//	})
//	params, opt, err := opt.ComputeParameters(gradient, params)
func NewAdaDelta(config AdaDeltaConfig) *Algorithm {
	return optim.NewAdaDelta(config)
}

// Adam (Adaptive Moment Estimation)

// AdamConfig contains configuration for the Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates the Adam optimizer with bias correction.
//
// Example:
//
//	var opt optim.Optimizer = optim.NewAdam(optim.AdamConfig{
//	    StepSize:          0.001,
//	    FirstMomentDecay:  0.9,
//	    SecondMomentDecay: 0.999,
//	    Conditioning:      1e-8,
//	})
//	params, opt, err := opt.ComputeParameters(gradient, params)
func NewAdam(config AdamConfig) *Algorithm {
	return optim.NewAdam(config)
}
