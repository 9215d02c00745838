// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based parameter optimizers behind a
// uniform stepping contract.
//
// # Overview
//
// This package contains:
//   - SGD: plain gradient descent, expressed as a stateless update rule
//   - ADADELTA: adaptive steps from running RMS accumulators
//   - Adam: adaptive moment estimation with bias correction
//   - Optimizer interface plus an adapter unifying stateless rules and
//     stateful algorithms
//
// # Basic Usage
//
//	import "github.com/born-ml/descent/optim"
//
//	func main() {
//	    opt := optim.Optimizer(optim.NewAdam(optim.AdamConfig{}))
//	    params := []float64{0.0, 0.0}
//
//	    for step := 0; step < 1000; step++ {
//	        grad := objectiveGradient(params)
//
//	        var err error
//	        params, opt, err = opt.ComputeParameters(grad, params)
//	        if err != nil {
//	            log.Fatal(err)
//	        }
//	    }
//	}
//
// # Stepping Contract
//
// Every optimizer implements the same three operations: Parameters (the
// embedded-parameter hook, nil for all variants here), ComputeParameters
// (one gradient-driven step, returning the updated parameter vector and the
// optimizer value to use next step), and StateDict (the introspectable
// accumulators and counters, excluding the parameter vector).
//
// Stateful algorithms thread their accumulator state by value: each step
// returns a fresh optimizer carrying a fresh snapshot, and earlier values
// remain valid and inspectable. A single optimizer value must be advanced by
// one goroutine at a time; distinct values are independent.
//
// # Custom Rules
//
// Any pure update rule can be dropped into the same contract:
//
//	halver := optim.Rule(func(params, gradient []float64) []float64 {
//	    out := make([]float64, len(params))
//	    for i := range out {
//	        out[i] = params[i] - 0.5*gradient[i]
//	    }
//	    return out
//	})
//	opt := optim.FromRule(halver)
//
// FromFunc performs the same adaptation for loosely typed values and rejects
// anything that is not an optimizer or a rule, catching the common mistake
// of registering an optimizer constructor without calling it.
package optim
