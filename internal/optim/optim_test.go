package optim

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRule_ImplementsCapabilitySet checks the stateless variant's contract.
func TestRule_ImplementsCapabilitySet(t *testing.T) {
	rule := NewSGD(SGDConfig{LR: 0.5})

	assert.Nil(t, rule.Parameters())
	assert.Empty(t, rule.StateDict())

	params, next, err := rule.ComputeParameters([]float64{1.0}, []float64{2.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{1.5}, params)
	require.NotNil(t, next)
}

// TestFromRule_MatchesDirectCalls verifies the adapter produces the same
// parameter sequence as calling the rule directly.
func TestFromRule_MatchesDirectCalls(t *testing.T) {
	rule := NewSGD(SGDConfig{LR: 0.2})
	var wrapped Optimizer = FromRule(rule)

	direct := []float64{1.0, -2.0, 3.0}
	adapted := []float64{1.0, -2.0, 3.0}
	gradients := [][]float64{
		{1.0, 1.0, 1.0},
		{0.5, -0.5, 0.0},
		{-2.0, 4.0, 1.5},
	}

	for _, grad := range gradients {
		direct = rule(direct, grad)

		var err error
		adapted, wrapped, err = wrapped.ComputeParameters(grad, adapted)
		require.NoError(t, err)

		assert.Equal(t, direct, adapted)
	}
}

// TestFromFunc_AcceptedShapes covers the values the adapter normalizes.
func TestFromFunc_AcceptedShapes(t *testing.T) {
	// A constructed optimizer passes through.
	adam := NewAdam(AdamConfig{})
	opt, err := FromFunc(adam)
	require.NoError(t, err)
	assert.Same(t, adam, opt)

	// A Rule is adapted into the stateful representation.
	opt, err = FromFunc(NewSGD(SGDConfig{}))
	require.NoError(t, err)
	assert.IsType(t, &Algorithm{}, opt)

	// So is a plain function of the same shape.
	opt, err = FromFunc(func(params, gradient []float64) []float64 {
		return params
	})
	require.NoError(t, err)

	params, _, err := opt.ComputeParameters([]float64{1.0}, []float64{3.0})
	require.NoError(t, err)
	assert.Equal(t, []float64{3.0}, params)
}

// TestFromFunc_RejectsConstructor checks that registering an un-invoked
// constructor is caught at wrap time.
func TestFromFunc_RejectsConstructor(t *testing.T) {
	_, err := FromFunc(NewAdam)
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "without being called")
}

// TestFromFunc_StructuredResultFailsFirstStep checks that a rule returning a
// state-shaped value signals a configuration error on the first step rather
// than producing silently wrong numbers.
func TestFromFunc_StructuredResultFailsFirstStep(t *testing.T) {
	opt, err := FromFunc(func(params, gradient []float64) any {
		return State{Params: params}
	})
	require.NoError(t, err)

	_, _, err = opt.ComputeParameters([]float64{1.0}, []float64{1.0})
	require.Error(t, err)

	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "instead of a parameter vector")
}

// TestComputeParameters_GradientShapeMismatch checks fail-fast rejection of
// mismatched gradient and parameter lengths, for both representations.
func TestComputeParameters_GradientShapeMismatch(t *testing.T) {
	optimizers := map[string]Optimizer{
		"rule":      NewSGD(SGDConfig{}),
		"algorithm": NewAdam(AdamConfig{}),
	}

	for name, opt := range optimizers {
		t.Run(name, func(t *testing.T) {
			_, _, err := opt.ComputeParameters([]float64{1.0, 2.0, 3.0}, []float64{1.0, 2.0})
			require.Error(t, err)

			var shapeErr *ShapeError
			require.ErrorAs(t, err, &shapeErr)
			assert.Equal(t, 2, shapeErr.Want)
			assert.Equal(t, 3, shapeErr.Got)
		})
	}
}

// TestComputeParameters_StateShapeMismatch checks that state sized for a
// different parameter count is rejected at the step.
func TestComputeParameters_StateShapeMismatch(t *testing.T) {
	opt := NewAdaDelta(AdaDeltaConfig{}).Initialized(2)

	_, _, err := opt.ComputeParameters([]float64{1.0, 1.0, 1.0}, []float64{1.0, 2.0, 3.0})
	require.Error(t, err)

	var shapeErr *ShapeError
	require.ErrorAs(t, err, &shapeErr)
	assert.Equal(t, 3, shapeErr.Want)
	assert.Equal(t, 2, shapeErr.Got)
}

// TestAlgorithm_ValueSemantics verifies that advancing an optimizer never
// mutates the value it was advanced from: stepping the same value twice
// yields identical results.
func TestAlgorithm_ValueSemantics(t *testing.T) {
	opt := NewAdam(AdamConfig{})
	params := []float64{1.0, -1.0}
	grad := []float64{0.3, 0.7}

	first, advanced, err := opt.ComputeParameters(grad, params)
	require.NoError(t, err)
	dictBefore := advanced.StateDict()

	second, _, err := opt.ComputeParameters(grad, params)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Advancing further does not disturb snapshots already handed out.
	_, _, err = advanced.ComputeParameters(grad, first)
	require.NoError(t, err)
	assert.Equal(t, dictBefore, advanced.StateDict())
}

// TestStateDict_ExcludesParams checks the introspection view never leaks the
// parameter vector.
func TestStateDict_ExcludesParams(t *testing.T) {
	opt := NewAdam(AdamConfig{})
	_, next, err := opt.ComputeParameters([]float64{1.0}, []float64{0.0})
	require.NoError(t, err)

	dict := next.StateDict()
	assert.NotContains(t, dict, "params")
	assert.Contains(t, dict, "first_moment")
	assert.Contains(t, dict, "second_moment")
	assert.Contains(t, dict, "num_steps")
}

// TestNaNPropagates checks numeric degeneracy is passed through untouched.
func TestNaNPropagates(t *testing.T) {
	rule := NewSGD(SGDConfig{LR: 0.1})
	nan := math.NaN()

	params, _, err := rule.ComputeParameters([]float64{nan}, []float64{1.0})
	require.NoError(t, err)
	assert.True(t, math.IsNaN(params[0]))
}
