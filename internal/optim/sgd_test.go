package optim

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSGD_SingleStep checks the closed-form update.
func TestSGD_SingleStep(t *testing.T) {
	rule := NewSGD(SGDConfig{LR: 0.1})

	params, _, err := rule.ComputeParameters([]float64{1.0, 1.0}, []float64{1.0, 2.0})
	require.NoError(t, err)
	assert.InDeltaSlice(t, []float64{0.9, 1.9}, params, 1e-12)
}

// TestSGD_DefaultLR checks the zero-value config falls back to lr = 0.1.
func TestSGD_DefaultLR(t *testing.T) {
	rule := NewSGD(SGDConfig{})

	params, _, err := rule.ComputeParameters([]float64{1.0}, []float64{0.0})
	require.NoError(t, err)
	assert.InDelta(t, -0.1, params[0], 1e-12)
}

// TestSGD_ManySteps checks the rule against an element-wise reference over a
// gradient sequence.
func TestSGD_ManySteps(t *testing.T) {
	lr := 0.05
	rule := NewSGD(SGDConfig{LR: lr})

	params := []float64{2.0, -3.0, 0.5}
	expected := append([]float64(nil), params...)
	gradients := [][]float64{
		{1.0, 0.0, -1.0},
		{0.25, 0.25, 0.25},
		{-4.0, 2.0, 8.0},
	}

	for _, grad := range gradients {
		var err error
		params, _, err = rule.ComputeParameters(grad, params)
		require.NoError(t, err)

		for i := range expected {
			expected[i] -= lr * grad[i]
		}
		assert.InDeltaSlice(t, expected, params, 1e-12)
	}
}
