package engine

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstructions_ClassifiesRemainders(t *testing.T) {
	opt := New()

	// 0.4 m remainder is above the useful threshold, 0.2 m is below it.
	keepable, err := opt.Optimize([]float64{3.0}, []float64{2.6})
	require.NoError(t, err)
	text := opt.Instructions(keepable)
	assert.Contains(t, text, "keepable offcut")
	assert.NotContains(t, text, "scrap")

	scrap, err := opt.Optimize([]float64{3.0}, []float64{2.8})
	require.NoError(t, err)
	text = opt.Instructions(scrap)
	assert.Contains(t, text, "scrap")
	assert.NotContains(t, text, "keepable offcut")
}

func TestInstructions_SummaryAndUncut(t *testing.T) {
	opt := New()
	res, err := opt.Optimize([]float64{4.5, 6.0}, []float64{2.5, 1.8, 9.0})
	require.NoError(t, err)

	text := opt.Instructions(res)
	assert.Contains(t, text, "Cutting plan:")
	assert.Contains(t, text, "Board 1 (4.50 m): cut 2.50, 1.80")
	assert.Contains(t, text, "Boards used: 1, remaining in stock: 1")
	assert.Contains(t, text, "Could not cut: 9.00 m")
	assert.NotContains(t, text, "All requirements placed.")
}

func TestInstructions_EmptyPlan(t *testing.T) {
	opt := New()
	res, err := opt.Optimize(nil, nil)
	require.NoError(t, err)

	text := opt.Instructions(res)
	assert.True(t, strings.HasPrefix(text, "No boards used."))
	assert.Contains(t, text, "All requirements placed.")
}

func TestInstructions_PerfectFitHasNoRemainderNote(t *testing.T) {
	opt := New()
	res, err := opt.Optimize([]float64{2.0}, []float64{2.0})
	require.NoError(t, err)

	text := opt.Instructions(res)
	assert.Contains(t, text, "Board 1 (2.00 m): cut 2.00\n")
	assert.NotContains(t, text, "remainder")
}
