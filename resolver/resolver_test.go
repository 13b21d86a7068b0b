package resolver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve_PicksHighestScore(t *testing.T) {
	input := []float64{1, 0}
	candidates := []Candidate[string]{
		{Embedding: []float64{0, 1}, Payload: "orthogonal"},
		{Embedding: []float64{1, 0}, Payload: "exact"},
		{Embedding: []float64{0.5, 0.5}, Payload: "diagonal"},
	}

	best, score := Resolve(input, candidates)

	require.NotNil(t, best)
	assert.Equal(t, "exact", *best)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestResolve_TieKeepsEarlierCandidate(t *testing.T) {
	input := []float64{1, 0}
	candidates := []Candidate[string]{
		{Embedding: []float64{1, 0}, Payload: "first"},
		{Embedding: []float64{2, 0}, Payload: "second"}, // same direction, same score
	}

	best, score := Resolve(input, candidates)

	require.NotNil(t, best)
	assert.Equal(t, "first", *best)
	assert.InDelta(t, 1.0, score, 1e-9)
}

func TestResolve_EmptyCandidates(t *testing.T) {
	best, score := Resolve[string]([]float64{1, 0}, nil)

	assert.Nil(t, best)
	assert.Equal(t, 0.0, score)
}

func TestResolve_NonPositiveScoresNeverSelected(t *testing.T) {
	input := []float64{1, 0}
	candidates := []Candidate[string]{
		{Embedding: []float64{-1, 0}, Payload: "opposite"},
		{Embedding: []float64{0, 1}, Payload: "orthogonal"},
	}

	best, score := Resolve(input, candidates)

	assert.Nil(t, best)
	assert.Equal(t, 0.0, score)
}

func TestResolve_Deterministic(t *testing.T) {
	input := []float64{0.3, 0.7, 0.1}
	candidates := []Candidate[string]{
		{Embedding: []float64{0.2, 0.8, 0.1}, Payload: "a"},
		{Embedding: []float64{0.3, 0.7, 0.1}, Payload: "b"},
		{Embedding: []float64{0.9, 0.1, 0.3}, Payload: "c"},
	}

	firstBest, firstScore := Resolve(input, candidates)
	require.NotNil(t, firstBest)

	for i := 0; i < 100; i++ {
		best, score := Resolve(input, candidates)
		require.NotNil(t, best)
		assert.Equal(t, *firstBest, *best)
		assert.Equal(t, firstScore, score)
	}
}

func TestCosine(t *testing.T) {
	tests := []struct {
		name string
		a    []float64
		b    []float64
		want float64
	}{
		{name: "identical", a: []float64{1, 2, 3}, b: []float64{1, 2, 3}, want: 1},
		{name: "opposite", a: []float64{1, 0}, b: []float64{-1, 0}, want: -1},
		{name: "orthogonal", a: []float64{1, 0}, b: []float64{0, 1}, want: 0},
		{name: "scaled", a: []float64{1, 1}, b: []float64{3, 3}, want: 1},
		{name: "length mismatch", a: []float64{1, 0}, b: []float64{1, 0, 0}, want: 0},
		{name: "zero vector", a: []float64{0, 0}, b: []float64{1, 0}, want: 0},
		{name: "empty", a: nil, b: nil, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, Cosine(tt.a, tt.b), 1e-9)
		})
	}
}
