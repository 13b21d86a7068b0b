// Package resolver matches noisy user input against known domain entities
// by embedding similarity.
package resolver

import "math"

// Candidate pairs a precomputed embedding with the entity it represents.
type Candidate[T any] struct {
	Embedding []float64
	Payload   T
}

// Resolve returns the candidate whose embedding is most similar to input.
//
// A candidate replaces the current best only if its score is strictly
// greater, so ties keep the earliest candidate and the result is fully
// determined by the candidate order. The initial best score is 0.0: a
// candidate with a non-positive score is never selected, and with no
// positive-scoring candidate the result is (nil, 0.0).
func Resolve[T any](input []float64, candidates []Candidate[T]) (*T, float64) {
	var best *T
	bestScore := 0.0

	for i := range candidates {
		score := Cosine(input, candidates[i].Embedding)
		if score > bestScore {
			best = &candidates[i].Payload
			bestScore = score
		}
	}

	return best, bestScore
}

// Cosine returns the cosine similarity of two embeddings in [-1, 1].
// Vectors of different lengths and zero vectors score 0.
func Cosine(a, b []float64) float64 {
	if len(a) == 0 || len(a) != len(b) {
		return 0
	}

	var dot, normA, normB float64
	for i := range a {
		dot += a[i] * b[i]
		normA += a[i] * a[i]
		normB += b[i] * b[i]
	}

	if normA == 0 || normB == 0 {
		return 0
	}

	return dot / (math.Sqrt(normA) * math.Sqrt(normB))
}
