package gateway

import (
	"context"
	"strings"
	"sync"
	"unicode"
)

// NormalizerMock is a deterministic in-process stand-in for the linguistic
// service. Canned lemmas and vectors can be set per input; anything else
// falls back to whitespace tokenization and a character-frequency vector, so
// identical strings always embed identically.
type NormalizerMock struct {
	mock sync.Mutex

	Lemmas  map[string][]string
	Vectors map[string][]float64

	TokenizedTexts []string
	EmbeddedTexts  []string
}

func (m *NormalizerMock) Tokenize(ctx context.Context, text string) ([]string, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.TokenizedTexts = append(m.TokenizedTexts, text)

	if lemmas, ok := m.Lemmas[text]; ok {
		return lemmas, nil
	}
	return strings.Fields(strings.ToLower(text)), nil
}

func (m *NormalizerMock) Embed(ctx context.Context, text string) ([]float64, error) {
	m.mock.Lock()
	defer m.mock.Unlock()

	m.EmbeddedTexts = append(m.EmbeddedTexts, text)

	if vector, ok := m.Vectors[text]; ok {
		return vector, nil
	}

	vector := make([]float64, 32)
	for _, r := range strings.ToLower(text) {
		if unicode.IsSpace(r) {
			continue
		}
		vector[int(r)%len(vector)]++
	}
	return vector, nil
}
