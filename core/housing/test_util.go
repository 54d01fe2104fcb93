package housing

import "strings"

// stubScorer is a deterministic PolarityScorer for tests: the compound score
// is the positive-minus-negative keyword hit count squashed into [-1, 1].
type stubScorer struct{}

var _ PolarityScorer = (*stubScorer)(nil)

func (stubScorer) Compound(text string) float64 {
	lower := strings.ToLower(text)
	var score float64
	for _, kw := range positiveKeywords {
		if strings.Contains(lower, kw) {
			score += 0.25
		}
	}
	for _, kw := range negativeKeywords {
		if strings.Contains(lower, kw) {
			score -= 0.25
		}
	}
	if score > 1 {
		return 1
	}
	if score < -1 {
		return -1
	}
	return score
}

// NewServiceMock returns a Service backed by a deterministic polarity stub.
func NewServiceMock(repo Repository) *Service {
	return NewService(repo, stubScorer{}, nil)
}

// NewStubScorer exposes the deterministic stub for callers wiring their own
// Service in tests.
func NewStubScorer() PolarityScorer {
	return stubScorer{}
}
