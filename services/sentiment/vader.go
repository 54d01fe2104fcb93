package sentimentsvc

import (
	"github.com/jonreiter/govader"

	"github.com/campushub/portal/core/housing"
)

// vaderScorer scores text polarity with VADER (Valence Aware Dictionary and
// sEntiment Reasoner). The analyzer is read-only after construction and safe
// for concurrent use.
type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

var _ housing.PolarityScorer = (*vaderScorer)(nil)

func NewVaderScorer() housing.PolarityScorer {
	return &vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Compound returns VADER's compound score in [-1, 1]; negative is negative
// sentiment, 0 neutral, positive is positive sentiment.
func (svc *vaderScorer) Compound(text string) float64 {
	return svc.analyzer.PolarityScores(text).Compound
}
