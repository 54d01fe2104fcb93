package housing

import (
	"math"
	"strings"
)

// lexicalSentiment scores matched posts on a 0-100 scale by counting keyword
// hits: each positive keyword contained in a post's lowercased title+content
// counts +1, each negative keyword -1. The per-post scores are averaged and
// normalized around a neutral 50. No matched posts yields exactly 50.
func lexicalSentiment(posts []Post) int {
	if len(posts) == 0 {
		return 50
	}

	var total int
	for _, p := range posts {
		text := strings.ToLower(p.Title + " " + p.Content)
		for _, kw := range positiveKeywords {
			if strings.Contains(text, kw) {
				total++
			}
		}
		for _, kw := range negativeKeywords {
			if strings.Contains(text, kw) {
				total--
			}
		}
	}

	avg := float64(total) / float64(len(posts))
	return clamp(int(math.Round(50+avg*10)), 0, 100)
}

// compatibility scores quiz answers against a dorm profile on a 0-100 scale.
// A dimension only counts when the profile defines it AND the student answered
// its question; matching is exact (case-sensitive). No usable dimensions
// yields 0, not 50.
func compatibility(answers Answers, profile Profile) int {
	dimensions := []struct {
		question int
		value    string
	}{
		{QuestionSleep, profile.Sleep},
		{QuestionSocial, profile.Social},
		{QuestionNoise, profile.Noise},
	}

	var match, total int
	for _, dim := range dimensions {
		if dim.value == "" {
			continue
		}
		answer, ok := answers[dim.question]
		if !ok {
			continue
		}
		total++
		if answer == dim.value {
			match++
		}
	}

	if total == 0 {
		return 0
	}
	return int(math.Round(float64(match) / float64(total) * 100))
}

func clamp(n, min, max int) int {
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}
