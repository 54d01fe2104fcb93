package testutil

import "github.com/campushub/portal/core/housing"

// Corpus returns a small fixture corpus covering every catalog dorm, with a
// comparative post exercising contrastive disambiguation.
func Corpus() housing.Corpus {
	return housing.Corpus{
		Housing: []housing.Post{
			{
				Title:   "Unit 1 review after two semesters",
				Content: "Unit 1 is great and really social. The rooms are clean. The elevators are broken half the time",
				Score:   152,
				URL:     "https://reddit.com/r/berkeley/unit1_review",
			},
			{
				Title:   "Unit 1 is great but Unit 2 is noisy",
				Content: "If you get a choice take Unit 1. Unit 2 was loud every single night",
				Score:   98,
				URL:     "https://reddit.com/r/berkeley/unit1_vs_unit2",
			},
			{
				Title:   "Unit 3 honest thoughts",
				Content: "Unit 3 is convenient and close to campus. The bathrooms were dirty on my floor",
				Score:   64,
				URL:     "https://reddit.com/r/berkeley/unit3_thoughts",
			},
			{
				Title:   "Foothill appreciation post",
				Content: "Foothill is quiet and comfortable. Foothill has the best views. The walk uphill is annoying",
				Score:   211,
				URL:     "https://reddit.com/r/berkeley/foothill_appreciation",
			},
			{
				Title:   "Clark Kerr is the best dorm",
				Content: "Clark Kerr feels like a resort. Clark Kerr is spacious and the food is amazing",
				Score:   340,
				URL:     "https://reddit.com/r/berkeley/clark_kerr_best",
			},
			{
				Title:   "Blackwell after one year",
				Content: "Blackwell is clean and modern. Blackwell is expensive though",
				Score:   77,
				URL:     "https://reddit.com/r/berkeley/blackwell_year",
			},
		},
	}
}

// Answers builds a quiz answers map from the three profile-dimension answers;
// empty answers are left out, like an unanswered question.
func Answers(sleep, social, noise string) housing.Answers {
	answers := make(housing.Answers, 3)
	if sleep != "" {
		answers[housing.QuestionSleep] = sleep
	}
	if social != "" {
		answers[housing.QuestionSocial] = social
	}
	if noise != "" {
		answers[housing.QuestionNoise] = noise
	}
	return answers
}
