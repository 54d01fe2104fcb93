package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/campushub/portal/core"
	"github.com/campushub/portal/core/housing"
)

// recommend scores every catalog dorm against the given quiz answers and
// prints them best-first. Empty answers are left out of the answers map, the
// same way an unanswered quiz question would be.
func (cli *commandLine) recommend(sleep, social, noise string) error {
	answers := make(housing.Answers, 3)
	if sleep = core.CleanString(sleep); sleep != "" {
		answers[housing.QuestionSleep] = sleep
	}
	if social = core.CleanString(social); social != "" {
		answers[housing.QuestionSocial] = social
	}
	if noise = core.CleanString(noise); noise != "" {
		answers[housing.QuestionNoise] = noise
	}

	recs, err := cli.housingSvc.Recommendations(answers)
	if err != nil {
		return err
	}

	sort.SliceStable(recs, func(i, j int) bool { return recs[i].Score > recs[j].Score })

	for i, rec := range recs {
		fmt.Printf("%d. %s (%d/100)\n", i+1, rec.Title, rec.Score)
		fmt.Printf("   pros: %s\n", strings.Join(rec.Pros, ", "))
		fmt.Printf("   cons: %s\n", strings.Join(rec.Cons, ", "))
		for _, ref := range rec.RedditPosts {
			fmt.Printf("   - %s (%s)\n", ref.Title, ref.URL)
		}
	}
	return nil
}
