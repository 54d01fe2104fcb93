package main

import (
	"fmt"

	"github.com/campushub/portal/core/housing"
)

// checkCorpus loads the corpus and reports per-dorm coverage; a missing or
// malformed corpus file surfaces here instead of on the first quiz submission.
func (cli *commandLine) checkCorpus() error {
	posts, err := cli.corpusRepo.HousingPosts()
	if err != nil {
		return err
	}

	fmt.Printf("housing corpus OK: %d posts\n", len(posts))
	for _, dorm := range housing.Dorms {
		refs, err := cli.housingSvc.DormPosts(dorm.Name, len(posts))
		if err != nil {
			return err
		}
		fmt.Printf("  %-12s %d posts\n", dorm.Name, len(refs))
	}
	return nil
}
