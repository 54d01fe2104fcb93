package housing

import (
	"math"

	"github.com/pkg/errors"

	"github.com/campushub/portal/core"
)

const defaultLimit = 3

type (
	// Repository is any store that can provide the housing corpus.
	// Implementations cache the corpus: it is read-only for the process
	// lifetime and load failures are permanent, never retried.
	Repository interface {
		HousingPosts() ([]Post, error)
	}

	// PolarityScorer scores a text segment's sentiment as a compound value
	// in [-1, 1]. Implemented by an external library; injected so extraction
	// is unit-testable with a deterministic stub.
	PolarityScorer interface {
		Compound(text string) float64
	}

	ServiceInterface interface {
		Recommendations(answers Answers) ([]Recommendation, error)
		DormScore(dormName string, answers Answers) (int, error)
		Pros(dormName string, limit int) ([]string, error)
		Cons(dormName string, limit int) ([]string, error)
		DormPosts(dormName string, limit int) ([]PostRef, error)
	}

	Service struct {
		repo     Repository
		polarity PolarityScorer

		maxPros  int
		maxCons  int
		maxPosts int
	}
)

var _ ServiceInterface = (*Service)(nil)

func NewService(repo Repository, polarity PolarityScorer, conf *core.Config) *Service {
	svc := &Service{
		repo:     repo,
		polarity: polarity,
		maxPros:  defaultLimit,
		maxCons:  defaultLimit,
		maxPosts: defaultLimit,
	}
	if conf != nil {
		if conf.Housing.MaxPros > 0 {
			svc.maxPros = conf.Housing.MaxPros
		}
		if conf.Housing.MaxCons > 0 {
			svc.maxCons = conf.Housing.MaxCons
		}
		if conf.Housing.MaxPosts > 0 {
			svc.maxPosts = conf.Housing.MaxPosts
		}
	}
	return svc
}

// Recommendations assembles one Recommendation per catalog dorm, in fixed
// catalog order (not sorted by score; ranking is the caller's concern).
func (svc *Service) Recommendations(answers Answers) ([]Recommendation, error) {
	posts, err := svc.repo.HousingPosts()
	if err != nil {
		return nil, errors.Wrap(err, "loading housing corpus")
	}

	recs := make([]Recommendation, 0, len(Dorms))
	for _, dorm := range Dorms {
		recs = append(recs, Recommendation{
			ID:          dorm.ID,
			Title:       dorm.Name,
			Description: dorm.Description,
			Score:       svc.dormScore(dorm.Name, answers, posts),
			Pros:        svc.analyzeKeywords(dorm.Name, positiveKeywords, true, svc.maxPros, posts),
			Cons:        svc.analyzeKeywords(dorm.Name, negativeKeywords, false, svc.maxCons, posts),
			RedditPosts: dormPosts(dorm.Name, svc.maxPosts, posts),
		})
	}
	return recs, nil
}

// DormScore combines lexical sentiment over matched posts with quiz
// compatibility against the dorm's static profile, equally weighted.
func (svc *Service) DormScore(dormName string, answers Answers) (int, error) {
	posts, err := svc.repo.HousingPosts()
	if err != nil {
		return 0, errors.Wrap(err, "loading housing corpus")
	}
	return svc.dormScore(dormName, answers, posts), nil
}

func (svc *Service) dormScore(dormName string, answers Answers, posts []Post) int {
	sentiment := lexicalSentiment(matchPosts(dormName, posts))
	compat := compatibility(answers, ProfileFor(dormName))
	return int(math.Round(float64(sentiment+compat) / 2))
}

func (svc *Service) Pros(dormName string, limit int) ([]string, error) {
	posts, err := svc.repo.HousingPosts()
	if err != nil {
		return nil, errors.Wrap(err, "loading housing corpus")
	}
	return svc.analyzeKeywords(dormName, positiveKeywords, true, limit, posts), nil
}

func (svc *Service) Cons(dormName string, limit int) ([]string, error) {
	posts, err := svc.repo.HousingPosts()
	if err != nil {
		return nil, errors.Wrap(err, "loading housing corpus")
	}
	return svc.analyzeKeywords(dormName, negativeKeywords, false, limit, posts), nil
}

// DormPosts returns the first limit posts mentioning the dorm, in corpus
// order, projected to what the UI links to.
func (svc *Service) DormPosts(dormName string, limit int) ([]PostRef, error) {
	posts, err := svc.repo.HousingPosts()
	if err != nil {
		return nil, errors.Wrap(err, "loading housing corpus")
	}
	return dormPosts(dormName, limit, posts), nil
}

func dormPosts(dormName string, limit int, posts []Post) []PostRef {
	matched := matchPosts(dormName, posts)
	if len(matched) > limit {
		matched = matched[:limit]
	}
	refs := make([]PostRef, 0, len(matched))
	for _, p := range matched {
		refs = append(refs, PostRef{Title: p.Title, URL: p.URL})
	}
	return refs
}
