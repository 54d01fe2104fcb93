package corpusdb

import "github.com/campushub/portal/core/housing"

// inMemRepository serves a fixed corpus from memory; used in tests and by the
// admin CLI when scoring against fixture data.
type inMemRepository struct {
	corpus housing.Corpus
}

var _ housing.Repository = (*inMemRepository)(nil)

func NewInMemRepository(corpus housing.Corpus) housing.Repository {
	return &inMemRepository{corpus: corpus}
}

func (repo *inMemRepository) HousingPosts() ([]housing.Post, error) {
	return repo.corpus.Housing, nil
}
