package corpusdb

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/campushub/portal/core/housing"
)

// LoadError reports a missing, unreadable or malformed corpus file. It is
// fatal to any scoring call and is propagated to callers as-is.
type LoadError struct {
	Path string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("loading corpus %s: %v", e.Path, e.Err)
}

func (e *LoadError) Unwrap() error { return e.Err }

// Cause supports pkg/errors.Cause.
func (e *LoadError) Cause() error { return e.Err }

// fileRepository reads the corpus JSON document once and caches the parse for
// the process lifetime. The corpus is immutable after load, so concurrent
// readers need no locking beyond the one-time load.
type fileRepository struct {
	path string

	once   sync.Once
	corpus housing.Corpus
	err    error
}

var _ housing.Repository = (*fileRepository)(nil)

func NewFileRepository(path string) housing.Repository {
	return &fileRepository{path: path}
}

func (repo *fileRepository) HousingPosts() ([]housing.Post, error) {
	repo.once.Do(repo.load)
	if repo.err != nil {
		return nil, repo.err
	}
	return repo.corpus.Housing, nil
}

func (repo *fileRepository) load() {
	data, err := os.ReadFile(repo.path)
	if err != nil {
		repo.err = &LoadError{Path: repo.path, Err: err}
		return
	}
	if err := json.Unmarshal(data, &repo.corpus); err != nil {
		repo.err = &LoadError{Path: repo.path, Err: err}
	}
}
