package housing

import (
	"reflect"
	"testing"

	"github.com/pkg/errors"
)

type failingRepo struct {
	err error
}

func (r failingRepo) HousingPosts() ([]Post, error) { return nil, r.err }

func Test_Service_Recommendations(t *testing.T) {
	svc := NewServiceMock(fixtureRepo{posts: []Post{
		{Title: "Unit 1 is great and social", Content: "loved my year there", URL: "http://a"},
		{Title: "Foothill is quiet", Content: "comfortable rooms", URL: "http://b"},
	}})
	answers := Answers{1: "Night owl", 2: "Very social", 3: "Can handle some noise"}

	recs, err := svc.Recommendations(answers)
	if err != nil {
		t.Fatalf("Recommendations() failed: %v", err)
	}

	if len(recs) != len(Dorms) {
		t.Fatalf("Recommendations() returned %d entries, want %d", len(recs), len(Dorms))
	}
	// fixed catalog order, not sorted by score
	for i, dorm := range Dorms {
		if recs[i].ID != dorm.ID {
			t.Errorf("Recommendations()[%d].ID = %s, want %s", i, recs[i].ID, dorm.ID)
		}
		if recs[i].Title != dorm.Name {
			t.Errorf("Recommendations()[%d].Title = %s, want %s", i, recs[i].Title, dorm.Name)
		}
		if recs[i].Score < 0 || recs[i].Score > 100 {
			t.Errorf("Recommendations()[%d].Score = %d, out of [0, 100]", i, recs[i].Score)
		}
		if len(recs[i].Pros) == 0 || len(recs[i].Cons) == 0 {
			t.Errorf("Recommendations()[%d] missing pros/cons (defaults expected at minimum)", i)
		}
	}

	// pure over a stable corpus
	again, err := svc.Recommendations(answers)
	if err != nil {
		t.Fatalf("Recommendations() failed: %v", err)
	}
	if !reflect.DeepEqual(recs, again) {
		t.Error("Recommendations() is not idempotent for identical inputs")
	}
}

func Test_Service_DormScore(t *testing.T) {
	unit1Posts := []Post{{
		Title:   "Unit 1 is clean and social",
		Content: "Really quiet at night though",
		Score:   10,
		URL:     "http://x",
	}}

	tests := []struct {
		name     string
		posts    []Post
		dormName string
		answers  Answers
		want     int
	}{
		{
			// sentiment 80 (clean, social, quiet), compatibility 100
			name:     "positive posts and full profile match",
			posts:    unit1Posts,
			dormName: "Unit 1",
			answers:  Answers{1: "Night owl", 2: "Very social", 3: "Can handle some noise"},
			want:     90,
		},
		{
			// no matched posts: neutral 50; unknown dorm: compatibility 0
			name:     "unknown dorm",
			posts:    unit1Posts,
			dormName: "Nonexistent Hall",
			answers:  Answers{1: "Night owl"},
			want:     25,
		},
		{
			name:     "no posts and no answers",
			posts:    nil,
			dormName: "Unit 2",
			answers:  Answers{},
			want:     25,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewServiceMock(fixtureRepo{posts: tt.posts})
			got, err := svc.DormScore(tt.dormName, tt.answers)
			if err != nil {
				t.Fatalf("DormScore() failed: %v", err)
			}
			if got != tt.want {
				t.Errorf("DormScore() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_Service_DormPosts(t *testing.T) {
	svc := NewServiceMock(fixtureRepo{posts: []Post{
		{Title: "Unit 3 first", Content: "a", URL: "http://1"},
		{Title: "other dorm", Content: "b", URL: "http://2"},
		{Title: "Unit 3 second", Content: "c", URL: "http://3"},
		{Title: "Unit 3 third", Content: "d", URL: "http://4"},
		{Title: "Unit 3 fourth", Content: "e", URL: "http://5"},
	}})

	refs, err := svc.DormPosts("Unit 3", 3)
	if err != nil {
		t.Fatalf("DormPosts() failed: %v", err)
	}
	want := []PostRef{
		{Title: "Unit 3 first", URL: "http://1"},
		{Title: "Unit 3 second", URL: "http://3"},
		{Title: "Unit 3 third", URL: "http://4"},
	}
	if !reflect.DeepEqual(refs, want) {
		t.Errorf("DormPosts() = %v, want %v", refs, want)
	}
}

func Test_Service_corpusErrorPropagates(t *testing.T) {
	loadErr := errors.New("corpus gone")
	svc := NewServiceMock(failingRepo{err: loadErr})

	if _, err := svc.Recommendations(Answers{}); errors.Cause(err) != loadErr {
		t.Errorf("Recommendations() error = %v, want cause %v", err, loadErr)
	}
	if _, err := svc.DormScore("Unit 1", Answers{}); errors.Cause(err) != loadErr {
		t.Errorf("DormScore() error = %v, want cause %v", err, loadErr)
	}
	if _, err := svc.Pros("Unit 1", 3); errors.Cause(err) != loadErr {
		t.Errorf("Pros() error = %v, want cause %v", err, loadErr)
	}
	if _, err := svc.DormPosts("Unit 1", 3); errors.Cause(err) != loadErr {
		t.Errorf("DormPosts() error = %v, want cause %v", err, loadErr)
	}
}
