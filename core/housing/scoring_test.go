package housing

import "testing"

func Test_lexicalSentiment(t *testing.T) {
	tests := []struct {
		name  string
		posts []Post
		want  int
	}{
		{name: "no posts is neutral", posts: nil, want: 50},
		{
			name:  "positive keywords raise the score",
			posts: []Post{{Title: "Unit 1 is clean and social", Content: "Really quiet at night though"}},
			want:  80, // clean, social, quiet
		},
		{
			name:  "negative keywords lower the score",
			posts: []Post{{Title: "avoid", Content: "loud and dirty"}},
			want:  30,
		},
		{
			name: "mixed posts average out",
			posts: []Post{
				{Title: "good", Content: "clean"},   // +2
				{Title: "bad", Content: "terrible"}, // -2
			},
			want: 50,
		},
		{
			name:  "clamped at 100",
			posts: []Post{{Title: "great good love", Content: "amazing awesome clean quiet"}},
			want:  100,
		},
		{
			name:  "clamped at 0",
			posts: []Post{{Title: "bad dirty loud", Content: "noisy cramped terrible awful"}},
			want:  0,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := lexicalSentiment(tt.posts); got != tt.want {
				t.Errorf("lexicalSentiment() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_compatibility(t *testing.T) {
	profile := Profile{Sleep: "Night owl", Social: "Very social", Noise: "Can handle some noise"}

	tests := []struct {
		name    string
		answers Answers
		profile Profile
		want    int
	}{
		{
			name:    "all dimensions match",
			answers: Answers{1: "Night owl", 2: "Very social", 3: "Can handle some noise"},
			profile: profile,
			want:    100,
		},
		{
			name:    "one of three matches",
			answers: Answers{1: "Night owl", 2: "Keep to myself", 3: "Prefer quiet"},
			profile: profile,
			want:    33,
		},
		{
			name:    "unanswered questions are skipped",
			answers: Answers{1: "Night owl"},
			profile: profile,
			want:    100,
		},
		{
			name:    "matching is case sensitive",
			answers: Answers{1: "night owl", 2: "Very social", 3: "Can handle some noise"},
			profile: profile,
			want:    67,
		},
		{
			name:    "empty profile degenerates to zero",
			answers: Answers{1: "Night owl", 2: "Very social", 3: "Can handle some noise"},
			profile: Profile{},
			want:    0,
		},
		{
			name:    "no answers degenerates to zero",
			answers: Answers{},
			profile: profile,
			want:    0,
		},
		{
			name:    "empty profile dimension is skipped",
			answers: Answers{1: "Flexible", 2: "Keep to myself"},
			profile: Profile{Social: "Keep to myself"},
			want:    100,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := compatibility(tt.answers, tt.profile); got != tt.want {
				t.Errorf("compatibility() = %d, want %d", got, tt.want)
			}
		})
	}
}

func Test_ProfileFor(t *testing.T) {
	if got := ProfileFor("Foothill"); got.Sleep != "Early bird" {
		t.Errorf("ProfileFor(Foothill).Sleep = %q, want %q", got.Sleep, "Early bird")
	}
	if got := ProfileFor("Nonexistent Hall"); got != (Profile{}) {
		t.Errorf("ProfileFor(unknown) = %+v, want zero Profile", got)
	}
}
