package housing

// Quiz question IDs mapped to profile dimensions.
const (
	QuestionSleep  = 1
	QuestionSocial = 2
	QuestionNoise  = 3
)

type (
	// Post is a forum post from the housing corpus. Immutable once loaded.
	Post struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Score   int    `json:"score"`
		URL     string `json:"url"`
	}

	// Corpus is the static evidence base, keyed by category.
	Corpus struct {
		Housing []Post `json:"housing"`
	}

	// Profile holds a dorm's hand-authored categorical traits.
	// An empty field skips that dimension during compatibility scoring.
	Profile struct {
		Sleep  string `json:"sleep"`
		Social string `json:"social"`
		Noise  string `json:"noise"`
	}

	Dorm struct {
		ID          string  `json:"id"`
		Name        string  `json:"name"`
		Description string  `json:"description"`
		Profile     Profile `json:"profile"`
	}

	// Answers maps a quiz question ID to the student's answer.
	Answers map[int]string

	// PostRef is a corpus post projected down to what the UI links to.
	PostRef struct {
		Title string `json:"title"`
		URL   string `json:"url"`
	}

	Recommendation struct {
		ID          string    `json:"id"`
		Title       string    `json:"title"`
		Description string    `json:"description"`
		Score       int       `json:"score"`
		Pros        []string  `json:"pros"`
		Cons        []string  `json:"cons"`
		RedditPosts []PostRef `json:"reddit_posts"`
	}
)

// Dorms is the fixed catalog, in the order recommendations are returned.
var Dorms = []Dorm{
	{
		ID:          "unit1",
		Name:        "Unit 1",
		Description: "High-rise residence halls right off Telegraph, a short walk to campus and known for a lively floor culture.",
		Profile:     Profile{Sleep: "Night owl", Social: "Very social", Noise: "Can handle some noise"},
	},
	{
		ID:          "unit2",
		Name:        "Unit 2",
		Description: "Southside high-rises with large communal lounges and one of the busiest dining commons on campus.",
		Profile:     Profile{Sleep: "Night owl", Social: "Very social", Noise: "Can handle some noise"},
	},
	{
		ID:          "unit3",
		Name:        "Unit 3",
		Description: "The closest unit to campus, a mix of quieter floors and academic theme programs.",
		Profile:     Profile{Sleep: "Flexible", Social: "Somewhat social", Noise: "Prefer quiet"},
	},
	{
		ID:          "foothill",
		Name:        "Foothill",
		Description: "Wooded lodge-style halls up the hill by the engineering buildings, calmer and favored by early risers.",
		Profile:     Profile{Sleep: "Early bird", Social: "Somewhat social", Noise: "Prefer quiet"},
	},
	{
		ID:          "clark_kerr",
		Name:        "Clark Kerr",
		Description: "A former campus turned residence with big lawns, suite-style rooms and a strong community feel.",
		Profile:     Profile{Sleep: "Early bird", Social: "Very social", Noise: "Can handle some noise"},
	},
	{
		ID:          "blackwell",
		Name:        "Blackwell",
		Description: "The newest hall, single and double rooms with modern facilities and a quieter academic atmosphere.",
		Profile:     Profile{Sleep: "Flexible", Social: "Keep to myself", Noise: "Prefer quiet"},
	},
}

// ProfileFor returns the dorm's static profile, or a zero Profile for
// unknown names (which makes compatibility scoring degenerate to 0).
func ProfileFor(dormName string) Profile {
	for _, d := range Dorms {
		if d.Name == dormName {
			return d.Profile
		}
	}
	return Profile{}
}

// Lexical sentiment keywords; matched as lowercase substrings, not tokens.
var (
	positiveKeywords = []string{
		"great", "good", "love", "amazing", "awesome", "clean", "quiet",
		"social", "fun", "convenient", "spacious", "friendly", "nice",
		"best", "comfortable",
	}
	negativeKeywords = []string{
		"bad", "dirty", "loud", "noisy", "small", "cramped", "terrible",
		"awful", "worst", "annoying", "broken", "expensive", "gross",
		"old", "smelly",
	}

	// fallbacks when the corpus yields no keyword hits for a dorm
	defaultPros = []string{"Convenient location", "Active social scene", "Good value"}
	defaultCons = []string{"Can get noisy", "Limited space", "Older facilities"}
)
