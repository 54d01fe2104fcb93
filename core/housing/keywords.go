package housing

import (
	"regexp"
	"strings"
	"unicode"
)

var (
	sentenceDelimRE = regexp.MustCompile(`[.!?]+`)

	// contrastive connectors splitting comparative sentences, so sentiment
	// about "Unit 2" in "Unit 1 is great but Unit 2 is noisy" is not
	// attributed to Unit 1
	contrastRE = regexp.MustCompile(`(?i)\b(?:but|however|although|though|whereas|while|than)\b`)
)

// splitSentences splits text on sentence delimiters, trimming whitespace and
// discarding empties.
func splitSentences(text string) []string {
	raw := sentenceDelimRE.Split(text, -1)
	sentences := make([]string, 0, len(raw))
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			sentences = append(sentences, s)
		}
	}
	return sentences
}

// analyzeKeywords extracts up to limit keywords from sentences about dormName
// whose polarity (per the injected scorer) agrees with the wanted sign.
// Results are capitalized, de-duplicated and ordered by first occurrence:
// posts in corpus order, sentences in post order, keyword-list order within a
// sentence. If the whole corpus yields no hits, the default list is returned
// truncated to limit.
func (svc *Service) analyzeKeywords(dormName string, keywords []string, positive bool, limit int, posts []Post) []string {
	target := dormPattern(dormName)
	others := otherDormPatterns(dormName)

	found := make([]string, 0, limit)
	seen := make(map[string]bool, limit)

	for _, p := range matchPosts(dormName, posts) {
		for _, sentence := range splitSentences(p.Title + ". " + p.Content) {
			if !target.MatchString(sentence) {
				continue
			}

			segments := []string{sentence}
			if matchesAny(others, sentence) {
				// comparative sentence: only analyze the segments that talk
				// about the target dorm alone
				segments = segments[:0]
				for _, seg := range contrastRE.Split(sentence, -1) {
					if target.MatchString(seg) && !matchesAny(others, seg) {
						segments = append(segments, seg)
					}
				}
			}

			for _, seg := range segments {
				compound := svc.polarity.Compound(seg)
				if positive && compound <= 0 {
					continue
				}
				if !positive && compound >= 0 {
					continue
				}

				lower := strings.ToLower(seg)
				for _, kw := range keywords {
					if seen[kw] || !strings.Contains(lower, kw) {
						continue
					}
					seen[kw] = true
					found = append(found, capitalize(kw))
					if len(found) >= limit {
						return found
					}
				}
			}
		}
	}

	if len(found) == 0 {
		defaults := defaultPros
		if !positive {
			defaults = defaultCons
		}
		if limit < len(defaults) {
			defaults = defaults[:limit]
		}
		return append([]string(nil), defaults...)
	}
	return found
}

func otherDormPatterns(dormName string) []*regexp.Regexp {
	patterns := make([]*regexp.Regexp, 0, len(Dorms)-1)
	for _, d := range Dorms {
		if !strings.EqualFold(d.Name, dormName) {
			patterns = append(patterns, dormPattern(d.Name))
		}
	}
	return patterns
}

func matchesAny(patterns []*regexp.Regexp, s string) bool {
	for _, p := range patterns {
		if p.MatchString(s) {
			return true
		}
	}
	return false
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	runes := []rune(s)
	runes[0] = unicode.ToUpper(runes[0])
	return string(runes)
}
