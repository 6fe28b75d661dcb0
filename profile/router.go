package profile

import (
	"strings"
	"unicode"
)

// MinMatchScore is the minimum number of distinct description keywords that
// must appear in the input before a profile is eligible for selection. The
// floor avoids false positives on short or generic inputs like "test" or
// "build".
const MinMatchScore = 2

// stopWords are dropped from descriptions before keyword matching.
var stopWords = map[string]struct{}{
	"a": {}, "an": {}, "the": {}, "is": {}, "are": {}, "was": {}, "were": {},
	"be": {}, "been": {}, "being": {}, "have": {}, "has": {}, "had": {},
	"do": {}, "does": {}, "did": {}, "will": {}, "would": {}, "could": {},
	"should": {}, "may": {}, "might": {}, "shall": {}, "can": {}, "for": {},
	"and": {}, "but": {}, "or": {}, "nor": {}, "not": {}, "so": {}, "yet": {},
	"to": {}, "of": {}, "in": {}, "on": {}, "at": {}, "by": {}, "with": {},
	"from": {}, "up": {}, "about": {}, "into": {}, "through": {}, "during": {},
	"before": {}, "after": {}, "above": {}, "below": {}, "between": {},
	"use": {}, "that": {}, "this": {}, "it": {}, "its": {},
}

// Router selects the best-matching profile for free-text input by scoring
// description keywords against the input. Profile order is preserved from
// load time; ties resolve to the earliest profile.
//
// A Router is immutable after construction and safe for concurrent use.
type Router struct {
	profiles []*Profile
}

// NewRouter creates a router over the given profiles. The slice order
// determines tie-breaking.
func NewRouter(profiles []*Profile) *Router {
	return &Router{profiles: profiles}
}

// Select returns the profile whose description best matches input, or false
// if no profile reaches MinMatchScore. A strictly higher score is required
// to displace an earlier candidate.
func (r *Router) Select(input string) (*Profile, bool) {
	inputLower := strings.ToLower(input)

	var best *Profile
	bestScore := 0
	for _, p := range r.profiles {
		score := matchScore(inputLower, p)
		if score >= MinMatchScore && score > bestScore {
			best = p
			bestScore = score
		}
	}
	return best, best != nil
}

// Profiles returns the registered profiles in load order.
func (r *Router) Profiles() []*Profile {
	return r.profiles
}

// Get returns the profile with the given name.
func (r *Router) Get(name string) (*Profile, bool) {
	for _, p := range r.profiles {
		if p.Name == name {
			return p, true
		}
	}
	return nil, false
}

// matchScore counts the distinct description keywords that occur as
// substrings of the lower-cased input.
func matchScore(inputLower string, p *Profile) int {
	score := 0
	for _, kw := range extractKeywords(p.Description) {
		if strings.Contains(inputLower, kw) {
			score++
		}
	}
	return score
}

// extractKeywords derives the matchable keyword set from a description:
// lower-cased alphanumeric runs, minus stop words and tokens of length two
// or less, deduplicated.
func extractKeywords(description string) []string {
	tokens := strings.FieldsFunc(strings.ToLower(description), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	seen := make(map[string]struct{}, len(tokens))
	var keywords []string
	for _, tok := range tokens {
		if len(tok) <= 2 {
			continue
		}
		if _, stop := stopWords[tok]; stop {
			continue
		}
		if _, dup := seen[tok]; dup {
			continue
		}
		seen[tok] = struct{}{}
		keywords = append(keywords, tok)
	}
	return keywords
}
