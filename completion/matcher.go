package completion

import (
	"strings"
	"unicode/utf8"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

type MatcherKind string

const (
	MatchFuzzy            MatcherKind = "fuzzy"
	MatchFuzzyIgnoreCase  MatcherKind = "fuzzy-ignore-case"
	MatchPrefix           MatcherKind = "prefix"
	MatchPrefixIgnoreCase MatcherKind = "prefix-ignore-case"
)

// MatcherKinds lists the accepted matcher names.
var MatcherKinds = []MatcherKind{MatchFuzzy, MatchFuzzyIgnoreCase, MatchPrefix, MatchPrefixIgnoreCase}

func ParseMatcherKind(name string) (MatcherKind, bool) {
	for _, kind := range MatcherKinds {
		if string(kind) == name {
			return kind, true
		}
	}
	return "", false
}

// Matcher scores a choice against the typed pattern. Higher is better; ok
// is false when the choice does not match at all. An empty pattern matches
// everything with score 0.
type Matcher interface {
	Score(choice, pattern string) (score int, ok bool)
}

func NewMatcher(kind MatcherKind) Matcher {
	switch kind {
	case MatchFuzzy:
		return fuzzyMatcher{fold: false}
	case MatchPrefix:
		return prefixMatcher{fold: false}
	case MatchPrefixIgnoreCase:
		return prefixMatcher{fold: true}
	}
	return fuzzyMatcher{fold: true}
}

// prefixBonus lifts choices that start with the pattern above scattered
// subsequence matches.
const prefixBonus = 1000

type fuzzyMatcher struct {
	fold bool
}

func (m fuzzyMatcher) Score(choice, pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	var distance int
	if m.fold {
		distance = fuzzy.RankMatchFold(pattern, choice)
	} else {
		distance = fuzzy.RankMatch(pattern, choice)
	}
	if distance < 0 {
		return 0, false
	}
	score := -distance
	if hasPrefix(choice, pattern, m.fold) {
		score += prefixBonus
	}
	return score, true
}

type prefixMatcher struct {
	fold bool
}

func (m prefixMatcher) Score(choice, pattern string) (int, bool) {
	if pattern == "" {
		return 0, true
	}
	if !hasPrefix(choice, pattern, m.fold) {
		return 0, false
	}
	return -(utf8.RuneCountInString(choice) - utf8.RuneCountInString(pattern)), true
}

func hasPrefix(choice, pattern string, fold bool) bool {
	if !fold {
		return strings.HasPrefix(choice, pattern)
	}
	if len(choice) < len(pattern) {
		return false
	}
	return strings.EqualFold(choice[:len(pattern)], pattern)
}
