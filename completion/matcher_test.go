package completion

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchers(t *testing.T) {
	tests := []struct {
		kind    MatcherKind
		choice  string
		pattern string
		ok      bool
	}{
		{MatchFuzzy, "section", "sec", true},
		{MatchFuzzy, "subsection", "sec", true},
		{MatchFuzzy, "section", "SEC", false},
		{MatchFuzzy, "section", "", true},
		{MatchFuzzyIgnoreCase, "section", "SEC", true},
		{MatchFuzzyIgnoreCase, "section", "xyz", false},
		{MatchPrefix, "section", "sec", true},
		{MatchPrefix, "subsection", "sec", false},
		{MatchPrefix, "Section", "sec", false},
		{MatchPrefixIgnoreCase, "Section", "sec", true},
		{MatchPrefixIgnoreCase, "se", "sec", false},
	}

	for _, tt := range tests {
		_, ok := NewMatcher(tt.kind).Score(tt.choice, tt.pattern)
		assert.Equal(t, tt.ok, ok, "%s: %q against %q", tt.kind, tt.choice, tt.pattern)
	}
}

func TestEmptyPatternIsNeutral(t *testing.T) {
	for _, kind := range MatcherKinds {
		score, ok := NewMatcher(kind).Score("anything", "")
		assert.True(t, ok, kind)
		assert.Zero(t, score, kind)
	}
}

func TestFuzzyPrefersPrefix(t *testing.T) {
	m := NewMatcher(MatchFuzzyIgnoreCase)
	prefix, _ := m.Score("section", "sec")
	scattered, _ := m.Score("subsection", "sec")
	longer, _ := m.Score("sectionmark", "sec")
	assert.Greater(t, prefix, scattered)
	assert.Greater(t, prefix, longer)
	assert.Greater(t, longer, scattered)
}

func TestParseMatcherKind(t *testing.T) {
	kind, ok := ParseMatcherKind("prefix-ignore-case")
	assert.True(t, ok)
	assert.Equal(t, MatchPrefixIgnoreCase, kind)

	_, ok = ParseMatcherKind("regex")
	assert.False(t, ok)
}
