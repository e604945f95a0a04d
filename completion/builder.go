package completion

import (
	"fmt"
	"sort"
)

// DefaultLimit caps the number of items returned for one request.
const DefaultLimit = 50

// Options tune how candidates are ranked.
type Options struct {
	Matcher MatcherKind
	Limit   int
}

func DefaultOptions() Options {
	return Options{Matcher: MatchFuzzyIgnoreCase, Limit: DefaultLimit}
}

// Builder accumulates the candidates of a single request.
type Builder struct {
	ctx        *Context
	options    Options
	candidates []Candidate
}

func NewBuilder(ctx *Context, options Options) *Builder {
	if options.Limit <= 0 {
		options.Limit = DefaultLimit
	}
	if options.Matcher == "" {
		options.Matcher = MatchFuzzyIgnoreCase
	}
	return &Builder{ctx: ctx, options: options}
}

// Add registers a candidate replacing r.
func (b *Builder) Add(r Range, payload Payload, preselect bool) {
	b.candidates = append(b.candidates, Candidate{Range: r, Payload: payload, Preselect: preselect})
}

// Len returns the number of registered candidates.
func (b *Builder) Len() int {
	return len(b.candidates)
}

// Item is a ranked candidate.
type Item struct {
	Candidate
	SortText string
}

// List is the outcome of a completion request.
type List struct {
	Items      []Item
	Incomplete bool
}

// Finish scores, sorts, deduplicates and truncates the candidates.
func (b *Builder) Finish(client ClientProfile) List {
	matcher := NewMatcher(b.options.Matcher)
	pattern := ""
	fragment := ""
	if b.ctx != nil {
		pattern = b.ctx.MatchText()
		fragment = b.ctx.PathFragment
	}

	matched := make([]Candidate, 0, len(b.candidates))
	for _, candidate := range b.candidates {
		choice, typed := candidate.Payload.FilterText(), pattern
		switch candidate.Payload.Kind() {
		case KindFile, KindDirectory:
			typed = fragment
		}
		score, ok := matcher.Score(choice, typed)
		if !ok {
			continue
		}
		candidate.Score = score
		matched = append(matched, candidate)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		x, y := matched[i], matched[j]
		if x.Preselect != y.Preselect {
			return x.Preselect
		}
		if x.Score != y.Score {
			return x.Score > y.Score
		}
		return x.Payload.Label() < y.Payload.Label()
	})

	seen := make(map[string]bool, len(matched))
	unique := matched[:0]
	for _, candidate := range matched {
		label := candidate.Payload.Label()
		if seen[label] {
			continue
		}
		seen[label] = true
		unique = append(unique, candidate)
	}

	list := List{Incomplete: client.AlwaysIncomplete}
	if len(unique) > b.options.Limit {
		unique = unique[:b.options.Limit]
		list.Incomplete = true
	}

	list.Items = make([]Item, len(unique))
	for i, candidate := range unique {
		sortText := fmt.Sprintf("%05d", i)
		switch candidate.Payload.Kind() {
		case KindLabel, KindCitation:
			sortText += " " + candidate.Payload.FilterText()
		}
		list.Items[i] = Item{Candidate: candidate, SortText: sortText}
	}
	return list
}
