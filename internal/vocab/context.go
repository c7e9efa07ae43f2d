package vocab

import (
	"regexp"
	"sort"
	"sync"
)

// Context carries the vocabulary store and the compiled skill matcher into
// every extractor call. The matcher is built on first use under a
// single-initialization guard; after that the context is read-only and safe
// for concurrent use.
type Context struct {
	store *Store

	once    sync.Once
	matcher *SkillMatcher
}

// NewContext builds an extraction context around a bootstrapped store.
func NewContext(store *Store) *Context {
	return &Context{store: store}
}

// Skills returns the canonical skill vocabulary.
func (c *Context) Skills() []string {
	return c.store.Skills()
}

// Matcher returns the compiled skill matcher, building it once.
func (c *Context) Matcher() *SkillMatcher {
	c.once.Do(func() {
		c.matcher = NewSkillMatcher(c.store.Skills())
	})
	return c.matcher
}

// SkillMatcher finds canonical vocabulary phrases in free text. Patterns are
// tried longest-first so multi-word skills win over their single-word
// substrings.
type SkillMatcher struct {
	skills   []string
	patterns []*regexp.Regexp
}

// NewSkillMatcher compiles word-boundary-safe, case-insensitive patterns for
// each vocabulary entry, ordered longest-first.
func NewSkillMatcher(skills []string) *SkillMatcher {
	ordered := make([]string, len(skills))
	copy(ordered, skills)
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i]) > len(ordered[j])
	})

	m := &SkillMatcher{skills: ordered}
	for _, s := range ordered {
		// \b misbehaves around entries like "node.js", so anchor on
		// non-word characters or string edges instead.
		p := regexp.MustCompile(`(?i)(?:^|[^a-z0-9])(` + regexp.QuoteMeta(s) + `)(?:[^a-z0-9]|$)`)
		m.patterns = append(m.patterns, p)
	}
	return m
}

type span struct{ start, end int }

// Match returns the canonical entries present in text, in discovery order
// per pattern pass. A region claimed by a longer phrase is not re-matched by
// a shorter one.
func (m *SkillMatcher) Match(text string) []string {
	var covered []span
	var found []string
	for i, p := range m.patterns {
		locs := p.FindAllStringSubmatchIndex(text, -1)
		matched := false
		for _, loc := range locs {
			start, end := loc[2], loc[3]
			if overlaps(covered, start, end) {
				continue
			}
			covered = append(covered, span{start, end})
			matched = true
		}
		if matched {
			found = append(found, m.skills[i])
		}
	}
	return found
}

func overlaps(covered []span, start, end int) bool {
	for _, s := range covered {
		if start < s.end && end > s.start {
			return true
		}
	}
	return false
}
