// Package normalize maps raw extracted strings onto canonical vocabulary
// labels using fuzzy similarity.
package normalize

import (
	"regexp"
	"sort"
	"strings"

	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"

	"github.com/recruitkit/cvparse/internal/schema"
	"github.com/recruitkit/cvparse/internal/vocab"
)

// Similarity thresholds on the 0-100 scale.
const (
	SkillThreshold = 80 // general normalization
	TokenThreshold = 85 // skill-token fallback matching
)

var levenshtein = metrics.NewLevenshtein()

// Score rates how similar two strings are, 0-100. The comparison is
// case-insensitive and tolerant of token order: the better of the raw and
// token-sorted similarities is used.
func Score(a, b string) int {
	la, lb := strings.ToLower(strings.TrimSpace(a)), strings.ToLower(strings.TrimSpace(b))
	if la == "" || lb == "" {
		return 0
	}
	plain := strutil.Similarity(la, lb, levenshtein)
	sorted := strutil.Similarity(sortTokens(la), sortTokens(lb), levenshtein)
	best := plain
	if sorted > best {
		best = sorted
	}
	return int(best*100 + 0.5)
}

func sortTokens(s string) string {
	tokens := strings.Fields(s)
	sort.Strings(tokens)
	return strings.Join(tokens, " ")
}

// BestMatch returns the vocabulary entry most similar to raw and its score.
// An empty vocabulary yields ("", 0).
func BestMatch(raw string, vocabulary []string) (string, int) {
	best, bestScore := "", 0
	for _, entry := range vocabulary {
		if s := Score(raw, entry); s > bestScore {
			best, bestScore = entry, s
		}
	}
	return best, bestScore
}

// Skill maps a raw skill string to its canonical vocabulary entry. Below the
// threshold the input is returned lowercased unchanged.
func Skill(raw string, vocabulary []string) string {
	if match, score := BestMatch(raw, vocabulary); score >= SkillThreshold {
		return match
	}
	return strings.ToLower(raw)
}

var spaceRe = regexp.MustCompile(`\s+`)

// Education maps degree strings to canonical labels via the keyword table,
// falling back to whitespace cleanup. Duplicates are removed keeping the
// first occurrence.
func Education(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, Degree(item))
	}
	return schema.Dedupe(out)
}

// Degree resolves a single degree string against the keyword table.
func Degree(s string) string {
	low := strings.ToLower(s)
	for _, e := range vocab.DegreeTable {
		if strings.Contains(low, e.Keyword) {
			return e.Label
		}
	}
	return strings.TrimSpace(spaceRe.ReplaceAllString(s, " "))
}
