package extractors

import (
	"regexp"
	"strings"

	"github.com/recruitkit/cvparse/internal/normalize"
	"github.com/recruitkit/cvparse/internal/schema"
	"github.com/recruitkit/cvparse/internal/vocab"
)

var tokenRe = regexp.MustCompile(`[A-Za-z][A-Za-z0-9.+#-]*`)

// ExtractSkills finds canonical hard skills and soft skills in text.
// Hard skills come from a longest-first vocabulary phrase match plus a fuzzy
// fallback over remaining tokens; soft skills from verbatim presence of a
// fixed phrase list. Output preserves discovery order, first occurrence wins.
func ExtractSkills(text string, ctx *vocab.Context) (hard, soft []string) {
	found := ctx.Matcher().Match(text)

	matchedLow := make(map[string]struct{}, len(found))
	for _, s := range found {
		matchedLow[strings.ToLower(s)] = struct{}{}
	}

	// Fuzzy fallback for tokens the phrase matcher missed.
	for _, tok := range tokenRe.FindAllString(text, -1) {
		low := strings.ToLower(tok)
		if len(low) <= 1 {
			continue
		}
		if _, stop := vocab.Stopwords[low]; stop {
			continue
		}
		if coveredByMatch(low, matchedLow) {
			continue
		}
		best, score := normalize.BestMatch(tok, ctx.Skills())
		if score >= normalize.TokenThreshold {
			found = append(found, best)
			matchedLow[strings.ToLower(best)] = struct{}{}
		}
	}
	hard = schema.Dedupe(found)

	low := strings.ToLower(text)
	for _, s := range vocab.SoftSkills {
		if strings.Contains(low, s) {
			soft = append(soft, s)
		}
	}
	return hard, soft
}

// coveredByMatch reports whether a token is already part of a matched skill.
func coveredByMatch(token string, matched map[string]struct{}) bool {
	if _, ok := matched[token]; ok {
		return true
	}
	for m := range matched {
		for _, word := range strings.Fields(m) {
			if word == token {
				return true
			}
		}
	}
	return false
}
