package extractors

import (
	"regexp"
	"sort"
	"strings"

	"github.com/recruitkit/cvparse/internal/vocab"
)

var certSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Certifications?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Projects|References)[:\-]|\z)`),
	regexp.MustCompile(`(?is)Professional\s+Certifications?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Projects)[:\-]|\z)`),
	regexp.MustCompile(`(?is)Licenses?\s+(?:and|&)\s+Certifications?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Projects)[:\-]|\z)`),
}

var (
	certTypeRes     []*regexp.Regexp
	certComposedRes []*regexp.Regexp

	certParenDateRe = regexp.MustCompile(`\s*\([^)]*\d{4}[^)]*\)`)
	certWSRe        = regexp.MustCompile(`\s+`)
)

func init() {
	for _, t := range vocab.CertTypes {
		certTypeRes = append(certTypeRes, regexp.MustCompile(`(?i)\b`+regexp.QuoteMeta(t)+`\b[^\n]*`))
	}
	providers := make([]string, len(vocab.CertProviders))
	for i, p := range vocab.CertProviders {
		providers[i] = regexp.QuoteMeta(p)
	}
	certComposedRes = []*regexp.Regexp{
		regexp.MustCompile(`(?i)Certified\s+[\w ]+(?:by|from)\s+[A-Za-z][\w ]+`),
		regexp.MustCompile(`(?i)(?:` + strings.Join(providers, "|") + `)\s+Certified\s+[\w ]+`),
		regexp.MustCompile(`(?i)Certificate\s+(?:in|of)\s+[\w ]+`),
		regexp.MustCompile(`(?i)[\w ]+\s+Certification(?:\s+by|\s+from)?\s*[\w ]*`),
	}
}

// ExtractCertifications finds professional certifications: well-known names
// and composed provider patterns across the full text, plus a line scan of
// the certifications section when present. Every candidate is cleaned and
// validated; the result is sorted and deduplicated.
func ExtractCertifications(text string) []string {
	found := make(map[string]struct{})
	add := func(raw string) {
		c := cleanCertification(raw)
		if c != "" && isValidCertification(c) {
			found[c] = struct{}{}
		}
	}

	for _, re := range certTypeRes {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}
	for _, re := range certComposedRes {
		for _, m := range re.FindAllString(text, -1) {
			add(m)
		}
	}

	if section := certificationsSection(text); section != "" {
		for _, raw := range strings.Split(section, "\n") {
			line := strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(raw), "•-"))
			low := strings.ToLower(line)
			if line == "" || low == "certifications" || low == "certificates" ||
				low == "professional certifications" {
				continue
			}
			if containsAny(line, vocab.CertKeywords) || containsAny(line, vocab.CertProviders) {
				add(line)
			}
		}
	}

	out := make([]string, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func certificationsSection(text string) string {
	for _, re := range certSectionRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// cleanCertification collapses whitespace, drops a trailing dated
// parenthetical, strips trailing punctuation, and caps the length.
func cleanCertification(s string) string {
	s = strings.TrimSpace(certWSRe.ReplaceAllString(s, " "))
	s = certParenDateRe.ReplaceAllString(s, "")
	s = strings.TrimRight(s, ".,;:")
	if len(s) > 100 {
		s = s[:100]
	}
	return strings.TrimSpace(s)
}

// isValidCertification keeps candidates that are long enough, mention a
// certification keyword or provider, and are not known false positives.
func isValidCertification(cert string) bool {
	if len(cert) < 5 {
		return false
	}
	low := strings.ToLower(cert)

	hasIndicator := false
	for _, kw := range vocab.CertKeywords {
		if strings.Contains(low, strings.ToLower(kw)) {
			hasIndicator = true
			break
		}
	}
	if !hasIndicator {
		for _, p := range vocab.CertProviders {
			if strings.Contains(low, strings.ToLower(p)) {
				hasIndicator = true
				break
			}
		}
	}
	if !hasIndicator {
		return false
	}

	for _, fp := range vocab.CertDenylist {
		if strings.Contains(low, fp) {
			return false
		}
	}
	return true
}
