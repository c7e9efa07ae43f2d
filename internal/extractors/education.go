package extractors

import (
	"regexp"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

// degreePattern matches one degree form on a single line. Group 1 is the
// degree wording, group 2 (when present) the field of study.
type degreePattern struct {
	re       *regexp.Regexp
	hasField bool
}

var degreePatterns = []degreePattern{
	{regexp.MustCompile(`(?i)\b(bachelor(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+degree)?|bsc|b\.s\.|bs)\b(?:\s+in\b)?\s*([A-Za-z][A-Za-z& ]*)?`), true},
	{regexp.MustCompile(`(?i)\b(master(?:'s)?(?:\s+of)?(?:\s+science)?(?:\s+degree)?|msc|m\.s\.|ms)\b(?:\s+in\b)?\s*([A-Za-z][A-Za-z& ]*)?`), true},
	{regexp.MustCompile(`(?i)\b(ph\.?d\.?|doctorate)\b(?:\s+in\b)?\s*([A-Za-z][A-Za-z& ]*)?`), true},
	{regexp.MustCompile(`(?i)\b(mba|bba|mphil)\b`), false},
	{regexp.MustCompile(`(?i)\b(intermediate|matriculation|o-level|a-level)\b`), false},
}

var (
	eduHeaderRe   = regexp.MustCompile(`(?im)^\s*Education\s*$`)
	eduDateRe     = regexp.MustCompile(`(?:Expected\s+)?([A-Z][a-z]+\.?\s+\d{4}\s*[-–]\s*[A-Z][a-z]+\.?\s+\d{4}|[A-Z][a-z]+\s+\d{4}|\d{4})`)
	fieldJunkRe   = regexp.MustCompile(`(?i)\s*\b(?:expected|gpa|cgpa)\b.*$`)
	blankSplitRe  = regexp.MustCompile(`\n\s*\n`)
	institutionKw = []string{"University", "College", "Institute", "School", "Academy"}
)

type educationEntry struct {
	degree      string
	field       string
	institution string
	location    string
	dates       string
}

// ExtractEducationEntries scans a resume for education entries and formats
// each as "<degree> in <field> - <institution> - <location> (<dates>)" with
// absent parts omitted. Duplicates are removed keeping the first occurrence.
func ExtractEducationEntries(text string) []string {
	relevant := educationSection(text)

	var entries []educationEntry
	var current *educationEntry

	for _, raw := range strings.Split(relevant, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" {
			if current != nil && current.degree != "" {
				entries = append(entries, *current)
			}
			current = nil
			continue
		}
		if eduHeaderRe.MatchString(line) {
			continue
		}

		if degree, field, ok := matchDegree(line); ok {
			if current == nil {
				current = &educationEntry{}
			}
			current.degree = degree
			current.field = field
			continue
		}

		if current != nil {
			if m := eduDateRe.FindStringSubmatch(line); m != nil {
				current.dates = strings.TrimSpace(m[1])
				continue
			}
			if current.institution == "" {
				if containsAny(line, institutionKw) || (len(strings.Fields(line)) >= 2 && startsUpper(line)) {
					current.institution = line
					continue
				}
			}
			if current.location == "" && current.institution != "" {
				if len(strings.Fields(line)) <= 3 && startsUpper(line) {
					current.location = line
				}
			}
		}
	}
	if current != nil && current.degree != "" {
		entries = append(entries, *current)
	}

	formatted := make([]string, 0, len(entries))
	for _, e := range entries {
		formatted = append(formatted, e.format())
	}
	return schema.Dedupe(formatted)
}

// educationSection returns the blank-line blocks from the "Education"
// header onward (a bounded window), or the full text when absent.
func educationSection(text string) string {
	blocks := blankSplitRe.Split(text, -1)
	for i, b := range blocks {
		if eduHeaderRe.MatchString(b) {
			end := i + 5
			if end > len(blocks) {
				end = len(blocks)
			}
			return strings.Join(blocks[i:end], "\n\n")
		}
	}
	return text
}

func matchDegree(line string) (degree, field string, ok bool) {
	for _, p := range degreePatterns {
		m := p.re.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		degree = strings.TrimSpace(m[1])
		if p.hasField && len(m) > 2 {
			field = strings.TrimSpace(fieldJunkRe.ReplaceAllString(m[2], ""))
		}
		return degree, field, true
	}
	return "", "", false
}

func (e educationEntry) format() string {
	var parts []string
	switch {
	case e.degree != "" && e.field != "":
		parts = append(parts, e.degree+" in "+e.field)
	case e.degree != "":
		parts = append(parts, e.degree)
	}
	if e.institution != "" {
		parts = append(parts, e.institution)
	}
	if e.location != "" {
		parts = append(parts, e.location)
	}
	s := strings.Join(parts, " - ")
	if e.dates != "" {
		s += " (" + e.dates + ")"
	}
	return strings.TrimSpace(s)
}

func containsAny(s string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(s, kw) {
			return true
		}
	}
	return false
}

func startsUpper(s string) bool {
	if s == "" {
		return false
	}
	r := []rune(s)[0]
	return r >= 'A' && r <= 'Z'
}

// degreeMentionRes matches degree phrases anywhere in job-description text.
var degreeMentionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)\bbachelor(?:'s)?(?:\s+of)?(?:\s+degree)?(?:\s+in)?[\s\w&+\-]*`),
	regexp.MustCompile(`(?i)\bbsc\.?\s+in[\s\w&+\-]+`),
	regexp.MustCompile(`(?i)\bmaster(?:'s)?(?:\s+of)?(?:\s+degree)?(?:\s+in)?[\s\w&+\-]*`),
	regexp.MustCompile(`(?i)\bmsc\.?\s+in[\s\w&+\-]+`),
	regexp.MustCompile(`(?i)\b(?:phd|doctorate)\b`),
	regexp.MustCompile(`(?i)\bmba\b`),
	regexp.MustCompile(`(?i)\bdegree\s+in[\s\w&+\-]+`),
}

// ExtractDegreeMentions finds raw degree phrases in job-description text,
// deduplicated keeping the first occurrence.
func ExtractDegreeMentions(text string) []string {
	var out []string
	for _, re := range degreeMentionRes {
		for _, m := range re.FindAllString(text, -1) {
			out = append(out, strings.TrimSpace(m))
		}
	}
	return schema.Dedupe(out)
}
