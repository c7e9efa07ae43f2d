package extractors

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/recruitkit/cvparse/internal/schema"
	"github.com/recruitkit/cvparse/internal/vocab"
)

var expSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)(?:Work\s+)?Experience[:\-]?\s*(.+?)(?:\n\s*(?:Education|Projects|Skills|Certifications)[:\-]|\z)`),
	regexp.MustCompile(`(?is)(?:Professional\s+)?(?:Work\s+)?History[:\-]?\s*(.+?)(?:\n\s*(?:Education|Projects|Skills|Certifications)[:\-]|\z)`),
	regexp.MustCompile(`(?is)Employment[:\-]?\s*(.+?)(?:\n\s*(?:Education|Projects|Skills|Certifications)[:\-]|\z)`),
}

var (
	dateRangeRe = regexp.MustCompile(`(?i)([A-Za-z]+\.?\s+\d{4})\s*[-–—]\s*([A-Za-z]+\.?\s+\d{4}|Present|Current)`)

	explicitRangeRe = regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`)
	explicitRes     = []*regexp.Regexp{
		regexp.MustCompile(`(?i)(\d+)\+?\s*(?:years?|yrs?)(?:\s+of)?\s+(?:experience|exp)`),
		regexp.MustCompile(`(?i)(?:experience|exp)(?:\s+of)?\s+(\d+)\+?\s*(?:years?|yrs?)`),
	}
)

// ExtractExperienceYears sums the durations of all date ranges in the
// experience section and renders the total as months or (half-)years. When
// neither a section nor a parseable range exists it falls back to explicit
// "<n>+ years of experience" phrases, then to zero.
func ExtractExperienceYears(text string) string {
	return experienceYears(text, time.Now())
}

func experienceYears(text string, now time.Time) string {
	section := experienceSection(text)
	if section != "" {
		if total, ok := totalMonths(section, now); ok {
			return FormatMonths(total)
		}
	}
	if explicit := explicitExperience(text); explicit != "" {
		return explicit
	}
	return "0 years"
}

func experienceSection(text string) string {
	for _, re := range expSectionRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// totalMonths sums month-differences over every date range found, clamping
// each range to non-negative. ok is false when no range parses.
func totalMonths(section string, now time.Time) (int, bool) {
	matches := dateRangeRe.FindAllStringSubmatch(section, -1)
	total, parsed := 0, false
	for _, m := range matches {
		start, err := parseMonthYear(m[1])
		if err != nil {
			continue
		}
		var end time.Time
		if low := strings.ToLower(m[2]); low == "present" || low == "current" {
			end = now
		} else {
			end, err = parseMonthYear(m[2])
			if err != nil {
				continue
			}
		}
		parsed = true
		total += monthsBetween(start, end)
	}
	return total, parsed
}

var monthYearFormats = []string{"January 2006", "Jan 2006", "01/2006", "2006"}

func parseMonthYear(s string) (time.Time, error) {
	s = strings.TrimSpace(strings.ReplaceAll(s, ".", ""))
	var lastErr error
	for _, f := range monthYearFormats {
		t, err := time.Parse(f, s)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, fmt.Errorf("parse date %q: %w", s, lastErr)
}

func monthsBetween(start, end time.Time) int {
	months := (end.Year()-start.Year())*12 + int(end.Month()) - int(start.Month())
	if months < 0 {
		return 0
	}
	return months
}

// FormatMonths renders a month total: under a year in months, otherwise in
// years with a remainder of 6-11 months rounding up by half a year.
func FormatMonths(total int) string {
	switch {
	case total == 0:
		return "0 years"
	case total < 12:
		return fmt.Sprintf("%d months", total)
	}
	years := total / 12
	if total%12 >= 6 {
		return fmt.Sprintf("%.1f years", float64(years)+0.5)
	}
	return fmt.Sprintf("%d years", years)
}

func explicitExperience(text string) string {
	if m := explicitRangeRe.FindStringSubmatch(text); m != nil {
		return fmt.Sprintf("%s-%s years", m[1], m[2])
	}
	for _, re := range explicitRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return m[1] + " years"
		}
	}
	return ""
}

var (
	companyDateLineRe = regexp.MustCompile(`^[A-Z][a-z]+\.?\s+\d{4}\s*[-–]`)
	companySkipWords  = []string{"remote", "experience", "responsibilities", "achievements"}
)

// ExtractCompanies pulls likely company names out of the experience section:
// short capitalized lines that are neither bullets nor date ranges.
func ExtractCompanies(text string) []string {
	section := experienceSection(text)
	if section == "" {
		return nil
	}

	var companies []string
	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || companyDateLineRe.MatchString(line) {
			continue
		}
		if !startsUpper(line) || len(strings.Fields(line)) > 6 || strings.HasPrefix(line, "•") {
			continue
		}
		low := strings.ToLower(line)
		skip := false
		for _, w := range companySkipWords {
			if strings.Contains(low, w) {
				skip = true
				break
			}
		}
		if !skip {
			companies = append(companies, line)
		}
	}
	return schema.Dedupe(companies)
}

// jdYearRes are tried in order; the first match wins. Two capture groups
// mean a min-max range.
var jdYearRes = []*regexp.Regexp{
	regexp.MustCompile(`(?i)(\d+)\s*\+\s*years`),
	regexp.MustCompile(`(?i)at least\s*(\d+)\s*years`),
	regexp.MustCompile(`(?i)minimum\s*(\d+)\s*years`),
	regexp.MustCompile(`(?i)(\d+)\s*-\s*(\d+)\s*years`),
	regexp.MustCompile(`(?i)(\d+)\s*years`),
}

// ExtractExperienceReq reads a job description's experience requirements:
// minimum/maximum years, seniority level, and mentioned domains.
func ExtractExperienceReq(text string) schema.Experience {
	req := schema.Experience{Domains: []string{}}

	for _, re := range jdYearRes {
		m := re.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) == 3 {
			minY, maxY := atoi(m[1]), atoi(m[2])
			req.MinYears, req.MaxYears = &minY, &maxY
		} else {
			minY := atoi(m[1])
			req.MinYears = &minY
		}
		break
	}

	low := strings.ToLower(text)
	for _, lk := range vocab.LevelKeywords {
		for _, kw := range lk.Keywords {
			if strings.Contains(low, kw) {
				req.Level = lk.Level
				break
			}
		}
		if req.Level != "" {
			break
		}
	}

	for _, d := range vocab.Domains {
		if strings.Contains(low, d) {
			req.Domains = append(req.Domains, d)
		}
	}
	return req
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
