package extractors

import (
	"regexp"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

// BasicInfo is the contact block extracted from the top of a resume.
type BasicInfo struct {
	Name     string
	Emails   []string
	Phones   []string
	URLs     []string
	LinkedIn string
	GitHub   string
}

var (
	emailRe = regexp.MustCompile(`\b[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}\b`)
	phoneRe = regexp.MustCompile(`(?:\+?\d{1,3}[-.\s]?)?(?:\(?\d{2,4}\)?[-.\s]?)?\d{3,4}[-.\s]?\d{3,4}\b`)
	urlRe   = regexp.MustCompile(`https?://[^\s]+`)

	nonDigitRe = regexp.MustCompile(`[^\d]`)
	digitRunRe = regexp.MustCompile(`\d{3,}`)
)

var placeholderEmails = []string{"example.com", "x@x.com", "test@"}

// ExtractBasicInfo pulls name, emails, phone numbers, and URLs from resume
// text. extraURLs are hyperlinks the upstream text extractor collected
// separately (some formats expose them outside the text).
func ExtractBasicInfo(text string, extraURLs []string) BasicInfo {
	var emails []string
	for _, e := range emailRe.FindAllString(text, -1) {
		low := strings.ToLower(e)
		placeholder := false
		for _, p := range placeholderEmails {
			if strings.Contains(low, p) {
				placeholder = true
				break
			}
		}
		if !placeholder {
			emails = append(emails, e)
		}
	}
	emails = schema.Dedupe(emails)

	var phones []string
	for _, p := range phoneRe.FindAllString(text, -1) {
		digits := nonDigitRe.ReplaceAllString(p, "")
		if len(digits) >= 7 && len(digits) <= 15 {
			phones = append(phones, strings.TrimSpace(p))
		}
	}
	phones = schema.Dedupe(phones)

	urls := urlRe.FindAllString(text, -1)
	urls = append(urls, extraURLs...)
	urls = schema.Dedupe(urls)

	var linkedin, github string
	for _, u := range urls {
		low := strings.ToLower(u)
		switch {
		case linkedin == "" && strings.Contains(low, "linkedin.com"):
			linkedin = u
		case github == "" && strings.Contains(low, "github.com"):
			github = u
		}
	}

	return BasicInfo{
		Name:     ExtractName(text),
		Emails:   emails,
		Phones:   phones,
		URLs:     urls,
		LinkedIn: linkedin,
		GitHub:   github,
	}
}

var nameSkipKeywords = []string{
	"resume", "cv", "curriculum", "profile", "objective",
	"education", "experience", "skills",
}

// ExtractName guesses the candidate name from the first lines of a resume:
// the first line of 2-5 words that is mostly capitalized and free of contact
// details and section keywords, else the first non-empty line verbatim.
func ExtractName(text string) string {
	var lines []string
	for _, l := range strings.Split(text, "\n") {
		if t := strings.TrimSpace(l); t != "" {
			lines = append(lines, t)
		}
	}
	if len(lines) == 0 {
		return ""
	}

	limit := len(lines)
	if limit > 5 {
		limit = 5
	}
	for _, line := range lines[:limit] {
		if strings.Contains(line, "@") || strings.Contains(line, "http") || digitRunRe.MatchString(line) {
			continue
		}
		low := strings.ToLower(line)
		skip := false
		for _, kw := range nameSkipKeywords {
			if strings.Contains(low, kw) {
				skip = true
				break
			}
		}
		if skip {
			continue
		}

		words := strings.Fields(line)
		if len(words) < 2 || len(words) > 5 {
			continue
		}
		capped := 0
		for _, w := range words {
			r := []rune(w)[0]
			if r >= 'A' && r <= 'Z' {
				capped++
			}
		}
		if float64(capped) >= float64(len(words))*0.7 {
			return line
		}
	}
	return lines[0]
}
