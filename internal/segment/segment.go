// Package segment splits raw document text into labeled sections by
// detecting known header phrases.
package segment

import (
	"regexp"
	"strings"
)

// sectionHeaders is the fixed, ordered list of recognized header phrases.
var sectionHeaders = []string{
	"responsibilities",
	"requirements",
	"qualifications",
	"skills",
	"about the role",
	"what we're looking for",
	"preferred",
	"education",
	"experience",
}

const (
	TitleLabel = "title"
	BodyLabel  = "body"
)

var (
	headerRe   = regexp.MustCompile(`(?i)(` + strings.Join(quoteAll(sectionHeaders), "|") + `)[:\s\-]*`)
	headerTrim = regexp.MustCompile(`[:\s\-]*$`)
	jobTitleRe = regexp.MustCompile(`(?i)Job Title:\s*(.+)`)
)

func quoteAll(items []string) []string {
	out := make([]string, len(items))
	for i, s := range items {
		out[i] = regexp.QuoteMeta(s)
	}
	return out
}

// Section is a labeled contiguous span of source text.
type Section struct {
	Label string
	Text  string
}

// Sections is an ordered label -> text mapping. A repeated label overwrites
// the earlier text but keeps its original position.
type Sections struct {
	entries []Section
	index   map[string]int
}

func newSections() *Sections {
	return &Sections{index: make(map[string]int)}
}

func (s *Sections) set(label, text string) {
	if i, ok := s.index[label]; ok {
		s.entries[i].Text = text
		return
	}
	s.index[label] = len(s.entries)
	s.entries = append(s.entries, Section{Label: label, Text: text})
}

// Get returns the text for a label and whether it is present.
func (s *Sections) Get(label string) (string, bool) {
	i, ok := s.index[label]
	if !ok {
		return "", false
	}
	return s.entries[i].Text, true
}

// All returns the sections in insertion order.
func (s *Sections) All() []Section {
	return s.entries
}

// Len reports the number of distinct labels.
func (s *Sections) Len() int {
	return len(s.entries)
}

// Split segments text into labeled sections. A synthetic "title" entry is
// always present; when no header is found the whole text lands under "body".
func Split(text string) *Sections {
	out := newSections()
	out.set(TitleLabel, ExtractTitle(text))

	lowered := strings.ToLower(text)
	matches := headerRe.FindAllStringIndex(lowered, -1)
	if len(matches) == 0 {
		out.set(BodyLabel, text)
		return out
	}

	for i, m := range matches {
		header := strings.TrimSpace(lowered[m[0]:m[1]])
		label := headerTrim.ReplaceAllString(header, "")
		end := len(text)
		if i+1 < len(matches) {
			end = matches[i+1][0]
		}
		out.set(label, strings.TrimSpace(text[m[0]:end]))
	}
	return out
}

// ExtractTitle finds the document title: the text after a "Job Title:"
// marker up to the end of its line, else the first non-empty line.
func ExtractTitle(text string) string {
	if m := jobTitleRe.FindStringSubmatch(text); m != nil {
		line := strings.SplitN(m[1], "\n", 2)[0]
		return strings.TrimSpace(line)
	}
	trimmed := strings.TrimSpace(text)
	return strings.TrimSpace(strings.SplitN(trimmed, "\n", 2)[0])
}
