package extractors

import (
	"regexp"
	"strings"

	"github.com/recruitkit/cvparse/internal/schema"
)

var projectSectionRes = []*regexp.Regexp{
	regexp.MustCompile(`(?is)Projects?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Certifications|Technical Skills)[:\-]|\z)`),
	regexp.MustCompile(`(?is)Academic\s+Projects?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Certifications)[:\-]|\z)`),
	regexp.MustCompile(`(?is)Personal\s+Projects?[:\-]?\s*(.+?)(?:\n\s*(?:Experience|Education|Skills|Certifications)[:\-]|\z)`),
}

var projectTitleRe = regexp.MustCompile(`(.+?)\s*\|\s*(.+)`)

// Project is one extracted project entry.
type Project struct {
	Name         string
	Technologies string
	Description  string
}

const maxProjectDescription = 300

// ExtractProjects parses the projects section of a resume. A
// "<name> | <tech-stack>" line opens an entry; bullet and continuation
// lines extend its description; a blank line closes it.
func ExtractProjects(text string) []Project {
	section := projectsSection(text)
	if section == "" {
		return nil
	}

	var projects []Project
	var current *Project

	for _, raw := range strings.Split(section, "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			if current != nil && current.Name != "" {
				projects = append(projects, *current)
			}
			current = nil
			continue
		}

		if m := projectTitleRe.FindStringSubmatch(line); m != nil && !strings.HasPrefix(line, "•") {
			if current != nil && current.Name != "" {
				projects = append(projects, *current)
			}
			current = &Project{
				Name:         strings.TrimSpace(m[1]),
				Technologies: strings.TrimSpace(m[2]),
			}
			continue
		}

		if strings.HasPrefix(line, "•") || strings.HasPrefix(line, "-") {
			if current != nil {
				desc := strings.TrimSpace(strings.TrimLeft(line, "•-"))
				if current.Description != "" {
					current.Description += " " + desc
				} else {
					current.Description = desc
				}
			}
			continue
		}

		if current != nil && current.Description != "" {
			current.Description += " " + line
		}
	}
	if current != nil && current.Name != "" {
		projects = append(projects, *current)
	}

	for i := range projects {
		d := strings.TrimSpace(certWSRe.ReplaceAllString(projects[i].Description, " "))
		if len(d) > maxProjectDescription {
			d = d[:maxProjectDescription] + "..."
		}
		projects[i].Description = d
	}
	return projects
}

func projectsSection(text string) string {
	for _, re := range projectSectionRes {
		if m := re.FindStringSubmatch(text); m != nil {
			return strings.TrimSpace(m[1])
		}
	}
	return ""
}

// FormatProjects renders project entries as readable strings.
func FormatProjects(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		parts := []string{p.Name}
		if p.Technologies != "" {
			parts = append(parts, "Tech: "+p.Technologies)
		}
		if p.Description != "" {
			parts = append(parts, p.Description)
		}
		out = append(out, strings.Join(parts, " | "))
	}
	return out
}

// projectIndicatorRe marks a sentence as project-related in job-description
// text.
var projectIndicatorRe = regexp.MustCompile(`(?i)\bproject(s)?\b|open[-\s]?source|personal project(s)?|side project(s)?|github|contribution(s)?|develop(ed|ing)?\b|built|implemented|designed|experience (with|in|building|developing)`)

var sentenceSplitRe = regexp.MustCompile(`[.!?]\s+|\n`)

// ExtractProjectMentions splits job-description text into sentences and
// keeps those containing a project-indicating phrase, deduplicated in order.
func ExtractProjectMentions(text string) []string {
	var out []string
	for _, s := range sentenceSplitRe.Split(text, -1) {
		s = strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(s), "•-* "))
		if s == "" {
			continue
		}
		if projectIndicatorRe.MatchString(s) {
			out = append(out, s)
		}
	}
	return schema.Dedupe(out)
}
