// Package merge reconciles model output and heuristic candidates into the
// canonical record. Precedence per field: model value if non-empty, else
// heuristic candidates, else the field's typed default.
package merge

import (
	"fmt"
	"strconv"

	"github.com/recruitkit/cvparse/internal/extractors"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/schema"
)

// ProjectPolicy names the precedence applied to the projects field when
// parsing job descriptions.
type ProjectPolicy int

const (
	// PreferModel uses the model's project list first, matching every
	// other field.
	PreferModel ProjectPolicy = iota
	// PreferRules uses rule-based project extraction first, with the
	// model only as fallback.
	PreferRules
)

// ParseProjectPolicy maps a config string to a policy.
func ParseProjectPolicy(s string) (ProjectPolicy, error) {
	switch s {
	case "", "prefer_model":
		return PreferModel, nil
	case "prefer_rules":
		return PreferRules, nil
	default:
		return PreferModel, fmt.Errorf("unknown project policy %q", s)
	}
}

func (p ProjectPolicy) String() string {
	if p == PreferRules {
		return "prefer_rules"
	}
	return "prefer_model"
}

// fields groups heuristic candidates per field, deduplicated keeping the
// first occurrence.
type fields map[string][]string

func group(cands []schema.Candidate) fields {
	grouped := make(fields)
	for _, c := range cands {
		if c.Value == "" {
			continue
		}
		grouped[c.Field] = append(grouped[c.Field], c.Value)
	}
	for f, vals := range grouped {
		grouped[f] = schema.Dedupe(vals)
	}
	return grouped
}

func (f fields) first(name string) string {
	if vals := f[name]; len(vals) > 0 {
		return vals[0]
	}
	return ""
}

func pickString(model, heuristic string) string {
	if model != "" {
		return model
	}
	return heuristic
}

func pickList(model, heuristic []string) []string {
	if len(model) > 0 {
		return schema.Dedupe(model)
	}
	if len(heuristic) > 0 {
		return heuristic
	}
	return []string{}
}

// Resume combines the model result and heuristic candidates into a
// canonical resume record. Every field is present in the output.
func Resume(res llm.ResumeResult, cands []schema.Candidate) schema.Resume {
	h := group(cands)
	m := res.Reply

	out := schema.NewResume()
	out.Name = pickString(m.Name, h.first(extractors.FieldName))
	out.Email = pickString(m.Email, h.first(extractors.FieldEmail))
	out.Phone = pickString(m.Phone, h.first(extractors.FieldPhone))
	out.LinkedIn = pickString(m.LinkedIn, h.first(extractors.FieldLinkedIn))
	out.GitHub = pickString(m.GitHub, h.first(extractors.FieldGitHub))
	out.Education = pickList(m.Education, h[extractors.FieldEducation])
	out.Skills = pickList(m.Skills, h[extractors.FieldSkills])
	out.ExperienceYears = pickString(m.ExperienceYears, h.first(extractors.FieldExperienceYears))
	out.Companies = pickList(m.Companies, h[extractors.FieldCompanies])
	out.Projects = pickList(m.Projects, h[extractors.FieldProjects])
	out.Certifications = pickList(m.Certifications, h[extractors.FieldCertifications])
	out.Summary = m.Summary
	return out
}

// Job combines the model result and heuristic candidates into a canonical
// job posting. The projects field follows the given policy.
func Job(res llm.JobResult, cands []schema.Candidate, policy ProjectPolicy) schema.JobPosting {
	h := group(cands)
	m := res.Reply

	out := schema.NewJobPosting()
	out.Title = pickString(m.Title, h.first(extractors.FieldTitle))
	out.SkillsHard = pickList(m.SkillsHard, h[extractors.FieldSkillsHard])
	out.SkillsSoft = pickList(m.SkillsSoft, h[extractors.FieldSkillsSoft])
	out.Education = pickList(m.Education, h[extractors.FieldEducation])
	out.Certifications = pickList(m.Certifications, h[extractors.FieldCertifications])
	out.OtherRequirements = pickList(m.OtherRequirements, nil)

	if policy == PreferRules {
		out.Projects = pickList(h[extractors.FieldProjects], m.Projects)
	} else {
		out.Projects = pickList(m.Projects, h[extractors.FieldProjects])
	}

	out.Experience.MinYears = pickYears(m.ExperienceMinYears, h.first(extractors.FieldExpMinYears))
	out.Experience.MaxYears = pickYears(m.ExperienceMaxYears, h.first(extractors.FieldExpMaxYears))
	out.Experience.Level = h.first(extractors.FieldExpLevel)
	if domains := h[extractors.FieldExpDomains]; len(domains) > 0 {
		out.Experience.Domains = domains
	}
	return out
}

func pickYears(model *int, heuristic string) *int {
	if model != nil {
		return model
	}
	if heuristic == "" {
		return nil
	}
	n, err := strconv.Atoi(heuristic)
	if err != nil {
		return nil
	}
	return &n
}
