// Package extractors holds the deterministic rule engines that propose
// field candidates from raw text. Every extractor is total: any string
// input, including empty, yields a (possibly empty) candidate list.
package extractors

import (
	"strconv"

	"github.com/recruitkit/cvparse/internal/schema"
	"github.com/recruitkit/cvparse/internal/segment"
	"github.com/recruitkit/cvparse/internal/vocab"
)

// Canonical field names shared with the merge engine.
const (
	FieldName            = "name"
	FieldEmail           = "email"
	FieldPhone           = "phone"
	FieldLinkedIn        = "linkedin"
	FieldGitHub          = "github"
	FieldEducation       = "education"
	FieldSkills          = "skills"
	FieldExperienceYears = "experience_years"
	FieldCompanies       = "companies"
	FieldProjects        = "projects"
	FieldCertifications  = "certifications"

	FieldTitle       = "title"
	FieldSkillsHard  = "skills_hard"
	FieldSkillsSoft  = "skills_soft"
	FieldExpMinYears = "experience_min_years"
	FieldExpMaxYears = "experience_max_years"
	FieldExpLevel    = "experience_level"
	FieldExpDomains  = "experience_domains"
)

// Extractor proposes candidates for one or more fields.
type Extractor interface {
	Name() string
	Extract(text string, ctx *vocab.Context) []schema.Candidate
}

// ResumeExtractors returns the rule engines run in resume mode.
func ResumeExtractors(urls []string) []Extractor {
	return []Extractor{
		basicInfoExtractor{urls: urls},
		resumeSkillsExtractor{},
		educationEntriesExtractor{},
		experienceYearsExtractor{},
		companiesExtractor{},
		resumeProjectsExtractor{},
		certificationsExtractor{},
	}
}

// JobExtractors returns the rule engines run in job-description mode.
func JobExtractors() []Extractor {
	return []Extractor{
		jobTitleExtractor{},
		jobSkillsExtractor{},
		experienceReqExtractor{},
		degreeMentionsExtractor{},
		jobProjectsExtractor{},
		certificationsExtractor{},
	}
}

type basicInfoExtractor struct{ urls []string }

func (basicInfoExtractor) Name() string { return "basic_info" }

func (e basicInfoExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	info := ExtractBasicInfo(text, e.urls)
	var out []schema.Candidate
	out = append(out, schema.Candidates(FieldName, e.Name(), info.Name)...)
	out = append(out, schema.Candidates(FieldEmail, e.Name(), info.Emails...)...)
	out = append(out, schema.Candidates(FieldPhone, e.Name(), info.Phones...)...)
	if info.LinkedIn != "" {
		out = append(out, schema.Candidates(FieldLinkedIn, e.Name(), info.LinkedIn)...)
	}
	if info.GitHub != "" {
		out = append(out, schema.Candidates(FieldGitHub, e.Name(), info.GitHub)...)
	}
	return out
}

type resumeSkillsExtractor struct{}

func (resumeSkillsExtractor) Name() string { return "skills" }

func (e resumeSkillsExtractor) Extract(text string, ctx *vocab.Context) []schema.Candidate {
	hard, _ := ExtractSkills(text, ctx)
	return schema.Candidates(FieldSkills, e.Name(), hard...)
}

type jobSkillsExtractor struct{}

func (jobSkillsExtractor) Name() string { return "skills" }

func (e jobSkillsExtractor) Extract(text string, ctx *vocab.Context) []schema.Candidate {
	hard, soft := ExtractSkills(text, ctx)
	out := schema.Candidates(FieldSkillsHard, e.Name(), hard...)
	return append(out, schema.Candidates(FieldSkillsSoft, e.Name(), soft...)...)
}

type educationEntriesExtractor struct{}

func (educationEntriesExtractor) Name() string { return "education" }

func (e educationEntriesExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldEducation, e.Name(), ExtractEducationEntries(text)...)
}

type degreeMentionsExtractor struct{}

func (degreeMentionsExtractor) Name() string { return "education" }

func (e degreeMentionsExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldEducation, e.Name(), ExtractDegreeMentions(text)...)
}

type experienceYearsExtractor struct{}

func (experienceYearsExtractor) Name() string { return "experience" }

func (e experienceYearsExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldExperienceYears, e.Name(), ExtractExperienceYears(text))
}

type experienceReqExtractor struct{}

func (experienceReqExtractor) Name() string { return "experience" }

func (e experienceReqExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	req := ExtractExperienceReq(text)
	var out []schema.Candidate
	if req.MinYears != nil {
		out = append(out, schema.Candidates(FieldExpMinYears, e.Name(), strconv.Itoa(*req.MinYears))...)
	}
	if req.MaxYears != nil {
		out = append(out, schema.Candidates(FieldExpMaxYears, e.Name(), strconv.Itoa(*req.MaxYears))...)
	}
	if req.Level != "" {
		out = append(out, schema.Candidates(FieldExpLevel, e.Name(), req.Level)...)
	}
	out = append(out, schema.Candidates(FieldExpDomains, e.Name(), req.Domains...)...)
	return out
}

type companiesExtractor struct{}

func (companiesExtractor) Name() string { return "companies" }

func (e companiesExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldCompanies, e.Name(), ExtractCompanies(text)...)
}

type resumeProjectsExtractor struct{}

func (resumeProjectsExtractor) Name() string { return "projects" }

func (e resumeProjectsExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldProjects, e.Name(), FormatProjects(ExtractProjects(text))...)
}

type jobProjectsExtractor struct{}

func (jobProjectsExtractor) Name() string { return "projects" }

func (e jobProjectsExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldProjects, e.Name(), ExtractProjectMentions(text)...)
}

type certificationsExtractor struct{}

func (certificationsExtractor) Name() string { return "certifications" }

func (e certificationsExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldCertifications, e.Name(), ExtractCertifications(text)...)
}

type jobTitleExtractor struct{}

func (jobTitleExtractor) Name() string { return "title" }

func (e jobTitleExtractor) Extract(text string, _ *vocab.Context) []schema.Candidate {
	return schema.Candidates(FieldTitle, e.Name(), segment.ExtractTitle(text))
}
