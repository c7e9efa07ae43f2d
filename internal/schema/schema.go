// Package schema defines the canonical records produced by the parse
// pipeline and the Candidate type heuristic extractors emit.
package schema

// Resume is the canonical record for resume mode. Every field is always
// present in serialized output; absence is an empty string or empty list,
// never a missing key.
type Resume struct {
	Name            string   `json:"name"`
	Email           string   `json:"email"`
	Phone           string   `json:"phone"`
	LinkedIn        string   `json:"linkedin"`
	GitHub          string   `json:"github"`
	Education       []string `json:"education"`
	Skills          []string `json:"skills"`
	ExperienceYears string   `json:"experience_years"`
	Companies       []string `json:"companies"`
	Projects        []string `json:"projects"`
	Certifications  []string `json:"certifications"`
	Summary         string   `json:"summary"`
}

// NewResume returns a resume with every list field initialized so the record
// serializes with [] rather than null.
func NewResume() Resume {
	return Resume{
		Education:      []string{},
		Skills:         []string{},
		Companies:      []string{},
		Projects:       []string{},
		Certifications: []string{},
	}
}

// Experience is the experience block of a job posting. Min/Max are nil when
// the posting does not state them; they serialize as null.
type Experience struct {
	MinYears *int     `json:"min_years"`
	MaxYears *int     `json:"max_years"`
	Level    string   `json:"level"`
	Domains  []string `json:"domains"`
}

// JobPosting is the canonical record for job-description mode.
type JobPosting struct {
	Title             string     `json:"title"`
	SkillsHard        []string   `json:"skills_hard"`
	SkillsSoft        []string   `json:"skills_soft"`
	Experience        Experience `json:"experience"`
	Education         []string   `json:"education"`
	Certifications    []string   `json:"certifications"`
	Projects          []string   `json:"projects"`
	OtherRequirements []string   `json:"other_requirements"`
}

// NewJobPosting returns a job posting with every list field initialized.
func NewJobPosting() JobPosting {
	return JobPosting{
		SkillsHard:        []string{},
		SkillsSoft:        []string{},
		Experience:        Experience{Domains: []string{}},
		Education:         []string{},
		Certifications:    []string{},
		Projects:          []string{},
		OtherRequirements: []string{},
	}
}

// Candidate is one extractor's proposed value for one output field.
type Candidate struct {
	Field  string `json:"field"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Candidates builds a candidate list for a single field, preserving the
// order the values were discovered in.
func Candidates(field, source string, values ...string) []Candidate {
	out := make([]Candidate, 0, len(values))
	for _, v := range values {
		out = append(out, Candidate{Field: field, Value: v, Source: source})
	}
	return out
}

// Dedupe removes duplicate strings keeping the first occurrence.
func Dedupe(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// RawDocument is one parse request's input: the extracted text plus any
// hyperlink URLs the upstream text extractor collected separately.
type RawDocument struct {
	Text string
	URLs []string
}
