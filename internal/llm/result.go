package llm

import "errors"

// FailReason classifies why no model data is available.
type FailReason string

const (
	ReasonAuth      FailReason = "auth"
	ReasonTimeout   FailReason = "timeout"
	ReasonTransport FailReason = "transport"
	ReasonStatus    FailReason = "status"
	ReasonParse     FailReason = "parse"
)

// Failure is a structured extraction failure. It is data, not control flow:
// callers merge around it instead of aborting.
type Failure struct {
	Reason FailReason
	Err    error
}

func (f *Failure) Error() string {
	return string(f.Reason) + ": " + f.Err.Error()
}

func classify(err error) *Failure {
	switch {
	case errors.Is(err, ErrMissingAPIKey):
		return &Failure{Reason: ReasonAuth, Err: err}
	case isTimeout(err):
		return &Failure{Reason: ReasonTimeout, Err: err}
	default:
		var se *StatusError
		if errors.As(err, &se) {
			return &Failure{Reason: ReasonStatus, Err: err}
		}
		return &Failure{Reason: ReasonTransport, Err: err}
	}
}

// ResumeReply is the model's structured answer in resume mode. The zero
// value means "no LLM data".
type ResumeReply struct {
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

// JobReply is the model's structured answer in job-description mode.
type JobReply struct {
	Title              string   `json:"title"`
	SkillsHard         []string `json:"skills_hard"`
	SkillsSoft         []string `json:"skills_soft"`
	ExperienceMinYears *int     `json:"experience_min_years"`
	ExperienceMaxYears *int     `json:"experience_max_years"`
	Education          []string `json:"education"`
	Projects           []string `json:"projects"`
	Certifications     []string `json:"certifications"`
	OtherRequirements  []string `json:"other_requirements"`
}

// ResumeResult carries either a parsed resume reply or a failure reason,
// never both.
type ResumeResult struct {
	Reply   ResumeReply
	Failure *Failure
}

// OK reports whether model data is available.
func (r ResumeResult) OK() bool { return r.Failure == nil }

// JobResult carries either a parsed job reply or a failure reason.
type JobResult struct {
	Reply   JobReply
	Failure *Failure
}

func (r JobResult) OK() bool { return r.Failure == nil }
