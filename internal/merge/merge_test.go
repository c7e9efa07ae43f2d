package merge

import (
	"errors"
	"reflect"
	"testing"

	"github.com/recruitkit/cvparse/internal/extractors"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/schema"
)

func TestParseProjectPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    ProjectPolicy
		wantErr bool
	}{
		{"", PreferModel, false},
		{"prefer_model", PreferModel, false},
		{"prefer_rules", PreferRules, false},
		{"bogus", PreferModel, true},
	}
	for _, tt := range tests {
		got, err := ParseProjectPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseProjectPolicy(%q): unexpected error state %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseProjectPolicy(%q): expected %v, got %v", tt.in, tt.want, got)
		}
	}
}

func TestProjectPolicy_String(t *testing.T) {
	if PreferModel.String() != "prefer_model" {
		t.Errorf("expected prefer_model, got %q", PreferModel.String())
	}
	if PreferRules.String() != "prefer_rules" {
		t.Errorf("expected prefer_rules, got %q", PreferRules.String())
	}
}

func TestResume_ModelWins(t *testing.T) {
	res := llm.ResumeResult{Reply: llm.ResumeReply{
		Name:   "Jane Doe",
		Email:  "jane@model.dev",
		Skills: []string{"go", "go", "python"},
	}}
	cands := []schema.Candidate{
		{Field: extractors.FieldName, Value: "J. Doe", Source: "basic_info"},
		{Field: extractors.FieldEmail, Value: "jane@rules.dev", Source: "basic_info"},
		{Field: extractors.FieldSkills, Value: "java", Source: "skills"},
	}

	out := Resume(res, cands)
	if out.Name != "Jane Doe" {
		t.Errorf("expected model name, got %q", out.Name)
	}
	if out.Email != "jane@model.dev" {
		t.Errorf("expected model email, got %q", out.Email)
	}
	if !reflect.DeepEqual(out.Skills, []string{"go", "python"}) {
		t.Errorf("expected deduped model skills, got %v", out.Skills)
	}
}

func TestResume_HeuristicFallback(t *testing.T) {
	res := llm.ResumeResult{
		Failure: &llm.Failure{Reason: llm.ReasonTimeout, Err: errors.New("deadline")},
	}
	cands := []schema.Candidate{
		{Field: extractors.FieldName, Value: "John Smith", Source: "basic_info"},
		{Field: extractors.FieldPhone, Value: "+1 555 0100", Source: "basic_info"},
		{Field: extractors.FieldSkills, Value: "python", Source: "skills"},
		{Field: extractors.FieldSkills, Value: "python", Source: "skills"},
		{Field: extractors.FieldCompanies, Value: "Acme Corp", Source: "companies"},
	}

	out := Resume(res, cands)
	if out.Name != "John Smith" {
		t.Errorf("expected heuristic name, got %q", out.Name)
	}
	if out.Phone != "+1 555 0100" {
		t.Errorf("expected heuristic phone, got %q", out.Phone)
	}
	if !reflect.DeepEqual(out.Skills, []string{"python"}) {
		t.Errorf("expected deduped heuristic skills, got %v", out.Skills)
	}
	if !reflect.DeepEqual(out.Companies, []string{"Acme Corp"}) {
		t.Errorf("expected heuristic companies, got %v", out.Companies)
	}
}

func TestResume_EveryFieldPresent(t *testing.T) {
	out := Resume(llm.ResumeResult{}, nil)
	for name, list := range map[string][]string{
		"education":      out.Education,
		"skills":         out.Skills,
		"companies":      out.Companies,
		"projects":       out.Projects,
		"certifications": out.Certifications,
	} {
		if list == nil {
			t.Errorf("expected %s to be an empty list, got nil", name)
		}
		if len(list) != 0 {
			t.Errorf("expected %s empty, got %v", name, list)
		}
	}
	if out.Name != "" || out.Summary != "" {
		t.Errorf("expected empty scalars, got %+v", out)
	}
}

func TestResume_EmptyCandidateValuesDropped(t *testing.T) {
	cands := []schema.Candidate{
		{Field: extractors.FieldName, Value: "", Source: "basic_info"},
		{Field: extractors.FieldName, Value: "Jane Doe", Source: "basic_info"},
	}
	out := Resume(llm.ResumeResult{}, cands)
	if out.Name != "Jane Doe" {
		t.Errorf("expected empty candidate skipped, got %q", out.Name)
	}
}

func TestJob_ModelWins(t *testing.T) {
	minY := 3
	res := llm.JobResult{Reply: llm.JobReply{
		Title:              "Backend Engineer",
		SkillsHard:         []string{"go"},
		ExperienceMinYears: &minY,
		OtherRequirements:  []string{"on-call rotation"},
	}}
	cands := []schema.Candidate{
		{Field: extractors.FieldTitle, Value: "Engineer", Source: "title"},
		{Field: extractors.FieldSkillsHard, Value: "java", Source: "skills"},
		{Field: extractors.FieldExpMinYears, Value: "5", Source: "experience"},
	}

	out := Job(res, cands, PreferModel)
	if out.Title != "Backend Engineer" {
		t.Errorf("expected model title, got %q", out.Title)
	}
	if !reflect.DeepEqual(out.SkillsHard, []string{"go"}) {
		t.Errorf("expected model hard skills, got %v", out.SkillsHard)
	}
	if out.Experience.MinYears == nil || *out.Experience.MinYears != 3 {
		t.Errorf("expected model min years 3, got %v", out.Experience.MinYears)
	}
	if !reflect.DeepEqual(out.OtherRequirements, []string{"on-call rotation"}) {
		t.Errorf("expected model other requirements, got %v", out.OtherRequirements)
	}
}

func TestJob_HeuristicYearsParsed(t *testing.T) {
	cands := []schema.Candidate{
		{Field: extractors.FieldExpMinYears, Value: "5", Source: "experience"},
		{Field: extractors.FieldExpMaxYears, Value: "8", Source: "experience"},
		{Field: extractors.FieldExpLevel, Value: "senior", Source: "experience"},
		{Field: extractors.FieldExpDomains, Value: "backend", Source: "experience"},
	}
	out := Job(llm.JobResult{}, cands, PreferModel)
	if out.Experience.MinYears == nil || *out.Experience.MinYears != 5 {
		t.Errorf("expected min years 5, got %v", out.Experience.MinYears)
	}
	if out.Experience.MaxYears == nil || *out.Experience.MaxYears != 8 {
		t.Errorf("expected max years 8, got %v", out.Experience.MaxYears)
	}
	if out.Experience.Level != "senior" {
		t.Errorf("expected level senior, got %q", out.Experience.Level)
	}
	if !reflect.DeepEqual(out.Experience.Domains, []string{"backend"}) {
		t.Errorf("expected domains [backend], got %v", out.Experience.Domains)
	}
}

func TestJob_YearsNilWhenAbsent(t *testing.T) {
	out := Job(llm.JobResult{}, nil, PreferModel)
	if out.Experience.MinYears != nil || out.Experience.MaxYears != nil {
		t.Errorf("expected nil years, got %v / %v",
			out.Experience.MinYears, out.Experience.MaxYears)
	}
	if out.Experience.Domains == nil {
		t.Error("expected domains to be an empty list, got nil")
	}
}

func TestJob_ProjectPolicy(t *testing.T) {
	res := llm.JobResult{Reply: llm.JobReply{
		Projects: []string{"from model"},
	}}
	cands := []schema.Candidate{
		{Field: extractors.FieldProjects, Value: "from rules", Source: "projects"},
	}

	model := Job(res, cands, PreferModel)
	if !reflect.DeepEqual(model.Projects, []string{"from model"}) {
		t.Errorf("prefer_model: expected model projects, got %v", model.Projects)
	}

	rules := Job(res, cands, PreferRules)
	if !reflect.DeepEqual(rules.Projects, []string{"from rules"}) {
		t.Errorf("prefer_rules: expected rule projects, got %v", rules.Projects)
	}
}

func TestJob_ProjectPolicyFallsBack(t *testing.T) {
	res := llm.JobResult{Reply: llm.JobReply{Projects: []string{"from model"}}}

	// prefer_rules with no rule candidates still uses the model.
	out := Job(res, nil, PreferRules)
	if !reflect.DeepEqual(out.Projects, []string{"from model"}) {
		t.Errorf("expected model fallback, got %v", out.Projects)
	}
}

func TestPickYears_InvalidHeuristicIgnored(t *testing.T) {
	if got := pickYears(nil, "several"); got != nil {
		t.Errorf("expected nil for unparseable years, got %v", got)
	}
	if got := pickYears(nil, ""); got != nil {
		t.Errorf("expected nil for empty years, got %v", got)
	}
	n := 2
	if got := pickYears(&n, "7"); got == nil || *got != 2 {
		t.Errorf("expected model years 2, got %v", got)
	}
}
