// Package parse runs the hybrid extraction pipeline: heuristic rule
// engines and the structured LLM extractor run independently, and the merge
// engine reconciles their outputs into a canonical record.
package parse

import (
	"context"
	"log/slog"

	"github.com/recruitkit/cvparse/internal/extractors"
	"github.com/recruitkit/cvparse/internal/llm"
	"github.com/recruitkit/cvparse/internal/merge"
	"github.com/recruitkit/cvparse/internal/normalize"
	"github.com/recruitkit/cvparse/internal/schema"
	"github.com/recruitkit/cvparse/internal/segment"
	"github.com/recruitkit/cvparse/internal/vocab"
)

// Parser owns the per-process extraction context and dependencies. It is
// safe for concurrent use; all per-request state lives on the stack.
type Parser struct {
	ctx    *vocab.Context
	model  *llm.Extractor
	policy merge.ProjectPolicy
	log    *slog.Logger
}

func NewParser(ctx *vocab.Context, model *llm.Extractor, policy merge.ProjectPolicy, log *slog.Logger) *Parser {
	return &Parser{ctx: ctx, model: model, policy: policy, log: log}
}

// ModelOutcome reports whether the remote model contributed to a parse,
// and if not, why.
type ModelOutcome struct {
	Used       bool   `json:"used"`
	FailReason string `json:"fail_reason,omitempty"`
}

func outcome(f *llm.Failure) ModelOutcome {
	if f == nil {
		return ModelOutcome{Used: true}
	}
	return ModelOutcome{FailReason: string(f.Reason)}
}

// ParseResume turns resume text (plus any separately extracted hyperlinks)
// into a canonical resume record. An unreachable or misbehaving model
// degrades to heuristics-only output.
func (p *Parser) ParseResume(ctx context.Context, doc schema.RawDocument) (schema.Resume, ModelOutcome) {
	res := p.model.ExtractResume(ctx, doc.Text)

	var cands []schema.Candidate
	for _, e := range extractors.ResumeExtractors(doc.URLs) {
		cands = append(cands, e.Extract(doc.Text, p.ctx)...)
	}
	return merge.Resume(res, cands), outcome(res.Failure)
}

// ParseJob turns job-description text into a canonical job posting.
func (p *Parser) ParseJob(ctx context.Context, text string) (schema.JobPosting, ModelOutcome) {
	sections := segment.Split(text)
	p.log.Debug("segmented job description", "sections", sections.Len())

	res := p.model.ExtractJob(ctx, text)

	var cands []schema.Candidate
	for _, e := range extractors.JobExtractors() {
		cands = append(cands, e.Extract(text, p.ctx)...)
	}
	cands = normalizeJobCandidates(cands, p.ctx)

	return merge.Job(res, cands, p.policy), outcome(res.Failure)
}

// normalizeJobCandidates maps education candidates onto canonical degree
// labels and hard-skill candidates onto the canonical vocabulary.
func normalizeJobCandidates(cands []schema.Candidate, ctx *vocab.Context) []schema.Candidate {
	out := make([]schema.Candidate, 0, len(cands))
	for _, c := range cands {
		switch c.Field {
		case extractors.FieldEducation:
			c.Value = normalize.Degree(c.Value)
		case extractors.FieldSkillsHard:
			c.Value = normalize.Skill(c.Value, ctx.Skills())
		}
		out = append(out, c)
	}
	return out
}
