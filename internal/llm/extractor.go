package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
)

// Extractor is the structured LLM extraction strategy. Failures never
// escape: every path yields a result the merge engine can consume.
type Extractor struct {
	client Completer
	log    *slog.Logger
}

// NewExtractor wraps a completion client.
func NewExtractor(client Completer, log *slog.Logger) *Extractor {
	return &Extractor{client: client, log: log}
}

// ExtractResume asks the model for a structured resume and parses the reply.
func (e *Extractor) ExtractResume(ctx context.Context, text string) ResumeResult {
	var res ResumeResult
	raw, err := e.client.Complete(ctx, ResumePrompt(text))
	if err != nil {
		res.Failure = classify(err)
		e.log.Warn("llm resume extraction failed", "reason", res.Failure.Reason, "error", err)
		return res
	}
	payload := ExtractJSON(raw)
	if err := json.Unmarshal([]byte(payload), &res.Reply); err != nil {
		res.Reply = ResumeReply{}
		res.Failure = &Failure{Reason: ReasonParse, Err: fmt.Errorf("parse reply: %w (raw: %s)", err, truncate(payload, 200))}
		e.log.Warn("llm resume extraction failed", "reason", ReasonParse, "error", err)
	}
	return res
}

// ExtractJob asks the model for structured job-description fields.
func (e *Extractor) ExtractJob(ctx context.Context, text string) JobResult {
	var res JobResult
	raw, err := e.client.Complete(ctx, JobPrompt(text))
	if err != nil {
		res.Failure = classify(err)
		e.log.Warn("llm job extraction failed", "reason", res.Failure.Reason, "error", err)
		return res
	}
	payload := ExtractJSON(raw)
	if err := json.Unmarshal([]byte(payload), &res.Reply); err != nil {
		res.Reply = JobReply{}
		res.Failure = &Failure{Reason: ReasonParse, Err: fmt.Errorf("parse reply: %w (raw: %s)", err, truncate(payload, 200))}
		e.log.Warn("llm job extraction failed", "reason", ReasonParse, "error", err)
	}
	return res
}
