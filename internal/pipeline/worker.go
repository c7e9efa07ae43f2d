package pipeline

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/recruitkit/cvparse/internal/parse"
	"github.com/recruitkit/cvparse/internal/store"
	"github.com/recruitkit/cvparse/internal/textract"
)

// Worker processes a single resume ingestion job.
type Worker struct {
	parser  *parse.Parser
	records *store.Client
	log     *slog.Logger

	pdfFallback bool
}

func NewWorker(parser *parse.Parser, records *store.Client, log *slog.Logger, pdfFallback bool) *Worker {
	return &Worker{
		parser:      parser,
		records:     records,
		log:         log,
		pdfFallback: pdfFallback,
	}
}

// Process runs the full ingest pipeline for a job: extract text from the
// uploaded file, parse it into a canonical resume, then write the
// applicant record to the store.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)

	// Phase 1: extract text.
	job.SetStatus(StatusExtractingText, "extracting_text")
	ex, err := textract.ForFile(job.Filename)
	if err != nil {
		log.Error("unsupported format", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "extracting_text")
		return
	}
	if pdf, ok := ex.(*textract.PDFExtractor); ok {
		pdf.FallbackPdftotext = w.pdfFallback
	}

	doc, err := ex.Extract(bytes.NewReader(job.FileData()), job.Filename)
	if err != nil {
		log.Error("text extraction failed", "error", err)
		job.AddError(fmt.Sprintf("extract text: %s", err))
		job.SetStatus(StatusFailed, "extracting_text")
		return
	}
	if len(bytes.TrimSpace([]byte(doc.Text))) == 0 {
		log.Warn("no extractable text")
		job.AddError("no extractable text")
		job.SetStatus(StatusFailed, "extracting_text")
		return
	}

	// The applicant ID is the hash of the extracted text, so re-uploads
	// of the same resume land on the same record.
	job.ContentHash = ContentHashHex([]byte(doc.Text))
	if job.ApplicantID == "" {
		job.SetApplicantID(job.ContentHash[:16])
	}
	log = log.With("applicant_id", job.ApplicantID)

	// Phase 1.5: dedup check.
	existing, err := w.records.GetApplicant(ctx, job.ApplicantID)
	if err != nil {
		log.Warn("dedup check failed, proceeding", "error", err)
	} else if existing != nil {
		log.Info("duplicate resume, skipping")
		job.SetResult(existing.Resume)
		job.SetStatus(StatusDupSkipped, "dedup")
		return
	}

	// Phase 2: parse.
	job.SetStatus(StatusParsing, "parsing")
	resume, outcome := w.parser.ParseResume(ctx, doc)
	job.SetModelOutcome(outcome.Used, outcome.FailReason)
	job.SetResult(&resume)
	log.Info("parsed resume", "model_used", outcome.Used,
		"skills", len(resume.Skills), "companies", len(resume.Companies))

	// Phase 3: store, retrying transient failures.
	job.SetStatus(StatusStoring, "storing")
	rec := store.ApplicantRecord{
		Resume:   &resume,
		Filename: job.Filename,
		Source:   "cvparse:" + job.ID,
		ParsedAt: time.Now().UTC(),
	}

	var lastErr error
	for attempt := range MaxRetries {
		lastErr = w.records.PutApplicant(ctx, job.ApplicantID, rec)
		if lastErr == nil || !IsRetryable(lastErr) {
			break
		}
		log.Warn("retryable store error", "attempt", attempt, "error", lastErr)
		select {
		case <-time.After(Backoff(attempt)):
		case <-ctx.Done():
			job.AddError(ctx.Err().Error())
			job.SetStatus(StatusFailed, "storing")
			return
		}
	}
	if lastErr != nil {
		log.Error("store failed", "error", lastErr)
		job.AddError(fmt.Sprintf("store: %s", lastErr))
		job.SetStatus(StatusFailed, "storing")
		return
	}

	log.Info("ingest complete")
	job.SetStatus(StatusCompleted, "done")
}
