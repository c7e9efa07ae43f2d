package pipeline

import (
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/recruitkit/cvparse/internal/schema"
)

// JobStatus represents the state of a resume ingestion job.
type JobStatus string

const (
	StatusQueued         JobStatus = "queued"
	StatusExtractingText JobStatus = "extracting_text"
	StatusParsing        JobStatus = "parsing"
	StatusStoring        JobStatus = "storing"
	StatusCompleted      JobStatus = "completed"
	StatusFailed         JobStatus = "failed"
	StatusDupSkipped     JobStatus = "duplicate_skipped"
)

// Job tracks the state of a single resume ingestion.
type Job struct {
	mu sync.Mutex

	ID          string `json:"job_id"`
	ApplicantID string `json:"applicant_id"`

	Status   JobStatus `json:"status"`
	Phase    string    `json:"phase"`
	Filename string    `json:"filename"`

	Progress Progress `json:"progress"`

	ContentHash string    `json:"content_hash,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// Internal: not serialized.
	fileData []byte
	result   *schema.Resume
	errors   []string
}

// Progress tracks processing progress.
type Progress struct {
	ModelUsed       bool     `json:"model_used"`
	ModelFailReason string   `json:"model_fail_reason,omitempty"`
	Errors          []string `json:"errors"`
}

// JobStore is a thread-safe in-memory job registry with TTL eviction.
type JobStore struct {
	mu   sync.Mutex
	jobs map[string]*Job
	ttl  time.Duration
}

func NewJobStore(ttl time.Duration) *JobStore {
	return &JobStore{
		jobs: make(map[string]*Job),
		ttl:  ttl,
	}
}

func (s *JobStore) Put(job *Job) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.jobs[job.ID] = job
}

func (s *JobStore) Get(id string) *Job {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.jobs[id]
}

// Cleanup removes expired jobs.
func (s *JobStore) Cleanup() {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now()
	for id, job := range s.jobs {
		if now.Sub(job.UpdatedAt) > s.ttl {
			delete(s.jobs, id)
		}
	}
}

// SetStatus updates job status atomically.
func (j *Job) SetStatus(status JobStatus, phase string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Status = status
	j.Phase = phase
	j.UpdatedAt = time.Now()
}

// AddError records an error.
func (j *Job) AddError(err string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.errors = append(j.errors, err)
	j.Progress.Errors = j.errors
	j.UpdatedAt = time.Now()
}

// SetModelOutcome records whether the remote model contributed to the parse.
func (j *Job) SetModelOutcome(used bool, failReason string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.Progress.ModelUsed = used
	j.Progress.ModelFailReason = failReason
	j.UpdatedAt = time.Now()
}

// SetFileData sets the raw file bytes for processing.
func (j *Job) SetFileData(data []byte) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.fileData = data
}

// FileData returns the raw file bytes.
func (j *Job) FileData() []byte {
	j.mu.Lock()
	defer j.mu.Unlock()
	return j.fileData
}

// SetResult stores the parsed resume on the job.
func (j *Job) SetResult(r *schema.Resume) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.result = r
	j.UpdatedAt = time.Now()
}

// SetApplicantID records the applicant ID once derived.
func (j *Job) SetApplicantID(id string) {
	j.mu.Lock()
	defer j.mu.Unlock()
	j.ApplicantID = id
	j.UpdatedAt = time.Now()
}

// JobSnapshot is a read-only, JSON-safe copy of job state.
type JobSnapshot struct {
	ID          string         `json:"job_id"`
	ApplicantID string         `json:"applicant_id,omitempty"`
	Status      JobStatus      `json:"status"`
	Phase       string         `json:"phase"`
	Filename    string         `json:"filename"`
	Progress    Progress       `json:"progress"`
	Resume      *schema.Resume `json:"resume,omitempty"`
}

// Snapshot returns a JSON-safe copy of the job state. The parsed resume
// is included once the job has completed.
func (j *Job) Snapshot() JobSnapshot {
	j.mu.Lock()
	defer j.mu.Unlock()
	errs := j.Progress.Errors
	if errs == nil {
		errs = []string{}
	}
	snap := JobSnapshot{
		ID:          j.ID,
		ApplicantID: j.ApplicantID,
		Status:      j.Status,
		Phase:       j.Phase,
		Filename:    j.Filename,
		Progress: Progress{
			ModelUsed:       j.Progress.ModelUsed,
			ModelFailReason: j.Progress.ModelFailReason,
			Errors:          errs,
		},
	}
	if j.Status == StatusCompleted || j.Status == StatusDupSkipped {
		snap.Resume = j.result
	}
	return snap
}

// ContentHashHex computes SHA-256 of content and returns hex string.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
