package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// not_submitted -> {submitted, late} -> {graded, returned}; returned -> {submitted, late}
type SubmissionStatus string

const (
	SubmissionStatusNotSubmitted SubmissionStatus = "not_submitted"
	SubmissionStatusSubmitted    SubmissionStatus = "submitted"
	SubmissionStatusLate         SubmissionStatus = "late"
	SubmissionStatusGraded       SubmissionStatus = "graded"
	SubmissionStatusReturned     SubmissionStatus = "returned"
)

// TaskSubmissionModel is unique per (task, student). A not_submitted row is
// never graded (also enforced by a CHECK constraint).
type TaskSubmissionModel struct {
	ID               uuid.UUID        `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	TaskID           uuid.UUID        `gorm:"type:uuid;not null;column:task_id" json:"task_id"`
	StudentID        uuid.UUID        `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
	Status           SubmissionStatus `gorm:"type:varchar(16);not null;default:'not_submitted';column:status" json:"status"`
	Content          *string          `gorm:"type:text;column:content" json:"content,omitempty"`
	SubmissionNotes  *string          `gorm:"type:text;column:submission_notes" json:"submission_notes,omitempty"`
	AttachmentURLs   pq.StringArray   `gorm:"type:text[];column:attachment_urls" json:"attachment_urls,omitempty"`
	IsLate           bool             `gorm:"not null;default:false;column:is_late" json:"is_late"`
	Grade            *float64         `gorm:"type:numeric(6,2);column:grade" json:"grade,omitempty"`
	FinalGrade       *float64         `gorm:"type:numeric(6,2);column:final_grade" json:"final_grade,omitempty"`
	IsGraded         bool             `gorm:"not null;default:false;column:is_graded" json:"is_graded"`
	TeacherFeedback  *string          `gorm:"type:text;column:teacher_feedback" json:"teacher_feedback,omitempty"`
	PrivateNotes     *string          `gorm:"type:text;column:private_notes" json:"-"`
	NeedsRevision    bool             `gorm:"not null;default:false;column:needs_revision" json:"needs_revision"`
	AttemptNumber    int              `gorm:"not null;default:1;column:attempt_number" json:"attempt_number"`
	FirstSubmittedAt *time.Time       `gorm:"type:timestamptz;column:first_submitted_at" json:"first_submitted_at,omitempty"`
	SubmittedAt      *time.Time       `gorm:"type:timestamptz;column:submitted_at" json:"submitted_at,omitempty"`
	GradedAt         *time.Time       `gorm:"type:timestamptz;column:graded_at" json:"graded_at,omitempty"`
	GradedBy         *uuid.UUID       `gorm:"type:uuid;column:graded_by" json:"graded_by,omitempty"`
	IsActive         bool             `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt        time.Time        `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt        time.Time        `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Task *TaskModel `gorm:"foreignKey:TaskID" json:"task,omitempty"`
}

func (TaskSubmissionModel) TableName() string { return "task_submissions" }

// HasBeenSubmitted reports whether the student has handed in at least once.
func (s *TaskSubmissionModel) HasBeenSubmitted() bool {
	return s.Status != SubmissionStatusNotSubmitted
}
