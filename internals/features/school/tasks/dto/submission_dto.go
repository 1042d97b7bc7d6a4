package dto

import (
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/tasks/model"
)

type Attachment struct {
	URL  string `json:"url"`
	Kind string `json:"kind"`
}

type SubmissionResponse struct {
	ID               uuid.UUID              `json:"id"`
	TaskID           uuid.UUID              `json:"taskId"`
	StudentID        uuid.UUID              `json:"studentId"`
	StudentName      string                 `json:"studentName,omitempty"`
	Status           model.SubmissionStatus `json:"status"`
	DisplayStatus    string                 `json:"displayStatus"`
	Content          *string                `json:"content"`
	SubmissionNotes  *string                `json:"submissionNotes"`
	Attachments      []Attachment           `json:"attachments"`
	IsLate           bool                   `json:"isLate"`
	Grade            *float64               `json:"grade"`
	FinalGrade       *float64               `json:"finalGrade"`
	IsGraded         bool                   `json:"isGraded"`
	TeacherFeedback  *string                `json:"teacherFeedback"`
	PrivateNotes     *string                `json:"privateNotes,omitempty"`
	NeedsRevision    bool                   `json:"needsRevision"`
	AttemptNumber    int                    `json:"attemptNumber"`
	FirstSubmittedAt *time.Time             `json:"firstSubmittedAt"`
	SubmittedAt      *time.Time             `json:"submittedAt"`
	GradedAt         *time.Time             `json:"gradedAt"`
}

// FromSubmission maps a row. Private notes are only kept when withPrivate
// (teacher and admin views).
func FromSubmission(s *model.TaskSubmissionModel, displayStatus string, withPrivate bool) SubmissionResponse {
	atts := make([]Attachment, 0, len(s.AttachmentURLs))
	for _, u := range s.AttachmentURLs {
		atts = append(atts, Attachment{URL: u, Kind: constants.AttachmentKindName(constants.DetectAttachmentKind(u))})
	}
	out := SubmissionResponse{
		ID:               s.ID,
		TaskID:           s.TaskID,
		StudentID:        s.StudentID,
		Status:           s.Status,
		DisplayStatus:    displayStatus,
		Content:          s.Content,
		SubmissionNotes:  s.SubmissionNotes,
		Attachments:      atts,
		IsLate:           s.IsLate,
		Grade:            s.Grade,
		FinalGrade:       s.FinalGrade,
		IsGraded:         s.IsGraded,
		TeacherFeedback:  s.TeacherFeedback,
		NeedsRevision:    s.NeedsRevision,
		AttemptNumber:    s.AttemptNumber,
		FirstSubmittedAt: s.FirstSubmittedAt,
		SubmittedAt:      s.SubmittedAt,
		GradedAt:         s.GradedAt,
	}
	if withPrivate {
		out.PrivateNotes = s.PrivateNotes
	}
	return out
}
