// file: internals/features/school/tasks/dto/task_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/tasks/model"
)

/* =========================================================
   REQUESTS
========================================================= */

type CreateTaskRequest struct {
	SubjectAssignmentID uuid.UUID   `json:"subjectAssignmentId" validate:"required"`
	Title               string      `json:"title" validate:"required,min=1,max=200"`
	Description         string      `json:"description" validate:"omitempty,max=10000"`
	TaskType            string      `json:"taskType" validate:"omitempty,oneof=regular exam_reminder"`
	AvailableFrom       *time.Time  `json:"availableFrom"`
	DueDate             time.Time   `json:"dueDate" validate:"required"`
	MaxPoints           *float64    `json:"maxPoints" validate:"omitempty,gt=0,lte=1000"`
	AllowLateSubmission bool        `json:"allowLateSubmission"`
	LatePenalty         *float64    `json:"latePenalty" validate:"omitempty,gte=0,lte=1"`
	RequiresFile        bool        `json:"requiresFile"`
	TargetStudentIDs    []uuid.UUID `json:"targetStudentIds" validate:"omitempty,max=500"`
}

func (r *CreateTaskRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	if r.TaskType == "" {
		r.TaskType = string(model.TaskTypeRegular)
	}
}

func (r *CreateTaskRequest) ToModel(teacherID uuid.UUID) *model.TaskModel {
	m := &model.TaskModel{
		SubjectAssignmentID: r.SubjectAssignmentID,
		TeacherID:           teacherID,
		Title:               r.Title,
		Description:         r.Description,
		TaskType:            model.TaskType(r.TaskType),
		Status:              model.TaskStatusDraft,
		AvailableFrom:       r.AvailableFrom,
		DueDate:             r.DueDate.UTC(),
		MaxPoints:           model.DefaultMaxPoints,
		AllowLateSubmission: r.AllowLateSubmission,
		RequiresFile:        r.RequiresFile,
		IsActive:            true,
	}
	if r.MaxPoints != nil {
		m.MaxPoints = *r.MaxPoints
	}
	if r.LatePenalty != nil {
		m.LatePenalty = *r.LatePenalty
	}
	if len(r.TargetStudentIDs) > 0 {
		ids := make([]string, 0, len(r.TargetStudentIDs))
		for _, id := range r.TargetStudentIDs {
			ids = append(ids, id.String())
		}
		m.TargetStudentIDs = ids
	}
	return m
}

type SubmitTaskRequest struct {
	Content         *string  `json:"content" validate:"omitempty,max=20000"`
	SubmissionNotes *string  `json:"submissionNotes" validate:"omitempty,max=2000"`
	AttachmentURLs  []string `json:"attachmentUrls" validate:"omitempty,max=10,dive,url"`
}

type GradeSubmissionRequest struct {
	Grade           *float64 `json:"grade" validate:"required,gte=0"`
	TeacherFeedback *string  `json:"teacherFeedback" validate:"omitempty,max=5000"`
	PrivateNotes    *string  `json:"privateNotes" validate:"omitempty,max=5000"`
	NeedsRevision   bool     `json:"needsRevision"`
}

// ListTasksQuery is bound from the query string.
type ListTasksQuery struct {
	Status              string `query:"status" validate:"omitempty,oneof=draft published closed"`
	SubjectAssignmentID string `query:"subject_assignment_id" validate:"omitempty,uuid"`
}

/* =========================================================
   RESPONSES
========================================================= */

type TaskResponse struct {
	ID                  uuid.UUID           `json:"id"`
	SubjectAssignmentID uuid.UUID           `json:"subjectAssignmentId"`
	TeacherID           uuid.UUID           `json:"teacherId"`
	Title               string              `json:"title"`
	Description         string              `json:"description"`
	TaskType            model.TaskType      `json:"taskType"`
	Status              model.TaskStatus    `json:"status"`
	AvailableFrom       *time.Time          `json:"availableFrom"`
	DueDate             time.Time           `json:"dueDate"`
	MaxPoints           float64             `json:"maxPoints"`
	AllowLateSubmission bool                `json:"allowLateSubmission"`
	LatePenalty         float64             `json:"latePenalty"`
	RequiresFile        bool                `json:"requiresFile"`
	TargetStudentIDs    []string            `json:"targetStudentIds"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
	DisplayStatus       string              `json:"displayStatus,omitempty"`
	MySubmission        *SubmissionResponse `json:"mySubmission,omitempty"`
}

func FromTask(t *model.TaskModel) TaskResponse {
	targets := []string(t.TargetStudentIDs)
	if targets == nil {
		targets = []string{}
	}
	return TaskResponse{
		ID:                  t.ID,
		SubjectAssignmentID: t.SubjectAssignmentID,
		TeacherID:           t.TeacherID,
		Title:               t.Title,
		Description:         t.Description,
		TaskType:            t.TaskType,
		Status:              t.Status,
		AvailableFrom:       t.AvailableFrom,
		DueDate:             t.DueDate,
		MaxPoints:           t.MaxPoints,
		AllowLateSubmission: t.AllowLateSubmission,
		LatePenalty:         t.LatePenalty,
		RequiresFile:        t.RequiresFile,
		TargetStudentIDs:    targets,
		CreatedAt:           t.CreatedAt,
		UpdatedAt:           t.UpdatedAt,
	}
}
