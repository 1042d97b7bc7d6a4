// Package lifecycle holds the submission state machine:
//
//	not_submitted -> {submitted, late} -> {graded, returned}
//	returned -> {submitted, late}
//
// Functions here mutate the passed models in memory only. Persisting them is
// the caller's job.
package lifecycle

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

type SubmitInput struct {
	Content         *string
	SubmissionNotes *string
	AttachmentURLs  []string
}

type GradeInput struct {
	Grade           float64
	TeacherFeedback *string
	PrivateNotes    *string
	NeedsRevision   bool
}

// FinalGrade applies the late penalty: grade*(1-latePenalty) when late.
func FinalGrade(grade, latePenalty float64, isLate bool) float64 {
	if !isLate {
		return grade
	}
	return grade * (1 - latePenalty)
}

// CheckTaskOpen validates the task-level preconditions of a submission. It
// does not look at who is submitting.
func CheckTaskOpen(task *model.TaskModel, now time.Time) error {
	if !task.IsActive {
		return apperr.NotFound("task not found")
	}
	if task.IsExam() {
		return apperr.InvalidState("exam reminders do not accept submissions")
	}
	switch task.Status {
	case model.TaskStatusPublished:
	case model.TaskStatusClosed:
		return apperr.InvalidState("task is closed")
	default:
		return apperr.InvalidState("task is not published")
	}
	if task.AvailableFrom != nil && now.Before(*task.AvailableFrom) {
		return apperr.InvalidState("task is not available yet")
	}
	if now.After(task.DueDate) && !task.AllowLateSubmission {
		return apperr.InvalidState("due date has passed and late submissions are not allowed")
	}
	return nil
}

// CheckSubmittable is CheckTaskOpen plus the per-submission rules.
func CheckSubmittable(task *model.TaskModel, sub *model.TaskSubmissionModel, in SubmitInput, now time.Time) error {
	if err := CheckTaskOpen(task, now); err != nil {
		return err
	}
	if sub.HasBeenSubmitted() && !sub.NeedsRevision {
		return apperr.InvalidState("task already submitted")
	}
	if task.RequiresFile && len(nonBlank(in.AttachmentURLs)) == 0 {
		return apperr.InvalidState("this task requires a file attachment")
	}
	return nil
}

// ApplySubmission moves sub to submitted or late.
func ApplySubmission(task *model.TaskModel, sub *model.TaskSubmissionModel, in SubmitInput, now time.Time) error {
	if err := CheckSubmittable(task, sub, in, now); err != nil {
		return err
	}

	late := now.After(task.DueDate)
	if late {
		sub.Status = model.SubmissionStatusLate
	} else {
		sub.Status = model.SubmissionStatusSubmitted
	}
	sub.IsLate = late

	if sub.FirstSubmittedAt == nil {
		t := now
		sub.FirstSubmittedAt = &t
		if sub.AttemptNumber < 1 {
			sub.AttemptNumber = 1
		}
	} else {
		sub.AttemptNumber++
	}
	t := now
	sub.SubmittedAt = &t

	sub.Content = in.Content
	sub.SubmissionNotes = in.SubmissionNotes
	sub.AttachmentURLs = nonBlank(in.AttachmentURLs)
	sub.NeedsRevision = false
	sub.IsGraded = false
	return nil
}

// ApplyGrade grades sub, or returns it for revision when in.NeedsRevision.
// A returned submission keeps its provisional grade but is not graded.
func ApplyGrade(task *model.TaskModel, sub *model.TaskSubmissionModel, in GradeInput, graderID uuid.UUID, now time.Time) error {
	if !sub.HasBeenSubmitted() {
		return apperr.InvalidState("cannot grade a task that was not submitted")
	}
	if in.Grade < 0 || in.Grade > task.PointsScale() {
		return apperr.InvalidState("grade must be between 0 and the task max points")
	}

	g := in.Grade
	fg := FinalGrade(g, task.LatePenalty, sub.IsLate)
	sub.Grade = &g
	sub.FinalGrade = &fg
	if in.TeacherFeedback != nil {
		sub.TeacherFeedback = in.TeacherFeedback
	}
	if in.PrivateNotes != nil {
		sub.PrivateNotes = in.PrivateNotes
	}

	if in.NeedsRevision {
		sub.Status = model.SubmissionStatusReturned
		sub.NeedsRevision = true
		sub.IsGraded = false
	} else {
		sub.Status = model.SubmissionStatusGraded
		sub.NeedsRevision = false
		sub.IsGraded = true
	}
	t := now
	sub.GradedAt = &t
	gb := graderID
	sub.GradedBy = &gb
	return nil
}

func nonBlank(urls []string) []string {
	out := make([]string, 0, len(urls))
	for _, u := range urls {
		if u = strings.TrimSpace(u); u != "" {
			out = append(out, u)
		}
	}
	return out
}
