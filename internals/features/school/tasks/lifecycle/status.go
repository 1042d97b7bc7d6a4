package lifecycle

import (
	"time"

	"schoolhub_backend/internals/features/school/tasks/model"
)

// DisplayStatus is derived on every read and never stored.
type DisplayStatus string

const (
	DisplayPending       DisplayStatus = "pending"
	DisplayOverdue       DisplayStatus = "overdue"
	DisplayClosed        DisplayStatus = "closed"
	DisplaySubmitted     DisplayStatus = "submitted"
	DisplayLate          DisplayStatus = "late"
	DisplayGraded        DisplayStatus = "graded"
	DisplayReturned      DisplayStatus = "returned"
	DisplayExamReminder  DisplayStatus = "exam_reminder"
	DisplayExamCompleted DisplayStatus = "exam_completed"
)

// DeriveDisplayStatus computes what a student-facing view shows for the
// task. sub may be nil when the caller has no submission row. Exam
// reminders only compare against the due date.
func DeriveDisplayStatus(task *model.TaskModel, sub *model.TaskSubmissionModel, now time.Time) DisplayStatus {
	if task.IsExam() {
		if now.After(task.DueDate) {
			return DisplayExamCompleted
		}
		return DisplayExamReminder
	}

	if sub != nil {
		switch sub.Status {
		case model.SubmissionStatusGraded:
			return DisplayGraded
		case model.SubmissionStatusReturned:
			return DisplayReturned
		case model.SubmissionStatusLate:
			return DisplayLate
		case model.SubmissionStatusSubmitted:
			return DisplaySubmitted
		}
	}

	if now.After(task.DueDate) {
		return DisplayOverdue
	}
	if task.Status == model.TaskStatusClosed {
		return DisplayClosed
	}
	return DisplayPending
}
