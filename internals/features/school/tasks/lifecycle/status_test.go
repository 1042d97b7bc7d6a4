package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"schoolhub_backend/internals/features/school/tasks/model"
)

func TestDeriveDisplayStatus(t *testing.T) {
	sub := func(s model.SubmissionStatus) *model.TaskSubmissionModel {
		return &model.TaskSubmissionModel{Status: s}
	}

	task := publishedTask()
	assert.Equal(t, DisplayPending, DeriveDisplayStatus(task, nil, before))
	assert.Equal(t, DisplayPending, DeriveDisplayStatus(task, sub(model.SubmissionStatusNotSubmitted), before))
	assert.Equal(t, DisplayOverdue, DeriveDisplayStatus(task, nil, after))
	assert.Equal(t, DisplayOverdue, DeriveDisplayStatus(task, sub(model.SubmissionStatusNotSubmitted), after))
	assert.Equal(t, DisplaySubmitted, DeriveDisplayStatus(task, sub(model.SubmissionStatusSubmitted), after))
	assert.Equal(t, DisplayLate, DeriveDisplayStatus(task, sub(model.SubmissionStatusLate), after))
	assert.Equal(t, DisplayGraded, DeriveDisplayStatus(task, sub(model.SubmissionStatusGraded), after))
	assert.Equal(t, DisplayReturned, DeriveDisplayStatus(task, sub(model.SubmissionStatusReturned), before))

	closed := publishedTask()
	closed.Status = model.TaskStatusClosed
	assert.Equal(t, DisplayClosed, DeriveDisplayStatus(closed, nil, before))
	assert.Equal(t, DisplayOverdue, DeriveDisplayStatus(closed, nil, after))
}

func TestDeriveDisplayStatusExamIgnoresSubmission(t *testing.T) {
	exam := publishedTask()
	exam.TaskType = model.TaskTypeExamReminder

	for _, s := range []*model.TaskSubmissionModel{nil, {Status: model.SubmissionStatusGraded}} {
		assert.Equal(t, DisplayExamReminder, DeriveDisplayStatus(exam, s, before))
		assert.Equal(t, DisplayExamCompleted, DeriveDisplayStatus(exam, s, after))
	}
}
