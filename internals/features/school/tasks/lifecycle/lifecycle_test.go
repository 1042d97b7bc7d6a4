package lifecycle

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

var (
	due    = time.Date(2026, 5, 10, 23, 59, 0, 0, time.UTC)
	before = due.Add(-2 * time.Hour)
	after  = due.Add(3 * time.Hour)
)

func publishedTask() *model.TaskModel {
	return &model.TaskModel{
		ID:        uuid.New(),
		TaskType:  model.TaskTypeRegular,
		Status:    model.TaskStatusPublished,
		DueDate:   due,
		MaxPoints: 10,
		IsActive:  true,
	}
}

func freshSubmission() *model.TaskSubmissionModel {
	return &model.TaskSubmissionModel{
		ID:            uuid.New(),
		Status:        model.SubmissionStatusNotSubmitted,
		AttemptNumber: 1,
		IsActive:      true,
	}
}

func text(s string) *string { return &s }

func TestFinalGradeLatePenalty(t *testing.T) {
	assert.InDelta(t, 6.4, FinalGrade(8, 0.2, true), 1e-9)
	assert.Equal(t, 8.0, FinalGrade(8, 0.2, false))
	assert.Equal(t, 8.0, FinalGrade(8, 1, false))
	assert.Equal(t, 0.0, FinalGrade(8, 1, true))
}

func TestApplyGradeUsesLatePenalty(t *testing.T) {
	task := publishedTask()
	task.AllowLateSubmission = true
	task.LatePenalty = 0.2

	sub := freshSubmission()
	require.NoError(t, ApplySubmission(task, sub, SubmitInput{Content: text("essay")}, after))
	assert.Equal(t, model.SubmissionStatusLate, sub.Status)
	assert.True(t, sub.IsLate)

	grader := uuid.New()
	require.NoError(t, ApplyGrade(task, sub, GradeInput{Grade: 8}, grader, after.Add(time.Hour)))
	require.NotNil(t, sub.FinalGrade)
	assert.InDelta(t, 6.4, *sub.FinalGrade, 1e-9)
	assert.Equal(t, 8.0, *sub.Grade)
	assert.True(t, sub.IsGraded)
	assert.Equal(t, model.SubmissionStatusGraded, sub.Status)
	assert.Equal(t, grader, *sub.GradedBy)

	onTime := freshSubmission()
	require.NoError(t, ApplySubmission(task, onTime, SubmitInput{Content: text("essay")}, before))
	require.NoError(t, ApplyGrade(task, onTime, GradeInput{Grade: 8}, grader, after))
	assert.Equal(t, 8.0, *onTime.FinalGrade)
}

func TestSubmitClosedTaskIsInvalidState(t *testing.T) {
	for _, sub := range []*model.TaskSubmissionModel{
		freshSubmission(),
		{Status: model.SubmissionStatusReturned, NeedsRevision: true, AttemptNumber: 1},
	} {
		task := publishedTask()
		task.Status = model.TaskStatusClosed
		task.AllowLateSubmission = true

		for _, now := range []time.Time{before, after} {
			err := ApplySubmission(task, sub, SubmitInput{Content: text("x")}, now)
			require.Error(t, err)
			assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
			assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(CheckTaskOpen(task, now)))
		}
	}
}

func TestSubmitRules(t *testing.T) {
	cases := []struct {
		name  string
		task  func(*model.TaskModel)
		sub   func(*model.TaskSubmissionModel)
		in    SubmitInput
		now   time.Time
		kind  apperr.Kind
		state model.SubmissionStatus
	}{
		{name: "on time", now: before, state: model.SubmissionStatusSubmitted},
		{name: "draft", task: func(t *model.TaskModel) { t.Status = model.TaskStatusDraft }, now: before, kind: apperr.KindInvalidState},
		{name: "exam reminder", task: func(t *model.TaskModel) { t.TaskType = model.TaskTypeExamReminder }, now: before, kind: apperr.KindInvalidState},
		{name: "late not allowed", now: after, kind: apperr.KindInvalidState},
		{name: "late allowed", task: func(t *model.TaskModel) { t.AllowLateSubmission = true }, now: after, state: model.SubmissionStatusLate},
		{name: "not yet available", task: func(t *model.TaskModel) { from := before.Add(time.Hour); t.AvailableFrom = &from }, now: before, kind: apperr.KindInvalidState},
		{name: "requires file", task: func(t *model.TaskModel) { t.RequiresFile = true }, in: SubmitInput{AttachmentURLs: []string{" "}}, now: before, kind: apperr.KindInvalidState},
		{name: "with file", task: func(t *model.TaskModel) { t.RequiresFile = true }, in: SubmitInput{AttachmentURLs: []string{"https://cdn.example.org/a.pdf"}}, now: before, state: model.SubmissionStatusSubmitted},
		{name: "already submitted", sub: func(s *model.TaskSubmissionModel) { s.Status = model.SubmissionStatusSubmitted }, now: before, kind: apperr.KindInvalidState},
		{name: "already graded", sub: func(s *model.TaskSubmissionModel) { s.Status = model.SubmissionStatusGraded; s.IsGraded = true }, now: before, kind: apperr.KindInvalidState},
		{name: "deleted task", task: func(t *model.TaskModel) { t.IsActive = false }, now: before, kind: apperr.KindNotFound},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			task, sub := publishedTask(), freshSubmission()
			if tc.task != nil {
				tc.task(task)
			}
			if tc.sub != nil {
				tc.sub(sub)
			}
			prev := *sub
			err := ApplySubmission(task, sub, tc.in, tc.now)
			if tc.kind != apperr.KindUnknown {
				require.Error(t, err)
				assert.Equal(t, tc.kind, apperr.KindOf(err))
				assert.Equal(t, prev.Status, sub.Status, "failed submit must not mutate")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.state, sub.Status)
		})
	}
}

func TestGradeNotSubmitted(t *testing.T) {
	sub := freshSubmission()
	err := ApplyGrade(publishedTask(), sub, GradeInput{Grade: 5}, uuid.New(), before)
	require.Error(t, err)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))
	assert.False(t, sub.IsGraded)
	assert.Nil(t, sub.Grade)
}

func TestGradeOutOfRange(t *testing.T) {
	task := publishedTask()
	sub := freshSubmission()
	require.NoError(t, ApplySubmission(task, sub, SubmitInput{Content: text("x")}, before))
	assert.True(t, apperr.Is(ApplyGrade(task, sub, GradeInput{Grade: 11}, uuid.New(), before), apperr.KindInvalidState))
	assert.True(t, apperr.Is(ApplyGrade(task, sub, GradeInput{Grade: -1}, uuid.New(), before), apperr.KindInvalidState))
}

func TestResubmissionCycle(t *testing.T) {
	task := publishedTask()
	sub := freshSubmission()

	first := before.Add(-24 * time.Hour)
	require.NoError(t, ApplySubmission(task, sub, SubmitInput{Content: text("draft 1")}, first))
	require.NotNil(t, sub.FirstSubmittedAt)
	assert.Equal(t, 1, sub.AttemptNumber)

	require.NoError(t, ApplyGrade(task, sub, GradeInput{Grade: 4, NeedsRevision: true, TeacherFeedback: text("redo part 2")}, uuid.New(), first.Add(time.Hour)))
	assert.Equal(t, model.SubmissionStatusReturned, sub.Status)
	assert.True(t, sub.NeedsRevision)
	assert.False(t, sub.IsGraded)
	require.NotNil(t, sub.Grade)
	assert.Equal(t, 4.0, *sub.Grade)

	require.NoError(t, ApplySubmission(task, sub, SubmitInput{Content: text("draft 2")}, before))
	assert.False(t, sub.NeedsRevision)
	assert.Equal(t, 2, sub.AttemptNumber)
	assert.True(t, sub.FirstSubmittedAt.Equal(first))
	assert.True(t, sub.SubmittedAt.Equal(before))
	assert.Equal(t, model.SubmissionStatusSubmitted, sub.Status)
	assert.Equal(t, "draft 2", *sub.Content)

	require.Error(t, ApplySubmission(task, sub, SubmitInput{Content: text("draft 3")}, before))
	assert.Equal(t, 2, sub.AttemptNumber)
}

func TestRegradeKeepsOmittedNotes(t *testing.T) {
	task := publishedTask()
	sub := freshSubmission()
	require.NoError(t, ApplySubmission(task, sub, SubmitInput{Content: text("answer")}, before))

	require.NoError(t, ApplyGrade(task, sub, GradeInput{Grade: 6, TeacherFeedback: text("solid"), PrivateNotes: text("check sources")}, uuid.New(), before))
	require.NoError(t, ApplyGrade(task, sub, GradeInput{Grade: 7}, uuid.New(), before))

	assert.Equal(t, 7.0, *sub.Grade)
	require.NotNil(t, sub.TeacherFeedback)
	assert.Equal(t, "solid", *sub.TeacherFeedback)
	require.NotNil(t, sub.PrivateNotes)
	assert.Equal(t, "check sources", *sub.PrivateNotes)

	require.NoError(t, ApplyGrade(task, sub, GradeInput{Grade: 7, TeacherFeedback: text("better")}, uuid.New(), before))
	assert.Equal(t, "better", *sub.TeacherFeedback)
}
