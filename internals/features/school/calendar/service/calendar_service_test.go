package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/school/calendar/dto"
	taskModel "schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

func TestResolveRange(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)

	r, err := ResolveRange(nil, nil, now)
	require.NoError(t, err)
	assert.Equal(t, now.AddDate(0, 0, -7), r.From)
	assert.Equal(t, now.AddDate(0, 0, 30), r.To)

	from := now
	to := now.Add(-time.Hour)
	_, err = ResolveRange(&from, &to, now)
	assert.True(t, apperr.Is(err, apperr.KindInvalidState))

	far := now.AddDate(2, 0, 0)
	_, err = ResolveRange(&from, &far, now)
	assert.True(t, apperr.Is(err, apperr.KindInvalidState))
}

func TestToEvents(t *testing.T) {
	now := time.Date(2026, 4, 1, 12, 0, 0, 0, time.UTC)
	graded := string(taskModel.SubmissionStatusGraded)
	sid := uuid.New()

	rows := []eventRow{
		{
			TaskModel:   taskModel.TaskModel{ID: uuid.New(), Title: "Quiz", TaskType: taskModel.TaskTypeExamReminder, Status: taskModel.TaskStatusPublished, DueDate: now.Add(48 * time.Hour)},
			SubjectName: "Math",
		},
		{
			TaskModel: taskModel.TaskModel{ID: uuid.New(), Title: "Essay", TaskType: taskModel.TaskTypeRegular, Status: taskModel.TaskStatusPublished, DueDate: now.Add(-time.Hour)},
			SubStatus: &graded, StudentID: &sid, StudentName: "Ana",
		},
		{
			TaskModel: taskModel.TaskModel{ID: uuid.New(), Title: "Map", TaskType: taskModel.TaskTypeRegular, Status: taskModel.TaskStatusPublished, DueDate: now.Add(-time.Hour)},
		},
	}
	ev := toEvents(rows, now)
	require.Len(t, ev, 3)
	assert.Equal(t, dto.EventExam, ev[0].Type)
	assert.Equal(t, "exam_reminder", ev[0].DisplayStatus)
	assert.Equal(t, dto.EventTask, ev[1].Type)
	assert.Equal(t, "graded", ev[1].DisplayStatus)
	assert.Equal(t, "Ana", ev[1].StudentName)
	assert.Equal(t, "overdue", ev[2].DisplayStatus)
}
