//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/testutil/testdb"
)

func ptr[T any](v T) *T { return &v }

func TestTaskLifecycle_PublishSubmitGradeClose(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := NewTasksService(h.DB, access.NewGormEdges(h.DB), zap.NewNop())
	svc.Now = func() time.Time { return now }

	teacher := access.Requester{UserID: fx.TeacherUser, Role: constants.RoleTeacher}
	other := access.Requester{UserID: fx.OtherTeacherUser, Role: constants.RoleTeacher}
	student := access.Requester{UserID: fx.EnrolledUser, Role: constants.RoleStudent}
	outsider := access.Requester{UserID: fx.OutsiderUser, Role: constants.RoleStudent}

	task, err := svc.Create(ctx, teacher, dto.CreateTaskRequest{
		SubjectAssignmentID: fx.Assignment,
		Title:               "Fractions worksheet",
		DueDate:             now.Add(7 * 24 * time.Hour),
	})
	require.NoError(t, err)
	assert.Equal(t, model.TaskStatusDraft, task.Status)
	assert.Equal(t, model.DefaultMaxPoints, task.MaxPoints)

	_, _, err = svc.Publish(ctx, other, task.ID)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	_, created, err := svc.Publish(ctx, teacher, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, created, "one row per enrolled student")

	_, _, err = svc.Publish(ctx, teacher, task.ID)
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err))

	_, err = svc.Submit(ctx, outsider, task.ID, dto.SubmitTaskRequest{Content: ptr("mine")})
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))

	sub, err := svc.Submit(ctx, student, task.ID, dto.SubmitTaskRequest{Content: ptr("1/2 + 1/4 = 3/4")})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusSubmitted, sub.Status)
	assert.False(t, sub.IsLate)
	require.NotNil(t, sub.FirstSubmittedAt)

	_, err = svc.Submit(ctx, student, task.ID, dto.SubmitTaskRequest{Content: ptr("again")})
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err), "no resubmission without a revision request")

	graded, err := svc.Grade(ctx, teacher, sub.ID, dto.GradeSubmissionRequest{Grade: ptr(8.0), TeacherFeedback: ptr("good")})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusGraded, graded.Status)
	require.NotNil(t, graded.FinalGrade)
	assert.InDelta(t, 8.0, *graded.FinalGrade, 1e-9)

	_, err = svc.Grade(ctx, teacher, sub.ID, dto.GradeSubmissionRequest{Grade: ptr(11.0)})
	assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err), "grade above max points")

	stats, err := svc.TaskStatistics(ctx, teacher, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalSubmissions)
	assert.Equal(t, 1, stats.Graded)
	assert.InDelta(t, 50.0, stats.SubmissionRate, 1e-9)

	_, err = svc.Close(ctx, teacher, task.ID)
	require.NoError(t, err)

	for _, r := range []access.Requester{student, outsider, teacher, {UserID: fx.AdminUser, Role: constants.RoleAdmin}} {
		_, err = svc.Submit(ctx, r, task.ID, dto.SubmitTaskRequest{Content: ptr("late")})
		assert.Equal(t, apperr.KindInvalidState, apperr.KindOf(err), "closed task for role %s", r.Role)
	}
}

func TestTaskLifecycle_ReturnedAndResubmitted(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)

	now := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	svc := NewTasksService(h.DB, access.NewGormEdges(h.DB), zap.NewNop())
	svc.Now = func() time.Time { return now }

	teacher := access.Requester{UserID: fx.TeacherUser, Role: constants.RoleTeacher}
	student := access.Requester{UserID: fx.EnrolledUser, Role: constants.RoleStudent}

	task, err := svc.Create(ctx, teacher, dto.CreateTaskRequest{
		SubjectAssignmentID: fx.Assignment,
		Title:               "Essay",
		DueDate:             now.Add(time.Hour),
		AllowLateSubmission: true,
		LatePenalty:         ptr(0.2),
		TargetStudentIDs:    []uuid.UUID{fx.Enrolled},
	})
	require.NoError(t, err)

	_, created, err := svc.Publish(ctx, teacher, task.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, created, "targeted to one student")

	sub, err := svc.Submit(ctx, student, task.ID, dto.SubmitTaskRequest{Content: ptr("draft one")})
	require.NoError(t, err)

	returned, err := svc.Grade(ctx, teacher, sub.ID, dto.GradeSubmissionRequest{Grade: ptr(5.0), NeedsRevision: true})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusReturned, returned.Status)
	assert.False(t, returned.IsGraded)

	now = now.Add(2 * time.Hour)
	again, err := svc.Submit(ctx, student, task.ID, dto.SubmitTaskRequest{Content: ptr("draft two")})
	require.NoError(t, err)
	assert.Equal(t, model.SubmissionStatusLate, again.Status)
	assert.Equal(t, 2, again.AttemptNumber)
	assert.True(t, again.FirstSubmittedAt.Equal(*sub.FirstSubmittedAt), "first submission time is kept")

	final, err := svc.Grade(ctx, teacher, sub.ID, dto.GradeSubmissionRequest{Grade: ptr(10.0)})
	require.NoError(t, err)
	require.NotNil(t, final.FinalGrade)
	assert.InDelta(t, 8.0, *final.FinalGrade, 1e-9, "late penalty applied")
}
