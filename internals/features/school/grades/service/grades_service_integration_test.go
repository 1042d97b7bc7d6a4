//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	activityModel "schoolhub_backend/internals/features/school/activities/model"
	taskModel "schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/testutil/testdb"
)

func TestStudentGrades_FromPostgres(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)

	due := time.Now().UTC().Add(48 * time.Hour)
	graded := taskModel.TaskModel{
		SubjectAssignmentID: fx.Assignment, TeacherID: fx.Teacher, Title: "Quiz 1",
		TaskType: taskModel.TaskTypeRegular, Status: taskModel.TaskStatusPublished,
		DueDate: due, MaxPoints: 20, IsActive: true,
	}
	pending := taskModel.TaskModel{
		SubjectAssignmentID: fx.Assignment, TeacherID: fx.Teacher, Title: "Quiz 2",
		TaskType: taskModel.TaskTypeRegular, Status: taskModel.TaskStatusPublished,
		DueDate: due, MaxPoints: 10, IsActive: true,
	}
	require.NoError(t, h.DB.Create(&graded).Error)
	require.NoError(t, h.DB.Create(&pending).Error)

	now := time.Now().UTC()
	g, fg := 18.0, 18.0
	require.NoError(t, h.DB.Create(&taskModel.TaskSubmissionModel{
		TaskID: graded.ID, StudentID: fx.Enrolled, Status: taskModel.SubmissionStatusGraded,
		Grade: &g, FinalGrade: &fg, IsGraded: true, AttemptNumber: 1,
		FirstSubmittedAt: &now, SubmittedAt: &now, GradedAt: &now, GradedBy: &fx.Teacher, IsActive: true,
	}).Error)
	require.NoError(t, h.DB.Create(&taskModel.TaskSubmissionModel{
		TaskID: pending.ID, StudentID: fx.Enrolled, Status: taskModel.SubmissionStatusNotSubmitted,
		AttemptNumber: 1, IsActive: true,
	}).Error)

	act := activityModel.ActivityModel{
		SubjectAssignmentID: fx.Assignment, Title: "Oral reading",
		ValuationType: activityModel.ValuationScore, IsActive: true,
	}
	require.NoError(t, h.DB.Create(&act).Error)
	require.NoError(t, h.DB.Create(&activityModel.ActivityAssessmentModel{
		ActivityID: act.ID, StudentID: fx.Enrolled, Value: "8,0", AssessedAt: now, IsActive: true,
	}).Error)

	svc := NewGradesService(NewGormStore(h.DB), access.NewGormEdges(h.DB), zap.NewNop())

	resp, err := svc.StudentGrades(ctx, access.Requester{UserID: fx.FamilyUser, Role: constants.RoleFamily}, fx.Enrolled)
	require.NoError(t, err)

	require.Len(t, resp.SubjectGrades, 1)
	sg := resp.SubjectGrades[0]
	assert.Equal(t, "Mathematics", sg.SubjectName)
	assert.Equal(t, "teacher", sg.TeacherName)
	require.NotNil(t, sg.TaskAverage)
	assert.InDelta(t, 9.0, *sg.TaskAverage, 1e-9)
	require.NotNil(t, sg.ActivityAverage)
	assert.InDelta(t, 8.0, *sg.ActivityAverage, 1e-9)
	assert.Nil(t, sg.CompetencyAverage)
	assert.InDelta(t, 8.5, sg.AverageGrade, 1e-9)

	assert.InDelta(t, 8.5, resp.Summary.OverallAverage, 1e-9)
	assert.Equal(t, 1, resp.Summary.TotalPendingTasks)
	assert.Len(t, resp.RecentGrades, 2)

	_, err = svc.StudentGrades(ctx, access.Requester{UserID: fx.FamilyUser, Role: constants.RoleFamily}, fx.Unlinked)
	assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
}
