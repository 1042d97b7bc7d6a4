//go:build testutil
// +build testutil

package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"schoolhub_backend/internals/features/school/families/dto"
	"schoolhub_backend/internals/features/school/families/model"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/testutil/testdb"
)

func TestFamilyCreate_RollsBackOnUnknownStudent(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)
	svc := NewFamilyService(h.DB, zap.NewNop())

	countFamilies := func() int64 {
		var n int64
		require.NoError(t, h.DB.Model(&model.FamilyModel{}).Count(&n).Error)
		return n
	}
	before := countFamilies()

	_, err = svc.Create(ctx, dto.CreateFamilyRequest{
		FamilyName:           "Partial",
		PrimaryContactUserID: fx.FamilyUser,
		Students: []dto.FamilyStudentInput{
			{StudentID: fx.Unlinked},
			{StudentID: uuid.New()},
		},
	})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
	assert.Equal(t, before, countFamilies(), "family row rolled back")

	var links int64
	require.NoError(t, h.DB.Model(&model.FamilyStudentModel{}).Where("student_id = ?", fx.Unlinked).Count(&links).Error)
	assert.Zero(t, links)

	_, err = svc.Create(ctx, dto.CreateFamilyRequest{FamilyName: "Wrong contact", PrimaryContactUserID: fx.TeacherUser})
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err), "contact must be a family account")

	resp, err := svc.Create(ctx, dto.CreateFamilyRequest{
		FamilyName:           "Complete",
		PrimaryContactUserID: fx.FamilyUser,
		Students:             []dto.FamilyStudentInput{{StudentID: fx.Unlinked, Relationship: "guardian"}},
	})
	require.NoError(t, err)
	require.Len(t, resp.Students, 1)
	assert.Equal(t, "Unlinked Student", resp.Students[0].FullName)

	mine, err := svc.Mine(ctx, fx.FamilyUser)
	require.NoError(t, err)
	assert.Len(t, mine, 2)
}
