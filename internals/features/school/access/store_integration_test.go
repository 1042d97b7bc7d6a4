//go:build testutil
// +build testutil

package access_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/testutil/testdb"
)

func TestGormEdges_AgainstPostgres(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	h, err := testdb.Start(ctx)
	require.NoError(t, err)
	defer h.Close()

	fx, err := testdb.Seed(ctx, h.DB)
	require.NoError(t, err)
	edges := access.NewGormEdges(h.DB)

	sid, ok, err := edges.StudentIDForUser(ctx, fx.EnrolledUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fx.Enrolled, sid)

	_, ok, err = edges.StudentIDForUser(ctx, fx.TeacherUser)
	require.NoError(t, err)
	assert.False(t, ok)

	tid, ok, err := edges.TeacherIDForUser(ctx, fx.TeacherUser)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, fx.Teacher, tid)

	covers, err := edges.TeacherCoversStudent(ctx, fx.TeacherUser, fx.Unlinked)
	require.NoError(t, err)
	assert.True(t, covers)
	covers, err = edges.TeacherCoversStudent(ctx, fx.TeacherUser, fx.Outsider)
	require.NoError(t, err)
	assert.False(t, covers)
	covers, err = edges.TeacherCoversStudent(ctx, fx.OtherTeacherUser, fx.Enrolled)
	require.NoError(t, err)
	assert.False(t, covers)

	linked, err := edges.FamilyLinked(ctx, fx.FamilyUser, fx.Enrolled)
	require.NoError(t, err)
	assert.True(t, linked)
	linked, err = edges.FamilyLinked(ctx, fx.FamilyUser, fx.Unlinked)
	require.NoError(t, err)
	assert.False(t, linked)

	ids, err := edges.LinkedStudentIDs(ctx, fx.FamilyUser)
	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{fx.Enrolled}, ids)

	cases := []struct {
		name    string
		r       access.Requester
		student uuid.UUID
		allowed bool
	}{
		{"admin any", access.Requester{UserID: fx.AdminUser, Role: constants.RoleAdmin}, fx.Outsider, true},
		{"teacher in class", access.Requester{UserID: fx.TeacherUser, Role: constants.RoleTeacher}, fx.Enrolled, true},
		{"teacher outside class", access.Requester{UserID: fx.TeacherUser, Role: constants.RoleTeacher}, fx.Outsider, false},
		{"student self", access.Requester{UserID: fx.EnrolledUser, Role: constants.RoleStudent}, fx.Enrolled, true},
		{"student other", access.Requester{UserID: fx.EnrolledUser, Role: constants.RoleStudent}, fx.Unlinked, false},
		{"family linked", access.Requester{UserID: fx.FamilyUser, Role: constants.RoleFamily}, fx.Enrolled, true},
		{"family unlinked", access.Requester{UserID: fx.FamilyUser, Role: constants.RoleFamily}, fx.Unlinked, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := access.Authorize(ctx, edges, tc.r, tc.student)
			if tc.allowed {
				assert.NoError(t, err)
				return
			}
			assert.Equal(t, apperr.KindForbidden, apperr.KindOf(err))
		})
	}
}
