// file: internals/features/school/tasks/service/tasks_service.go
package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

// Directory maps authenticated users to their school records.
type Directory interface {
	TeacherIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	StudentIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	LinkedStudentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type TasksService struct {
	DB  *gorm.DB
	Dir Directory
	Log *zap.Logger
	Now func() time.Time
}

func NewTasksService(db *gorm.DB, dir Directory, log *zap.Logger) *TasksService {
	return &TasksService{
		DB:  db,
		Dir: dir,
		Log: log.Named("tasks"),
		Now: func() time.Time { return time.Now().UTC() },
	}
}

/* =========================================================
   CALLER RESOLUTION
========================================================= */

func (s *TasksService) teacherID(ctx context.Context, r access.Requester) (uuid.UUID, error) {
	if r.Role != constants.RoleTeacher {
		return uuid.Nil, apperr.Forbidden("only teachers may do this")
	}
	id, ok, err := s.Dir.TeacherIDForUser(ctx, r.UserID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, apperr.NotFound("teacher not found")
	}
	return id, nil
}

func (s *TasksService) studentID(ctx context.Context, r access.Requester) (uuid.UUID, error) {
	if r.Role != constants.RoleStudent {
		return uuid.Nil, apperr.Forbidden("only students may submit tasks")
	}
	id, ok, err := s.Dir.StudentIDForUser(ctx, r.UserID)
	if err != nil {
		return uuid.Nil, err
	}
	if !ok {
		return uuid.Nil, apperr.NotFound("student not found")
	}
	return id, nil
}

/* =========================================================
   LOADERS
========================================================= */

func findTask(ctx context.Context, db *gorm.DB, id uuid.UUID) (*model.TaskModel, error) {
	var t model.TaskModel
	err := db.WithContext(ctx).Where("id = ? AND is_active = TRUE", id).Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("task not found")
	}
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ownedTask loads a task the teacher owns. Admins may act on any task.
func (s *TasksService) ownedTask(ctx context.Context, db *gorm.DB, r access.Requester, id uuid.UUID) (*model.TaskModel, error) {
	t, err := findTask(ctx, db, id)
	if err != nil {
		return nil, err
	}
	if r.Role == constants.RoleAdmin {
		return t, nil
	}
	tid, err := s.teacherID(ctx, r)
	if err != nil {
		return nil, err
	}
	if t.TeacherID != tid {
		return nil, apperr.Forbidden("task belongs to another teacher")
	}
	return t, nil
}
