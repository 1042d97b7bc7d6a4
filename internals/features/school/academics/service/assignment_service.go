package service

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/academics/dto"
	"schoolhub_backend/internals/features/school/academics/model"
	"schoolhub_backend/internals/helpers/apperr"
)

type TeacherResolver interface {
	TeacherIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
}

type AssignmentService struct {
	DB       *gorm.DB
	Teachers TeacherResolver
}

func NewAssignmentService(db *gorm.DB, teachers TeacherResolver) *AssignmentService {
	return &AssignmentService{DB: db, Teachers: teachers}
}

// Mine lists the active subject assignments of the teacher behind userID.
func (s *AssignmentService) Mine(ctx context.Context, userID uuid.UUID) ([]dto.SubjectAssignmentResponse, error) {
	tid, ok, err := s.Teachers.TeacherIDForUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, apperr.NotFound("teacher not found")
	}

	var rows []model.SubjectAssignmentModel
	err = s.DB.WithContext(ctx).
		Preload("Subject").
		Preload("ClassGroup").
		Where("teacher_id = ? AND is_active = TRUE", tid).
		Order("period DESC, created_at ASC").
		Find(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]dto.SubjectAssignmentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromSubjectAssignment(&rows[i]))
	}
	return out, nil
}
