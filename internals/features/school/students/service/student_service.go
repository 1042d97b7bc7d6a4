package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/students/dto"
	"schoolhub_backend/internals/features/school/students/model"
	"schoolhub_backend/internals/helpers/apperr"
)

type StudentService struct {
	DB    *gorm.DB
	Edges access.Edges
}

func NewStudentService(db *gorm.DB, edges access.Edges) *StudentService {
	return &StudentService{DB: db, Edges: edges}
}

// Profile returns the student with its active class groups.
func (s *StudentService) Profile(ctx context.Context, r access.Requester, id uuid.UUID) (*dto.StudentResponse, error) {
	if err := access.Authorize(ctx, s.Edges, r, id); err != nil {
		return nil, err
	}
	var st model.StudentModel
	err := s.DB.WithContext(ctx).
		Preload("ClassGroups", "is_active = TRUE").
		Where("id = ? AND is_active = TRUE", id).
		Take(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("student not found")
	}
	if err != nil {
		return nil, err
	}
	resp := dto.FromStudent(&st)
	return &resp, nil
}
