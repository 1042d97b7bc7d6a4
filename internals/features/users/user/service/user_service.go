package service

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	authModel "schoolhub_backend/internals/features/users/auth/model"
	authRepo "schoolhub_backend/internals/features/users/auth/repository"
	authService "schoolhub_backend/internals/features/users/auth/service"
	"schoolhub_backend/internals/features/users/user/dto"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/helpers/apperr"
)

type UserService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewUserService(db *gorm.DB, log *zap.Logger) *UserService {
	return &UserService{DB: db, Log: log}
}

// Create registers an account and, for teachers and students, the record
// that ties the account to the school. Both rows commit together.
func (s *UserService) Create(ctx context.Context, req dto.CreateUserRequest) (*dto.UserResponse, error) {
	hash, err := authService.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	var resp dto.UserResponse
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := authRepo.FindUserByEmail(ctx, tx, req.Email); err == nil {
			return apperr.InvalidState("email already registered")
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		u := authModel.UserModel{
			Email:        req.Email,
			PasswordHash: hash,
			FullName:     req.FullName,
			Role:         req.Role,
			IsActive:     true,
		}
		if err := authRepo.CreateUser(ctx, tx, &u); err != nil {
			return err
		}
		resp = dto.FromUser(&u)

		switch req.Role {
		case constants.RoleTeacher:
			t := studentModel.TeacherModel{UserID: u.ID, IsActive: true}
			if err := tx.Create(&t).Error; err != nil {
				return err
			}
			resp.TeacherID = &t.ID
		case constants.RoleStudent:
			var n int64
			if err := tx.Model(&studentModel.StudentModel{}).
				Where("enrollment_number = ?", req.EnrollmentNumber).
				Count(&n).Error; err != nil {
				return err
			}
			if n > 0 {
				return apperr.InvalidState("enrollment number already in use")
			}
			st := studentModel.StudentModel{
				UserID:           &u.ID,
				EnrollmentNumber: req.EnrollmentNumber,
				FullName:         req.FullName,
				EducationalLevel: req.EducationalLevel,
				IsActive:         true,
			}
			if err := tx.Create(&st).Error; err != nil {
				return err
			}
			resp.StudentID = &st.ID
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("user created", zap.String("user_id", resp.ID.String()), zap.String("role", resp.Role))
	return &resp, nil
}

func (s *UserService) List(ctx context.Context, q dto.ListUsersQuery, p helper.Paging) ([]dto.UserResponse, int64, error) {
	db := s.DB.WithContext(ctx).Model(&authModel.UserModel{})
	if term := strings.TrimSpace(q.Q); term != "" {
		like := "%" + term + "%"
		db = db.Where("full_name ILIKE ? OR email ILIKE ?", like, like)
	}
	if q.Role != "" {
		db = db.Where("role = ?", q.Role)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []authModel.UserModel
	if err := db.Order("created_at DESC, id").
		Offset(p.Offset).Limit(p.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}

	out := make([]dto.UserResponse, 0, len(rows))
	for i := range rows {
		out = append(out, dto.FromUser(&rows[i]))
	}
	return out, total, nil
}

// SetActive toggles login access. Deactivated users keep their records.
func (s *UserService) SetActive(ctx context.Context, actorID, userID uuid.UUID, active bool) (*dto.UserResponse, error) {
	if actorID == userID && !active {
		return nil, apperr.InvalidState("cannot deactivate your own account")
	}
	var resp *dto.UserResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		u, err := authRepo.FindUserByID(ctx, tx, userID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("user not found")
			}
			return err
		}
		if err := tx.Model(u).Update("is_active", active).Error; err != nil {
			return err
		}
		u.IsActive = active
		r := dto.FromUser(u)
		resp = &r
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("user status changed", zap.String("user_id", userID.String()), zap.Bool("active", active))
	return resp, nil
}
