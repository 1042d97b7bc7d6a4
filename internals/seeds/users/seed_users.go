package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	authModel "schoolhub_backend/internals/features/users/auth/model"
	authService "schoolhub_backend/internals/features/users/auth/service"
)

type UserSeed struct {
	Email            string `json:"email"`
	Password         string `json:"password"`
	FullName         string `json:"full_name"`
	Role             string `json:"role"`
	EnrollmentNumber string `json:"enrollment_number"`
	EducationalLevel string `json:"educational_level"`
}

// SeedUsersFromJSON inserts the accounts that do not exist yet, plus the
// teacher or student record their role needs. Existing emails are skipped.
func SeedUsersFromJSON(ctx context.Context, db *gorm.DB, log *zap.Logger, data []byte) error {
	var inputs []UserSeed
	if err := json.Unmarshal(data, &inputs); err != nil {
		return fmt.Errorf("decode users seed: %w", err)
	}

	for _, in := range inputs {
		if !constants.IsKnownRole(in.Role) {
			return fmt.Errorf("seed %s: unknown role %q", in.Email, in.Role)
		}

		var existing authModel.UserModel
		err := db.WithContext(ctx).Where("email = ?", in.Email).Take(&existing).Error
		if err == nil {
			log.Debug("seed user exists, skipped", zap.String("email", in.Email))
			continue
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		hash, err := authService.HashPassword(in.Password)
		if err != nil {
			return fmt.Errorf("hash %s: %w", in.Email, err)
		}

		err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			u := authModel.UserModel{
				Email:        in.Email,
				PasswordHash: hash,
				FullName:     in.FullName,
				Role:         in.Role,
				IsActive:     true,
			}
			if err := tx.Create(&u).Error; err != nil {
				return err
			}
			switch in.Role {
			case constants.RoleTeacher:
				return tx.Create(&studentModel.TeacherModel{UserID: u.ID, IsActive: true}).Error
			case constants.RoleStudent:
				return tx.Create(&studentModel.StudentModel{
					UserID:           &u.ID,
					EnrollmentNumber: in.EnrollmentNumber,
					FullName:         in.FullName,
					EducationalLevel: in.EducationalLevel,
					IsActive:         true,
				}).Error
			}
			return nil
		})
		if err != nil {
			return fmt.Errorf("seed %s: %w", in.Email, err)
		}
		log.Info("seed user created", zap.String("email", in.Email), zap.String("role", in.Role))
	}
	return nil
}
