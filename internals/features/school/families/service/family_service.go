// file: internals/features/school/families/service/family_service.go
package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/families/dto"
	"schoolhub_backend/internals/features/school/families/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	userModel "schoolhub_backend/internals/features/users/auth/model"
	"schoolhub_backend/internals/helpers/apperr"
)

type FamilyService struct {
	DB  *gorm.DB
	Log *zap.Logger
}

func NewFamilyService(db *gorm.DB, log *zap.Logger) *FamilyService {
	return &FamilyService{DB: db, Log: log.Named("families")}
}

// Create stores the family, its contacts and every student link in one
// transaction. Any missing user or student rolls the whole thing back.
func (s *FamilyService) Create(ctx context.Context, req dto.CreateFamilyRequest) (*dto.FamilyResponse, error) {
	req.Normalize()
	if req.SecondaryContactUserID != nil && *req.SecondaryContactUserID == req.PrimaryContactUserID {
		return nil, apperr.InvalidState("secondary contact must differ from the primary contact")
	}

	var out *dto.FamilyResponse
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := ensureFamilyUser(tx, req.PrimaryContactUserID, "primary contact"); err != nil {
			return err
		}
		if req.SecondaryContactUserID != nil {
			if err := ensureFamilyUser(tx, *req.SecondaryContactUserID, "secondary contact"); err != nil {
				return err
			}
		}

		fam := model.FamilyModel{
			FamilyName:             req.FamilyName,
			PrimaryContactUserID:   req.PrimaryContactUserID,
			SecondaryContactUserID: req.SecondaryContactUserID,
			IsActive:               true,
		}
		if err := tx.Create(&fam).Error; err != nil {
			return err
		}

		resp := &dto.FamilyResponse{
			ID:                     fam.ID,
			FamilyName:             fam.FamilyName,
			PrimaryContactUserID:   fam.PrimaryContactUserID,
			SecondaryContactUserID: fam.SecondaryContactUserID,
			Students:               make([]dto.LinkedStudent, 0, len(req.Students)),
		}
		seen := make(map[uuid.UUID]bool, len(req.Students))
		for _, in := range req.Students {
			if seen[in.StudentID] {
				continue
			}
			seen[in.StudentID] = true

			var st studentModel.StudentModel
			err := tx.Select("id, full_name, enrollment_number").
				Where("id = ? AND is_active = TRUE", in.StudentID).
				Take(&st).Error
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperr.NotFound("student " + in.StudentID.String() + " not found")
			}
			if err != nil {
				return err
			}

			link := model.FamilyStudentModel{
				FamilyID:     fam.ID,
				StudentID:    in.StudentID,
				Relationship: model.Relationship(in.Relationship),
			}
			if err := tx.Create(&link).Error; err != nil {
				return err
			}
			resp.Students = append(resp.Students, dto.LinkedStudent{
				StudentID:        in.StudentID,
				FullName:         st.FullName,
				EnrollmentNumber: st.EnrollmentNumber,
				Relationship:     in.Relationship,
			})
		}
		out = resp
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.Log.Info("family created", zap.String("family_id", out.ID.String()), zap.Int("students", len(out.Students)))
	return out, nil
}

func ensureFamilyUser(tx *gorm.DB, id uuid.UUID, label string) error {
	var n int64
	err := tx.Model(&userModel.UserModel{}).
		Where("id = ? AND role = ? AND is_active = TRUE", id, constants.RoleFamily).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n == 0 {
		return apperr.NotFound(label + " user not found")
	}
	return nil
}

// Mine lists the students linked to any family where the user is a contact.
func (s *FamilyService) Mine(ctx context.Context, userID uuid.UUID) ([]dto.LinkedStudent, error) {
	var rows []dto.LinkedStudent
	err := s.DB.WithContext(ctx).
		Table("family_students fs").
		Select("st.id AS student_id, st.full_name, st.enrollment_number, fs.relationship").
		Joins("JOIN families f ON f.id = fs.family_id AND f.is_active = TRUE").
		Joins("JOIN students st ON st.id = fs.student_id AND st.is_active = TRUE").
		Where("f.primary_contact_user_id = ? OR f.secondary_contact_user_id = ?", userID, userID).
		Order("st.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []dto.LinkedStudent{}
	}
	return rows, nil
}
