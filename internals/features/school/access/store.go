package access

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	studentModel "schoolhub_backend/internals/features/school/students/model"
)

// GormEdges resolves ownership edges with plain queries against postgres.
type GormEdges struct {
	DB *gorm.DB
}

func NewGormEdges(db *gorm.DB) *GormEdges { return &GormEdges{DB: db} }

func (s *GormEdges) StudentIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var st studentModel.StudentModel
	err := s.DB.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND is_active = TRUE", userID).
		Take(&st).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return st.ID, true, nil
}

// TeacherIDForUser maps users.id to teachers.id.
func (s *GormEdges) TeacherIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error) {
	var t studentModel.TeacherModel
	err := s.DB.WithContext(ctx).
		Select("id").
		Where("user_id = ? AND is_active = TRUE", userID).
		Take(&t).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return uuid.Nil, false, nil
	}
	if err != nil {
		return uuid.Nil, false, err
	}
	return t.ID, true, nil
}

func (s *GormEdges) TeacherCoversStudent(ctx context.Context, userID, studentID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("subject_assignments sa").
		Joins("JOIN teachers t ON t.id = sa.teacher_id AND t.is_active = TRUE").
		Joins("JOIN class_groups cg ON cg.id = sa.class_group_id AND cg.is_active = TRUE").
		Joins("JOIN student_class_groups scg ON scg.class_group_id = sa.class_group_id").
		Where("t.user_id = ? AND scg.student_id = ? AND sa.is_active = TRUE", userID, studentID).
		Count(&n).Error
	return n > 0, err
}

func (s *GormEdges) FamilyLinked(ctx context.Context, userID, studentID uuid.UUID) (bool, error) {
	var n int64
	err := s.DB.WithContext(ctx).
		Table("family_students fs").
		Joins("JOIN families f ON f.id = fs.family_id AND f.is_active = TRUE").
		Where("fs.student_id = ?", studentID).
		Where("f.primary_contact_user_id = ? OR f.secondary_contact_user_id = ?", userID, userID).
		Count(&n).Error
	return n > 0, err
}

// LinkedStudentIDs lists the students a family contact may see.
func (s *GormEdges) LinkedStudentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := s.DB.WithContext(ctx).
		Table("family_students fs").
		Joins("JOIN families f ON f.id = fs.family_id AND f.is_active = TRUE").
		Where("f.primary_contact_user_id = ? OR f.secondary_contact_user_id = ?", userID, userID).
		Distinct("fs.student_id").
		Pluck("fs.student_id", &ids).Error
	return ids, err
}
