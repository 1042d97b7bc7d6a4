//go:build testutil
// +build testutil

package testdb

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	academicModel "schoolhub_backend/internals/features/school/academics/model"
	familyModel "schoolhub_backend/internals/features/school/families/model"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	authModel "schoolhub_backend/internals/features/users/auth/model"
)

// Fixture is a minimal school: one class taught one subject by Teacher,
// Enrolled and Unlinked in that class, Outsider in no class, and a family
// account linked to Enrolled only.
type Fixture struct {
	AdminUser        uuid.UUID
	TeacherUser      uuid.UUID
	Teacher          uuid.UUID
	OtherTeacherUser uuid.UUID
	OtherTeacher     uuid.UUID
	EnrolledUser     uuid.UUID
	Enrolled         uuid.UUID
	Unlinked         uuid.UUID
	OutsiderUser     uuid.UUID
	Outsider         uuid.UUID
	FamilyUser       uuid.UUID
	Family           uuid.UUID
	ClassGroup       uuid.UUID
	Subject          uuid.UUID
	Assignment       uuid.UUID
}

func Seed(ctx context.Context, db *gorm.DB) (*Fixture, error) {
	f := &Fixture{}
	err := db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var err error
		if f.AdminUser, err = user(tx, "admin", "admin"); err != nil {
			return err
		}
		if f.TeacherUser, f.Teacher, err = teacher(tx, "teacher"); err != nil {
			return err
		}
		if f.OtherTeacherUser, f.OtherTeacher, err = teacher(tx, "other-teacher"); err != nil {
			return err
		}
		if f.EnrolledUser, err = user(tx, "enrolled", "student"); err != nil {
			return err
		}
		if f.Enrolled, err = student(tx, &f.EnrolledUser, "STU-1", "Enrolled Student"); err != nil {
			return err
		}
		if f.Unlinked, err = student(tx, nil, "STU-2", "Unlinked Student"); err != nil {
			return err
		}
		if f.OutsiderUser, err = user(tx, "outsider", "student"); err != nil {
			return err
		}
		if f.Outsider, err = student(tx, &f.OutsiderUser, "STU-3", "Outsider Student"); err != nil {
			return err
		}

		cg := studentModel.ClassGroupModel{Name: "7A", EducationalLevel: "secondary", AcademicYear: "2025/2026", IsActive: true}
		if err := tx.Create(&cg).Error; err != nil {
			return err
		}
		f.ClassGroup = cg.ID
		for _, sid := range []uuid.UUID{f.Enrolled, f.Unlinked} {
			if err := tx.Create(&studentModel.StudentClassGroupModel{StudentID: sid, ClassGroupID: cg.ID}).Error; err != nil {
				return err
			}
		}

		subj := academicModel.SubjectModel{Name: "Mathematics", Code: "MATH", IsActive: true}
		if err := tx.Create(&subj).Error; err != nil {
			return err
		}
		f.Subject = subj.ID
		sa := academicModel.SubjectAssignmentModel{TeacherID: f.Teacher, SubjectID: subj.ID, ClassGroupID: cg.ID, Period: "2025-S1", IsActive: true}
		if err := tx.Create(&sa).Error; err != nil {
			return err
		}
		f.Assignment = sa.ID

		if f.FamilyUser, err = user(tx, "family", "family"); err != nil {
			return err
		}
		fam := familyModel.FamilyModel{FamilyName: "Enrolled family", PrimaryContactUserID: f.FamilyUser, IsActive: true}
		if err := tx.Create(&fam).Error; err != nil {
			return err
		}
		f.Family = fam.ID
		return tx.Create(&familyModel.FamilyStudentModel{
			FamilyID:     fam.ID,
			StudentID:    f.Enrolled,
			Relationship: familyModel.RelationshipParent,
		}).Error
	})
	if err != nil {
		return nil, err
	}
	return f, nil
}

func user(tx *gorm.DB, name, role string) (uuid.UUID, error) {
	u := authModel.UserModel{
		Email:        fmt.Sprintf("%s@fixture.test", name),
		PasswordHash: "x",
		FullName:     name,
		Role:         role,
		IsActive:     true,
	}
	if err := tx.Create(&u).Error; err != nil {
		return uuid.Nil, err
	}
	return u.ID, nil
}

func teacher(tx *gorm.DB, name string) (uuid.UUID, uuid.UUID, error) {
	uid, err := user(tx, name, "teacher")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	t := studentModel.TeacherModel{UserID: uid, IsActive: true}
	if err := tx.Create(&t).Error; err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return uid, t.ID, nil
}

func student(tx *gorm.DB, userID *uuid.UUID, enrollment, name string) (uuid.UUID, error) {
	s := studentModel.StudentModel{UserID: userID, EnrollmentNumber: enrollment, FullName: name, IsActive: true}
	if err := tx.Create(&s).Error; err != nil {
		return uuid.Nil, err
	}
	return s.ID, nil
}
