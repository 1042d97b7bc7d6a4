package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	activityModel "schoolhub_backend/internals/features/school/activities/model"
	evaluationModel "schoolhub_backend/internals/features/school/evaluations/model"
	"schoolhub_backend/internals/features/school/grades/engine"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	taskModel "schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

// Store loads the rows a grade report is built from. Soft-deleted rows are
// never returned.
type Store interface {
	LoadStudent(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error)
	LoadSubjects(ctx context.Context, classGroupIDs []uuid.UUID) ([]engine.Subject, error)
	LoadSubmissions(ctx context.Context, studentID uuid.UUID) ([]taskModel.TaskSubmissionModel, error)
	LoadAssessments(ctx context.Context, studentID uuid.UUID) ([]activityModel.ActivityAssessmentModel, error)
	LoadEvaluations(ctx context.Context, studentID uuid.UUID) ([]evaluationModel.EvaluationModel, error)
}

type GormStore struct {
	DB *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore { return &GormStore{DB: db} }

func (s *GormStore) LoadStudent(ctx context.Context, id uuid.UUID) (*studentModel.StudentModel, error) {
	var st studentModel.StudentModel
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
	return &st, nil
}

type subjectRow struct {
	SubjectAssignmentID uuid.UUID
	SubjectID           uuid.UUID
	SubjectName         string
	SubjectCode         string
	TeacherName         string
}

func (s *GormStore) LoadSubjects(ctx context.Context, classGroupIDs []uuid.UUID) ([]engine.Subject, error) {
	if len(classGroupIDs) == 0 {
		return nil, nil
	}
	var rows []subjectRow
	err := s.DB.WithContext(ctx).
		Table("subject_assignments sa").
		Select(`sa.id AS subject_assignment_id, s.id AS subject_id, s.name AS subject_name,
			s.code AS subject_code, COALESCE(u.full_name, '') AS teacher_name`).
		Joins("JOIN subjects s ON s.id = sa.subject_id AND s.is_active = TRUE").
		Joins("LEFT JOIN teachers t ON t.id = sa.teacher_id").
		Joins("LEFT JOIN users u ON u.id = t.user_id").
		Where("sa.class_group_id IN ? AND sa.is_active = TRUE", classGroupIDs).
		Order("s.name ASC, sa.id ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make([]engine.Subject, len(rows))
	for i, r := range rows {
		out[i] = engine.Subject(r)
	}
	return out, nil
}

func (s *GormStore) LoadSubmissions(ctx context.Context, studentID uuid.UUID) ([]taskModel.TaskSubmissionModel, error) {
	var subs []taskModel.TaskSubmissionModel
	err := s.DB.WithContext(ctx).
		Joins("Task").
		Where("task_submissions.student_id = ? AND task_submissions.is_active = TRUE", studentID).
		Where(`"Task".is_active = TRUE`).
		Order("task_submissions.created_at DESC").
		Find(&subs).Error
	return subs, err
}

func (s *GormStore) LoadAssessments(ctx context.Context, studentID uuid.UUID) ([]activityModel.ActivityAssessmentModel, error) {
	var rows []activityModel.ActivityAssessmentModel
	err := s.DB.WithContext(ctx).
		Joins("Activity").
		Where("activity_assessments.student_id = ? AND activity_assessments.is_active = TRUE", studentID).
		Where(`"Activity".is_active = TRUE`).
		Order("activity_assessments.assessed_at DESC").
		Find(&rows).Error
	return rows, err
}

func (s *GormStore) LoadEvaluations(ctx context.Context, studentID uuid.UUID) ([]evaluationModel.EvaluationModel, error) {
	var rows []evaluationModel.EvaluationModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ? AND is_active = TRUE", studentID).
		Order("evaluated_at DESC").
		Find(&rows).Error
	return rows, err
}
