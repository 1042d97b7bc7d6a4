package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/features/school/access"
	academicModel "schoolhub_backend/internals/features/school/academics/model"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

// Create stores a draft task on one of the caller's subject assignments.
func (s *TasksService) Create(ctx context.Context, r access.Requester, req dto.CreateTaskRequest) (*model.TaskModel, error) {
	req.Normalize()
	tid, err := s.teacherID(ctx, r)
	if err != nil {
		return nil, err
	}
	if req.AvailableFrom != nil && req.DueDate.Before(*req.AvailableFrom) {
		return nil, apperr.InvalidState("due date must not be before the availability date")
	}

	var sa academicModel.SubjectAssignmentModel
	err = s.DB.WithContext(ctx).
		Where("id = ? AND is_active = TRUE", req.SubjectAssignmentID).
		Take(&sa).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("subject assignment not found")
	}
	if err != nil {
		return nil, err
	}
	if sa.TeacherID != tid {
		return nil, apperr.Forbidden("subject assignment belongs to another teacher")
	}

	t := req.ToModel(tid)
	if err := s.DB.WithContext(ctx).Create(t).Error; err != nil {
		return nil, err
	}
	s.Log.Info("task created", zap.String("task_id", t.ID.String()), zap.String("teacher_id", tid.String()))
	return t, nil
}

// Publish moves a draft to published and creates one not_submitted row per
// targeted student, all in one transaction.
func (s *TasksService) Publish(ctx context.Context, r access.Requester, id uuid.UUID) (*model.TaskModel, int, error) {
	var (
		task    *model.TaskModel
		created int
	)
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		t, err := s.ownedTask(ctx, tx.Clauses(clause.Locking{Strength: "UPDATE"}), r, id)
		if err != nil {
			return err
		}
		if t.Status != model.TaskStatusDraft {
			return apperr.InvalidState("only draft tasks can be published")
		}

		students, err := targetStudents(ctx, tx, t)
		if err != nil {
			return err
		}
		if len(students) > 0 {
			rows := make([]model.TaskSubmissionModel, 0, len(students))
			for _, sid := range students {
				rows = append(rows, model.TaskSubmissionModel{
					TaskID:        t.ID,
					StudentID:     sid,
					Status:        model.SubmissionStatusNotSubmitted,
					AttemptNumber: 1,
					IsActive:      true,
				})
			}
			res := tx.Clauses(clause.OnConflict{DoNothing: true}).CreateInBatches(&rows, 200)
			if res.Error != nil {
				return res.Error
			}
			created = int(res.RowsAffected)
		}

		t.Status = model.TaskStatusPublished
		if err := tx.Model(t).Updates(map[string]any{"status": t.Status, "updated_at": s.Now()}).Error; err != nil {
			return err
		}
		task = t
		return nil
	})
	if err != nil {
		return nil, 0, err
	}
	s.Log.Info("task published", zap.String("task_id", id.String()), zap.Int("submissions", created))
	return task, created, nil
}

// targetStudents is the class group roster, narrowed to target_student_ids
// when the task has any.
func targetStudents(ctx context.Context, tx *gorm.DB, t *model.TaskModel) ([]uuid.UUID, error) {
	q := tx.WithContext(ctx).
		Table("student_class_groups scg").
		Joins("JOIN subject_assignments sa ON sa.class_group_id = scg.class_group_id").
		Joins("JOIN students st ON st.id = scg.student_id AND st.is_active = TRUE").
		Where("sa.id = ?", t.SubjectAssignmentID)
	if len(t.TargetStudentIDs) > 0 {
		q = q.Where("scg.student_id::text = ANY(?)", t.TargetStudentIDs)
	}
	var ids []uuid.UUID
	err := q.Distinct("scg.student_id").Pluck("scg.student_id", &ids).Error
	return ids, err
}

func (s *TasksService) Close(ctx context.Context, r access.Requester, id uuid.UUID) (*model.TaskModel, error) {
	t, err := s.ownedTask(ctx, s.DB, r, id)
	if err != nil {
		return nil, err
	}
	if t.Status != model.TaskStatusPublished {
		return nil, apperr.InvalidState("only published tasks can be closed")
	}
	res := s.DB.WithContext(ctx).Model(&model.TaskModel{}).
		Where("id = ? AND status = ?", t.ID, model.TaskStatusPublished).
		Updates(map[string]any{"status": model.TaskStatusClosed, "updated_at": s.Now()})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, apperr.InvalidState("only published tasks can be closed")
	}
	t.Status = model.TaskStatusClosed
	return t, nil
}

// Delete soft-deletes the task. Submissions keep their rows.
func (s *TasksService) Delete(ctx context.Context, r access.Requester, id uuid.UUID) error {
	t, err := s.ownedTask(ctx, s.DB, r, id)
	if err != nil {
		return err
	}
	return s.DB.WithContext(ctx).Model(&model.TaskModel{}).
		Where("id = ?", t.ID).
		Updates(map[string]any{"is_active": false, "updated_at": s.Now()}).Error
}
