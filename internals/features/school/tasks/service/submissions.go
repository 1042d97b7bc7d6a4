package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	"schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
	"schoolhub_backend/internals/metrics"
)

// Submit hands in the caller's submission for a task. Task-level rules are
// checked before the caller, so a closed task is always an invalid-state
// error.
func (s *TasksService) Submit(ctx context.Context, r access.Requester, taskID uuid.UUID, req dto.SubmitTaskRequest) (*model.TaskSubmissionModel, error) {
	now := s.Now()
	in := lifecycle.SubmitInput{
		Content:         req.Content,
		SubmissionNotes: req.SubmissionNotes,
		AttachmentURLs:  req.AttachmentURLs,
	}

	var sub model.TaskSubmissionModel
	err := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		task, err := findTask(ctx, tx, taskID)
		if err != nil {
			return err
		}
		if err := lifecycle.CheckTaskOpen(task, now); err != nil {
			return err
		}
		studentID, err := s.studentID(ctx, r)
		if err != nil {
			return err
		}

		err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("task_id = ? AND student_id = ? AND is_active = TRUE", taskID, studentID).
			Take(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.Forbidden("task is not assigned to you")
		}
		if err != nil {
			return err
		}

		if err := lifecycle.ApplySubmission(task, &sub, in, now); err != nil {
			return err
		}
		sub.UpdatedAt = now
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.Submissions.WithLabelValues(string(sub.Status)).Inc()
	s.Log.Info("task submitted",
		zap.String("task_id", taskID.String()),
		zap.String("submission_id", sub.ID.String()),
		zap.String("status", string(sub.Status)),
		zap.Int("attempt", sub.AttemptNumber),
	)
	return &sub, nil
}

// Grade grades a submission of one of the caller's tasks, or returns it for
// revision.
func (s *TasksService) Grade(ctx context.Context, r access.Requester, submissionID uuid.UUID, req dto.GradeSubmissionRequest) (*model.TaskSubmissionModel, error) {
	now := s.Now()
	tid, err := s.teacherID(ctx, r)
	if err != nil {
		return nil, err
	}
	in := lifecycle.GradeInput{
		TeacherFeedback: req.TeacherFeedback,
		PrivateNotes:    req.PrivateNotes,
		NeedsRevision:   req.NeedsRevision,
	}
	if req.Grade != nil {
		in.Grade = *req.Grade
	}

	var sub model.TaskSubmissionModel
	err = s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ? AND is_active = TRUE", submissionID).
			Take(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("submission not found")
		}
		if err != nil {
			return err
		}
		task, err := findTask(ctx, tx, sub.TaskID)
		if err != nil {
			return err
		}
		if task.TeacherID != tid {
			return apperr.Forbidden("task belongs to another teacher")
		}

		if err := lifecycle.ApplyGrade(task, &sub, in, tid, now); err != nil {
			return err
		}
		sub.UpdatedAt = now
		return tx.Save(&sub).Error
	})
	if err != nil {
		return nil, err
	}

	metrics.Gradings.WithLabelValues(string(sub.Status)).Inc()
	s.Log.Info("submission graded",
		zap.String("submission_id", sub.ID.String()),
		zap.String("status", string(sub.Status)),
	)
	return &sub, nil
}

type submissionRow struct {
	model.TaskSubmissionModel
	StudentName string `gorm:"column:student_name"`
}

// Submissions lists every submission of a task with the student names.
func (s *TasksService) Submissions(ctx context.Context, r access.Requester, taskID uuid.UUID) ([]dto.SubmissionResponse, error) {
	task, err := s.ownedTask(ctx, s.DB, r, taskID)
	if err != nil {
		return nil, err
	}
	var rows []submissionRow
	err = s.DB.WithContext(ctx).
		Table("task_submissions ts").
		Select("ts.*, st.full_name AS student_name").
		Joins("JOIN students st ON st.id = ts.student_id").
		Where("ts.task_id = ? AND ts.is_active = TRUE", task.ID).
		Order("st.full_name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	now := s.Now()
	out := make([]dto.SubmissionResponse, 0, len(rows))
	for i := range rows {
		sub := &rows[i].TaskSubmissionModel
		item := dto.FromSubmission(sub, string(lifecycle.DeriveDisplayStatus(task, sub, now)), true)
		item.StudentName = rows[i].StudentName
		out = append(out, item)
	}
	return out, nil
}
