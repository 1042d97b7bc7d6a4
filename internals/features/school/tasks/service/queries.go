package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	"schoolhub_backend/internals/features/school/tasks/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/helpers/apperr"
)

// Get returns one task as the caller may see it. Students get their own
// submission and the derived display status.
func (s *TasksService) Get(ctx context.Context, r access.Requester, id uuid.UUID) (*dto.TaskResponse, error) {
	switch r.Role {
	case constants.RoleAdmin, constants.RoleTeacher:
		t, err := s.ownedTask(ctx, s.DB, r, id)
		if err != nil {
			return nil, err
		}
		resp := dto.FromTask(t)
		return &resp, nil

	case constants.RoleStudent:
		t, err := findTask(ctx, s.DB, id)
		if err != nil {
			return nil, err
		}
		sid, err := s.studentID(ctx, r)
		if err != nil {
			return nil, err
		}
		var sub model.TaskSubmissionModel
		err = s.DB.WithContext(ctx).
			Where("task_id = ? AND student_id = ? AND is_active = TRUE", id, sid).
			Take(&sub).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.Forbidden("task is not assigned to you")
		}
		if err != nil {
			return nil, err
		}
		resp := dto.FromTask(t)
		ds := string(lifecycle.DeriveDisplayStatus(t, &sub, s.Now()))
		mine := dto.FromSubmission(&sub, ds, false)
		resp.DisplayStatus = ds
		resp.MySubmission = &mine
		return &resp, nil

	case constants.RoleFamily:
		t, err := findTask(ctx, s.DB, id)
		if err != nil {
			return nil, err
		}
		linked, err := s.Dir.LinkedStudentIDs(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		if len(linked) > 0 {
			var n int64
			err = s.DB.WithContext(ctx).Model(&model.TaskSubmissionModel{}).
				Where("task_id = ? AND student_id IN ? AND is_active = TRUE", id, linked).
				Count(&n).Error
			if err != nil {
				return nil, err
			}
			if n > 0 {
				resp := dto.FromTask(t)
				return &resp, nil
			}
		}
		return nil, apperr.Forbidden("access denied")
	}
	return nil, apperr.Forbidden("access denied")
}

// List pages the tasks visible to the caller, newest due date first.
func (s *TasksService) List(ctx context.Context, r access.Requester, q dto.ListTasksQuery, p helper.Paging) ([]dto.TaskResponse, int64, error) {
	db := s.DB.WithContext(ctx).Model(&model.TaskModel{}).Where("tasks.is_active = TRUE")
	var studentID uuid.UUID

	switch r.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		tid, err := s.teacherID(ctx, r)
		if err != nil {
			return nil, 0, err
		}
		db = db.Where("tasks.teacher_id = ?", tid)
	case constants.RoleStudent:
		sid, err := s.studentID(ctx, r)
		if err != nil {
			return nil, 0, err
		}
		studentID = sid
		db = db.Where("tasks.status <> ?", model.TaskStatusDraft).
			Where("EXISTS (SELECT 1 FROM task_submissions ts WHERE ts.task_id = tasks.id AND ts.student_id = ? AND ts.is_active = TRUE)", sid)
	case constants.RoleFamily:
		linked, err := s.Dir.LinkedStudentIDs(ctx, r.UserID)
		if err != nil {
			return nil, 0, err
		}
		if len(linked) == 0 {
			return []dto.TaskResponse{}, 0, nil
		}
		db = db.Where("tasks.status <> ?", model.TaskStatusDraft).
			Where("EXISTS (SELECT 1 FROM task_submissions ts WHERE ts.task_id = tasks.id AND ts.student_id IN ? AND ts.is_active = TRUE)", linked)
	default:
		return nil, 0, apperr.Forbidden("access denied")
	}

	if q.Status != "" {
		db = db.Where("tasks.status = ?", q.Status)
	}
	if q.SubjectAssignmentID != "" {
		db = db.Where("tasks.subject_assignment_id = ?", q.SubjectAssignmentID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	var tasks []model.TaskModel
	if err := db.Order("tasks.due_date DESC, tasks.id ASC").Offset(p.Offset).Limit(p.Limit).Find(&tasks).Error; err != nil {
		return nil, 0, err
	}

	out := make([]dto.TaskResponse, 0, len(tasks))
	if studentID == uuid.Nil {
		for i := range tasks {
			out = append(out, dto.FromTask(&tasks[i]))
		}
		return out, total, nil
	}

	subs, err := s.studentSubmissions(ctx, studentID, tasks)
	if err != nil {
		return nil, 0, err
	}
	now := s.Now()
	for i := range tasks {
		t := &tasks[i]
		resp := dto.FromTask(t)
		sub := subs[t.ID]
		ds := string(lifecycle.DeriveDisplayStatus(t, sub, now))
		resp.DisplayStatus = ds
		if sub != nil {
			mine := dto.FromSubmission(sub, ds, false)
			resp.MySubmission = &mine
		}
		out = append(out, resp)
	}
	return out, total, nil
}

func (s *TasksService) studentSubmissions(ctx context.Context, studentID uuid.UUID, tasks []model.TaskModel) (map[uuid.UUID]*model.TaskSubmissionModel, error) {
	out := make(map[uuid.UUID]*model.TaskSubmissionModel, len(tasks))
	if len(tasks) == 0 {
		return out, nil
	}
	ids := make([]uuid.UUID, len(tasks))
	for i, t := range tasks {
		ids[i] = t.ID
	}
	var subs []model.TaskSubmissionModel
	err := s.DB.WithContext(ctx).
		Where("student_id = ? AND task_id IN ? AND is_active = TRUE", studentID, ids).
		Find(&subs).Error
	if err != nil {
		return nil, err
	}
	for i := range subs {
		out[subs[i].TaskID] = &subs[i]
	}
	return out, nil
}
