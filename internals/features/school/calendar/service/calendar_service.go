// file: internals/features/school/calendar/service/calendar_service.go
package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	"schoolhub_backend/internals/features/school/calendar/dto"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	taskModel "schoolhub_backend/internals/features/school/tasks/model"
	"schoolhub_backend/internals/helpers/apperr"
)

// MaxRange bounds a single calendar query.
const MaxRange = 366 * 24 * time.Hour

type Directory interface {
	TeacherIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	StudentIDForUser(ctx context.Context, userID uuid.UUID) (uuid.UUID, bool, error)
	LinkedStudentIDs(ctx context.Context, userID uuid.UUID) ([]uuid.UUID, error)
}

type CalendarService struct {
	DB  *gorm.DB
	Dir Directory
	Now func() time.Time
}

func NewCalendarService(db *gorm.DB, dir Directory) *CalendarService {
	return &CalendarService{DB: db, Dir: dir, Now: func() time.Time { return time.Now().UTC() }}
}

// ResolveRange fills the defaults (7 days back, 30 days ahead) and checks
// the bounds.
func ResolveRange(from, to *time.Time, now time.Time) (dto.Range, error) {
	r := dto.Range{From: now.AddDate(0, 0, -7), To: now.AddDate(0, 0, 30)}
	if from != nil {
		r.From = *from
	}
	if to != nil {
		r.To = *to
	}
	if r.To.Before(r.From) {
		return r, apperr.InvalidState("end date must not be before start date")
	}
	if r.To.Sub(r.From) > MaxRange {
		return r, apperr.InvalidState("date range is too long")
	}
	return r, nil
}

type eventRow struct {
	taskModel.TaskModel
	SubjectName  string
	ClassGroup   string
	StudentID    *uuid.UUID
	StudentName  string
	SubStatus    *string
	SubmissionID *uuid.UUID
}

// Events lists task due dates in the range visible to the caller.
func (s *CalendarService) Events(ctx context.Context, r access.Requester, from, to *time.Time) ([]dto.Event, error) {
	now := s.Now()
	rng, err := ResolveRange(from, to, now)
	if err != nil {
		return nil, err
	}

	q := s.DB.WithContext(ctx).
		Table("tasks").
		Joins("JOIN subject_assignments sa ON sa.id = tasks.subject_assignment_id").
		Joins("JOIN subjects sj ON sj.id = sa.subject_id").
		Joins("JOIN class_groups cg ON cg.id = sa.class_group_id").
		Where("tasks.is_active = TRUE AND tasks.due_date BETWEEN ? AND ?", rng.From, rng.To)

	const baseSelect = "tasks.*, sj.name AS subject_name, cg.name AS class_group"

	switch r.Role {
	case constants.RoleAdmin:
		q = q.Select(baseSelect).Where("tasks.status <> ?", taskModel.TaskStatusDraft)
	case constants.RoleTeacher:
		tid, ok, err := s.Dir.TeacherIDForUser(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("teacher not found")
		}
		q = q.Select(baseSelect).Where("tasks.teacher_id = ?", tid)
	case constants.RoleStudent:
		sid, ok, err := s.Dir.StudentIDForUser(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, apperr.NotFound("student not found")
		}
		q = q.Select(baseSelect+", ts.id AS submission_id, ts.status AS sub_status").
			Joins("JOIN task_submissions ts ON ts.task_id = tasks.id AND ts.is_active = TRUE").
			Where("ts.student_id = ? AND tasks.status <> ?", sid, taskModel.TaskStatusDraft)
	case constants.RoleFamily:
		linked, err := s.Dir.LinkedStudentIDs(ctx, r.UserID)
		if err != nil {
			return nil, err
		}
		if len(linked) == 0 {
			return []dto.Event{}, nil
		}
		q = q.Select(baseSelect+", ts.id AS submission_id, ts.status AS sub_status, st.id AS student_id, st.full_name AS student_name").
			Joins("JOIN task_submissions ts ON ts.task_id = tasks.id AND ts.is_active = TRUE").
			Joins("JOIN students st ON st.id = ts.student_id").
			Where("ts.student_id IN ? AND tasks.status <> ?", linked, taskModel.TaskStatusDraft)
	default:
		return nil, apperr.Forbidden("access denied")
	}

	var rows []eventRow
	if err := q.Order("tasks.due_date ASC").Scan(&rows).Error; err != nil {
		return nil, err
	}
	return toEvents(rows, now), nil
}

func toEvents(rows []eventRow, now time.Time) []dto.Event {
	out := make([]dto.Event, 0, len(rows))
	for i := range rows {
		row := &rows[i]
		var sub *taskModel.TaskSubmissionModel
		if row.SubStatus != nil {
			sub = &taskModel.TaskSubmissionModel{Status: taskModel.SubmissionStatus(*row.SubStatus)}
		}
		kind := dto.EventTask
		if row.IsExam() {
			kind = dto.EventExam
		}
		out = append(out, dto.Event{
			TaskID:        row.ID,
			Type:          kind,
			Title:         row.Title,
			SubjectName:   row.SubjectName,
			ClassGroup:    row.ClassGroup,
			Date:          row.DueDate,
			DisplayStatus: string(lifecycle.DeriveDisplayStatus(&row.TaskModel, sub, now)),
			StudentID:     row.StudentID,
			StudentName:   row.StudentName,
		})
	}
	return out
}
