package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolhub_backend/internals/constants"
	"schoolhub_backend/internals/features/school/access"
	academicModel "schoolhub_backend/internals/features/school/academics/model"
	"schoolhub_backend/internals/features/school/grades/engine"
	studentModel "schoolhub_backend/internals/features/school/students/model"
	"schoolhub_backend/internals/features/school/tasks/dto"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	"schoolhub_backend/internals/features/school/tasks/model"
	helper "schoolhub_backend/internals/helpers"
	"schoolhub_backend/internals/helpers/apperr"
)

func (s *TasksService) TaskStatistics(ctx context.Context, r access.Requester, taskID uuid.UUID) (*dto.StatisticsResponse, error) {
	task, err := s.ownedTask(ctx, s.DB, r, taskID)
	if err != nil {
		return nil, err
	}
	var subs []model.TaskSubmissionModel
	if err := s.DB.WithContext(ctx).
		Where("task_id = ? AND is_active = TRUE", task.ID).
		Find(&subs).Error; err != nil {
		return nil, err
	}
	entries := make([]lifecycle.Entry, len(subs))
	for i := range subs {
		entries[i] = lifecycle.Entry{Submission: &subs[i], MaxPoints: task.MaxPoints}
	}
	resp := dto.FromStats(lifecycle.ComputeStats(entries))
	resp.TaskID = &task.ID
	return &resp, nil
}

// TeacherStatistics aggregates the submissions of every active task of the
// calling teacher.
func (s *TasksService) TeacherStatistics(ctx context.Context, r access.Requester) (*dto.StatisticsResponse, error) {
	tid, err := s.teacherID(ctx, r)
	if err != nil {
		return nil, err
	}
	var tasks []model.TaskModel
	if err := s.DB.WithContext(ctx).
		Where("teacher_id = ? AND is_active = TRUE", tid).
		Find(&tasks).Error; err != nil {
		return nil, err
	}
	scale := make(map[uuid.UUID]float64, len(tasks))
	ids := make([]uuid.UUID, 0, len(tasks))
	for _, t := range tasks {
		scale[t.ID] = t.MaxPoints
		ids = append(ids, t.ID)
	}

	var subs []model.TaskSubmissionModel
	if len(ids) > 0 {
		if err := s.DB.WithContext(ctx).
			Where("task_id IN ? AND is_active = TRUE", ids).
			Find(&subs).Error; err != nil {
			return nil, err
		}
	}
	entries := make([]lifecycle.Entry, len(subs))
	for i := range subs {
		entries[i] = lifecycle.Entry{Submission: &subs[i], MaxPoints: scale[subs[i].TaskID]}
	}
	resp := dto.FromStats(lifecycle.ComputeStats(entries))
	resp.TotalTasks = len(tasks)
	return &resp, nil
}

type gradedRow struct {
	StudentID  uuid.UUID
	TaskID     uuid.UUID
	Title      string
	FinalGrade float64
	MaxPoints  float64
	IsLate     bool
}

// ClassSubjectGrades lists the task grades of every student of a class group
// in one subject. Statistics only cover students with at least one graded
// task.
func (s *TasksService) ClassSubjectGrades(ctx context.Context, r access.Requester, classGroupID, subjectID uuid.UUID) (*dto.ClassSubjectGradesResponse, error) {
	db := s.DB.WithContext(ctx)

	var cg studentModel.ClassGroupModel
	if err := db.Where("id = ? AND is_active = TRUE", classGroupID).Take(&cg).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("class group not found")
		}
		return nil, err
	}
	var subj academicModel.SubjectModel
	if err := db.Where("id = ? AND is_active = TRUE", subjectID).Take(&subj).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperr.NotFound("subject not found")
		}
		return nil, err
	}

	switch r.Role {
	case constants.RoleAdmin:
	case constants.RoleTeacher:
		tid, err := s.teacherID(ctx, r)
		if err != nil {
			return nil, err
		}
		var n int64
		if err := db.Model(&academicModel.SubjectAssignmentModel{}).
			Where("teacher_id = ? AND class_group_id = ? AND subject_id = ? AND is_active = TRUE", tid, classGroupID, subjectID).
			Count(&n).Error; err != nil {
			return nil, err
		}
		if n == 0 {
			return nil, apperr.Forbidden("you do not teach this subject in this class group")
		}
	default:
		return nil, apperr.Forbidden("access denied")
	}

	var students []studentModel.StudentModel
	if err := db.
		Joins("JOIN student_class_groups scg ON scg.student_id = students.id").
		Where("scg.class_group_id = ? AND students.is_active = TRUE", classGroupID).
		Order("students.full_name ASC").
		Find(&students).Error; err != nil {
		return nil, err
	}

	var rows []gradedRow
	if err := db.
		Table("task_submissions ts").
		Select("ts.student_id, t.id AS task_id, t.title, ts.final_grade, t.max_points, ts.is_late").
		Joins("JOIN tasks t ON t.id = ts.task_id AND t.is_active = TRUE").
		Joins("JOIN subject_assignments sa ON sa.id = t.subject_assignment_id").
		Where("sa.class_group_id = ? AND sa.subject_id = ?", classGroupID, subjectID).
		Where("ts.is_active = TRUE AND ts.is_graded = TRUE AND ts.final_grade IS NOT NULL").
		Order("t.due_date ASC").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	byStudent := make(map[uuid.UUID][]gradedRow)
	for _, row := range rows {
		byStudent[row.StudentID] = append(byStudent[row.StudentID], row)
	}

	resp := &dto.ClassSubjectGradesResponse{
		ClassGroupID:   cg.ID,
		ClassGroupName: cg.Name,
		SubjectID:      subj.ID,
		SubjectName:    subj.Name,
		Students:       make([]dto.StudentSubjectGrade, 0, len(students)),
	}
	var averages []float64
	for _, st := range students {
		items := byStudent[st.ID]
		grades := make([]engine.TaskGrade, 0, len(items))
		list := make([]dto.TaskGradeItem, 0, len(items))
		for _, it := range items {
			fg := it.FinalGrade
			grades = append(grades, engine.TaskGrade{IsGraded: true, FinalGrade: &fg, MaxPoints: it.MaxPoints})
			list = append(list, dto.TaskGradeItem{
				TaskID: it.TaskID, Title: it.Title, FinalGrade: it.FinalGrade,
				MaxPoints: it.MaxPoints, IsLate: it.IsLate,
			})
		}
		avg := engine.TaskAverage(grades)
		if avg != nil {
			averages = append(averages, *avg)
		}
		resp.Students = append(resp.Students, dto.StudentSubjectGrade{
			StudentID:        st.ID,
			FullName:         st.FullName,
			EnrollmentNumber: st.EnrollmentNumber,
			Average:          helper.Round1Ptr(avg),
			GradedTasks:      len(items),
			Grades:           list,
		})
	}
	resp.Statistics = dto.FromClassStatistics(engine.ComputeClassStatistics(averages))
	return resp, nil
}
