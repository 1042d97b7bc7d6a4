// file: internals/features/school/grades/service/grades_service.go
package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"schoolhub_backend/internals/features/school/access"
	activityModel "schoolhub_backend/internals/features/school/activities/model"
	"schoolhub_backend/internals/features/school/grades/dto"
	"schoolhub_backend/internals/features/school/grades/engine"
	taskModel "schoolhub_backend/internals/features/school/tasks/model"
)

type GradesService struct {
	Store Store
	Edges access.Edges
	Log   *zap.Logger
}

func NewGradesService(store Store, edges access.Edges, log *zap.Logger) *GradesService {
	return &GradesService{Store: store, Edges: edges, Log: log.Named("grades")}
}

// StudentGrades builds the grade report of one student after checking that
// the requester may see it.
func (s *GradesService) StudentGrades(ctx context.Context, r access.Requester, studentID uuid.UUID) (*dto.StudentGradesResponse, error) {
	if err := access.Authorize(ctx, s.Edges, r, studentID); err != nil {
		return nil, err
	}

	st, err := s.Store.LoadStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	info := dto.StudentInfo{
		ID:               st.ID,
		FullName:         st.FullName,
		EnrollmentNumber: st.EnrollmentNumber,
		EducationalLevel: st.EducationalLevel,
	}
	classIDs := make([]uuid.UUID, 0, len(st.ClassGroups))
	for _, cg := range st.ClassGroups {
		classIDs = append(classIDs, cg.ID)
		info.ClassGroups = append(info.ClassGroups, dto.ClassGroupRef{ID: cg.ID, Name: cg.Name})
	}

	subjects, err := s.Store.LoadSubjects(ctx, classIDs)
	if err != nil {
		return nil, errors.Wrap(err, "load subjects")
	}
	subs, err := s.Store.LoadSubmissions(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "load submissions")
	}
	assessments, err := s.Store.LoadAssessments(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "load assessments")
	}
	evaluations, err := s.Store.LoadEvaluations(ctx, studentID)
	if err != nil {
		return nil, errors.Wrap(err, "load evaluations")
	}

	subjectNames := make(map[uuid.UUID]string, len(subjects))
	for _, sj := range subjects {
		subjectNames[sj.SubjectAssignmentID] = sj.SubjectName
	}

	var (
		taskGrades []engine.TaskGrade
		actScores  []engine.ActivityScore
		evalScores []float64
		recent     []dto.RecentGrade
		pending    int
	)

	for i := range subs {
		sub := &subs[i]
		if sub.Task == nil {
			continue
		}
		taskGrades = append(taskGrades, engine.TaskGrade{
			SubjectAssignmentID: sub.Task.SubjectAssignmentID,
			IsGraded:            sub.IsGraded,
			FinalGrade:          sub.FinalGrade,
			MaxPoints:           sub.Task.MaxPoints,
		})
		if isPending(sub) {
			pending++
		}
		if sub.IsGraded && sub.FinalGrade != nil {
			recent = append(recent, dto.RecentGrade{
				Kind:        dto.RecentKindTask,
				ID:          sub.ID,
				Title:       sub.Task.Title,
				SubjectName: subjectNames[sub.Task.SubjectAssignmentID],
				Grade:       engine.NormalizeTask(*sub.FinalGrade, sub.Task.MaxPoints),
				RawGrade:    formatScore(*sub.FinalGrade),
				MaxScore:    sub.Task.PointsScale(),
				Date:        gradedDate(sub),
			})
		}
	}

	for i := range assessments {
		a := &assessments[i]
		if a.Activity == nil {
			continue
		}
		score := engine.ActivityScore{
			SubjectAssignmentID: a.Activity.SubjectAssignmentID,
			IsScore:             a.Activity.ValuationType == activityModel.ValuationScore,
			Value:               a.Value,
			MaxScore:            a.Activity.MaxScore,
		}
		actScores = append(actScores, score)
		if v, ok := engine.ActivityValue(score); ok {
			recent = append(recent, dto.RecentGrade{
				Kind:        dto.RecentKindActivity,
				ID:          a.ID,
				Title:       a.Activity.Title,
				SubjectName: subjectNames[a.Activity.SubjectAssignmentID],
				Grade:       v,
				RawGrade:    a.Value,
				MaxScore:    a.Activity.ScoreScale(),
				Date:        a.AssessedAt,
			})
		}
	}

	for _, ev := range evaluations {
		evalScores = append(evalScores, ev.OverallScore)
		recent = append(recent, dto.RecentGrade{
			Kind:     dto.RecentKindEvaluation,
			ID:       ev.ID,
			Title:    ev.Title,
			Grade:    ev.OverallScore,
			RawGrade: formatScore(ev.OverallScore),
			MaxScore: engine.DefaultScale,
			Date:     ev.EvaluatedAt,
		})
	}

	results := engine.SubjectGrades(subjects, taskGrades, actScores, evalScores)
	resp := dto.BuildResponse(info, results, pending, recent)

	s.Log.Debug("student grades built",
		zap.String("student_id", studentID.String()),
		zap.String("requester_role", r.Role),
		zap.Int("subjects", len(results)),
		zap.Int("submissions", len(subs)),
		zap.Int("assessments", len(assessments)),
		zap.Int("evaluations", len(evaluations)),
	)
	return &resp, nil
}

// isPending: published task still waiting for a (re)submission.
func isPending(sub *taskModel.TaskSubmissionModel) bool {
	if sub.Task.Status != taskModel.TaskStatusPublished || sub.Task.IsExam() {
		return false
	}
	return sub.Status == taskModel.SubmissionStatusNotSubmitted ||
		sub.Status == taskModel.SubmissionStatusReturned
}

func gradedDate(sub *taskModel.TaskSubmissionModel) time.Time {
	if sub.GradedAt != nil {
		return *sub.GradedAt
	}
	return sub.UpdatedAt
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
