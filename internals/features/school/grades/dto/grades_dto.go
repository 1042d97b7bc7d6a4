// file: internals/features/school/grades/dto/grades_dto.go
package dto

import (
	"sort"
	"time"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/grades/engine"
	helper "schoolhub_backend/internals/helpers"
)

/* =========================================================
   RESPONSE
========================================================= */

type ClassGroupRef struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type StudentInfo struct {
	ID               uuid.UUID       `json:"id"`
	FullName         string          `json:"fullName"`
	EnrollmentNumber string          `json:"enrollmentNumber"`
	EducationalLevel string          `json:"educationalLevel"`
	ClassGroups      []ClassGroupRef `json:"classGroups"`
}

type Summary struct {
	OverallAverage    float64    `json:"overallAverage"`
	TotalSubjects     int        `json:"totalSubjects"`
	TotalGradedItems  int        `json:"totalGradedItems"`
	TotalPendingTasks int        `json:"totalPendingTasks"`
	LastActivityDate  *time.Time `json:"lastActivityDate"`
}

type SubjectGrade struct {
	SubjectAssignmentID uuid.UUID `json:"subjectAssignmentId"`
	SubjectID           uuid.UUID `json:"subjectId"`
	SubjectName         string    `json:"subjectName"`
	SubjectCode         string    `json:"subjectCode"`
	TeacherName         string    `json:"teacherName"`
	TaskAverage         *float64  `json:"taskAverage"`
	ActivityAverage     *float64  `json:"activityAverage"`
	CompetencyAverage   *float64  `json:"competencyAverage"`
	AverageGrade        float64   `json:"averageGrade"`
	GradedTasks         int       `json:"gradedTasks"`
	ScoredActivities    int       `json:"scoredActivities"`
}

// Recent grade kinds
const (
	RecentKindTask       = "task"
	RecentKindActivity   = "activity"
	RecentKindEvaluation = "evaluation"
)

type RecentGrade struct {
	Kind        string    `json:"kind"`
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	SubjectName string    `json:"subjectName,omitempty"`
	Grade       float64   `json:"grade"`
	RawGrade    string    `json:"rawGrade"`
	MaxScore    float64   `json:"maxScore"`
	Date        time.Time `json:"date"`
}

type StudentGradesResponse struct {
	Student       StudentInfo    `json:"student"`
	Summary       Summary        `json:"summary"`
	SubjectGrades []SubjectGrade `json:"subjectGrades"`
	RecentGrades  []RecentGrade  `json:"recentGrades"`
}

// RecentLimit caps recentGrades.
const RecentLimit = 10

/* =========================================================
   BUILDERS (the only place where rounding happens)
========================================================= */

func FromSubjectResult(r engine.SubjectResult) SubjectGrade {
	return SubjectGrade{
		SubjectAssignmentID: r.SubjectAssignmentID,
		SubjectID:           r.SubjectID,
		SubjectName:         r.SubjectName,
		SubjectCode:         r.SubjectCode,
		TeacherName:         r.TeacherName,
		TaskAverage:         helper.Round1Ptr(r.TaskAverage),
		ActivityAverage:     helper.Round1Ptr(r.ActivityAverage),
		CompetencyAverage:   helper.Round1Ptr(r.CompetencyAverage),
		AverageGrade:        helper.Round1(r.AverageGrade),
		GradedTasks:         r.GradedTasks,
		ScoredActivities:    r.ScoredActivities,
	}
}

// BuildResponse assembles the report. recent may be in any order; it is
// sorted newest first and truncated to RecentLimit.
func BuildResponse(student StudentInfo, results []engine.SubjectResult, pendingTasks int, recent []RecentGrade) StudentGradesResponse {
	subjects := make([]SubjectGrade, 0, len(results))
	graded := 0
	for _, r := range results {
		subjects = append(subjects, FromSubjectResult(r))
		graded += r.GradedTasks + r.ScoredActivities
	}

	sort.SliceStable(recent, func(i, j int) bool { return recent[i].Date.After(recent[j].Date) })
	var last *time.Time
	if len(recent) > 0 {
		d := recent[0].Date
		last = &d
	}
	if len(recent) > RecentLimit {
		recent = recent[:RecentLimit]
	}
	for i := range recent {
		recent[i].Grade = helper.Round1(recent[i].Grade)
	}
	if recent == nil {
		recent = []RecentGrade{}
	}
	if student.ClassGroups == nil {
		student.ClassGroups = []ClassGroupRef{}
	}

	return StudentGradesResponse{
		Student: student,
		Summary: Summary{
			OverallAverage:    helper.Round1(engine.OverallOf(results)),
			TotalSubjects:     len(results),
			TotalGradedItems:  graded,
			TotalPendingTasks: pendingTasks,
			LastActivityDate:  last,
		},
		SubjectGrades: subjects,
		RecentGrades:  recent,
	}
}
