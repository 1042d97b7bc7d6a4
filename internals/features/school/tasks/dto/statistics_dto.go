package dto

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/grades/engine"
	"schoolhub_backend/internals/features/school/tasks/lifecycle"
	helper "schoolhub_backend/internals/helpers"
)

type StatisticsResponse struct {
	TaskID            *uuid.UUID      `json:"taskId,omitempty"`
	TotalTasks        int             `json:"totalTasks,omitempty"`
	TotalSubmissions  int             `json:"totalSubmissions"`
	NotSubmitted      int             `json:"notSubmitted"`
	HandedIn          int             `json:"handedIn"`
	Graded            int             `json:"graded"`
	Returned          int             `json:"returned"`
	Late              int             `json:"late"`
	CompletionRate    float64         `json:"completionRate"`
	SubmissionRate    float64         `json:"submissionRate"`
	OnTimeRate        float64         `json:"onTimeRate"`
	AverageGrade      *float64        `json:"averageGrade"`
	GradeDistribution []engine.Bucket `json:"gradeDistribution"`
}

func FromStats(st lifecycle.Stats) StatisticsResponse {
	return StatisticsResponse{
		TotalSubmissions:  st.Total,
		NotSubmitted:      st.NotSubmitted,
		HandedIn:          st.HandedIn,
		Graded:            st.Graded,
		Returned:          st.Returned,
		Late:              st.Late,
		CompletionRate:    helper.Round2(st.CompletionRate),
		SubmissionRate:    helper.Round2(st.SubmissionRate),
		OnTimeRate:        helper.Round2(st.OnTimeRate),
		AverageGrade:      helper.Round1Ptr(st.AverageGrade),
		GradeDistribution: st.Distribution,
	}
}

/* =========================================================
   CLASS / SUBJECT GRADES
========================================================= */

type TaskGradeItem struct {
	TaskID     uuid.UUID `json:"taskId"`
	Title      string    `json:"title"`
	FinalGrade float64   `json:"finalGrade"`
	MaxPoints  float64   `json:"maxPoints"`
	IsLate     bool      `json:"isLate"`
}

type StudentSubjectGrade struct {
	StudentID        uuid.UUID       `json:"studentId"`
	FullName         string          `json:"fullName"`
	EnrollmentNumber string          `json:"enrollmentNumber"`
	Average          *float64        `json:"average"`
	GradedTasks      int             `json:"gradedTasks"`
	Grades           []TaskGradeItem `json:"grades"`
}

type ClassStatisticsResponse struct {
	ClassAverage float64 `json:"classAverage"`
	HighestGrade float64 `json:"highestGrade"`
	LowestGrade  float64 `json:"lowestGrade"`
	PassingRate  float64 `json:"passingRate"`
}

func FromClassStatistics(st engine.ClassStatistics) ClassStatisticsResponse {
	return ClassStatisticsResponse{
		ClassAverage: helper.Round1(st.ClassAverage),
		HighestGrade: helper.Round1(st.HighestGrade),
		LowestGrade:  helper.Round1(st.LowestGrade),
		PassingRate:  helper.Round2(st.PassingRate),
	}
}

type ClassSubjectGradesResponse struct {
	ClassGroupID   uuid.UUID               `json:"classGroupId"`
	ClassGroupName string                  `json:"classGroupName"`
	SubjectID      uuid.UUID               `json:"subjectId"`
	SubjectName    string                  `json:"subjectName"`
	Students       []StudentSubjectGrade   `json:"students"`
	Statistics     ClassStatisticsResponse `json:"statistics"`
}
