package lifecycle

import (
	"schoolhub_backend/internals/features/school/grades/engine"
	"schoolhub_backend/internals/features/school/tasks/model"
)

// Stats aggregates submissions of one task or of all tasks of a teacher.
// Rates are percentages in 0–100, AverageGrade is on the 0–10 scale.
type Stats struct {
	Total          int
	NotSubmitted   int
	HandedIn       int
	Graded         int
	Returned       int
	Late           int
	CompletionRate float64
	SubmissionRate float64
	OnTimeRate     float64
	AverageGrade   *float64
	Distribution   []engine.Bucket
}

// Entry is one submission with the scale of its task.
type Entry struct {
	Submission *model.TaskSubmissionModel
	MaxPoints  float64
}

func ratio(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

func ComputeStats(entries []Entry) Stats {
	var (
		st      Stats
		grades  []engine.TaskGrade
		percent []float64
	)
	st.Total = len(entries)
	for _, e := range entries {
		s := e.Submission
		if !s.HasBeenSubmitted() {
			st.NotSubmitted++
			continue
		}
		st.HandedIn++
		if s.IsLate {
			st.Late++
		}
		if s.Status == model.SubmissionStatusReturned {
			st.Returned++
		}
		if s.IsGraded && s.FinalGrade != nil {
			st.Graded++
			grades = append(grades, engine.TaskGrade{IsGraded: true, FinalGrade: s.FinalGrade, MaxPoints: e.MaxPoints})
			percent = append(percent, engine.GradePercentage(*s.FinalGrade, e.MaxPoints))
		}
	}

	st.CompletionRate = ratio(st.Graded, st.HandedIn)
	st.SubmissionRate = ratio(st.Total-st.NotSubmitted, st.Total)
	st.OnTimeRate = ratio(st.HandedIn-st.Late, st.HandedIn)
	st.AverageGrade = engine.TaskAverage(grades)
	st.Distribution = engine.Distribution(percent)
	return st
}
