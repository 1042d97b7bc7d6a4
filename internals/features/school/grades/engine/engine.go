// Package engine holds the pure grade aggregation rules. Nothing here touches
// the database; callers pass already loaded and access-checked rows.
//
// All averages are on a 0–10 scale. Rounding is left to the DTO layer.
package engine

import (
	"github.com/google/uuid"
)

// DefaultScale is used when a task has no max_points or an activity no max_score.
const DefaultScale = 10.0

// PassingGrade is the inclusive threshold for the class passing rate.
const PassingGrade = 5.0

// TaskGrade is one submission as seen by the aggregation.
type TaskGrade struct {
	SubjectAssignmentID uuid.UUID
	IsGraded            bool
	FinalGrade          *float64
	MaxPoints           float64
}

// ActivityScore is one assessment as seen by the aggregation.
type ActivityScore struct {
	SubjectAssignmentID uuid.UUID
	IsScore             bool
	Value               string
	MaxScore            *float64
}

// Subject identifies one subject assignment of the student.
type Subject struct {
	SubjectAssignmentID uuid.UUID
	SubjectID           uuid.UUID
	SubjectName         string
	SubjectCode         string
	TeacherName         string
}

type SubjectResult struct {
	Subject
	TaskAverage       *float64
	ActivityAverage   *float64
	CompetencyAverage *float64
	AverageGrade      float64
	GradedTasks       int
	ScoredActivities  int
}

func scaleOr(v float64) float64 {
	if v > 0 {
		return v
	}
	return DefaultScale
}

func mean(xs []float64) *float64 {
	if len(xs) == 0 {
		return nil
	}
	var sum float64
	for _, x := range xs {
		sum += x
	}
	m := sum / float64(len(xs))
	return &m
}

// NormalizeTask maps a final grade onto 0–10 using maxPoints (10 when unset).
func NormalizeTask(finalGrade, maxPoints float64) float64 {
	return finalGrade / scaleOr(maxPoints) * 10
}

// TaskAverage averages graded submissions with a final grade. nil means no
// data, which is not the same as a zero average.
func TaskAverage(items []TaskGrade) *float64 {
	vals := make([]float64, 0, len(items))
	for _, it := range items {
		if !it.IsGraded || it.FinalGrade == nil {
			continue
		}
		vals = append(vals, NormalizeTask(*it.FinalGrade, it.MaxPoints))
	}
	return mean(vals)
}

// ActivityValue parses a score-type assessment onto 0–10. ok is false for
// qualitative assessments and non-numeric values.
func ActivityValue(a ActivityScore) (float64, bool) {
	if !a.IsScore {
		return 0, false
	}
	v, ok := ParseNumeric(a.Value)
	if !ok {
		return 0, false
	}
	scale := DefaultScale
	if a.MaxScore != nil {
		scale = scaleOr(*a.MaxScore)
	}
	return v / scale * 10, true
}

func ActivityAverage(items []ActivityScore) *float64 {
	vals := make([]float64, 0, len(items))
	for _, it := range items {
		if v, ok := ActivityValue(it); ok {
			vals = append(vals, v)
		}
	}
	return mean(vals)
}

// CompetencyAverage is the mean overall score of all evaluations of the
// student. Evaluations carry no subject, so the same value is shared by
// every subject.
func CompetencyAverage(overallScores []float64) *float64 {
	return mean(overallScores)
}

// SubjectAverage is the mean of the non-nil partial averages, or 0 when all
// three are nil.
func SubjectAverage(task, activity, competency *float64) float64 {
	vals := make([]float64, 0, 3)
	for _, p := range []*float64{task, activity, competency} {
		if p != nil {
			vals = append(vals, *p)
		}
	}
	if m := mean(vals); m != nil {
		return *m
	}
	return 0
}

// OverallAverage averages the subject averages above zero. Returns 0 when
// no subject has graded items.
func OverallAverage(subjectAverages []float64) float64 {
	vals := make([]float64, 0, len(subjectAverages))
	for _, v := range subjectAverages {
		if v > 0 {
			vals = append(vals, v)
		}
	}
	if m := mean(vals); m != nil {
		return *m
	}
	return 0
}

// SubjectGrades computes one result per subject, in the order given.
func SubjectGrades(subjects []Subject, tasks []TaskGrade, activities []ActivityScore, evaluationScores []float64) []SubjectResult {
	tasksBy := make(map[uuid.UUID][]TaskGrade)
	for _, t := range tasks {
		tasksBy[t.SubjectAssignmentID] = append(tasksBy[t.SubjectAssignmentID], t)
	}
	actsBy := make(map[uuid.UUID][]ActivityScore)
	for _, a := range activities {
		actsBy[a.SubjectAssignmentID] = append(actsBy[a.SubjectAssignmentID], a)
	}
	competency := CompetencyAverage(evaluationScores)

	out := make([]SubjectResult, 0, len(subjects))
	for _, s := range subjects {
		st := tasksBy[s.SubjectAssignmentID]
		sa := actsBy[s.SubjectAssignmentID]
		r := SubjectResult{
			Subject:           s,
			TaskAverage:       TaskAverage(st),
			ActivityAverage:   ActivityAverage(sa),
			CompetencyAverage: competency,
		}
		r.AverageGrade = SubjectAverage(r.TaskAverage, r.ActivityAverage, r.CompetencyAverage)
		for _, t := range st {
			if t.IsGraded && t.FinalGrade != nil {
				r.GradedTasks++
			}
		}
		for _, a := range sa {
			if _, ok := ActivityValue(a); ok {
				r.ScoredActivities++
			}
		}
		out = append(out, r)
	}
	return out
}

// OverallOf is OverallAverage over SubjectGrades output.
func OverallOf(results []SubjectResult) float64 {
	avgs := make([]float64, len(results))
	for i, r := range results {
		avgs[i] = r.AverageGrade
	}
	return OverallAverage(avgs)
}
