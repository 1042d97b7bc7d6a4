package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"schoolhub_backend/internals/features/school/tasks/model"
)

func graded(final float64, late bool) *model.TaskSubmissionModel {
	return &model.TaskSubmissionModel{Status: model.SubmissionStatusGraded, IsGraded: true, FinalGrade: &final, IsLate: late}
}

func TestComputeStatsEmpty(t *testing.T) {
	st := ComputeStats(nil)
	assert.Equal(t, 0, st.Total)
	assert.Equal(t, 0.0, st.CompletionRate)
	assert.Equal(t, 0.0, st.SubmissionRate)
	assert.Equal(t, 0.0, st.OnTimeRate)
	assert.Nil(t, st.AverageGrade)
	assert.Len(t, st.Distribution, 5)
}

func TestComputeStatsAllNotSubmitted(t *testing.T) {
	st := ComputeStats([]Entry{
		{Submission: &model.TaskSubmissionModel{Status: model.SubmissionStatusNotSubmitted}, MaxPoints: 10},
		{Submission: &model.TaskSubmissionModel{Status: model.SubmissionStatusNotSubmitted}, MaxPoints: 10},
	})
	assert.Equal(t, 2, st.NotSubmitted)
	assert.Equal(t, 0.0, st.CompletionRate)
	assert.Equal(t, 0.0, st.SubmissionRate)
	assert.Equal(t, 0.0, st.OnTimeRate)
}

func TestComputeStatsRates(t *testing.T) {
	st := ComputeStats([]Entry{
		{Submission: graded(9, false), MaxPoints: 10},
		{Submission: graded(14, true), MaxPoints: 20},
		{Submission: &model.TaskSubmissionModel{Status: model.SubmissionStatusSubmitted}, MaxPoints: 10},
		{Submission: &model.TaskSubmissionModel{Status: model.SubmissionStatusNotSubmitted}, MaxPoints: 10},
	})
	assert.Equal(t, 4, st.Total)
	assert.Equal(t, 3, st.HandedIn)
	assert.Equal(t, 2, st.Graded)
	assert.Equal(t, 1, st.Late)
	assert.InDelta(t, 66.6667, st.CompletionRate, 1e-3)
	assert.InDelta(t, 75.0, st.SubmissionRate, 1e-9)
	assert.InDelta(t, 66.6667, st.OnTimeRate, 1e-3)
	require.NotNil(t, st.AverageGrade)
	assert.InDelta(t, 8.0, *st.AverageGrade, 1e-9)

	counts := map[string]int{}
	for _, b := range st.Distribution {
		counts[b.Label] = b.Count
	}
	assert.Equal(t, 1, counts["90-100"])
	assert.Equal(t, 1, counts["70-79"])
}
