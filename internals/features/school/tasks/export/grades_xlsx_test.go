package export

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"schoolhub_backend/internals/features/school/tasks/dto"
)

func TestClassSubjectWorkbook(t *testing.T) {
	t1, t2 := uuid.New(), uuid.New()
	avg := 7.5
	resp := &dto.ClassSubjectGradesResponse{
		ClassGroupName: "5A",
		SubjectName:    "Math",
		Students: []dto.StudentSubjectGrade{
			{
				FullName: "Ana Ruiz", EnrollmentNumber: "S-001", Average: &avg, GradedTasks: 2,
				Grades: []dto.TaskGradeItem{
					{TaskID: t1, Title: "Fractions", FinalGrade: 8, MaxPoints: 10},
					{TaskID: t2, Title: "Decimals", FinalGrade: 7, MaxPoints: 10},
				},
			},
			{FullName: "Luis Gil", EnrollmentNumber: "S-002"},
		},
		Statistics: dto.ClassStatisticsResponse{ClassAverage: 7.5, HighestGrade: 7.5, LowestGrade: 7.5, PassingRate: 100},
	}

	buf, err := ClassSubjectWorkbook(resp)
	require.NoError(t, err)

	f, err := excelize.OpenReader(buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(gradesSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Enrollment", "Student", "Graded tasks", "Average", "Fractions", "Decimals"}, rows[0])
	assert.Equal(t, []string{"S-001", "Ana Ruiz", "2", "7.5", "8", "7"}, rows[1])
	assert.Equal(t, "Luis Gil", rows[2][1])

	rate, err := f.GetCellValue(statsSheet, "B6")
	require.NoError(t, err)
	assert.Equal(t, "100", rate)

	assert.Equal(t, "grades_5a_math.xlsx", FileName(resp))
}
