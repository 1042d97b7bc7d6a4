// Package export renders class/subject grade reports as xlsx workbooks.
package export

import (
	"bytes"
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"schoolhub_backend/internals/features/school/tasks/dto"
)

const (
	gradesSheet = "Grades"
	statsSheet  = "Statistics"
)

// ContentType of the produced workbook.
const ContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// FileName is the attachment name for a class/subject report.
func FileName(r *dto.ClassSubjectGradesResponse) string {
	return fmt.Sprintf("grades_%s_%s.xlsx", slug(r.ClassGroupName), slug(r.SubjectName))
}

// ClassSubjectWorkbook writes one row per student with one column per graded
// task, plus a statistics sheet.
func ClassSubjectWorkbook(r *dto.ClassSubjectGradesResponse) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", gradesSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(statsSheet); err != nil {
		return nil, fmt.Errorf("new sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("style: %w", err)
	}

	// task columns in first-seen order
	var taskIDs []uuid.UUID
	titles := map[uuid.UUID]string{}
	for _, st := range r.Students {
		for _, g := range st.Grades {
			if _, ok := titles[g.TaskID]; !ok {
				titles[g.TaskID] = g.Title
				taskIDs = append(taskIDs, g.TaskID)
			}
		}
	}

	header := []any{"Enrollment", "Student", "Graded tasks", "Average"}
	for _, id := range taskIDs {
		header = append(header, titles[id])
	}
	if err := f.SetSheetRow(gradesSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}
	last, _ := excelize.CoordinatesToCellName(len(header), 1)
	_ = f.SetCellStyle(gradesSheet, "A1", last, bold)
	_ = f.AutoFilter(gradesSheet, "A1:"+last, nil)

	for i, st := range r.Students {
		row := make([]any, len(header))
		row[0], row[1], row[2] = st.EnrollmentNumber, st.FullName, st.GradedTasks
		if st.Average != nil {
			row[3] = *st.Average
		} else {
			row[3] = ""
		}
		byTask := make(map[uuid.UUID]dto.TaskGradeItem, len(st.Grades))
		for _, g := range st.Grades {
			byTask[g.TaskID] = g
		}
		for j, id := range taskIDs {
			if g, ok := byTask[id]; ok {
				row[4+j] = g.FinalGrade
			} else {
				row[4+j] = ""
			}
		}
		cell, _ := excelize.CoordinatesToCellName(1, i+2)
		if err := f.SetSheetRow(gradesSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
	}
	_ = f.SetColWidth(gradesSheet, "A", "A", 14)
	_ = f.SetColWidth(gradesSheet, "B", "B", 32)

	stats := [][]any{
		{"Class group", r.ClassGroupName},
		{"Subject", r.SubjectName},
		{"Class average", r.Statistics.ClassAverage},
		{"Highest grade", r.Statistics.HighestGrade},
		{"Lowest grade", r.Statistics.LowestGrade},
		{"Passing rate (%)", r.Statistics.PassingRate},
	}
	for i, row := range stats {
		cell, _ := excelize.CoordinatesToCellName(1, i+1)
		if err := f.SetSheetRow(statsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("stats row %d: %w", i+1, err)
		}
	}
	_ = f.SetColWidth(statsSheet, "A", "A", 20)
	_ = f.SetCellStyle(statsSheet, "A1", fmt.Sprintf("A%d", len(stats)), bold)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf, nil
}

func slug(s string) string {
	out := make([]rune, 0, len(s))
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			out = append(out, r)
		case r >= 'A' && r <= 'Z':
			out = append(out, r+('a'-'A'))
		default:
			if len(out) > 0 && out[len(out)-1] != '-' {
				out = append(out, '-')
			}
		}
	}
	for len(out) > 0 && out[len(out)-1] == '-' {
		out = out[:len(out)-1]
	}
	if len(out) == 0 {
		return "report"
	}
	return string(out)
}
