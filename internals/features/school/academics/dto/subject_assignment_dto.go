package dto

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/academics/model"
)

type SubjectAssignmentResponse struct {
	ID             uuid.UUID `json:"id"`
	SubjectID      uuid.UUID `json:"subjectId"`
	SubjectName    string    `json:"subjectName"`
	SubjectCode    string    `json:"subjectCode"`
	ClassGroupID   uuid.UUID `json:"classGroupId"`
	ClassGroupName string    `json:"classGroupName"`
	Period         string    `json:"period"`
}

func FromSubjectAssignment(m *model.SubjectAssignmentModel) SubjectAssignmentResponse {
	out := SubjectAssignmentResponse{
		ID:           m.ID,
		SubjectID:    m.SubjectID,
		ClassGroupID: m.ClassGroupID,
		Period:       m.Period,
	}
	if m.Subject != nil {
		out.SubjectName = m.Subject.Name
		out.SubjectCode = m.Subject.Code
	}
	if m.ClassGroup != nil {
		out.ClassGroupName = m.ClassGroup.Name
	}
	return out
}
