package dto

import (
	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/students/model"
)

type ClassGroupResponse struct {
	ID               uuid.UUID `json:"id"`
	Name             string    `json:"name"`
	EducationalLevel string    `json:"educationalLevel"`
	AcademicYear     string    `json:"academicYear"`
}

type StudentResponse struct {
	ID               uuid.UUID            `json:"id"`
	FullName         string               `json:"fullName"`
	EnrollmentNumber string               `json:"enrollmentNumber"`
	EducationalLevel string               `json:"educationalLevel"`
	HasAccount       bool                 `json:"hasAccount"`
	ClassGroups      []ClassGroupResponse `json:"classGroups"`
}

func FromStudent(m *model.StudentModel) StudentResponse {
	out := StudentResponse{
		ID:               m.ID,
		FullName:         m.FullName,
		EnrollmentNumber: m.EnrollmentNumber,
		EducationalLevel: m.EducationalLevel,
		HasAccount:       m.UserID != nil,
		ClassGroups:      make([]ClassGroupResponse, 0, len(m.ClassGroups)),
	}
	for _, cg := range m.ClassGroups {
		out.ClassGroups = append(out.ClassGroups, ClassGroupResponse{
			ID:               cg.ID,
			Name:             cg.Name,
			EducationalLevel: cg.EducationalLevel,
			AcademicYear:     cg.AcademicYear,
		})
	}
	return out
}
