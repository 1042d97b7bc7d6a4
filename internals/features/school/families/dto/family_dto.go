package dto

import (
	"strings"

	"github.com/google/uuid"

	"schoolhub_backend/internals/features/school/families/model"
)

type FamilyStudentInput struct {
	StudentID    uuid.UUID `json:"studentId" validate:"required"`
	Relationship string    `json:"relationship" validate:"omitempty,oneof=parent guardian other"`
}

type CreateFamilyRequest struct {
	FamilyName             string               `json:"familyName" validate:"required,max=120"`
	PrimaryContactUserID   uuid.UUID            `json:"primaryContactUserId" validate:"required"`
	SecondaryContactUserID *uuid.UUID           `json:"secondaryContactUserId"`
	Students               []FamilyStudentInput `json:"students" validate:"omitempty,max=20,dive"`
}

func (r *CreateFamilyRequest) Normalize() {
	r.FamilyName = strings.TrimSpace(r.FamilyName)
	for i := range r.Students {
		if r.Students[i].Relationship == "" {
			r.Students[i].Relationship = string(model.RelationshipParent)
		}
	}
}

type LinkedStudent struct {
	StudentID        uuid.UUID `json:"studentId"`
	FullName         string    `json:"fullName"`
	EnrollmentNumber string    `json:"enrollmentNumber"`
	Relationship     string    `json:"relationship"`
}

type FamilyResponse struct {
	ID                     uuid.UUID       `json:"id"`
	FamilyName             string          `json:"familyName"`
	PrimaryContactUserID   uuid.UUID       `json:"primaryContactUserId"`
	SecondaryContactUserID *uuid.UUID      `json:"secondaryContactUserId"`
	Students               []LinkedStudent `json:"students"`
}
