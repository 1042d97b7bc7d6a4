package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	authModel "schoolhub_backend/internals/features/users/auth/model"
)

type CreateUserRequest struct {
	Email            string `json:"email" validate:"required,email,max=160"`
	Password         string `json:"password" validate:"required,min=8,max=72"`
	FullName         string `json:"fullName" validate:"required,min=2,max=120"`
	Role             string `json:"role" validate:"required,oneof=admin teacher student family"`
	EnrollmentNumber string `json:"enrollmentNumber" validate:"required_if=Role student,max=40"`
	EducationalLevel string `json:"educationalLevel" validate:"omitempty,max=40"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	r.FullName = strings.TrimSpace(r.FullName)
	r.Role = strings.ToLower(strings.TrimSpace(r.Role))
	r.EnrollmentNumber = strings.TrimSpace(r.EnrollmentNumber)
	r.EducationalLevel = strings.TrimSpace(r.EducationalLevel)
}

type ListUsersQuery struct {
	Q    string `query:"q" validate:"omitempty,max=120"`
	Role string `query:"role" validate:"omitempty,oneof=admin teacher student family"`
}

type UpdateStatusRequest struct {
	IsActive *bool `json:"isActive" validate:"required"`
}

type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FullName  string     `json:"fullName"`
	Role      string     `json:"role"`
	IsActive  bool       `json:"isActive"`
	TeacherID *uuid.UUID `json:"teacherId,omitempty"`
	StudentID *uuid.UUID `json:"studentId,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}

func FromUser(u *authModel.UserModel) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FullName:  u.FullName,
		Role:      u.Role,
		IsActive:  u.IsActive,
		CreatedAt: u.CreatedAt,
	}
}
