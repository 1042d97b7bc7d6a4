package model

import (
	"time"

	"github.com/google/uuid"
)

type Relationship string

const (
	RelationshipParent   Relationship = "parent"
	RelationshipGuardian Relationship = "guardian"
	RelationshipOther    Relationship = "other"
)

type FamilyModel struct {
	ID                     uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	FamilyName             string     `gorm:"type:varchar(120);not null;column:family_name" json:"family_name"`
	PrimaryContactUserID   uuid.UUID  `gorm:"type:uuid;not null;column:primary_contact_user_id" json:"primary_contact_user_id"`
	SecondaryContactUserID *uuid.UUID `gorm:"type:uuid;column:secondary_contact_user_id" json:"secondary_contact_user_id,omitempty"`
	IsActive               bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt              time.Time  `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt              time.Time  `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Students []FamilyStudentModel `gorm:"foreignKey:FamilyID" json:"students,omitempty"`
}

func (FamilyModel) TableName() string { return "families" }

// FamilyStudentModel grants the family contacts read access to a student.
// Relationship is descriptive only.
type FamilyStudentModel struct {
	FamilyID     uuid.UUID    `gorm:"type:uuid;primaryKey;column:family_id" json:"family_id"`
	StudentID    uuid.UUID    `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	Relationship Relationship `gorm:"type:varchar(16);not null;default:'parent';column:relationship" json:"relationship"`
	CreatedAt    time.Time    `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
}

func (FamilyStudentModel) TableName() string { return "family_students" }
