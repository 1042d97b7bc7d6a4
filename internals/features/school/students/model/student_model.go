package model

import (
	"time"

	"github.com/google/uuid"
)

type StudentModel struct {
	ID               uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	UserID           *uuid.UUID `gorm:"type:uuid;uniqueIndex;column:user_id" json:"user_id,omitempty"`
	EnrollmentNumber string     `gorm:"type:varchar(40);not null;uniqueIndex;column:enrollment_number" json:"enrollment_number"`
	FullName         string     `gorm:"type:varchar(120);not null;column:full_name" json:"full_name"`
	EducationalLevel string     `gorm:"type:varchar(40);not null;default:'';column:educational_level" json:"educational_level"`
	IsActive         bool       `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt        time.Time  `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt        time.Time  `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	ClassGroups []ClassGroupModel `gorm:"many2many:student_class_groups;joinForeignKey:StudentID;joinReferences:ClassGroupID" json:"class_groups,omitempty"`
}

func (StudentModel) TableName() string { return "students" }

type ClassGroupModel struct {
	ID               uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name             string    `gorm:"type:varchar(80);not null;column:name" json:"name"`
	EducationalLevel string    `gorm:"type:varchar(40);not null;default:'';column:educational_level" json:"educational_level"`
	AcademicYear     string    `gorm:"type:varchar(20);not null;default:'';column:academic_year" json:"academic_year"`
	IsActive         bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt        time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt        time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (ClassGroupModel) TableName() string { return "class_groups" }

// StudentClassGroupModel is the enrollment edge.
type StudentClassGroupModel struct {
	StudentID    uuid.UUID `gorm:"type:uuid;primaryKey;column:student_id" json:"student_id"`
	ClassGroupID uuid.UUID `gorm:"type:uuid;primaryKey;column:class_group_id" json:"class_group_id"`
}

func (StudentClassGroupModel) TableName() string { return "student_class_groups" }
