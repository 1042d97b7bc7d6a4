package model

import (
	"time"

	"github.com/google/uuid"

	studentModel "schoolhub_backend/internals/features/school/students/model"
)

type SubjectModel struct {
	ID        uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	Name      string    `gorm:"type:varchar(120);not null;column:name" json:"name"`
	Code      string    `gorm:"type:varchar(30);not null;uniqueIndex;column:code" json:"code"`
	IsActive  bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (SubjectModel) TableName() string { return "subjects" }

// SubjectAssignmentModel pairs one teacher, one subject and one class group
// for a period. Tasks and activities hang off it for grade grouping.
type SubjectAssignmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	TeacherID    uuid.UUID `gorm:"type:uuid;not null;column:teacher_id" json:"teacher_id"`
	SubjectID    uuid.UUID `gorm:"type:uuid;not null;column:subject_id" json:"subject_id"`
	ClassGroupID uuid.UUID `gorm:"type:uuid;not null;column:class_group_id" json:"class_group_id"`
	Period       string    `gorm:"type:varchar(20);not null;default:'';column:period" json:"period"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Subject    *SubjectModel                 `gorm:"foreignKey:SubjectID" json:"subject,omitempty"`
	ClassGroup *studentModel.ClassGroupModel `gorm:"foreignKey:ClassGroupID" json:"class_group,omitempty"`
	Teacher    *studentModel.TeacherModel    `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
}

func (SubjectAssignmentModel) TableName() string { return "subject_assignments" }
