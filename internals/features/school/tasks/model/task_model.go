// file: internals/features/school/tasks/model/task_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	academicModel "schoolhub_backend/internals/features/school/academics/model"
)

type TaskType string

const (
	TaskTypeRegular      TaskType = "regular"
	TaskTypeExamReminder TaskType = "exam_reminder"
)

// Lifecycle: draft -> published -> closed
type TaskStatus string

const (
	TaskStatusDraft     TaskStatus = "draft"
	TaskStatusPublished TaskStatus = "published"
	TaskStatusClosed    TaskStatus = "closed"
)

// DefaultMaxPoints is the scale used when a task has no max_points.
const DefaultMaxPoints = 10.0

type TaskModel struct {
	ID                  uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SubjectAssignmentID uuid.UUID      `gorm:"type:uuid;not null;column:subject_assignment_id" json:"subject_assignment_id"`
	TeacherID           uuid.UUID      `gorm:"type:uuid;not null;column:teacher_id" json:"teacher_id"`
	Title               string         `gorm:"type:varchar(200);not null;column:title" json:"title"`
	Description         string         `gorm:"type:text;not null;default:'';column:description" json:"description"`
	TaskType            TaskType       `gorm:"type:varchar(20);not null;default:'regular';column:task_type" json:"task_type"`
	Status              TaskStatus     `gorm:"type:varchar(16);not null;default:'draft';column:status" json:"status"`
	AvailableFrom       *time.Time     `gorm:"type:timestamptz;column:available_from" json:"available_from,omitempty"`
	DueDate             time.Time      `gorm:"type:timestamptz;not null;column:due_date" json:"due_date"`
	MaxPoints           float64        `gorm:"type:numeric(6,2);not null;default:10;column:max_points" json:"max_points"`
	AllowLateSubmission bool           `gorm:"not null;default:false;column:allow_late_submission" json:"allow_late_submission"`
	LatePenalty         float64        `gorm:"type:numeric(4,3);not null;default:0;column:late_penalty" json:"late_penalty"`
	RequiresFile        bool           `gorm:"not null;default:false;column:requires_file" json:"requires_file"`
	TargetStudentIDs    pq.StringArray `gorm:"type:text[];column:target_student_ids" json:"target_student_ids,omitempty"`
	IsActive            bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt           time.Time      `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt           time.Time      `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	SubjectAssignment *academicModel.SubjectAssignmentModel `gorm:"foreignKey:SubjectAssignmentID" json:"subject_assignment,omitempty"`
}

func (TaskModel) TableName() string { return "tasks" }

func (t *TaskModel) IsExam() bool { return t.TaskType == TaskTypeExamReminder }

// PointsScale is max_points, or DefaultMaxPoints when unset.
func (t *TaskModel) PointsScale() float64 {
	if t.MaxPoints > 0 {
		return t.MaxPoints
	}
	return DefaultMaxPoints
}
