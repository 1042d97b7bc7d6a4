package model

import (
	"time"

	"github.com/google/uuid"
)

type ValuationType string

const (
	ValuationScore       ValuationType = "score"
	ValuationQualitative ValuationType = "qualitative"
)

type ActivityModel struct {
	ID                  uuid.UUID     `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	SubjectAssignmentID uuid.UUID     `gorm:"type:uuid;not null;column:subject_assignment_id" json:"subject_assignment_id"`
	Title               string        `gorm:"type:varchar(200);not null;column:title" json:"title"`
	ValuationType       ValuationType `gorm:"type:varchar(16);not null;default:'score';column:valuation_type" json:"valuation_type"`
	MaxScore            *float64      `gorm:"type:numeric(6,2);column:max_score" json:"max_score,omitempty"`
	ActivityDate        *time.Time    `gorm:"type:timestamptz;column:activity_date" json:"activity_date,omitempty"`
	IsActive            bool          `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt           time.Time     `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt           time.Time     `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (ActivityModel) TableName() string { return "activities" }

// ScoreScale is max_score, or 10 when unset or zero.
func (a *ActivityModel) ScoreScale() float64 {
	if a.MaxScore != nil && *a.MaxScore > 0 {
		return *a.MaxScore
	}
	return 10
}

type ActivityAssessmentModel struct {
	ID           uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	ActivityID   uuid.UUID `gorm:"type:uuid;not null;column:activity_id" json:"activity_id"`
	StudentID    uuid.UUID `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
	Value        string    `gorm:"type:varchar(60);not null;column:value" json:"value"`
	Observations *string   `gorm:"type:text;column:observations" json:"observations,omitempty"`
	AssessedAt   time.Time `gorm:"type:timestamptz;not null;default:now();column:assessed_at" json:"assessed_at"`
	IsActive     bool      `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt    time.Time `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`

	Activity *ActivityModel `gorm:"foreignKey:ActivityID" json:"activity,omitempty"`
}

func (ActivityAssessmentModel) TableName() string { return "activity_assessments" }
