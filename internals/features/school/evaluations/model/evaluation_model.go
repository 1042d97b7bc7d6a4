package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// CompetencyScore is one rubric line of an evaluation. Display only.
type CompetencyScore struct {
	Competency string  `json:"competency"`
	Score      float64 `json:"score"`
	Comment    string  `json:"comment,omitempty"`
}

type EvaluationModel struct {
	ID               uuid.UUID      `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:id" json:"id"`
	StudentID        uuid.UUID      `gorm:"type:uuid;not null;column:student_id" json:"student_id"`
	TeacherID        *uuid.UUID     `gorm:"type:uuid;column:teacher_id" json:"teacher_id,omitempty"`
	Title            string         `gorm:"type:varchar(200);not null;column:title" json:"title"`
	OverallScore     float64        `gorm:"type:numeric(5,2);not null;column:overall_score" json:"overall_score"`
	CompetencyScores datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:competency_scores" json:"competency_scores"`
	EvaluatedAt      time.Time      `gorm:"type:timestamptz;not null;default:now();column:evaluated_at" json:"evaluated_at"`
	IsActive         bool           `gorm:"not null;default:true;column:is_active" json:"is_active"`
	CreatedAt        time.Time      `gorm:"type:timestamptz;not null;default:now();column:created_at" json:"created_at"`
	UpdatedAt        time.Time      `gorm:"type:timestamptz;not null;default:now();column:updated_at" json:"updated_at"`
}

func (EvaluationModel) TableName() string { return "evaluations" }

// Competencies decodes the jsonb column; a malformed payload yields nil.
func (e *EvaluationModel) Competencies() []CompetencyScore {
	if len(e.CompetencyScores) == 0 {
		return nil
	}
	var out []CompetencyScore
	if err := json.Unmarshal(e.CompetencyScores, &out); err != nil {
		return nil
	}
	return out
}

func EncodeCompetencies(scores []CompetencyScore) (datatypes.JSON, error) {
	if scores == nil {
		scores = []CompetencyScore{}
	}
	b, err := json.Marshal(scores)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(b), nil
}
