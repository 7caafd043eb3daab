package assessment

import (
	"time"

	"github.com/google/uuid"

	"github.com/healthassist/healthassist/internal/platform/ai"
)

// Assessment maps to the assessments table: one symptom-checker submission
// plus its AI-derived analysis. Rows are immutable after insert.
type Assessment struct {
	ID              uuid.UUID           `db:"id" json:"id"`
	UserID          string              `db:"user_id" json:"userId"`
	Symptoms        []ai.SymptomInput   `db:"symptoms" json:"symptoms"`
	BodyParts       []string            `db:"body_parts" json:"bodyParts"`
	AdditionalInfo  *string             `db:"additional_info" json:"additionalInfo,omitempty"`
	AIAnalysis      *ai.Analysis        `db:"ai_analysis" json:"aiAnalysis,omitempty"`
	UrgencyLevel    string              `db:"urgency_level" json:"urgencyLevel"`
	Recommendations []ai.Recommendation `db:"recommendations" json:"recommendations"`
	CreatedAt       time.Time           `db:"created_at" json:"createdAt"`
}

// CreateInput is the request body for a symptom-checker submission.
type CreateInput struct {
	Symptoms       []ai.SymptomInput `json:"symptoms"`
	BodyParts      []string          `json:"bodyParts"`
	AdditionalInfo string            `json:"additionalInfo"`
}
