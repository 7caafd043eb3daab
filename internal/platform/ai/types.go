// Package ai calls an OpenAI-compatible chat-completion API to produce a
// preliminary analysis of reported symptoms. The provider's reply is parsed
// strictly; anything malformed degrades to a fixed fallback result rather
// than an error.
package ai

import "fmt"

// SymptomInput is one reported symptom from the guided form.
type SymptomInput struct {
	Name        string `json:"name"`
	BodyPart    string `json:"bodyPart"`
	Severity    int    `json:"severity"` // 1-10
	Duration    string `json:"duration"`
	Description string `json:"description,omitempty"`
}

// PotentialCondition is one condition the model considers plausible.
type PotentialCondition struct {
	Name        string `json:"name"`
	Probability int    `json:"probability"` // 0-100
	Description string `json:"description"`
	Severity    string `json:"severity"` // mild, moderate, severe
}

// Analysis is the model's narrative assessment.
type Analysis struct {
	Conditions []PotentialCondition `json:"conditions"`
	Summary    string               `json:"summary"`
	Disclaimer string               `json:"disclaimer"`
}

// Recommendation is one suggested next action.
type Recommendation struct {
	Type        string `json:"type"`  // self-care, pharmacy, doctor, emergency
	Title       string `json:"title"`
	Description string `json:"description"`
	Urgency     string `json:"urgency"` // low, medium, high, immediate
}

// Result is the adapter's complete output for one submission.
type Result struct {
	Analysis        Analysis         `json:"analysis"`
	Recommendations []Recommendation `json:"recommendations"`
	UrgencyLevel    string           `json:"urgencyLevel"` // low, medium, high, emergency
}

var validUrgencyLevels = map[string]bool{
	"low": true, "medium": true, "high": true, "emergency": true,
}

var validRecommendationTypes = map[string]bool{
	"self-care": true, "pharmacy": true, "doctor": true, "emergency": true,
}

var validRecommendationUrgencies = map[string]bool{
	"low": true, "medium": true, "high": true, "immediate": true,
}

var validConditionSeverities = map[string]bool{
	"mild": true, "moderate": true, "severe": true,
}

// ValidUrgencyLevel reports whether s is one of the four overall urgency levels.
func ValidUrgencyLevel(s string) bool { return validUrgencyLevels[s] }

// Validate rejects results that do not match the documented response shape.
// The provider gives no schema guarantee, so every enum and range is checked
// before a result is allowed to reach persistence.
func (r *Result) Validate() error {
	if !validUrgencyLevels[r.UrgencyLevel] {
		return fmt.Errorf("invalid urgency level: %q", r.UrgencyLevel)
	}
	for _, c := range r.Analysis.Conditions {
		if c.Name == "" {
			return fmt.Errorf("condition with empty name")
		}
		if c.Probability < 0 || c.Probability > 100 {
			return fmt.Errorf("condition %q: probability %d out of range", c.Name, c.Probability)
		}
		if !validConditionSeverities[c.Severity] {
			return fmt.Errorf("condition %q: invalid severity %q", c.Name, c.Severity)
		}
	}
	for _, rec := range r.Recommendations {
		if !validRecommendationTypes[rec.Type] {
			return fmt.Errorf("invalid recommendation type: %q", rec.Type)
		}
		if !validRecommendationUrgencies[rec.Urgency] {
			return fmt.Errorf("recommendation %q: invalid urgency %q", rec.Title, rec.Urgency)
		}
	}
	return nil
}
