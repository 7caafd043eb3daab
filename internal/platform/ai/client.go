package ai

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// Analyzer produces a preliminary analysis for a list of reported symptoms.
type Analyzer interface {
	Analyze(ctx context.Context, symptoms []SymptomInput, additionalInfo string) (*Result, error)
}

const systemInstruction = "You are a helpful medical assessment assistant. " +
	"Always remind users that your analysis is not a substitute for professional medical advice. " +
	"Be thorough but cautious in your assessments."

// Client talks to an OpenAI-compatible chat-completion endpoint.
type Client struct {
	http   *resty.Client
	model  string
	logger zerolog.Logger
}

// NewClient creates a chat-completion client. baseURL is the API root
// (e.g. https://api.openai.com/v1); timeout bounds each request.
func NewClient(baseURL, apiKey, model string, timeout time.Duration, logger zerolog.Logger) *Client {
	httpClient := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetAuthToken(apiKey).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Client{
		http:   httpClient,
		model:  model,
		logger: logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model               string            `json:"model"`
	Messages            []chatMessage     `json:"messages"`
	ResponseFormat      map[string]string `json:"response_format,omitempty"`
	MaxCompletionTokens int               `json:"max_completion_tokens,omitempty"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Analyze sends the symptom list to the model and parses its JSON reply.
// Any failure — transport error, non-200 status, empty or malformed reply —
// yields the fixed fallback result and a nil error. A degraded analysis is
// still a usable assessment; the caller never sees the upstream failure.
func (c *Client) Analyze(ctx context.Context, symptoms []SymptomInput, additionalInfo string) (*Result, error) {
	reqBody := chatRequest{
		Model: c.model,
		Messages: []chatMessage{
			{Role: "system", Content: systemInstruction},
			{Role: "user", Content: buildPrompt(symptoms, additionalInfo)},
		},
		ResponseFormat:      map[string]string{"type": "json_object"},
		MaxCompletionTokens: 2048,
	}

	var respBody chatResponse
	resp, err := c.http.R().
		SetContext(ctx).
		SetBody(reqBody).
		SetResult(&respBody).
		Post("/chat/completions")
	if err != nil {
		c.logger.Error().Err(err).Msg("ai analysis request failed")
		return FallbackResult(), nil
	}
	if resp.StatusCode() != 200 {
		c.logger.Error().
			Int("status", resp.StatusCode()).
			Str("body", truncate(string(resp.Body()), 512)).
			Msg("ai provider returned non-200")
		return FallbackResult(), nil
	}
	if len(respBody.Choices) == 0 || respBody.Choices[0].Message.Content == "" {
		c.logger.Error().Msg("ai provider returned no completion")
		return FallbackResult(), nil
	}

	result, err := parseResult(respBody.Choices[0].Message.Content)
	if err != nil {
		c.logger.Error().Err(err).Msg("ai reply failed validation")
		return FallbackResult(), nil
	}

	return result, nil
}

// buildPrompt serializes the symptoms into the natural-language block the
// model is instructed to analyze, together with the required JSON shape.
func buildPrompt(symptoms []SymptomInput, additionalInfo string) string {
	var lines []string
	for _, s := range symptoms {
		line := fmt.Sprintf("- %s in %s: severity %d/10, duration: %s", s.Name, s.BodyPart, s.Severity, s.Duration)
		if s.Description != "" {
			line += ", description: " + s.Description
		}
		lines = append(lines, line)
	}

	var b strings.Builder
	b.WriteString("You are a medical assessment AI assistant. Based on the following symptoms, provide a preliminary analysis.\n\n")
	b.WriteString("IMPORTANT DISCLAIMER: This is NOT a medical diagnosis. This is for informational purposes only. ")
	b.WriteString("The user should always consult with a qualified healthcare professional.\n\n")
	b.WriteString("Symptoms reported:\n")
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if additionalInfo != "" {
		b.WriteString("\nAdditional information: " + additionalInfo + "\n")
	}
	b.WriteString(`
Please analyze these symptoms and provide:
1. A list of potential conditions (up to 3) with probability percentages, descriptions, and severity levels
2. A brief summary of the analysis
3. Recommendations categorized by type (self-care, pharmacy, doctor visit, or emergency)
4. An overall urgency level (low, medium, high, or emergency)

Respond in JSON format with this structure:
{
  "analysis": {
    "conditions": [
      {
        "name": "condition name",
        "probability": 0-100,
        "description": "brief description",
        "severity": "mild" | "moderate" | "severe"
      }
    ],
    "summary": "overall summary of assessment",
    "disclaimer": "standard medical disclaimer"
  },
  "recommendations": [
    {
      "type": "self-care" | "pharmacy" | "doctor" | "emergency",
      "title": "recommendation title",
      "description": "detailed recommendation",
      "urgency": "low" | "medium" | "high" | "immediate"
    }
  ],
  "urgencyLevel": "low" | "medium" | "high" | "emergency"
}`)
	return b.String()
}

// parseResult decodes and validates the model's JSON reply.
func parseResult(content string) (*Result, error) {
	var result Result
	if err := json.Unmarshal([]byte(content), &result); err != nil {
		return nil, fmt.Errorf("decode completion: %w", err)
	}
	if err := result.Validate(); err != nil {
		return nil, fmt.Errorf("validate completion: %w", err)
	}
	return &result, nil
}

// FallbackResult is returned whenever the provider cannot deliver a usable
// analysis: no conditions, a generic consult-a-professional summary, one
// doctor-visit recommendation, overall urgency medium.
func FallbackResult() *Result {
	return &Result{
		Analysis: Analysis{
			Conditions: []PotentialCondition{},
			Summary:    "Unable to complete analysis at this time. Please consult with a healthcare professional.",
			Disclaimer: "This system encountered an error. Please seek professional medical advice for your symptoms.",
		},
		Recommendations: []Recommendation{
			{
				Type:        "doctor",
				Title:       "Consult a Healthcare Professional",
				Description: "We recommend scheduling an appointment with a doctor to discuss your symptoms.",
				Urgency:     "medium",
			},
		},
		UrgencyLevel: "medium",
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
