package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/BrikiApp/briki-api/models"
)

// ============================================================================
// CHAT ASSISTANT
// Answers insurance questions over the Anthropic messages API. Without an
// ANTHROPIC_API_KEY the service runs in mock mode and produces canned
// replies, so the chat flow works in local development.
// ============================================================================

type AssistantService struct {
	apiKey     string
	model      string
	maxTokens  int
	httpClient *http.Client
}

type anthropicRequest struct {
	Model     string             `json:"model"`
	MaxTokens int                `json:"max_tokens"`
	System    string             `json:"system,omitempty"`
	Messages  []anthropicMessage `json:"messages"`
}

type anthropicMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type anthropicResponse struct {
	Content []struct {
		Type string `json:"type"`
		Text string `json:"text"`
	} `json:"content"`
	StopReason string `json:"stop_reason"`
}

func NewAssistantService() *AssistantService {
	model := os.Getenv("ASSISTANT_MODEL")
	if model == "" {
		model = "claude-3-5-sonnet-latest"
	}

	return &AssistantService{
		apiKey:     os.Getenv("ANTHROPIC_API_KEY"),
		model:      model,
		maxTokens:  1000,
		httpClient: &http.Client{Timeout: 60 * time.Second},
	}
}

// MockMode reports whether replies are canned instead of model-generated.
func (s *AssistantService) MockMode() bool {
	return s.apiKey == ""
}

// Reply produces the assistant's answer to a chat message, grounded in the
// session context and the plans currently suggested for it.
func (s *AssistantService) Reply(ctx context.Context, message string, uc models.UserContext, plans []models.InsurancePlan) (string, error) {
	if IsGenericGreeting(message) {
		return "¡Hola! Soy el asistente de Briki. Cuéntame qué seguro buscas: viaje, auto, mascota o salud.", nil
	}

	if s.MockMode() {
		return mockReply(uc, plans), nil
	}

	requestBody := anthropicRequest{
		Model:     s.model,
		MaxTokens: s.maxTokens,
		System:    buildSystemPrompt(uc, plans),
		Messages: []anthropicMessage{
			{Role: "user", Content: message},
		},
	}

	payload, err := json.Marshal(requestBody)
	if err != nil {
		return "", fmt.Errorf("failed to encode assistant request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		"https://api.anthropic.com/v1/messages", bytes.NewBuffer(payload))
	if err != nil {
		return "", fmt.Errorf("failed to build assistant request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-api-key", s.apiKey)
	req.Header.Set("anthropic-version", "2023-06-01")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("assistant request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read assistant response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("assistant API returned status %d: %s", resp.StatusCode, string(body))
	}

	var parsed anthropicResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return "", fmt.Errorf("failed to decode assistant response: %w", err)
	}
	if len(parsed.Content) == 0 {
		return "", fmt.Errorf("assistant returned empty content")
	}
	return parsed.Content[0].Text, nil
}

func buildSystemPrompt(uc models.UserContext, plans []models.InsurancePlan) string {
	var b strings.Builder
	b.WriteString(`Eres el asistente de Briki, un comparador de seguros colombiano.
Responde en español, breve y concreto. Solo hablas de seguros de viaje, auto,
mascota y salud. Cuando recomiendes un plan usa únicamente los planes listados
abajo, citando proveedor, nombre y precio mensual.`)

	if !uc.IsEmpty() {
		b.WriteString("\n\nLo que sabemos del usuario:\n")
		if raw, err := json.Marshal(uc); err == nil {
			b.Write(raw)
		}
	}

	if len(plans) > 0 {
		b.WriteString("\n\nPlanes sugeridos:\n")
		for _, p := range plans {
			fmt.Fprintf(&b, "- %s %s: $%.0f/mes, cobertura $%.0f, calificación %s\n",
				p.Provider, p.Name, p.BasePrice, p.CoverageAmount, p.Rating)
		}
	}
	return b.String()
}

func mockReply(uc models.UserContext, plans []models.InsurancePlan) string {
	if len(plans) > 0 {
		p := plans[0]
		return fmt.Sprintf(
			"Según lo que me cuentas, te recomiendo %s de %s: $%.0f/mes con cobertura hasta $%.0f. ¿Quieres ver más opciones?",
			p.Name, p.Provider, p.BasePrice, p.CoverageAmount)
	}
	if category, ok := SuggestedCategory(uc); ok {
		return fmt.Sprintf("Entendido, busquemos un seguro de %s. ¿Me das un poco más de detalle?", categoryLabel(category))
	}
	return "Puedo ayudarte a comparar seguros de viaje, auto, mascota y salud. ¿Cuál te interesa?"
}

func categoryLabel(c models.PlanCategory) string {
	switch c {
	case models.CategoryTravel:
		return "viaje"
	case models.CategoryAuto:
		return "auto"
	case models.CategoryPet:
		return "mascota"
	case models.CategoryHealth:
		return "salud"
	}
	return string(c)
}
