package service

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"promptmaster_backend/internal/config"
	"promptmaster_backend/internal/model"
	"strings"
	"sync"
	"time"
)

// AIService grades prompt submissions through an OpenAI-compatible chat
// completions endpoint.
type AIService struct {
	mu     sync.RWMutex
	config config.AIConfig
	client *http.Client
}

func NewAIService(cfg config.AIConfig) *AIService {
	return &AIService{
		config: cfg,
		client: &http.Client{Timeout: 60 * time.Second},
	}
}

// UpdateConfig swaps the endpoint settings, used on config hot reload.
func (s *AIService) UpdateConfig(cfg config.AIConfig) {
	s.mu.Lock()
	s.config = cfg
	s.mu.Unlock()
}

type AIChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type ChatCompletionRequest struct {
	Model    string          `json:"model"`
	Messages []AIChatMessage `json:"messages"`
}

type ChatCompletionResponse struct {
	Choices []struct {
		Message AIChatMessage `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

// Evaluation is the grader's verdict on one submission.
type Evaluation struct {
	Score          int            `json:"score"`
	CriteriaScores map[string]int `json:"criteria_scores"`
	Strengths      []string       `json:"strengths"`
	Improvements   []string       `json:"improvements"`
	RewriteExample string         `json:"rewrite_example"`
	KeyTakeaway    string         `json:"key_takeaway"`
}

const gradingSystemPrompt = `You are an expert prompt-engineering instructor grading a student's prompt for a business scenario.
Score the prompt from 0 to 100 overall and per criterion.
Reply with a single JSON object and nothing else, using this shape:
{"score": <int>, "criteria_scores": {<criterion>: <int>, ...}, "strengths": [<string>, ...], "improvements": [<string>, ...], "rewrite_example": <string>, "key_takeaway": <string>}`

// EvaluatePrompt asks the model to grade the submission. The second
// return value reports whether the result came from the model or from
// the fallback default (LLM unreachable or reply unparseable).
func (s *AIService) EvaluatePrompt(scenario *model.Scenario, promptText string) (*Evaluation, bool) {
	criteria := scenario.CriteriaKeys()

	userContent := fmt.Sprintf(
		"Scenario: %s\n\nTask: %s\n\nCriteria to score: %s\n\nStudent's prompt:\n%s",
		scenario.Description,
		scenario.TaskBrief,
		strings.Join(criteria, ", "),
		promptText,
	)

	reply, err := s.chat(gradingSystemPrompt, userContent)
	if err != nil {
		return defaultEvaluation(criteria), false
	}

	eval, ok := parseEvaluation(reply)
	if !ok {
		return defaultEvaluation(criteria), false
	}
	return eval, true
}

func (s *AIService) chat(systemContent, userContent string) (string, error) {
	s.mu.RLock()
	cfg := s.config
	s.mu.RUnlock()

	reqBody := ChatCompletionRequest{
		Model: cfg.Model,
		Messages: []AIChatMessage{
			{Role: "system", Content: systemContent},
			{Role: "user", Content: userContent},
		},
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest("POST", cfg.BaseURL+"/chat/completions", bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+cfg.APIKey)

	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("AI API error (status %d): %s", resp.StatusCode, string(body))
	}

	var completion ChatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return "", err
	}
	if completion.Error != nil {
		return "", fmt.Errorf("AI API error: %s", completion.Error.Message)
	}
	if len(completion.Choices) == 0 {
		return "", fmt.Errorf("AI API returned no choices")
	}

	return completion.Choices[0].Message.Content, nil
}

// parseEvaluation extracts the first JSON object from the model's reply.
// Models occasionally wrap the JSON in prose or markdown fences.
func parseEvaluation(reply string) (*Evaluation, bool) {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return nil, false
	}

	var eval Evaluation
	if err := json.Unmarshal([]byte(reply[start:end+1]), &eval); err != nil {
		return nil, false
	}
	return &eval, true
}

// defaultEvaluation is used when the grader is unavailable so a
// submission never fails outright on an LLM hiccup.
func defaultEvaluation(criteria []string) *Evaluation {
	scores := make(map[string]int, len(criteria))
	for _, c := range criteria {
		scores[c] = 70
	}
	return &Evaluation{
		Score:          70,
		CriteriaScores: scores,
		Strengths:      []string{"Your prompt was submitted successfully."},
		Improvements:   []string{"Automated feedback is temporarily unavailable; a default score was assigned."},
		KeyTakeaway:    "Try resubmitting later for detailed feedback.",
	}
}
