package service

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"promptmaster_backend/internal/config"
	"promptmaster_backend/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEvaluationPlainJSON(t *testing.T) {
	reply := `{"score": 85, "criteria_scores": {"clarity": 90, "context": 80}, "strengths": ["clear ask"], "improvements": ["add audience"], "rewrite_example": "...", "key_takeaway": "be specific"}`

	eval, ok := parseEvaluation(reply)
	require.True(t, ok)
	assert.Equal(t, 85, eval.Score)
	assert.Equal(t, map[string]int{"clarity": 90, "context": 80}, eval.CriteriaScores)
	assert.Equal(t, "be specific", eval.KeyTakeaway)
}

func TestParseEvaluationWrappedInProse(t *testing.T) {
	reply := "Here is my evaluation:\n```json\n{\"score\": 72, \"criteria_scores\": {\"clarity\": 72}}\n```\nGood luck!"

	eval, ok := parseEvaluation(reply)
	require.True(t, ok)
	assert.Equal(t, 72, eval.Score)
}

func TestParseEvaluationGarbage(t *testing.T) {
	for _, reply := range []string{"", "no json here", "{broken", "]["} {
		_, ok := parseEvaluation(reply)
		assert.False(t, ok, "reply %q", reply)
	}
}

func TestDefaultEvaluationCoversAllCriteria(t *testing.T) {
	eval := defaultEvaluation([]string{"clarity", "context", "reasoning"})
	assert.Equal(t, 70, eval.Score)
	assert.Equal(t, map[string]int{"clarity": 70, "context": 70, "reasoning": 70}, eval.CriteriaScores)
}

func TestEvaluatePromptAgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

		var req ChatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Len(t, req.Messages, 2)

		json.NewEncoder(w).Encode(map[string]interface{}{
			"choices": []map[string]interface{}{
				{"message": map[string]string{"role": "assistant", "content": `{"score": 91, "criteria_scores": {"clarity": 91}}`}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "grader-1"})
	scenario := &model.Scenario{Criteria: `["clarity"]`}

	eval, graded := svc.EvaluatePrompt(scenario, "Write me a summary prompt")
	assert.True(t, graded)
	assert.Equal(t, 91, eval.Score)
}

func TestEvaluatePromptFallsBackWhenServerFails(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	}))
	defer server.Close()

	svc := NewAIService(config.AIConfig{BaseURL: server.URL, APIKey: "test-key", Model: "grader-1"})
	scenario := &model.Scenario{Criteria: `["clarity","context"]`}

	eval, graded := svc.EvaluatePrompt(scenario, "anything")
	assert.False(t, graded)
	assert.Equal(t, 70, eval.Score)
	assert.Len(t, eval.CriteriaScores, 2)
}
