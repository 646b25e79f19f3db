package aisummary

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"google.golang.org/genai"

	"catering-ops/logger"
	orderModel "catering-ops/models/order"
	taskModel "catering-ops/models/task"
)

// Fallback strings returned whenever generation fails. AI errors never
// propagate to the caller.
const (
	FallbackTaskSummary  = "嚴重：請人工查閱系統完整訂單細節。"
	FallbackRiskBriefing = "AI 風險分析暫時離線。請人工檢查紅色警示項目。"
	MissingKeySummary    = "AI 尚未設定 (API Key Missing)"
)

const taskSystemPrompt = `You are an operational assistant creating execution checklists for catering vendors.
Read the full order details and extract ONLY the relevant information for the specific vendor role.
Highlight Critical Control Points (HACCP/Safety/Timing).
Keep it under 80 words. Tone: Professional, Urgent, Precise.
Output language: Traditional Chinese (繁體中文).`

const dashboardSystemPrompt = `You are the central intelligence for a catering operations platform.
Your job is to analyze order status and identify risks.
Focus on:
1. Collaborators who have not confirmed close to the event date.
2. Issue reports that block execution.
Provide a concise, bulleted risk report in Traditional Chinese (繁體中文).
Tone: Professional, Alert, Operational.`

const model = "gemini-2.5-flash-lite"

// GenerateTaskSummary produces a role-specific execution summary for an
// order. On any failure it returns the fixed fallback text and never an
// error.
func GenerateTaskSummary(ctx context.Context, o *orderModel.Order, role string) string {
	client, err := newClient(ctx)
	if err != nil {
		logger.Warning("AI summary unavailable: " + err.Error())
		return MissingKeySummary
	}

	prompt := fmt.Sprintf(`Role: %s
Event: %s (%s)
Guests: %d
Location: %s
Notes: %s

Generate the execution summary for this vendor in Traditional Chinese.`,
		role, o.EventName, o.EventDate.Format("2006-01-02"), o.GuestCount, o.Location, o.SpecialRequests)

	text, err := generate(ctx, client, taskSystemPrompt, prompt)
	if err != nil {
		logger.Error("Failed to generate task summary", err)
		return FallbackTaskSummary
	}
	return text
}

// GenerateRiskBriefing summarizes the urgent portion of the active task list
// for the operations manager.
func GenerateRiskBriefing(ctx context.Context, tasks []taskModel.VendorTask, totalOrders int) string {
	client, err := newClient(ctx)
	if err != nil {
		logger.Warning("AI briefing unavailable: " + err.Error())
		return FallbackRiskBriefing
	}

	type urgent struct {
		ID       string               `json:"id"`
		Assignee string               `json:"assignee"`
		Status   taskModel.TaskStatus `json:"status"`
	}
	var urgents []urgent
	for _, t := range tasks {
		if t.Status.NeedsAttention() {
			urgents = append(urgents, urgent{ID: t.ID, Assignee: t.AssigneeID, Status: t.Status})
		}
	}
	state, err := json.Marshal(map[string]interface{}{
		"urgent_count":   len(urgents),
		"urgent_details": urgents,
		"total_orders":   totalOrders,
	})
	if err != nil {
		return FallbackRiskBriefing
	}

	text, err := generate(ctx, client, dashboardSystemPrompt,
		fmt.Sprintf("Current System State: %s. Provide a risk assessment summary for the operations manager in Traditional Chinese.", state))
	if err != nil {
		logger.Error("Failed to generate risk briefing", err)
		return FallbackRiskBriefing
	}
	return text
}

func newClient(ctx context.Context) (*genai.Client, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return nil, fmt.Errorf("GEMINI_API_KEY not found in environment variables")
	}
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
}

func generate(ctx context.Context, client *genai.Client, system, prompt string) (string, error) {
	content := &genai.Content{
		Parts: []*genai.Part{{Text: prompt}},
	}
	result, err := client.Models.GenerateContent(
		ctx,
		model,
		[]*genai.Content{content},
		&genai.GenerateContentConfig{
			Temperature:       genai.Ptr(float32(0.1)),
			SystemInstruction: &genai.Content{Parts: []*genai.Part{{Text: system}}},
		},
	)
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(result.Candidates) == 0 || result.Candidates[0].Content == nil || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no content generated")
	}
	text := result.Candidates[0].Content.Parts[0].Text
	if text == "" {
		return "", fmt.Errorf("empty response")
	}
	return text, nil
}
