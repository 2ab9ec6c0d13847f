package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/akshayrj/portfolio-backend/config"
	"github.com/akshayrj/portfolio-backend/internal/cache"
	"github.com/akshayrj/portfolio-backend/pkg/logger"
)

// ChatbotService answers visitor questions about the portfolio by
// sending the cached portfolio snapshot plus the question to Gemini.
type ChatbotService interface {
	Ask(ctx context.Context, message string) (string, error)
}

type chatbotService struct {
	config   config.GeminiConfig
	client   *http.Client
	snapshot *cache.TTLCache[*PortfolioSnapshot]
}

func NewChatbotService(cfg config.GeminiConfig, portfolio PortfolioService, snapshotTTL time.Duration) ChatbotService {
	return &chatbotService{
		config: cfg,
		client: &http.Client{Timeout: 30 * time.Second},
		snapshot: cache.New(snapshotTTL, func() (*PortfolioSnapshot, error) {
			return portfolio.Snapshot()
		}),
	}
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content struct {
			Parts []geminiPart `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error,omitempty"`
}

func (s *chatbotService) Ask(ctx context.Context, message string) (string, error) {
	if s.config.APIKey == "" {
		return "", fmt.Errorf("Gemini API key is not configured")
	}

	snapshot, err := s.snapshot.Get()
	if err != nil {
		logger.Error("Failed to build portfolio snapshot for chatbot", err)
		return "", err
	}

	reply, err := s.callGemini(ctx, s.buildPrompt(snapshot, message))
	if err != nil {
		return "", fmt.Errorf("failed to call Gemini API: %v", err)
	}
	return reply, nil
}

func (s *chatbotService) buildPrompt(snapshot *PortfolioSnapshot, message string) string {
	var prompt strings.Builder

	prompt.WriteString("You are a friendly assistant on a personal portfolio website. ")
	prompt.WriteString("Answer the visitor's question using only the portfolio information below. ")
	prompt.WriteString("Keep answers short and conversational. ")
	prompt.WriteString("If the answer is not in the portfolio, say you don't know and suggest using the contact form.\n\n")

	prompt.WriteString("Portfolio:\n")
	prompt.WriteString(snapshot.PromptContext())

	prompt.WriteString("\nVisitor question: ")
	prompt.WriteString(message)

	return prompt.String()
}

func (s *chatbotService) callGemini(ctx context.Context, prompt string) (string, error) {
	reqData := geminiRequest{
		Contents: []geminiContent{
			{Parts: []geminiPart{{Text: prompt}}},
		},
	}

	jsonData, err := json.Marshal(reqData)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %v", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s",
		s.config.BaseURL, s.config.Model, s.config.APIKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read response: %v", err)
	}

	var geminiResp geminiResponse
	if err := json.Unmarshal(body, &geminiResp); err != nil {
		return "", fmt.Errorf("failed to parse response: %v", err)
	}

	if geminiResp.Error != nil {
		return "", fmt.Errorf("Gemini API error: %s", geminiResp.Error.Message)
	}
	if len(geminiResp.Candidates) == 0 || len(geminiResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response from Gemini")
	}

	return strings.TrimSpace(geminiResp.Candidates[0].Content.Parts[0].Text), nil
}
