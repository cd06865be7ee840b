package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"citylockers/models"
)

const openRouterEndpoint = "https://openrouter.ai/api/v1/chat/completions"

const defaultChatModel = "openai/gpt-oss-20b:free"

// systemPrompt frames the assistant as a sales advisor for locker
// partnership deals. The per-request deal context is appended by the caller.
const systemPrompt = "You are a sales assistant for CityLockers, a smart locker company in Dubai. " +
	"You help sales teams prepare B2B revenue-share proposals for hotels, residential buildings, " +
	"commercial offices, entertainment venues and waterparks. Answer concisely and in the context " +
	"of the deal data provided. Amounts are in AED."

// ChatService relays deal questions to the OpenRouter completion API.
type ChatService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewChatService builds a chat service from OPENROUTER_API_KEY and
// OPENROUTER_MODEL. A missing key is not an error; the service degrades to a
// canned reply so a misconfigured deployment still serves the calculator.
func NewChatService() *ChatService {
	model := os.Getenv("OPENROUTER_MODEL")
	if model == "" {
		model = defaultChatModel
	}
	return &ChatService{
		apiKey:     os.Getenv("OPENROUTER_API_KEY"),
		model:      model,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

type completionRequest struct {
	Model       string               `json:"model"`
	Messages    []models.ChatMessage `json:"messages"`
	MaxTokens   int                  `json:"max_tokens"`
	Temperature float64              `json:"temperature"`
}

type completionResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Send relays the conversation plus the composed deal context to the model
// and returns the assistant reply. Upstream failures never return an error;
// they yield a degraded ChatResponse with Success false, so a chat outage
// cannot disturb the calculator itself.
func (s *ChatService) Send(ctx context.Context, history []models.ChatMessage, contextMessage string) models.ChatResponse {
	if s.apiKey == "" {
		return models.ChatResponse{
			Success: false,
			Message: "The AI assistant is not configured. Set OPENROUTER_API_KEY to enable it.",
		}
	}

	messages := make([]models.ChatMessage, 0, len(history)+2)
	messages = append(messages, models.ChatMessage{Role: "system", Content: systemPrompt})
	messages = append(messages, history...)
	messages = append(messages, models.ChatMessage{Role: "user", Content: contextMessage})

	payload, err := json.Marshal(completionRequest{
		Model:       s.model,
		Messages:    messages,
		MaxTokens:   500,
		Temperature: 0.7,
	})
	if err != nil {
		log.Printf("Error marshaling chat payload: %v", err)
		return degradedReply()
	}

	req, err := http.NewRequestWithContext(ctx, "POST", openRouterEndpoint, bytes.NewBuffer(payload))
	if err != nil {
		log.Printf("Error creating chat request: %v", err)
		return degradedReply()
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", s.apiKey))

	resp, err := s.httpClient.Do(req)
	if err != nil {
		log.Printf("Error sending chat request: %v", err)
		return degradedReply()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var errorResp map[string]interface{}
		if err := json.NewDecoder(resp.Body).Decode(&errorResp); err == nil {
			log.Printf("OpenRouter API error (status %d): %v", resp.StatusCode, errorResp)
		} else {
			log.Printf("OpenRouter API error: status code %d", resp.StatusCode)
		}
		return degradedReply()
	}

	var completion completionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		log.Printf("Error decoding chat response: %v", err)
		return degradedReply()
	}
	if len(completion.Choices) == 0 || completion.Choices[0].Message.Content == "" {
		log.Printf("OpenRouter returned no choices")
		return degradedReply()
	}

	return models.ChatResponse{Success: true, Message: completion.Choices[0].Message.Content}
}

func degradedReply() models.ChatResponse {
	return models.ChatResponse{
		Success: false,
		Message: "The AI assistant is temporarily unavailable. Please try again in a moment.",
	}
}
