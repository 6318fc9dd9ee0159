package lib

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/tidwall/gjson"
)

const defaultChatbotModelURL = "https://api-inference.huggingface.co/models/microsoft/DialoGPT-medium"

// ChatbotService proxies a hosted conversational language model. It is
// created once at startup and injected through GetChatbot rather than living
// as implicit package state.
type ChatbotService struct {
	endpoint string
	token    string
	client   *http.Client
}

var chatbot *ChatbotService

func InitChatbot() *ChatbotService {
	endpoint := os.Getenv("CHATBOT_MODEL_URL")
	if endpoint == "" {
		endpoint = defaultChatbotModelURL
	}
	chatbot = &ChatbotService{
		endpoint: endpoint,
		token:    os.Getenv("CHATBOT_API_TOKEN"),
		client:   &http.Client{Timeout: 30 * time.Second},
	}
	log.Printf("Chatbot model endpoint: %s\n", endpoint)
	return chatbot
}

func GetChatbot() *ChatbotService {
	if chatbot == nil {
		return InitChatbot()
	}
	return chatbot
}

// NewChatbot Replace chatbot instance with custom implementation
func NewChatbot(c *ChatbotService) *ChatbotService {
	chatbot = c
	return chatbot
}

func (c *ChatbotService) Reply(ctx context.Context, message string) (string, error) {
	payload, err := json.Marshal(map[string]any{
		"inputs": map[string]any{
			"text": message,
		},
	})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", fmt.Sprintf("Bearer %s", c.token))
	}
	res, err := c.client.Do(req)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()
	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}
	if res.StatusCode != http.StatusOK {
		log.Printf("Chatbot upstream returned %d: %s\n", res.StatusCode, string(body))
		return "", fmt.Errorf("chatbot upstream returned status %d", res.StatusCode)
	}
	reply := gjson.GetBytes(body, "generated_text")
	if !reply.Exists() {
		reply = gjson.GetBytes(body, "0.generated_text")
	}
	if !reply.Exists() {
		return "", errors.New("chatbot upstream returned no generated text")
	}
	return reply.String(), nil
}

func (c *ChatbotService) Shutdown() {
	c.client.CloseIdleConnections()
}
