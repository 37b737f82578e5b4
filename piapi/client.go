package piapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

const defaultBaseURL = "https://api.piapi.ai"

// Client talks to the PIAPI music-generation API. There is no official Go
// SDK, so this is a thin wrapper over the two calls we need.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

// NewClient builds a client from PIAPI_API_KEY and (optionally)
// PIAPI_BASE_URL.
func NewClient() *Client {
	baseURL := os.Getenv("PIAPI_BASE_URL")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey:     os.Getenv("PIAPI_API_KEY"),
		baseURL:    baseURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// MusicTaskInput is the generation brief sent to the vendor.
type MusicTaskInput struct {
	Prompt           string `json:"gpt_description_prompt,omitempty"`
	Lyrics           string `json:"lyrics,omitempty"`
	Title            string `json:"title,omitempty"`
	Tags             string `json:"tags,omitempty"`
	MakeInstrumental bool   `json:"make_instrumental"`
}

type webhookConfig struct {
	Endpoint string `json:"endpoint"`
	Secret   string `json:"secret"`
}

type createTaskRequest struct {
	Model    string         `json:"model"`
	TaskType string         `json:"task_type"`
	Input    MusicTaskInput `json:"input"`
	Config   struct {
		WebhookConfig webhookConfig `json:"webhook_config"`
	} `json:"config"`
}

type createTaskResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Data    struct {
		TaskID string `json:"task_id"`
	} `json:"data"`
}

// CreateMusicTask submits a generation job and returns the vendor task id.
// Completion arrives later on the webhook endpoint configured here.
func (c *Client) CreateMusicTask(input MusicTaskInput) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("PIAPI_API_KEY is required in environment variables")
	}

	reqBody := createTaskRequest{
		Model:    "music-u",
		TaskType: "generate_music",
		Input:    input,
	}
	reqBody.Config.WebhookConfig = webhookConfig{
		Endpoint: os.Getenv("PIAPI_WEBHOOK_URL"),
		Secret:   os.Getenv("PIAPI_WEBHOOK_SECRET"),
	}

	payload, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("error encoding request: %v", err)
	}

	req, err := http.NewRequest("POST", c.baseURL+"/api/v1/task", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("error creating request: %v", err)
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("error making request: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("PIAPI error: status=%d, body=%s", resp.StatusCode, string(body))
	}

	var apiResp createTaskResponse
	if err := json.NewDecoder(resp.Body).Decode(&apiResp); err != nil {
		return "", fmt.Errorf("error decoding response: %v", err)
	}

	if apiResp.Data.TaskID == "" {
		return "", fmt.Errorf("PIAPI returned no task id (code=%d, message=%s)", apiResp.Code, apiResp.Message)
	}

	return apiResp.Data.TaskID, nil
}
