package piapi

import (
	"encoding/json"
	"strings"
)

// WebhookPayload is what the vendor POSTs to our callback endpoint when a
// task finishes, fails, or makes progress.
type WebhookPayload struct {
	Timestamp int64       `json:"timestamp"`
	Data      WebhookData `json:"data"`
}

type WebhookData struct {
	TaskID string `json:"task_id"`
	Status string `json:"status"`
	Output struct {
		Clips []Clip `json:"clips"`
	} `json:"output"`
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Clip is one generated audio take. A task usually produces two.
type Clip struct {
	AudioURL string          `json:"audio_url"`
	Title    string          `json:"title"`
	Metadata json.RawMessage `json:"metadata"`
}

// IsRetryableError reports whether a vendor failure message describes a
// transient condition worth retrying (account out of credits, rate limiting)
// as opposed to a bad request that will fail again.
func IsRetryableError(message string) bool {
	m := strings.ToLower(message)
	return strings.Contains(m, "credit") || strings.Contains(m, "rate limit")
}
