package piapi

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateMusicTask_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/v1/task", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))

		var req createTaskRequest
		json.NewDecoder(r.Body).Decode(&req)
		assert.Equal(t, "music-u", req.Model)
		assert.Equal(t, "generate_music", req.TaskType)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"data":{"task_id":"task-42"}}`))
	}))
	defer server.Close()

	t.Setenv("PIAPI_BASE_URL", server.URL)
	t.Setenv("PIAPI_API_KEY", "test-key")

	client := NewClient()
	taskID, err := client.CreateMusicTask(MusicTaskInput{
		Prompt: "A lullaby for a baby named Emma",
	})

	assert.NoError(t, err)
	assert.Equal(t, "task-42", taskID)
}

func TestCreateMusicTask_VendorError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"code":429,"message":"rate limit exceeded"}`))
	}))
	defer server.Close()

	t.Setenv("PIAPI_BASE_URL", server.URL)
	t.Setenv("PIAPI_API_KEY", "test-key")

	client := NewClient()
	_, err := client.CreateMusicTask(MusicTaskInput{Prompt: "A lullaby"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status=429")
}

func TestCreateMusicTask_MissingAPIKey(t *testing.T) {
	t.Setenv("PIAPI_API_KEY", "")

	client := NewClient()
	_, err := client.CreateMusicTask(MusicTaskInput{Prompt: "A lullaby"})

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "PIAPI_API_KEY")
}

func TestIsRetryableError(t *testing.T) {
	assert.True(t, IsRetryableError("Insufficient credits for this request"))
	assert.True(t, IsRetryableError("Rate limit exceeded, slow down"))
	assert.False(t, IsRetryableError("invalid prompt"))
	assert.False(t, IsRetryableError(""))
}
