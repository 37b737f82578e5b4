package songs

import (
	"bytes"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"tuneloom-backend/piapi"
	"tuneloom-backend/quota"
	"tuneloom-backend/testutils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	testutils.InitTestMain()

	log.SetOutput(io.Discard)

	exitCode := m.Run()

	log.SetOutput(os.Stdout)

	os.Exit(exitCode)
}

func setupSongRouter(userID string) *gin.Engine {
	r := testutils.SetupTestRouter()
	r.POST("/songs", func(c *gin.Context) {
		c.Set("user_id", userID)
		CreateSong(c)
	})
	r.GET("/songs", func(c *gin.Context) {
		c.Set("user_id", userID)
		ListSongs(c)
	})
	r.POST("/songs/:id/favorite", func(c *gin.Context) {
		c.Set("user_id", userID)
		ToggleFavorite(c)
	})
	return r
}

func TestCreateSong_MissingFields(t *testing.T) {
	userID := "abc12345-e89b-12d3-a456-426614174000"
	r := setupSongRouter(userID)

	// babyName and songType are missing
	body, _ := json.Marshal(map[string]string{"name": "Lullaby for Emma"})
	req, _ := http.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Invalid input")
}

func TestCreateSong_LimitReached(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE user_id = \$1 (.+)LIMIT 1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_premium", "generation_count"}).
			AddRow("p1", userID, false, quota.FreeGenerationLimit))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "profiles" SET "generation_count"=generation_count \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectCommit()

	r := setupSongRouter(userID)

	body, _ := json.Marshal(map[string]string{
		"name":     "Lullaby for Emma",
		"babyName": "Emma",
		"songType": "lullaby",
	})
	req, _ := http.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Contains(t, respBody["error"], "Generation limit reached")
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreateSong_Success(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	// fake vendor answering the task creation
	vendor := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/task", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"code":200,"data":{"task_id":"task-789"}}`))
	}))
	defer vendor.Close()

	t.Setenv("PIAPI_BASE_URL", vendor.URL)
	t.Setenv("PIAPI_API_KEY", "test-key")
	originalGenerator := generator
	generator = piapi.NewClient()
	defer func() { generator = originalGenerator }()

	userID := "abc12345-e89b-12d3-a456-426614174000"
	songID := "123e4567-e89b-12d3-a456-426614174000"

	// premium caller: allowed without increment
	mock.ExpectQuery(`SELECT (.+) FROM "profiles" WHERE user_id = \$1 (.+)LIMIT 1`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_premium", "generation_count"}).
			AddRow("p1", userID, true, 0))

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "songs" (.+) RETURNING "id"`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(songID))
	mock.ExpectCommit()

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "songs" SET "task_id"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupSongRouter(userID)

	body, _ := json.Marshal(map[string]interface{}{
		"name":     "Lullaby for Emma",
		"babyName": "Emma",
		"songType": "lullaby",
		"mood":     "calm",
	})
	req, _ := http.NewRequest(http.MethodPost, "/songs", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "task-789", respBody["taskId"])
	assert.Equal(t, "PENDING", respBody["status"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_Owner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"
	songID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "songs" WHERE id = \$1 (.+)LIMIT 1`).
		WithArgs(songID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_favorite"}).
			AddRow(songID, userID, false))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "songs" SET "is_favorite"=\$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	r := setupSongRouter(userID)

	req, _ := http.NewRequest(http.MethodPost, "/songs/"+songID+"/favorite", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody map[string]string
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Equal(t, "Favorite added successfully", respBody["message"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_NonOwner(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	ownerID := "abc12345-e89b-12d3-a456-426614174000"
	intruderID := "def67890-e89b-12d3-a456-426614174000"
	songID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "songs" WHERE id = \$1 (.+)LIMIT 1`).
		WithArgs(songID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "is_favorite"}).
			AddRow(songID, ownerID, false))

	r := setupSongRouter(intruderID)

	req, _ := http.NewRequest(http.MethodPost, "/songs/"+songID+"/favorite", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusForbidden, resp.Code)
	// no UPDATE expected: the row stays untouched
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestToggleFavorite_SongNotFound(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"
	songID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "songs" WHERE id = \$1 (.+)LIMIT 1`).
		WithArgs(songID).
		WillReturnError(gorm.ErrRecordNotFound)

	r := setupSongRouter(userID)

	req, _ := http.NewRequest(http.MethodPost, "/songs/"+songID+"/favorite", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestListSongs(t *testing.T) {
	_, mock, cleanup := testutils.SetupTestDB(t)
	defer cleanup()

	userID := "abc12345-e89b-12d3-a456-426614174000"
	songID := "123e4567-e89b-12d3-a456-426614174000"

	mock.ExpectQuery(`SELECT (.+) FROM "songs" WHERE user_id = \$1 ORDER BY created_at DESC`).
		WithArgs(userID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "name", "status"}).
			AddRow(songID, userID, "Lullaby for Emma", "COMPLETED"))

	mock.ExpectQuery(`SELECT (.+) FROM "song_variations" WHERE "song_variations"."song_id" = \$1`).
		WithArgs(songID).
		WillReturnRows(sqlmock.NewRows([]string{"id", "song_id", "audio_url", "title"}))

	r := setupSongRouter(userID)

	req, _ := http.NewRequest(http.MethodGet, "/songs", nil)
	resp := httptest.NewRecorder()

	r.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusOK, resp.Code)

	var respBody []map[string]interface{}
	json.Unmarshal(resp.Body.Bytes(), &respBody)
	assert.Len(t, respBody, 1)
	assert.Equal(t, "Lullaby for Emma", respBody[0]["name"])
}
