package utils_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ms-content/internal/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, utils.WriteJSON(rec, http.StatusCreated, map[string]int{"count": 12}))

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"count":12}`, rec.Body.String())
}

func TestWriteError(t *testing.T) {
	rec := httptest.NewRecorder()

	require.NoError(t, utils.WriteError(rec, http.StatusNotFound, "Hero content not found", errors.New("content not found: hero_content")))

	var body utils.APIResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.False(t, body.Success)
	assert.Equal(t, "Hero content not found", body.Message)
	assert.Equal(t, "content not found: hero_content", body.Error)
}

func TestSuccessResponse(t *testing.T) {
	resp := utils.SuccessResponse("ok", 3)
	assert.True(t, resp.Success)
	assert.Equal(t, 3, resp.Data)
	assert.False(t, resp.Timestamp.IsZero())
}
