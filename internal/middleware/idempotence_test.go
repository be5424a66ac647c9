package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRejectDuplicateUsesConflictEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)

	for _, inFlight := range []bool{true, false} {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		c.Request = httptest.NewRequest(http.MethodPost, "/api/v1/hike-logs", nil)

		rejectDuplicate(c, inFlight)

		// Resubmits map to the same 400 the uniqueness constraints answer
		// with, never a bare 409.
		require.Equal(t, http.StatusBadRequest, w.Code, "inFlight=%v", inFlight)

		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, float64(http.StatusBadRequest), body["code"])
		assert.NotEmpty(t, body["message"])
		assert.True(t, c.IsAborted())
	}
}

func TestShouldSkipIdempotence(t *testing.T) {
	assert.True(t, shouldSkipIdempotence("/api/v1/auth/login"))
	assert.True(t, shouldSkipIdempotence("/api/v1/auth/register/"))
	assert.True(t, shouldSkipIdempotence("/api/v1/articles/abc/like"))
	assert.False(t, shouldSkipIdempotence("/api/v1/hike-logs"))
	assert.False(t, shouldSkipIdempotence("/api/v1/wishlist"))
}
