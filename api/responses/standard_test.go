package responses

import (
	"encoding/json"
	stderrors "errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Aidin1998/rosterhub/pkg/errors"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func record(fn func(c *gin.Context)) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/players", nil)
	fn(c)

	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestSuccessOmitsEmptyMessage(t *testing.T) {
	w, body := record(func(c *gin.Context) { Success(c, gin.H{"players": []string{}}) })

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "message")
	assert.NotContains(t, body, "error")
	assert.Contains(t, body, "data")
}

func TestCreatedWithMessage(t *testing.T) {
	w, body := record(func(c *gin.Context) { Created(c, gin.H{"player": gin.H{"id": "1"}}, "Player added") })

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "Player added", body["message"])
}

func TestSuccessWithoutData(t *testing.T) {
	_, body := record(func(c *gin.Context) { Success(c, nil, "Player removed") })

	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "data")
	assert.Equal(t, "Player removed", body["message"])
}

func TestErrorMapping(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"not found", errors.NotFound.Explain("Player not found"), http.StatusNotFound, "Player not found"},
		{"validation", errors.Validation.WithFields([]errors.FieldError{errors.NewFieldError("age", "Player must be at least 16 years old")}), http.StatusBadRequest, "Player must be at least 16 years old"},
		{"internal hides detail", errors.Internal.Explain("postgres error 57P01").Wrap(stderrors.New("terminating connection")), http.StatusInternalServerError, "Internal server error"},
		{"plain error", stderrors.New("dial tcp: connection refused"), http.StatusInternalServerError, "Internal server error"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w, body := record(func(c *gin.Context) { Error(c, tc.err) })
			require.Equal(t, tc.status, w.Code)
			assert.Equal(t, false, body["success"])
			assert.Equal(t, tc.message, body["error"])
			assert.NotContains(t, body, "data")
		})
	}
}
