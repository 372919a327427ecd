package middleware

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LucasLevingston/AneisDePoder/internal/errs"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func translatorEngine(fail error) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(ErrorTranslator())
	r.GET("/boom", func(c *gin.Context) {
		_ = c.Error(fail)
	})
	return r
}

func get(r http.Handler) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))
	return w
}

func TestErrorTranslator_DomainError(t *testing.T) {
	w := get(translatorEngine(errs.NotFound("Ring not found")))

	require.Equal(t, http.StatusNotFound, w.Code)
	require.JSONEq(t, `{"message": "Ring not found"}`, w.Body.String())
}

func TestErrorTranslator_CarriedStatusWins(t *testing.T) {
	err := errs.New(errs.KindForbidden, http.StatusUnauthorized, "Unauthorized to perform this action")
	w := get(translatorEngine(err))

	require.Equal(t, http.StatusUnauthorized, w.Code)
	require.JSONEq(t, `{"message": "Unauthorized to perform this action"}`, w.Body.String())
}

func TestErrorTranslator_ValidationFields(t *testing.T) {
	err := errs.Validation(map[string][]string{"name": {"Must be less than 16 characters"}})
	w := get(translatorEngine(err))

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.JSONEq(t, `{"message": "Invalid input", "errors": {"name": ["Must be less than 16 characters"]}}`, w.Body.String())
}

func TestErrorTranslator_UnexpectedError(t *testing.T) {
	w := get(translatorEngine(errors.New("pq: connection refused")))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	// Internals never leak to the caller.
	require.JSONEq(t, `{"message": "Internal server error"}`, w.Body.String())
}
