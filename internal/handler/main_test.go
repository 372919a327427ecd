package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/LucasLevingston/AneisDePoder/internal/config"
	"github.com/LucasLevingston/AneisDePoder/internal/database"
	"github.com/LucasLevingston/AneisDePoder/internal/models"
	"github.com/LucasLevingston/AneisDePoder/internal/router"
	"github.com/LucasLevingston/AneisDePoder/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupAPI builds the real engine over a fresh in-memory store.
func setupAPI(t *testing.T) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.AppConfig = &config.Config{JWTSecret: "test-secret"}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Ring{}))
	database.DB = db

	return router.New()
}

func createUser(t *testing.T, class string) models.User {
	t.Helper()

	hashed, err := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.MinCost)
	require.NoError(t, err)

	user := models.User{
		Username: fmt.Sprintf("user-%s", uuid.NewString()[:8]),
		Email:    fmt.Sprintf("%s@example.com", uuid.NewString()[:8]),
		Password: string(hashed),
		Class:    class,
	}
	require.NoError(t, database.DB.Create(&user).Error)
	return user
}

func tokenFor(t *testing.T, userID string) string {
	t.Helper()

	tok, err := jwt.GenerateToken(userID)
	require.NoError(t, err)
	return tok
}

// perform runs one request against the engine. An empty token leaves the
// Authorization header off entirely.
func perform(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func createRingVia(t *testing.T, r http.Handler, token, bearer string) map[string]any {
	t.Helper()

	w := perform(t, r, http.MethodPost, "/rings", token, map[string]any{
		"name":     "Narya",
		"power":    "Fire",
		"bearer":   bearer,
		"forgedBy": "Celebrimbor",
		"image":    "https://example.com/narya.png",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	return decodeBody(t, w)
}
