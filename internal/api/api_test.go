package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"mealplanner/internal/domain"
	"mealplanner/internal/spoonacular"
	"mealplanner/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testSecret = "test-secret"

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(
		&domain.User{}, &domain.Recipe{}, &domain.SavedRecipe{}, &domain.MealPlanEntry{},
	))
	return db
}

func setupRouter(t *testing.T, db *gorm.DB, client *spoonacular.Client) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(db, client, testSecret)
}

// createUser inserts a user directly and returns it with a valid token.
func createUser(t *testing.T, db *gorm.DB, username string, isAdmin bool) (domain.User, string) {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte("password1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := domain.User{Username: username, Password: string(h), IsAdmin: isAdmin}
	require.NoError(t, db.Create(&user).Error)
	token, err := utils.GenerateJWT(user.ID, user.Username, user.IsAdmin, testSecret)
	require.NoError(t, err)
	return user, token
}

func doRequest(t *testing.T, r http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
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
