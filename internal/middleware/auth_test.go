package middleware

import (
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pablotzeliks/todolist-api/internal/models"
	"github.com/pablotzeliks/todolist-api/internal/repository"
	"github.com/pablotzeliks/todolist-api/internal/services"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type authTestEnv struct {
	db     *gorm.DB
	router *gin.Engine
	bob    *models.User
}

func setupAuthTestEnv(t *testing.T) authTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	require.NoError(t, err)

	bob := &models.User{
		Name:         "Bob",
		Username:     "bob",
		PasswordHash: string(hash),
	}
	require.NoError(t, db.Create(bob).Error)

	authService := services.NewAuthService(repository.NewUserRepository(db))

	r := gin.New()
	tasks := r.Group("/tasks")
	tasks.Use(RequireBasicAuth(authService))
	tasks.GET("/whoami", func(c *gin.Context) {
		userID, ok := GetUserID(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "missing user id"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"user_id": userID})
	})

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return authTestEnv{db: db, router: r, bob: bob}
}

func basicAuthHeader(username, password string) string {
	return "Basic " + base64.StdEncoding.EncodeToString([]byte(username+":"+password))
}

func performAuthRequest(router *gin.Engine, header string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/tasks/whoami", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRequireBasicAuth_MissingHeader(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, "")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_WrongScheme(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, "Bearer some-token")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_InvalidBase64(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, "Basic not-base64!!!")
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_MissingColon(t *testing.T) {
	env := setupAuthTestEnv(t)

	header := "Basic " + base64.StdEncoding.EncodeToString([]byte("bobonly"))
	w := performAuthRequest(env.router, header)
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_UnknownUser(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, basicAuthHeader("nobody", "secret123"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_WrongPassword(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, basicAuthHeader("bob", "wrongpass"))
	require.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireBasicAuth_ValidCredentials(t *testing.T) {
	env := setupAuthTestEnv(t)

	w := performAuthRequest(env.router, basicAuthHeader("bob", "secret123"))
	require.Equal(t, http.StatusOK, w.Code)

	var response struct {
		UserID string `json:"user_id"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Equal(t, env.bob.ID.String(), response.UserID)
}
