package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/pablotzeliks/todolist-api/internal/database"
	"github.com/pablotzeliks/todolist-api/internal/dto"
	apierrors "github.com/pablotzeliks/todolist-api/internal/errors"
	"github.com/pablotzeliks/todolist-api/internal/models"
	"github.com/pablotzeliks/todolist-api/internal/repository"
	"github.com/pablotzeliks/todolist-api/internal/services"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupUserTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}))

	database.SetDB(db)

	userService := services.NewUserService(repository.NewUserRepository(db))
	handler := NewUserHandler(userService)

	r := gin.New()
	r.POST("/users/create", handler.Create)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB.Close()
	})

	return r
}

func postJSON(t *testing.T, router *gin.Engine, url string, payload any) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, url, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestUserHandler_Create(t *testing.T) {
	r := setupUserTestRouter(t)

	payload := map[string]string{
		"name":     "Pablo",
		"username": "pablo",
		"password": "supersecret",
	}

	w := postJSON(t, r, "/users/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	var response dto.UserResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEqual(t, uuid.Nil, response.ID)
	require.Equal(t, "pablo", response.Username)
	require.Equal(t, "Pablo", response.Name)
}

func TestUserHandler_Create_DuplicateUsername(t *testing.T) {
	r := setupUserTestRouter(t)

	payload := map[string]string{
		"name":     "Pablo",
		"username": "pablo",
		"password": "supersecret",
	}

	w := postJSON(t, r, "/users/create", payload)
	require.Equal(t, http.StatusCreated, w.Code)

	w = postJSON(t, r, "/users/create", payload)
	require.Equal(t, http.StatusConflict, w.Code)

	var response apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Contains(t, response.Message, "pablo")
	require.Equal(t, http.StatusConflict, response.Status)
	require.Equal(t, "Conflict", response.StatusError)
}

func TestUserHandler_Create_ValidationErrors(t *testing.T) {
	r := setupUserTestRouter(t)

	// Name and password missing, password too short would also trip min=6
	payload := map[string]string{
		"username": "pablo",
	}

	w := postJSON(t, r, "/users/create", payload)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var response apierrors.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.Len(t, response.Errors, 2)

	fields := []string{response.Errors[0].Field, response.Errors[1].Field}
	require.Contains(t, fields, "name")
	require.Contains(t, fields, "password")
}
