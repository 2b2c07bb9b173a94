package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pablotzeliks/todolist-api/internal/dto"
	apierrors "github.com/pablotzeliks/todolist-api/internal/errors"
	"github.com/pablotzeliks/todolist-api/internal/services"
	"github.com/pablotzeliks/todolist-api/internal/validation"
)

// UserHandler coordinates user registration HTTP handlers.
type UserHandler struct {
	userService *services.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService *services.UserService) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// Create registers a new user.
func (h *UserHandler) Create(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body")
		return
	}

	if errs := validation.Check(req); len(errs) > 0 {
		apierrors.BadRequestWithErrors(c, "Error on Field Validation", errs)
		return
	}

	user, err := h.userService.Create(services.CreateUserInput{
		Name:     req.Name,
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		respondUserError(c, err, req.Username)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserResponse(*user))
}

func respondUserError(c *gin.Context, err error, username string) {
	switch {
	case errors.Is(err, services.ErrUsernameTaken):
		apierrors.Conflict(c, fmt.Sprintf("Username %s is already in use.", username))
	default:
		apierrors.InternalError(c, "")
	}
}
