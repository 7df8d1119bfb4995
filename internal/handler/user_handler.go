package handler

import (
	"net/http"
	"strconv"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"
	"github.com/Cladkoewka/ToDoListAPI/internal/service"
	"github.com/Cladkoewka/ToDoListAPI/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler handles user-related HTTP requests
type UserHandler struct {
	userService *service.UserService
	logger      *zap.Logger
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService *service.UserService, logger *zap.Logger) *UserHandler {
	return &UserHandler{
		userService: userService,
		logger:      logger,
	}
}

// GetAllUsers handles retrieving all users
// GET /api/users
func (h *UserHandler) GetAllUsers(c *gin.Context) {
	users, err := h.userService.GetAllUsers(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to get users", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

// GetUserByID handles retrieving a single user
// GET /api/users/{id}
func (h *UserHandler) GetUserByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	user, err := h.userService.GetUserByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get user", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUserByEmail handles looking a user up by email
// GET /api/users/email/{email}
func (h *UserHandler) GetUserByEmail(c *gin.Context) {
	email := c.Param("email")

	user, err := h.userService.GetUserByEmail(c.Request.Context(), email)
	if err != nil {
		h.logger.Error("failed to get user by email", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// CreateUser handles registering a new user
// POST /api/users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var request model.UserCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	user, err := h.userService.CreateUser(c.Request.Context(), request)
	if err != nil {
		h.logger.Error("failed to create user", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, user)
}

// UpdateUser handles updating an existing user
// PUT /api/users/{id}
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	var request model.UserUpdate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if _, err := h.userService.UpdateUser(c.Request.Context(), id, request); err != nil {
		h.logger.Error("failed to update user", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteUser handles deleting a user
// DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid user ID")
		return
	}

	if err := h.userService.DeleteUser(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete user", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
