package handler

import (
	"errors"
	"net/http"

	"github.com/Cladkoewka/ToDoListAPI/internal/service"
	"github.com/Cladkoewka/ToDoListAPI/internal/utils"

	"github.com/gin-gonic/gin"
)

// respondError maps service errors to HTTP status codes. Expected business
// outcomes keep their message; anything else becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrNotFound):
		utils.SendErrorResponse(c, http.StatusNotFound, err.Error())
	case errors.Is(err, service.ErrAlreadyExists), errors.Is(err, service.ErrInvalidInput):
		utils.SendErrorResponse(c, http.StatusBadRequest, err.Error())
	default:
		utils.SendErrorResponse(c, http.StatusInternalServerError, "internal server error")
	}
}
