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

// TagHandler handles tag-related HTTP requests
type TagHandler struct {
	tagService *service.TagService
	logger     *zap.Logger
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService *service.TagService, logger *zap.Logger) *TagHandler {
	return &TagHandler{
		tagService: tagService,
		logger:     logger,
	}
}

// GetAllTags handles retrieving all tags
// GET /api/tags
func (h *TagHandler) GetAllTags(c *gin.Context) {
	tags, err := h.tagService.GetAllTags(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to get tags", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tags)
}

// GetTagByID handles retrieving a single tag
// GET /api/tags/{id}
func (h *TagHandler) GetTagByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid tag ID")
		return
	}

	tag, err := h.tagService.GetTagByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get tag", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// CreateTag handles creating a new tag
// POST /api/tags
func (h *TagHandler) CreateTag(c *gin.Context) {
	var request model.TagCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	tag, err := h.tagService.CreateTag(c.Request.Context(), request)
	if err != nil {
		h.logger.Error("failed to create tag", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles renaming an existing tag
// PUT /api/tags/{id}
func (h *TagHandler) UpdateTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid tag ID")
		return
	}

	var request model.TagUpdate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if _, err := h.tagService.UpdateTag(c.Request.Context(), id, request); err != nil {
		h.logger.Error("failed to update tag", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTag handles deleting a tag
// DELETE /api/tags/{id}
func (h *TagHandler) DeleteTag(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid tag ID")
		return
	}

	if err := h.tagService.DeleteTag(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete tag", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
