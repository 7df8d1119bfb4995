package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"
	"github.com/Cladkoewka/ToDoListAPI/internal/service"
	"github.com/Cladkoewka/ToDoListAPI/internal/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TaskHandler handles task-related HTTP requests
type TaskHandler struct {
	taskService *service.TaskService
	logger      *zap.Logger
}

// NewTaskHandler creates a new task handler
func NewTaskHandler(taskService *service.TaskService, logger *zap.Logger) *TaskHandler {
	return &TaskHandler{
		taskService: taskService,
		logger:      logger,
	}
}

// GetAllTasks handles retrieving all tasks
// GET /api/tasks
func (h *TaskHandler) GetAllTasks(c *gin.Context) {
	tasks, err := h.taskService.GetAllTasks(c.Request.Context())
	if err != nil {
		h.logger.Error("failed to get tasks", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// GetTaskByID handles retrieving a single task
// GET /api/tasks/{id}
func (h *TaskHandler) GetTaskByID(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	task, err := h.taskService.GetTaskByID(c.Request.Context(), id)
	if err != nil {
		h.logger.Error("failed to get task", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, task)
}

// GetTasksByTags handles retrieving tasks carrying at least one of the
// requested tags
// GET /api/tasks/by-tags?tagIds=1,2,3
func (h *TaskHandler) GetTasksByTags(c *gin.Context) {
	idsParam := c.Query("tagIds")
	if idsParam == "" {
		utils.SendErrorResponse(c, http.StatusBadRequest, "tag IDs required")
		return
	}

	var tagIDs []int
	for _, idStr := range strings.Split(idsParam, ",") {
		id, err := strconv.Atoi(strings.TrimSpace(idStr))
		if err != nil {
			h.logger.Warn("invalid tag ID in filter request",
				zap.String("id", idStr),
				zap.Error(err))
			continue // Skip invalid IDs
		}
		tagIDs = append(tagIDs, id)
	}

	if len(tagIDs) == 0 {
		utils.SendErrorResponse(c, http.StatusBadRequest, "no valid tag IDs provided")
		return
	}

	tasks, err := h.taskService.GetTasksByTagIDs(c.Request.Context(), tagIDs)
	if err != nil {
		h.logger.Error("failed to get tasks by tags", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tasks)
}

// CreateTask handles creating a new task
// POST /api/tasks
func (h *TaskHandler) CreateTask(c *gin.Context) {
	var request model.TaskCreate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	task, err := h.taskService.CreateTask(c.Request.Context(), request)
	if err != nil {
		h.logger.Error("failed to create task", zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, task)
}

// UpdateTask handles updating an existing task
// PUT /api/tasks/{id}
func (h *TaskHandler) UpdateTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	var request model.TaskUpdate
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, utils.FormatBindingError(err))
		return
	}

	if _, err := h.taskService.UpdateTask(c.Request.Context(), id, request); err != nil {
		h.logger.Error("failed to update task", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// DeleteTask handles deleting a task
// DELETE /api/tasks/{id}
func (h *TaskHandler) DeleteTask(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		utils.SendErrorResponse(c, http.StatusBadRequest, "invalid task ID")
		return
	}

	if err := h.taskService.DeleteTask(c.Request.Context(), id); err != nil {
		h.logger.Error("failed to delete task", zap.Error(err), zap.Int("id", id))
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
