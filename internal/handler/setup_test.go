package handler

import (
	"context"
	"io"
	"net/http/httptest"
	"strings"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"
	"github.com/Cladkoewka/ToDoListAPI/internal/service"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ============================================================================
// Repository stubs backing real services
// ============================================================================

// stubTagRepo implements service.TagRepository backed by a map. Setting err
// fails every call, for exercising the 500 path.
type stubTagRepo struct {
	tags   map[int]model.Tag
	nextID int
	err    error
}

func newStubTagRepo() *stubTagRepo {
	return &stubTagRepo{tags: make(map[int]model.Tag), nextID: 1}
}

func (s *stubTagRepo) add(name string) model.Tag {
	tag := model.Tag{ID: s.nextID, Name: name}
	s.tags[tag.ID] = tag
	s.nextID++
	return tag
}

func (s *stubTagRepo) GetByID(ctx context.Context, id int) (*model.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	if tag, ok := s.tags[id]; ok {
		return &tag, nil
	}
	return nil, nil
}

func (s *stubTagRepo) GetAll(ctx context.Context) ([]model.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := []model.Tag{}
	for _, tag := range s.tags {
		result = append(result, tag)
	}
	return result, nil
}

func (s *stubTagRepo) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, tag := range s.tags {
		if tag.Name == name {
			found := tag
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubTagRepo) GetByIDs(ctx context.Context, ids []int) ([]model.Tag, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := []model.Tag{}
	for _, id := range ids {
		if tag, ok := s.tags[id]; ok {
			result = append(result, tag)
		}
	}
	return result, nil
}

func (s *stubTagRepo) Create(ctx context.Context, tag *model.Tag) error {
	if s.err != nil {
		return s.err
	}
	tag.ID = s.nextID
	s.nextID++
	s.tags[tag.ID] = *tag
	return nil
}

func (s *stubTagRepo) Update(ctx context.Context, tag *model.Tag) error {
	if s.err != nil {
		return s.err
	}
	s.tags[tag.ID] = *tag
	return nil
}

func (s *stubTagRepo) Delete(ctx context.Context, tag *model.Tag) error {
	if s.err != nil {
		return s.err
	}
	delete(s.tags, tag.ID)
	return nil
}

// stubTaskRepo implements service.TaskRepository backed by a map
type stubTaskRepo struct {
	tasks  map[int]model.Task
	nextID int
	err    error
}

func newStubTaskRepo() *stubTaskRepo {
	return &stubTaskRepo{tasks: make(map[int]model.Task), nextID: 1}
}

func (s *stubTaskRepo) add(title string, tags ...model.Tag) model.Task {
	if tags == nil {
		tags = []model.Tag{}
	}
	task := model.Task{ID: s.nextID, Title: title, Tags: tags}
	s.tasks[task.ID] = task
	s.nextID++
	return task
}

func (s *stubTaskRepo) GetByID(ctx context.Context, id int) (*model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	if task, ok := s.tasks[id]; ok {
		return &task, nil
	}
	return nil, nil
}

func (s *stubTaskRepo) GetAll(ctx context.Context) ([]model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := []model.Task{}
	for _, task := range s.tasks {
		result = append(result, task)
	}
	return result, nil
}

func (s *stubTaskRepo) GetByTagIDs(ctx context.Context, tagIDs []int) ([]model.Task, error) {
	if s.err != nil {
		return nil, s.err
	}
	wanted := make(map[int]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}
	result := []model.Task{}
	for _, task := range s.tasks {
		for _, tag := range task.Tags {
			if wanted[tag.ID] {
				result = append(result, task)
				break
			}
		}
	}
	return result, nil
}

func (s *stubTaskRepo) Create(ctx context.Context, task *model.Task) error {
	if s.err != nil {
		return s.err
	}
	task.ID = s.nextID
	s.nextID++
	s.tasks[task.ID] = *task
	return nil
}

func (s *stubTaskRepo) Update(ctx context.Context, task *model.Task) error {
	if s.err != nil {
		return s.err
	}
	s.tasks[task.ID] = *task
	return nil
}

func (s *stubTaskRepo) Delete(ctx context.Context, task *model.Task) error {
	if s.err != nil {
		return s.err
	}
	delete(s.tasks, task.ID)
	return nil
}

// stubUserRepo implements service.UserRepository backed by a map
type stubUserRepo struct {
	users  map[int]model.User
	nextID int
	err    error
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[int]model.User), nextID: 1}
}

func (s *stubUserRepo) add(username, email string) model.User {
	user := model.User{ID: s.nextID, Username: username, Email: email, PasswordHash: "hash"}
	s.users[user.ID] = user
	s.nextID++
	return user
}

func (s *stubUserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	if user, ok := s.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (s *stubUserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	result := []model.User{}
	for _, user := range s.users {
		result = append(result, user)
	}
	return result, nil
}

func (s *stubUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, user := range s.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (s *stubUserRepo) Create(ctx context.Context, user *model.User) error {
	if s.err != nil {
		return s.err
	}
	user.ID = s.nextID
	s.nextID++
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepo) Update(ctx context.Context, user *model.User) error {
	if s.err != nil {
		return s.err
	}
	s.users[user.ID] = *user
	return nil
}

func (s *stubUserRepo) Delete(ctx context.Context, user *model.User) error {
	if s.err != nil {
		return s.err
	}
	delete(s.users, user.ID)
	return nil
}

// ============================================================================
// Router setup
// ============================================================================

// newTestRouter wires real services over the stubs with the production
// route table
func newTestRouter() (*gin.Engine, *stubTagRepo, *stubTaskRepo, *stubUserRepo) {
	gin.SetMode(gin.TestMode)
	logger := zap.NewNop()

	tagRepo := newStubTagRepo()
	taskRepo := newStubTaskRepo()
	userRepo := newStubUserRepo()

	tagService := service.NewTagService(tagRepo, logger)
	taskService := service.NewTaskService(taskRepo, tagRepo, nil, "", logger)
	userService := service.NewUserService(userRepo, nil, "", logger)

	router := gin.New()
	api := router.Group("/api")

	tagHandler := NewTagHandler(tagService, logger)
	tags := api.Group("/tags")
	tags.GET("", tagHandler.GetAllTags)
	tags.GET("/:id", tagHandler.GetTagByID)
	tags.POST("", tagHandler.CreateTag)
	tags.PUT("/:id", tagHandler.UpdateTag)
	tags.DELETE("/:id", tagHandler.DeleteTag)

	taskHandler := NewTaskHandler(taskService, logger)
	tasks := api.Group("/tasks")
	tasks.GET("", taskHandler.GetAllTasks)
	tasks.GET("/by-tags", taskHandler.GetTasksByTags)
	tasks.GET("/:id", taskHandler.GetTaskByID)
	tasks.POST("", taskHandler.CreateTask)
	tasks.PUT("/:id", taskHandler.UpdateTask)
	tasks.DELETE("/:id", taskHandler.DeleteTask)

	userHandler := NewUserHandler(userService, logger)
	users := api.Group("/users")
	users.GET("", userHandler.GetAllUsers)
	users.GET("/email/:email", userHandler.GetUserByEmail)
	users.GET("/:id", userHandler.GetUserByID)
	users.POST("", userHandler.CreateUser)
	users.PUT("/:id", userHandler.UpdateUser)
	users.DELETE("/:id", userHandler.DeleteUser)

	return router, tagRepo, taskRepo, userRepo
}

// doRequest runs one request through the router and returns the recorder
func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}
