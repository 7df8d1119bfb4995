package service

import (
	"context"

	"github.com/Cladkoewka/ToDoListAPI/internal/model"
)

// ============================================================================
// Mock Repositories
// ============================================================================

// mockTagRepo implements TagRepository backed by a map. Error fields inject
// failures; call counters let tests assert how many writes happened.
type mockTagRepo struct {
	tags   map[int]model.Tag
	nextID int

	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
	lastDeleted *model.Tag
}

func newMockTagRepo() *mockTagRepo {
	return &mockTagRepo{
		tags:   make(map[int]model.Tag),
		nextID: 1,
	}
}

func (m *mockTagRepo) add(name string) model.Tag {
	tag := model.Tag{ID: m.nextID, Name: name}
	m.tags[tag.ID] = tag
	m.nextID++
	return tag
}

func (m *mockTagRepo) GetByID(ctx context.Context, id int) (*model.Tag, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if tag, ok := m.tags[id]; ok {
		return &tag, nil
	}
	return nil, nil
}

func (m *mockTagRepo) GetAll(ctx context.Context) ([]model.Tag, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []model.Tag{}
	for _, tag := range m.tags {
		result = append(result, tag)
	}
	return result, nil
}

func (m *mockTagRepo) GetByName(ctx context.Context, name string) (*model.Tag, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, tag := range m.tags {
		if tag.Name == name {
			found := tag
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockTagRepo) GetByIDs(ctx context.Context, ids []int) ([]model.Tag, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	seen := make(map[int]bool, len(ids))
	result := []model.Tag{}
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		if tag, ok := m.tags[id]; ok {
			result = append(result, tag)
		}
	}
	return result, nil
}

func (m *mockTagRepo) Create(ctx context.Context, tag *model.Tag) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	tag.ID = m.nextID
	m.nextID++
	m.tags[tag.ID] = *tag
	return nil
}

func (m *mockTagRepo) Update(ctx context.Context, tag *model.Tag) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.tags[tag.ID] = *tag
	return nil
}

func (m *mockTagRepo) Delete(ctx context.Context, tag *model.Tag) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastDeleted = tag
	delete(m.tags, tag.ID)
	return nil
}

// mockTaskRepo implements TaskRepository backed by a map
type mockTaskRepo struct {
	tasks  map[int]model.Task
	nextID int

	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
	lastDeleted *model.Task
}

func newMockTaskRepo() *mockTaskRepo {
	return &mockTaskRepo{
		tasks:  make(map[int]model.Task),
		nextID: 1,
	}
}

func (m *mockTaskRepo) add(title string, tags ...model.Tag) model.Task {
	if tags == nil {
		tags = []model.Tag{}
	}
	task := model.Task{ID: m.nextID, Title: title, Tags: tags}
	m.tasks[task.ID] = task
	m.nextID++
	return task
}

func (m *mockTaskRepo) GetByID(ctx context.Context, id int) (*model.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if task, ok := m.tasks[id]; ok {
		return &task, nil
	}
	return nil, nil
}

func (m *mockTaskRepo) GetAll(ctx context.Context) ([]model.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []model.Task{}
	for _, task := range m.tasks {
		result = append(result, task)
	}
	return result, nil
}

func (m *mockTaskRepo) GetByTagIDs(ctx context.Context, tagIDs []int) ([]model.Task, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	wanted := make(map[int]bool, len(tagIDs))
	for _, id := range tagIDs {
		wanted[id] = true
	}
	result := []model.Task{}
	for _, task := range m.tasks {
		for _, tag := range task.Tags {
			if wanted[tag.ID] {
				result = append(result, task)
				break
			}
		}
	}
	return result, nil
}

func (m *mockTaskRepo) Create(ctx context.Context, task *model.Task) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	task.ID = m.nextID
	m.nextID++
	m.tasks[task.ID] = *task
	return nil
}

func (m *mockTaskRepo) Update(ctx context.Context, task *model.Task) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.tasks[task.ID] = *task
	return nil
}

func (m *mockTaskRepo) Delete(ctx context.Context, task *model.Task) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastDeleted = task
	delete(m.tasks, task.ID)
	return nil
}

// mockUserRepo implements UserRepository backed by a map
type mockUserRepo struct {
	users  map[int]model.User
	nextID int

	getErr    error
	createErr error
	updateErr error
	deleteErr error

	createCalls int
	updateCalls int
	deleteCalls int
	lastDeleted *model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{
		users:  make(map[int]model.User),
		nextID: 1,
	}
}

func (m *mockUserRepo) add(username, email string) model.User {
	user := model.User{ID: m.nextID, Username: username, Email: email, PasswordHash: "hash"}
	m.users[user.ID] = user
	m.nextID++
	return user
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	if user, ok := m.users[id]; ok {
		return &user, nil
	}
	return nil, nil
}

func (m *mockUserRepo) GetAll(ctx context.Context) ([]model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	result := []model.User{}
	for _, user := range m.users {
		result = append(result, user)
	}
	return result, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	for _, user := range m.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, nil
}

func (m *mockUserRepo) Create(ctx context.Context, user *model.User) error {
	m.createCalls++
	if m.createErr != nil {
		return m.createErr
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Update(ctx context.Context, user *model.User) error {
	m.updateCalls++
	if m.updateErr != nil {
		return m.updateErr
	}
	m.users[user.ID] = *user
	return nil
}

func (m *mockUserRepo) Delete(ctx context.Context, user *model.User) error {
	m.deleteCalls++
	if m.deleteErr != nil {
		return m.deleteErr
	}
	m.lastDeleted = user
	delete(m.users, user.ID)
	return nil
}

// ============================================================================
// Mock Publisher
// ============================================================================

type publishedEvent struct {
	topic string
	key   string
	value interface{}
}

// mockPublisher records successful publishes; publishErr injects failures
type mockPublisher struct {
	events     []publishedEvent
	publishErr error
}

func (m *mockPublisher) Publish(ctx context.Context, topic, key string, value interface{}) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.events = append(m.events, publishedEvent{topic: topic, key: key, value: value})
	return nil
}
