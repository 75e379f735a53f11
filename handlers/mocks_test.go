package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"task-manager/backend/models"
	"task-manager/backend/services"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, in services.RegisterInput) (*services.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, in services.LoginInput) (*services.AuthResult, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.AuthResult), args.Error(1)
}

type MockTeamService struct {
	mock.Mock
}

func (m *MockTeamService) List(ctx context.Context, p services.Pagination) (*services.Page[models.Team], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.Team]), args.Error(1)
}

func (m *MockTeamService) Create(ctx context.Context, in services.TeamInput) (*models.Team, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) Update(ctx context.Context, id primitive.ObjectID, in services.TeamUpdate) (*models.Team, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Team), args.Error(1)
}

func (m *MockTeamService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProjectService struct {
	mock.Mock
}

func (m *MockProjectService) List(ctx context.Context, p services.Pagination) (*services.Page[models.ProjectView], error) {
	args := m.Called(ctx, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.ProjectView]), args.Error(1)
}

func (m *MockProjectService) Create(ctx context.Context, in services.ProjectInput) (*models.Project, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Update(ctx context.Context, id primitive.ObjectID, in services.ProjectUpdate) (*models.Project, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Project), args.Error(1)
}

func (m *MockProjectService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockTaskService struct {
	mock.Mock
}

func (m *MockTaskService) List(ctx context.Context, f services.TaskFilter, p services.Pagination) (*services.Page[models.TaskView], error) {
	args := m.Called(ctx, f, p)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.Page[models.TaskView]), args.Error(1)
}

func (m *MockTaskService) Suggest(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockTaskService) Create(ctx context.Context, in services.TaskInput) (*models.Task, error) {
	args := m.Called(ctx, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) Update(ctx context.Context, id primitive.ObjectID, in services.TaskUpdate) (*models.Task, error) {
	args := m.Called(ctx, id, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Task), args.Error(1)
}

func (m *MockTaskService) Delete(ctx context.Context, id primitive.ObjectID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
