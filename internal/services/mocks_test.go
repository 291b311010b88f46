package services

import (
	"context"

	"github.com/maxaizer/job-platform/internal/entities"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/stretchr/testify/mock"
)

type mockUsers struct {
	mock.Mock
}

func (m *mockUsers) Create(ctx context.Context, user *entities.User) error {
	return m.Called(ctx, user).Error(0)
}

func (m *mockUsers) GetByID(ctx context.Context, id int) (*entities.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUsers) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*entities.User)
	return user, args.Error(1)
}

func (m *mockUsers) Get(ctx context.Context, limit int, offset int) ([]entities.User, error) {
	args := m.Called(ctx, limit, offset)
	users, _ := args.Get(0).([]entities.User)
	return users, args.Error(1)
}

type mockCompanies struct {
	mock.Mock
}

func (m *mockCompanies) Create(ctx context.Context, company *entities.Company) error {
	return m.Called(ctx, company).Error(0)
}

func (m *mockCompanies) GetByID(ctx context.Context, id int) (*entities.Company, error) {
	args := m.Called(ctx, id)
	company, _ := args.Get(0).(*entities.Company)
	return company, args.Error(1)
}

func (m *mockCompanies) GetAll(ctx context.Context) ([]entities.Company, error) {
	args := m.Called(ctx)
	companies, _ := args.Get(0).([]entities.Company)
	return companies, args.Error(1)
}

func (m *mockCompanies) GetByOwner(ctx context.Context, ownerID int) ([]entities.Company, error) {
	args := m.Called(ctx, ownerID)
	companies, _ := args.Get(0).([]entities.Company)
	return companies, args.Error(1)
}

type mockJobs struct {
	mock.Mock
}

func (m *mockJobs) Create(ctx context.Context, job *entities.Job) error {
	return m.Called(ctx, job).Error(0)
}

func (m *mockJobs) GetByID(ctx context.Context, id int) (*entities.Job, error) {
	args := m.Called(ctx, id)
	job, _ := args.Get(0).(*entities.Job)
	return job, args.Error(1)
}

func (m *mockJobs) Get(ctx context.Context, limit int, offset int) ([]entities.Job, error) {
	args := m.Called(ctx, limit, offset)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobs) GetByCompanies(ctx context.Context, companyIDs []int, limit int, offset int) ([]entities.Job, error) {
	args := m.Called(ctx, companyIDs, limit, offset)
	jobs, _ := args.Get(0).([]entities.Job)
	return jobs, args.Error(1)
}

func (m *mockJobs) GetWithApplications(ctx context.Context, companyIDs []int, limit int, offset int) ([]repositories.JobWithApplications, error) {
	args := m.Called(ctx, companyIDs, limit, offset)
	aggregates, _ := args.Get(0).([]repositories.JobWithApplications)
	return aggregates, args.Error(1)
}

type mockResumes struct {
	mock.Mock
}

func (m *mockResumes) Create(ctx context.Context, resume *entities.Resume) error {
	return m.Called(ctx, resume).Error(0)
}

func (m *mockResumes) GetByID(ctx context.Context, id int) (*entities.Resume, error) {
	args := m.Called(ctx, id)
	resume, _ := args.Get(0).(*entities.Resume)
	return resume, args.Error(1)
}

func (m *mockResumes) GetByOwner(ctx context.Context, ownerID int) (*entities.Resume, error) {
	args := m.Called(ctx, ownerID)
	resume, _ := args.Get(0).(*entities.Resume)
	return resume, args.Error(1)
}

type mockApplications struct {
	mock.Mock
}

func (m *mockApplications) Create(ctx context.Context, application *entities.Application) error {
	return m.Called(ctx, application).Error(0)
}

func (m *mockApplications) GetByResumeOwner(ctx context.Context, ownerID int) ([]entities.Application, error) {
	args := m.Called(ctx, ownerID)
	applications, _ := args.Get(0).([]entities.Application)
	return applications, args.Error(1)
}

type mockChats struct {
	mock.Mock
}

func (m *mockChats) Create(ctx context.Context, chat *entities.Chat) error {
	return m.Called(ctx, chat).Error(0)
}

func (m *mockChats) GetByID(ctx context.Context, id int) (*entities.Chat, error) {
	args := m.Called(ctx, id)
	chat, _ := args.Get(0).(*entities.Chat)
	return chat, args.Error(1)
}

func (m *mockChats) GetByParticipant(ctx context.Context, userID int) ([]entities.Chat, error) {
	args := m.Called(ctx, userID)
	chats, _ := args.Get(0).([]entities.Chat)
	return chats, args.Error(1)
}

func (m *mockChats) CreateMessage(ctx context.Context, message *entities.Message) error {
	return m.Called(ctx, message).Error(0)
}

func (m *mockChats) GetMessages(ctx context.Context, chatID int) ([]entities.Message, error) {
	args := m.Called(ctx, chatID)
	messages, _ := args.Get(0).([]entities.Message)
	return messages, args.Error(1)
}
