package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/asaskevich/EventBus"
	"github.com/gofiber/fiber/v2"
	"github.com/maxaizer/job-platform/internal/auth"
	"github.com/maxaizer/job-platform/internal/config"
	"github.com/maxaizer/job-platform/internal/repositories"
	"github.com/maxaizer/job-platform/internal/services"
	"github.com/stretchr/testify/assert"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()

	dbCtx, err := repositories.NewDbContext(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("could not create db context: %v", err)
	}
	if err = dbCtx.Migrate(); err != nil {
		t.Fatalf("could not migrate db: %v", err)
	}
	t.Cleanup(func() { _ = dbCtx.Close() })

	tokens, err := auth.NewTokenService("test-secret", 60)
	assert.NoError(t, err)

	bus := EventBus.New()
	users := repositories.NewUsersRepository(dbCtx.DB)
	companies := repositories.NewCompaniesRepository(dbCtx.DB)
	resumes := repositories.NewResumesRepository(dbCtx.DB)
	jobs := repositories.NewJobsRepository(dbCtx.DB)
	applications := repositories.NewApplicationsRepository(dbCtx.DB)
	chats := repositories.NewChatsRepository(dbCtx.DB)

	userService, err := services.NewUserService(users, tokens, bus, 4)
	assert.NoError(t, err)
	companyService, err := services.NewCompanyService(companies, users)
	assert.NoError(t, err)
	jobService, err := services.NewJobService(jobs, companies)
	assert.NoError(t, err)
	resumeService, err := services.NewResumeService(resumes)
	assert.NoError(t, err)
	applicationService, err := services.NewApplicationService(applications, resumes, jobs, bus)
	assert.NoError(t, err)
	chatService, err := services.NewChatService(chats, users, bus)
	assert.NoError(t, err)

	cfg := config.ServerConfig{Port: 0, MetricsPort: 1, LoginRatePerMinute: 100}
	server, err := NewServer(cfg, tokens, repositories.NewCachedUsers(users), Services{
		Users:        userService,
		Companies:    companyService,
		Jobs:         jobService,
		Resumes:      resumeService,
		Applications: applicationService,
		Chats:        chatService,
	})
	assert.NoError(t, err)
	return server
}

func jsonRequest(method, target string, body any) *http.Request {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func decodeBody(t *testing.T, resp *http.Response, out any) {
	t.Helper()
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	_ = resp.Body.Close()
}

func registerAndLogin(t *testing.T, server *Server, email, role string) (string, int) {
	t.Helper()

	resp, err := server.App().Test(jsonRequest(http.MethodPost, "/register", fiber.Map{
		"email": email, "name": "Test", "surname": "User", "age": 30,
		"role": role, "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	resp, err = server.App().Test(jsonRequest(http.MethodPost, "/login", fiber.Map{
		"email": email, "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		AccessToken string `json:"access_token"`
		User        struct {
			ID int `json:"id"`
		} `json:"user"`
	}
	decodeBody(t, resp, &body)
	assert.NotEmpty(t, body.AccessToken)
	return body.AccessToken, body.User.ID
}

func authedRequest(method, target, token string, body any) *http.Request {
	req := jsonRequest(method, target, body)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	return req
}

func Test_Health_ReturnsOK(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func Test_Profile_WithoutToken_Returns401(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/profile", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func Test_Profile_WithGarbageToken_Returns401(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.App().Test(authedRequest(http.MethodGet, "/profile", "garbage", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func Test_Profile_WithValidToken_ReturnsCurrentUser(t *testing.T) {

	server := newTestServer(t)
	token, userID := registerAndLogin(t, server, "me@example.com", "worker")

	resp, err := server.App().Test(authedRequest(http.MethodGet, "/profile", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body userResponse
	decodeBody(t, resp, &body)
	assert.Equal(t, userID, body.ID)
	assert.Equal(t, "me@example.com", body.Email)
}

func Test_VerifyToken_WithValidToken_ReturnsValid(t *testing.T) {

	server := newTestServer(t)
	token, _ := registerAndLogin(t, server, "me@example.com", "worker")

	resp, err := server.App().Test(authedRequest(http.MethodGet, "/verify-token", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Valid bool `json:"valid"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.Valid)
}

func Test_Register_DuplicateEmail_Returns409(t *testing.T) {

	server := newTestServer(t)
	registerAndLogin(t, server, "dup@example.com", "worker")

	resp, err := server.App().Test(jsonRequest(http.MethodPost, "/register", fiber.Map{
		"email": "dup@example.com", "name": "Other", "surname": "User", "age": 25,
		"role": "employer", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func Test_Register_InvalidEmail_Returns400(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.App().Test(jsonRequest(http.MethodPost, "/register", fiber.Map{
		"email": "nope", "name": "Test", "surname": "User", "age": 30,
		"role": "worker", "password": "secret123",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Error string `json:"error"`
	}
	decodeBody(t, resp, &body)
	assert.Equal(t, "invalid email format", body.Error)
}

func Test_Login_WrongPassword_Returns401(t *testing.T) {

	server := newTestServer(t)
	registerAndLogin(t, server, "me@example.com", "worker")

	resp, err := server.App().Test(jsonRequest(http.MethodPost, "/login", fiber.Map{
		"email": "me@example.com", "password": "wrong-pass",
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func Test_ListUsers_InvalidLimit_Returns400(t *testing.T) {

	server := newTestServer(t)

	for _, limit := range []int{0, 1001} {
		resp, err := server.App().Test(httptest.NewRequest(http.MethodGet,
			fmt.Sprintf("/users?limit=%d", limit), nil))
		assert.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	}
}

func Test_GetJob_Missing_Returns404(t *testing.T) {

	server := newTestServer(t)

	resp, err := server.App().Test(httptest.NewRequest(http.MethodGet, "/jobs/999", nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}

func Test_CreateCompany_AsWorker_Returns403(t *testing.T) {

	server := newTestServer(t)
	token, _ := registerAndLogin(t, server, "worker@example.com", "worker")

	resp, err := server.App().Test(authedRequest(http.MethodPost, "/companies", token, fiber.Map{
		"title": "Acme", "city": "Berlin", "businessAreas": []string{"DevOps"},
	}))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func Test_EmployerJobs_AsWorker_Returns403(t *testing.T) {

	server := newTestServer(t)
	token, _ := registerAndLogin(t, server, "worker@example.com", "worker")

	resp, err := server.App().Test(authedRequest(http.MethodGet, "/employer/jobs", token, nil))
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}
