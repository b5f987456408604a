package api

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"tasker/config"
	apimiddleware "tasker/internal/delivery/api/middleware"
	"tasker/internal/delivery/api/response"
	"tasker/internal/delivery/api/router"
	"tasker/internal/delivery/api/router/handler"
	"tasker/internal/domain/entity"
	domainerrors "tasker/internal/domain/errors"
	"tasker/internal/domain/service"
	"tasker/internal/infra/metrics"
	mockRepo "tasker/internal/mocks/repository"
	mockSvc "tasker/internal/mocks/service"
	mockUC "tasker/internal/mocks/usecase"
	"tasker/internal/validation"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serverFixture struct {
	echo         *echo.Echo
	tokenService *mockSvc.MockTokenService
	taskUC       *mockUC.MockTaskUsecase
}

func newServerFixture(t *testing.T) serverFixture {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{Auth: &config.AuthConfig{}}
	cfg.HTTP.MaxRequestBodySize = "100KB"

	tokenService := mockSvc.NewMockTokenService(t)
	taskUC := mockUC.NewMockTaskUsecase(t)
	registry := metrics.NewRegistry()

	e, err := newEcho(ServerParams{
		Cfg:       cfg,
		Logger:    logger,
		Validator: validation.New(),
		Registry:  registry,
		RouterParams: router.RouterParams{
			UserHandler: handler.NewUserHandler(handler.UserHandlerParams{
				UserUC: mockUC.NewMockUserUsecase(t),
				Logger: logger,
			}),
			TaskHandler: handler.NewTaskHandler(handler.TaskHandlerParams{TaskUC: taskUC, Logger: logger}),
			AuthMiddleware: apimiddleware.NewAuthMiddleware(apimiddleware.AuthMiddlewareParams{
				TokenService: tokenService,
				UserRepo:     mockRepo.NewMockUserRepository(t),
				Config:       cfg,
				Logger:       logger,
			}),
			Registry: registry,
		},
	})
	require.NoError(t, err)

	return serverFixture{echo: e, tokenService: tokenService, taskUC: taskUC}
}

func (f serverFixture) do(method, path, token, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	f.echo.ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) response.ErrorResponse {
	t.Helper()

	var body response.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestServer_UnknownRoute(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/nowhere", "", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Could not find this route.", decodeError(t, rec).Message)
	assert.NotEmpty(t, rec.Header().Get(echo.HeaderXRequestID))
}

func TestServer_UnknownTaskPathWithoutToken(t *testing.T) {
	f := newServerFixture(t)

	for _, path := range []string{"/tasks/a/b", "/tasks/a/b/c"} {
		rec := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusNotFound, rec.Code, path)
		assert.Equal(t, "Could not find this route.", decodeError(t, rec).Message, path)
	}
}

func TestServer_TasksRequireToken(t *testing.T) {
	f := newServerFixture(t)

	for _, path := range []string{"/tasks", "/tasks/t1"} {
		rec := f.do(http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		assert.Equal(t, "Not authorized, please log in.", decodeError(t, rec).Message, path)
	}
}

func TestServer_CreateTaskValidation(t *testing.T) {
	f := newServerFixture(t)

	f.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: "user-1"}, nil)
	f.taskUC.EXPECT().Create(mock.Anything, "user-1", mock.Anything).
		Return(nil, domainerrors.ErrValidationFailed.WithDetails("title is required"))

	rec := f.do(http.MethodPost, "/tasks", "good", `{"description":"no title"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeError(t, rec)
	require.NotNil(t, body.Error)
	assert.Equal(t, "VALIDATION_FAILED", body.Error.Code)
	assert.Equal(t, "title is required", body.Error.Details)
}

func TestServer_ListTasksAndMetrics(t *testing.T) {
	f := newServerFixture(t)

	f.tokenService.EXPECT().ValidateToken("good").Return(&service.Claims{UserID: "user-1"}, nil)
	f.taskUC.EXPECT().ListAll(mock.Anything, "user-1").Return([]*entity.Task{}, nil)

	rec := f.do(http.MethodGet, "/tasks", "good", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"count":0,"tasks":[]}`, rec.Body.String())

	rec = f.do(http.MethodGet, "/metrics", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `tasker_http_requests_total{method="GET",route="/tasks",status="200"} 1`)
}

func TestServer_Health(t *testing.T) {
	f := newServerFixture(t)

	rec := f.do(http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}
