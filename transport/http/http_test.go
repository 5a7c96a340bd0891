package http_test

import (
	"net/http"
	"net/http/httptest"
	"organise/config"
	otelMocks "organise/infras/otel/mocks"
	calendarMocks "organise/internal/domains/calendar/mocks"
	noteMocks "organise/internal/domains/note/mocks"
	todoMocks "organise/internal/domains/todo/mocks"
	todoDto "organise/internal/domains/todo/model/dto"
	"organise/internal/handlers/calendar"
	"organise/internal/handlers/health"
	"organise/internal/handlers/note"
	"organise/internal/handlers/todo"
	"organise/shared/cache"
	"organise/shared/constant"
	"organise/shared/server"
	transport "organise/transport/http"
	"organise/transport/http/middleware"
	"organise/transport/http/router"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newServer(t *testing.T, cfg *config.Config) (*transport.HTTP, *todoMocks.MockTodoService) {
	t.Helper()

	ctrl := gomock.NewController(t)
	ot := otelMocks.NewOtel()
	state := server.NewTracker()
	todoService := todoMocks.NewMockTodoService(ctrl)

	appMiddleware := middleware.NewAppMiddleware(ot, cfg, cache.NewRedisCache(nil, ot), state)
	routes := router.New(router.DomainHandlers{
		Todo:     todo.New(todoService, ot),
		Note:     note.New(noteMocks.NewMockNoteService(ctrl), ot),
		Calendar: calendar.New(calendarMocks.NewMockCalendarEventService(ctrl), ot),
		Health:   health.New(state),
	}, appMiddleware)

	return transport.New(cfg, routes, appMiddleware, state), todoService
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))

	return rec
}

func TestHandler_Routes(t *testing.T) {
	srv, todoService := newServer(t, &config.Config{})
	srv.State.Set(server.StateReady)

	handler := srv.Handler()

	todoService.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]todoDto.TodoResponse{}, nil)

	rec := get(handler, "/api/todos")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
	assert.NotEmpty(t, rec.Header().Get(constant.RequestHeaderRequestID))

	assert.Equal(t, http.StatusOK, get(handler, "/health").Code)
	assert.Equal(t, http.StatusNotFound, get(handler, "/api/unknown").Code)
	assert.Equal(t, http.StatusOK, get(handler, "/swagger/doc.json").Code)
}

func TestHandler_GracePeriod(t *testing.T) {
	srv, _ := newServer(t, &config.Config{})
	handler := srv.Handler()

	srv.State.Set(server.StateInGracePeriod)

	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/api/todos").Code)
	assert.Equal(t, http.StatusServiceUnavailable, get(handler, "/health").Code)
}

func TestHandler_CORS(t *testing.T) {
	cfg := &config.Config{}
	cfg.App.CORS.Enable = true
	cfg.App.CORS.AllowedOrigins = []string{"http://localhost:3000"}
	cfg.App.CORS.AllowedMethods = []string{http.MethodGet, http.MethodPost}

	srv, _ := newServer(t, cfg)
	srv.State.Set(server.StateReady)

	req := httptest.NewRequest(http.MethodOptions, "/api/todos", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, req)

	assert.Equal(t, "http://localhost:3000", rec.Header().Get("Access-Control-Allow-Origin"))
}
