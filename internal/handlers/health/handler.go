package health

import (
	"net/http"
	"organise/shared/server"
	"organise/transport/http/response"

	"github.com/go-chi/chi/v5"
)

type Handler struct {
	state *server.Tracker
}

func New(state *server.Tracker) Handler {
	return Handler{
		state: state,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Health)
}

type Status struct {
	Status string `json:"status"`
	State  string `json:"state"`
}

// Health reports liveness.
// @Summary Health check
// @Description Reports 200 while serving and 503 once shutdown has begun
// @Tags Health
// @Produce json
// @Success 200 {object} Status
// @Failure 503 {object} response.Message
// @Router /health [get]
func (handler *Handler) Health(w http.ResponseWriter, _ *http.Request) {
	state := handler.state.Get()

	if !handler.state.Accepting() {
		response.WithJSON(w, http.StatusServiceUnavailable, Status{Status: "unavailable", State: state.String()})

		return
	}

	response.WithJSON(w, http.StatusOK, Status{Status: "ok", State: state.String()})
}
