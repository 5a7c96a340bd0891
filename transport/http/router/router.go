package router

import (
	"organise/internal/handlers/calendar"
	"organise/internal/handlers/health"
	"organise/internal/handlers/note"
	"organise/internal/handlers/todo"
	"organise/transport/http/middleware"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "organise/docs" // registers the swagger document
)

const (
	swaggerDocURL = "/swagger/doc.json"
)

type DomainHandlers struct {
	Todo     todo.Handler
	Note     note.Handler
	Calendar calendar.Handler
	Health   health.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

// SetupRoutes mounts health and swagger at the root and the resources under /api. Only /api is
// subject to the shutdown gate and the rate limiter.
func (r *Router) SetupRoutes(router chi.Router) {
	r.DomainHandlers.Health.Router(router)

	router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Middleware.ServerState, r.Middleware.RateLimit())

		r.DomainHandlers.Todo.Router(routerGroup)
		r.DomainHandlers.Note.Router(routerGroup)
		r.DomainHandlers.Calendar.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
