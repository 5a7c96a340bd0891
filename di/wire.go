//go:build wireinject
// +build wireinject

package di

import (
	"organise/config"
	"organise/infras/googlecalendar"
	"organise/infras/kafka"
	"organise/infras/mongo"
	"organise/infras/otel"
	"organise/infras/redis"
	calendarHandler "organise/internal/handlers/calendar"
	healthHandler "organise/internal/handlers/health"
	noteHandler "organise/internal/handlers/note"
	todoHandler "organise/internal/handlers/todo"
	"organise/shared/cache"
	"organise/shared/server"
	"organise/transport/http"
	"organise/transport/http/middleware"
	"organise/transport/http/router"

	calendarRepository "organise/internal/domains/calendar/repository"
	calendarService "organise/internal/domains/calendar/service"
	noteRepository "organise/internal/domains/note/repository"
	noteService "organise/internal/domains/note/service"
	todoRepository "organise/internal/domains/todo/repository"
	todoService "organise/internal/domains/todo/service"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
	kafka.New,
	googlecalendar.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	server.NewTracker,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoService.New,
)

var noteDomain = wire.NewSet(
	noteRepository.New,
	noteService.New,
)

var calendarDomain = wire.NewSet(
	calendarRepository.New,
	calendarService.New,
)

var domains = wire.NewSet(
	todoDomain,
	noteDomain,
	calendarDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
	noteHandler.New,
	calendarHandler.New,
	healthHandler.New,
	router.New,
)

func InitializeService() *App {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
		wire.Struct(new(App), "*"),
	)

	return &App{}
}
