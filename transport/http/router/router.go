package router

import (
	"todoapi/internal/handlers/task"
	"todoapi/internal/handlers/user"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger"

	_ "todoapi/docs" // registers the swagger document
)

const (
	apiPrefix   = "/api"
	swaggerPath = "/swagger/*"
	swaggerDoc  = "/swagger/doc.json"
)

type DomainHandlers struct {
	Task task.Handler
	User user.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Get(swaggerPath, httpSwagger.Handler(httpSwagger.URL(swaggerDoc)))

	router.Route(apiPrefix, func(routerGroup chi.Router) {
		r.DomainHandlers.Task.Router(routerGroup)
		r.DomainHandlers.User.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
