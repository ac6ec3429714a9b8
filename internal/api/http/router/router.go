package router

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/dtroode/devserve/internal/api/http/handler"
	"github.com/dtroode/devserve/internal/api/http/middleware"
	"github.com/dtroode/devserve/internal/logger"
	"github.com/dtroode/devserve/internal/model"
)

// Router wires the static file handler, preflight answers and middleware.
type Router struct {
	static         *handler.Static
	cors           *middleware.CORS
	contextManager model.ContextManager
	logger         *logger.Logger
}

// New creates new Router instance.
//
// Parameters:
//   - static: Handler serving the working directory
//   - cors: Header injection middleware applied to every route
//   - contextManager: Request ID storage used by request logging
//   - logger: The logger for request logging
//
// Returns a pointer to the newly created Router instance.
func New(
	static *handler.Static,
	cors *middleware.CORS,
	contextManager model.ContextManager,
	logger *logger.Logger,
) *Router {
	return &Router{
		static:         static,
		cors:           cors,
		contextManager: contextManager,
		logger:         logger,
	}
}

// Register builds the request multiplexer. OPTIONS requests on any path
// are answered by the preflight handler; everything else is served from
// the static root. Path cleaning is left to the file server so redirects
// also pass through the middleware.
func (r *Router) Register() *mux.Router {
	logging := middleware.NewLogging(r.logger, r.contextManager)

	m := mux.NewRouter().SkipClean(true)
	m.Use(logging.Handle, r.cors.Handle)

	m.Methods(http.MethodOptions).HandlerFunc(handler.Preflight)
	m.PathPrefix("/").Handler(r.static)

	return m
}
