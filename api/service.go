package api

import (
	"context"
	"net/http"
	"time"

	"github.com/BenWeng0419/gpt-ai-assistant/app"
	"github.com/BenWeng0419/gpt-ai-assistant/storage"
	"github.com/BenWeng0419/gpt-ai-assistant/util"
	"github.com/BenWeng0419/gpt-ai-assistant/version"
	"github.com/gin-gonic/gin"
)

type Service struct {
	config   util.Config
	secret   []byte
	storage  storage.Storage
	handler  app.Handler
	versions version.Provider
	server   *http.Server
	router   *gin.Engine
}

// Returns new service instance with provided config and collaborators.
// Fails when no port is configured: a service that cannot listen must not start.
func NewService(
	config util.Config,
	store storage.Storage,
	handler app.Handler,
	versions version.Provider,
) (*Service, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}

	service := &Service{
		config:   config,
		secret:   []byte(config.LineChannelSecret),
		storage:  store,
		handler:  handler,
		versions: versions,
	}

	server := &http.Server{
		Addr: config.HTTPServerAddress(),
	}

	// caps how long a client can take to send just the headers (blocks slowloris).
	server.ReadHeaderTimeout = 5 * time.Second
	// caps time to read the full request (incl. body).
	server.ReadTimeout = 10 * time.Second
	// caps time you’ll spend writing the response (no “forever hanging” clients)
	server.WriteTimeout = 15 * time.Second
	// how long to keep idle keep-alive connections open.
	server.IdleTimeout = 60 * time.Second

	service.setupRouter(server)

	service.server = server

	return service, nil
}

// Start runs the HTTP server
func (service *Service) Start() error {
	return service.server.ListenAndServe()
}

func (service *Service) Shutdown(ctx context.Context) error {
	return service.server.Shutdown(ctx)
}

func (service *Service) Addr() string {
	return service.server.Addr
}
