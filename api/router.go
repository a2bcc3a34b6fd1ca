package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Establishes HTTP router.
func (service *Service) setupRouter(server *http.Server) {
	router := gin.New()

	router.Use(requestIDMiddleware(), requestLoggerMiddleware(), gin.Recovery())

	// liveness and version report, no signature required
	router.GET(StatusURL, service.getStatus)

	// the body is read and verified before any handler sees it
	router.POST(
		service.config.AppWebhookPath,
		rawBodyMiddleware(service.config.AppMaxBodyBytes),
		signatureMiddleware(service.secret),
		service.handleWebhook,
	)

	server.Handler = router
	service.router = router
}
