package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

const StatusURL = "/"

type StatusResponse struct {
	Status         string `json:"status"`
	CurrentVersion string `json:"currentVersion"`
	LatestVersion  string `json:"latestVersion"`
}

// getStatus redirects to the app URL when one is configured. Otherwise it reports
// the running version next to the latest published one.
func (service *Service) getStatus(ctx *gin.Context) {
	if service.config.AppURL != "" {
		ctx.Redirect(http.StatusFound, service.config.AppURL)
		return
	}

	currentVersion := service.versions.GetVersion()

	fetchCtx, cancel := context.WithTimeout(ctx.Request.Context(), service.config.VersionCheckTimeout)
	defer cancel()

	latestVersion, err := service.versions.FetchVersion(fetchCtx)
	if err != nil {
		zerolog.Ctx(ctx.Request.Context()).Error().Err(err).Msg("failed to fetch latest version")
		ctx.JSON(http.StatusInternalServerError, NewErrorResponse(err))
		return
	}

	ctx.JSON(http.StatusOK, StatusResponse{
		Status:         statusOK,
		CurrentVersion: currentVersion,
		LatestVersion:  latestVersion,
	})
}
