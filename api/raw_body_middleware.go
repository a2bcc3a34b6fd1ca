package api

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// This middleware reads the whole request body once and keeps the exact bytes.
//
// The bytes are stored under gin.BodyBytesKey, which is where
// ShouldBindBodyWith looks first, so the signature check and the JSON binding
// work on the very same bytes that came over the wire.
func rawBodyMiddleware(limit int64) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		var body []byte

		if ctx.Request.Body != nil {
			var err error
			body, err = io.ReadAll(http.MaxBytesReader(ctx.Writer, ctx.Request.Body, limit))
			if err != nil {
				logger := zerolog.Ctx(ctx.Request.Context())

				var maxBytesErr *http.MaxBytesError
				if errors.As(err, &maxBytesErr) {
					logger.Warn().Int64("limit", limit).Msg("webhook body too large")
					ctx.AbortWithStatus(http.StatusRequestEntityTooLarge)
					return
				}

				logger.Warn().Err(err).Msg("failed to read webhook body")
				ctx.AbortWithStatus(http.StatusBadRequest)
				return
			}
		}

		ctx.Set(gin.BodyBytesKey, body)
		ctx.Next()
	}
}

// Helper function to get the raw body after middleware read it.
func extractRawBodyFromCtx(ctx *gin.Context) []byte {
	body, _ := ctx.MustGet(gin.BodyBytesKey).([]byte)
	return body
}
