package api

import (
	"net/http"

	"github.com/BenWeng0419/gpt-ai-assistant/line"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// This middleware rejects every request whose body was not signed with the
// channel secret. Nothing after it runs for a rejected request.
//
// It must come after rawBodyMiddleware.
func signatureMiddleware(secret []byte) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		signature := ctx.GetHeader(line.SignatureHeader)

		if err := line.CheckSignature(extractRawBodyFromCtx(ctx), signature, secret); err != nil {
			zerolog.Ctx(ctx.Request.Context()).Warn().
				Err(err).
				Str("client_ip", ctx.ClientIP()).
				Msg("rejected webhook request")
			ctx.AbortWithStatus(http.StatusForbidden)
			return
		}

		ctx.Next()
	}
}
