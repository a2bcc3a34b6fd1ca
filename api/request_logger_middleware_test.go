package api

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func setupRequestIDTestRouter(handler gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(requestIDMiddleware(), requestLoggerMiddleware())
	r.GET("/", handler)
	return r
}

func TestRequestIDMiddlewareGeneratesID(t *testing.T) {
	var fromCtx string
	var hasLogger bool

	router := setupRequestIDTestRouter(func(ctx *gin.Context) {
		fromCtx = ctx.GetString(ctxRequestIDKey)
		hasLogger = zerolog.Ctx(ctx.Request.Context()).GetLevel() != zerolog.Disabled
		ctx.Status(http.StatusOK)
	})

	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, httptest.NewRequest(http.MethodGet, "/", nil))

	header := resp.Header().Get(RequestIDHeader)
	require.NotEmpty(t, header)
	require.Equal(t, header, fromCtx)
	require.True(t, hasLogger)

	_, err := uuid.Parse(header)
	require.NoError(t, err)
}

func TestRequestIDMiddlewarePropagatesID(t *testing.T) {
	router := setupRequestIDTestRouter(func(ctx *gin.Context) {
		ctx.Status(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, "line-retry-42")
	resp := httptest.NewRecorder()

	router.ServeHTTP(resp, req)

	require.Equal(t, http.StatusNoContent, resp.Code)
	require.Equal(t, "line-retry-42", resp.Header().Get(RequestIDHeader))
}
