package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/BenWeng0419/gpt-ai-assistant/app"
	"github.com/BenWeng0419/gpt-ai-assistant/line"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/rs/zerolog"
)

var ErrDispatchPanic = errors.New("event dispatch panicked")

// handleWebhook initializes storage, hands the events over and answers 200 or 500
// with an empty body. Failures stop here; they are logged, never returned to the
// caller.
func (service *Service) handleWebhook(ctx *gin.Context) {
	logger := zerolog.Ctx(ctx.Request.Context())

	var req line.WebhookBody
	if err := ctx.ShouldBindBodyWith(&req, binding.JSON); err != nil {
		logger.Warn().Err(err).Msg("malformed webhook body")
		ctx.AbortWithStatus(http.StatusBadRequest)
		return
	}

	logger.Debug().
		Str("destination", req.Destination).
		Int("events", len(req.Events)).
		Msg("received events")

	// the events are processed to the end even if the platform hangs up
	dispatchCtx := context.WithoutCancel(ctx.Request.Context())

	if err := service.dispatch(dispatchCtx, req.Events); err != nil {
		logger.Error().Err(err).Msg("error handling events")
		ctx.Status(http.StatusInternalServerError)
	} else {
		ctx.Status(http.StatusOK)
	}
	ctx.Writer.WriteHeaderNow()

	if service.config.AppDebug {
		go printPrompts(service.handler, logger)
	}
}

// dispatch runs storage initialization and event handling in that order.
// A panic in either is turned into an error.
func (service *Service) dispatch(ctx context.Context, events []json.RawMessage) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrDispatchPanic, r)
		}
	}()

	if err := service.storage.Initialize(ctx); err != nil {
		return fmt.Errorf("failed to initialize storage: %w", err)
	}

	if err := service.handler.HandleEvents(ctx, events); err != nil {
		return fmt.Errorf("failed to handle events: %w", err)
	}

	return nil
}

// printPrompts runs after the response is written; whatever happens in it
// stays in it.
func printPrompts(handler app.Handler, logger *zerolog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Warn().Interface("panic", r).Msg("failed to print prompts")
		}
	}()

	handler.PrintPrompts()
}
