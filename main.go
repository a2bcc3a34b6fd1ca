package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"reflect"
	"strings"
	"syscall"
	"time"

	"github.com/BenWeng0419/gpt-ai-assistant/api"
	"github.com/BenWeng0419/gpt-ai-assistant/app"
	"github.com/BenWeng0419/gpt-ai-assistant/storage"
	"github.com/BenWeng0419/gpt-ai-assistant/util"
	"github.com/BenWeng0419/gpt-ai-assistant/version"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

var interruptSignals = []os.Signal{
	os.Interrupt,
	syscall.SIGTERM,
	syscall.SIGINT,
}

func main() {
	// reading .env config file
	config, err := util.LoadConfig(".")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot read config file")
	}

	if config.Environment == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if config.AppDebug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}

	// no port means nothing would ever be served, stop here
	if err := config.Validate(); err != nil {
		log.Fatal().Err(err).Msg("invalid config")
	}

	log.Info().Object("config", config).Str("version", version.Version).Msg("config loaded")

	// Configure the validator to use json tags for field names in errors
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})
	}

	// catching interrupt signals for graceful shutdown
	// stop() or a signal catch makes context Done
	ctx, stop := signal.NotifyContext(context.Background(), interruptSignals...)
	defer stop()

	store, err := storage.NewStorage(ctx, config)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create storage")
	}

	bot := app.NewBot(store, config.BotMaxPromptMessages)
	versions := version.NewChecker(config.VersionCheckURL, nil)

	// waitgroup which manages goroutines for starting and stopping HTTP server
	waitGroup, ctx := errgroup.WithContext(ctx)

	RunGinServer(ctx, waitGroup, config, store, bot, versions)

	err = waitGroup.Wait()
	if err != nil {
		log.Fatal().Err(err).Msg("error from wait group")
	}
}

func RunGinServer(
	ctx context.Context,
	waitGroup *errgroup.Group,
	config util.Config,
	store storage.Storage,
	handler app.Handler,
	versions version.Provider,
) {
	service, err := api.NewService(config, store, handler, versions)
	if err != nil {
		log.Fatal().Err(err).Msg("cannot create HTTP service")
	}

	waitGroup.Go(func() error {
		log.Info().Msgf("server is running on port %s", config.AppPort)

		err := service.Start()

		if err != nil {
			//http.ErrServerClosed is returned once the server begins shutting down
			// which is normal
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			log.Error().Err(err).Msg("cannot start HTTP server")
		}

		return err
	})

	waitGroup.Go(func() error {
		<-ctx.Done()

		log.Info().Msg("HTTP server: graceful shutdown")

		// give the server 5 secs to finish all his processes
		toCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		err := service.Shutdown(toCtx)

		if err != nil {
			log.Error().Err(err).Msg("cannot shutdown HTTP server gracefully")
		}

		closeStorage(store)

		log.Info().Msg("webhook server is stopped")

		return err
	})
}

// closes storage connections when the implementation holds any
func closeStorage(store storage.Storage) {
	switch s := store.(type) {
	case *storage.PostgresStorage:
		s.Close()
	case *storage.RedisStorage:
		if err := s.Close(); err != nil {
			log.Error().Err(err).Msg("cannot close redis connection")
		}
	}
}
