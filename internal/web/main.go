// Package web serves the JSON API.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/adaptor"
	recoverer "github.com/gofiber/fiber/v3/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/projecthub/projecthub/internal/auth"
	"github.com/projecthub/projecthub/internal/config"
	fiberlogger "github.com/projecthub/projecthub/internal/logger/adapter/fiber"
	"github.com/projecthub/projecthub/internal/web/handler"
	"github.com/projecthub/projecthub/internal/web/handler/authorization"
	"github.com/projecthub/projecthub/internal/web/handler/can"
	"github.com/projecthub/projecthub/internal/web/handler/permission"
	"github.com/projecthub/projecthub/internal/web/handler/role"
	authmiddleware "github.com/projecthub/projecthub/internal/web/middleware/auth"
)

// MetricsPath serves the prometheus metrics.
const MetricsPath = "/metrics"

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
	authService  *auth.Service
}

// Start starts the web service on the configured port and blocks until it stops.
func (s *Service) Start() error {
	var doneFiber = make(chan bool)

	addr := ":" + strconv.Itoa(s.cfg.Webserver.Port)

	go func() {
		if err := s.App.Listen(addr, fiber.ListenConfig{DisableStartupMessage: true}); err != nil &&
			!errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	log.Info().Str("addr", addr).Msg("http server started")

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown waits for a termination signal and shuts the server down gracefully.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	// Graceful shutdown for reverse proxies: set status to fail, so checkalive returns fail.
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	// stop fiber http server
	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		if err := s.App.Shutdown(); err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// Alive reports whether checkalive answers OK.
func (s *Service) Alive() bool {
	return s.alive.Load()
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB) *Service {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	// create fiber app
	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Immutable:      true,
			ErrorHandler:   ErrorHandler,
		},
	)

	authService := auth.NewService(db, cfg.Authorization)

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		authService:  authService,
		fastShutDown: cfg.DevMode,
	}
	service.alive.Store(true)

	if !cfg.Webserver.DisableRecover {
		app.Use(recoverer.New(recoverer.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: cfg.Webserver.CheckAliveURI,
	}))

	app.Get(cfg.Webserver.CheckAliveURI, service.checkAlive)
	app.Get(MetricsPath, adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(handler.APIPath, authmiddleware.New(cfg.Webserver.ActorHeader, authService))

	// init handlers (they register their own routes)
	for _, h := range []handler.Service{
		&authorization.Service{},
		&role.Service{},
		&permission.Service{},
		&can.Service{},
	} {
		h.Init(app, authService)
	}

	return service
}

func (s *Service) checkAlive(c fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).SendString("shutting down")
	}

	return c.SendString("OK")
}
