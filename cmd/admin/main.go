package main

import (
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"heritageloom/internal/adapter/api"
	"heritageloom/internal/adapter/api/handler"
	apimiddleware "heritageloom/internal/adapter/api/middleware"
	"heritageloom/internal/adapter/api/router"
	"heritageloom/internal/infrastructure/ratelimit"
	"heritageloom/internal/rest"
	"heritageloom/internal/session"
	"heritageloom/internal/usecase"
	"heritageloom/internal/validation"
	"heritageloom/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	transport := rest.NewTransport(cfg.APIBaseURL, cfg.HTTPTimeout)
	uploader := rest.NewUploader(transport, cfg.UploadURL)
	validator := validation.New()

	contentUseCase := usecase.NewContentUseCase(transport, validator)
	sessionManager := session.NewManager(
		cfg.SessionSecret,
		time.Duration(cfg.SessionExpiry)*time.Second,
		cfg.AdminUsername,
		cfg.AdminPassword,
	)

	handler.Setup(contentUseCase, sessionManager, uploader)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator(validator)

	sessionMiddleware := apimiddleware.NewSessionMiddleware(sessionManager)
	loginLimiter := ratelimit.NewLimiter(5, time.Minute)

	router.Setup(e, sessionMiddleware, loginLimiter)

	log.Printf("Starting admin gateway on port %s (backend: %s)...", cfg.ServerPort, cfg.APIBaseURL)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
