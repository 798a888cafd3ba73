package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"okpujaAdmin/internal/config"
	analyticsUsecase "okpujaAdmin/internal/modules/analytics/application/usecase"
	analyticsInfra "okpujaAdmin/internal/modules/analytics/infrastructure"
	analyticsTransport "okpujaAdmin/internal/modules/analytics/interface"
	bookingUsecase "okpujaAdmin/internal/modules/bookings/application/usecase"
	bookingInfra "okpujaAdmin/internal/modules/bookings/infrastructure"
	bookingTransport "okpujaAdmin/internal/modules/bookings/interface"
	employeeUsecase "okpujaAdmin/internal/modules/employees/application/usecase"
	employeeInfra "okpujaAdmin/internal/modules/employees/infrastructure"
	employeeTransport "okpujaAdmin/internal/modules/employees/interface"
	"okpujaAdmin/internal/shared/auth"
	"okpujaAdmin/internal/shared/logging"
	"okpujaAdmin/internal/shared/validation"
)

func main() {
	// Load .env for local runs; a missing file is fine.
	if err := godotenv.Overload(); err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fmt.Fprintf(os.Stderr, ".env load warning: %v\n", err)
		}
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load error: %v\n", err)
		os.Exit(1)
	}

	logFile, logger, err := setupLogging(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logging setup error: %v\n", err)
		os.Exit(1)
	}
	defer logFile.Close()
	slog.SetDefault(logger)
	slog.Info("logging initialized",
		slog.String("directory", cfg.Logging.Directory),
		slog.String("level", cfg.Logging.Level),
		slog.String("format", cfg.Logging.Format))
	slog.Info("upstream configured",
		slog.String("baseURL", cfg.Upstream.BaseURL),
		slog.Duration("timeout", cfg.Upstream.Timeout))

	// Upstream gateways
	bookingGateway := bookingInfra.NewBookingHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, nil)
	employeeGateway := employeeInfra.NewEmployeeHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, nil)
	overviewGateway := analyticsInfra.NewOverviewHTTPClient(cfg.Upstream.BaseURL, cfg.Upstream.Timeout, nil)

	// Session-scoped state: one store, single writer, threaded explicitly.
	store := bookingUsecase.NewSessionStore(bookingGateway)
	directory := employeeUsecase.NewDirectory(employeeGateway)

	// Use cases
	statusController := bookingUsecase.NewStatusTransitionController(bookingGateway, store)
	assignmentCoordinator := bookingUsecase.NewAssignmentCoordinator(bookingGateway, store, directory, 0, cfg.Upstream.Timeout)
	rescheduleCoordinator := bookingUsecase.NewRescheduleCoordinator(bookingGateway, store, cfg.Refresh.SettleDelay, cfg.Upstream.Timeout)
	dashboard := analyticsUsecase.NewDashboardUseCase(overviewGateway)

	// HTTP surface
	e := echo.New()
	e.HideBanner = true
	e.Logger.SetOutput(log.Writer())

	validator := auth.NewJWTValidator(cfg.Security.JWTSecret)
	admin := e.Group("/api/v1/admin", auth.RequireAdmin(validator))

	requestValidator := validation.New()
	bookingTransport.NewBookingHandler(store, directory, statusController, assignmentCoordinator, rescheduleCoordinator, requestValidator).Register(admin)
	employeeTransport.NewEmployeeHandler(directory).Register(admin)
	analyticsTransport.NewDashboardHandler(dashboard).Register(admin)

	e.GET("/healthz", func(c echo.Context) error {
		return c.JSON(http.StatusOK, echo.Map{"status": "ok"})
	})

	go func() {
		if err := e.Start(":" + cfg.Server.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server stopped", slog.Any("error", err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop
	slog.Info("shutting down")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", slog.Any("error", err))
	}
}

func setupLogging(cfg config.LoggingConfig) (*os.File, *slog.Logger, error) {
	dir := cfg.Directory
	if dir == "" {
		dir = "./logs"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	fileName := filepath.Join(dir, time.Now().UTC().Format("2006-01-02")+".log")
	file, err := os.OpenFile(fileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	writer := io.MultiWriter(os.Stdout, file)
	logger := logging.New(writer, logging.Config{
		Level:     cfg.Level,
		Format:    cfg.Format,
		AddSource: true,
	})
	log.SetOutput(writer)
	log.SetFlags(0)
	log.SetPrefix("")

	return file, logger, nil
}
