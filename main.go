package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/Eursukkul/travel-booking/config"
	"github.com/Eursukkul/travel-booking/internal/consumer"
	"github.com/Eursukkul/travel-booking/internal/dashboard"
	"github.com/Eursukkul/travel-booking/internal/handler"
	"github.com/Eursukkul/travel-booking/internal/metrics"
	"github.com/Eursukkul/travel-booking/internal/middleware"
	"github.com/Eursukkul/travel-booking/internal/notification"
	"github.com/Eursukkul/travel-booking/internal/repository"
	"github.com/Eursukkul/travel-booking/internal/service"
	"github.com/Eursukkul/travel-booking/internal/validator"
	"github.com/Eursukkul/travel-booking/pkg/database"
	"github.com/Eursukkul/travel-booking/pkg/rabbitmq"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}

	// Notifications: services publish, the consumer renders and mails
	var notifier service.Notifier
	if cfg.NotificationsEnabled {
		publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer publisher.Close()
		notifier = notification.NewRelay(publisher)

		mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
		if err != nil {
			log.Fatalf("failed to connect to RabbitMQ: %v", err)
		}
		defer mqConsumer.Close()

		msgs, err := mqConsumer.Consume()
		if err != nil {
			log.Fatalf("failed to start consuming: %v", err)
		}
		consumer.NewNotificationConsumer(newMailer(cfg)).Start(msgs)
	} else {
		log.Println("notifications disabled")
	}

	// Repositories
	flightRepo := repository.NewFlightBookingRepository(db)
	airTaxiRepo := repository.NewAirTaxiBookingRepository(db)
	requestRepo := repository.NewRequestRepository(db)

	// Services
	flightSvc := service.NewFlightBookingService(flightRepo, notifier)
	airTaxiSvc := service.NewAirTaxiBookingService(airTaxiRepo, notifier)
	requestSvc := service.NewRequestService(requestRepo, flightSvc, airTaxiSvc, notifier)

	refresher := dashboard.NewRefresher(flightSvc, airTaxiSvc, requestSvc, cfg.DashboardRefresh)
	go refresher.Run(ctx)

	// Echo
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = middleware.ErrorHandler
	e.Validator = validator.NewCustomValidator()
	e.Use(echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus: true,
		LogURI:    true,
		LogMethod: true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			log.Printf("%s %s %d", v.Method, v.URI, v.Status)
			return nil
		},
	}))
	e.Use(echoMw.Recover())
	e.Use(echoMw.CORSWithConfig(echoMw.CORSConfig{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete},
	}))
	if cfg.MetricsEnabled {
		e.Use(metrics.Middleware())
		e.GET("/metrics", metrics.Handler())
	}

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "service": "travel-booking"})
	})

	handler.NewFlightBookingHandler(flightSvc).RegisterRoutes(e.Group("/flightBooking"))
	handler.NewAirTaxiBookingHandler(airTaxiSvc).RegisterRoutes(e.Group("/airTaxiBooking"))
	handler.NewRequestHandler(requestSvc).RegisterRoutes(e.Group("/requests"))
	handler.NewDashboardHandler(refresher).RegisterRoutes(e.Group("/dashboard"))

	go func() {
		log.Printf("Travel Booking Service starting on :%s", cfg.ServerPort)
		if err := e.Start(":" + cfg.ServerPort); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}

func newMailer(cfg *config.Config) notification.Mailer {
	if cfg.SMTPHost == "" {
		log.Println("SMTP_HOST not set, notifications will only be logged")
		return notification.LogMailer{}
	}
	port, err := strconv.Atoi(cfg.SMTPPort)
	if err != nil {
		log.Printf("invalid SMTP_PORT %q, using 587", cfg.SMTPPort)
		port = 587
	}
	return notification.NewSMTPMailer(notification.SMTPConfig{
		Host:     cfg.SMTPHost,
		Port:     port,
		User:     cfg.SMTPUser,
		Password: cfg.SMTPPassword,
		From:     cfg.MailFrom,
	})
}
