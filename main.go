package main

import (
	"log"

	"github.com/copool/chat-service/config"
	"github.com/copool/chat-service/internal/auth"
	"github.com/copool/chat-service/internal/consumer"
	"github.com/copool/chat-service/internal/handler"
	"github.com/copool/chat-service/internal/middleware"
	"github.com/copool/chat-service/internal/repository"
	"github.com/copool/chat-service/internal/service"
	"github.com/copool/chat-service/pkg/database"
	"github.com/copool/chat-service/pkg/rabbitmq"
	"github.com/copool/chat-service/pkg/redis"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg := config.Load()

	db := database.NewPostgresDB(cfg.DSN())
	rdb := redis.NewClient(cfg.RedisAddr)

	// RabbitMQ consumer: mirror rides, bookings and users from the platform
	mqConsumer, err := rabbitmq.NewConsumer(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to connect to RabbitMQ: %v", err)
	}
	defer mqConsumer.Close()

	msgs, err := mqConsumer.Consume()
	if err != nil {
		log.Fatalf("failed to start consuming: %v", err)
	}

	platformConsumer := consumer.NewPlatformConsumer(db)
	platformConsumer.Start(msgs)

	// RabbitMQ publisher: chat.message.created for delivery collaborators
	publisher, err := rabbitmq.NewPublisher(cfg.RabbitURL)
	if err != nil {
		log.Fatalf("failed to create publisher: %v", err)
	}
	defer publisher.Close()

	// Repositories
	rideRepo := repository.NewRideRepository(db)
	userRepo := repository.NewUserRepository(db)
	messageRepo := repository.NewChatMessageRepository(db)

	// Services
	accessSvc := service.NewChatAccessService(rideRepo)
	messageSvc := service.NewMessageService(accessSvc, rideRepo, messageRepo, publisher)
	participantSvc := service.NewParticipantService(rideRepo)

	// Auth: email-link sign-in backed by redis tokens and JWT sessions
	jwtSvc := auth.NewJWTService(cfg.JWTSecret, cfg.SessionTTL)
	tokenStore := auth.NewRedisTokenStore(rdb)
	provider := auth.NewEmailLinkProvider(userRepo, tokenStore, auth.LogMailer{}, jwtSvc, cfg.PublicBaseURL, cfg.SignInTokenTTL)

	// Echo
	e := echo.New()
	e.HTTPErrorHandler = middleware.ErrorHandler
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

	e.GET("/health", func(c echo.Context) error {
		return c.JSON(200, map[string]string{"status": "ok", "service": "chat-service"})
	})
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	handler.NewChatHandler(messageSvc, participantSvc).RegisterRoutes(e)
	handler.NewAuthHandler(provider).RegisterRoutes(e)

	log.Printf("Chat Service starting on :%s", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
