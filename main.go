package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	"github.com/Devang1/BVCOE-TalkZone/internal/db"
	"github.com/Devang1/BVCOE-TalkZone/internal/handlers"
	"github.com/Devang1/BVCOE-TalkZone/internal/observability"
	"github.com/Devang1/BVCOE-TalkZone/internal/rabbitmq"
	"github.com/Devang1/BVCOE-TalkZone/internal/repositories"
	"github.com/Devang1/BVCOE-TalkZone/internal/telemetry"
	"github.com/Devang1/BVCOE-TalkZone/internal/ws"
)

func main() {
	database, err := db.Connect()
	if err != nil {
		log.Fatalf("failed to connect to db: %v", err)
	}
	defer database.Close()

	shutdownTracing, err := telemetry.SetupTracing(context.Background(), "talkzone", os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"))
	if err != nil {
		log.Fatalf("failed to set up tracing: %v", err)
	}
	defer shutdownTracing(context.Background())

	amqpURL := os.Getenv("AMQP_URL")
	auditExchange := getEnv("AUDIT_EXCHANGE", "talkzone.audit")
	publisher := rabbitmq.NewPublisher(amqpURL, auditExchange)
	defer publisher.Close()
	log.Printf("audit publisher mode=%s", rabbitmq.PublisherMode(publisher))

	audit := telemetry.NewAuditEmitter(publisher, getEnv("AUDIT_ROUTING_KEY", "audit_logs.talkzone"), "talkzone", getEnv("ENVIRONMENT", "development"))

	if amqpURL != "" {
		eventsPublisher, err := observability.NewAMQPPublisher(amqpURL, getEnv("EVENTS_EXCHANGE", "talkzone.events"))
		if err != nil {
			log.Printf("ws events publisher disabled: %v", err)
		} else {
			observability.SetPublisher(eventsPublisher)
			defer eventsPublisher.Close()
		}
	}

	roomRepo := repositories.NewRoomRepo(database)
	messageRepo := repositories.NewMessageRepo(database)

	hub := ws.NewHub()

	authHandler := handlers.NewAuthHandler(roomRepo, audit)
	nicknameHandler := handlers.NewNicknameHandler(roomRepo, messageRepo)
	messageHandler := handlers.NewMessageHandler(messageRepo, hub, audit)
	roomWS := ws.NewRoomWebSocketHandler(hub, roomRepo)

	router := gin.Default()
	router.Use(gin.Recovery())
	router.Use(observability.HTTPMetricsMiddleware())
	router.Use(otelgin.Middleware("talkzone"))

	router.POST("/api/auth", authHandler.Login)
	router.GET("/api/auth", authHandler.ResolveClassID)
	router.POST("/api/check-nickname", nicknameHandler.CheckNickname)
	router.GET("/api/messages", messageHandler.ListMessages)
	router.POST("/api/messages", messageHandler.PostMessage)

	router.GET("/ws/rooms/:room_id", roomWS.Handle)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	handlers.RegisterClientConfigRoute(router, getEnv("CLOUDINARY_CLOUD_NAME", ""), getEnv("CLOUDINARY_UPLOAD_PRESET", ""))
	handlers.RegisterDebugRoutes(router, audit, os.Getenv("ENABLE_DEBUG_ROUTES") == "true")

	// Static chat client: join form at /, room view at /chat.
	router.StaticFile("/", "./web/index.html")
	router.StaticFile("/chat", "./web/chat.html")
	router.Static("/static", "./web/static")

	port := getEnv("PORT", "8080")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func getEnv(key, fallback string) string {
	if val, ok := os.LookupEnv(key); ok {
		return val
	}
	return fallback
}
