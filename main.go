package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/config"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/events"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/handler"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/middleware"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/repository"
	"github.com/rbcribeiro/SAP010-burger-queen-api/internal/service"
)

func main() {
	cfg := config.Load()
	ctx := context.Background()

	pool, err := pgxpool.New(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database initialization failed: %v", err)
	}
	defer pool.Close()

	if err := pool.Ping(ctx); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}

	orderRepo := repository.NewOrder(pool)
	productRepo := repository.NewProduct(pool)
	userRepo := repository.NewUser(pool)

	// Event publishing is optional: no broker URL, no publisher.
	var publisher *events.Publisher
	if cfg.RabbitMQURL != "" {
		publisher, err = events.NewPublisher(cfg.RabbitMQURL, cfg.OrderExchange)
		if err != nil {
			log.Fatalf("rabbitmq initialization failed: %v", err)
		}
		defer publisher.Close()
	}

	userSvc := service.NewUser(userRepo)
	if err := userSvc.EnsureAdmin(ctx, cfg.AdminEmail, cfg.AdminPassword); err != nil {
		log.Fatalf("admin bootstrap failed: %v", err)
	}

	orderSvc := service.NewOrder(orderRepo, userRepo, productRepo, publisher)
	productSvc := service.NewProduct(productRepo)
	authSvc := service.NewAuth(userRepo, cfg.JWTSecret, cfg.TokenTTL)

	r := gin.Default()
	r.Use(middleware.Prometheus())

	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	handler.NewAuth(authSvc).Register(r)

	authGroup := r.Group("/")
	authGroup.Use(middleware.Auth(cfg.JWTSecret))
	handler.NewOrder(orderSvc).Register(authGroup)
	handler.NewProduct(productSvc).Register(authGroup)
	handler.NewUser(userSvc).Register(authGroup)

	addr := ":" + cfg.Port
	log.Printf("burger queen API listening on %s", addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
