package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/finovabank/banking-service/internal/config"
	"github.com/finovabank/banking-service/internal/delivery/http/handlers"
	"github.com/finovabank/banking-service/internal/infrastructure/exchange"
	publisher "github.com/finovabank/banking-service/internal/infrastructure/kafka"
	"github.com/finovabank/banking-service/internal/infrastructure/metrics"
	"github.com/finovabank/banking-service/internal/infrastructure/migrate"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres"
	"github.com/finovabank/banking-service/internal/infrastructure/postgres/repository"
	"github.com/finovabank/banking-service/internal/usecase"
	transferusecase "github.com/finovabank/banking-service/internal/usecase/transfer"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.BankingDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.BankingDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	// Init repos
	accountRepo := repository.NewDefaultAccountRepository(db)
	transactionRepo := repository.NewDefaultTransactionRepository(db)

	// Exchange rate providers: remote first, static table as fallback
	remoteProvider := exchange.NewExchangeRatesAPIProvider(
		cfg.ExchangeService.Endpoint,
		cfg.ExchangeService.APIKey,
		cfg.ExchangeService.Timeout,
	)
	fallbackProvider := exchange.NewFallbackRateProvider(cfg.ExchangeService.FallbackRates)
	rateService := usecase.NewDefaultExchangeRateService(remoteProvider, fallbackProvider, cfg.ExchangeService.CacheTTL)

	converter := usecase.NewDefaultCurrencyConverter(rateService, cfg.TransferConfig.SpreadFraction)

	// Kafka transfer events
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	kafkaPublisher := publisher.NewDefaultKafkaPublisher(brokers)

	transferMetrics := metrics.NewTransferMetrics()

	// Init usecases
	accountUsecase := usecase.NewDefaultAccountUsecase(accountRepo)
	transferUsecase := transferusecase.NewDefaultTransferUsecase(
		accountRepo,
		transactionRepo,
		converter,
		kafkaPublisher,
		transferMetrics,
		cfg.KafkaService.Topic,
		cfg.TransferConfig.MaxConflictRetries,
	)

	// HTTP server
	if cfg.Env == "prod" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "banking-service"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	transferHandler := handlers.NewTransferHandler(transferUsecase)
	transferHandler.RegisterRoutes(router)
	accountHandler := handlers.NewAccountHandler(accountUsecase)
	accountHandler.RegisterRoutes(router)

	addr := fmt.Sprintf("%s:%s", cfg.HTTPServer.Host, cfg.HTTPServer.Port)
	log.Printf("banking service started on %s\n", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}
