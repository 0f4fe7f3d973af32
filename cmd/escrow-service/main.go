package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nexabay/escrow-order-service/internal/app/background"
	"github.com/nexabay/escrow-order-service/internal/config"
	"github.com/nexabay/escrow-order-service/internal/delivery/http/handlers"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/kafka"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/metrics"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/migrate"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres"
	"github.com/nexabay/escrow-order-service/internal/infrastructure/postgres/repository"
	disputeusecase "github.com/nexabay/escrow-order-service/internal/usecase/dispute"
	orderusecase "github.com/nexabay/escrow-order-service/internal/usecase/order"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	// Init database
	db := postgres.MustInitDB(cfg)

	if cfg.MigrationsPath != "" {
		if err := migrate.RunMigrations(db, cfg.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewKafkaPublisher(brokers, cfg.KafkaService.OrderTopic, cfg.KafkaService.DisputeTopic)
	defer pub.Close()

	// Init repositories
	orderRepo := repository.NewDefaultOrderRepository(db)
	disputeRepo := repository.NewDefaultDisputeRepository(db)
	listingRepo := repository.NewDefaultListingRepository(db)

	// Init metrics
	orderMetrics := metrics.NewOrderMetrics()

	// Init escrow gateway client
	escrowHandler, err := handlers.NewHTTPEscrowHandler(fmt.Sprintf("http://%s:%s", cfg.EscrowGateway.Host, cfg.EscrowGateway.Port))
	if err != nil {
		log.Fatalf("failed to init escrow gateway client: %v", err)
	}
	// Init content service client for auto delivery
	contentHandler, err := handlers.NewHTTPContentHandler(fmt.Sprintf("http://%s:%s", cfg.ContentService.Host, cfg.ContentService.Port))
	if err != nil {
		log.Fatalf("failed to init content service client: %v", err)
	}

	// Init usecases
	orderUc := orderusecase.NewDefaultOrderUsecase(
		orderRepo,
		listingRepo,
		escrowHandler,
		contentHandler,
		pub,
		orderMetrics,
		cfg.EscrowPolicy.GracePeriod,
	)
	disputeUc := disputeusecase.NewDefaultDisputeUsecase(
		disputeRepo,
		orderRepo,
		escrowHandler,
		pub,
		orderMetrics,
		cfg.AdminIDs,
		cfg.EscrowPolicy.DisputeTTL,
	)
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Metrics endpoint
	go func() {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())
		addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
		log.Printf("metrics server started on %s\n", addr)
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.Printf("metrics server stopped: %v\n", err)
		}
	}()

	tasks := background.NewBackgroundTasks(orderUc, disputeUc, cfg.EscrowPolicy.SweepInterval)
	log.Printf("escrow order service started (env=%s)\n", cfg.Env)
	if err := tasks.StartAll(ctx); err != nil {
		log.Fatalf("background tasks failed: %v\n", err)
	}
}
