package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"parts-service/internal/cart"
	"parts-service/internal/catalog"
	"parts-service/internal/config"
	httpapi "parts-service/internal/controllers/http"
	"parts-service/internal/infra"
	mmysql "parts-service/internal/infra/mysql"
	"parts-service/internal/infra/rabbitmq"
	"parts-service/internal/infra/vpic"
	"parts-service/internal/inventory"
	"parts-service/internal/repository"
	"parts-service/internal/repository/memory"
	mysqlrepo "parts-service/internal/repository/mysql"
	"parts-service/internal/services"
	"parts-service/internal/telemetry"
	"parts-service/internal/vehicle"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/rs/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	tp, err := telemetry.Setup(cfg.TracesStdout)
	if err != nil {
		log.Fatalf("telemetry: %v", err)
	}

	cat, err := catalog.Load()
	if err != nil {
		log.Fatalf("catalog: %v", err)
	}
	vehicles, err := catalog.LoadVehicles()
	if err != nil {
		log.Fatalf("vehicle fixtures: %v", err)
	}
	inv := inventory.NewManager(cat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sources := []vehicle.Source{}
	if store, err := vpic.Open(cfg.VpicDBPath); err == nil {
		defer store.Close()
		sources = append(sources, store)
		log.Printf("Local vehicle table: %s", cfg.VpicDBPath)
	} else if cfg.VpicDBPath != "" {
		log.Printf("Local vehicle table skipped: %v", err)
	}

	var api infra.VehicleAPI = infra.NewVehicleClient(cfg.VehicleAPIURL, cfg.VehicleAPITimeout)
	if addr := cfg.RedisAddr(); addr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:         addr,
			DB:           0,
			PoolSize:     50,
			MinIdleConns: 5,
			DialTimeout:  2 * time.Second,
			ReadTimeout:  500 * time.Millisecond,
			WriteTimeout: 500 * time.Millisecond,
		})
		defer redisClient.Close()

		cached := infra.NewCachedVehicleClient(api, redisClient, cfg.VehicleCacheTTL)
		api = cached
		go warmup(ctx, cached)
		log.Printf("Vehicle API cache: redis at %s", addr)
	}
	sources = append(sources, vehicle.NewRemoteSource(api), vehicle.NewMockSource(vehicles))

	var publisher rabbitmq.PublisherInterface = rabbitmq.NopPublisher{}
	if cfg.RabbitMQURL != "" {
		p, err := rabbitmq.NewPublisher(cfg.RabbitMQURL, cfg.EventsExchange)
		if err != nil {
			log.Fatalf("failed to init publisher: %v", err)
		}
		defer p.Close()
		publisher = p
		log.Printf("Publishing events to exchange %s", cfg.EventsExchange)
	}

	var repo repository.OrderRepository
	if cfg.MySQL.Enabled() {
		db, err := mmysql.NewMySQL(cfg.MySQL)
		if err != nil {
			log.Fatalf("db: connect: %v", err)
		}
		repo = mysqlrepo.NewOrderRepository(db)
		log.Printf("Orders stored in MySQL at %s", cfg.MySQL.Host)
	} else {
		repo = memory.NewOrderRepository()
		log.Println("Orders stored in memory")
	}

	store := services.NewStoreService(inv, cart.NewRegistry(inv), publisher)
	dashboard := services.NewDashboardService(repo, inv, cfg.SeedDemoOrders)
	handler := httpapi.NewHandler(vehicle.NewService(inv, sources...), inv, store, dashboard)
	handler.AllowOrigins(cfg.CORSOrigins...)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.RateLimitRPS > 0 {
		r.Use(httpapi.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst).Middleware())
	}
	handler.RegisterRoutes(r)

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: cfg.CORSOrigins,
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"Content-Type", httpapi.SessionHeader},
		ExposedHeaders: []string{httpapi.SessionHeader},
	}).Handler(r)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           otelhttp.NewHandler(corsHandler, telemetry.ServiceName),
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		log.Printf("Starting parts service on port %s", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("server run: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("server shutdown: %v", err)
	}
	if err := tp.Shutdown(shutdownCtx); err != nil {
		log.Printf("telemetry shutdown: %v", err)
	}
}

// warmup fills the redis cache with the models of every supported make.
func warmup(ctx context.Context, c *infra.CachedVehicleClient) {
	makes, err := c.GetAllMakes(ctx)
	if err != nil {
		log.Printf("Failed to warm up cache: %v", err)
		return
	}
	ids := make([]int, len(makes))
	for i, m := range makes {
		ids[i] = m.ID
	}
	if err := c.Warmup(ctx, ids); err != nil {
		log.Printf("Failed to warm up cache: %v", err)
		return
	}
	log.Printf("Cache warmed up for %d makes", len(ids))
}
